package diag

import (
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureReporter returns a Reporter whose output is appended to the returned
// slice, with color codes disabled for stable assertions.
func captureReporter(t *testing.T) (*Reporter, *[]string) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var lines []string
	r := NewReporter()
	r.Logf = func(format string, v ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, v...))
	}
	return r, &lines
}

func TestReporterWarnf(t *testing.T) {
	r, lines := captureReporter(t)

	r.Warnf(KindMalformedImageEntry, "im_id %q is not an integer; skipping", "abc")
	r.Warnf(KindMalformedImageEntry, "im_id %q is not an integer; skipping", "x")
	r.Warnf(KindMalformedAnnotation, "annotation 0 of image 5 has no obj_id; skipping")

	require.Len(t, *lines, 3)
	assert.Equal(t, `warning: im_id "abc" is not an integer; skipping`, (*lines)[0])
	assert.Equal(t, 2, r.Count(KindMalformedImageEntry))
	assert.Equal(t, 1, r.Count(KindMalformedAnnotation))
	assert.Equal(t, 0, r.Count(KindEmptyTargets))
	assert.Equal(t, 3, r.Warnings())
}

func TestReporterReport(t *testing.T) {
	r, lines := captureReporter(t)

	r.Report(Fatalf(KindMissingMandatorySource, "no ground-truth file for scene 000002"))

	require.Len(t, *lines, 1)
	assert.Equal(t, "error: no ground-truth file for scene 000002", (*lines)[0])
	assert.Equal(t, 0, r.Warnings(), "fatal reports are not warnings")
}

func TestReporterInfof(t *testing.T) {
	r, lines := captureReporter(t)

	r.Infof("processing scene %06d", 48)

	require.Len(t, *lines, 1)
	assert.Equal(t, "processing scene 000048", (*lines)[0])
}

// A Reporter built as a literal, not through NewReporter, must still count.
func TestReporterLiteralConstruction(t *testing.T) {
	var lines []string
	r := &Reporter{Logf: func(format string, v ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, v...))
	}}

	r.Warnf(KindEmptyTargets, "no targets generated")
	r.Warnf(KindEmptyTargets, "no targets generated")

	require.Len(t, lines, 2)
	assert.Equal(t, 2, r.Count(KindEmptyTargets))
	assert.Equal(t, 2, r.Warnings())
}

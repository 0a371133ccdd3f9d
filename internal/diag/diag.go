// Package diag defines the tool's diagnostic vocabulary: every anomaly a
// preparation run can hit carries a machine-readable Kind and a severity, so
// callers branch on the value instead of re-parsing printed text.
package diag

import (
	"errors"
	"fmt"
)

// Kind identifies a class of anomaly.
type Kind string

const (
	// KindMissingScene: the scene directory itself is absent.
	KindMissingScene Kind = "missing_scene"
	// KindMissingMandatorySource: no usable ground-truth file, suffixed or
	// canonical. Resolution cannot continue.
	KindMissingMandatorySource Kind = "missing_mandatory_source"
	// KindSuffixedSourceMissing: a sensor-suffixed source file was expected
	// but not found.
	KindSuffixedSourceMissing Kind = "suffixed_source_missing"
	// KindCanonicalSourceMissing: no suffix was given and the canonical file
	// is not there either.
	KindCanonicalSourceMissing Kind = "canonical_source_missing"
	// KindCopyFailure: materializing a canonical file failed mid-copy.
	KindCopyFailure Kind = "copy_failure"
	// KindMalformedGroundTruth: the ground-truth file is unreadable or its
	// top level is not a JSON object.
	KindMalformedGroundTruth Kind = "malformed_ground_truth"
	// KindMalformedImageEntry: one image entry has a non-integer key or a
	// non-array value.
	KindMalformedImageEntry Kind = "malformed_image_entry"
	// KindMalformedAnnotation: one annotation is not an object or lacks an
	// obj_id field.
	KindMalformedAnnotation Kind = "malformed_annotation"
	// KindEmptyTargets: aggregation produced no records at all.
	KindEmptyTargets Kind = "empty_targets"
	// KindOutputWriteFailure: the targets file could not be written.
	KindOutputWriteFailure Kind = "output_write_failure"
)

// Severity splits anomalies into ones a run survives and ones that abort the
// current stage.
type Severity int

const (
	// Warning is diagnosed and skipped over.
	Warning Severity = iota
	// Fatal aborts the stage that raised it.
	Fatal
)

// String returns the tag printed in front of diagnostics.
func (s Severity) String() string {
	if s == Fatal {
		return "error"
	}
	return "warning"
}

// Error is a diagnosed anomaly. Fatal ones travel up as ordinary Go errors;
// the CLI decides exit status from them instead of scraping log output.
type Error struct {
	Kind     Kind
	Severity Severity
	msg      string
	cause    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

// Unwrap exposes the underlying cause to errors.Is/As.
func (e *Error) Unwrap() error {
	return e.cause
}

// Fatalf builds a fatal Error of the given kind.
func Fatalf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Severity: Fatal, msg: fmt.Sprintf(format, args...)}
}

// Wrapf builds a fatal Error of the given kind around an underlying cause.
func Wrapf(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Severity: Fatal, msg: fmt.Sprintf(format, args...), cause: err}
}

// KindOf extracts the Kind from an error chain. The second return is false
// when the chain carries no diag.Error.
func KindOf(err error) (Kind, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return "", false
}

package targets

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGroundTruthKeepsDocumentOrder(t *testing.T) {
	entries, err := parseGroundTruth([]byte(`{"10": [], "2": [], "0": []}`))
	require.NoError(t, err)

	require.Len(t, entries, 3)
	assert.Equal(t, "10", entries[0].key)
	assert.Equal(t, "2", entries[1].key)
	assert.Equal(t, "0", entries[2].key)
}

// A repeated key keeps its first position but takes the last value, the way
// a dict built by repeated assignment would.
func TestParseGroundTruthDuplicateKeyLastWins(t *testing.T) {
	doc := `{"1": [{"obj_id": 5}], "2": [], "1": [{"obj_id": 7}]}`
	entries, err := parseGroundTruth([]byte(doc))
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "1", entries[0].key)
	assert.JSONEq(t, `[{"obj_id": 7}]`, string(entries[0].raw))
	assert.Equal(t, "2", entries[1].key)
}

func TestParseGroundTruthRejectsMalformedDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"array top level", `[{"obj_id": 5}]`},
		{"number top level", `42`},
		{"string top level", `"scene"`},
		{"null top level", `null`},
		{"truncated", `{"0": [`},
		{"bare garbage", `not json`},
		{"trailing data", `{"0": []} {"1": []}`},
		{"empty input", ``},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseGroundTruth([]byte(tc.doc))
			assert.Error(t, err)
		})
	}
}

func TestParseGroundTruthEmptyObject(t *testing.T) {
	entries, err := parseGroundTruth([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExtractObjID(t *testing.T) {
	tests := []struct {
		name string
		ann  string
		want string
		ok   bool
	}{
		{"integer id", `{"obj_id": 5}`, `5`, true},
		{"string id", `{"obj_id": "cup"}`, `"cup"`, true},
		{"null id is present", `{"obj_id": null}`, `null`, true},
		{"extra fields ignored", `{"obj_id": 5, "cam_R_m2c": [1, 0, 0]}`, `5`, true},
		{"whitespace compacted", `{ "obj_id" :   12 }`, `12`, true},
		{"missing id", `{"cam_t_m2c": [0, 0, 1]}`, ``, false},
		{"empty object", `{}`, ``, false},
		{"number annotation", `7`, ``, false},
		{"array annotation", `[{"obj_id": 5}]`, ``, false},
		{"string annotation", `"obj_id"`, ``, false},
		{"null annotation", `null`, ``, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := extractObjID(json.RawMessage(tc.ann))
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, string(got))
			}
		})
	}
}

func TestOrderedCounterFirstSeenOrder(t *testing.T) {
	c := newOrderedCounter()
	for _, id := range []string{`5`, `7`, `5`, `"cup"`, `7`, `5`} {
		c.add(json.RawMessage(id))
	}

	entries := c.entries()
	require.Len(t, entries, 3)
	assert.Equal(t, `5`, string(entries[0].objID))
	assert.Equal(t, 3, entries[0].count)
	assert.Equal(t, `7`, string(entries[1].objID))
	assert.Equal(t, 2, entries[1].count)
	assert.Equal(t, `"cup"`, string(entries[2].objID))
	assert.Equal(t, 1, entries[2].count)
}

// The string "5" and the number 5 are different object identifiers.
func TestOrderedCounterDistinguishesTypes(t *testing.T) {
	c := newOrderedCounter()
	c.add(json.RawMessage(`5`))
	c.add(json.RawMessage(`"5"`))

	entries := c.entries()
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].count)
	assert.Equal(t, 1, entries[1].count)
}

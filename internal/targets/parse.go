package targets

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// imageEntry is one top-level key/value pair of the ground-truth document,
// in document order.
type imageEntry struct {
	key string
	raw json.RawMessage
}

// parseGroundTruth decodes the top-level object of a scene_gt.json document
// into its entries, preserving document order. A duplicated key keeps its
// first position and takes the last value, matching the dict semantics the
// benchmark files were produced under.
func parseGroundTruth(data []byte) ([]imageEntry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("top level is %v, not a JSON object", tok)
	}

	var entries []imageEntry
	index := make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is %v, not a string", keyTok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode value of %q: %w", key, err)
		}
		if i, seen := index[key]; seen {
			entries[i].raw = raw
			continue
		}
		index[key] = len(entries)
		entries = append(entries, imageEntry{key: key, raw: raw})
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("trailing data after top-level object")
	}
	return entries, nil
}

// extractObjID pulls the obj_id value out of one annotation, preserving its
// JSON form verbatim (integer, string, even null). The second return is
// false when the annotation is not an object or carries no obj_id field.
func extractObjID(ann json.RawMessage) (json.RawMessage, bool) {
	var probe struct {
		ObjID json.RawMessage `json:"obj_id"`
	}
	if err := json.Unmarshal(ann, &probe); err != nil {
		return nil, false
	}
	// A JSON null obj_id decodes to the literal "null" (four bytes); only a
	// genuinely absent field leaves the RawMessage empty.
	if len(probe.ObjID) == 0 {
		return nil, false
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, probe.ObjID); err != nil {
		return nil, false
	}
	return json.RawMessage(buf.Bytes()), true
}

// orderedCounter counts obj_id occurrences in first-seen order, so records
// come out in the order the annotations mention each object.
type orderedCounter struct {
	idx  map[string]int
	list []objCount
}

type objCount struct {
	objID json.RawMessage
	count int
}

func newOrderedCounter() *orderedCounter {
	return &orderedCounter{idx: make(map[string]int)}
}

func (c *orderedCounter) add(objID json.RawMessage) {
	k := string(objID)
	if i, ok := c.idx[k]; ok {
		c.list[i].count++
		return
	}
	c.idx[k] = len(c.list)
	c.list = append(c.list, objCount{objID: objID, count: 1})
}

func (c *orderedCounter) entries() []objCount {
	return c.list
}

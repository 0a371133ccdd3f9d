// Package targets derives detection targets from a scene's ground-truth
// annotations: one record per distinct (image, object) pair carrying how many
// instances of that object the image shows.
package targets

import (
	"encoding/json"
	"path/filepath"
	"strconv"

	"github.com/dcuevasa/bop-toolkit-imagenes/internal/diag"
	"github.com/dcuevasa/bop-toolkit-imagenes/internal/fsutil"
)

// Record is one detection target. ObjectID keeps the exact JSON form it had
// in the ground-truth file. InstCount is always >= 1; a pair that was never
// observed simply has no record.
type Record struct {
	SceneID   int             `json:"scene_id"`
	ImageID   int             `json:"im_id"`
	ObjectID  json.RawMessage `json:"obj_id"`
	InstCount int             `json:"inst_count"`
}

// Progress is called once per image entry while counting, with how many
// entries are done out of how many total.
type Progress func(done, total int)

// Aggregate reads the ground-truth file at gtPath and produces the target
// records for the scene, in document order of the images and first-seen
// order of the objects within each image. Entries with a non-integer image
// id, a non-array annotation list, or annotations without an obj_id are
// diagnosed through rep and skipped; an unreadable or non-object document is
// fatal and nothing is returned.
func Aggregate(fs fsutil.FileSystem, rep *diag.Reporter, gtPath string, sceneID int, progress Progress) ([]Record, error) {
	data, err := fs.ReadFile(gtPath)
	if err != nil {
		return nil, diag.Wrapf(diag.KindMalformedGroundTruth, err, "load %s", gtPath)
	}
	entries, err := parseGroundTruth(data)
	if err != nil {
		return nil, diag.Wrapf(diag.KindMalformedGroundTruth, err, "parse %s", gtPath)
	}

	records := make([]Record, 0)
	for i, entry := range entries {
		if progress != nil {
			progress(i+1, len(entries))
		}

		imID, err := strconv.Atoi(entry.key)
		if err != nil {
			rep.Warnf(diag.KindMalformedImageEntry,
				"im_id %q in %s is not an integer; skipping this image", entry.key, gtPath)
			continue
		}

		// A JSON null decodes into a nil slice with no error, so a nil
		// slice after Unmarshal means the value was not an array.
		var anns []json.RawMessage
		if err := json.Unmarshal(entry.raw, &anns); err != nil || anns == nil {
			rep.Warnf(diag.KindMalformedImageEntry,
				"annotations for im_id %q are not an array; skipping. content: %s", entry.key, entry.raw)
			continue
		}

		counter := newOrderedCounter()
		for _, ann := range anns {
			objID, ok := extractObjID(ann)
			if !ok {
				rep.Warnf(diag.KindMalformedAnnotation,
					"annotation without obj_id in im_id %d. annotation: %s", imID, ann)
				continue
			}
			counter.add(objID)
		}
		for _, c := range counter.entries() {
			records = append(records, Record{
				SceneID:   sceneID,
				ImageID:   imID,
				ObjectID:  c.objID,
				InstCount: c.count,
			})
		}
	}

	if len(records) == 0 {
		rep.Warnf(diag.KindEmptyTargets,
			"no targets generated; is %s empty or missing obj_id fields?", gtPath)
	}
	return records, nil
}

// Write stores the records as pretty-printed JSON at path, creating parent
// directories as needed. An empty record set writes an empty array, not
// null.
func Write(fs fsutil.FileSystem, path string, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return diag.Wrapf(diag.KindOutputWriteFailure, err, "encode targets")
	}
	data = append(data, '\n')

	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return diag.Wrapf(diag.KindOutputWriteFailure, err, "create output directory for %s", path)
	}
	if err := fs.WriteFile(path, data, 0o644); err != nil {
		return diag.Wrapf(diag.KindOutputWriteFailure, err, "write %s", path)
	}
	return nil
}

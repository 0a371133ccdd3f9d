// Package bop describes the on-disk naming conventions of BOP benchmark
// datasets: scene directories, the standard per-scene artifact files and
// their sensor-suffixed variants.
package bop

import "fmt"

// Kind identifies one of the standard per-scene artifact files.
type Kind string

// The standard artifact kinds, in the order resolution processes them.
const (
	KindCamera Kind = "camera"
	KindGT     Kind = "gt"
	KindGTInfo Kind = "gt_info"
)

// Kinds lists all artifact kinds in resolution order: camera parameters
// first, then ground truth, then per-annotation info.
var Kinds = []Kind{KindCamera, KindGT, KindGTInfo}

// Mandatory reports whether a scene cannot be prepared without this kind.
// Only the ground-truth annotations are essential; camera parameters and
// ground-truth info are nice to have.
func (k Kind) Mandatory() bool {
	return k == KindGT
}

// CanonicalName returns the standard file name for the kind, e.g.
// "scene_gt.json".
func (k Kind) CanonicalName() string {
	return fmt.Sprintf("scene_%s.json", string(k))
}

// SuffixedName returns the sensor-specific file name for the kind, e.g.
// "scene_gt_photoneo.json".
func (k Kind) SuffixedName(suffix string) string {
	return fmt.Sprintf("scene_%s_%s.json", string(k), suffix)
}

// SourceName returns the file name resolution should read for this kind:
// the suffixed name when a sensor suffix is in play, the canonical name
// otherwise.
func (k Kind) SourceName(suffix string) string {
	if suffix == "" {
		return k.CanonicalName()
	}
	return k.SuffixedName(suffix)
}

// Package resolver normalizes the per-scene file naming of a BOP scene
// directory: sensor-suffixed sources are copied onto their canonical names so
// downstream benchmark tooling finds scene_camera.json, scene_gt.json and
// scene_gt_info.json where it expects them.
package resolver

import (
	"path/filepath"

	"github.com/dcuevasa/bop-toolkit-imagenes/internal/bop"
	"github.com/dcuevasa/bop-toolkit-imagenes/internal/diag"
	"github.com/dcuevasa/bop-toolkit-imagenes/internal/fsutil"
)

// Outcome tags what resolution did for one artifact kind.
type Outcome string

const (
	// OutcomeCopied: suffixed source copied onto the canonical name.
	OutcomeCopied Outcome = "copied"
	// OutcomeInPlace: the source already carries the canonical name.
	OutcomeInPlace Outcome = "in_place"
	// OutcomeMissing: no source found; nothing prepared for this kind.
	OutcomeMissing Outcome = "missing"
	// OutcomeCopyFailed: copy attempted and failed for an optional kind.
	OutcomeCopyFailed Outcome = "copy_failed"
	// OutcomeWouldCopy: dry run; the copy was planned but not performed.
	OutcomeWouldCopy Outcome = "would_copy"
)

// FileOutcome reports resolution of a single artifact kind.
type FileOutcome struct {
	Kind    bop.Kind
	Source  string // path consulted as the source
	Dest    string // canonical path in the scene directory
	Outcome Outcome
}

// Result reports what resolution did, one entry per kind in camera, gt,
// gt_info order.
type Result struct {
	Files []FileOutcome
	// GTPath is the canonical ground-truth path aggregation reads from.
	GTPath string
}

// File returns the outcome recorded for one kind.
func (r *Result) File(kind bop.Kind) (FileOutcome, bool) {
	for _, f := range r.Files {
		if f.Kind == kind {
			return f, true
		}
	}
	return FileOutcome{}, false
}

// Prepared counts the kinds whose canonical file is in place after
// resolution (copied or already canonical).
func (r *Result) Prepared() int {
	n := 0
	for _, f := range r.Files {
		if f.Outcome == OutcomeCopied || f.Outcome == OutcomeInPlace || f.Outcome == OutcomeWouldCopy {
			n++
		}
	}
	return n
}

// Options controls resolution behavior.
type Options struct {
	// DryRun reports every copy that would happen without touching the
	// filesystem.
	DryRun bool
}

// Resolver prepares the canonical scene files of one scene directory.
type Resolver struct {
	fs  fsutil.FileSystem
	rep *diag.Reporter
}

// New returns a Resolver that operates through fs and reports through rep.
func New(fs fsutil.FileSystem, rep *diag.Reporter) *Resolver {
	return &Resolver{fs: fs, rep: rep}
}

// Resolve walks the artifact kinds in fixed order and materializes each
// canonical file from its source. With an empty sensorSuffix the canonical
// names themselves are the sources and no copying happens. The ground-truth
// file is mandatory: resolution aborts when no usable scene_gt.json can be
// produced, and the returned error carries the diag kind.
func (rv *Resolver) Resolve(scenePath, sensorSuffix string, opts Options) (*Result, error) {
	result := &Result{
		GTPath: filepath.Join(scenePath, bop.KindGT.CanonicalName()),
	}
	gtPrepared := false

	for _, kind := range bop.Kinds {
		srcName := kind.SourceName(sensorSuffix)
		src := filepath.Join(scenePath, srcName)
		dst := filepath.Join(scenePath, kind.CanonicalName())
		outcome := FileOutcome{Kind: kind, Source: src, Dest: dst}

		if !rv.fs.Exists(src) {
			if sensorSuffix != "" {
				if kind.Mandatory() && rv.fs.Exists(dst) {
					// Mandatory check below passes on a leftover canonical
					// file from an earlier run; say so instead of silently
					// aggregating stale annotations.
					rv.rep.Warnf(diag.KindSuffixedSourceMissing,
						"source file %q not found in %s; falling back to existing %q, which may be stale",
						srcName, scenePath, kind.CanonicalName())
				} else {
					rv.rep.Warnf(diag.KindSuffixedSourceMissing,
						"source file %q not found in %s", srcName, scenePath)
				}
			} else if !rv.fs.Exists(dst) {
				rv.rep.Warnf(diag.KindCanonicalSourceMissing,
					"standard file %q not found in %s", kind.CanonicalName(), scenePath)
			}
			if kind.Mandatory() && !rv.fs.Exists(dst) {
				return nil, diag.Fatalf(diag.KindMissingMandatorySource,
					"ground-truth file (%q or %q) is required and was not found in %s",
					srcName, kind.CanonicalName(), scenePath)
			}
			outcome.Outcome = OutcomeMissing
			result.Files = append(result.Files, outcome)
			continue
		}

		if src != dst {
			if opts.DryRun {
				rv.rep.Infof("would copy %q to %q", srcName, kind.CanonicalName())
				outcome.Outcome = OutcomeWouldCopy
			} else {
				rv.rep.Infof("copying %q to %q", srcName, kind.CanonicalName())
				if err := rv.fs.CopyFile(src, dst); err != nil {
					if kind.Mandatory() {
						return nil, diag.Wrapf(diag.KindCopyFailure, err,
							"copy %q to %q", srcName, dst)
					}
					rv.rep.Warnf(diag.KindCopyFailure, "copy %q to %q: %v", srcName, dst, err)
					outcome.Outcome = OutcomeCopyFailed
					result.Files = append(result.Files, outcome)
					continue
				}
				outcome.Outcome = OutcomeCopied
			}
		} else {
			rv.rep.Infof("%q already has the canonical name", kind.CanonicalName())
			outcome.Outcome = OutcomeInPlace
		}
		if kind.Mandatory() {
			gtPrepared = true
		}
		result.Files = append(result.Files, outcome)
	}

	if !gtPrepared && !rv.fs.Exists(result.GTPath) {
		return nil, diag.Fatalf(diag.KindMissingMandatorySource,
			"%q is not available in %s after preparation", bop.KindGT.CanonicalName(), scenePath)
	}
	return result, nil
}

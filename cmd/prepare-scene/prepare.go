package main

import (
	"errors"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"

	"github.com/dcuevasa/bop-toolkit-imagenes/internal/bop"
	"github.com/dcuevasa/bop-toolkit-imagenes/internal/diag"
	"github.com/dcuevasa/bop-toolkit-imagenes/internal/fsutil"
	"github.com/dcuevasa/bop-toolkit-imagenes/internal/resolver"
	"github.com/dcuevasa/bop-toolkit-imagenes/internal/targets"
)

// Config holds one invocation's parameters.
type Config struct {
	DatasetRoot           string
	DatasetName           string
	Split                 string
	SceneID               int
	SensorSuffix          string
	OutputTargetsFilename string
	DryRun                bool
	NoProgress            bool
}

// validate rejects configs missing a required flag value.
func validate(cfg Config) error {
	if cfg.DatasetRoot == "" {
		return errors.New("missing required flag -dataset_root")
	}
	if cfg.DatasetName == "" {
		return errors.New("missing required flag -dataset_name")
	}
	if cfg.Split == "" {
		return errors.New("missing required flag -split")
	}
	if cfg.SceneID < 0 {
		return errors.New("missing or negative -scene_id")
	}
	if cfg.OutputTargetsFilename == "" {
		return errors.New("-output_targets_filename must not be empty")
	}
	return nil
}

// Summary reports what a run did.
type Summary struct {
	ScenePath  string
	Prepared   int
	Records    int
	OutputPath string
	Warnings   int
	DryRun     bool
}

// Run executes one preparation: resolve the scene's canonical files, then
// aggregate detection targets from the ground truth and write them under the
// dataset root. A fatal error aborts the remaining stages; the caller decides
// exit status from it.
func Run(fs fsutil.FileSystem, rep *diag.Reporter, cfg Config) (*Summary, error) {
	scenePath := bop.SceneDir(cfg.DatasetRoot, cfg.DatasetName, cfg.Split, cfg.SceneID)
	info, err := fs.Stat(scenePath)
	if err != nil || !info.IsDir() {
		return nil, diag.Fatalf(diag.KindMissingScene, "scene path does not exist: %s", scenePath)
	}

	rep.Infof("--- processing scene: %s ---", scenePath)
	if cfg.SensorSuffix != "" {
		rep.Infof("using sensor suffix %q for source files", cfg.SensorSuffix)
	} else {
		rep.Infof("no sensor suffix given; canonical file names are the sources")
	}

	res, err := resolver.New(fs, rep).Resolve(scenePath, cfg.SensorSuffix, resolver.Options{DryRun: cfg.DryRun})
	if err != nil {
		return nil, err
	}

	sum := &Summary{ScenePath: scenePath, Prepared: res.Prepared(), DryRun: cfg.DryRun}
	if cfg.DryRun {
		rep.Infof("dry run; skipping target generation")
		sum.Warnings = rep.Warnings()
		return sum, nil
	}

	rep.Infof("--- generating targets from: %s ---", res.GTPath)
	var progress targets.Progress
	if !cfg.NoProgress {
		var bar *progressbar.ProgressBar
		progress = func(done, total int) {
			if bar == nil {
				bar = newProgressBar(total)
			}
			bar.Add(1)
		}
	}
	records, err := targets.Aggregate(fs, rep, res.GTPath, cfg.SceneID, progress)
	if err != nil {
		return nil, err
	}

	outPath := bop.TargetsPath(cfg.DatasetRoot, cfg.DatasetName, cfg.OutputTargetsFilename)
	if err := targets.Write(fs, outPath, records); err != nil {
		return nil, err
	}
	rep.Infof("targets file saved to: %s", outPath)

	sum.Records = len(records)
	sum.OutputPath = outPath
	sum.Warnings = rep.Warnings()
	return sum, nil
}

func newProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(ansi.NewAnsiStderr()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan][targets][reset] counting annotations"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}

// Command prepare-scene normalizes one BOP scene's file naming and derives
// its detection-target list from the ground-truth annotations.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/k0kubun/go-ansi"
	"github.com/mitchellh/colorstring"

	"github.com/dcuevasa/bop-toolkit-imagenes/internal/bop"
	"github.com/dcuevasa/bop-toolkit-imagenes/internal/diag"
	"github.com/dcuevasa/bop-toolkit-imagenes/internal/fsutil"
	"github.com/dcuevasa/bop-toolkit-imagenes/internal/version"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", filepath.Base(os.Args[0]))
		fmt.Fprintln(os.Stderr, "  prepares the canonical scene_{camera,gt,gt_info}.json files of one")
		fmt.Fprintln(os.Stderr, "  BOP scene and writes its detection targets under the dataset root")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}

	printUsageAndExit := func(msg ...interface{}) {
		log.Print(msg...)
		flag.Usage()
		os.Exit(1)
	}

	datasetRoot := flag.String("dataset_root", "", "`path` to the root directory holding BOP datasets")
	datasetName := flag.String("dataset_name", "", "dataset folder `name` under the root (e.g. ipd)")
	split := flag.String("split", "", "split folder `name` (e.g. test, val)")
	sceneID := flag.Int("scene_id", -1, "numeric scene `id`, zero-padded to six digits for the directory name")
	sensorSuffix := flag.String("sensor_suffix", "", "sensor `suffix` of the source files (e.g. photoneo, cam1); empty when sources already carry canonical names")
	outputName := flag.String("output_targets_filename", bop.DefaultTargetsFilename, "`name` of the targets file, written under <dataset_root>/<dataset_name>/")
	dryRun := flag.Bool("dry-run", false, "report what would be copied without writing anything")
	noProgress := flag.Bool("no-progress", false, "disable the progress bar during target generation")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("prepare-scene version %s\n", version.String())
		return
	}

	cfg := Config{
		DatasetRoot:           *datasetRoot,
		DatasetName:           *datasetName,
		Split:                 *split,
		SceneID:               *sceneID,
		SensorSuffix:          *sensorSuffix,
		OutputTargetsFilename: *outputName,
		DryRun:                *dryRun,
		NoProgress:            *noProgress,
	}
	if err := validate(cfg); err != nil {
		printUsageAndExit(err)
	}

	rep := diag.NewReporter()
	sum, err := Run(fsutil.OSFileSystem{}, rep, cfg)
	if err != nil {
		rep.Report(err)
		os.Exit(1)
	}
	printSummary(sum)
}

func printSummary(s *Summary) {
	color.Output = ansi.NewAnsiStdout()
	if s.DryRun {
		colorstring.Printf("\n[bold]Dry run complete.[reset] Files that would be prepared: [green]%d[reset], warnings: [yellow]%d[reset]\n", s.Prepared, s.Warnings)
		return
	}
	colorstring.Printf("\nFiles prepared: [green]%d[reset], target records: [green]%d[reset], warnings: [yellow]%d[reset]\n", s.Prepared, s.Records, s.Warnings)
	colorstring.Printf("Targets written to [bold]%s[reset]\n", s.OutputPath)
}

package bop

import (
	"fmt"
	"path/filepath"
)

// DefaultTargetsFilename is the output file name used when the caller does
// not pick one. It lands in the dataset directory, next to the split folders.
const DefaultTargetsFilename = "targets_custom.json"

// SceneDirName renders a numeric scene ID as the zero-padded directory name
// BOP datasets use, e.g. 4 -> "000004".
func SceneDirName(sceneID int) string {
	return fmt.Sprintf("%06d", sceneID)
}

// DatasetDir returns the directory of a named dataset under the root.
func DatasetDir(root, dataset string) string {
	return filepath.Join(root, dataset)
}

// SceneDir returns the directory holding one scene's files:
// <root>/<dataset>/<split>/<zero-padded id>.
func SceneDir(root, dataset, split string, sceneID int) string {
	return filepath.Join(root, dataset, split, SceneDirName(sceneID))
}

// TargetsPath returns the path the generated targets file is written to.
func TargetsPath(root, dataset, filename string) string {
	return filepath.Join(DatasetDir(root, dataset), filename)
}

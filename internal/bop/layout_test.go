package bop

import (
	"path/filepath"
	"testing"
)

func TestSceneDirName(t *testing.T) {
	tests := []struct {
		sceneID int
		want    string
	}{
		{0, "000000"},
		{4, "000004"},
		{48, "000048"},
		{123456, "123456"},
		{1234567, "1234567"}, // wider than the pad, rendered as-is
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := SceneDirName(tt.sceneID); got != tt.want {
				t.Errorf("SceneDirName(%d) = %q, want %q", tt.sceneID, got, tt.want)
			}
		})
	}
}

func TestSceneDir(t *testing.T) {
	got := SceneDir("/data/bop", "ipd", "val", 4)
	want := filepath.Join("/data/bop", "ipd", "val", "000004")
	if got != want {
		t.Errorf("SceneDir() = %q, want %q", got, want)
	}
}

func TestTargetsPath(t *testing.T) {
	got := TargetsPath("/data/bop", "ipd", "targets_scene4.json")
	want := filepath.Join("/data/bop", "ipd", "targets_scene4.json")
	if got != want {
		t.Errorf("TargetsPath() = %q, want %q", got, want)
	}
}

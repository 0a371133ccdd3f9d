package main

import (
	"testing"
)

func TestValidate(t *testing.T) {
	valid := Config{
		DatasetRoot:           "root",
		DatasetName:           "ipd",
		Split:                 "test",
		SceneID:               0,
		OutputTargetsFilename: "targets_custom.json",
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"valid with suffix", func(c *Config) { c.SensorSuffix = "cam1" }, false},
		{"missing dataset_root", func(c *Config) { c.DatasetRoot = "" }, true},
		{"missing dataset_name", func(c *Config) { c.DatasetName = "" }, true},
		{"missing split", func(c *Config) { c.Split = "" }, true},
		{"negative scene_id", func(c *Config) { c.SceneID = -1 }, true},
		{"empty output name", func(c *Config) { c.OutputTargetsFilename = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPrintSummary(t *testing.T) {
	// Must render both shapes without panicking.
	printSummary(&Summary{ScenePath: "root/ipd/test/000004", Prepared: 2, Records: 5, OutputPath: "root/ipd/targets_custom.json", Warnings: 1})
	printSummary(&Summary{ScenePath: "root/ipd/test/000004", Prepared: 2, Warnings: 0, DryRun: true})
}

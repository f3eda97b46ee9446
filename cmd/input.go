package cmd

import (
	"Ballast/internal/calc/buoyancy"
	"Ballast/internal/calc/report"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// loadInput reads a snapshot from a .json, .yaml or .yml file on top of the
// reference snapshot, so a file only needs the fields it changes. Lists such
// as levels are replaced, not merged.
func loadInput(path string) (report.Input, error) {
	base := buoyancy.DefaultInput()
	in := report.Input{Input: base}
	if path == "" {
		return in, nil
	}
	in.Levels = nil
	in.Geometry.LevelHeightsMM = nil
	raw, err := os.ReadFile(path)
	if err != nil {
		return report.Input{}, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &in)
	case ".json":
		err = json.Unmarshal(raw, &in)
	default:
		return report.Input{}, fmt.Errorf("%s: unsupported input format, use .json or .yaml", path)
	}
	if err != nil {
		return report.Input{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if in.Levels == nil {
		in.Levels = base.Levels
	}
	if in.Geometry.LevelHeightsMM == nil {
		in.Geometry.LevelHeightsMM = base.Geometry.LevelHeightsMM
	}
	return in, nil
}

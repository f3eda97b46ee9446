package importer

import (
	"Ballast/internal/calc/buoyancy"
	"Ballast/internal/calc/geometry"
	"Ballast/internal/calc/member"
	"Ballast/internal/calc/stage"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Columns of the level schedule, one row per level from the top down.
var Columns = []string{"height", "b1_w", "b1_h", "g1_w", "g1_h", "g2_w", "g2_h", "col_w", "col_d", "done"}

// RowError points at a schedule row by its spreadsheet row number.
type RowError struct {
	Row    int
	Column string
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d, %s: %s", e.Row, e.Column, e.Reason)
}

// ReadLevels parses the first sheet of an XLSX level schedule. The header
// row is skipped and blank rows are ignored.
func ReadLevels(r io.Reader) ([]float64, []stage.Level, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, geometry.NewConfigError("file", "not a readable xlsx file")
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet: %w", err)
	}
	var (
		heights []float64
		levels  []stage.Level
		errs    []error
	)
	for i := 1; i < len(rows); i++ {
		if blank(rows[i]) {
			continue
		}
		h, lv, err := parseRow(i+1, rows[i])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		heights = append(heights, h)
		levels = append(levels, lv)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, nil, geometry.WrapConfigError("file", err)
	}
	if len(levels) == 0 {
		return nil, nil, geometry.NewConfigError("file", "no level rows")
	}
	if len(levels) > geometry.MaxLevels {
		return nil, nil, geometry.NewConfigError("file", "%d levels, at most %d", len(levels), geometry.MaxLevels)
	}
	return heights, levels, nil
}

// Apply replaces the levels of base with the imported schedule.
func Apply(base buoyancy.Input, heights []float64, levels []stage.Level) buoyancy.Input {
	out := base
	out.Geometry.LevelHeightsMM = append([]float64(nil), heights...)
	out.Levels = append([]stage.Level(nil), levels...)
	return out
}

func parseRow(n int, row []string) (float64, stage.Level, error) {
	nums := make([]float64, 9)
	for i := range nums {
		cell := cellAt(row, i)
		if cell == "" {
			return 0, stage.Level{}, &RowError{Row: n, Column: Columns[i], Reason: "missing value"}
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return 0, stage.Level{}, &RowError{Row: n, Column: Columns[i], Reason: fmt.Sprintf("%q is not a number", cell)}
		}
		nums[i] = v
	}
	done := true
	if cell := cellAt(row, 9); cell != "" {
		v, err := parseDone(cell)
		if err != nil {
			return 0, stage.Level{}, &RowError{Row: n, Column: "done", Reason: err.Error()}
		}
		done = v
	}
	return nums[0], stage.Level{
		Done:   done,
		B1:     member.Section{WidthMM: nums[1], DepthMM: nums[2]},
		G1:     member.Section{WidthMM: nums[3], DepthMM: nums[4]},
		G2:     member.Section{WidthMM: nums[5], DepthMM: nums[6]},
		Column: member.Section{WidthMM: nums[7], DepthMM: nums[8]},
	}, nil
}

func parseDone(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "y", "done", "o":
		return true, nil
	case "0", "false", "no", "n", "x", "-":
		return false, nil
	}
	return false, fmt.Errorf("%q is not a completion flag", s)
}

func cellAt(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

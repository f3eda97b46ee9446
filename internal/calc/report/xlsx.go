package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	SheetSummary = "Summary"
	SheetLedger  = "Ledger"
)

// WriteXLSX writes a workbook with a summary sheet and the full ledger.
func WriteXLSX(w io.Writer, doc Document) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetSummary); err != nil {
		return err
	}
	if _, err := f.NewSheet(SheetLedger); err != nil {
		return err
	}

	s := doc.Result.Summary
	summary := [][]any{
		{"Report", doc.Title},
		{"Report ID", doc.ID},
		{"Generated", doc.Generated.Format("2006-01-02 15:04")},
		{"Project", doc.Project},
		{"Total weight (kN)", s.TotalWeight},
		{"Total uplift (kN)", s.TotalUplift},
		{"Water head (m)", doc.Result.Uplift.WaterHeadM},
		{"Safety factor", s.SafetyFactor},
		{"Target", s.Target},
		{"Verdict", string(s.Verdict)},
		{"Advisory", s.Advisory},
	}
	if m := doc.Result.Mitigation; m != nil {
		summary = append(summary,
			[]any{"Deficit (kN)", m.DeficitKN},
			[]any{"Anchors", m.AnchorCount},
		)
	}
	for _, warning := range doc.Result.Warnings {
		summary = append(summary, []any{"Warning", warning})
	}
	if err := writeRows(f, SheetSummary, summary); err != nil {
		return err
	}

	ledger := [][]any{{"Group", "Item", "Formula", "kN"}}
	for _, e := range doc.Result.Ledger.Entries() {
		ledger = append(ledger, []any{e.Group, e.Label, e.Formula, e.Value})
	}
	if err := writeRows(f, SheetLedger, ledger); err != nil {
		return err
	}
	f.SetColWidth(SheetSummary, "A", "A", 22)
	f.SetColWidth(SheetSummary, "B", "B", 40)
	f.SetColWidth(SheetLedger, "B", "B", 28)
	f.SetColWidth(SheetLedger, "C", "C", 60)
	return f.Write(w)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

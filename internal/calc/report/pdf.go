package report

import (
	"Ballast/internal/calc/stage"
	"fmt"
	"io"
	"strings"

	"github.com/phpdave11/gofpdf"
)

// The core PDF fonts are cp1252; symbols outside it are spelled out.
var pdfText = strings.NewReplacer("Σ", "Sum ", "≥", ">=", "≤", "<=", "²", "2", "³", "3")

// WritePDF renders the document as an A4 report.
func WritePDF(w io.Writer, doc Document) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(pdfText.Replace(s)) }
	pdf.SetTitle(doc.Title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, doc.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range headerLines(doc, text) {
		pdf.Cell(0, 5, line)
		pdf.Ln(5)
	}
	pdf.Ln(4)

	section(pdf, "Input")
	for _, kv := range inputSummary(doc) {
		pdf.CellFormat(60, 5, kv[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 5, text(kv[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	for _, group := range doc.Result.Ledger.Groups() {
		section(pdf, group)
		ledgerTable(pdf, doc.Result.Ledger.Group(group), text)
		pdf.Ln(3)
	}

	section(pdf, "Summary")
	s := doc.Result.Summary
	for _, kv := range [][2]string{
		{"Total weight", fmt.Sprintf("%.3f kN", s.TotalWeight)},
		{"Total uplift", fmt.Sprintf("%.3f kN", s.TotalUplift)},
		{"Safety factor", fmt.Sprintf("%.4f", s.SafetyFactor)},
		{"Verdict", s.Line()},
	} {
		pdf.CellFormat(60, 6, kv[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, text(kv[1]), "", 1, "L", false, 0, "")
	}
	if s.Advisory != "" {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(180, 0, 0)
		pdf.CellFormat(0, 8, strings.ToUpper(s.Advisory), "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", 10)
	}
	if m := doc.Result.Mitigation; m != nil {
		line := fmt.Sprintf("Required resistance %.1f kN, deficit %.1f kN", m.RequiredResistanceKN, m.DeficitKN)
		if m.AnchorCount > 0 {
			line += fmt.Sprintf(", %d anchors of %.0f kN", m.AnchorCount, m.CapacityKN)
		}
		pdf.MultiCell(0, 5, line, "", "L", false)
	}
	if len(doc.Result.Warnings) > 0 {
		pdf.Ln(3)
		section(pdf, "Warnings")
		for _, warning := range doc.Result.Warnings {
			pdf.MultiCell(0, 5, "- "+text(warning), "", "L", false)
		}
	}
	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
}

// headerLines are the report header rows after clean has made them printable
// in the core fonts. Project and author are free text from the caller.
func headerLines(doc Document, clean func(string) string) []string {
	var lines []string
	if doc.Project != "" {
		lines = append(lines, clean("Project: "+doc.Project))
	}
	if doc.Author != "" {
		lines = append(lines, clean("Author: "+doc.Author))
	}
	return append(lines,
		"Generated: "+doc.Generated.Format("2006-01-02 15:04"),
		"Report ID: "+doc.ID,
	)
}

func ledgerTable(pdf *gofpdf.Fpdf, entries []stage.Entry, text func(string) string) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(45, 6, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(110, 6, "Formula", "1", 0, "L", true, 0, "")
	pdf.CellFormat(0, 6, "kN", "1", 1, "R", true, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	for _, e := range entries {
		pdf.CellFormat(45, 6, text(e.Label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(110, 6, text(e.Formula), "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, fmt.Sprintf("%.3f", e.Value), "1", 1, "R", false, 0, "")
	}
}

func inputSummary(doc Document) [][2]string {
	in := doc.Input
	g := in.Geometry
	built := make([]string, 0, len(in.Levels)+1)
	if in.Roof.Done {
		built = append(built, stage.GroupRoof)
	}
	for i, lv := range in.Levels {
		if lv.Done {
			built = append(built, stage.LevelName(i))
		}
	}
	if len(built) == 0 {
		built = append(built, "none")
	}
	heights := make([]string, len(g.LevelHeightsMM))
	for i, h := range g.LevelHeightsMM {
		heights[i] = fmt.Sprintf("%g", h)
	}
	return [][2]string{
		{"Plan (mm)", fmt.Sprintf("%g x %g", g.PlanXMM, g.PlanYMM)},
		{"Soil height (mm)", fmt.Sprintf("%g", g.SoilHeightMM)},
		{"Level heights (mm)", strings.Join(heights, ", ")},
		{"Footing (mm)", fmt.Sprintf("%g x %g x %g", g.FootingWidthMM, g.FootingLengthMM, g.FootingThickMM)},
		{"Groundwater", fmt.Sprintf("GL-%gm", g.GroundwaterDepthM)},
		{"Concrete unit weight", fmt.Sprintf("%g kN/m3", in.Materials.UnitWeightConcrete)},
		{"Built", strings.Join(built, ", ")},
		{"Target factor", fmt.Sprintf("%g", doc.Result.Summary.Target)},
	}
}

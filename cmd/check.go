package cmd

import (
	"Ballast/internal/calc/buoyancy"
	"Ballast/internal/calc/report"
	"Ballast/internal/diagram"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	checkFile     string
	checkDiagram  bool
	checkOutput   string
	checkPDF      string
	checkXLSX     string
	checkTarget   float64
	checkCapacity float64
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Evaluate the buoyancy safety factor of one snapshot",
	Long: `Evaluate one construction snapshot: area rates, the weight ledger,
the uplift, the safety factor and the verdict.

The snapshot is read from a JSON or YAML file on top of the reference
building; without -f the reference building itself is checked.

Examples:
  ballast check
  ballast check -f site.yaml --diagram
  ballast check -f site.json --pdf report.pdf --xlsx report.xlsx -o section.png
  ballast check -f site.yaml --target 1.1 --capacity 400`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkFile, "file", "f", "", "Snapshot file (.json, .yaml)")
	checkCmd.Flags().BoolVar(&checkDiagram, "diagram", false, "Print an ASCII section diagram")
	checkCmd.Flags().StringVarP(&checkOutput, "output", "o", "", "Export the section diagram (.png, .svg, .pdf)")
	checkCmd.Flags().StringVar(&checkPDF, "pdf", "", "Write a PDF report")
	checkCmd.Flags().StringVar(&checkXLSX, "xlsx", "", "Write an XLSX workbook")
	checkCmd.Flags().Float64Var(&checkTarget, "target", 0, "Override the target safety factor")
	checkCmd.Flags().Float64Var(&checkCapacity, "capacity", 0, "Anchor capacity (kN) for sizing mitigation")
}

func runCheck(cmd *cobra.Command, args []string) error {
	in, err := loadInput(checkFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("target") {
		in.TargetFS = checkTarget
	}
	if cmd.Flags().Changed("capacity") {
		in.AnchorCapacityKN = checkCapacity
	}
	doc, err := report.Build(in)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printCheck(out, doc.Result)
	if checkDiagram {
		fmt.Fprintln(out, "SECTION:")
		fmt.Fprintln(out, rule)
		fmt.Fprintln(out, diagram.DrawASCII(diagram.FromGeometry(in.Geometry)))
	}

	if checkOutput != "" {
		name, err := diagram.Export(diagram.FromGeometry(in.Geometry), checkOutput)
		if err != nil {
			return fmt.Errorf("diagram: %w", err)
		}
		fmt.Fprintf(out, "  Diagram written to %s\n", name)
	}
	if checkPDF != "" {
		if err := writeFile(checkPDF, func(w io.Writer) error { return report.WritePDF(w, doc) }); err != nil {
			return fmt.Errorf("pdf: %w", err)
		}
		fmt.Fprintf(out, "  PDF report written to %s\n", checkPDF)
	}
	if checkXLSX != "" {
		if err := writeFile(checkXLSX, func(w io.Writer) error { return report.WriteXLSX(w, doc) }); err != nil {
			return fmt.Errorf("xlsx: %w", err)
		}
		fmt.Fprintf(out, "  Workbook written to %s\n", checkXLSX)
	}
	return nil
}

const rule = "───────────────────────────────────────────────────────────────"

func printCheck(out io.Writer, res buoyancy.Result) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "AREA LOADS:")
	fmt.Fprintln(out, rule)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, r := range []struct {
		name string
		rate float64
		expr string
	}{
		{"Roof", res.Rates.Roof.KNM2, res.Rates.Roof.Formula},
		{"Typical", res.Rates.Typical.KNM2, res.Rates.Typical.Formula},
		{"Bottom", res.Rates.Bottom.KNM2, res.Rates.Bottom.Formula},
	} {
		fmt.Fprintf(w, "  %s:\t%.3f kN/m²\t%s\n", r.name, r.rate, r.expr)
	}
	w.Flush()
	fmt.Fprintln(out)

	for _, group := range res.Ledger.Groups() {
		fmt.Fprintf(out, "%s:\n", group)
		fmt.Fprintln(out, rule)
		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, e := range res.Ledger.Group(group) {
			fmt.Fprintf(w, "  %s\t%s\t%10.3f kN\n", e.Label, e.Formula, e.Value)
		}
		w.Flush()
		fmt.Fprintln(out)
	}

	s := res.Summary
	lines := []string{
		fmt.Sprintf("ΣW = %.3f kN", s.TotalWeight),
		fmt.Sprintf("ΣU = %.3f kN", s.TotalUplift),
		fmt.Sprintf("FS = %.4f", s.SafetyFactor),
		s.Line(),
	}
	fmt.Fprint(out, diagram.SummaryBox("BUOYANCY CHECK", lines))
	fmt.Fprintln(out)

	if s.Advisory != "" {
		fmt.Fprintf(out, "  ⚠ %s\n", s.Advisory)
	}
	if m := res.Mitigation; m != nil {
		fmt.Fprintf(out, "  Required resistance: %.1f kN, deficit %.1f kN\n", m.RequiredResistanceKN, m.DeficitKN)
		if m.AnchorCount > 0 {
			fmt.Fprintf(out, "  Anchors: %d x %.0f kN\n", m.AnchorCount, m.CapacityKN)
		}
	}
	for _, warning := range res.Warnings {
		fmt.Fprintf(out, "  warning: %s\n", warning)
	}
	fmt.Fprintln(out)
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

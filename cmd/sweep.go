package cmd

import (
	"Ballast/internal/calc/premium/batch"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	sweepFile  string
	sweepOrder string
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Evaluate every stage of the construction sequence",
	Long: `Walk the construction sequence from nothing built to fully built and
report the safety factor after each step. The completion flags in the
snapshot are ignored.

Orders:
  bottom-up  lowest level first, roof last (default)
  top-down   roof first, then each level downward

Examples:
  ballast sweep
  ballast sweep -f site.yaml --order top-down`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := loadInput(sweepFile)
		if err != nil {
			return err
		}
		res, err := batch.Sweep(batch.SweepInput{Base: in.Input, Order: batch.Order(sweepOrder)})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "\nSWEEP (%s, target %g):\n", res.Order, res.Target)
		fmt.Fprintln(out, rule)
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  #\tStage\tΣW (kN)\tΣU (kN)\tFS\tVerdict")
		for _, st := range res.Stages {
			fmt.Fprintf(w, "  %d\t%s\t%.3f\t%.3f\t%.4f\t%s\n", st.Index, st.Label, st.WeightKN, st.UpliftKN, st.SafetyFactor, st.Verdict)
		}
		w.Flush()
		fmt.Fprintln(out)
		if res.FirstPassing < 0 {
			fmt.Fprintln(out, "  No stage reaches the target.")
		} else {
			fmt.Fprintf(out, "  First passing stage: %d (%s)\n", res.FirstPassing, res.Stages[res.FirstPassing].Label)
		}
		fmt.Fprintln(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sweepCmd)
	sweepCmd.Flags().StringVarP(&sweepFile, "file", "f", "", "Snapshot file (.json, .yaml)")
	sweepCmd.Flags().StringVar(&sweepOrder, "order", string(batch.BottomUp), "bottom-up or top-down")
}

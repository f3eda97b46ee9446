package cmd

import (
	"Ballast/internal/calc/buoyancy"
	"Ballast/internal/calc/geometry"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	defaultsFormat string
	defaultsLevels int
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the reference snapshot as a starting input file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if defaultsLevels < 1 || defaultsLevels > geometry.MaxLevels {
			return fmt.Errorf("--levels must be between 1 and %d", geometry.MaxLevels)
		}
		in := buoyancy.WithLevels(defaultsLevels)
		out := cmd.OutOrStdout()
		switch defaultsFormat {
		case "yaml", "yml":
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(in); err != nil {
				return err
			}
			return enc.Close()
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(in)
		}
		return fmt.Errorf("unknown format %q, use yaml or json", defaultsFormat)
	},
}

func init() {
	rootCmd.AddCommand(defaultsCmd)
	defaultsCmd.Flags().StringVar(&defaultsFormat, "format", "yaml", "yaml or json")
	defaultsCmd.Flags().IntVar(&defaultsLevels, "levels", 2, "Number of below-grade levels")
}

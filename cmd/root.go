package cmd

import (
	"fmt"
	"os"

	"Ballast/internal/platform/logger"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ballast",
	Short: "Buoyancy check for basements under construction",
	Long: `ballast - staged buoyancy safety factor

Sums the self-weight of the parts of a below-grade structure that are
already built, compares it with the hydrostatic uplift from groundwater
and reports the safety factor against a target (1.2 by default).

Use it from the command line or run it as an HTTP service.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   ballast v%-47s║\n", Version)
		fmt.Fprintln(out, "  ║   Staged buoyancy safety factor                           ║")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Commands:")
		fmt.Fprintln(out, "    • check     evaluate one construction snapshot")
		fmt.Fprintln(out, "    • sweep     evaluate every stage of the construction sequence")
		fmt.Fprintln(out, "    • defaults  print the reference snapshot")
		fmt.Fprintln(out, "    • serve     run the HTTP API")
		fmt.Fprintln(out, "    • hash-password  bcrypt hash for ACCESS_HASH")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'ballast --help' to see all flags.")
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if log, lerr := logger.New(os.Getenv("APP_ENV")); lerr == nil {
			log.Error("command failed", "error", err)
			log.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

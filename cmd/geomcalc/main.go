// geomcalc evaluates bounded point and rectangle arithmetic from the
// command line.
//
// Usage:
//
//	geomcalc eval --op <op> --type <type> [operands]  - Evaluate one operation
//	geomcalc run <script.yaml>                        - Evaluate a YAML script
//	geomcalc domains                                  - List the numeric domains
//
// Global flags:
//
//	--verbose  - Log each evaluated operation to stderr
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagVerbose bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "geomcalc",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "geomcalc",
	Short: "Evaluate bounded 2D point and rectangle arithmetic",
	Long: `geomcalc evaluates translate, delta, inflate, deflate, resize and
contains operations on points and rectangles whose coordinates are
bounded by a fixed-width numeric type.

Examples:
  geomcalc eval --op resize --type i8 --rect -5,-5,5,5 --size 9
  geomcalc eval --op checked-translate --type u8 --point 250,3 --delta 10,0
  geomcalc run ops.yaml
  geomcalc domains`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log each evaluated operation")

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(domainsCmd)
}

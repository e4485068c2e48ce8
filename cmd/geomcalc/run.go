package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"deedles.dev/xgeom/internal/script"
)

var runCmd = &cobra.Command{
	Use:   "run <script.yaml>",
	Short: "Evaluate every operation in a YAML script",
	Long: `Evaluate the operations listed in a YAML script and print one line per
operation. Failed operations are reported inline and do not stop the
rest of the script; the command exits with an error if any failed.

Example script:

  operations:
    - name: shrink
      op: resize
      type: i8
      rect: [-5, -5, 5, 5]
      size: 9`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	f, err := script.Load(args[0])
	if err != nil {
		return err
	}
	logger.Debug("loaded script", "path", args[0], "operations", len(f.Operations))

	w := cmd.OutOrStdout()
	var failed int
	for _, r := range f.Run() {
		if r.Err != nil {
			failed++
			logger.Debug("operation failed", "op", r.Op, "error", r.Err)
			fmt.Fprintf(w, "%v\t%v\terror: %v\n", r.Op, r.Output, r.Err)
			continue
		}
		logger.Debug("operation succeeded", "op", r.Op, "output", r.Output)
		fmt.Fprintf(w, "%v\t%v\n", r.Op, r.Output)
	}

	if failed > 0 {
		logger.Warn("script finished with failures", "failed", failed, "total", len(f.Operations))
		return fmt.Errorf("%v of %v operations failed", failed, len(f.Operations))
	}
	return nil
}

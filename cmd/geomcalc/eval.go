package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"deedles.dev/xgeom/internal/script"
)

var (
	flagOp    string
	flagType  string
	flagPoint []string
	flagRect  []string
	flagDelta []string
	flagSize  uint64
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate a single operation",
	Long: `Evaluate a single operation and print its result.

Operations:
  ` + strings.Join(script.Ops, "\n  ") + `

For delta, --point and --delta are the two points to measure between.
A failed checked operation prints the unchanged operand and exits with
an error.`,
	Args: cobra.NoArgs,
	RunE: runEval,
}

func init() {
	evalCmd.Flags().StringVar(&flagOp, "op", "", "Operation to evaluate")
	evalCmd.Flags().StringVar(&flagType, "type", "i32", "Numeric type (i8, i16, i32, i64, u8, u16, u32, u64, f32, f64)")
	evalCmd.Flags().StringSliceVar(&flagPoint, "point", nil, "Point operand as x,y")
	evalCmd.Flags().StringSliceVar(&flagRect, "rect", nil, "Rectangle operand as x1,y1,x2,y2")
	evalCmd.Flags().StringSliceVar(&flagDelta, "delta", nil, "Translation delta as dx,dy")
	evalCmd.Flags().Uint64Var(&flagSize, "size", 0, "Target size for resize")
	evalCmd.MarkFlagRequired("op")
}

func runEval(cmd *cobra.Command, args []string) error {
	op := script.Operation{
		Op:    flagOp,
		Type:  flagType,
		Point: flagPoint,
		Rect:  flagRect,
		Delta: flagDelta,
		Size:  flagSize,
	}

	out, err := script.Eval(op)
	logger.Debug("evaluated", "op", op, "output", out, "error", err)
	if out != "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	return err
}

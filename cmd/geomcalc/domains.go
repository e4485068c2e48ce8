package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"deedles.dev/xgeom/internal/script"
)

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List the numeric domains",
	Long:  `Shows the bounds of every numeric type accepted by --type.`,
	Args:  cobra.NoArgs,
	Run:   runDomains,
}

func runDomains(cmd *cobra.Command, args []string) {
	domains := script.Domains()
	w := cmd.OutOrStdout()

	maxMinLen := 3 // "Min" header
	for _, d := range domains {
		maxMinLen = max(maxMinLen, len(d.Min))
	}

	fmt.Fprintf(w, "  %-4s  %4s  %-6s  %*s  %s\n", "Type", "Bits", "Signed", maxMinLen, "Min", "Max")
	fmt.Fprintf(w, "  %-4s  %4s  %-6s  %*s  %s\n", "----", "----", "------", maxMinLen, "---", "---")
	for _, d := range domains {
		fmt.Fprintf(w, "  %-4s  %4d  %-6v  %*s  %s\n", d.Type, d.Bits, d.Signed, maxMinLen, d.Min, d.Max)
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/circ-reader/internal/scan"
)

var linesCmd = &cobra.Command{
	Use:   "lines <file>",
	Short: "Print the raw export lines, or per-line length diagnostics",
	Long: `Lines bypasses record extraction and prints the export as-is. With
--count each line is prefixed with its character count, which helps when
checking how a new export format lines up against the field rules.`,
	Args: cobra.ExactArgs(1),
	RunE: runLines,
}

func init() {
	linesCmd.Flags().Bool("count", false, "print each line's character count before its content")

	rootCmd.AddCommand(linesCmd)
}

func runLines(cmd *cobra.Command, args []string) error {
	lines, err := scan.ReadLines(args[0])
	if err != nil {
		return err
	}

	count, _ := cmd.Flags().GetBool("count")
	if count {
		for _, info := range scan.Lengths(lines) {
			fmt.Printf("%4d  %s\n", info.Length, info.Content)
		}
		return nil
	}
	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}

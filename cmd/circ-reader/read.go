package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/mesh-intelligence/circ-reader/internal/report"
	"github.com/mesh-intelligence/circ-reader/internal/scan"
	"github.com/mesh-intelligence/circ-reader/pkg/types"
)

var readCmd = &cobra.Command{
	Use:   "read <file>",
	Short: "Reconstruct discharge records from an export file",
	Long: `Read scans a WorkFlows discharge export line by line, reconstructs one
record per discharged item, and prints the records as YAML (or JSON).

By default records are sorted by location, header, author, and description
so the list follows a usable walking order within each shelving location.
--legacy-sort keeps the original emission order instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runRead,
}

func init() {
	readCmd.Flags().Bool("brief", false, "limit each record to header, author, location, and description")
	readCmd.Flags().Bool("pretty", false, "render records as an auto-sized table")
	readCmd.Flags().Bool("legacy-sort", false, "keep records in emission order instead of sorting by location")
	readCmd.Flags().Bool("json", false, "output records as JSON instead of YAML")

	rootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	lines, err := scan.ReadLines(args[0])
	if err != nil {
		return err
	}

	records := scan.Records(lines)
	if len(records) == 0 {
		return fmt.Errorf("%s: %w", args[0], report.ErrNoRecords)
	}

	cfg := loadConfig()
	if legacySort(cmd, cfg) {
		warnLegacySort()
	} else {
		records = report.Canonical(records)
	}

	pretty, _ := cmd.Flags().GetBool("pretty")
	if pretty {
		report.Render(os.Stdout, records)
		return nil
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	brief, _ := cmd.Flags().GetBool("brief")
	if !cmd.Flags().Changed("brief") {
		brief = cfg.Brief
	}
	if brief {
		return emit(report.Project(records), jsonOutput)
	}
	return emit(records, jsonOutput)
}

// legacySort reports whether the canonical sort should be skipped, from the
// flag when given and the config file otherwise.
func legacySort(cmd *cobra.Command, cfg types.Config) bool {
	if cmd.Flags().Changed("legacy-sort") {
		v, _ := cmd.Flags().GetBool("legacy-sort")
		return v
	}
	return cfg.LegacySort
}

func warnLegacySort() {
	fmt.Fprintln(os.Stderr, "warning: legacy sort keeps emission order; records may not follow a usable walking order")
}

func emit(v any, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	enc := yaml.NewEncoder(os.Stdout)
	defer enc.Close()
	return enc.Encode(v)
}

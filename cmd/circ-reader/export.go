package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/circ-reader/internal/export"
	"github.com/mesh-intelligence/circ-reader/internal/report"
	"github.com/mesh-intelligence/circ-reader/internal/scan"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export discharge records to CSV, XLSX, YAML, or JSON",
	Long: `Export reconstructs the discharge records and writes them to a file.
The output path defaults to the input name with the format's extension.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("format", "", "output format: csv, xlsx, yaml, or json (default csv)")
	exportCmd.Flags().String("out", "", "output path (default: input name with the format extension)")
	exportCmd.Flags().Bool("legacy-sort", false, "keep records in emission order instead of sorting by location")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
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

	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = cfg.Export.Format
	}
	if format == "" {
		format = "csv"
	}
	format = strings.ToLower(format)

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = cfg.Export.Out
	}
	if out == "" {
		base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
		out = base + "." + format
	}

	if err := export.Write(out, format, records); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote %d record(s) to %s\n", len(records), out)
	return nil
}

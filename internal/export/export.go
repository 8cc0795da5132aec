// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes reconstructed discharge records to files.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
	"go.yaml.in/yaml/v3"

	"github.com/mesh-intelligence/circ-reader/pkg/types"
)

// columns is the export column order, shared by the CSV and XLSX writers.
var columns = []string{"location", "header", "author", "description", "copy", "item_id", "type", "date"}

func row(r types.Record) []string {
	return []string{r.Location, r.Header, r.Author, r.Description, r.Copy, r.ItemID, r.Type, r.Date}
}

// Write writes records to path in the given format: csv, xlsx, yaml, or json.
func Write(path, format string, records []types.Record) error {
	switch format {
	case "csv":
		return WriteCSV(path, records)
	case "xlsx":
		return WriteXLSX(path, records)
	case "yaml":
		return WriteYAML(path, records)
	case "json":
		return WriteJSON(path, records)
	default:
		return fmt.Errorf("unknown export format %q (want csv, xlsx, yaml, or json)", format)
	}
}

// WriteCSV writes records as CSV with a header row.
func WriteCSV(path string, records []types.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		f.Close()
		return err
	}
	for _, r := range records {
		if err := w.Write(row(r)); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteXLSX writes records to a single-sheet workbook.
func WriteXLSX(path string, records []types.Record) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, h := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for i, r := range records {
		for j, v := range row(r) {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	return f.SaveAs(path)
}

// WriteYAML writes records as a YAML list.
func WriteYAML(path string, records []types.Record) error {
	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// WriteJSON writes records as an indented JSON array.
func WriteJSON(path string, records []types.Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

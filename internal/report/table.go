package report

import (
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/mesh-intelligence/circ-reader/pkg/types"
)

// Render writes records to w as an auto-sized table. Dates are trimmed for
// display only; the records themselves keep the raw value.
func Render(w io.Writer, records []types.Record) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Location", "Header", "Author", "Description", "Copy", "Item ID", "Type", "Discharged"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for _, r := range records {
		table.Append([]string{
			r.Location,
			r.Header,
			r.Author,
			r.Description,
			r.Copy,
			r.ItemID,
			r.Type,
			strings.TrimSpace(r.Date),
		})
	}
	table.Render()
}

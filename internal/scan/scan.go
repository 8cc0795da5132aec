// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan reconstructs discharge records from the raw lines of a
// WorkFlows circulation export. The export has no delimiters between items:
// field lines accumulate into a draft record, and a "Date of discharge:"
// line marks the end of one item and emits a snapshot.
package scan

import (
	"strings"

	"github.com/mesh-intelligence/circ-reader/pkg/types"
)

// Field markers as they appear in the export.
const (
	copyMarker      = "copy:"
	itemIDMarker    = "item ID:"
	typeMarker      = "type:"
	locationMarker  = "location:"
	dischargeMarker = "Date of discharge:"
)

// gnPrefix marks graphic-novel headers, which run longer than the usual
// three characters.
const gnPrefix = "GN "

// authorMaxLen excludes longer bibliographic lines from the author rule.
// A heuristic, not a schema rule: author lines in the export are short.
const authorMaxLen = 50

// draft accumulates field values across lines. Slots are only ever
// overwritten, never cleared, so consecutive items that share a field block
// (same author, same location) inherit the earlier value. That carry-over is
// how the export actually works and must not be "fixed".
type draft struct {
	header      string
	author      string
	description string
	copyNum     string
	itemID      string
	itemType    string
	location    string
}

// snapshot copies the current slot values into an immutable Record. Date is
// not part of the draft; it is read off the terminator line itself.
func (d *draft) snapshot() types.Record {
	return types.Record{
		Header:      d.header,
		Author:      d.author,
		Description: d.description,
		Copy:        d.copyNum,
		ItemID:      d.itemID,
		Type:        d.itemType,
		Location:    d.location,
	}
}

// rule pairs a line predicate with a slot update. Every rule is tested
// against every line; rules are independent, not else-branches, so a single
// line can update more than one slot.
type rule struct {
	match func(line string) bool
	apply func(line string, d *draft)
}

var rules = []rule{
	// Plain three-character classification header, taken verbatim without
	// trimming.
	{
		match: func(line string) bool { return len(line) == 3 },
		apply: func(line string, d *draft) { d.header = line },
	},
	// Graphic-novel header, longer than three characters. Listed after the
	// length rule so it wins if both ever applied to one line.
	{
		match: func(line string) bool { return strings.HasPrefix(line, gnPrefix) },
		apply: func(line string, d *draft) { d.header = line },
	},
	// Author lines look like "Smith, John". The length bound keeps longer
	// bibliographic lines that happen to contain a comma out.
	{
		match: func(line string) bool { return strings.Contains(line, ",") && len(line) < authorMaxLen },
		apply: func(line string, d *draft) { d.author = strings.TrimSpace(line) },
	},
	// Title/series lines use a " / " separator.
	{
		match: func(line string) bool { return strings.Contains(line, " / ") },
		apply: func(line string, d *draft) { d.description = strings.TrimSpace(line) },
	},
	{
		match: func(line string) bool { return strings.Contains(line, copyMarker) },
		apply: func(line string, d *draft) { d.copyNum = tokenAfter(line, copyMarker) },
	},
	// The export sometimes doubles the colon after "item ID:". Leading
	// colons on the token are artifacts, not part of the barcode.
	{
		match: func(line string) bool { return strings.Contains(line, itemIDMarker) },
		apply: func(line string, d *draft) { d.itemID = strings.TrimLeft(tokenAfter(line, itemIDMarker), ":") },
	},
	{
		match: func(line string) bool { return strings.Contains(line, typeMarker) },
		apply: func(line string, d *draft) { d.itemType = tokenAfter(line, typeMarker) },
	},
	// Shelving location drops the sub-location suffix: "KIDS-A1" is shelved
	// under "KIDS".
	{
		match: func(line string) bool { return strings.Contains(line, locationMarker) },
		apply: func(line string, d *draft) { d.location = locationAfter(line) },
	},
}

// Records runs the line scan and returns one Record per terminator line, in
// input order. Unrecognized lines are skipped silently; the export is noisy
// by nature and most lines match no rule. A terminator seen before any field
// lines yields a record of empty fields, which is valid output.
func Records(lines []string) []types.Record {
	var d draft
	var records []types.Record

	for _, line := range lines {
		for _, r := range rules {
			if r.match(line) {
				r.apply(line, &d)
			}
		}

		if strings.Contains(line, dischargeMarker) {
			rec := d.snapshot()
			rec.Date = textAfter(line, dischargeMarker)
			records = append(records, rec)
		}
	}

	return records
}

// tokenAfter returns the first whitespace-delimited token following marker,
// or "" when nothing follows it.
func tokenAfter(line, marker string) string {
	_, rest, ok := strings.Cut(line, marker)
	if !ok {
		return ""
	}
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// textAfter returns everything following marker, untrimmed.
func textAfter(line, marker string) string {
	_, rest, _ := strings.Cut(line, marker)
	return rest
}

// locationAfter extracts the shelving location: text after the marker,
// truncated at the first "-", trimmed.
func locationAfter(line string) string {
	_, rest, _ := strings.Cut(line, locationMarker)
	if i := strings.IndexByte(rest, '-'); i >= 0 {
		rest = rest[:i]
	}
	return strings.TrimSpace(rest)
}

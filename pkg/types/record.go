// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the circ-reader pipeline.
package types

// Record represents one discharged item reconstructed from the export.
// Fields other than Date keep whatever value the scanner last saw, so an
// item that shares its author or location block with the previous item still
// comes out fully populated. A field never seen is the empty string.
type Record struct {
	// Header is the three-character classification code, or the full
	// "GN ..." header for graphic novels.
	Header string `json:"header" yaml:"header"`

	// Author is the author line as printed, e.g. "Smith, John".
	Author string `json:"author" yaml:"author"`

	// Description is the title/series line containing the " / " separator.
	Description string `json:"description" yaml:"description"`

	// Copy is the copy number token, e.g. "2" from "copy: 2 of 3".
	Copy string `json:"copy" yaml:"copy"`

	// ItemID is the item barcode with any leading colon artifact removed.
	ItemID string `json:"item_id" yaml:"item_id"`

	// Type is the item type token, e.g. "BOOK".
	Type string `json:"type" yaml:"type"`

	// Location is the shelving location with any sub-location suffix dropped.
	Location string `json:"location" yaml:"location"`

	// Date is the discharge date exactly as printed after the marker,
	// including leading whitespace. Unlike the other fields it never carries
	// over; each record's date comes off its own terminator line.
	Date string `json:"date" yaml:"date"`
}

// BriefRecord is the four-field display view of a Record.
type BriefRecord struct {
	Header      string `json:"header" yaml:"header"`
	Author      string `json:"author" yaml:"author"`
	Location    string `json:"location" yaml:"location"`
	Description string `json:"description" yaml:"description"`
}

// Brief returns the display projection of r. The projection is a copy; the
// underlying Record is not modified.
func (r Record) Brief() BriefRecord {
	return BriefRecord{
		Header:      r.Header,
		Author:      r.Author,
		Location:    r.Location,
		Description: r.Description,
	}
}

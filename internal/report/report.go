// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report orders and presents reconstructed discharge records.
package report

import (
	"errors"
	"sort"

	"github.com/mesh-intelligence/circ-reader/pkg/types"
)

// ErrNoRecords indicates the scan produced zero records. Callers embedding
// the reader can test for it with errors.Is instead of the process dying.
var ErrNoRecords = errors.New("no discharge records found")

// Canonical returns a copy of records stably sorted by location, header,
// author, and description, ascending byte order. Never-set fields are empty
// strings and sort before populated ones. Records with equal keys keep
// their emission order.
func Canonical(records []types.Record) []types.Record {
	out := make([]types.Record, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

func less(a, b types.Record) bool {
	if a.Location != b.Location {
		return a.Location < b.Location
	}
	if a.Header != b.Header {
		return a.Header < b.Header
	}
	if a.Author != b.Author {
		return a.Author < b.Author
	}
	return a.Description < b.Description
}

// Project returns the four-field display view of records. The underlying
// records are not modified.
func Project(records []types.Record) []types.BriefRecord {
	brief := make([]types.BriefRecord, len(records))
	for i, r := range records {
		brief[i] = r.Brief()
	}
	return brief
}

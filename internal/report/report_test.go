// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"errors"
	"reflect"
	"testing"

	"github.com/mesh-intelligence/circ-reader/pkg/types"
)

func rec(location, header, author, description, date string) types.Record {
	return types.Record{
		Location:    location,
		Header:      header,
		Author:      author,
		Description: description,
		Date:        date,
	}
}

func TestCanonicalOrder(t *testing.T) {
	in := []types.Record{
		rec("STACKS", "JHF", "Smith, John", "B / 1", " 2024-01-01"),
		rec("KIDS", "ABC", "Austen, Jane", "A / 1", " 2024-01-02"),
		rec("KIDS", "ABC", "Austen, Jane", "A / 0", " 2024-01-03"),
		rec("KIDS", "AAA", "Zola, Emile", "Z / 9", " 2024-01-04"),
	}

	got := Canonical(in)

	wantDates := []string{" 2024-01-04", " 2024-01-03", " 2024-01-02", " 2024-01-01"}
	for i, want := range wantDates {
		if got[i].Date != want {
			t.Errorf("got[%d].Date = %q, want %q", i, got[i].Date, want)
		}
	}
}

func TestCanonicalStable(t *testing.T) {
	// Identical sort keys, different dates: emission order must survive.
	in := []types.Record{
		rec("KIDS", "ABC", "Austen, Jane", "A / 1", " 2024-01-01"),
		rec("KIDS", "ABC", "Austen, Jane", "A / 1", " 2024-01-02"),
		rec("KIDS", "ABC", "Austen, Jane", "A / 1", " 2024-01-03"),
	}

	got := Canonical(in)

	for i, r := range in {
		if got[i].Date != r.Date {
			t.Errorf("got[%d].Date = %q, want %q (stable order violated)", i, got[i].Date, r.Date)
		}
	}
}

func TestCanonicalEmptyFieldsSortFirst(t *testing.T) {
	in := []types.Record{
		rec("KIDS", "ABC", "Austen, Jane", "A / 1", " 2024-01-01"),
		rec("", "", "", "", " 2024-01-02"),
	}

	got := Canonical(in)

	if got[0].Date != " 2024-01-02" {
		t.Errorf("record with empty fields should sort first, got %+v", got[0])
	}
}

func TestCanonicalDoesNotMutateInput(t *testing.T) {
	in := []types.Record{
		rec("STACKS", "JHF", "Smith, John", "B / 1", " 2024-01-01"),
		rec("KIDS", "ABC", "Austen, Jane", "A / 1", " 2024-01-02"),
	}
	orig := make([]types.Record, len(in))
	copy(orig, in)

	Canonical(in)

	if !reflect.DeepEqual(in, orig) {
		t.Error("Canonical mutated its input; legacy mode depends on emission order surviving")
	}
}

func TestCanonicalAndLegacyHoldSameRecords(t *testing.T) {
	legacy := []types.Record{
		rec("STACKS", "JHF", "Smith, John", "B / 1", " 2024-01-01"),
		rec("KIDS", "ABC", "Austen, Jane", "A / 1", " 2024-01-02"),
		rec("AV", "DVD", "", "C / 2", " 2024-01-03"),
	}

	canonical := Canonical(legacy)

	// Re-sorting both by the same keys must give identical sequences; the
	// two modes differ only in order.
	if !reflect.DeepEqual(Canonical(canonical), Canonical(legacy)) {
		t.Error("canonical and legacy outputs hold different record sets")
	}
	if len(canonical) != len(legacy) {
		t.Errorf("len(canonical) = %d, want %d", len(canonical), len(legacy))
	}
}

func TestProject(t *testing.T) {
	in := []types.Record{
		{
			Header:      "ABC",
			Author:      "Smith, John",
			Description: "Cats and Dogs / A Tale",
			Copy:        "2",
			ItemID:      "12345",
			Type:        "BOOK",
			Location:    "KIDS",
			Date:        " 2024-01-05",
		},
	}

	got := Project(in)

	want := []types.BriefRecord{
		{
			Header:      "ABC",
			Author:      "Smith, John",
			Location:    "KIDS",
			Description: "Cats and Dogs / A Tale",
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Project() = %+v, want %+v", got, want)
	}

	// Projection is a view; the full record keeps its dropped fields.
	if in[0].ItemID != "12345" || in[0].Date != " 2024-01-05" {
		t.Error("Project mutated the underlying record")
	}
}

func TestErrNoRecordsIsMatchable(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), ErrNoRecords)
	if !errors.Is(wrapped, ErrNoRecords) {
		t.Error("ErrNoRecords should be matchable through wrapping")
	}
}

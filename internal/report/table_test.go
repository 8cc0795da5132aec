package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mesh-intelligence/circ-reader/pkg/types"
)

func TestRenderIncludesFieldValues(t *testing.T) {
	records := []types.Record{
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

	var buf bytes.Buffer
	Render(&buf, records)

	out := buf.String()
	for _, want := range []string{"KIDS", "ABC", "Smith, John", "Cats and Dogs / A Tale", "2", "12345", "BOOK"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}

	// The raw date carries a leading space; the table shows it trimmed.
	if !strings.Contains(out, "2024-01-05") {
		t.Errorf("table output missing date:\n%s", out)
	}
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, nil)

	// Headers still render; there is just nothing under them.
	if !strings.Contains(strings.ToUpper(buf.String()), "LOCATION") {
		t.Errorf("expected header row, got:\n%s", buf.String())
	}
}

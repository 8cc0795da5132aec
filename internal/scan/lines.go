package scan

import (
	"fmt"
	"os"
	"strings"
)

// LineInfo is a per-line diagnostic: the line's character count and its
// content. Useful when checking how a new export lines up against the
// field rules.
type LineInfo struct {
	Length  int    `json:"length" yaml:"length"`
	Content string `json:"content" yaml:"content"`
}

// ReadLines reads path and splits it into lines. CRLF and bare CR line
// endings are normalized, and a final newline does not produce a trailing
// empty line. The whole file is read up front; circulation exports are small.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading export %s: %w", path, err)
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}

// Lengths returns the per-line diagnostics for lines.
func Lengths(lines []string) []LineInfo {
	infos := make([]LineInfo, len(lines))
	for i, line := range lines {
		infos[i] = LineInfo{Length: len(line), Content: line}
	}
	return infos
}

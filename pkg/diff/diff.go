// Package diff renders unified-style diffs between two resolved style
// mappings, one property per line.
package diff

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/alexisbeaulieu97/woosign/pkg/style"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Styles compares two style mappings and returns a unified diff of their
// "key: value" lines. Returns an empty string when both render identically.
func Styles(from, to style.Map, fromLabel, toLabel string) string {
	return GenerateUnifiedDiff(Lines(from), Lines(to), fromLabel, toLabel)
}

// Lines serialises m as sorted "key: value" lines. Non-string values are
// JSON encoded so nested values (shadow offsets, transforms) compare by
// content.
func Lines(m style.Map) []byte {
	var buf bytes.Buffer
	for _, key := range m.Keys() {
		fmt.Fprintf(&buf, "%s: %s\n", key, formatValue(m[key]))
	}
	return buf.Bytes()
}

func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	encoded, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(encoded)
}

// GenerateUnifiedDiff generates a unified diff format output comparing expected and actual content.
// Returns empty string if content is identical.
// Truncates diffs exceeding 10,000 lines with a truncation marker.
func GenerateUnifiedDiff(expected, actual []byte, expectedLabel, actualLabel string) string {
	if bytes.Equal(expected, actual) {
		return ""
	}

	dmp := diffmatchpatch.New()

	expectedStr := string(expected)
	actualStr := string(actual)

	// Diff whole lines so each property shows up as one +/- entry.
	chars1, chars2, lineArray := dmp.DiffLinesToChars(expectedStr, actualStr)
	diffs := dmp.DiffMain(chars1, chars2, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", expectedLabel)
	fmt.Fprintf(&buf, "+++ %s\n", actualLabel)

	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", countLines(expectedStr), countLines(actualStr))

	for _, diff := range diffs {
		text := diff.Text
		if text == "" {
			continue
		}
		lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")

		prefix := " "
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range lines {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}

	result := buf.String()
	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		truncated := strings.Join(lines[:maxDiffLines], "\n")
		return truncated + "\n" + truncateMessage + "\n"
	}

	return result
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(strings.TrimSuffix(s, "\n"), "\n") + 1
}

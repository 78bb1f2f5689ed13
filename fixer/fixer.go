package fixer

import (
	"strings"
	"unicode"
)

// Result describes what a fix pass changed.
type Result struct {
	Replacements int      `json:"replacements"`
	Lines        []int    `json:"lines,omitempty"` // 1-based
	Changes      []Change `json:"changes,omitempty"`
}

// Changed reports whether at least one comma was removed.
func (r Result) Changed() bool {
	return r.Replacements > 0
}

// Fix removes trailing commas that precede a lone closing brace in content.
// Lines are split and rejoined on "\n", so a trailing newline is kept.
func Fix(content string) (string, Result) {
	lines := strings.Split(content, "\n")
	fixed, res := FixLines(lines)
	return strings.Join(fixed, "\n"), res
}

// FixLines returns a copy of lines where every line ending in a comma whose
// next non-blank line is exactly "}" has that comma removed. The input slice
// is not modified and the line count never changes.
func FixLines(lines []string) ([]string, Result) {
	out := make([]string, len(lines))
	var res Result

	for i, line := range lines {
		out[i] = line
		if !EndsWithComma(line) {
			continue
		}
		j := NextNonBlank(lines, i+1)
		if j < 0 || !IsClosingBrace(lines[j]) {
			continue
		}
		out[i] = stripComma(line)
		res.Replacements++
		res.Lines = append(res.Lines, i+1)
		res.Changes = append(res.Changes, Change{Line: i + 1, Before: line, After: out[i]})
	}

	return out, res
}

// EndsWithComma reports whether the line's last non-whitespace character is a comma.
func EndsWithComma(line string) bool {
	return strings.HasSuffix(trimRight(line), ",")
}

// IsBlank reports whether the line holds nothing but whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// IsClosingBrace reports whether the line is a lone "}" once trimmed.
// "}," or "} // comment" do not count.
func IsClosingBrace(line string) bool {
	return strings.TrimSpace(line) == "}"
}

// NextNonBlank returns the index of the first non-blank line at or after
// from, or -1 when the rest of the document is blank.
func NextNonBlank(lines []string, from int) int {
	for j := max(from, 0); j < len(lines); j++ {
		if !IsBlank(lines[j]) {
			return j
		}
	}
	return -1
}

// stripComma drops the comma at the end of the trimmed content, keeping
// whatever whitespace followed it.
func stripComma(line string) string {
	at := len(trimRight(line)) - 1
	return line[:at] + line[at+1:]
}

func trimRight(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

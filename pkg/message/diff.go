package message

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/text/cases"
)

// DiffKind classifies how two strings differ.
type DiffKind int

const (
	// DiffNone means the strings are equal.
	DiffNone DiffKind = iota
	// DiffCase means the strings differ only in letter case.
	DiffCase
	// DiffMissingEnd means the checked string is a strict prefix
	// of the expected one.
	DiffMissingEnd
	// DiffExtraEnd means the expected string is a strict prefix
	// of the checked one.
	DiffExtraEnd
	// DiffEndOfLine means the first difference is a CR/LF
	// confusion.
	DiffEndOfLine
	// DiffWhitespace means the first difference is a space/tab
	// confusion.
	DiffWhitespace
	// DiffSameLength means the strings have the same length but
	// different content.
	DiffSameLength
	// DiffGeneral covers every other difference.
	DiffGeneral
)

// String returns the name of the kind.
func (k DiffKind) String() string {
	switch k {
	case DiffNone:
		return "none"
	case DiffCase:
		return "case"
	case DiffMissingEnd:
		return "missing end"
	case DiffExtraEnd:
		return "extra end"
	case DiffEndOfLine:
		return "end of line"
	case DiffWhitespace:
		return "whitespace"
	case DiffSameLength:
		return "same length"
	case DiffGeneral:
		return "general"
	}
	return "unknown"
}

// Window geometry, in runes.
const (
	WindowBefore = 10
	WindowSize   = 20
)

// StringDiff is the result of DiffStrings.
type StringDiff struct {
	Kind DiffKind

	// Index is the rune index of the first difference; for
	// prefix differences it is the length of the shorter string.
	// It is -1 when the strings are equal.
	Index int

	// Start is the rune index where both windows begin.
	Start int

	// Actual and Expected are the windows extracted from each
	// string, framed with "..." where text was cut and tagged
	// with a <<marker>> for whitespace and end-of-line kinds.
	Actual   string
	Expected string

	actualLen   int
	expectedLen int
}

// DiffStrings finds and classifies the first difference between
// actual and expected.
func DiffStrings(actual, expected string) StringDiff {
	if actual == expected {
		return StringDiff{Kind: DiffNone, Index: -1}
	}

	a, e := []rune(actual), []rune(expected)
	i := firstDifference(a, e)

	d := StringDiff{
		Kind:        classify(a, e, i),
		Index:       i,
		Start:       max(0, i-WindowBefore),
		actualLen:   len(a),
		expectedLen: len(e),
	}

	tagged := d.Kind == DiffEndOfLine || d.Kind == DiffWhitespace
	d.Actual = window(a, d.Start, i, tagged)
	d.Expected = window(e, d.Start, i, tagged)
	return d
}

func firstDifference(a, e []rune) int {
	n := min(len(a), len(e))
	for i := 0; i < n; i++ {
		if a[i] != e[i] {
			return i
		}
	}
	return n
}

// classify applies the kinds in a fixed order: case-only, prefix,
// end of line, whitespace, same length, general.
func classify(a, e []rune, i int) DiffKind {
	sameLength := len(a) == len(e)

	switch {
	case sameLength && foldEqual(string(a), string(e)):
		return DiffCase
	case i == len(a):
		return DiffMissingEnd
	case i == len(e):
		return DiffExtraEnd
	case isLineBreak(a[i]) && isLineBreak(e[i]):
		return DiffEndOfLine
	case isBlank(a[i]) && isBlank(e[i]):
		return DiffWhitespace
	case sameLength:
		return DiffSameLength
	}
	return DiffGeneral
}

func foldEqual(a, b string) bool {
	return cases.Fold().String(a) == cases.Fold().String(b)
}

func isLineBreak(r rune) bool { return r == '\r' || r == '\n' }

func isBlank(r rune) bool { return r == ' ' || r == '\t' }

func window(r []rune, start, at int, tagged bool) string {
	end := min(len(r), start+WindowSize)

	var sb strings.Builder
	if start > 0 {
		sb.WriteString("...")
	}
	for k := start; k < end; k++ {
		if tagged && k == at {
			sb.WriteString(marker(r, k))
		}
		sb.WriteRune(r[k])
	}
	if end < len(r) {
		sb.WriteString("...")
	}
	return sb.String()
}

func marker(r []rune, k int) string {
	switch r[k] {
	case '\r':
		if k+1 < len(r) && r[k+1] == '\n' {
			return "<<CRLF>>"
		}
		return "<<CR>>"
	case '\n':
		return "<<LF>>"
	case '\t':
		return "<<tab>>"
	case ' ':
		return "<<space>>"
	}
	return ""
}

// Template returns the headline template describing the kind.
func (d StringDiff) Template() string {
	switch d.Kind {
	case DiffNone:
		return "The {checked} is equal to the {expected}."
	case DiffCase:
		return "The {checked} is different from the {expected} but only in case."
	case DiffMissingEnd:
		return "The {checked} is different from the {expected}, it is missing the end."
	case DiffExtraEnd:
		return "The {checked} is different from the {expected}, it contains extra text at the end."
	case DiffEndOfLine:
		return "The {checked} is different from the {expected}, they differ in end of line markers."
	case DiffWhitespace:
		return "The {checked} is different from the {expected}, they differ in spaces and tabs."
	case DiffSameLength:
		return "The {checked} is different from the {expected} but has same length."
	}
	return "The {checked} is different from the {expected}."
}

// Windowed reports whether the windows should be displayed instead
// of the complete strings: either the difference involves
// invisible characters or one string does not fit in a window.
func (d StringDiff) Windowed() bool {
	if d.Kind == DiffNone {
		return false
	}
	return d.Kind == DiffEndOfLine || d.Kind == DiffWhitespace ||
		d.actualLen > WindowSize || d.expectedLen > WindowSize
}

// Details returns the extra lines describing the difference: the
// position and, for multi-line texts, a unified line diff.
func (d StringDiff) Details(actual, expected string) []string {
	if d.Kind == DiffNone {
		return nil
	}

	lines := []string{
		fmt.Sprintf("The first difference is at index %d.", d.Index),
	}
	if d.Kind == DiffGeneral || d.Kind == DiffSameLength {
		if diff := LineDiff(actual, expected); diff != "" {
			lines = append(lines, "Line diff:", strings.TrimRight(diff, "\n"))
		}
	}
	return lines
}

// LineDiff returns a unified diff of two multi-line texts, or ""
// when neither text spans several lines.
func LineDiff(actual, expected string) string {
	if !strings.Contains(actual, "\n") && !strings.Contains(expected, "\n") {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "Expected",
		ToFile:   "Actual",
		Context:  1,
	})
	if err != nil {
		return ""
	}
	return diff
}

// Describe renders a complete failure message for a string
// equality check using the difference heuristic.
func Describe(b *Builder, actual, expected string) *Builder {
	d := DiffStrings(actual, expected)
	b.template = d.Template()
	if d.Windowed() {
		b.CheckedText(d.Actual)
		b.ExpectedText(d.Expected)
	}
	return b.Append(d.Details(actual, expected)...)
}

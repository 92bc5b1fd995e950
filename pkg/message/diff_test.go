package message

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

func TestDiffStrings_Classification(t *testing.T) {
	tests := []struct {
		name     string
		actual   string
		expected string
		kind     DiffKind
		index    int
	}{
		{"equal", "abc", "abc", DiffNone, -1},
		{"case only", "Hello World", "hello world", DiffCase, 0},
		{"missing end", "hello", "hello world", DiffMissingEnd, 5},
		{"extra end", "hello world", "hello", DiffExtraEnd, 5},
		{"crlf vs lf", "a\r\nb", "a\nb", DiffEndOfLine, 1},
		{"cr vs lf same length", "a\rb", "a\nb", DiffEndOfLine, 1},
		{"space vs tab", "a b", "a\tb", DiffWhitespace, 1},
		{"same length", "abc", "abd", DiffSameLength, 2},
		{"general", "abcdef", "abxy", DiffGeneral, 2},
		{"empty actual", "", "abc", DiffMissingEnd, 0},
		{"unicode runes", "héllo", "hello", DiffSameLength, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DiffStrings(tt.actual, tt.expected)
			assert.Equal(t, tt.kind, d.Kind, d.Kind.String())
			assert.Equal(t, tt.index, d.Index)
		})
	}
}

func TestDiffStrings_CaseBeatsSameLength(t *testing.T) {
	d := DiffStrings("ABC", "abc")
	assert.Equal(t, DiffCase, d.Kind)
	assert.Contains(t, d.Template(), "only in case")
}

func TestDiffStrings_WindowBounds(t *testing.T) {
	changed := []rune(alphabet)
	changed[15] = '#'

	d := DiffStrings(string(changed), alphabet)

	require.Equal(t, DiffSameLength, d.Kind)
	assert.Equal(t, 15, d.Index)
	assert.Equal(t, 5, d.Start)
	assert.Equal(t, "...fghijklmno#qrstuvwxy...", d.Actual)
	assert.Equal(t, "...fghijklmnopqrstuvwxy...", d.Expected)

	inner := strings.TrimSuffix(strings.TrimPrefix(d.Expected, "..."), "...")
	assert.Len(t, inner, WindowSize)
}

func TestDiffStrings_WindowStartsAtZeroNearBeginning(t *testing.T) {
	d := DiffStrings("abXdefghijklmnopqrstuvwxyz", alphabet)

	assert.Equal(t, 0, d.Start)
	assert.Equal(t, "abXdefghijklmnopqrst...", d.Actual)
}

func TestDiffStrings_Markers(t *testing.T) {
	tests := []struct {
		name     string
		actual   string
		expected string
		wantA    string
		wantE    string
	}{
		{"crlf", "line\r\nnext", "line\nnext", "line<<CRLF>>\r\nnext", "line<<LF>>\nnext"},
		{"lone cr", "x\ry", "x\ny", "x<<CR>>\ry", "x<<LF>>\ny"},
		{"tab", "a\tb", "a b", "a<<tab>>\tb", "a<<space>> b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DiffStrings(tt.actual, tt.expected)
			assert.Equal(t, tt.wantA, d.Actual)
			assert.Equal(t, tt.wantE, d.Expected)
			assert.True(t, d.Windowed())
		})
	}
}

func TestDiffStrings_NoMarkersForGeneralKinds(t *testing.T) {
	d := DiffStrings("a\nbc", "a\nbd")
	assert.Equal(t, DiffSameLength, d.Kind)
	assert.NotContains(t, d.Actual, "<<")
	assert.False(t, d.Windowed())
}

func TestStringDiff_Details(t *testing.T) {
	d := DiffStrings("one\ntwo\nthree", "one\n2\nthree")
	lines := d.Details("one\ntwo\nthree", "one\n2\nthree")

	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "The first difference is at index 4.", lines[0])
	assert.Equal(t, "Line diff:", lines[1])
	assert.Contains(t, lines[2], "--- Expected")
	assert.Contains(t, lines[2], "+two")
	assert.Contains(t, lines[2], "-2")

	assert.Nil(t, DiffStrings("a", "a").Details("a", "a"))
}

func TestLineDiff_SingleLine(t *testing.T) {
	assert.Empty(t, LineDiff("abc", "abd"))
}

func TestDescribe_UsesWindowsForLongStrings(t *testing.T) {
	changed := []rune(alphabet)
	changed[15] = '#'

	msg := Describe(New("unused"), string(changed), alphabet).
		Checked(string(changed)).
		Expected(Value(alphabet, "", "")).
		String()

	expected := strings.Join([]string{
		"The checked value is different from the expected value but has same length.",
		"The checked value:",
		"\t[...fghijklmno#qrstuvwxy...]",
		"The expected value:",
		"\t[...fghijklmnopqrstuvwxy...]",
		"The first difference is at index 15.",
	}, "\n")
	assert.Equal(t, expected, msg)
}

func TestDiffKind_String(t *testing.T) {
	assert.Equal(t, "end of line", DiffEndOfLine.String())
	assert.Equal(t, "unknown", DiffKind(42).String())
}

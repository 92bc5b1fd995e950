// Package message composes the human-readable text of check
// failures: a headline built from a template, a block describing
// the checked value, a block describing what was expected, and
// optional extra blocks such as string differences.
package message

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Placeholders recognised in message templates.
const (
	CheckedPlaceholder  = "{checked}"
	ExpectedPlaceholder = "{expected}"
)

// DefaultSutName is the noun used for the checked value when the
// caller did not name it.
const DefaultSutName = "value"

// Option tunes how a message is rendered. Options combine with |.
type Option uint

const (
	// NoCheckedBlock omits the checked value block.
	NoCheckedBlock Option = 1 << iota
	// NoExpectedBlock omits the expected value block.
	NoExpectedBlock
	// WithType appends the Go type to rendered values.
	WithType
	// WithCount appends "(n items)" to rendered collections.
	WithCount
)

// Has reports whether all bits of flag are set.
func (o Option) Has(flag Option) bool {
	return o&flag == flag
}

// Builder assembles a failure message. The zero value is not
// usable; start with New.
type Builder struct {
	template     string
	sutName      string
	checked      any
	hasChecked   bool
	checkedText  string
	expected     *Expected
	expectedText string
	negated      bool
	custom       string
	options      Option
	maxLen       int
	extra        []string
}

// New starts a message from a template containing {checked} and
// {expected} placeholders.
func New(template string) *Builder {
	return &Builder{template: template, sutName: DefaultSutName}
}

// For sets the noun describing the checked value ("string",
// "exception"...).
func (b *Builder) For(name string) *Builder {
	if name != "" {
		b.sutName = name
	}
	return b
}

// Checked sets the checked value rendered in the checked block.
func (b *Builder) Checked(v any) *Builder {
	b.checked = v
	b.hasChecked = true
	return b
}

// CheckedText replaces the rendering of the checked value with a
// preformatted text, such as a string difference window.
func (b *Builder) CheckedText(text string) *Builder {
	b.checkedText = text
	return b
}

// Expected attaches the expected-value descriptor.
func (b *Builder) Expected(e *Expected) *Builder {
	b.expected = e
	return b
}

// ExpectedText replaces the rendering of the expected payload.
func (b *Builder) ExpectedText(text string) *Builder {
	b.expectedText = text
	return b
}

// Negated selects the negated comparison words.
func (b *Builder) Negated(negated bool) *Builder {
	b.negated = negated
	return b
}

// Because sets a caller supplied message emitted as first line.
func (b *Builder) Because(custom string) *Builder {
	b.custom = custom
	return b
}

// With adds rendering options.
func (b *Builder) With(opts Option) *Builder {
	b.options |= opts
	return b
}

// MaxValueLength truncates rendered values longer than n. Zero
// disables truncation.
func (b *Builder) MaxValueLength(n int) *Builder {
	b.maxLen = n
	return b
}

// Append adds free-form lines after the expected block.
func (b *Builder) Append(lines ...string) *Builder {
	b.extra = append(b.extra, lines...)
	return b
}

// CheckedLabel is the text substituted for {checked}.
func (b *Builder) CheckedLabel() string {
	return "checked " + b.sutName
}

// ExpectedLabel is the text substituted for {expected}.
func (b *Builder) ExpectedLabel() string {
	if b.expected == nil {
		return "expected value"
	}
	return b.expected.label()
}

// Headline renders only the first sentence of the message.
func (b *Builder) Headline() string {
	return Substitute(b.template, b.CheckedLabel(), b.ExpectedLabel())
}

// String renders the complete message.
func (b *Builder) String() string {
	var lines []string
	if b.custom != "" {
		lines = append(lines, b.custom)
	}
	lines = append(lines, b.Headline())

	checkedType, expectedType := b.typeAnnotations()

	if b.hasChecked && !b.options.Has(NoCheckedBlock) {
		lines = append(lines,
			"The "+b.CheckedLabel()+":",
			"\t"+b.checkedPayload(checkedType),
		)
	}

	if b.expected != nil && !b.options.Has(NoExpectedBlock) {
		header := "The " + b.expected.label() + ":"
		if word := b.expected.comparison(b.negated); word != "" {
			header += " " + word
		}
		payload := b.expectedText
		if payload == "" {
			payload = b.expected.payload(b.maxLen, expectedType)
		} else {
			payload = "[" + payload + "]"
		}
		lines = append(lines, header, "\t"+payload)
	}

	lines = append(lines, b.extra...)
	return strings.Join(lines, "\n")
}

func (b *Builder) checkedPayload(withType bool) string {
	if b.checkedText != "" {
		return "[" + b.checkedText + "]"
	}

	body := "[" + FormatValue(b.checked, b.maxLen) + "]"
	if b.options.Has(WithCount) {
		if n, ok := Count(b.checked); ok {
			body += " (" + itemCount(n) + ")"
		}
	}
	if withType {
		body += " of type: [" + TypeName(b.checked) + "]"
	}
	return body
}

// typeAnnotations decides whether the checked and expected blocks
// show Go types. Types are forced when the values render the same
// text but have different types, and when a type is expected.
func (b *Builder) typeAnnotations() (checked, expected bool) {
	checked = b.options.Has(WithType)
	expected = checked

	if b.expected == nil || !b.hasChecked {
		return checked, expected
	}

	switch b.expected.Kind {
	case ExpectType:
		checked = true
	case ExpectValue:
		if b.checkedText == "" && b.expectedText == "" &&
			TypeName(b.checked) != TypeName(b.expected.Value) &&
			FormatValue(b.checked, b.maxLen) ==
				FormatValue(b.expected.Value, b.maxLen) {
			checked, expected = true, true
		}
	}
	return checked, expected
}

func itemCount(n int) string {
	if n == 1 {
		return "1 item"
	}
	return strconv.Itoa(n) + " items"
}

// Substitute replaces the placeholders of template and upper-cases
// its first rune.
func Substitute(template, checked, expected string) string {
	s := strings.NewReplacer(
		CheckedPlaceholder, checked,
		ExpectedPlaceholder, expected,
	).Replace(template)
	return capitalize(s)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

package assertion

import "strings"

// listTypes take a comma-separated operand list.
var listTypes = map[string]bool{
	"one_of":   true,
	"contains": true,
}

// ParseAssertionString parses a compact definition of the form
// "[not ]type[:value]". The operand of "one_of" and "contains" is
// split on commas into Values. Numbers stay text; evaluators
// convert expected operands as needed. "true", "false" and "nil"
// become their Go values.
//
// Examples:
//
//	"less_than:3"      -> {Type: "less_than", Value: "3"}
//	"not nil"          -> {Type: "nil", Not: true}
//	"one_of:a,b,c"     -> {Type: "one_of", Values: ["a" "b" "c"]}
//	"matches:^a:b$"    -> {Type: "matches", Value: "^a:b$"}
func ParseAssertionString(s string) Definition {
	var def Definition

	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "not "); ok {
		def.Not = true
		s = strings.TrimSpace(rest)
	}

	typ, operand, hasOperand := strings.Cut(s, ":")
	def.Type = strings.TrimSpace(typ)
	if !hasOperand {
		return def
	}

	if listTypes[def.Type] && strings.Contains(operand, ",") {
		for _, part := range strings.Split(operand, ",") {
			def.Values = append(def.Values, scalar(strings.TrimSpace(part)))
		}
		return def
	}

	def.Value = scalar(operand)
	return def
}

func scalar(s string) any {
	switch s {
	case "true":
		return true
	case "false":
		return false
	case "nil":
		return nil
	}
	return s
}

package checks

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"

	"digital.vasic.fluent/pkg/check"
	"digital.vasic.fluent/pkg/message"
)

const stringName = "string"

// Contains checks that the subject contains every one of parts.
func Contains(v check.Value[string], parts ...string) check.And[string] {
	return check.For(v).CheckName("Contains").
		SutNameIs(stringName).
		Analyze(func(sut string, test *check.Test) {
			var missing []string
			for _, p := range parts {
				if !strings.Contains(sut, p) {
					missing = append(missing, p)
				}
			}
			if len(missing) > 0 {
				test.Fail("The {checked} does not contain the expected value(s): " +
					message.FormatValue(missing, 0))
			}
		}).
		OnNegate("The {checked} contains all the given values whereas it must not.").
		DefineExpectedValue(parts, "containing", "not containing").
		End()
}

// StartsWith checks that the subject begins with prefix.
func StartsWith(v check.Value[string], prefix string) check.And[string] {
	return check.For(v).CheckName("StartsWith").
		SutNameIs(stringName).
		FailWhen(func(sut string) bool { return !strings.HasPrefix(sut, prefix) },
			"The {checked}'s start is different from the {expected}.").
		OnNegate("The {checked} starts with the {expected} whereas it must not.").
		DefineExpectedValue(prefix, "starts with", "does not start with").
		End()
}

// EndsWith checks that the subject finishes with suffix.
func EndsWith(v check.Value[string], suffix string) check.And[string] {
	return check.For(v).CheckName("EndsWith").
		SutNameIs(stringName).
		FailWhen(func(sut string) bool { return !strings.HasSuffix(sut, suffix) },
			"The {checked}'s end is different from the {expected}.").
		OnNegate("The {checked} ends with the {expected} whereas it must not.").
		DefineExpectedValue(suffix, "ends with", "does not end with").
		End()
}

// Matches checks that the whole subject matches the regular
// expression pattern. An invalid pattern is a contract violation.
func Matches(v check.Value[string], pattern string) check.And[string] {
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		panic(&check.ContractError{Check: "Matches", Reason: err.Error()})
	}

	return check.For(v).CheckName("Matches").
		SutNameIs(stringName).
		FailWhen(func(sut string) bool { return !re.MatchString(sut) },
			"The {checked} does not match the {expected}.").
		OnNegate("The {checked} matches the {expected} whereas it must not.").
		DefineExpectedValue(pattern, "matches", "does not match").
		ExpectedLabel("expected pattern").
		End()
}

// IsEqualIgnoringCase checks that the subject equals expected under
// Unicode case folding.
func IsEqualIgnoringCase(v check.Value[string], expected string) check.And[string] {
	fold := cases.Fold()

	return check.For(v).CheckName("IsEqualIgnoringCase").
		SutNameIs(stringName).
		FailWhen(func(sut string) bool {
			return fold.String(sut) != fold.String(expected)
		}, "The {checked} is different from the {expected} even ignoring case.").
		OnNegate("The {checked} is equal to the {expected} ignoring case whereas it must not.").
		DefineExpectedValue(expected, "equal ignoring case to", "different ignoring case from").
		End()
}

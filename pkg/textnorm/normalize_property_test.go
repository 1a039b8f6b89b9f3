package textnorm

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// isLegalToken reports whether a token stays inside the filesystem-safe
// alphabet the normalizer guarantees: ASCII letters, digits, space, hyphen.
func isLegalToken(token string) bool {
	for _, r := range token {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == ' ', r == '-':
		default:
			return false
		}
	}
	return true
}

func TestNormalizeProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("output alphabet is [A-Za-z0-9 -] or empty", prop.ForAll(
		func(input string) bool {
			return isLegalToken(Normalize(input))
		},
		gen.AnyString(),
	))

	properties.Property("normalization is idempotent", prop.ForAll(
		func(input string) bool {
			once := Normalize(input)
			return Normalize(once) == once
		},
		gen.AnyString(),
	))

	properties.Property("output never has leading, trailing, or doubled spaces", prop.ForAll(
		func(input string) bool {
			token := Normalize(input)
			return token == strings.TrimSpace(token) && !strings.Contains(token, "  ")
		},
		gen.AnyString(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestCapitalizeNameProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("capitalization is idempotent on normalized tokens", prop.ForAll(
		func(input string) bool {
			token := CapitalizeName(Normalize(input))
			return CapitalizeName(token) == token
		},
		gen.AnyString(),
	))

	properties.Property("capitalization preserves hyphen positions", prop.ForAll(
		func(input string) bool {
			token := Normalize(input)
			return strings.Count(CapitalizeName(token), "-") == strings.Count(token, "-")
		},
		gen.AnyString(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

package records

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// fallbackCharmaps are tried in order when the input is not valid UTF-8.
// Windows-1252 leaves five code points undefined and can therefore reject
// input; Latin-1 maps every byte value, so the chain always terminates.
var fallbackCharmaps = []struct {
	name string
	cm   *charmap.Charmap
}{
	{"windows-1252", charmap.Windows1252},
	{"latin-1", charmap.ISO8859_1},
}

// DecodeText converts raw uploaded bytes into text, returning the decoded
// string and the name of the encoding that was used. Decoding is best
// effort and never fails: unrecognized input falls through to Latin-1.
func DecodeText(data []byte) (string, string) {
	if utf8.Valid(data) {
		return string(data), "utf-8"
	}

	for _, enc := range fallbackCharmaps {
		text, err := enc.cm.NewDecoder().String(string(data))
		if err != nil || strings.ContainsRune(text, utf8.RuneError) {
			// The decoder substitutes U+FFFD for undefined bytes;
			// treat that as a failed attempt and move on.
			continue
		}
		return text, enc.name
	}

	// Unreachable while Latin-1 is the terminal entry, kept so the chain
	// honors the never-fails contract even if the table changes.
	text, _ := charmap.ISO8859_1.NewDecoder().String(string(data))
	return text, "latin-1"
}

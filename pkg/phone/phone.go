// Package phone normalizes and classifies Ugandan phone numbers.
//
// Every function in this package reports failure through a comma-ok
// result instead of an error, so callers can use them directly in
// guard conditions before building API requests.
package phone

import (
	"regexp"
	"strings"
)

// CountryCode is the Ugandan dialing code every canonical number carries.
const CountryCode = "256"

// canonicalPattern is the final shape every normalized number must match.
var canonicalPattern = regexp.MustCompile(`^\+256[0-9]{9}$`)

// Normalize converts any supported representation of a Ugandan phone
// number into the canonical +256XXXXXXXXX form. Supported inputs are
// the international form (+256759983853), the country-code form
// (256759983853), the local form (0759983853) and the bare nine-digit
// subscriber number (759983853). Separators and other non-digit
// characters are stripped before the rules apply.
func Normalize(raw string) (string, bool) {
	cleaned := clean(raw)

	var digits string

	switch {
	case strings.HasPrefix(cleaned, "+"):
		digits = cleaned[1:]
	case strings.HasPrefix(cleaned, "0") && len(cleaned) == 10:
		digits = CountryCode + cleaned[1:]
	case strings.HasPrefix(cleaned, CountryCode) && len(cleaned) == 12:
		digits = cleaned
	case len(cleaned) == 9:
		digits = CountryCode + cleaned
	default:
		return "", false
	}

	canonical := "+" + digits
	if !canonicalPattern.MatchString(canonical) {
		return "", false
	}

	return canonical, true
}

// IsValid reports whether raw normalizes to a canonical Ugandan number.
func IsValid(raw string) bool {
	_, ok := Normalize(raw)
	return ok
}

// Mask normalizes raw and hides the interior of the canonical form
// behind '*', keeping the first two and last two characters.
func Mask(raw string) (string, bool) {
	return MaskWith(raw, '*')
}

// MaskWith is Mask with a caller-chosen mask rune. The masked string
// has the same length as the canonical form.
func MaskWith(raw string, maskChar rune) (string, bool) {
	canonical, ok := Normalize(raw)
	if !ok {
		return "", false
	}

	interior := strings.Repeat(string(maskChar), len(canonical)-4)

	return canonical[:2] + interior + canonical[len(canonical)-2:], true
}

// clean strips everything except digits and a leading plus sign.
func clean(raw string) string {
	var b strings.Builder

	for i, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}

	return b.String()
}

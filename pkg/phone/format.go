package phone

// Formats bundles every representation derivable from one valid number.
type Formats struct {
	Canonical   string
	CountryCode string
	Local       string
	Provider    Provider
}

// LocalForm re-derives the 0XXXXXXXXX representation.
func LocalForm(raw string) (string, bool) {
	canonical, ok := Normalize(raw)
	if !ok {
		return "", false
	}

	return "0" + canonical[4:], true
}

// CountryCodeForm re-derives the 256XXXXXXXXX representation without
// the leading plus. Useful for URL path segments.
func CountryCodeForm(raw string) (string, bool) {
	canonical, ok := Normalize(raw)
	if !ok {
		return "", false
	}

	return canonical[1:], true
}

// AllFormats returns every representation of a valid number at once.
func AllFormats(raw string) (Formats, bool) {
	canonical, ok := Normalize(raw)
	if !ok {
		return Formats{}, false
	}

	return Formats{
		Canonical:   canonical,
		CountryCode: canonical[1:],
		Local:       "0" + canonical[4:],
		Provider:    ProviderOf(canonical),
	}, true
}

package phone

import "strings"

// Provider identifies the mobile network operator a number belongs to.
type Provider string

const (
	MTN       Provider = "mtn"
	Airtel    Provider = "airtel"
	Africell  Provider = "africell"
	UgandaTel Provider = "ugandatel"
	Unknown   Provider = "unknown"
)

// prefixTable maps network prefixes to providers in a fixed order.
// The upstream numbering data claims "75" for more than one operator;
// that collision is preserved here and table order decides the winner.
var prefixTable = []struct {
	provider Provider
	prefixes []string
}{
	{MTN, []string{"76", "77", "78"}},
	{Airtel, []string{"70", "74", "75"}},
	{Africell, []string{"75", "79"}},
	{UgandaTel, []string{"71"}},
}

// ProviderOf classifies a number by the three digits following the
// country code. Invalid numbers classify as Unknown.
func ProviderOf(raw string) Provider {
	canonical, ok := Normalize(raw)
	if !ok {
		return Unknown
	}

	networkCode := canonical[4:7]

	for _, entry := range prefixTable {
		for _, prefix := range entry.prefixes {
			if strings.HasPrefix(networkCode, prefix) {
				return entry.provider
			}
		}
	}

	return Unknown
}

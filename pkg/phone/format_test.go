package phone_test

import (
	"testing"

	"github.com/Katznicho/marzpay-go/pkg/phone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalForm(t *testing.T) {
	local, ok := phone.LocalForm("+256759983853")

	require.True(t, ok)
	assert.Equal(t, "0759983853", local)

	_, ok = phone.LocalForm("123")
	assert.False(t, ok)
}

func TestCountryCodeForm(t *testing.T) {
	form, ok := phone.CountryCodeForm("0759983853")

	require.True(t, ok)
	assert.Equal(t, "256759983853", form)

	_, ok = phone.CountryCodeForm("")
	assert.False(t, ok)
}

func TestAllFormats(t *testing.T) {
	formats, ok := phone.AllFormats("759983853")

	require.True(t, ok)
	assert.Equal(t, phone.Formats{
		Canonical:   "+256759983853",
		CountryCode: "256759983853",
		Local:       "0759983853",
		Provider:    phone.Airtel,
	}, formats)

	_, ok = phone.AllFormats("not a number")
	assert.False(t, ok)
}

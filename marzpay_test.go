package marzpay_test

import (
	"testing"

	marzpay "github.com/Katznicho/marzpay-go"
	"github.com/Katznicho/marzpay-go/pkg/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	valid := marzpay.Config{
		BaseURL:  "https://wallet.marz.test/api/v1",
		Username: "merchant",
		APIKey:   "secret-key",
	}

	t.Run("wires every service", func(t *testing.T) {
		client, err := marzpay.NewClient(valid, nil)

		require.NoError(t, err)
		assert.NotNil(t, client.Collections)
		assert.NotNil(t, client.Disbursements)
		assert.NotNil(t, client.Accounts)
		assert.NotNil(t, client.Balance)
		assert.NotNil(t, client.Transactions)
		assert.NotNil(t, client.Services)
		assert.NotNil(t, client.Webhooks)
	})

	t.Run("requires a base URL", func(t *testing.T) {
		cfg := valid
		cfg.BaseURL = ""

		_, err := marzpay.NewClient(cfg, nil)

		assert.EqualError(t, err, "marzpay: base URL is required")
	})

	t.Run("requires credentials", func(t *testing.T) {
		cfg := valid
		cfg.APIKey = ""

		_, err := marzpay.NewClient(cfg, nil)

		assert.EqualError(t, err, "marzpay: username and API key are required")
	})
}

func TestClient_SetCredentials(t *testing.T) {
	mockGw := &mocks.Gateway{}
	client := newTestClient(t, mockGw)

	mockGw.On("SetCredentials", "rotated", "new-key").Return()

	client.SetCredentials("rotated", "new-key")

	mockGw.AssertExpectations(t)
}

package marzpay_test

import (
	"context"
	"net/http"
	"testing"

	marzpay "github.com/Katznicho/marzpay-go"
	"github.com/Katznicho/marzpay-go/pkg/apierror"
	"github.com/Katznicho/marzpay-go/pkg/gateway"
	"github.com/Katznicho/marzpay-go/pkg/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccounts_Lookup(t *testing.T) {
	t.Run("uses the digits-only form in the path", func(t *testing.T) {
		mockGw := &mocks.Gateway{}
		client := newTestClient(t, mockGw)

		matchCall := mock.MatchedBy(func(req gateway.Request) bool {
			return req.Method == http.MethodGet && req.Endpoint == "/accounts/256759983853"
		})

		mockGw.On("Call", mock.Anything, matchCall, mock.Anything).
			Run(func(args mock.Arguments) {
				out := args.Get(2).(*marzpay.Account)
				*out = marzpay.Account{Msisdn: "+256759983853", RegisteredName: "JANE DOE", Active: true}
			}).
			Return(nil)

		account, err := client.Accounts.Lookup(context.Background(), "0759983853")

		require.NoError(t, err)
		assert.Equal(t, "JANE DOE", account.RegisteredName)
		assert.True(t, account.Active)
		mockGw.AssertExpectations(t)
	})

	t.Run("invalid msisdn", func(t *testing.T) {
		mockGw := &mocks.Gateway{}
		client := newTestClient(t, mockGw)

		_, err := client.Accounts.Lookup(context.Background(), "not a number")

		assertValidationCode(t, err, apierror.CodeInvalidPhoneNumber)
		assert.Empty(t, mockGw.Calls)
	})
}

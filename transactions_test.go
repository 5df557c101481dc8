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

func TestTransactions_Get(t *testing.T) {
	t.Run("fetches by id", func(t *testing.T) {
		mockGw := &mocks.Gateway{}
		client := newTestClient(t, mockGw)

		matchCall := mock.MatchedBy(func(req gateway.Request) bool {
			return req.Method == http.MethodGet && req.Endpoint == "/transactions/txn_1"
		})

		mockGw.On("Call", mock.Anything, matchCall, mock.Anything).
			Run(func(args mock.Arguments) {
				out := args.Get(2).(*marzpay.Transaction)
				*out = marzpay.Transaction{ID: "txn_1", Kind: "collection", Status: "successful"}
			}).
			Return(nil)

		txn, err := client.Transactions.Get(context.Background(), "txn_1")

		require.NoError(t, err)
		assert.Equal(t, "collection", txn.Kind)
	})

	t.Run("empty id", func(t *testing.T) {
		mockGw := &mocks.Gateway{}
		client := newTestClient(t, mockGw)

		_, err := client.Transactions.Get(context.Background(), "")

		assertValidationCode(t, err, apierror.CodeMissingField)
		assert.Empty(t, mockGw.Calls)
	})
}

func TestTransactions_List(t *testing.T) {
	t.Run("without filters", func(t *testing.T) {
		mockGw := &mocks.Gateway{}
		client := newTestClient(t, mockGw)

		mockGw.On("Call", mock.Anything, mock.MatchedBy(func(req gateway.Request) bool {
			return req.Endpoint == "/transactions"
		}), mock.Anything).Return(nil)

		_, err := client.Transactions.List(context.Background(), marzpay.TransactionFilter{})

		require.NoError(t, err)
		mockGw.AssertExpectations(t)
	})

	t.Run("with filters in the query string", func(t *testing.T) {
		mockGw := &mocks.Gateway{}
		client := newTestClient(t, mockGw)

		mockGw.On("Call", mock.Anything, mock.MatchedBy(func(req gateway.Request) bool {
			return req.Endpoint == "/transactions?limit=10&status=successful"
		}), mock.Anything).
			Run(func(args mock.Arguments) {
				out := args.Get(2).(*struct {
					Data []marzpay.Transaction `json:"data"`
				})
				out.Data = []marzpay.Transaction{{ID: "txn_1"}}
			}).
			Return(nil)

		txns, err := client.Transactions.List(context.Background(), marzpay.TransactionFilter{
			Status: "successful",
			Limit:  10,
		})

		require.NoError(t, err)
		assert.Len(t, txns, 1)
		mockGw.AssertExpectations(t)
	})
}

func TestBalance_Get(t *testing.T) {
	mockGw := &mocks.Gateway{}
	client := newTestClient(t, mockGw)

	mockGw.On("Call", mock.Anything, mock.MatchedBy(func(req gateway.Request) bool {
		return req.Method == http.MethodGet && req.Endpoint == "/balance"
	}), mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(2).(*marzpay.Balance)
			*out = marzpay.Balance{Available: 150000, Currency: "UGX"}
		}).
		Return(nil)

	balance, err := client.Balance.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(150000), balance.Available)
	assert.Equal(t, "UGX", balance.Currency)
}

func TestServices_List(t *testing.T) {
	mockGw := &mocks.Gateway{}
	client := newTestClient(t, mockGw)

	mockGw.On("Call", mock.Anything, mock.MatchedBy(func(req gateway.Request) bool {
		return req.Method == http.MethodGet && req.Endpoint == "/services"
	}), mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(2).(*struct {
				Data []marzpay.NetworkService `json:"data"`
			})
			out.Data = []marzpay.NetworkService{
				{Name: "collections", Provider: "mtn", Available: true},
				{Name: "collections", Provider: "airtel", Available: false},
			}
		}).
		Return(nil)

	services, err := client.Services.List(context.Background())

	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.True(t, services[0].Available)
	assert.False(t, services[1].Available)
}

package marzpay

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Katznicho/marzpay-go/pkg/apierror"
	"github.com/Katznicho/marzpay-go/pkg/gateway"
	"go.uber.org/zap"
)

const transactionsEndpoint = "/transactions"

var _ TransactionsService = (*transactionsService)(nil)

// Transaction is the unified ledger view over collections and
// disbursements.
type Transaction struct {
	ID        string    `json:"id"`
	Kind      string    `json:"type"`
	Msisdn    string    `json:"msisdn"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	Reference string    `json:"external_reference"`
	CreatedAt time.Time `json:"created_at"`
}

// TransactionFilter narrows List results. Zero values mean no filter.
type TransactionFilter struct {
	Status string
	Limit  int
}

type TransactionsService interface {
	Get(ctx context.Context, id string) (Transaction, error)
	List(ctx context.Context, filter TransactionFilter) ([]Transaction, error)
}

type transactionsService struct {
	gw     gateway.Gateway
	logger *zap.Logger
}

func (s *transactionsService) Get(ctx context.Context, id string) (Transaction, error) {
	if id == "" {
		return Transaction{}, apierror.NewValidation(apierror.CodeMissingField, "Transaction ID is required")
	}

	var out Transaction

	call := gateway.Request{Method: http.MethodGet, Endpoint: transactionsEndpoint + "/" + id}
	if err := s.gw.Call(ctx, call, &out); err != nil {
		return Transaction{}, err
	}

	return out, nil
}

func (s *transactionsService) List(ctx context.Context, filter TransactionFilter) ([]Transaction, error) {
	endpoint := transactionsEndpoint

	query := url.Values{}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var out struct {
		Data []Transaction `json:"data"`
	}

	call := gateway.Request{Method: http.MethodGet, Endpoint: endpoint}
	if err := s.gw.Call(ctx, call, &out); err != nil {
		s.logger.Warn("transaction listing failed", zap.Error(err))
		return nil, err
	}

	return out.Data, nil
}

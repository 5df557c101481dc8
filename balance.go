package marzpay

import (
	"context"
	"net/http"
	"time"

	"github.com/Katznicho/marzpay-go/pkg/gateway"
	"go.uber.org/zap"
)

const balanceEndpoint = "/balance"

var _ BalanceService = (*balanceService)(nil)

type Balance struct {
	Available int64     `json:"available"`
	Currency  string    `json:"currency"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BalanceService interface {
	Get(ctx context.Context) (Balance, error)
}

type balanceService struct {
	gw     gateway.Gateway
	logger *zap.Logger
}

func (s *balanceService) Get(ctx context.Context) (Balance, error) {
	var out Balance

	call := gateway.Request{Method: http.MethodGet, Endpoint: balanceEndpoint}
	if err := s.gw.Call(ctx, call, &out); err != nil {
		s.logger.Warn("balance retrieval failed", zap.Error(err))
		return Balance{}, err
	}

	return out, nil
}

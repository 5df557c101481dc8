package marzpay

import (
	"context"
	"net/http"

	"github.com/Katznicho/marzpay-go/pkg/gateway"
	"github.com/Katznicho/marzpay-go/pkg/phone"
	"go.uber.org/zap"
)

const accountsEndpoint = "/accounts"

var _ AccountsService = (*accountsService)(nil)

// Account is the registration record the networks expose for a
// subscriber number.
type Account struct {
	Msisdn         string `json:"msisdn"`
	RegisteredName string `json:"registered_name"`
	Provider       string `json:"provider"`
	Active         bool   `json:"active"`
}

type AccountsService interface {
	Lookup(ctx context.Context, msisdn string) (Account, error)
}

type accountsService struct {
	gw     gateway.Gateway
	fields *fieldValidator
	logger *zap.Logger
}

func (s *accountsService) Lookup(ctx context.Context, msisdn string) (Account, error) {
	canonical, err := s.fields.msisdn(msisdn)
	if err != nil {
		return Account{}, err
	}

	// Path segments use the digits-only form; the leading plus would
	// need escaping.
	pathForm, _ := phone.CountryCodeForm(canonical)

	var out Account

	call := gateway.Request{Method: http.MethodGet, Endpoint: accountsEndpoint + "/" + pathForm}
	if err := s.gw.Call(ctx, call, &out); err != nil {
		masked, _ := phone.Mask(canonical)
		s.logger.Warn("account lookup failed", zap.String("msisdn", masked), zap.Error(err))

		return Account{}, err
	}

	return out, nil
}

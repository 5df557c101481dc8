package marzpay

import (
	"context"
	"net/http"

	"github.com/Katznicho/marzpay-go/pkg/gateway"
	"go.uber.org/zap"
)

const servicesEndpoint = "/services"

var _ ServicesService = (*servicesService)(nil)

// NetworkService reports the availability of one operation on one
// mobile network.
type NetworkService struct {
	Name      string `json:"name"`
	Provider  string `json:"provider"`
	Currency  string `json:"currency"`
	Available bool   `json:"available"`
}

type ServicesService interface {
	List(ctx context.Context) ([]NetworkService, error)
}

type servicesService struct {
	gw     gateway.Gateway
	logger *zap.Logger
}

func (s *servicesService) List(ctx context.Context) ([]NetworkService, error) {
	var out struct {
		Data []NetworkService `json:"data"`
	}

	call := gateway.Request{Method: http.MethodGet, Endpoint: servicesEndpoint}
	if err := s.gw.Call(ctx, call, &out); err != nil {
		s.logger.Warn("service listing failed", zap.Error(err))
		return nil, err
	}

	return out.Data, nil
}

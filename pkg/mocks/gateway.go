package mocks

import (
	"context"

	"github.com/Katznicho/marzpay-go/pkg/gateway"
	"github.com/stretchr/testify/mock"
)

type Gateway struct {
	mock.Mock
}

func (_m *Gateway) Call(ctx context.Context, req gateway.Request, out any) error {
	ret := _m.Called(ctx, req, out)
	return ret.Error(0)
}

func (_m *Gateway) SetCredentials(username, apiKey string) {
	_m.Called(username, apiKey)
}

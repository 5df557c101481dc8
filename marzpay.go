// Package marzpay is a Go client for the MarzPay mobile-money API.
// It wraps collections, disbursements, account lookups, wallet
// balance, transactions, service availability and webhook management
// behind a single authenticated gateway.
package marzpay

import (
	"errors"

	"github.com/Katznicho/marzpay-go/pkg/gateway"
	"github.com/Katznicho/marzpay-go/pkg/httpclient"
	"github.com/Katznicho/marzpay-go/pkg/metrics"
	"go.uber.org/zap"
)

// Client bundles every API resource area. Each service receives the
// gateway by injection and holds no reference back to the Client.
type Client struct {
	Collections   CollectionsService
	Disbursements DisbursementsService
	Accounts      AccountsService
	Balance       BalanceService
	Transactions  TransactionsService
	Services      ServicesService
	Webhooks      WebhooksService

	gw         gateway.Gateway
	httpClient httpclient.HTTPClient
	metrics    *metrics.Metrics
}

type Option func(*Client)

// WithHTTPClient replaces the transport, mainly for tests.
func WithHTTPClient(client httpclient.HTTPClient) Option {
	return func(c *Client) { c.httpClient = client }
}

// WithGateway replaces the whole gateway, mainly for tests.
func WithGateway(gw gateway.Gateway) Option {
	return func(c *Client) { c.gw = gw }
}

// WithMetrics enables prometheus instrumentation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

func NewClient(cfg Config, logger *zap.Logger, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("marzpay: base URL is required")
	}

	if cfg.Username == "" || cfg.APIKey == "" {
		return nil, errors.New("marzpay: username and API key are required")
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	if cfg.ReferenceRule == "" {
		cfg.ReferenceRule = ReferenceUUID4
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Client{}
	for _, opt := range opts {
		opt(c)
	}

	if c.gw == nil {
		if c.httpClient == nil {
			c.httpClient = httpclient.New(cfg.Timeout)
		}

		gwCfg := gateway.Config{
			BaseURL:  cfg.BaseURL,
			Username: cfg.Username,
			APIKey:   cfg.APIKey,
			Timeout:  cfg.Timeout,
		}
		c.gw = gateway.New(gwCfg, c.httpClient, logger, gateway.WithMetrics(c.metrics))
	}

	fields := newFieldValidator(cfg.ReferenceRule, c.metrics)

	c.Collections = &collectionsService{gw: c.gw, fields: fields, logger: logger}
	c.Disbursements = &disbursementsService{gw: c.gw, fields: fields, logger: logger}
	c.Accounts = &accountsService{gw: c.gw, fields: fields, logger: logger}
	c.Balance = &balanceService{gw: c.gw, logger: logger}
	c.Transactions = &transactionsService{gw: c.gw, logger: logger}
	c.Services = &servicesService{gw: c.gw, logger: logger}
	c.Webhooks = &webhooksService{gw: c.gw, fields: fields, logger: logger}

	return c, nil
}

// SetCredentials rotates the API credentials used for Basic auth.
// The swap is not atomic with respect to in-flight calls.
func (c *Client) SetCredentials(username, apiKey string) {
	c.gw.SetCredentials(username, apiKey)
}

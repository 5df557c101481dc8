package marzpay

import (
	"context"
	"net/http"
	"time"

	"github.com/Katznicho/marzpay-go/pkg/apierror"
	"github.com/Katznicho/marzpay-go/pkg/gateway"
	"go.uber.org/zap"
)

const webhooksEndpoint = "/webhooks"

// Webhook events the API can deliver. Delivery itself happens on the
// server side; this module only manages the subscriptions.
const (
	EventCollectionCompleted   = "collection.completed"
	EventCollectionFailed      = "collection.failed"
	EventDisbursementCompleted = "disbursement.completed"
	EventDisbursementFailed    = "disbursement.failed"
)

var _ WebhooksService = (*webhooksService)(nil)

type WebhookRequest struct {
	URL   string `json:"url"`
	Event string `json:"event"`
}

type Webhook struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Event     string    `json:"event"`
	CreatedAt time.Time `json:"created_at"`
}

type WebhooksService interface {
	Create(ctx context.Context, req WebhookRequest) (Webhook, error)
	List(ctx context.Context) ([]Webhook, error)
	Delete(ctx context.Context, id string) error
}

type webhooksService struct {
	gw     gateway.Gateway
	fields *fieldValidator
	logger *zap.Logger
}

func (s *webhooksService) Create(ctx context.Context, req WebhookRequest) (Webhook, error) {
	if err := s.fields.webhookURL(req.URL); err != nil {
		return Webhook{}, err
	}

	if err := s.fields.webhookEvent(req.Event); err != nil {
		return Webhook{}, err
	}

	var out Webhook

	call := gateway.Request{Method: http.MethodPost, Endpoint: webhooksEndpoint, Body: req}
	if err := s.gw.Call(ctx, call, &out); err != nil {
		s.logger.Warn("webhook creation failed",
			zap.String("event", req.Event),
			zap.Error(err))

		return Webhook{}, err
	}

	s.logger.Info("webhook created",
		zap.String("webhookID", out.ID),
		zap.String("event", out.Event))

	return out, nil
}

func (s *webhooksService) List(ctx context.Context) ([]Webhook, error) {
	var out struct {
		Data []Webhook `json:"data"`
	}

	call := gateway.Request{Method: http.MethodGet, Endpoint: webhooksEndpoint}
	if err := s.gw.Call(ctx, call, &out); err != nil {
		return nil, err
	}

	return out.Data, nil
}

func (s *webhooksService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apierror.NewValidation(apierror.CodeMissingField, "Webhook ID is required")
	}

	call := gateway.Request{Method: http.MethodDelete, Endpoint: webhooksEndpoint + "/" + id}

	return s.gw.Call(ctx, call, nil)
}

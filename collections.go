package marzpay

import (
	"context"
	"net/http"
	"time"

	"github.com/Katznicho/marzpay-go/pkg/apierror"
	"github.com/Katznicho/marzpay-go/pkg/gateway"
	"github.com/Katznicho/marzpay-go/pkg/phone"
	"go.uber.org/zap"
)

const collectionsEndpoint = "/collections"

var _ CollectionsService = (*collectionsService)(nil)

// CollectionRequest asks a subscriber to approve a payment into the
// configured wallet.
type CollectionRequest struct {
	Msisdn    string `json:"msisdn"`
	Amount    int64  `json:"amount"`
	Reference string `json:"external_reference"`
	Narration string `json:"narration,omitempty"`
}

type Collection struct {
	ID        string    `json:"id"`
	Msisdn    string    `json:"msisdn"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	Reference string    `json:"external_reference"`
	CreatedAt time.Time `json:"created_at"`
}

type CollectionsService interface {
	Request(ctx context.Context, req CollectionRequest) (Collection, error)
	Get(ctx context.Context, id string) (Collection, error)
	List(ctx context.Context) ([]Collection, error)
}

type collectionsService struct {
	gw     gateway.Gateway
	fields *fieldValidator
	logger *zap.Logger
}

func (s *collectionsService) Request(ctx context.Context, req CollectionRequest) (Collection, error) {
	canonical, err := s.fields.msisdn(req.Msisdn)
	if err != nil {
		return Collection{}, err
	}

	if err := s.fields.amount(req.Amount); err != nil {
		return Collection{}, err
	}

	if err := s.fields.reference(req.Reference); err != nil {
		return Collection{}, err
	}

	req.Msisdn = canonical
	masked, _ := phone.Mask(canonical)

	var out Collection

	call := gateway.Request{Method: http.MethodPost, Endpoint: collectionsEndpoint, Body: req}
	if err := s.gw.Call(ctx, call, &out); err != nil {
		s.logger.Warn("collection request failed",
			zap.String("msisdn", masked),
			zap.String("reference", req.Reference),
			zap.Error(err))

		return Collection{}, err
	}

	s.logger.Info("collection requested",
		zap.String("collectionID", out.ID),
		zap.String("msisdn", masked),
		zap.Int64("amount", req.Amount))

	return out, nil
}

func (s *collectionsService) Get(ctx context.Context, id string) (Collection, error) {
	if id == "" {
		return Collection{}, apierror.NewValidation(apierror.CodeMissingField, "Collection ID is required")
	}

	var out Collection

	call := gateway.Request{Method: http.MethodGet, Endpoint: collectionsEndpoint + "/" + id}
	if err := s.gw.Call(ctx, call, &out); err != nil {
		return Collection{}, err
	}

	return out, nil
}

func (s *collectionsService) List(ctx context.Context) ([]Collection, error) {
	var out struct {
		Data []Collection `json:"data"`
	}

	call := gateway.Request{Method: http.MethodGet, Endpoint: collectionsEndpoint}
	if err := s.gw.Call(ctx, call, &out); err != nil {
		return nil, err
	}

	return out.Data, nil
}

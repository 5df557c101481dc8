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

const disbursementsEndpoint = "/disbursements"

var _ DisbursementsService = (*disbursementsService)(nil)

// DisbursementRequest sends money from the configured wallet to a
// subscriber.
type DisbursementRequest struct {
	Msisdn    string `json:"msisdn"`
	Amount    int64  `json:"amount"`
	Reference string `json:"external_reference"`
	Narration string `json:"narration,omitempty"`
}

type Disbursement struct {
	ID        string    `json:"id"`
	Msisdn    string    `json:"msisdn"`
	Amount    int64     `json:"amount"`
	Fee       int64     `json:"fee"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	Reference string    `json:"external_reference"`
	CreatedAt time.Time `json:"created_at"`
}

type DisbursementsService interface {
	Send(ctx context.Context, req DisbursementRequest) (Disbursement, error)
	Get(ctx context.Context, id string) (Disbursement, error)
	List(ctx context.Context) ([]Disbursement, error)
}

type disbursementsService struct {
	gw     gateway.Gateway
	fields *fieldValidator
	logger *zap.Logger
}

func (s *disbursementsService) Send(ctx context.Context, req DisbursementRequest) (Disbursement, error) {
	canonical, err := s.fields.msisdn(req.Msisdn)
	if err != nil {
		return Disbursement{}, err
	}

	if err := s.fields.amount(req.Amount); err != nil {
		return Disbursement{}, err
	}

	if err := s.fields.reference(req.Reference); err != nil {
		return Disbursement{}, err
	}

	req.Msisdn = canonical
	masked, _ := phone.Mask(canonical)

	var out Disbursement

	call := gateway.Request{Method: http.MethodPost, Endpoint: disbursementsEndpoint, Body: req}
	if err := s.gw.Call(ctx, call, &out); err != nil {
		s.logger.Warn("disbursement failed",
			zap.String("msisdn", masked),
			zap.String("reference", req.Reference),
			zap.Error(err))

		return Disbursement{}, err
	}

	s.logger.Info("disbursement sent",
		zap.String("disbursementID", out.ID),
		zap.String("msisdn", masked),
		zap.Int64("amount", req.Amount))

	return out, nil
}

func (s *disbursementsService) Get(ctx context.Context, id string) (Disbursement, error) {
	if id == "" {
		return Disbursement{}, apierror.NewValidation(apierror.CodeMissingField, "Disbursement ID is required")
	}

	var out Disbursement

	call := gateway.Request{Method: http.MethodGet, Endpoint: disbursementsEndpoint + "/" + id}
	if err := s.gw.Call(ctx, call, &out); err != nil {
		return Disbursement{}, err
	}

	return out, nil
}

func (s *disbursementsService) List(ctx context.Context) ([]Disbursement, error) {
	var out struct {
		Data []Disbursement `json:"data"`
	}

	call := gateway.Request{Method: http.MethodGet, Endpoint: disbursementsEndpoint}
	if err := s.gw.Call(ctx, call, &out); err != nil {
		return nil, err
	}

	return out.Data, nil
}

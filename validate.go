package marzpay

import (
	"github.com/Katznicho/marzpay-go/pkg/apierror"
	"github.com/Katznicho/marzpay-go/pkg/metrics"
	"github.com/Katznicho/marzpay-go/pkg/phone"
	"github.com/go-playground/validator/v10"
)

const (
	// Amount bounds enforced by the hosted wallet, in UGX.
	MinAmount int64 = 500
	MaxAmount int64 = 10_000_000
)

// fieldValidator applies the field rules shared by the transacting
// services. Every violation is an apierror validation Error, raised
// before any network call is made.
type fieldValidator struct {
	validate *validator.Validate
	rule     ReferenceRule
	metrics  *metrics.Metrics
}

func newFieldValidator(rule ReferenceRule, m *metrics.Metrics) *fieldValidator {
	return &fieldValidator{validate: validator.New(), rule: rule, metrics: m}
}

// msisdn normalizes a subscriber number and returns its canonical form.
func (f *fieldValidator) msisdn(raw string) (string, error) {
	canonical, ok := phone.Normalize(raw)
	if !ok {
		f.metrics.RecordValidationError("msisdn", "phone")
		return "", apierror.NewValidation(apierror.CodeInvalidPhoneNumber,
			"Phone number must be a valid Ugandan mobile number")
	}

	return canonical, nil
}

func (f *fieldValidator) amount(amount int64) error {
	if amount < MinAmount || amount > MaxAmount {
		f.metrics.RecordValidationError("amount", "range")
		return apierror.NewValidation(apierror.CodeInvalidAmount,
			"Amount must be between 500 and 10,000,000 UGX")
	}

	return nil
}

func (f *fieldValidator) reference(ref string) error {
	if ref == "" {
		f.metrics.RecordValidationError("reference", "required")
		return apierror.NewValidation(apierror.CodeMissingField,
			"Reference is required")
	}

	if f.rule == ReferenceFreeform {
		return nil
	}

	if err := f.validate.Var(ref, "uuid4"); err != nil {
		f.metrics.RecordValidationError("reference", "uuid4")
		return apierror.NewValidation(apierror.CodeInvalidReference,
			"Reference must be a valid version 4 UUID")
	}

	return nil
}

func (f *fieldValidator) webhookURL(url string) error {
	if err := f.validate.Var(url, "required,url,startswith=http"); err != nil {
		f.metrics.RecordValidationError("url", "url")
		return apierror.NewValidation(apierror.CodeInvalidWebhookURL,
			"Webhook URL must be a valid HTTP or HTTPS address")
	}

	return nil
}

func (f *fieldValidator) webhookEvent(event string) error {
	err := f.validate.Var(event,
		"required,oneof=collection.completed collection.failed disbursement.completed disbursement.failed")
	if err != nil {
		f.metrics.RecordValidationError("event", "oneof")
		return apierror.NewValidation(apierror.CodeInvalidWebhookEvent,
			"Event must be one of the supported webhook events")
	}

	return nil
}

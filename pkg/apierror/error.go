// Package apierror defines the error value every MarzPay operation
// surfaces, whether the failure came from local validation, the remote
// API or the transport underneath it.
package apierror

import (
	"net/http"
	"time"
)

// Classification is the coarse category callers branch on.
type Classification string

const (
	ClassificationValidation Classification = "validation"
	ClassificationNetwork    Classification = "network"
	ClassificationServer     Classification = "server"
	ClassificationDecode     Classification = "decode"
)

// Error is an immutable failure value. Status is the HTTP status the
// failure maps to; zero means no response was ever received.
type Error struct {
	Code      string
	Message   string
	Status    int
	Timestamp time.Time
}

// NewValidation builds an error for a locally detected rule violation.
func NewValidation(code, message string) Error {
	return Error{
		Code:      code,
		Message:   message,
		Status:    http.StatusBadRequest,
		Timestamp: time.Now(),
	}
}

// FromResponse builds an error from a decoded failure response. When
// the body carried no error code a fallback is derived from the status.
func FromResponse(status int, code, message string) Error {
	if code == "" {
		code = CodeRequestFailed
		if status >= http.StatusInternalServerError {
			code = CodeServerError
		}
	}

	return Error{
		Code:      code,
		Message:   message,
		Status:    status,
		Timestamp: time.Now(),
	}
}

// NewNetwork builds an error for a transport failure with no response.
func NewNetwork(cause error) Error {
	return Error{
		Code:      CodeNetworkError,
		Message:   cause.Error(),
		Timestamp: time.Now(),
	}
}

// NewDecode builds an error for a response body that was not valid
// JSON. The raw body text becomes the message so the contract mismatch
// is visible to the caller.
func NewDecode(status int, raw string) Error {
	return Error{
		Code:      CodeInvalidResponse,
		Message:   raw,
		Status:    status,
		Timestamp: time.Now(),
	}
}

func (e Error) Error() string {
	return e.Code + ": " + e.Message
}

// Classification derives the error category instead of storing it,
// so the value can never carry a status/classification mismatch.
func (e Error) Classification() Classification {
	switch {
	case e.Status == 0:
		return ClassificationNetwork
	case e.Code == CodeInvalidResponse:
		return ClassificationDecode
	case e.Status >= http.StatusInternalServerError:
		return ClassificationServer
	default:
		return ClassificationValidation
	}
}

// UserMessage resolves the error code to stable human-readable text,
// falling back to the raw message for codes without an entry.
func (e Error) UserMessage() string {
	if msg, ok := userMessages[e.Code]; ok {
		return msg
	}

	return e.Message
}

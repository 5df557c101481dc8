package apierror

const (
	CodeNetworkError        = "NETWORK_ERROR"
	CodeInvalidResponse     = "INVALID_RESPONSE"
	CodeServerError         = "SERVER_ERROR"
	CodeRequestFailed       = "REQUEST_FAILED"
	CodeInvalidAmount       = "INVALID_AMOUNT"
	CodeInvalidPhoneNumber  = "INVALID_PHONE_NUMBER"
	CodeInvalidReference    = "INVALID_REFERENCE"
	CodeInvalidWebhookURL   = "INVALID_WEBHOOK_URL"
	CodeInvalidWebhookEvent = "INVALID_WEBHOOK_EVENT"
	CodeMissingField        = "MISSING_REQUIRED_FIELD"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeNotFound            = "NOT_FOUND"
	CodeInsufficientBalance = "INSUFFICIENT_BALANCE"
)

// userMessages decouples presentation text from the internal messages,
// which may change without notice between API versions.
var userMessages = map[string]string{
	CodeNetworkError:        "Could not reach MarzPay. Check your connection and try again.",
	CodeInvalidResponse:     "MarzPay returned an unexpected response. Please try again later.",
	CodeServerError:         "MarzPay is temporarily unavailable. Please try again later.",
	CodeRequestFailed:       "The request could not be completed.",
	CodeInvalidAmount:       "The amount must be between 500 and 10,000,000 UGX.",
	CodeInvalidPhoneNumber:  "The phone number is not a valid Ugandan mobile number.",
	CodeInvalidReference:    "The reference must be a valid version 4 UUID.",
	CodeInvalidWebhookURL:   "The webhook URL must be a valid HTTP or HTTPS address.",
	CodeInvalidWebhookEvent: "The webhook event is not one of the supported events.",
	CodeMissingField:        "A required field is missing.",
	CodeUnauthorized:        "The API credentials were rejected.",
	CodeNotFound:            "The requested resource does not exist.",
	CodeInsufficientBalance: "The wallet balance is too low for this transaction.",
}

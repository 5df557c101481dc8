// Package gateway is the single chokepoint between the SDK and the
// MarzPay REST API. Authentication, serialization and error
// translation happen here exactly once; domain services never touch
// the transport directly.
package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Katznicho/marzpay-go/pkg/apierror"
	"github.com/Katznicho/marzpay-go/pkg/httpclient"
	"github.com/Katznicho/marzpay-go/pkg/metrics"
	"go.uber.org/zap"
)

var _ Gateway = (*gateway)(nil)

// Request describes one outbound call. It is built per invocation and
// owned exclusively by the call site.
type Request struct {
	Method   string
	Endpoint string
	Body     any
	Headers  map[string]string
}

type Gateway interface {
	// Call performs one request and decodes the success body into out
	// (out may be nil). Every failure is an apierror.Error.
	Call(ctx context.Context, req Request, out any) error

	// SetCredentials swaps the credentials used for Basic auth. The
	// update is not atomic with respect to in-flight calls; a caller
	// rotating credentials must not interleave it with active requests
	// unless it accepts a race on which credential set is used.
	SetCredentials(username, apiKey string)
}

type gateway struct {
	cfg     Config
	client  httpclient.HTTPClient
	logger  *zap.Logger
	metrics *metrics.Metrics
}

type Option func(*gateway)

// WithMetrics attaches a prometheus recorder to the gateway.
func WithMetrics(m *metrics.Metrics) Option {
	return func(g *gateway) { g.metrics = m }
}

func New(cfg Config, client httpclient.HTTPClient, logger *zap.Logger, opts ...Option) Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}

	g := &gateway{cfg: cfg, client: client, logger: logger}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// errorBody is the failure shape the API returns on non-2xx statuses.
type errorBody struct {
	Message   string `json:"message"`
	ErrorCode string `json:"error_code"`
}

func (g *gateway) Call(ctx context.Context, req Request, out any) error {
	start := time.Now()
	url := strings.TrimRight(g.cfg.BaseURL, "/") + req.Endpoint

	headers := make(map[string]string, len(req.Headers)+2)
	for key, value := range req.Headers {
		headers[key] = value
	}

	if _, ok := headers["Authorization"]; !ok {
		headers["Authorization"] = basicAuth(g.cfg.Username, g.cfg.APIKey)
	}

	var body io.Reader

	if req.Body != nil && allowsBody(req.Method) {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(req.Body); err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}

		body = &buf

		if _, ok := headers["Content-Type"]; !ok {
			headers["Content-Type"] = "application/json"
		}
	}

	if g.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.Timeout)
		defer cancel()
	}

	resp, err := g.client.Request(ctx, req.Method, url, body, headers)
	if err != nil {
		g.metrics.RecordRequest(req.Method, req.Endpoint, 0, time.Since(start))
		g.logger.Warn("no response received",
			zap.String("method", req.Method),
			zap.String("endpoint", req.Endpoint),
			zap.Error(err))

		return apierror.NewNetwork(err)
	}

	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		g.metrics.RecordRequest(req.Method, req.Endpoint, 0, time.Since(start))
		return apierror.NewNetwork(err)
	}

	g.metrics.RecordRequest(req.Method, req.Endpoint, resp.StatusCode, time.Since(start))
	g.logger.Debug("call completed",
		zap.String("method", req.Method),
		zap.String("endpoint", req.Endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var failure errorBody
		if err := json.Unmarshal(raw, &failure); err != nil {
			return apierror.NewDecode(resp.StatusCode, string(raw))
		}

		g.logger.Warn("request rejected",
			zap.String("endpoint", req.Endpoint),
			zap.Int("status", resp.StatusCode),
			zap.String("errorCode", failure.ErrorCode))

		return apierror.FromResponse(resp.StatusCode, failure.ErrorCode, failure.Message)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return apierror.NewDecode(resp.StatusCode, string(raw))
	}

	return nil
}

func (g *gateway) SetCredentials(username, apiKey string) {
	g.cfg.Username = username
	g.cfg.APIKey = apiKey
}

func basicAuth(username, apiKey string) string {
	token := base64.StdEncoding.EncodeToString([]byte(username + ":" + apiKey))
	return "Basic " + token
}

func allowsBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	default:
		return false
	}
}

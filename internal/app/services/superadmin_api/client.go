// Package superadmin_api talks to the external superadmin REST API. Every call
// forwards the caller's bearer token and passes through a shared token
// bucket so the dashboard cannot flood the API.
package superadmin_api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"superadmin-service/internal/app/config"
	"superadmin-service/internal/app/contracts"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/dto/responses"
	"superadmin-service/internal/pkg/exceptions"
	"superadmin-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const maxResponseBodyBytes = 10 << 20

var _ contracts.SuperadminClient = (*Client)(nil)

type Client struct {
	BaseUrl    string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

func NewClient(cfg config.AppSuperadmin, logger *zap.Logger) *Client {
	timeout := time.Duration(cfg.RequestTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	limit := rate.Limit(cfg.RequestsPerSecond)
	if cfg.RequestsPerSecond <= 0 {
		limit = rate.Inf
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		BaseUrl:    strings.TrimRight(cfg.BaseUrl, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
		Limiter:    rate.NewLimiter(limit, burst),
		Log:        logger,
	}
}

// upstreamError is the error body of the superadmin API.
type upstreamError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) (*responses.SuperadminEnvelope, error) {
	requestID := utils.GetRequestID(ctx)

	if err := c.Limiter.Wait(ctx); err != nil {
		c.Log.Error("superadminClient.do throttled",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUpstreamURLKey, path),
			zap.Error(err),
		)
		return nil, exceptions.ErrUpstreamThrottled(err)
	}

	endpoint := c.BaseUrl + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		c.Log.Error("superadminClient.do error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if token := utils.GetAccessToken(ctx); token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
	}
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("superadminClient.do error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, method),
			zap.String(constvars.LoggingUpstreamURLKey, path),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, exceptions.ErrServerDeadlineExceeded(err)
		}
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodyBytes))
	if err != nil {
		c.Log.Error("superadminClient.do error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrReadHTTPResponse(err)
	}

	c.Log.Info("superadminClient.do responded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingUpstreamURLKey, path),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var outcome upstreamError
		_ = json.Unmarshal(bodyBytes, &outcome)
		message := strings.TrimSpace(outcome.Message)
		if message == "" {
			message = strings.TrimSpace(outcome.Error)
		}
		return nil, exceptions.ErrUpstreamResponse(resp.StatusCode, path, message)
	}

	envelope := &responses.SuperadminEnvelope{Success: true}
	if len(bytes.TrimSpace(bodyBytes)) == 0 {
		return envelope, nil
	}
	if err := json.Unmarshal(bodyBytes, envelope); err != nil {
		c.Log.Error("superadminClient.do error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUpstreamURLKey, path),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, path)
	}
	return envelope, nil
}

// decodeRecord reads a single record from data. The API sometimes wraps the
// record under its resource key, e.g. {"organization": {...}}.
func decodeRecord[T any](data []byte, key, resource string) (*T, error) {
	record := new(T)
	if len(bytes.TrimSpace(data)) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return record, nil
	}

	if key != "" {
		var wrapped map[string]json.RawMessage
		if err := json.Unmarshal(data, &wrapped); err == nil {
			if inner, ok := wrapped[key]; ok && len(inner) > 0 && inner[0] == '{' {
				data = inner
			}
		}
	}

	if err := json.Unmarshal(data, record); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, resource)
	}
	return record, nil
}

func recordPath(base, id string, segments ...string) string {
	return base + "/" + url.PathEscape(id) + strings.Join(segments, "")
}

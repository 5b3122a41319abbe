package transport

import (
	"bytes"
	"context"
	"ecare-automation/internal/pkg/constvars"
	"ecare-automation/internal/pkg/exceptions"
	"ecare-automation/internal/pkg/retry"
	"ecare-automation/internal/pkg/utils"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Options struct {
	BaseUrl           string
	TenantID          string
	RequestID         string
	RequestTimeout    time.Duration
	Retry             retry.Policy
	RequestsPerSecond float64
	Burst             int
	HTTPClient        *http.Client
}

// Client sends requests to one tenant of the healthcare API. It holds the
// bearer token captured at login.
type Client struct {
	baseUrl        string
	tenantID       string
	requestID      string
	requestTimeout time.Duration
	retryPolicy    retry.Policy
	httpClient     *http.Client
	limiter        *rate.Limiter
	Log            *zap.Logger

	mu    sync.RWMutex
	token string
}

func NewClient(opts Options, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	requestID := opts.RequestID
	if requestID == "" {
		requestID = utils.GenerateRequestID()
	}

	client := &Client{
		baseUrl:        strings.TrimRight(opts.BaseUrl, "/"),
		tenantID:       opts.TenantID,
		requestID:      requestID,
		requestTimeout: opts.RequestTimeout,
		retryPolicy:    opts.Retry,
		httpClient:     httpClient,
		Log:            logger,
	}
	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		client.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}
	return client
}

func (c *Client) SetBearerToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) BearerToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) TenantID() string {
	return c.tenantID
}

func (c *Client) RequestID() string {
	return c.requestID
}

// Do sends one request through the retry policy. Responses with status >= 400
// come back as *exceptions.APIError; otherwise the envelope is decoded into
// out when out is not nil.
func (c *Client) Do(ctx context.Context, method, endpoint string, body interface{}, includeAuth bool, out interface{}) (int, error) {
	requestID := utils.GetRequestID(ctx)
	if requestID == "" {
		requestID = c.requestID
	}
	url := c.baseUrl + endpoint

	c.Log.Debug("Making "+method+" request",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingURLKey, url),
		zap.Bool(constvars.LoggingIncludeAuthKey, includeAuth),
		zap.Bool(constvars.LoggingHasDataKey, body != nil),
	)

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			c.Log.Error("transport.Client.Do error marshaling JSON",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return 0, exceptions.ErrCannotMarshalJSON(err)
		}
	}

	return retry.Do(ctx, c.Log, c.retryPolicy, func(ctx context.Context) (int, error) {
		return c.send(ctx, method, url, endpoint, payload, includeAuth, requestID, out)
	})
}

func (c *Client) send(ctx context.Context, method, url, endpoint string, payload []byte, includeAuth bool, requestID string, out interface{}) (int, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return 0, err
		}
	}

	if c.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.requestTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
	if err != nil {
		c.Log.Error("transport.Client.Do error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header = c.Headers(includeAuth, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.Log.Error("transport.Client.Do error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, method),
			zap.String(constvars.LoggingURLKey, url),
			zap.Error(err),
		)
		return 0, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	envelope, raw, err := SafeJSONParse(c.Log, resp, requestID)
	if err != nil {
		return resp.StatusCode, err
	}

	if resp.StatusCode >= constvars.StatusBadRequest {
		apiErr := exceptions.NewAPIError(resp.StatusCode, method, url, envelope.Message, envelope)
		c.Log.Error("API request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, method),
			zap.String(constvars.LoggingURLKey, url),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(apiErr),
		)
		return resp.StatusCode, apiErr
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			c.Log.Error("transport.Client.Do error decoding response",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEndpointKey, endpoint),
				zap.Error(err),
			)
			return resp.StatusCode, exceptions.ErrDecodeResponse(err, endpoint)
		}
	}

	c.Log.Debug("API request completed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingURLKey, url),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	return resp.StatusCode, nil
}

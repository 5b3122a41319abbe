package transport

import (
	"ecare-automation/internal/pkg/constvars"
	"ecare-automation/internal/pkg/dto/responses"
	"ecare-automation/internal/pkg/exceptions"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// SafeJSONParse reads the whole body of resp and returns its envelope along
// with the bytes a typed result should be decoded from. Empty and non-JSON
// bodies yield a synthetic failed envelope instead of an error.
func SafeJSONParse(log *zap.Logger, resp *http.Response, requestID string) (*responses.Envelope, []byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("transport.SafeJSONParse error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(err),
		)
		return nil, nil, exceptions.ErrReadResponseBody(err)
	}

	envelope, raw := ParseBody(log, resp.StatusCode, body, requestID)
	return envelope, raw, nil
}

func ParseBody(log *zap.Logger, status int, body []byte, requestID string) (*responses.Envelope, []byte) {
	if strings.TrimSpace(string(body)) == "" {
		log.Error(constvars.ErrDevResponseEmptyBody,
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, status),
		)
		return synthetic(constvars.ErrDevResponseEmptyBody, status)
	}

	if !json.Valid(body) {
		log.Error("Failed to parse JSON response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, status),
		)
		log.Debug("Raw response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRawResponseKey, string(body)),
		)
		return synthetic(constvars.ErrDevResponseInvalidJSON, status)
	}

	envelope := new(responses.Envelope)
	if err := json.Unmarshal(body, envelope); err != nil {
		// valid JSON that is not an envelope, e.g. a bare array
		envelope = &responses.Envelope{
			Success: status < constvars.StatusBadRequest,
			Data:    json.RawMessage(body),
			Status:  status,
		}
		raw, _ := json.Marshal(envelope)
		return envelope, raw
	}
	return envelope, body
}

func synthetic(message string, status int) (*responses.Envelope, []byte) {
	envelope := responses.NewSyntheticEnvelope(message, status)
	raw, _ := json.Marshal(envelope)
	return envelope, raw
}

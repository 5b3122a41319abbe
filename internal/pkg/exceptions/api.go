package exceptions

import (
	"ecare-automation/internal/pkg/constvars"
	"fmt"
)

// APIError is returned when the target API answers with status >= 400.
// Body holds the parsed response envelope (or the synthetic one produced for
// empty or non-JSON bodies).
type APIError struct {
	Status  int
	Method  string
	URL     string
	Message string
	Body    any
}

func NewAPIError(status int, method, url, upstreamMessage string, body any) *APIError {
	if upstreamMessage == "" {
		upstreamMessage = constvars.ErrClientUnknownError
	}
	return &APIError{
		Status:  status,
		Method:  method,
		URL:     url,
		Message: fmt.Sprintf(constvars.ErrDevUnknownAPIResponseFormat, status, upstreamMessage),
		Body:    body,
	}
}

func (e *APIError) Error() string {
	return e.Message
}

// IsServerError reports a 5xx status.
func (e *APIError) IsServerError() bool {
	return e.Status >= constvars.StatusInternalServerError && e.Status < constvars.StatusServerErrorUpperBound
}

func (e *APIError) IsRateLimited() bool {
	return e.Status == constvars.StatusTooManyRequests
}

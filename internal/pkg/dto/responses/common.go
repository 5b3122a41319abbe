package responses

import "github.com/goccy/go-json"

// ResponseDTO is the body written by the status API.
type ResponseDTO struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// APIResponse is the envelope every healthcare API response is wrapped in.
// Login answers carry Code instead of Success.
type APIResponse[T any] struct {
	Success    bool                `json:"success"`
	Code       string              `json:"code,omitempty"`
	Message    string              `json:"message"`
	Data       T                   `json:"data"`
	Status     int                 `json:"status,omitempty"`
	Path       string              `json:"path,omitempty"`
	RequestID  string              `json:"requestId,omitempty"`
	Version    string              `json:"version,omitempty"`
	Pagination *UpstreamPagination `json:"pagination,omitempty"`
	Error      *ErrorDetail        `json:"error,omitempty"`
}

// Envelope keeps data undecoded so it can be inspected before being bound to
// a concrete type.
type Envelope = APIResponse[json.RawMessage]

type UpstreamPagination struct {
	Page       int `json:"page"`
	Size       int `json:"size"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Details interface{} `json:"details,omitempty"`
}

// NewSyntheticEnvelope stands in for a body that could not be parsed.
func NewSyntheticEnvelope(message string, status int) *Envelope {
	return &Envelope{
		Success: false,
		Message: message,
		Data:    json.RawMessage("null"),
		Status:  status,
	}
}

func (r *APIResponse[T]) Succeeded(entityCode string) bool {
	return r.Success || (entityCode != "" && r.Code == entityCode)
}

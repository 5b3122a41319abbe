package responses

import "time"

type Health struct {
	Status string `json:"status"`
}

type RunAccepted struct {
	RunID       string `json:"run_id"`
	Environment string `json:"environment"`
	TenantID    string `json:"tenant_id"`
}

// LoginVerified reports a successful credential check.
type LoginVerified struct {
	Environment string `json:"environment"`
	TenantID    string `json:"tenant_id"`
	Code        string `json:"code"`
}

type StepResult struct {
	Name       string        `json:"name"`
	Status     string        `json:"status"`
	Duration   time.Duration `json:"duration_ns"`
	HTTPStatus int           `json:"http_status,omitempty"`
	Error      string        `json:"error,omitempty"`
}

type RunSummary struct {
	RunID         string       `json:"run_id"`
	Environment   string       `json:"environment"`
	TenantID      string       `json:"tenant_id"`
	RequestID     string       `json:"request_id"`
	Tag           string       `json:"tag,omitempty"`
	Status        string       `json:"status"`
	FailedStep    string       `json:"failed_step,omitempty"`
	Error         string       `json:"error,omitempty"`
	PatientID     string       `json:"patient_id,omitempty"`
	ProviderID    string       `json:"provider_id,omitempty"`
	AppointmentID string       `json:"appointment_id,omitempty"`
	ReportKey     string       `json:"report_key,omitempty"`
	Steps         []StepResult `json:"steps"`
	StartedAt     time.Time    `json:"started_at"`
	FinishedAt    *time.Time   `json:"finished_at,omitempty"`
}

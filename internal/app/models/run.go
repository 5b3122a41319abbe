package models

import (
	"ecare-automation/internal/pkg/constvars"
	"ecare-automation/internal/pkg/dto/responses"
	"time"
)

const RunCompletedEventType = "workflow.run.completed"

// RunInput selects what a workflow run does. Empty RunID and RequestID are
// generated.
type RunInput struct {
	RunID            string `json:"run_id"`
	RequestID        string `json:"request_id"`
	Environment      string `json:"environment"`
	Tag              string `json:"tag" validate:"omitempty,max=32,alphanum"`
	SkipVerification bool   `json:"skip_verification"`
}

type StepResult struct {
	Name       string        `json:"name" bson:"name"`
	Status     string        `json:"status" bson:"status"`
	StartedAt  time.Time     `json:"started_at" bson:"startedAt"`
	Duration   time.Duration `json:"duration" bson:"duration"`
	HTTPStatus int           `json:"http_status,omitempty" bson:"httpStatus,omitempty"`
	Error      string        `json:"error,omitempty" bson:"error,omitempty"`
}

// Run is one execution of the complete scheduling workflow.
type Run struct {
	ID               string       `json:"run_id" bson:"_id"`
	Environment      string       `json:"environment" bson:"environment"`
	TenantID         string       `json:"tenant_id" bson:"tenantId"`
	RequestID        string       `json:"request_id" bson:"requestId"`
	Tag              string       `json:"tag,omitempty" bson:"tag,omitempty"`
	SkipVerification bool         `json:"skip_verification" bson:"skipVerification"`
	Status           string       `json:"status" bson:"status"`
	FailedStep       string       `json:"failed_step,omitempty" bson:"failedStep,omitempty"`
	Error            string       `json:"error,omitempty" bson:"error,omitempty"`
	PatientID        string       `json:"patient_id,omitempty" bson:"patientId,omitempty"`
	ProviderID       string       `json:"provider_id,omitempty" bson:"providerId,omitempty"`
	AppointmentID    string       `json:"appointment_id,omitempty" bson:"appointmentId,omitempty"`
	ReportKey        string       `json:"report_key,omitempty" bson:"reportKey,omitempty"`
	Steps            []StepResult `json:"steps" bson:"steps"`
	StartedAt        time.Time    `json:"started_at" bson:"startedAt"`
	FinishedAt       *time.Time   `json:"finished_at,omitempty" bson:"finishedAt,omitempty"`
	TimeModel        `bson:",inline"`
}

type RunEvent struct {
	Type        string     `json:"type"`
	RunID       string     `json:"run_id"`
	Environment string     `json:"environment"`
	TenantID    string     `json:"tenant_id"`
	Status      string     `json:"status"`
	FailedStep  string     `json:"failed_step,omitempty"`
	ReportKey   string     `json:"report_key,omitempty"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`
}

func NewRun(id, requestID, environment, tenantID string, input *RunInput) *Run {
	startedAt := time.Now().UTC()
	run := &Run{
		ID:               id,
		Environment:      environment,
		TenantID:         tenantID,
		RequestID:        requestID,
		Tag:              input.Tag,
		SkipVerification: input.SkipVerification,
		Status:           constvars.RunStatusRunning,
		Steps:            []StepResult{},
		StartedAt:        startedAt,
	}
	run.stamp(startedAt)
	return run
}

func (r *Run) RecordStep(step StepResult) {
	r.Steps = append(r.Steps, step)
	if step.Status == constvars.RunStatusFailed && r.FailedStep == "" {
		r.FailedStep = step.Name
		r.Error = step.Error
	}
}

// Finish settles the verdict: failed when any step failed, passed otherwise.
func (r *Run) Finish() {
	finishedAt := time.Now().UTC()
	r.FinishedAt = &finishedAt
	r.Status = constvars.RunStatusPassed
	if r.FailedStep != "" {
		r.Status = constvars.RunStatusFailed
	}
	r.touchAt(finishedAt)
}

func (r *Run) Passed() bool {
	return r.Status == constvars.RunStatusPassed
}

func (r *Run) Event() RunEvent {
	return RunEvent{
		Type:        RunCompletedEventType,
		RunID:       r.ID,
		Environment: r.Environment,
		TenantID:    r.TenantID,
		Status:      r.Status,
		FailedStep:  r.FailedStep,
		ReportKey:   r.ReportKey,
		FinishedAt:  r.FinishedAt,
	}
}

func (r *Run) Summary() responses.RunSummary {
	steps := make([]responses.StepResult, 0, len(r.Steps))
	for _, step := range r.Steps {
		steps = append(steps, responses.StepResult{
			Name:       step.Name,
			Status:     step.Status,
			Duration:   step.Duration,
			HTTPStatus: step.HTTPStatus,
			Error:      step.Error,
		})
	}
	return responses.RunSummary{
		RunID:         r.ID,
		Environment:   r.Environment,
		TenantID:      r.TenantID,
		RequestID:     r.RequestID,
		Tag:           r.Tag,
		Status:        r.Status,
		FailedStep:    r.FailedStep,
		Error:         r.Error,
		PatientID:     r.PatientID,
		ProviderID:    r.ProviderID,
		AppointmentID: r.AppointmentID,
		ReportKey:     r.ReportKey,
		Steps:         steps,
		StartedAt:     r.StartedAt,
		FinishedAt:    r.FinishedAt,
	}
}

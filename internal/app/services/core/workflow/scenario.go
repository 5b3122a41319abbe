package workflow

import (
	"context"
	"ecare-automation/internal/app/contracts"
	"ecare-automation/internal/app/models"
	"ecare-automation/internal/pkg/constvars"
	"ecare-automation/internal/pkg/dto/responses"
	"ecare-automation/internal/pkg/exceptions"
	"ecare-automation/internal/pkg/utils"
	"errors"
	"fmt"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

type step struct {
	name        string
	description string
	verify      bool
	run         func(ctx context.Context) error
}

// scenario drives one client through the scheduling steps and records each
// outcome on run.
type scenario struct {
	client contracts.HealthcareAPIClient
	run    *models.Run
	now    time.Time
	log    *zap.Logger
}

func (s *scenario) steps() []step {
	return []step{
		{name: constvars.StepLogin, description: "Provider Login", run: s.login},
		{name: constvars.StepCreatePatient, description: "Creating Patient - Samuel Peterson", run: s.createPatient},
		{name: constvars.StepCreateProvider, description: "Adding Provider - Steven Miller", run: s.createProvider},
		{name: constvars.StepSetAvailability, description: "Setting Availability", run: s.setAvailability},
		{name: constvars.StepBookAppointment, description: "Booking Appointment", run: s.bookAppointment},
		{name: constvars.StepVerifyProviders, description: "Getting Providers List", verify: true, run: s.verifyProviders},
		{name: constvars.StepVerifyPatients, description: "Getting Patients List", verify: true, run: s.verifyPatients},
		{name: constvars.StepVerifyAvailability, description: "Getting Availability Settings", verify: true, run: s.verifyAvailability},
	}
}

// play stops at the first failed step. Skipped verification steps are
// recorded so the report shows them.
func (s *scenario) play(ctx context.Context) {
	for _, st := range s.steps() {
		if st.verify && s.run.SkipVerification {
			s.run.RecordStep(models.StepResult{
				Name:      st.name,
				Status:    constvars.RunStatusSkipped,
				StartedAt: time.Now().UTC(),
			})
			continue
		}

		utils.LogStep(s.log, st.name, st.description)
		result := models.StepResult{Name: st.name, StartedAt: time.Now().UTC()}

		err := ctx.Err()
		if err == nil {
			err = st.run(ctx)
		}
		result.Duration = time.Since(result.StartedAt)

		if err != nil {
			result.Status = constvars.RunStatusFailed
			result.Error = err.Error()
			var apiErr *exceptions.APIError
			if errors.As(err, &apiErr) {
				result.HTTPStatus = apiErr.Status
			}
			s.run.RecordStep(result)
			utils.LogFailure(s.log, st.name+" failed", exceptions.ErrWorkflowStepFailed(err, st.name),
				zap.String(constvars.LoggingStepNameKey, st.name),
				zap.Duration(constvars.LoggingDurationKey, result.Duration),
			)
			return
		}

		result.Status = constvars.RunStatusPassed
		s.run.RecordStep(result)
		utils.LogSuccess(s.log, st.name+" completed",
			zap.String(constvars.LoggingStepNameKey, st.name),
			zap.Duration(constvars.LoggingDurationKey, result.Duration),
		)
	}
}

func (s *scenario) login(ctx context.Context) error {
	response, err := s.client.Login(ctx, nil)
	if err != nil {
		return err
	}
	if !response.Succeeded(constvars.EcareSuccessCodeEntity) {
		return exceptions.ErrVerificationFailed(nil, fmt.Sprintf("login returned code %q", response.Code))
	}
	return nil
}

func (s *scenario) createPatient(ctx context.Context) error {
	response, err := s.client.CreatePatientDetailed(ctx, newPatientFixture(s.now))
	if err != nil {
		return err
	}
	patient := response.Data
	if patient.ID == "" {
		return exceptions.ErrVerificationFailed(nil, "patient response has no id")
	}
	if patient.FirstName != "" && (patient.FirstName != PatientFirstName || patient.LastName != PatientLastName) {
		return exceptions.ErrVerificationFailed(nil, fmt.Sprintf("patient created as %s %s", patient.FirstName, patient.LastName))
	}
	s.run.PatientID = patient.ID
	return nil
}

func (s *scenario) createProvider(ctx context.Context) error {
	response, err := s.client.CreateProviderDetailed(ctx, newProviderFixture(s.run.Tag))
	if err != nil {
		return err
	}
	provider := response.Data
	if provider.ID == "" {
		return exceptions.ErrVerificationFailed(nil, "provider response has no id")
	}
	if provider.FirstName != "" && (provider.FirstName != ProviderFirstName || provider.LastName != ProviderLastName) {
		return exceptions.ErrVerificationFailed(nil, fmt.Sprintf("provider created as %s %s", provider.FirstName, provider.LastName))
	}
	s.run.ProviderID = provider.ID
	return nil
}

func (s *scenario) setAvailability(ctx context.Context) error {
	_, err := s.client.SetAvailabilityDetailed(ctx, newAvailabilityFixture(s.run.ProviderID, s.client.TenantID()))
	return err
}

func (s *scenario) bookAppointment(ctx context.Context) error {
	request := newAppointmentFixture(s.run.PatientID, s.run.ProviderID, s.client.TenantID(), s.now)
	response, err := s.client.BookAppointmentDetailed(ctx, request)
	if err != nil {
		return err
	}
	appointment := response.Data
	if appointment.ID == "" {
		return exceptions.ErrVerificationFailed(nil, "appointment response has no id")
	}
	if appointment.PatientID != "" && appointment.PatientID != s.run.PatientID {
		return exceptions.ErrVerificationFailed(nil, "appointment booked for another patient")
	}
	if appointment.ProviderID != "" && appointment.ProviderID != s.run.ProviderID {
		return exceptions.ErrVerificationFailed(nil, "appointment booked with another provider")
	}
	s.run.AppointmentID = appointment.ID
	return nil
}

func (s *scenario) verifyProviders(ctx context.Context) error {
	response, err := s.client.GetProviders(ctx, constvars.DefaultPage, constvars.DefaultPageSize)
	if err != nil {
		return err
	}
	if !containsProvider(response.Data, s.run.ProviderID) {
		return exceptions.ErrVerificationFailed(nil, fmt.Sprintf("provider %s %s (%s) not in providers list", ProviderFirstName, ProviderLastName, s.run.ProviderID))
	}
	return nil
}

func (s *scenario) verifyPatients(ctx context.Context) error {
	response, err := s.client.GetPatients(ctx, constvars.DefaultPage, constvars.DefaultPageSize, PatientFirstName)
	if err != nil {
		return err
	}
	if !containsPatient(response.Data, s.run.PatientID) {
		return exceptions.ErrVerificationFailed(nil, fmt.Sprintf("patient %s %s (%s) not in patients list", PatientFirstName, PatientLastName, s.run.PatientID))
	}
	return nil
}

func (s *scenario) verifyAvailability(ctx context.Context) error {
	response, err := s.client.GetAvailabilitySettings(ctx, s.run.ProviderID)
	if err != nil {
		return err
	}
	if !hasData(response) {
		return exceptions.ErrVerificationFailed(nil, "availability settings are empty")
	}
	return nil
}

func containsProvider(providers []responses.Provider, id string) bool {
	for _, provider := range providers {
		if provider.ID == id {
			return provider.FirstName == ProviderFirstName && provider.LastName == ProviderLastName
		}
	}
	return false
}

func containsPatient(patients []responses.Patient, id string) bool {
	for _, patient := range patients {
		if patient.ID == id {
			return patient.FirstName == PatientFirstName && patient.LastName == PatientLastName
		}
	}
	return false
}

// hasData reports whether the availability payload carries any setting.
func hasData(response *responses.AvailabilityResult) bool {
	if response == nil {
		return false
	}
	data := gjson.ParseBytes(response.Data)
	switch {
	case !data.Exists(), data.Type == gjson.Null:
		return false
	case data.IsArray():
		return len(data.Array()) > 0
	case data.IsObject():
		return len(data.Map()) > 0
	}
	return data.String() != ""
}

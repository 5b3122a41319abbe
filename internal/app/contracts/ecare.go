package contracts

import (
	"context"
	"ecare-automation/internal/pkg/dto/requests"
	"ecare-automation/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

// EcareTransport sends one request to the healthcare API and decodes the
// response envelope into out. It returns the HTTP status that was received.
type EcareTransport interface {
	Do(ctx context.Context, method, endpoint string, body interface{}, includeAuth bool, out interface{}) (int, error)
	SetBearerToken(token string)
	BearerToken() string
	TenantID() string
	RequestID() string
}

type AuthEcareClient interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
}

type PatientEcareClient interface {
	CreatePatient(ctx context.Context, request *requests.Patient) (*responses.PatientResult, error)
	CreatePatientDetailed(ctx context.Context, request *requests.CreatePatient) (*responses.PatientResult, error)
	FindPatients(ctx context.Context, page, size int, search string) (*responses.PatientList, error)
}

type ProviderEcareClient interface {
	CreateProvider(ctx context.Context, request *requests.Provider) (*responses.ProviderResult, error)
	CreateProviderDetailed(ctx context.Context, request *requests.CreateProvider) (*responses.ProviderResult, error)
	FindProviders(ctx context.Context, page, size int) (*responses.ProviderList, error)
}

type AvailabilityEcareClient interface {
	SetProviderAvailability(ctx context.Context, request *requests.Availability) (*responses.AvailabilityResult, error)
	SetAvailabilityDetailed(ctx context.Context, request *requests.SetAvailability) (*responses.AvailabilityResult, error)
	FindAvailabilitySettings(ctx context.Context, providerID string) (*responses.AvailabilityResult, error)
}

type AppointmentEcareClient interface {
	BookAppointment(ctx context.Context, request *requests.Appointment) (*responses.AppointmentResult, error)
	BookAppointmentDetailed(ctx context.Context, request *requests.BookAppointment) (*responses.AppointmentResult, error)
}

// HealthcareAPIClient is the facade the workflow drives.
type HealthcareAPIClient interface {
	Login(ctx context.Context, credentials *requests.LoginCredentials) (*responses.Login, error)
	CreatePatient(ctx context.Context, patient *requests.Patient) (*responses.PatientResult, error)
	CreatePatientDetailed(ctx context.Context, request *requests.CreatePatient) (*responses.PatientResult, error)
	CreateProvider(ctx context.Context, provider *requests.Provider) (*responses.ProviderResult, error)
	CreateProviderDetailed(ctx context.Context, request *requests.CreateProvider) (*responses.ProviderResult, error)
	SetProviderAvailability(ctx context.Context, availability *requests.Availability) (*responses.AvailabilityResult, error)
	SetAvailabilityDetailed(ctx context.Context, request *requests.SetAvailability) (*responses.AvailabilityResult, error)
	BookAppointment(ctx context.Context, appointment *requests.Appointment) (*responses.AppointmentResult, error)
	BookAppointmentDetailed(ctx context.Context, request *requests.BookAppointment) (*responses.AppointmentResult, error)
	GetProviders(ctx context.Context, page, size int) (*responses.ProviderList, error)
	GetPatients(ctx context.Context, page, size int, search string) (*responses.PatientList, error)
	GetAvailabilitySettings(ctx context.Context, providerID string) (*responses.AvailabilityResult, error)
	BearerToken() string
	IsAuthenticated() bool
	RequestID() string
	TenantID() string
	SetContext(fields ...zap.Field)
}

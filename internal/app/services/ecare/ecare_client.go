package ecare

import (
	"context"
	"ecare-automation/internal/app/config"
	"ecare-automation/internal/app/contracts"
	"ecare-automation/internal/app/services/ecare/appointments"
	"ecare-automation/internal/app/services/ecare/auth"
	"ecare-automation/internal/app/services/ecare/availability"
	"ecare-automation/internal/app/services/ecare/patients"
	"ecare-automation/internal/app/services/ecare/providers"
	"ecare-automation/internal/app/services/ecare/transport"
	"ecare-automation/internal/pkg/constvars"
	"ecare-automation/internal/pkg/dto/requests"
	"ecare-automation/internal/pkg/dto/responses"
	"ecare-automation/internal/pkg/exceptions"
	"ecare-automation/internal/pkg/utils"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type Options struct {
	RequestID  string
	HTTPClient *http.Client
}

// healthcareAPIClient validates every payload before handing it to the
// resource clients, which share one transport and therefore one bearer token.
type healthcareAPIClient struct {
	Transport      *transport.Client
	Auth           contracts.AuthEcareClient
	Patients       contracts.PatientEcareClient
	Providers      contracts.ProviderEcareClient
	Availability   contracts.AvailabilityEcareClient
	Appointments   contracts.AppointmentEcareClient
	TokenCache     contracts.TokenCache
	Environment    *config.Environment
	InternalConfig *config.InternalConfig
	Log            *zap.Logger

	// username the current bearer token was issued to
	tokenOwner string
}

// NewHealthcareAPIClient builds a client bound to env. tokenCache may be nil.
func NewHealthcareAPIClient(
	env *config.Environment,
	internalConfig *config.InternalConfig,
	tokenCache contracts.TokenCache,
	logger *zap.Logger,
	opts Options,
) contracts.HealthcareAPIClient {
	if logger == nil {
		logger = zap.NewNop()
	}

	transportOpts := transport.Options{
		BaseUrl:        env.BaseUrl,
		TenantID:       env.TenantID,
		RequestID:      opts.RequestID,
		RequestTimeout: env.Timeouts.Request,
		Retry:          env.Retry,
		HTTPClient:     opts.HTTPClient,
	}
	if internalConfig != nil {
		transportOpts.RequestsPerSecond = internalConfig.Ecare.RequestsPerSecond
		transportOpts.Burst = internalConfig.Ecare.RequestBurst
	}

	client := &healthcareAPIClient{
		Transport:      transport.NewClient(transportOpts, logger),
		TokenCache:     tokenCache,
		Environment:    env,
		InternalConfig: internalConfig,
		Log:            logger.With(zap.String(constvars.LoggingEnvironmentKey, env.Name)),
	}
	client.wire()

	client.Log.Info("HealthcareAPIClient initialized",
		zap.String(constvars.LoggingURLKey, env.BaseUrl),
		zap.String(constvars.LoggingTenantIDKey, env.TenantID),
		zap.String(constvars.LoggingRequestIDKey, client.Transport.RequestID()),
	)
	return client
}

func (c *healthcareAPIClient) wire() {
	c.Transport.Log = c.Log
	c.Auth = auth.NewAuthEcareClient(c.Transport, c.Log)
	c.Patients = patients.NewPatientEcareClient(c.Transport, c.Log)
	c.Providers = providers.NewProviderEcareClient(c.Transport, c.Log)
	c.Availability = availability.NewAvailabilityEcareClient(c.Transport, c.Log)
	c.Appointments = appointments.NewAppointmentEcareClient(c.Transport, c.Log)
}

func (c *healthcareAPIClient) Login(ctx context.Context, credentials *requests.LoginCredentials) (*responses.Login, error) {
	requestID := c.requestID(ctx)
	creds := c.resolveCredentials(credentials)
	c.Log.Info("healthcareAPIClient.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantIDKey, c.Transport.TenantID()),
	)

	if err := utils.ValidateStruct(creds); err != nil {
		c.Log.Error("healthcareAPIClient.Login invalid credentials",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if token := c.cachedToken(ctx, creds.Username); token != "" {
		c.Transport.SetBearerToken(token)
		c.tokenOwner = creds.Username
		c.Log.Info("healthcareAPIClient.Login succeeded from token cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return &responses.Login{
			Code:    constvars.EcareSuccessCodeEntity,
			Message: constvars.LoginCachedMessage,
			Data:    responses.LoginData{AccessToken: token},
		}, nil
	}

	response, err := c.Auth.Login(ctx, &requests.Login{
		Username:  creds.Username,
		Password:  creds.Password,
		XTenantID: c.Transport.TenantID(),
	})
	if err != nil {
		return nil, err
	}

	token := response.Data.AccessToken
	if token == "" {
		err := exceptions.ErrMissingAccessToken(nil)
		c.Log.Error("healthcareAPIClient.Login error no access token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	c.Transport.SetBearerToken(token)
	c.tokenOwner = creds.Username
	c.storeToken(ctx, creds.Username, token)

	c.Log.Info("healthcareAPIClient.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return response, nil
}

func (c *healthcareAPIClient) CreatePatient(ctx context.Context, patient *requests.Patient) (*responses.PatientResult, error) {
	if err := c.validate(ctx, "CreatePatient", patient); err != nil {
		return nil, err
	}
	result, err := c.Patients.CreatePatient(ctx, patient)
	return result, c.observe(ctx, err)
}

func (c *healthcareAPIClient) CreatePatientDetailed(ctx context.Context, request *requests.CreatePatient) (*responses.PatientResult, error) {
	if err := c.validate(ctx, "CreatePatientDetailed", request); err != nil {
		return nil, err
	}
	result, err := c.Patients.CreatePatientDetailed(ctx, request)
	return result, c.observe(ctx, err)
}

func (c *healthcareAPIClient) CreateProvider(ctx context.Context, provider *requests.Provider) (*responses.ProviderResult, error) {
	if err := c.validate(ctx, "CreateProvider", provider); err != nil {
		return nil, err
	}
	result, err := c.Providers.CreateProvider(ctx, provider)
	return result, c.observe(ctx, err)
}

func (c *healthcareAPIClient) CreateProviderDetailed(ctx context.Context, request *requests.CreateProvider) (*responses.ProviderResult, error) {
	if err := c.validate(ctx, "CreateProviderDetailed", request); err != nil {
		return nil, err
	}
	result, err := c.Providers.CreateProviderDetailed(ctx, request)
	return result, c.observe(ctx, err)
}

func (c *healthcareAPIClient) SetProviderAvailability(ctx context.Context, availability *requests.Availability) (*responses.AvailabilityResult, error) {
	if err := c.validate(ctx, "SetProviderAvailability", availability); err != nil {
		return nil, err
	}
	result, err := c.Availability.SetProviderAvailability(ctx, availability)
	return result, c.observe(ctx, err)
}

func (c *healthcareAPIClient) SetAvailabilityDetailed(ctx context.Context, request *requests.SetAvailability) (*responses.AvailabilityResult, error) {
	if err := c.validate(ctx, "SetAvailabilityDetailed", request); err != nil {
		return nil, err
	}
	result, err := c.Availability.SetAvailabilityDetailed(ctx, request)
	return result, c.observe(ctx, err)
}

func (c *healthcareAPIClient) BookAppointment(ctx context.Context, appointment *requests.Appointment) (*responses.AppointmentResult, error) {
	if err := c.validate(ctx, "BookAppointment", appointment); err != nil {
		return nil, err
	}
	result, err := c.Appointments.BookAppointment(ctx, appointment)
	return result, c.observe(ctx, err)
}

func (c *healthcareAPIClient) BookAppointmentDetailed(ctx context.Context, request *requests.BookAppointment) (*responses.AppointmentResult, error) {
	if err := c.validate(ctx, "BookAppointmentDetailed", request); err != nil {
		return nil, err
	}
	result, err := c.Appointments.BookAppointmentDetailed(ctx, request)
	return result, c.observe(ctx, err)
}

func (c *healthcareAPIClient) GetProviders(ctx context.Context, page, size int) (*responses.ProviderList, error) {
	page, size = normalizePage(page, size)
	result, err := c.Providers.FindProviders(ctx, page, size)
	return result, c.observe(ctx, err)
}

func (c *healthcareAPIClient) GetPatients(ctx context.Context, page, size int, search string) (*responses.PatientList, error) {
	page, size = normalizePage(page, size)
	result, err := c.Patients.FindPatients(ctx, page, size, search)
	return result, c.observe(ctx, err)
}

func (c *healthcareAPIClient) GetAvailabilitySettings(ctx context.Context, providerID string) (*responses.AvailabilityResult, error) {
	if providerID == "" {
		err := exceptions.ErrInputValidation(exceptions.NewValidationError("providerId", "is required"))
		c.Log.Error("healthcareAPIClient.GetAvailabilitySettings invalid input",
			zap.String(constvars.LoggingRequestIDKey, c.requestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}
	result, err := c.Availability.FindAvailabilitySettings(ctx, providerID)
	return result, c.observe(ctx, err)
}

func (c *healthcareAPIClient) BearerToken() string {
	return c.Transport.BearerToken()
}

func (c *healthcareAPIClient) IsAuthenticated() bool {
	return c.Transport.BearerToken() != ""
}

func (c *healthcareAPIClient) RequestID() string {
	return c.Transport.RequestID()
}

func (c *healthcareAPIClient) TenantID() string {
	return c.Transport.TenantID()
}

func (c *healthcareAPIClient) SetContext(fields ...zap.Field) {
	c.Log = c.Log.With(fields...)
	c.wire()
}

func (c *healthcareAPIClient) validate(ctx context.Context, operation string, request interface{}) error {
	if err := utils.ValidateStruct(request); err != nil {
		c.Log.Error("healthcareAPIClient."+operation+" invalid input",
			zap.String(constvars.LoggingRequestIDKey, c.requestID(ctx)),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// observe drops a cached token the API no longer accepts.
func (c *healthcareAPIClient) observe(ctx context.Context, err error) error {
	var apiErr *exceptions.APIError
	if err == nil || c.TokenCache == nil || !errors.As(err, &apiErr) || apiErr.Status != constvars.StatusUnauthorized {
		return err
	}

	username := c.tokenOwner
	if username == "" {
		username = c.Environment.Credentials.Username
	}
	if cacheErr := c.TokenCache.Invalidate(ctx, c.Transport.TenantID(), username); cacheErr != nil {
		c.Log.Warn("healthcareAPIClient failed to invalidate cached token",
			zap.String(constvars.LoggingRequestIDKey, c.requestID(ctx)),
			zap.Error(cacheErr),
		)
	}
	return err
}

func (c *healthcareAPIClient) resolveCredentials(credentials *requests.LoginCredentials) *requests.LoginCredentials {
	if credentials != nil {
		return credentials
	}
	return &requests.LoginCredentials{
		Username: c.Environment.Credentials.Username,
		Password: c.Environment.Credentials.Password,
	}
}

func (c *healthcareAPIClient) cachedToken(ctx context.Context, username string) string {
	if c.TokenCache == nil {
		return ""
	}
	token, err := c.TokenCache.Get(ctx, c.Transport.TenantID(), username)
	if err != nil {
		c.Log.Warn("healthcareAPIClient failed to read token cache",
			zap.String(constvars.LoggingRequestIDKey, c.requestID(ctx)),
			zap.Error(err),
		)
		return ""
	}
	if token == "" {
		return ""
	}
	if expiresAt, ok := utils.TokenExpiry(token); ok && !expiresAt.After(time.Now()) {
		return ""
	}
	return token
}

func (c *healthcareAPIClient) storeToken(ctx context.Context, username, token string) {
	if c.TokenCache == nil {
		return
	}
	if err := c.TokenCache.Put(ctx, c.Transport.TenantID(), username, token); err != nil {
		c.Log.Warn("healthcareAPIClient failed to cache token",
			zap.String(constvars.LoggingRequestIDKey, c.requestID(ctx)),
			zap.Error(err),
		)
	}
}

func (c *healthcareAPIClient) requestID(ctx context.Context) string {
	if requestID := utils.GetRequestID(ctx); requestID != "" {
		return requestID
	}
	return c.Transport.RequestID()
}

func normalizePage(page, size int) (int, int) {
	if page < 0 {
		page = constvars.DefaultPage
	}
	if size <= 0 {
		size = constvars.DefaultPageSize
	}
	return page, size
}

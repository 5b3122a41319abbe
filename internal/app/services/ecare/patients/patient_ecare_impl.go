package patients

import (
	"context"
	"ecare-automation/internal/app/contracts"
	"ecare-automation/internal/pkg/constvars"
	"ecare-automation/internal/pkg/dto/requests"
	"ecare-automation/internal/pkg/dto/responses"
	"ecare-automation/internal/pkg/utils"
	"net/url"
	"strconv"

	"go.uber.org/zap"
)

type patientEcareClient struct {
	Transport contracts.EcareTransport
	Log       *zap.Logger
}

func NewPatientEcareClient(transport contracts.EcareTransport, logger *zap.Logger) contracts.PatientEcareClient {
	return &patientEcareClient{
		Transport: transport,
		Log:       logger,
	}
}

func (c *patientEcareClient) CreatePatient(ctx context.Context, request *requests.Patient) (*responses.PatientResult, error) {
	requestID := c.requestID(ctx)
	c.Log.Info("patientEcareClient.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNameKey, request.FirstName+" "+request.LastName),
	)
	return c.create(ctx, "patientEcareClient.CreatePatient", requestID, request)
}

func (c *patientEcareClient) CreatePatientDetailed(ctx context.Context, request *requests.CreatePatient) (*responses.PatientResult, error) {
	requestID := c.requestID(ctx)
	c.Log.Info("patientEcareClient.CreatePatientDetailed called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNameKey, request.FirstName+" "+request.LastName),
	)
	return c.create(ctx, "patientEcareClient.CreatePatientDetailed", requestID, request)
}

func (c *patientEcareClient) create(ctx context.Context, operation, requestID string, body interface{}) (*responses.PatientResult, error) {
	response := new(responses.PatientResult)
	status, err := c.Transport.Do(ctx, constvars.MethodPost, constvars.ResourcePatient, body, true, response)
	if err != nil {
		c.Log.Error(operation+" error sending request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, status),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info(operation+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, response.Data.ID),
	)
	return response, nil
}

func (c *patientEcareClient) FindPatients(ctx context.Context, page, size int, search string) (*responses.PatientList, error) {
	requestID := c.requestID(ctx)
	c.Log.Info("patientEcareClient.FindPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPageKey, page),
		zap.Int(constvars.LoggingSizeKey, size),
		zap.String(constvars.LoggingSearchStringKey, search),
	)

	query := url.Values{}
	query.Set(constvars.QueryParamPage, strconv.Itoa(page))
	query.Set(constvars.QueryParamSize, strconv.Itoa(size))
	if search != "" {
		query.Set(constvars.QueryParamSearch, search)
	}

	response := new(responses.PatientList)
	status, err := c.Transport.Do(ctx, constvars.MethodGet, constvars.ResourcePatient+"?"+query.Encode(), nil, true, response)
	if err != nil {
		c.Log.Error("patientEcareClient.FindPatients error sending request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, status),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("patientEcareClient.FindPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(response.Data)),
	)
	return response, nil
}

func (c *patientEcareClient) requestID(ctx context.Context) string {
	if requestID := utils.GetRequestID(ctx); requestID != "" {
		return requestID
	}
	return c.Transport.RequestID()
}

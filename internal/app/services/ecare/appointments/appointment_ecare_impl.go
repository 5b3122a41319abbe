package appointments

import (
	"context"
	"ecare-automation/internal/app/contracts"
	"ecare-automation/internal/pkg/constvars"
	"ecare-automation/internal/pkg/dto/requests"
	"ecare-automation/internal/pkg/dto/responses"
	"ecare-automation/internal/pkg/utils"

	"go.uber.org/zap"
)

type appointmentEcareClient struct {
	Transport contracts.EcareTransport
	Log       *zap.Logger
}

func NewAppointmentEcareClient(transport contracts.EcareTransport, logger *zap.Logger) contracts.AppointmentEcareClient {
	return &appointmentEcareClient{
		Transport: transport,
		Log:       logger,
	}
}

func (c *appointmentEcareClient) BookAppointment(ctx context.Context, request *requests.Appointment) (*responses.AppointmentResult, error) {
	requestID := c.requestID(ctx)
	c.Log.Info("appointmentEcareClient.BookAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.String(constvars.LoggingProviderIDKey, request.ProviderID),
	)
	return c.book(ctx, "appointmentEcareClient.BookAppointment", requestID, request)
}

func (c *appointmentEcareClient) BookAppointmentDetailed(ctx context.Context, request *requests.BookAppointment) (*responses.AppointmentResult, error) {
	requestID := c.requestID(ctx)
	c.Log.Info("appointmentEcareClient.BookAppointmentDetailed called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.String(constvars.LoggingProviderIDKey, request.ProviderID),
	)
	return c.book(ctx, "appointmentEcareClient.BookAppointmentDetailed", requestID, request)
}

func (c *appointmentEcareClient) book(ctx context.Context, operation, requestID string, body interface{}) (*responses.AppointmentResult, error) {
	response := new(responses.AppointmentResult)
	status, err := c.Transport.Do(ctx, constvars.MethodPost, constvars.ResourceAppointment, body, true, response)
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
		zap.String(constvars.LoggingAppointmentIDKey, response.Data.ID),
	)
	return response, nil
}

func (c *appointmentEcareClient) requestID(ctx context.Context) string {
	if requestID := utils.GetRequestID(ctx); requestID != "" {
		return requestID
	}
	return c.Transport.RequestID()
}

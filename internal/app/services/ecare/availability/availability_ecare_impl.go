package availability

import (
	"context"
	"ecare-automation/internal/app/contracts"
	"ecare-automation/internal/pkg/constvars"
	"ecare-automation/internal/pkg/dto/requests"
	"ecare-automation/internal/pkg/dto/responses"
	"ecare-automation/internal/pkg/utils"
	"fmt"
	"net/url"

	"go.uber.org/zap"
)

type availabilityEcareClient struct {
	Transport contracts.EcareTransport
	Log       *zap.Logger
}

func NewAvailabilityEcareClient(transport contracts.EcareTransport, logger *zap.Logger) contracts.AvailabilityEcareClient {
	return &availabilityEcareClient{
		Transport: transport,
		Log:       logger,
	}
}

func (c *availabilityEcareClient) SetProviderAvailability(ctx context.Context, request *requests.Availability) (*responses.AvailabilityResult, error) {
	requestID := c.requestID(ctx)
	c.Log.Info("availabilityEcareClient.SetProviderAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, request.ProviderID),
		zap.Int(constvars.LoggingSlotsCountKey, len(request.Slots)),
	)
	return c.set(ctx, "availabilityEcareClient.SetProviderAvailability", requestID, request)
}

func (c *availabilityEcareClient) SetAvailabilityDetailed(ctx context.Context, request *requests.SetAvailability) (*responses.AvailabilityResult, error) {
	requestID := c.requestID(ctx)
	c.Log.Info("availabilityEcareClient.SetAvailabilityDetailed called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, request.ProviderID),
		zap.Int(constvars.LoggingSlotsCountKey, len(request.DaySlots)),
	)
	return c.set(ctx, "availabilityEcareClient.SetAvailabilityDetailed", requestID, request)
}

func (c *availabilityEcareClient) set(ctx context.Context, operation, requestID string, body interface{}) (*responses.AvailabilityResult, error) {
	response := new(responses.AvailabilityResult)
	status, err := c.Transport.Do(ctx, constvars.MethodPost, constvars.ResourceAvailabilitySetting, body, true, response)
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
		zap.Int(constvars.LoggingStatusCodeKey, status),
	)
	return response, nil
}

func (c *availabilityEcareClient) FindAvailabilitySettings(ctx context.Context, providerID string) (*responses.AvailabilityResult, error) {
	requestID := c.requestID(ctx)
	c.Log.Info("availabilityEcareClient.FindAvailabilitySettings called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, providerID),
	)

	endpoint := fmt.Sprintf(constvars.ResourceProviderAvailabilityF, url.PathEscape(providerID))
	response := new(responses.AvailabilityResult)
	status, err := c.Transport.Do(ctx, constvars.MethodGet, endpoint, nil, true, response)
	if err != nil {
		c.Log.Error("availabilityEcareClient.FindAvailabilitySettings error sending request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, status),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("availabilityEcareClient.FindAvailabilitySettings succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, providerID),
	)
	return response, nil
}

func (c *availabilityEcareClient) requestID(ctx context.Context) string {
	if requestID := utils.GetRequestID(ctx); requestID != "" {
		return requestID
	}
	return c.Transport.RequestID()
}

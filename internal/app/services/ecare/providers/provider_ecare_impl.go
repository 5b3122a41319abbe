package providers

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

type providerEcareClient struct {
	Transport contracts.EcareTransport
	Log       *zap.Logger
}

func NewProviderEcareClient(transport contracts.EcareTransport, logger *zap.Logger) contracts.ProviderEcareClient {
	return &providerEcareClient{
		Transport: transport,
		Log:       logger,
	}
}

func (c *providerEcareClient) CreateProvider(ctx context.Context, request *requests.Provider) (*responses.ProviderResult, error) {
	requestID := c.requestID(ctx)
	c.Log.Info("providerEcareClient.CreateProvider called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, request.Role),
	)
	return c.create(ctx, "providerEcareClient.CreateProvider", requestID, request)
}

func (c *providerEcareClient) CreateProviderDetailed(ctx context.Context, request *requests.CreateProvider) (*responses.ProviderResult, error) {
	requestID := c.requestID(ctx)
	c.Log.Info("providerEcareClient.CreateProviderDetailed called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, request.RoleType),
	)
	return c.create(ctx, "providerEcareClient.CreateProviderDetailed", requestID, request)
}

func (c *providerEcareClient) create(ctx context.Context, operation, requestID string, body interface{}) (*responses.ProviderResult, error) {
	response := new(responses.ProviderResult)
	status, err := c.Transport.Do(ctx, constvars.MethodPost, constvars.ResourceProvider, body, true, response)
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
		zap.String(constvars.LoggingProviderIDKey, response.Data.ID),
	)
	return response, nil
}

func (c *providerEcareClient) FindProviders(ctx context.Context, page, size int) (*responses.ProviderList, error) {
	requestID := c.requestID(ctx)
	c.Log.Info("providerEcareClient.FindProviders called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPageKey, page),
		zap.Int(constvars.LoggingSizeKey, size),
	)

	query := url.Values{}
	query.Set(constvars.QueryParamPage, strconv.Itoa(page))
	query.Set(constvars.QueryParamSize, strconv.Itoa(size))

	response := new(responses.ProviderList)
	status, err := c.Transport.Do(ctx, constvars.MethodGet, constvars.ResourceProvider+"?"+query.Encode(), nil, true, response)
	if err != nil {
		c.Log.Error("providerEcareClient.FindProviders error sending request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, status),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("providerEcareClient.FindProviders succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(response.Data)),
	)
	return response, nil
}

func (c *providerEcareClient) requestID(ctx context.Context) string {
	if requestID := utils.GetRequestID(ctx); requestID != "" {
		return requestID
	}
	return c.Transport.RequestID()
}

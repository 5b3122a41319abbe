package auth

import (
	"context"
	"ecare-automation/internal/app/contracts"
	"ecare-automation/internal/pkg/constvars"
	"ecare-automation/internal/pkg/dto/requests"
	"ecare-automation/internal/pkg/dto/responses"
	"ecare-automation/internal/pkg/utils"

	"go.uber.org/zap"
)

type authEcareClient struct {
	Transport contracts.EcareTransport
	Log       *zap.Logger
}

func NewAuthEcareClient(transport contracts.EcareTransport, logger *zap.Logger) contracts.AuthEcareClient {
	return &authEcareClient{
		Transport: transport,
		Log:       logger,
	}
}

func (c *authEcareClient) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID := c.requestID(ctx)
	c.Log.Info("authEcareClient.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantIDKey, request.XTenantID),
	)

	response := new(responses.Login)
	status, err := c.Transport.Do(ctx, constvars.MethodPost, constvars.ResourceLogin, request, false, response)
	if err != nil {
		c.Log.Error("authEcareClient.Login error sending request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, status),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("authEcareClient.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStatusCodeKey, status),
		zap.Bool("has_token", response.Data.AccessToken != ""),
	)
	return response, nil
}

func (c *authEcareClient) requestID(ctx context.Context) string {
	if requestID := utils.GetRequestID(ctx); requestID != "" {
		return requestID
	}
	return c.Transport.RequestID()
}

package contracts

import "context"

// TokenCache stores bearer tokens per tenant and user so repeated runs can
// skip the login call.
type TokenCache interface {
	Get(ctx context.Context, tenantID, username string) (string, error)
	Put(ctx context.Context, tenantID, username, token string) error
	Invalidate(ctx context.Context, tenantID, username string) error
}

package contracts

import (
	"context"
	"time"
)

// LockerService guards the per-tenant workflow run lock. TryLock reports
// whether the lock was taken and returns the owner token that Unlock must
// present to release it.
type LockerService interface {
	TryLock(ctx context.Context, runKey string, ttl time.Duration) (acquired bool, ownerToken string, err error)
	Unlock(ctx context.Context, runKey, ownerToken string) error
}

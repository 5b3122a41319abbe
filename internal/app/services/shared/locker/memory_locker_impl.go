package locker

import (
	"context"
	"ecare-automation/internal/app/contracts"
	"ecare-automation/internal/pkg/constvars"
	"ecare-automation/internal/pkg/exceptions"
	"ecare-automation/internal/pkg/utils"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type memoryLock struct {
	value     string
	expiresAt time.Time
}

// memoryLockService serialises runs inside one process when Redis is
// disabled.
type memoryLockService struct {
	mu    sync.Mutex
	locks map[string]memoryLock
	now   func() time.Time
	Log   *zap.Logger
}

func NewMemoryLockService(logger *zap.Logger) contracts.LockerService {
	return &memoryLockService{
		locks: make(map[string]memoryLock),
		now:   time.Now,
		Log:   logger,
	}
}

func (s *memoryLockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if held, ok := s.locks[key]; ok && (held.expiresAt.IsZero() || now.Before(held.expiresAt)) {
		s.Log.Info("memoryLockService.TryLock not acquired",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRedisKey, key),
		)
		return false, "", nil
	}

	lock := memoryLock{value: uuid.NewString()}
	if expiration > 0 {
		lock.expiresAt = now.Add(expiration)
	}
	s.locks[key] = lock
	return true, lock.value, nil
}

func (s *memoryLockService) Unlock(ctx context.Context, key, lockValue string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	held, ok := s.locks[key]
	if !ok {
		return nil
	}
	if held.value != lockValue {
		if !held.expiresAt.IsZero() && !s.now().Before(held.expiresAt) {
			delete(s.locks, key)
			return nil
		}
		err := exceptions.ErrRedisUnlock(nil, key)
		s.Log.Error("memoryLockService.Unlock lock ownership mismatch",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return err
	}
	delete(s.locks, key)
	return nil
}

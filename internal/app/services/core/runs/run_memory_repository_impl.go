package runs

import (
	"context"
	"ecare-automation/internal/app/contracts"
	"ecare-automation/internal/app/models"
	"sort"
	"sync"
)

// RunMemoryRepository keeps run history in process when MongoDB is disabled.
// Stored runs are copies, so callers may keep mutating the run they passed.
type RunMemoryRepository struct {
	mu   sync.RWMutex
	runs map[string]models.Run
}

func NewRunMemoryRepository() contracts.RunRepository {
	return &RunMemoryRepository{runs: make(map[string]models.Run)}
}

func (r *RunMemoryRepository) Create(ctx context.Context, run *models.Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs[run.ID] = copyRun(run)
	return nil
}

func (r *RunMemoryRepository) Update(ctx context.Context, run *models.Run) error {
	run.Touch()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs[run.ID] = copyRun(run)
	return nil
}

func (r *RunMemoryRepository) FindByID(ctx context.Context, runID string) (*models.Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	run, ok := r.runs[runID]
	if !ok {
		return nil, nil
	}
	found := copyRun(&run)
	return &found, nil
}

func (r *RunMemoryRepository) FindRecent(ctx context.Context, limit int) ([]models.Run, error) {
	r.mu.RLock()
	runs := make([]models.Run, 0, len(r.runs))
	for _, run := range r.runs {
		runs = append(runs, copyRun(&run))
	}
	r.mu.RUnlock()

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

func copyRun(run *models.Run) models.Run {
	copied := *run
	copied.Steps = append([]models.StepResult(nil), run.Steps...)
	if run.FinishedAt != nil {
		finishedAt := *run.FinishedAt
		copied.FinishedAt = &finishedAt
	}
	return copied
}

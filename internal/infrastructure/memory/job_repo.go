package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pawararyan169/job-portal/internal/domain"
)

type JobRepo struct {
	mu   sync.RWMutex
	byID map[string]domain.Job
}

func NewJobRepo() *JobRepo {
	return &JobRepo{byID: make(map[string]domain.Job)}
}

func (r *JobRepo) List(ctx context.Context, limit int) ([]domain.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Job, 0, len(r.byID))
	for _, j := range r.byID {
		out = append(out, j)
	}
	// Newest first; IDs break ties so the order is stable.
	sort.Slice(out, func(i, k int) bool {
		if !out[i].CreatedAt.Equal(out[k].CreatedAt) {
			return out[i].CreatedAt.After(out[k].CreatedAt)
		}
		return out[i].ID > out[k].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *JobRepo) Create(ctx context.Context, j domain.Job) (domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if j.ID == "" {
		return domain.Job{}, domain.ErrInternal(nil)
	}
	r.byID[j.ID] = j
	return j, nil
}

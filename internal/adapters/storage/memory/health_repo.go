package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"animal-health-service/internal/domain/health"
)

var (
	ErrNotFound = errors.New("not found")
)

type healthRepo struct {
	mu   sync.RWMutex
	byID map[string]health.Record
}

func NewHealthRepo() health.Repository {
	return &healthRepo{
		byID: make(map[string]health.Record),
	}
}

func (r *healthRepo) Create(ctx context.Context, rec health.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("record id required")
	}
	if _, exists := r.byID[rec.ID]; exists {
		return errors.New("record already exists")
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *healthRepo) GetByID(ctx context.Context, id string) (health.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return health.Record{}, ErrNotFound
	}
	return rec, nil
}

func (r *healthRepo) Update(ctx context.Context, rec health.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[rec.ID]; !exists {
		return ErrNotFound
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *healthRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *healthRepo) ListByAnimal(ctx context.Context, animalID string) ([]health.Record, error) {
	return r.list(func(rec health.Record) bool {
		return rec.AnimalID == animalID
	}), nil
}

func (r *healthRepo) ListByOwner(ctx context.Context, ownerUsername string) ([]health.Record, error) {
	return r.list(func(rec health.Record) bool {
		return rec.OwnerUsername == ownerUsername
	}), nil
}

func (r *healthRepo) ListAll(ctx context.Context) ([]health.Record, error) {
	return r.list(func(health.Record) bool { return true }), nil
}

func (r *healthRepo) list(match func(health.Record) bool) []health.Record {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]health.Record, 0)
	for _, rec := range r.byID {
		if match(rec) {
			out = append(out, rec)
		}
	}

	// Orden estable por created_at asc (consistencia en dev/tests)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out
}

package store

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"nadi/internal/models"
)

var ErrNotFound = errors.New("record not found")

// AssetFilter — необязательные фильтры списка (зеркало repo.AssetFilter).
type AssetFilter struct {
	Status   models.AssetStatus
	Category string
	Location string
}

// AssetStore — in-memory CRUD по активам для режима без БД. Активы не
// проходят через машину статусов, это обычные формы.
type AssetStore struct {
	mu    sync.RWMutex
	items map[string]*models.Asset
}

func NewAssetStore() *AssetStore {
	return &AssetStore{items: make(map[string]*models.Asset)}
}

func (s *AssetStore) List(ctx context.Context, f AssetFilter) ([]models.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Asset, 0, len(s.items))
	for _, a := range s.items {
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		if f.Category != "" && a.Category != f.Category {
			continue
		}
		if f.Location != "" && a.Location != f.Location {
			continue
		}
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *AssetStore) Get(ctx context.Context, id string) (*models.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (s *AssetStore) Create(ctx context.Context, a *models.Asset) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Status == "" {
		a.Status = models.AssetActive
	}
	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *a
	s.items[a.ID] = &cp
	return nil
}

func (s *AssetStore) Update(ctx context.Context, a *models.Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.items[a.ID]
	if !ok {
		return ErrNotFound
	}
	cp := *a
	cp.CreatedAt = old.CreatedAt
	cp.UpdatedAt = time.Now().UTC()
	s.items[a.ID] = &cp
	return nil
}

func (s *AssetStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *AssetStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.items)), nil
}

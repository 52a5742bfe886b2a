package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"nadi/internal/models"
)

// SettingStore — in-memory справочники активов для режима без БД.
type SettingStore struct {
	mu    sync.RWMutex
	items map[string]*models.AssetSetting
}

func NewSettingStore() *SettingStore {
	return &SettingStore{items: make(map[string]*models.AssetSetting)}
}

func (s *SettingStore) List(ctx context.Context, kind models.SettingKind) ([]models.AssetSetting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.AssetSetting, 0, len(s.items))
	for _, st := range s.items {
		if kind != "" && st.Kind != kind {
			continue
		}
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (s *SettingStore) Create(ctx context.Context, st *models.AssetSetting) error {
	if st.ID == "" {
		st.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	st.CreatedAt = now
	st.UpdatedAt = now
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *st
	s.items[st.ID] = &cp
	return nil
}

func (s *SettingStore) Update(ctx context.Context, st *models.AssetSetting) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.items[st.ID]
	if !ok {
		return ErrNotFound
	}
	old.Name = st.Name
	old.Description = st.Description
	old.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *SettingStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}
	delete(s.items, id)
	return nil
}

package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"nadi/internal/models"
)

// UserDirectory — in-memory справочник пользователей (seed-набор).
// Реализует session.UserDirectory.
type UserDirectory struct {
	mu      sync.RWMutex
	byID    map[string]*models.User
	byEmail map[string]*models.User // ключ — e-mail в нижнем регистре
}

func NewUserDirectory(users []models.User) *UserDirectory {
	d := &UserDirectory{
		byID:    make(map[string]*models.User, len(users)),
		byEmail: make(map[string]*models.User, len(users)),
	}
	for i := range users {
		u := users[i]
		d.byID[u.ID] = &u
		d.byEmail[strings.ToLower(u.Email)] = &u
	}
	return d
}

func (d *UserDirectory) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	u, ok := d.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (d *UserDirectory) FindByID(ctx context.Context, id string) (*models.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	u, ok := d.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (d *UserDirectory) List(ctx context.Context) ([]models.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]models.User, 0, len(d.byID))
	for _, u := range d.byID {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

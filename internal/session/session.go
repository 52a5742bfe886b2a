// Package session holds who is logged in and answers permission
// questions for the rest of the application.
package session

import (
	"context"
	"strings"
	"sync"

	"nadi/internal/logs"
	"nadi/internal/models"
	"nadi/internal/rbac"
	"nadi/internal/token"
)

// UserDirectory — источник пользователей (seed-набор или БД).
type UserDirectory interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// Manager issues sessions at login and resolves bearer tokens back to
// users. Logout revokes the session id, так что украденный токен после
// выхода тоже перестаёт работать.
type Manager struct {
	dir    UserDirectory
	tokens *token.Manager

	mu     sync.RWMutex
	active map[string]string // jti -> user id
}

func NewManager(dir UserDirectory, tokens *token.Manager) *Manager {
	return &Manager{dir: dir, tokens: tokens, active: make(map[string]string)}
}

// Login looks the user up by case-insensitive email. The password is
// accepted but not verified — real credential checks are out of scope
// here; the boolean mirrors that contract (false on miss, never an
// enumeration-revealing error). ctx keeps the call shape compatible
// with a future real authentication backend.
func (m *Manager) Login(ctx context.Context, email, password string) (signed string, user *models.User, ok bool, err error) {
	_ = password
	u, err := m.dir.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", nil, false, err
	}
	if u == nil || !u.IsActive {
		return "", nil, false, nil
	}
	signed, jti, err := m.tokens.Issue(u)
	if err != nil {
		return "", nil, false, err
	}
	m.mu.Lock()
	m.active[jti] = u.ID
	m.mu.Unlock()
	logs.Logger.Infof("login user=%s role=%s", u.Email, u.Role)
	return signed, u, true, nil
}

// Logout revokes the session unconditionally; always succeeds.
func (m *Manager) Logout(raw string) {
	claims, err := m.tokens.Parse(raw)
	if err != nil {
		return
	}
	m.mu.Lock()
	delete(m.active, claims.ID)
	m.mu.Unlock()
	logs.Logger.Infof("logout user=%s", claims.Email)
}

// FromToken resolves a bearer token to its user. Fail-closed: invalid
// signature, expired token, revoked session or unknown user all yield
// nil.
func (m *Manager) FromToken(ctx context.Context, raw string) *models.User {
	claims, err := m.tokens.Parse(raw)
	if err != nil {
		return nil
	}
	m.mu.RLock()
	_, alive := m.active[claims.ID]
	m.mu.RUnlock()
	if !alive {
		return nil
	}
	u, err := m.dir.FindByID(ctx, claims.UserID)
	if err != nil || u == nil || !u.IsActive {
		return nil
	}
	return u
}

// CheckPermission delegates to rbac; no user means no permission.
func (m *Manager) CheckPermission(u *models.User, allowed []models.Role) bool {
	if u == nil {
		return false
	}
	return rbac.IsAuthorized(u.Role, allowed)
}

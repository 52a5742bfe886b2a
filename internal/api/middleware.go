package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"nadi/internal/models"
	"nadi/internal/session"
)

type ctxKey string

const userKey ctxKey = "user"

// BearerAuth разбирает Authorization: Bearer <token> и кладёт
// пользователя в контекст запроса. Без валидной сессии — 401.
func BearerAuth(sess *session.Manager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const p = "Bearer "
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, p) {
				models.WriteProblem(w, http.StatusUnauthorized, "Unauthorized", "missing bearer token", nil)
				return
			}
			u := sess.FromToken(r.Context(), strings.TrimPrefix(auth, p))
			if u == nil {
				models.WriteProblem(w, http.StatusUnauthorized, "Unauthorized", "invalid or expired session", nil)
				return
			}
			ctx := context.WithValue(r.Context(), userKey, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUser возвращает пользователя запроса (nil вне BearerAuth).
func CurrentUser(r *http.Request) *models.User {
	u, _ := r.Context().Value(userKey).(*models.User)
	return u
}

// requireRoles — ролевой гейт поверх BearerAuth. Fail-closed.
func (h *Handler) requireRoles(allowed []models.Role) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !h.Sessions.CheckPermission(CurrentUser(r), allowed) {
				models.WriteProblem(w, http.StatusForbidden, "Forbidden", "role not permitted for this resource", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

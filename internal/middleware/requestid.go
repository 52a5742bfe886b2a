// Package middleware — сквозные HTTP-обёртки: request-id, перехват
// паник и access-лог.
package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type ctxKey string

const requestIDKey ctxKey = "reqid"

// headerRequestID — заголовок корреляции; входящее значение
// доверяем (внутренний сервис за реверс-прокси), иначе генерируем.
const headerRequestID = "X-Request-Id"

// RequestID проставляет идентификатор запроса в контекст и в ответ.
// По нему склеиваются access-лог, лог паники и ответ клиенту.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(headerRequestID, id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID возвращает идентификатор запроса ("" вне RequestID).
func GetRequestID(r *http.Request) string {
	if s, ok := r.Context().Value(requestIDKey).(string); ok {
		return s
	}
	return ""
}

package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// RegisterRoutes — базовый liveness.
func RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/healthz", ok).Methods(http.MethodGet)
}

// RegisterRoutesWithDB — liveness + readiness (проверка БД).
func RegisterRoutesWithDB(r *mux.Router, db *gorm.DB) {
	RegisterRoutes(r)
	r.HandleFunc("/readyz", readiness(db)).Methods(http.MethodGet)
}

func readiness(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db == nil {
			http.Error(w, "db not configured", http.StatusServiceUnavailable)
			return
		}
		sqlDB, err := db.DB()
		if err != nil {
			http.Error(w, "db handle error", http.StatusServiceUnavailable)
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := sqlDB.PingContext(ctx); err != nil {
			http.Error(w, "db unreachable", http.StatusServiceUnavailable)
			return
		}
		ok(w, r)
	}
}

func ok(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

package api

import (
	"net/http"

	"nadi/internal/models"
)

func (h *Handler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	kpi, err := h.Stats.Dashboard(r.Context())
	if err != nil {
		models.WriteProblem(w, http.StatusInternalServerError, "Internal Server Error", err.Error(), nil)
		return
	}
	models.WriteJSON(w, http.StatusOK, kpi)
}

func (h *Handler) PerformanceStats(w http.ResponseWriter, r *http.Request) {
	models.WriteJSON(w, http.StatusOK, h.Stats.Performance(r.Context()))
}

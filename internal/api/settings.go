package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"nadi/internal/models"
	"nadi/internal/store"
)

func (h *Handler) ListSettings(w http.ResponseWriter, r *http.Request) {
	kind := models.SettingKind(r.URL.Query().Get("kind"))
	items, err := h.Settings.List(r.Context(), kind)
	if err != nil {
		models.WriteProblem(w, http.StatusInternalServerError, "Internal Server Error", err.Error(), nil)
		return
	}
	models.WriteJSON(w, http.StatusOK, map[string]any{"settings": items})
}

func (h *Handler) CreateSetting(w http.ResponseWriter, r *http.Request) {
	var st models.AssetSetting
	if err := models.DecodeJSON(w, r, &st); err != nil {
		models.WriteProblem(w, http.StatusBadRequest, "Bad Request", err.Error(), nil)
		return
	}
	if strings.TrimSpace(st.Name) == "" || st.Kind == "" {
		models.WriteProblem(w, http.StatusUnprocessableEntity, "Validation Failed",
			"name and kind are required", nil)
		return
	}
	st.ID = ""
	if err := h.Settings.Create(r.Context(), &st); err != nil {
		models.WriteProblem(w, http.StatusInternalServerError, "Internal Server Error", err.Error(), nil)
		return
	}
	models.WriteJSON(w, http.StatusCreated, st)
}

func (h *Handler) UpdateSetting(w http.ResponseWriter, r *http.Request) {
	var st models.AssetSetting
	if err := models.DecodeJSON(w, r, &st); err != nil {
		models.WriteProblem(w, http.StatusBadRequest, "Bad Request", err.Error(), nil)
		return
	}
	st.ID = mux.Vars(r)["id"]
	if err := h.Settings.Update(r.Context(), &st); err != nil {
		writeSettingError(w, err)
		return
	}
	models.WriteJSON(w, http.StatusOK, st)
}

func (h *Handler) DeleteSetting(w http.ResponseWriter, r *http.Request) {
	if err := h.Settings.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeSettingError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeSettingError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		models.WriteProblem(w, http.StatusNotFound, "Not Found", "setting not found", nil)
		return
	}
	models.WriteProblem(w, http.StatusInternalServerError, "Internal Server Error", err.Error(), nil)
}

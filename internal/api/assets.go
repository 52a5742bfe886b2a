package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"nadi/internal/models"
	"nadi/internal/store"
)

func (h *Handler) ListAssets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	assets, err := h.Assets.List(r.Context(), store.AssetFilter{
		Status:   models.AssetStatus(q.Get("status")),
		Category: q.Get("category"),
		Location: q.Get("location"),
	})
	if err != nil {
		models.WriteProblem(w, http.StatusInternalServerError, "Internal Server Error", err.Error(), nil)
		return
	}
	models.WriteJSON(w, http.StatusOK, map[string]any{"assets": assets, "total": len(assets)})
}

func (h *Handler) GetAsset(w http.ResponseWriter, r *http.Request) {
	a, err := h.Assets.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeAssetError(w, err)
		return
	}
	models.WriteJSON(w, http.StatusOK, a)
}

func (h *Handler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	var a models.Asset
	if err := models.DecodeJSON(w, r, &a); err != nil {
		models.WriteProblem(w, http.StatusBadRequest, "Bad Request", err.Error(), nil)
		return
	}
	if strings.TrimSpace(a.Name) == "" || strings.TrimSpace(a.SerialNumber) == "" {
		models.WriteProblem(w, http.StatusUnprocessableEntity, "Validation Failed",
			"name and serial_number are required", nil)
		return
	}
	a.ID = "" // id выдаёт хранилище
	if err := h.Assets.Create(r.Context(), &a); err != nil {
		models.WriteProblem(w, http.StatusInternalServerError, "Internal Server Error", err.Error(), nil)
		return
	}
	models.WriteJSON(w, http.StatusCreated, a)
}

func (h *Handler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	var a models.Asset
	if err := models.DecodeJSON(w, r, &a); err != nil {
		models.WriteProblem(w, http.StatusBadRequest, "Bad Request", err.Error(), nil)
		return
	}
	a.ID = mux.Vars(r)["id"]
	if err := h.Assets.Update(r.Context(), &a); err != nil {
		writeAssetError(w, err)
		return
	}
	models.WriteJSON(w, http.StatusOK, a)
}

func (h *Handler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	if err := h.Assets.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeAssetError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeAssetError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		models.WriteProblem(w, http.StatusNotFound, "Not Found", "asset not found", nil)
		return
	}
	models.WriteProblem(w, http.StatusInternalServerError, "Internal Server Error", err.Error(), nil)
}

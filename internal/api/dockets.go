package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"nadi/internal/docket"
	"nadi/internal/models"
)

type createDocketRequest struct {
	Title                   string                 `json:"title"`
	Description             string                 `json:"description"`
	Type                    models.MaintenanceType `json:"type"`
	Category                models.DocketCategory  `json:"category"`
	SLACategory             models.SLACategory     `json:"sla_category"`
	Location                string                 `json:"location"`
	AssetID                 string                 `json:"asset_id"`
	EstimatedCompletionDate string                 `json:"estimated_completion_date"`
}

type transitionRequest struct {
	Status                  models.DocketStatus `json:"status"`
	Remarks                 string              `json:"remarks"`
	EstimatedCompletionDate string              `json:"estimated_completion_date"`
}

func (h *Handler) ListDockets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	status := models.DocketStatus(q.Get("status"))
	typ := models.MaintenanceType(q.Get("type"))
	sla := models.SLACategory(q.Get("sla"))
	search := strings.ToLower(q.Get("q"))

	var out []*models.MaintenanceDocket
	for _, d := range h.Dockets.GetAll() {
		if status != "" && d.Status != status {
			continue
		}
		if typ != "" && d.Type != typ {
			continue
		}
		if sla != "" && d.SLACategory != sla {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(d.DocketNo), search) &&
			!strings.Contains(strings.ToLower(d.Title), search) {
			continue
		}
		out = append(out, d)
	}
	if out == nil {
		out = []*models.MaintenanceDocket{}
	}
	models.WriteJSON(w, http.StatusOK, map[string]any{"dockets": out, "total": len(out)})
}

func (h *Handler) GetDocket(w http.ResponseWriter, r *http.Request) {
	d := h.Dockets.Get(mux.Vars(r)["id"])
	if d == nil {
		models.WriteProblem(w, http.StatusNotFound, "Not Found", "docket not found", nil)
		return
	}
	models.WriteJSON(w, http.StatusOK, d)
}

// CreateDocket заводит новый докет в статусе DRAFTED. Номер докета
// присваивается при вставке и больше никогда не меняется.
func (h *Handler) CreateDocket(w http.ResponseWriter, r *http.Request) {
	var req createDocketRequest
	if err := models.DecodeJSON(w, r, &req); err != nil {
		models.WriteProblem(w, http.StatusBadRequest, "Bad Request", err.Error(), nil)
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" ||
		strings.TrimSpace(req.Location) == "" {
		models.WriteProblem(w, http.StatusUnprocessableEntity, "Validation Failed",
			"title, description and location are required", nil)
		return
	}
	if req.Type == "" {
		req.Type = models.TypeComprehensive
	}
	if req.Category == "" {
		req.Category = models.CategoryICT
	}
	if req.SLACategory == "" {
		req.SLACategory = models.SLANormal
	}

	user := CurrentUser(r)
	now := time.Now().UTC()
	d := &models.MaintenanceDocket{
		ID:                      uuid.NewString(),
		Title:                   req.Title,
		Description:             req.Description,
		Type:                    req.Type,
		Category:                req.Category,
		SLACategory:             req.SLACategory,
		Status:                  models.StatusDrafted,
		Location:                req.Location,
		AssetID:                 req.AssetID,
		RequestedBy:             user.Name,
		SubmittedBy:             user.Name,
		SubmittedDate:           now,
		EstimatedCompletionDate: req.EstimatedCompletionDate,
		LastActionBy:            user.Name,
		LastActionDate:          now,
		Attachments:             models.Attachments{Before: []string{}, After: []string{}},
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	// Номер выдаёт store — атомарно со вставкой.
	if err := h.Dockets.Create(r.Context(), d, now); err != nil {
		models.WriteProblem(w, http.StatusInternalServerError, "Internal Server Error", err.Error(), nil)
		return
	}
	models.WriteJSON(w, http.StatusCreated, d)
}

// TransitionDocket прогоняет смену статуса через машину переходов и
// при успехе сохраняет новый снапшот. Частично применённых переходов
// не бывает: в store попадает только полностью валидный результат.
func (h *Handler) TransitionDocket(w http.ResponseWriter, r *http.Request) {
	var req transitionRequest
	if err := models.DecodeJSON(w, r, &req); err != nil {
		models.WriteProblem(w, http.StatusBadRequest, "Bad Request", err.Error(), nil)
		return
	}
	d := h.Dockets.Get(mux.Vars(r)["id"])
	if d == nil {
		models.WriteProblem(w, http.StatusNotFound, "Not Found", "docket not found", nil)
		return
	}
	next, err := docket.Transition(d, req.Status, CurrentUser(r), docket.TransitionOptions{
		Remarks:                 req.Remarks,
		EstimatedCompletionDate: req.EstimatedCompletionDate,
	})
	if err != nil {
		writeTransitionError(w, err)
		return
	}
	if err := h.Dockets.Upsert(r.Context(), next); err != nil {
		models.WriteProblem(w, http.StatusInternalServerError, "Internal Server Error", err.Error(), nil)
		return
	}
	models.WriteJSON(w, http.StatusOK, next)
}

// DocketActions сообщает допустимые целевые статусы для текущего
// пользователя (гейтинг кнопок в UI).
func (h *Handler) DocketActions(w http.ResponseWriter, r *http.Request) {
	d := h.Dockets.Get(mux.Vars(r)["id"])
	if d == nil {
		models.WriteProblem(w, http.StatusNotFound, "Not Found", "docket not found", nil)
		return
	}
	targets := docket.AllowedTargets(d.Status, CurrentUser(r).Role)
	if targets == nil {
		targets = []models.DocketStatus{}
	}
	models.WriteJSON(w, http.StatusOK, map[string]any{
		"status":  d.Status,
		"allowed": targets,
	})
}

func writeTransitionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, docket.ErrInvalidStatus):
		models.WriteProblem(w, http.StatusBadRequest, "Bad Request", err.Error(), nil)
	case errors.Is(err, docket.ErrInvalidTransition):
		models.WriteProblem(w, http.StatusConflict, "Conflict", err.Error(), nil)
	case errors.Is(err, docket.ErrUnauthorized):
		models.WriteProblem(w, http.StatusForbidden, "Forbidden", err.Error(), nil)
	case errors.Is(err, docket.ErrMissingField):
		models.WriteProblem(w, http.StatusUnprocessableEntity, "Validation Failed", err.Error(), nil)
	default:
		models.WriteProblem(w, http.StatusInternalServerError, "Internal Server Error", err.Error(), nil)
	}
}

package api

import (
	"net/http"
	"strings"

	"nadi/internal/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := models.DecodeJSON(w, r, &req); err != nil {
		models.WriteProblem(w, http.StatusBadRequest, "Bad Request", err.Error(), nil)
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		models.WriteProblem(w, http.StatusBadRequest, "Bad Request", "email required", nil)
		return
	}
	tok, user, ok, err := h.Sessions.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		models.WriteProblem(w, http.StatusInternalServerError, "Internal Server Error", "login failed", nil)
		return
	}
	if !ok {
		// Одинаковый ответ для «нет такого e-mail» и прочих отказов,
		// чтобы не раскрывать существование учётки.
		models.WriteProblem(w, http.StatusUnauthorized, "Unauthorized", "invalid credentials", nil)
		return
	}
	models.WriteJSON(w, http.StatusOK, loginResponse{Token: tok, User: user})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	const p = "Bearer "
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, p) {
		h.Sessions.Logout(strings.TrimPrefix(auth, p))
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	models.WriteJSON(w, http.StatusOK, CurrentUser(r))
}

package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"nadi/internal/rbac"
)

// RegisterRoutes вешает всю JSON-поверхность на роутер. Ролевые гейты
// берутся из rbac — единственного источника списков допуска.
func RegisterRoutes(r *mux.Router, h *Handler) {
	v1 := r.PathPrefix("/api/v1").Subrouter()

	// Логин — единственный маршрут без сессии.
	v1.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)

	authed := v1.NewRoute().Subrouter()
	authed.Use(BearerAuth(h.Sessions))
	authed.HandleFunc("/auth/logout", h.Logout).Methods(http.MethodPost)
	authed.HandleFunc("/auth/me", h.Me).Methods(http.MethodGet)

	// Уведомления и KPI-дашборд доступны любой живой сессии.
	authed.HandleFunc("/notifications", h.ListNotifications).Methods(http.MethodGet)
	authed.HandleFunc("/notifications/{id}/read", h.MarkNotificationRead).Methods(http.MethodPost)
	authed.HandleFunc("/stats/dashboard", h.DashboardStats).Methods(http.MethodGet)

	perf := authed.NewRoute().Subrouter()
	perf.Use(h.requireRoles(rbac.PerformanceViewRoles))
	perf.HandleFunc("/stats/performance", h.PerformanceStats).Methods(http.MethodGet)

	// Докеты: просмотр — view-уровень; создание — manage-уровень.
	// Переходы статуса авторизует сама машина (role-gated переходы),
	// маршруту достаточно права просмотра.
	dockets := authed.NewRoute().Subrouter()
	dockets.Use(h.requireRoles(rbac.MaintenanceViewRoles))
	dockets.HandleFunc("/dockets", h.ListDockets).Methods(http.MethodGet)
	dockets.HandleFunc("/dockets/{id}", h.GetDocket).Methods(http.MethodGet)
	dockets.HandleFunc("/dockets/{id}/actions", h.DocketActions).Methods(http.MethodGet)
	dockets.HandleFunc("/dockets/{id}/status", h.TransitionDocket).Methods(http.MethodPost)

	docketsRW := authed.NewRoute().Subrouter()
	docketsRW.Use(h.requireRoles(rbac.MaintenanceManageRoles))
	docketsRW.HandleFunc("/dockets", h.CreateDocket).Methods(http.MethodPost)

	assetsRO := authed.NewRoute().Subrouter()
	assetsRO.Use(h.requireRoles(rbac.AssetViewRoles))
	assetsRO.HandleFunc("/assets", h.ListAssets).Methods(http.MethodGet)
	assetsRO.HandleFunc("/assets/{id}", h.GetAsset).Methods(http.MethodGet)

	assetsRW := authed.NewRoute().Subrouter()
	assetsRW.Use(h.requireRoles(rbac.AssetManageRoles))
	assetsRW.HandleFunc("/assets", h.CreateAsset).Methods(http.MethodPost)
	assetsRW.HandleFunc("/assets/{id}", h.UpdateAsset).Methods(http.MethodPut)
	assetsRW.HandleFunc("/assets/{id}", h.DeleteAsset).Methods(http.MethodDelete)

	settings := authed.NewRoute().Subrouter()
	settings.Use(h.requireRoles(rbac.SettingsManageRoles))
	settings.HandleFunc("/settings/assets", h.ListSettings).Methods(http.MethodGet)
	settings.HandleFunc("/settings/assets", h.CreateSetting).Methods(http.MethodPost)
	settings.HandleFunc("/settings/assets/{id}", h.UpdateSetting).Methods(http.MethodPut)
	settings.HandleFunc("/settings/assets/{id}", h.DeleteSetting).Methods(http.MethodDelete)
}

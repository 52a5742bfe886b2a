// Package api — JSON HTTP поверхность приложения: аутентификация,
// докеты, уведомления, активы, справочники и статистика.
package api

import (
	"context"

	"nadi/internal/models"
	"nadi/internal/session"
	"nadi/internal/stats"
	"nadi/internal/store"
)

// AssetStore — контракт CRUD по активам; реализуется и памятью
// (store.AssetStore), и БД (repo.AssetStore через адаптер в server).
type AssetStore interface {
	List(ctx context.Context, f store.AssetFilter) ([]models.Asset, error)
	Get(ctx context.Context, id string) (*models.Asset, error)
	Create(ctx context.Context, a *models.Asset) error
	Update(ctx context.Context, a *models.Asset) error
	Delete(ctx context.Context, id string) error
}

// SettingStore — контракт справочников активов.
type SettingStore interface {
	List(ctx context.Context, kind models.SettingKind) ([]models.AssetSetting, error)
	Create(ctx context.Context, st *models.AssetSetting) error
	Update(ctx context.Context, st *models.AssetSetting) error
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	Sessions      *session.Manager
	Dockets       *store.DocketStore
	Notifications *store.NotificationStore
	Assets        AssetStore
	Settings      SettingStore
	Stats         *stats.Service
}

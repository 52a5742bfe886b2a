package server

import (
	"context"
	"errors"

	"nadi/internal/api"
	"nadi/internal/models"
	"nadi/internal/repo"
	"nadi/internal/store"
)

// Адаптер, реализующий api.AssetStore поверх repo.AssetStore
// (разные типы фильтра и sentinel-ошибки).
type assetAdapter struct{ as *repo.AssetStore }

func newAssetAdapter(as *repo.AssetStore) api.AssetStore { return &assetAdapter{as: as} }

func (a *assetAdapter) List(ctx context.Context, f store.AssetFilter) ([]models.Asset, error) {
	return a.as.List(ctx, repo.AssetFilter{
		Status:   f.Status,
		Category: f.Category,
		Location: f.Location,
	})
}

func (a *assetAdapter) Get(ctx context.Context, id string) (*models.Asset, error) {
	out, err := a.as.Get(ctx, id)
	return out, mapNotFound(err)
}

func (a *assetAdapter) Create(ctx context.Context, m *models.Asset) error {
	return a.as.Create(ctx, m)
}

func (a *assetAdapter) Update(ctx context.Context, m *models.Asset) error {
	return mapNotFound(a.as.Update(ctx, m))
}

func (a *assetAdapter) Delete(ctx context.Context, id string) error {
	return mapNotFound(a.as.Delete(ctx, id))
}

type settingAdapter struct{ ss *repo.SettingStore }

func newSettingAdapter(ss *repo.SettingStore) api.SettingStore { return &settingAdapter{ss: ss} }

func (a *settingAdapter) List(ctx context.Context, kind models.SettingKind) ([]models.AssetSetting, error) {
	return a.ss.List(ctx, kind)
}

func (a *settingAdapter) Create(ctx context.Context, st *models.AssetSetting) error {
	return a.ss.Create(ctx, st)
}

func (a *settingAdapter) Update(ctx context.Context, st *models.AssetSetting) error {
	return mapNotFound(a.ss.Update(ctx, st))
}

func (a *settingAdapter) Delete(ctx context.Context, id string) error {
	return mapNotFound(a.ss.Delete(ctx, id))
}

func mapNotFound(err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return store.ErrNotFound
	}
	return err
}

// statsAssets поставляет активы сервису статистики через общий
// api.AssetStore (память или БД — без разницы).
type statsAssets struct{ as api.AssetStore }

func (s statsAssets) ListAll(ctx context.Context) ([]models.Asset, error) {
	return s.as.List(ctx, store.AssetFilter{})
}

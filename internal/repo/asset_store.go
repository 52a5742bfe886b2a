package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nadi/internal/models"
)

type AssetStore struct{ db *gorm.DB }

func NewAssetStore(db *gorm.DB) *AssetStore { return &AssetStore{db: db} }

// AssetFilter — необязательные фильтры списка.
type AssetFilter struct {
	Status   models.AssetStatus
	Category string
	Location string
}

func (s *AssetStore) List(ctx context.Context, f AssetFilter) ([]models.Asset, error) {
	q := s.db.WithContext(ctx).Model(&models.Asset{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Location != "" {
		q = q.Where("location = ?", f.Location)
	}
	var out []models.Asset
	err := q.Order("created_at").Find(&out).Error
	return out, err
}

func (s *AssetStore) Get(ctx context.Context, id string) (*models.Asset, error) {
	var a models.Asset
	err := s.db.WithContext(ctx).Where(&models.Asset{ID: id}).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *AssetStore) Create(ctx context.Context, a *models.Asset) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Status == "" {
		a.Status = models.AssetActive
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	return s.db.WithContext(ctx).Create(a).Error
}

func (s *AssetStore) Update(ctx context.Context, a *models.Asset) error {
	a.UpdatedAt = time.Now().UTC()
	res := s.db.WithContext(ctx).Model(&models.Asset{}).
		Where("id = ?", a.ID).
		Select("*").Omit("id", "created_at", "deleted_at").
		Updates(a)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete — мягкое удаление (gorm.DeletedAt). Докеты не удаляются
// вообще, а активы — только так.
func (s *AssetStore) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Asset{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *AssetStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Asset{}).Count(&n).Error
	return n, err
}

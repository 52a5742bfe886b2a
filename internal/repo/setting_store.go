package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nadi/internal/models"
)

// SettingStore — справочники активов (категории/типы/локации/бренды).
type SettingStore struct{ db *gorm.DB }

func NewSettingStore(db *gorm.DB) *SettingStore { return &SettingStore{db: db} }

func (s *SettingStore) List(ctx context.Context, kind models.SettingKind) ([]models.AssetSetting, error) {
	q := s.db.WithContext(ctx).Model(&models.AssetSetting{})
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}
	var out []models.AssetSetting
	err := q.Order("kind, name").Find(&out).Error
	return out, err
}

func (s *SettingStore) Create(ctx context.Context, st *models.AssetSetting) error {
	if st.ID == "" {
		st.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	st.CreatedAt = now
	st.UpdatedAt = now
	return s.db.WithContext(ctx).Create(st).Error
}

func (s *SettingStore) Update(ctx context.Context, st *models.AssetSetting) error {
	st.UpdatedAt = time.Now().UTC()
	res := s.db.WithContext(ctx).Model(&models.AssetSetting{}).
		Where("id = ?", st.ID).
		Updates(map[string]any{
			"name":        st.Name,
			"description": st.Description,
			"updated_at":  st.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SettingStore) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.AssetSetting{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nadi/internal/models"
)

// DocketPersistence — write-through бэкенд для store.DocketStore.
// Авторитетным остаётся in-memory список; сюда лишь сбрасывается каждая
// запись, а LoadAll восстанавливает список на старте.
type DocketPersistence struct{ db *gorm.DB }

func NewDocketPersistence(db *gorm.DB) *DocketPersistence { return &DocketPersistence{db: db} }

func (p *DocketPersistence) LoadAll(ctx context.Context) ([]models.MaintenanceDocket, error) {
	var out []models.MaintenanceDocket
	err := p.db.WithContext(ctx).Order("created_at").Find(&out).Error
	return out, err
}

func (p *DocketPersistence) Save(ctx context.Context, d *models.MaintenanceDocket) error {
	return p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(d).Error
}

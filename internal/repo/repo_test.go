package repo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"nadi/internal/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Asset{},
		&models.MaintenanceDocket{},
		&models.Notification{},
		&models.AssetSetting{},
	))
	return db
}

func TestUserStoreFindByEmail(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, &models.User{
		ID: "u1", Name: "Ahmad Razali", Email: "Ahmad@tp.example.com",
		Role: models.RoleTPAdmin, IsActive: true,
	}))

	u, err := s.FindByEmail(ctx, "ahmad@TP.example.COM")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "u1", u.ID)

	// неизвестный e-mail — nil без ошибки (контракт session.UserDirectory)
	u, err = s.FindByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, u)

	u, err = s.FindByID(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, u)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestAssetStoreCRUD(t *testing.T) {
	db := testDB(t)
	s := NewAssetStore(db)
	ctx := context.Background()

	a := &models.Asset{Name: "Dell Latitude 5440", SerialNumber: "SN-001", Category: "ICT", Location: "NADI Kg. Baru"}
	require.NoError(t, s.Create(ctx, a))
	assert.NotEmpty(t, a.ID, "id assigned on create")
	assert.Equal(t, models.AssetActive, a.Status, "default status")

	require.NoError(t, s.Create(ctx, &models.Asset{
		Name: "Daikin AC", SerialNumber: "SN-002", Category: "HVAC", Location: "NADI Kg. Baru",
		Status: models.AssetUnderRepair,
	}))

	list, err := s.List(ctx, AssetFilter{Category: "ICT"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, a.ID, list[0].ID)

	list, err = s.List(ctx, AssetFilter{Location: "NADI Kg. Baru"})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = s.List(ctx, AssetFilter{Status: models.AssetUnderRepair})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	a.Name = "Dell Latitude 5440 (reimaged)"
	a.Status = models.AssetUnderRepair
	require.NoError(t, s.Update(ctx, a))
	got, err := s.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dell Latitude 5440 (reimaged)", got.Name)
	assert.Equal(t, models.AssetUnderRepair, got.Status)

	assert.ErrorIs(t, s.Update(ctx, &models.Asset{ID: "missing"}), ErrNotFound)

	require.NoError(t, s.Delete(ctx, a.ID))
	_, err = s.Get(ctx, a.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, a.ID), ErrNotFound)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n, "soft-deleted rows drop out of count")
}

func TestDocketPersistenceUpsertRoundTrip(t *testing.T) {
	db := testDB(t)
	p := NewDocketPersistence(db)
	ctx := context.Background()

	d := &models.MaintenanceDocket{
		ID: "d1", DocketNo: "MD-2026-001", Title: "AC unit leaking",
		Status: models.StatusDrafted, RequestedBy: "Site Operator", SubmittedBy: "Site Operator",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, p.Save(ctx, d))

	// повторный Save того же id обновляет запись, а не падает на уникальности
	d2 := *d
	d2.Status = models.StatusSubmitted
	d2.LastActionBy = "Site Operator"
	require.NoError(t, p.Save(ctx, &d2))

	all, err := p.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, models.StatusSubmitted, all[0].Status)
	assert.Equal(t, "MD-2026-001", all[0].DocketNo)
}

func TestNotificationPersistence(t *testing.T) {
	db := testDB(t)
	p := NewNotificationPersistence(db)
	ctx := context.Background()

	require.NoError(t, p.Save(ctx, &models.Notification{
		ID: "n1", Message: "New docket MD-2026-001 has been created",
		RelatedDocketID: "d1", CreatedAt: time.Now().UTC(),
	}))
	require.NoError(t, p.SetRead(ctx, "n1"))

	all, err := p.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].IsRead)
}

func TestSettingStoreCRUD(t *testing.T) {
	db := testDB(t)
	s := NewSettingStore(db)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, &models.AssetSetting{Kind: models.SettingCategory, Name: "ICT"}))
	require.NoError(t, s.Create(ctx, &models.AssetSetting{Kind: models.SettingLocation, Name: "NADI Kg. Baru"}))

	cats, err := s.List(ctx, models.SettingCategory)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.NotEmpty(t, cats[0].ID)

	all, err := s.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	cats[0].Name = "ICT Equipment"
	require.NoError(t, s.Update(ctx, &cats[0]))
	assert.ErrorIs(t, s.Update(ctx, &models.AssetSetting{ID: "missing"}), ErrNotFound)

	require.NoError(t, s.Delete(ctx, cats[0].ID))
	assert.ErrorIs(t, s.Delete(ctx, cats[0].ID), ErrNotFound)
}

package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nadi/internal/models"
)

type fixedDockets []*models.MaintenanceDocket

func (f fixedDockets) GetAll() []*models.MaintenanceDocket { return f }

type fixedAssets []models.Asset

func (f fixedAssets) ListAll(context.Context) ([]models.Asset, error) { return f, nil }

func closedDocket(cat models.DocketCategory, submitted time.Time, repairHours float64) *models.MaintenanceDocket {
	done := submitted.Add(time.Duration(repairHours * float64(time.Hour)))
	return &models.MaintenanceDocket{
		Status:               models.StatusClosed,
		Category:             cat,
		Type:                 models.TypeComprehensive,
		SubmittedDate:        submitted,
		ActualCompletionDate: &done,
	}
}

func TestDashboard(t *testing.T) {
	sub := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	svc := New(fixedDockets{
		closedDocket(models.CategoryICT, sub, 24),
		closedDocket(models.CategoryICT, sub, 48),
		{Status: models.StatusSubmitted, SLACategory: models.SLACritical, SubmittedDate: sub},
		{Status: models.StatusApproved, EstimatedCompletionDate: "2020-01-01", SubmittedDate: sub},
	}, fixedAssets{
		{Status: models.AssetActive},
		{Status: models.AssetActive},
		{Status: models.AssetUnderRepair},
		{Status: models.AssetRetired},
	})

	k, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, k.TotalAssets)
	assert.Equal(t, 2, k.ActiveAssets)
	assert.Equal(t, 1, k.UnderRepairAssets)
	assert.Equal(t, 1, k.RetiredAssets)

	assert.Equal(t, 4, k.TotalDockets)
	assert.Equal(t, 2, k.CompletedDockets)
	assert.Equal(t, 2, k.OpenDockets)
	assert.Equal(t, 1, k.CriticalDockets)

	assert.InDelta(t, 36.0, k.MTTRHours, 0.001)
	// один докет с просроченной расчётной датой из четырёх
	assert.InDelta(t, 25.0, k.SLABreachPercent, 0.001)
}

func TestDashboardEmptyStores(t *testing.T) {
	k, err := New(fixedDockets{}, fixedAssets{}).Dashboard(context.Background())
	require.NoError(t, err)
	assert.Zero(t, k.MTTRHours)
	assert.Zero(t, k.SLABreachPercent)
	assert.Zero(t, k.TotalDockets)
}

func TestPerformance(t *testing.T) {
	jan := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	prev := &models.MaintenanceDocket{
		Status:        models.StatusSubmitted,
		Type:          models.TypePreventiveScheduled,
		SubmittedDate: feb,
	}
	svc := New(fixedDockets{
		closedDocket(models.CategoryICT, jan, 10),
		closedDocket(models.CategoryICT, jan, 30),
		closedDocket(models.CategoryHVAC, feb, 100),
		prev,
	}, fixedAssets{})

	p := svc.Performance(context.Background())

	require.Len(t, p.MTTRByCategory, 2)
	// отсортировано по категории
	assert.Equal(t, models.CategoryHVAC, p.MTTRByCategory[0].Category)
	assert.InDelta(t, 100.0, p.MTTRByCategory[0].Hours, 0.001)
	assert.Equal(t, models.CategoryICT, p.MTTRByCategory[1].Category)
	assert.InDelta(t, 20.0, p.MTTRByCategory[1].Hours, 0.001)
	assert.Equal(t, 2, p.MTTRByCategory[1].Closed)

	require.Len(t, p.Volume, 2)
	assert.Equal(t, "2026-01", p.Volume[0].Month)
	assert.Equal(t, 2, p.Volume[0].Comprehensive)
	assert.Equal(t, "2026-02", p.Volume[1].Month)
	assert.Equal(t, 1, p.Volume[1].Comprehensive)
	assert.Equal(t, 1, p.Volume[1].Preventive)

	assert.Equal(t, 3, p.ByStatus[models.StatusClosed])
	assert.Equal(t, 1, p.ByStatus[models.StatusSubmitted])
}

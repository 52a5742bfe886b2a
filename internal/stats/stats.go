// Package stats derives the dashboard KPI snapshot and performance
// aggregates from live store contents.
package stats

import (
	"context"
	"sort"
	"time"

	"nadi/internal/models"
)

// DocketSource — читающая сторона общего хранилища докетов.
type DocketSource interface {
	GetAll() []*models.MaintenanceDocket
}

// AssetSource — читающая сторона хранилища активов.
type AssetSource interface {
	ListAll(ctx context.Context) ([]models.Asset, error)
}

type Service struct {
	dockets DocketSource
	assets  AssetSource
}

func New(d DocketSource, a AssetSource) *Service { return &Service{dockets: d, assets: a} }

// KPI — сводка для главного дашборда.
type KPI struct {
	TotalAssets       int     `json:"total_assets"`
	ActiveAssets      int     `json:"active_assets"`
	UnderRepairAssets int     `json:"under_repair_assets"`
	RetiredAssets     int     `json:"retired_assets"`
	TotalDockets      int     `json:"total_dockets"`
	OpenDockets       int     `json:"open_dockets"`
	CompletedDockets  int     `json:"completed_dockets"`
	CriticalDockets   int     `json:"critical_dockets"`
	MTTRHours         float64 `json:"mttr_hours"`
	SLABreachPercent  float64 `json:"sla_breach_percent"`
}

// Dashboard собирает KPI по текущему состоянию хранилищ.
func (s *Service) Dashboard(ctx context.Context) (*KPI, error) {
	assets, err := s.assets.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	dockets := s.dockets.GetAll()

	k := &KPI{TotalAssets: len(assets), TotalDockets: len(dockets)}
	for _, a := range assets {
		switch a.Status {
		case models.AssetActive:
			k.ActiveAssets++
		case models.AssetUnderRepair:
			k.UnderRepairAssets++
		case models.AssetRetired:
			k.RetiredAssets++
		}
	}

	var repairHours float64
	var repaired, breached int
	now := time.Now().UTC()
	for _, d := range dockets {
		if d.Status == models.StatusClosed {
			k.CompletedDockets++
		} else {
			k.OpenDockets++
		}
		if d.SLACategory == models.SLACritical {
			k.CriticalDockets++
		}
		if d.Status == models.StatusClosed && d.ActualCompletionDate != nil && !d.SubmittedDate.IsZero() {
			repairHours += d.ActualCompletionDate.Sub(d.SubmittedDate).Hours()
			repaired++
		}
		if docketOverdue(d, now) {
			breached++
		}
	}
	if repaired > 0 {
		k.MTTRHours = repairHours / float64(repaired)
	}
	if len(dockets) > 0 {
		k.SLABreachPercent = 100 * float64(breached) / float64(len(dockets))
	}
	return k, nil
}

// CategoryMTTR — средние часы восстановления по категории докета.
type CategoryMTTR struct {
	Category models.DocketCategory `json:"category"`
	Hours    float64               `json:"hours"`
	Closed   int                   `json:"closed"`
}

// MonthlyVolume — число докетов по типу за месяц подачи.
type MonthlyVolume struct {
	Month         string `json:"month"` // YYYY-MM
	Preventive    int    `json:"preventive"`
	Comprehensive int    `json:"comprehensive"`
}

// Performance — данные для графиков страницы Performance.
type Performance struct {
	MTTRByCategory []CategoryMTTR  `json:"mttr_by_category"`
	Volume         []MonthlyVolume `json:"volume"`
	ByStatus       map[models.DocketStatus]int `json:"by_status"`
}

func (s *Service) Performance(ctx context.Context) *Performance {
	dockets := s.dockets.GetAll()

	type acc struct {
		hours  float64
		closed int
	}
	byCat := map[models.DocketCategory]*acc{}
	byMonth := map[string]*MonthlyVolume{}
	byStatus := map[models.DocketStatus]int{}

	for _, d := range dockets {
		byStatus[d.Status]++
		if d.Status == models.StatusClosed && d.ActualCompletionDate != nil && !d.SubmittedDate.IsZero() {
			a := byCat[d.Category]
			if a == nil {
				a = &acc{}
				byCat[d.Category] = a
			}
			a.hours += d.ActualCompletionDate.Sub(d.SubmittedDate).Hours()
			a.closed++
		}
		if !d.SubmittedDate.IsZero() {
			m := d.SubmittedDate.Format("2006-01")
			v := byMonth[m]
			if v == nil {
				v = &MonthlyVolume{Month: m}
				byMonth[m] = v
			}
			switch d.Type {
			case models.TypePreventiveScheduled, models.TypePreventiveUnscheduled:
				v.Preventive++
			case models.TypeComprehensive:
				v.Comprehensive++
			}
		}
	}

	p := &Performance{ByStatus: byStatus}
	for cat, a := range byCat {
		p.MTTRByCategory = append(p.MTTRByCategory, CategoryMTTR{
			Category: cat, Hours: a.hours / float64(a.closed), Closed: a.closed,
		})
	}
	sort.Slice(p.MTTRByCategory, func(i, j int) bool {
		return p.MTTRByCategory[i].Category < p.MTTRByCategory[j].Category
	})
	for _, v := range byMonth {
		p.Volume = append(p.Volume, *v)
	}
	sort.Slice(p.Volume, func(i, j int) bool { return p.Volume[i].Month < p.Volume[j].Month })
	return p
}

// docketOverdue: явный флаг либо просроченная расчётная дата у
// незакрытого и неотклонённого докета.
func docketOverdue(d *models.MaintenanceDocket, now time.Time) bool {
	if d.IsOverdue {
		return true
	}
	if d.Status == models.StatusClosed || d.Status == models.StatusRejected {
		return false
	}
	if d.EstimatedCompletionDate == "" {
		return false
	}
	est, err := time.Parse("2006-01-02", d.EstimatedCompletionDate)
	if err != nil {
		return false
	}
	return est.Before(now)
}

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nadi/internal/models"
)

// flakyPersistence — управляемый write-through бэкенд для тестов.
type flakyPersistence struct {
	mu    sync.Mutex
	fail  bool
	saved []models.MaintenanceDocket
}

func (p *flakyPersistence) LoadAll(context.Context) ([]models.MaintenanceDocket, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.MaintenanceDocket(nil), p.saved...), nil
}

func (p *flakyPersistence) Save(_ context.Context, d *models.MaintenanceDocket) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail {
		return errors.New("db down")
	}
	p.saved = append(p.saved, *d)
	return nil
}

func mkDocket(id, no string, status models.DocketStatus) *models.MaintenanceDocket {
	return &models.MaintenanceDocket{ID: id, DocketNo: no, Title: "t", Status: status}
}

func TestUpsertCreateAndUpdate(t *testing.T) {
	s := NewDocketStore(nil, nil)
	ctx := context.Background()

	require.NoError(t, s.Upsert(ctx, mkDocket("d1", "MD-2026-001", models.StatusDrafted)))
	require.NoError(t, s.Upsert(ctx, mkDocket("d2", "MD-2026-002", models.StatusDrafted)))
	assert.Equal(t, 2, s.Count())

	// same id replaces, порядок вставки сохраняется
	require.NoError(t, s.Upsert(ctx, mkDocket("d1", "MD-2026-001", models.StatusSubmitted)))
	assert.Equal(t, 2, s.Count())

	all := s.GetAll()
	require.Len(t, all, 2)
	assert.Equal(t, "d1", all[0].ID)
	assert.Equal(t, models.StatusSubmitted, all[0].Status)
	assert.Equal(t, "d2", all[1].ID)
}

func TestGetReturnsCopy(t *testing.T) {
	s := NewDocketStore(nil, nil)
	require.NoError(t, s.Upsert(context.Background(), mkDocket("d1", "MD-2026-001", models.StatusDrafted)))

	got := s.Get("d1")
	require.NotNil(t, got)
	got.Status = models.StatusClosed
	got.Title = "mutated"

	again := s.Get("d1")
	assert.Equal(t, models.StatusDrafted, again.Status)
	assert.Equal(t, "t", again.Title)

	assert.Nil(t, s.Get("missing"))
}

func TestUpsertStoresSnapshot(t *testing.T) {
	s := NewDocketStore(nil, nil)
	d := mkDocket("d1", "MD-2026-001", models.StatusDrafted)
	require.NoError(t, s.Upsert(context.Background(), d))

	// мутация аргумента после Upsert не видна хранилищу
	d.Status = models.StatusClosed
	assert.Equal(t, models.StatusDrafted, s.Get("d1").Status)
}

func TestSubscribersRunInOrderSameCallStack(t *testing.T) {
	s := NewDocketStore(nil, nil)

	var calls []string
	s.Subscribe(func(list []*models.MaintenanceDocket) {
		calls = append(calls, "first")
		assert.Len(t, list, 1)
	})
	s.Subscribe(func(list []*models.MaintenanceDocket) {
		calls = append(calls, "second")
	})

	require.NoError(t, s.Upsert(context.Background(), mkDocket("d1", "MD-2026-001", models.StatusDrafted)))
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestUnsubscribeIdempotentAndSafeFromCallback(t *testing.T) {
	s := NewDocketStore(nil, nil)
	ctx := context.Background()

	var aCalls, bCalls int
	var unsubA func()
	unsubA = s.Subscribe(func([]*models.MaintenanceDocket) {
		aCalls++
		unsubA() // отписка из собственного колбэка
	})
	unsubB := s.Subscribe(func([]*models.MaintenanceDocket) { bCalls++ })

	require.NoError(t, s.Upsert(ctx, mkDocket("d1", "MD-2026-001", models.StatusDrafted)))
	require.NoError(t, s.Upsert(ctx, mkDocket("d2", "MD-2026-002", models.StatusDrafted)))

	assert.Equal(t, 1, aCalls)
	assert.Equal(t, 2, bCalls)

	unsubA() // повторная отписка — no-op
	unsubB()
	unsubB()
	require.NoError(t, s.Upsert(ctx, mkDocket("d3", "MD-2026-003", models.StatusDrafted)))
	assert.Equal(t, 1, aCalls)
	assert.Equal(t, 2, bCalls)
}

func TestSubscriberAddedDuringCallbackMissesCurrentEvent(t *testing.T) {
	s := NewDocketStore(nil, nil)

	var lateCalls int
	s.Subscribe(func([]*models.MaintenanceDocket) {
		s.Subscribe(func([]*models.MaintenanceDocket) { lateCalls++ })
	})

	require.NoError(t, s.Upsert(context.Background(), mkDocket("d1", "MD-2026-001", models.StatusDrafted)))
	assert.Equal(t, 0, lateCalls)

	require.NoError(t, s.Upsert(context.Background(), mkDocket("d2", "MD-2026-002", models.StatusDrafted)))
	assert.Equal(t, 1, lateCalls)
}

func TestNotificationFiresBeforeDocketSubscribers(t *testing.T) {
	notifs := NewNotificationStore(nil)
	s := NewDocketStore(notifs, nil)

	var seenAtCallback int
	s.Subscribe(func([]*models.MaintenanceDocket) {
		seenAtCallback = len(notifs.List())
	})

	require.NoError(t, s.Upsert(context.Background(), mkDocket("d1", "MD-2026-001", models.StatusDrafted)))
	assert.Equal(t, 1, seenAtCallback, "notification must be visible before docket subscribers run")
}

func TestUpsertNotificationSynthesis(t *testing.T) {
	notifs := NewNotificationStore(nil)
	s := NewDocketStore(notifs, nil)
	ctx := context.Background()

	// создание
	require.NoError(t, s.Upsert(ctx, mkDocket("d1", "MD-2026-001", models.StatusDrafted)))
	feed := notifs.List()
	require.Len(t, feed, 1)
	assert.Equal(t, "New docket MD-2026-001 has been created", feed[0].Message)
	assert.Equal(t, "d1", feed[0].RelatedDocketID)

	// замена без смены статуса — уведомления нет
	d := mkDocket("d1", "MD-2026-001", models.StatusDrafted)
	d.Remarks = "edited"
	require.NoError(t, s.Upsert(ctx, d))
	assert.Len(t, notifs.List(), 1)

	// смена статуса — базовое сообщение + дополнение
	require.NoError(t, s.Upsert(ctx, mkDocket("d1", "MD-2026-001", models.StatusSubmitted)))
	feed = notifs.List()
	require.Len(t, feed, 3)
	// newest-first
	assert.Equal(t, "Docket MD-2026-001 is pending TP review", feed[0].Message)
	assert.Equal(t, "Docket MD-2026-001 has been submitted", feed[1].Message)
}

func TestPreloadIsSilent(t *testing.T) {
	notifs := NewNotificationStore(nil)
	s := NewDocketStore(notifs, nil)

	var subCalls int
	s.Subscribe(func([]*models.MaintenanceDocket) { subCalls++ })

	s.Preload([]models.MaintenanceDocket{
		*mkDocket("d1", "MD-2026-001", models.StatusDrafted),
		*mkDocket("d2", "MD-2026-002", models.StatusClosed),
	})

	assert.Equal(t, 2, s.Count())
	assert.Empty(t, notifs.List())
	assert.Equal(t, 0, subCalls)
}

func TestUpsertPersistFailureLeavesStateUntouched(t *testing.T) {
	persist := &flakyPersistence{fail: true}
	notifs := NewNotificationStore(nil)
	s := NewDocketStore(notifs, persist)
	ctx := context.Background()

	var subCalls int
	s.Subscribe(func([]*models.MaintenanceDocket) { subCalls++ })

	// отказ БД при создании: хранилище пусто, событий нет
	require.Error(t, s.Upsert(ctx, mkDocket("d1", "MD-2026-001", models.StatusDrafted)))
	assert.Equal(t, 0, s.Count())
	assert.Empty(t, notifs.List())
	assert.Equal(t, 0, subCalls)

	persist.fail = false
	require.NoError(t, s.Upsert(ctx, mkDocket("d1", "MD-2026-001", models.StatusDrafted)))
	assert.Equal(t, 1, s.Count())
	assert.Equal(t, 1, subCalls)

	// отказ БД при обновлении: в памяти остаётся прежний снапшот
	persist.fail = true
	require.Error(t, s.Upsert(ctx, mkDocket("d1", "MD-2026-001", models.StatusSubmitted)))
	assert.Equal(t, models.StatusDrafted, s.Get("d1").Status)
	assert.Len(t, notifs.List(), 1, "no transition notification for a failed write")
	assert.Equal(t, 1, subCalls)
}

func TestCreateAssignsNumberAtomically(t *testing.T) {
	s := NewDocketStore(nil, nil)
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	first := mkDocket("d1", "", models.StatusDrafted)
	require.NoError(t, s.Create(ctx, first, now))
	assert.Equal(t, "MD-2026-001", first.DocketNo, "assigned number is written back")
	assert.Equal(t, "MD-2026-001", s.Get("d1").DocketNo)

	second := mkDocket("d2", "", models.StatusDrafted)
	require.NoError(t, s.Create(ctx, second, now))
	assert.Equal(t, "MD-2026-002", second.DocketNo)
}

func TestCreateConcurrentNumbersDistinct(t *testing.T) {
	s := NewDocketStore(nil, nil)
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.Create(context.Background(), mkDocket(fmt.Sprintf("d%d", i), "", models.StatusDrafted), now)
		}(i)
	}
	wg.Wait()

	seen := map[string]bool{}
	for _, d := range s.GetAll() {
		assert.False(t, seen[d.DocketNo], "duplicate docket number %s", d.DocketNo)
		seen[d.DocketNo] = true
	}
	assert.Len(t, seen, 16)
}

func TestNextDocketNo(t *testing.T) {
	s := NewDocketStore(nil, nil)
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "MD-2026-001", s.NextDocketNo(now))

	s.Preload([]models.MaintenanceDocket{
		*mkDocket("d1", "MD-2026-002", models.StatusDrafted),
		*mkDocket("d2", "MD-2026-007", models.StatusDrafted),
		*mkDocket("d3", "MD-2025-100", models.StatusClosed), // прошлый год не считается
	})
	assert.Equal(t, "MD-2026-008", s.NextDocketNo(now))

	assert.Equal(t, "MD-2027-001", s.NextDocketNo(now.AddDate(1, 0, 0)))
}

// Package store holds the authoritative in-process collections: the
// shared docket list and the notification feed. Both are explicit,
// injectable objects (no package-level singletons) so tests can run
// isolated instances. Every write path funnels through the store's own
// API; reads return copies, never references to internal state.
package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"nadi/internal/models"
)

// Notifier получает события жизненного цикла докетов. Реализуется
// NotificationStore; интерфейс разрывает цикл между хранилищами.
type Notifier interface {
	RecordCreation(d *models.MaintenanceDocket)
	RecordTransition(d *models.MaintenanceDocket, prev models.DocketStatus)
}

// DocketPersistence — необязательный write-through в БД (режим с gorm).
type DocketPersistence interface {
	LoadAll(ctx context.Context) ([]models.MaintenanceDocket, error)
	Save(ctx context.Context, d *models.MaintenanceDocket) error
}

// DocketSubscriber is invoked with a snapshot of the full docket list
// after every completed upsert.
type DocketSubscriber func(dockets []*models.MaintenanceDocket)

type docketSub struct {
	id uint64
	fn DocketSubscriber
}

// DocketStore — единственный источник истины по докетам в процессе.
// Last-write-wins: Upsert без версионной проверки (см. DESIGN.md).
type DocketStore struct {
	mu       sync.RWMutex
	order    []string // insertion order of ids
	byID     map[string]*models.MaintenanceDocket
	subs     []docketSub
	nextSub  uint64
	notifier Notifier
	persist  DocketPersistence
}

func NewDocketStore(n Notifier, p DocketPersistence) *DocketStore {
	return &DocketStore{
		byID:     make(map[string]*models.MaintenanceDocket),
		notifier: n,
		persist:  p,
	}
}

// Load replaces the in-memory collection from persistence. Called once
// at boot; does not fire subscribers or synthesize notifications.
func (s *DocketStore) Load(ctx context.Context) error {
	if s.persist == nil {
		return nil
	}
	dockets, err := s.persist.LoadAll(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = s.order[:0]
	s.byID = make(map[string]*models.MaintenanceDocket, len(dockets))
	for i := range dockets {
		d := dockets[i]
		s.order = append(s.order, d.ID)
		s.byID[d.ID] = &d
	}
	return nil
}

// Preload заполняет хранилище seed-набором. Подписчики не
// срабатывают и уведомления не синтезируются: это начальное состояние,
// а не изменение.
func (s *DocketStore) Preload(dockets []models.MaintenanceDocket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range dockets {
		d := dockets[i]
		if _, ok := s.byID[d.ID]; !ok {
			s.order = append(s.order, d.ID)
		}
		s.byID[d.ID] = &d
	}
}

// GetAll returns snapshot copies in insertion order. Mutating the
// result never affects store state.
func (s *DocketStore) GetAll() []*models.MaintenanceDocket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *DocketStore) snapshotLocked() []*models.MaintenanceDocket {
	out := make([]*models.MaintenanceDocket, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id].Clone())
	}
	return out
}

// Get returns a copy of the docket with the given id, or nil.
func (s *DocketStore) Get(id string) *models.MaintenanceDocket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.byID[id]
	if !ok {
		return nil
	}
	return d.Clone()
}

// Count returns the number of stored dockets.
func (s *DocketStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Upsert is the only write path: create and update both land here.
// Same id replaces, new id appends. A status delta (or a new docket)
// triggers notification synthesis BEFORE docket subscribers run, so an
// observer of both feeds never sees a docket change without its
// notification.
func (s *DocketStore) Upsert(ctx context.Context, d *models.MaintenanceDocket) error {
	return s.put(ctx, d, false, time.Time{})
}

// Create присваивает очередной номер и вставляет докет одной
// операцией: выдача номера и вставка идут под одной блокировкой, иначе
// два конкурентных создания получат одинаковый номер.
func (s *DocketStore) Create(ctx context.Context, d *models.MaintenanceDocket, now time.Time) error {
	return s.put(ctx, d, true, now)
}

func (s *DocketStore) put(ctx context.Context, d *models.MaintenanceDocket, assignNo bool, now time.Time) error {
	stored := d.Clone()

	s.mu.Lock()
	if assignNo {
		stored.DocketNo = s.nextDocketNoLocked(now)
	}
	prev, existed := s.byID[stored.ID]
	var prevStatus models.DocketStatus
	if existed {
		prevStatus = prev.Status
	}
	// Сначала БД: при ошибке записи память не меняется, уведомления не
	// синтезируются и подписчики не срабатывают — ошибка и состояние
	// согласованы.
	if s.persist != nil {
		if err := s.persist.Save(ctx, stored.Clone()); err != nil {
			s.mu.Unlock()
			return err
		}
	}
	if !existed {
		s.order = append(s.order, stored.ID)
	}
	s.byID[stored.ID] = stored
	list := s.snapshotLocked()
	subs := append([]docketSub(nil), s.subs...)
	s.mu.Unlock()

	if assignNo {
		d.DocketNo = stored.DocketNo
	}

	if s.notifier != nil {
		if !existed {
			s.notifier.RecordCreation(stored.Clone())
		} else if prevStatus != stored.Status {
			s.notifier.RecordTransition(stored.Clone(), prevStatus)
		}
	}

	// Синхронно, в порядке регистрации. Подписчик, добавленный из
	// чужого колбэка, это событие уже не получает.
	for _, sub := range subs {
		sub.fn(list)
	}
	return nil
}

// NextDocketNo выдаёт следующий номер формата MD-<год>-<NNN>.
// Считается по уже сохранённым номерам года.
func (s *DocketStore) NextDocketNo(now time.Time) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextDocketNoLocked(now)
}

func (s *DocketStore) nextDocketNoLocked(now time.Time) string {
	prefix := fmt.Sprintf("MD-%d-", now.Year())
	max := 0
	for _, d := range s.byID {
		if !strings.HasPrefix(d.DocketNo, prefix) {
			continue
		}
		if n, err := strconv.Atoi(strings.TrimPrefix(d.DocketNo, prefix)); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%03d", prefix, max+1)
}

// Subscribe registers fn and returns its unsubscribe function. Calling
// unsubscribe more than once is a no-op; it is safe from within a
// callback fired by this store.
func (s *DocketStore) Subscribe(fn DocketSubscriber) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, docketSub{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i := range s.subs {
			if s.subs[i].id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

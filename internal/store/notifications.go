package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"nadi/internal/docket"
	"nadi/internal/logs"
	"nadi/internal/models"
)

// NotificationPersistence — необязательный write-through в БД.
type NotificationPersistence interface {
	LoadAll(ctx context.Context) ([]models.Notification, error)
	Save(ctx context.Context, n *models.Notification) error
	SetRead(ctx context.Context, id string) error
}

// NotificationSubscriber is invoked with a newest-first snapshot of the
// feed after every append or mark-read.
type NotificationSubscriber func(feed []models.Notification)

type notifSub struct {
	id uint64
	fn NotificationSubscriber
}

// NotificationStore synthesizes human-readable messages from docket
// lifecycle events and keeps the append-only feed. The feed is
// process-global, not per-user — deliberate carry-over from the source
// design, recorded in DESIGN.md.
type NotificationStore struct {
	mu      sync.RWMutex
	items   []*models.Notification // append order; List reverses
	byID    map[string]*models.Notification
	subs    []notifSub
	nextSub uint64
	persist NotificationPersistence
}

func NewNotificationStore(p NotificationPersistence) *NotificationStore {
	return &NotificationStore{
		byID:    make(map[string]*models.Notification),
		persist: p,
	}
}

// Load replaces the feed from persistence at boot; no subscriber fires.
func (s *NotificationStore) Load(ctx context.Context) error {
	if s.persist == nil {
		return nil
	}
	items, err := s.persist.LoadAll(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = s.items[:0]
	s.byID = make(map[string]*models.Notification, len(items))
	for i := range items {
		n := items[i]
		s.items = append(s.items, &n)
		s.byID[n.ID] = &n
	}
	return nil
}

// RecordCreation appends the "new docket" notification.
func (s *NotificationStore) RecordCreation(d *models.MaintenanceDocket) {
	s.append(models.Notification{
		Message:         fmt.Sprintf("New docket %s has been created", d.DocketNo),
		RelatedDocketID: d.ID,
	})
}

// RecordTransition appends the base status message plus supplements:
// кому докет теперь ждёт решения (TP или DUSP), а для утверждения — кто
// его вынес, по предыдущему статусу.
func (s *NotificationStore) RecordTransition(d *models.MaintenanceDocket, prev models.DocketStatus) {
	msgs := []string{
		fmt.Sprintf("Docket %s has been %s", d.DocketNo, docket.Verb(d.Status)),
	}
	switch d.Status {
	case models.StatusSubmitted:
		msgs = append(msgs, fmt.Sprintf("Docket %s is pending TP review", d.DocketNo))
	case models.StatusRecommended:
		msgs = append(msgs, fmt.Sprintf("Docket %s is awaiting DUSP decision", d.DocketNo))
	case models.StatusApproved:
		// RECOMMENDED→APPROVED решает DUSP, SUBMITTED→APPROVED — TP.
		if prev == models.StatusRecommended {
			msgs = append(msgs, fmt.Sprintf("Docket %s was approved by DUSP", d.DocketNo))
		}
	}
	for _, m := range msgs {
		s.append(models.Notification{Message: m, RelatedDocketID: d.ID})
	}
}

func (s *NotificationStore) append(n models.Notification) {
	n.ID = uuid.NewString()
	n.IsRead = false
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	s.mu.Lock()
	stored := n
	s.items = append(s.items, &stored)
	s.byID[stored.ID] = &stored
	feed := s.feedLocked()
	subs := append([]notifSub(nil), s.subs...)
	s.mu.Unlock()

	if s.persist != nil {
		if err := s.persist.Save(context.Background(), &stored); err != nil {
			logs.Logger.Errorf("notification persist failed id=%s: %v", stored.ID, err)
		}
	}
	for _, sub := range subs {
		sub.fn(feed)
	}
}

// List returns the feed newest-first as copies.
func (s *NotificationStore) List() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.feedLocked()
}

func (s *NotificationStore) feedLocked() []models.Notification {
	out := make([]models.Notification, 0, len(s.items))
	for i := len(s.items) - 1; i >= 0; i-- {
		out = append(out, *s.items[i])
	}
	return out
}

// Unread returns the number of unread notifications.
func (s *NotificationStore) Unread() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, it := range s.items {
		if !it.IsRead {
			n++
		}
	}
	return n
}

// MarkRead flips the read flag. Idempotent: already-read or unknown ids
// are a no-op, not an error.
func (s *NotificationStore) MarkRead(id string) {
	s.mu.Lock()
	n, ok := s.byID[id]
	if !ok || n.IsRead {
		s.mu.Unlock()
		return
	}
	n.IsRead = true
	feed := s.feedLocked()
	subs := append([]notifSub(nil), s.subs...)
	s.mu.Unlock()

	if s.persist != nil {
		if err := s.persist.SetRead(context.Background(), id); err != nil {
			logs.Logger.Errorf("notification mark-read persist failed id=%s: %v", id, err)
		}
	}
	for _, sub := range subs {
		sub.fn(feed)
	}
}

// Subscribe registers fn; same contract as DocketStore.Subscribe.
func (s *NotificationStore) Subscribe(fn NotificationSubscriber) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, notifSub{id: id, fn: fn})
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

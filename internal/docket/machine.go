// Package docket encodes the maintenance docket lifecycle: the legal
// status set, the role-gated transition table and the transition
// operation itself. The package is side-effect free — persistence and
// notifications are the store's job.
package docket

import (
	"errors"
	"strings"
	"time"

	"nadi/internal/models"

	"nadi/internal/rbac"
)

var (
	// ErrInvalidStatus — целевой статус вне допустимого набора.
	ErrInvalidStatus = errors.New("unknown docket status")
	// ErrInvalidTransition — переход структурно недостижим из текущего статуса.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrUnauthorized — переход существует, но роль не того уровня.
	ErrUnauthorized = errors.New("role not permitted for this transition")
	// ErrMissingField — не выполнено предусловие перехода.
	ErrMissingField = errors.New("missing required field")
)

type edge struct {
	to    models.DocketStatus
	tiers []models.Role
}

// transitions — единственная авторитетная таблица переходов.
// REJECTED и CLOSED терминальны: исходящих рёбер нет.
var transitions = map[models.DocketStatus][]edge{
	models.StatusDrafted: {
		{to: models.StatusSubmitted, tiers: rbac.NADIStaff},
	},
	models.StatusSubmitted: {
		{to: models.StatusApproved, tiers: rbac.TPManagement},
		{to: models.StatusRejected, tiers: rbac.TPManagement},
		{to: models.StatusRecommended, tiers: rbac.TPManagement},
	},
	models.StatusApproved: {
		{to: models.StatusClosed, tiers: rbac.NADIStaff},
		{to: models.StatusRecommended, tiers: rbac.DUSPStaff},
	},
	models.StatusRecommended: {
		{to: models.StatusApproved, tiers: rbac.DUSPStaff},
		{to: models.StatusRejected, tiers: rbac.DUSPStaff},
	},
}

// TransitionOptions — необязательные поля запроса на смену статуса.
type TransitionOptions struct {
	Remarks                 string
	EstimatedCompletionDate string
	// Now overrides the action timestamp, zero means time.Now().UTC().
	Now time.Time
}

// Transition validates the requested status change and, on success,
// returns a new snapshot with status, last-action actor and timestamp
// updated atomically. The input docket is never mutated (copy-on-write):
// the shared store diffs old vs new snapshots to synthesize
// notifications, so historical values must stay intact.
func Transition(d *models.MaintenanceDocket, target models.DocketStatus, actor *models.User, opts TransitionOptions) (*models.MaintenanceDocket, error) {
	if !target.Known() {
		return nil, ErrInvalidStatus
	}
	// No-op переход не несёт осмысленной дельты актор/время — отклоняем.
	if target == d.Status {
		return nil, ErrInvalidTransition
	}
	edges, ok := transitions[d.Status]
	if !ok {
		return nil, ErrInvalidTransition
	}
	var e *edge
	for i := range edges {
		if edges[i].to == target {
			e = &edges[i]
			break
		}
	}
	if e == nil {
		return nil, ErrInvalidTransition
	}
	if actor == nil || !rbac.IsAuthorized(actor.Role, e.tiers) {
		return nil, ErrUnauthorized
	}
	// TP approval requires an estimated completion date.
	if d.Status == models.StatusSubmitted && target == models.StatusApproved {
		if strings.TrimSpace(opts.EstimatedCompletionDate) == "" {
			return nil, ErrMissingField
		}
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	next := d.Clone()
	next.Status = target
	next.LastActionBy = actor.Name
	next.LastActionDate = now
	next.UpdatedAt = now
	if opts.Remarks != "" {
		next.Remarks = opts.Remarks
	}
	if opts.EstimatedCompletionDate != "" {
		next.EstimatedCompletionDate = opts.EstimatedCompletionDate
	}
	if target == models.StatusClosed {
		t := now
		next.ActualCompletionDate = &t
	}
	return next, nil
}

// AllowedTargets returns the statuses role may move a docket in status
// to. Used by the UI to decide which action buttons to show.
func AllowedTargets(status models.DocketStatus, role models.Role) []models.DocketStatus {
	var out []models.DocketStatus
	for _, e := range transitions[status] {
		if rbac.IsAuthorized(role, e.tiers) {
			out = append(out, e.to)
		}
	}
	return out
}

// Verb returns the past-tense verb used in notification messages.
func Verb(status models.DocketStatus) string {
	switch status {
	case models.StatusDrafted:
		return "drafted"
	case models.StatusSubmitted:
		return "submitted"
	case models.StatusApproved:
		return "approved"
	case models.StatusRejected:
		return "rejected"
	case models.StatusClosed:
		return "closed"
	case models.StatusRecommended:
		return "recommended to DUSP"
	default:
		return strings.ToLower(string(status))
	}
}

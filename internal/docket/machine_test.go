package docket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nadi/internal/models"
)

func user(role models.Role) *models.User {
	return &models.User{ID: "u-" + string(role), Name: string(role) + " User", Role: role, IsActive: true}
}

func drafted() *models.MaintenanceDocket {
	return &models.MaintenanceDocket{
		ID:       "d1",
		DocketNo: "MD-2026-001",
		Title:    "AC unit leaking",
		Status:   models.StatusDrafted,
	}
}

func inStatus(s models.DocketStatus) *models.MaintenanceDocket {
	d := drafted()
	d.Status = s
	return d
}

func TestTransitionTable(t *testing.T) {
	cases := []struct {
		name   string
		from   models.DocketStatus
		to     models.DocketStatus
		role   models.Role
		optEst string
		err    error
	}{
		{"draft submit by site", models.StatusDrafted, models.StatusSubmitted, models.RoleTPSite, "", nil},
		{"draft submit by pic", models.StatusDrafted, models.StatusSubmitted, models.RoleTPPIC, "", nil},
		{"draft submit by dusp denied", models.StatusDrafted, models.StatusSubmitted, models.RoleDUSPAdmin, "", ErrUnauthorized},
		{"draft approve skips submit", models.StatusDrafted, models.StatusApproved, models.RoleTPAdmin, "2026-12-01", ErrInvalidTransition},

		{"submitted approve by tp admin", models.StatusSubmitted, models.StatusApproved, models.RoleTPAdmin, "2026-12-01", nil},
		{"submitted approve without estimate", models.StatusSubmitted, models.StatusApproved, models.RoleTPAdmin, "", ErrMissingField},
		{"submitted approve by site denied", models.StatusSubmitted, models.StatusApproved, models.RoleTPSite, "2026-12-01", ErrUnauthorized},
		{"submitted reject by tp ops", models.StatusSubmitted, models.StatusRejected, models.RoleTPOperation, "", nil},
		{"submitted recommend by tp admin", models.StatusSubmitted, models.StatusRecommended, models.RoleTPAdmin, "", nil},
		{"submitted close directly", models.StatusSubmitted, models.StatusClosed, models.RoleTPAdmin, "", ErrInvalidTransition},

		{"approved close by site", models.StatusApproved, models.StatusClosed, models.RoleTPSite, "", nil},
		{"approved recommend by dusp", models.StatusApproved, models.StatusRecommended, models.RoleDUSPOperation, "", nil},
		{"approved recommend by tp denied", models.StatusApproved, models.StatusRecommended, models.RoleTPAdmin, "", ErrUnauthorized},

		{"recommended approve by dusp", models.StatusRecommended, models.StatusApproved, models.RoleDUSPAdmin, "", nil},
		{"recommended reject by dusp", models.StatusRecommended, models.StatusRejected, models.RoleDUSPOperation, "", nil},
		{"recommended approve by tp denied", models.StatusRecommended, models.StatusApproved, models.RoleTPAdmin, "", ErrUnauthorized},

		{"rejected is terminal", models.StatusRejected, models.StatusSubmitted, models.RoleTPAdmin, "", ErrInvalidTransition},
		{"closed is terminal", models.StatusClosed, models.StatusApproved, models.RoleTPAdmin, "", ErrInvalidTransition},

		{"same status rejected", models.StatusSubmitted, models.StatusSubmitted, models.RoleTPAdmin, "", ErrInvalidTransition},
		{"unknown target", models.StatusDrafted, models.DocketStatus("ARCHIVED"), models.RoleTPAdmin, "", ErrInvalidStatus},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, err := Transition(inStatus(tc.from), tc.to, user(tc.role), TransitionOptions{
				EstimatedCompletionDate: tc.optEst,
			})
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				assert.Nil(t, next)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.to, next.Status)
		})
	}
}

func TestSuperAdminPassesEveryGate(t *testing.T) {
	su := user(models.RoleSuperAdmin)

	next, err := Transition(inStatus(models.StatusSubmitted), models.StatusRecommended, su, TransitionOptions{})
	require.NoError(t, err)
	assert.Equal(t, models.StatusRecommended, next.Status)

	// структурные правила действуют и для SUPER_ADMIN
	_, err = Transition(inStatus(models.StatusClosed), models.StatusDrafted, su, TransitionOptions{})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestNilActorUnauthorized(t *testing.T) {
	_, err := Transition(drafted(), models.StatusSubmitted, nil, TransitionOptions{})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestTransitionCopyOnWrite(t *testing.T) {
	d := drafted()
	d.Attachments.Before = []string{"photo-1.jpg"}

	next, err := Transition(d, models.StatusSubmitted, user(models.RoleTPSite), TransitionOptions{})
	require.NoError(t, err)

	assert.Equal(t, models.StatusDrafted, d.Status, "input must not be mutated")
	assert.Empty(t, d.LastActionBy)
	assert.Equal(t, models.StatusSubmitted, next.Status)

	next.Attachments.Before[0] = "mutated"
	assert.Equal(t, "photo-1.jpg", d.Attachments.Before[0])
}

func TestTransitionStampsActorAndTime(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	actor := user(models.RoleTPAdmin)
	actor.Name = "Ahmad Razali"

	next, err := Transition(inStatus(models.StatusSubmitted), models.StatusApproved, actor, TransitionOptions{
		EstimatedCompletionDate: "2026-04-01",
		Remarks:                 "vendor scheduled",
		Now:                     now,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ahmad Razali", next.LastActionBy)
	assert.Equal(t, now, next.LastActionDate)
	assert.Equal(t, now, next.UpdatedAt)
	assert.Equal(t, "2026-04-01", next.EstimatedCompletionDate)
	assert.Equal(t, "vendor scheduled", next.Remarks)
	assert.Nil(t, next.ActualCompletionDate)
}

func TestCloseSetsActualCompletionDate(t *testing.T) {
	now := time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC)
	next, err := Transition(inStatus(models.StatusApproved), models.StatusClosed, user(models.RoleTPSite), TransitionOptions{Now: now})
	require.NoError(t, err)
	require.NotNil(t, next.ActualCompletionDate)
	assert.Equal(t, now, *next.ActualCompletionDate)
}

func TestFullLifecycleViaDUSP(t *testing.T) {
	d := drafted()

	d1, err := Transition(d, models.StatusSubmitted, user(models.RoleTPSite), TransitionOptions{})
	require.NoError(t, err)
	d2, err := Transition(d1, models.StatusRecommended, user(models.RoleTPAdmin), TransitionOptions{})
	require.NoError(t, err)
	d3, err := Transition(d2, models.StatusApproved, user(models.RoleDUSPAdmin), TransitionOptions{})
	require.NoError(t, err)
	d4, err := Transition(d3, models.StatusClosed, user(models.RoleTPSite), TransitionOptions{})
	require.NoError(t, err)

	assert.Equal(t, models.StatusClosed, d4.Status)
	assert.True(t, d4.Status.Terminal())
	// исходный докет не изменился ни на одном шаге
	assert.Equal(t, models.StatusDrafted, d.Status)
}

func TestAllowedTargets(t *testing.T) {
	assert.ElementsMatch(t,
		[]models.DocketStatus{models.StatusApproved, models.StatusRejected, models.StatusRecommended},
		AllowedTargets(models.StatusSubmitted, models.RoleTPAdmin))

	assert.Empty(t, AllowedTargets(models.StatusSubmitted, models.RoleTPSite))
	assert.Empty(t, AllowedTargets(models.StatusClosed, models.RoleSuperAdmin))
	assert.Equal(t,
		[]models.DocketStatus{models.StatusSubmitted},
		AllowedTargets(models.StatusDrafted, models.RoleTPPIC))
}

func TestVerb(t *testing.T) {
	assert.Equal(t, "recommended to DUSP", Verb(models.StatusRecommended))
	assert.Equal(t, "approved", Verb(models.StatusApproved))
	assert.Equal(t, "closed", Verb(models.StatusClosed))
}

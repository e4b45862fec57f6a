package service

import (
	"testing"
	"time"

	"Club_Portal/internal/model"
	"Club_Portal/internal/repository/sqldb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectUpdateOwnerOrCapability(t *testing.T) {
	db := openTestDB(t)
	svc := NewProjectService(&sqldb.ProjectRepository{DB: db})
	owner := &model.Member{ID: "owner", Role: model.RoleMember}
	stranger := &model.Member{ID: "stranger", Role: model.RoleMember}
	lead := &model.Member{ID: "lead", Role: model.RoleTechLead}

	p, err := svc.Create(bg, owner, ProjectInput{Title: "Indexer", TechStack: []string{"go"}})
	require.NoError(t, err)
	assert.Equal(t, model.ProjectStatusActive, p.Status)

	title := "Indexer v2"
	_, err = svc.Update(bg, stranger, p.ID, ProjectPatch{Title: &title})
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := svc.Update(bg, owner, p.ID, ProjectPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)

	status := model.ProjectStatusCompleted
	updated, err = svc.Update(bg, lead, p.ID, ProjectPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, status, updated.Status)

	stored, err := svc.Get(bg, p.ID)
	require.NoError(t, err)
	assert.Equal(t, title, stored.Title)
	assert.Equal(t, []string{"go"}, stored.TechStack)

	_, err = svc.Update(bg, owner, "missing", ProjectPatch{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFinanceReviewRules(t *testing.T) {
	db := openTestDB(t)
	svc := NewFinanceService(&sqldb.FinanceRepository{DB: db})
	requester := &model.Member{ID: "req", Role: model.RolePresident}
	reviewer := &model.Member{ID: "vp", Role: model.RoleVicePresident}

	f, err := svc.Create(bg, requester, FinanceInput{Title: "Pizza", Amount: 250000})
	require.NoError(t, err)
	assert.Equal(t, "INR", f.Currency)

	_, err = svc.Approve(bg, requester, f.ID, "")
	assert.ErrorIs(t, err, ErrForbidden)

	approved, err := svc.Approve(bg, reviewer, f.ID, "ok")
	require.NoError(t, err)
	assert.Equal(t, model.FinanceStatusApproved, approved.Status)
	assert.Equal(t, "vp", approved.ReviewedBy)

	_, err = svc.Reject(bg, reviewer, f.ID, "changed my mind")
	assert.ErrorIs(t, err, ErrStateConflict)
}

func TestBountyLifecycle(t *testing.T) {
	db := openTestDB(t)
	svc := NewBountyService(&sqldb.BountyRepository{DB: db})
	lead := &model.Member{ID: "lead", Role: model.RoleTechLead}
	hunter := &model.Member{ID: "hunter", Role: model.RoleMember}

	b, err := svc.Create(bg, lead, BountyInput{Title: "Fix CI", Reward: 500})
	require.NoError(t, err)

	_, err = svc.Complete(bg, lead, b.ID)
	assert.ErrorIs(t, err, ErrStateConflict)

	claimed, err := svc.Claim(bg, hunter, b.ID)
	require.NoError(t, err)
	assert.Equal(t, model.BountyStatusClaimed, claimed.Status)
	assert.Equal(t, "hunter", claimed.AssigneeID)

	done, err := svc.Complete(bg, lead, b.ID)
	require.NoError(t, err)
	assert.Equal(t, model.BountyStatusCompleted, done.Status)

	past := time.Now().Add(-time.Hour)
	expired, err := svc.Create(bg, lead, BountyInput{Title: "Late", Deadline: &past})
	require.NoError(t, err)
	_, err = svc.Claim(bg, hunter, expired.ID)
	assert.ErrorIs(t, err, ErrStateConflict)
}

func TestEventRejectsInvertedRange(t *testing.T) {
	db := openTestDB(t)
	svc := NewEventService(&sqldb.EventRepository{DB: db})
	start := time.Now().Add(24 * time.Hour)

	_, err := svc.Create(bg, &model.Member{ID: "m"}, EventInput{Title: "Hack night", StartsAt: start, EndsAt: start.Add(-time.Hour)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	e, err := svc.Create(bg, &model.Member{ID: "m"}, EventInput{Title: "Hack night", StartsAt: start, EndsAt: start.Add(3 * time.Hour)})
	require.NoError(t, err)

	upcoming, err := svc.List(bg, true, 1, 20)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, e.ID, upcoming[0].ID)
}

func TestLibraryDuplicateRepository(t *testing.T) {
	db := openTestDB(t)
	svc := NewLibraryService(&sqldb.CodeRepoRepository{DB: db}, &sqldb.ResourceRepository{DB: db})
	actor := &model.Member{ID: "m"}

	_, err := svc.AddRepository(bg, actor, CodeRepoInput{Name: "portal", URL: "https://github.com/club/portal"})
	require.NoError(t, err)
	_, err = svc.AddRepository(bg, actor, CodeRepoInput{Name: "portal", URL: "https://github.com/club/portal"})
	assert.ErrorIs(t, err, ErrDuplicate)

	res, err := svc.AddResource(bg, actor, ResourceInput{Title: "Go tour", URL: "https://go.dev/tour", Category: "go"})
	require.NoError(t, err)
	list, err := svc.ListResources(bg, "go", 1, 20)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NoError(t, svc.DeleteResource(bg, res.ID))
	assert.ErrorIs(t, svc.DeleteResource(bg, res.ID), ErrNotFound)
}

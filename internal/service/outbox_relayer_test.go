package service

import (
	"context"
	"errors"
	"testing"

	"Club_Portal/internal/model"
	"Club_Portal/internal/repository/sqldb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestOutboxRelayerDelivers(t *testing.T) {
	db := openTestDB(t)
	projects := NewProjectService(&sqldb.ProjectRepository{DB: db})
	actor := &model.Member{ID: "m1", Role: model.RoleMember}
	_, err := projects.Create(bg, actor, ProjectInput{Title: "Validator dashboard"})
	require.NoError(t, err)

	var got []model.ClubOutbox
	sender := func(_ context.Context, ob *model.ClubOutbox) error {
		got = append(got, *ob)
		return nil
	}
	r := NewOutboxRelayer(&sqldb.OutboxRepository{DB: db}, sender, zap.NewNop())

	assert.Equal(t, 1, r.DrainOnce(bg))
	require.Len(t, got, 1)
	assert.Equal(t, "project.created", got[0].EventType)
	assert.Equal(t, "m1", got[0].ActorID)

	assert.Equal(t, 0, r.DrainOnce(bg))
}

func TestOutboxRelayerRetriesFailures(t *testing.T) {
	db := openTestDB(t)
	projects := NewProjectService(&sqldb.ProjectRepository{DB: db})
	_, err := projects.Create(bg, &model.Member{ID: "m1"}, ProjectInput{Title: "p"})
	require.NoError(t, err)

	fail := func(context.Context, *model.ClubOutbox) error { return errors.New("broker down") }
	r := NewOutboxRelayer(&sqldb.OutboxRepository{DB: db}, fail, zap.NewNop())
	assert.Equal(t, 0, r.DrainOnce(bg))

	var ob model.ClubOutbox
	require.NoError(t, db.First(&ob).Error)
	assert.Equal(t, model.OutboxFailed, ob.Status)
	assert.Equal(t, 1, ob.Retry)

	core, logs := observer.New(zap.InfoLevel)
	r = NewOutboxRelayer(&sqldb.OutboxRepository{DB: db}, LogSender(zap.New(core)), zap.NewNop())
	assert.Equal(t, 1, r.DrainOnce(bg))
	assert.Equal(t, 1, logs.FilterMessage("outbox event").Len())
}

package sqldb

import (
	"context"
	"fmt"
	"testing"

	"Club_Portal/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMember(id, wallet, role string) *model.Member {
	return &model.Member{ID: id, WalletAddress: wallet, Name: "member " + id, Role: role, IsActive: true}
}

func TestMemberRepository_FindActiveByWallet(t *testing.T) {
	db := openTestDB(t)
	repo := &MemberRepository{DB: db}
	ctx := context.Background()

	require.NoError(t, repo.CreateWithinLimit(ctx, newMember("m1", "WalletActive1111111111111111111111", model.RolePresident), 15, "admin"))
	inactive := newMember("m2", "WalletInactive11111111111111111111", model.RoleMember)
	require.NoError(t, repo.CreateWithinLimit(ctx, inactive, 15, "admin"))
	require.NoError(t, db.Model(&model.Member{}).Where("id = ?", "m2").Update("is_active", false).Error)

	got, err := repo.FindActiveByWallet(ctx, "WalletActive1111111111111111111111")
	require.NoError(t, err)
	assert.Equal(t, "m1", got.ID)
	assert.Equal(t, model.RolePresident, got.Role)

	_, err = repo.FindActiveByWallet(ctx, "WalletInactive11111111111111111111")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.FindActiveByWallet(ctx, "walletactive1111111111111111111111")
	assert.ErrorIs(t, err, ErrNotFound, "lookup is exact match")
}

func TestMemberRepository_CreateWithinLimit(t *testing.T) {
	db := openTestDB(t)
	repo := &MemberRepository{DB: db}
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		m := newMember(fmt.Sprintf("m%d", i), fmt.Sprintf("wallet-%d", i), model.RoleMember)
		require.NoError(t, repo.CreateWithinLimit(ctx, m, 3, "admin"))
	}

	err := repo.CreateWithinLimit(ctx, newMember("m9", "wallet-9", model.RoleMember), 3, "admin")
	assert.ErrorIs(t, err, ErrRosterFull)

	n, err := repo.CountActive(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	var outbox []model.ClubOutbox
	require.NoError(t, db.Find(&outbox).Error)
	assert.Len(t, outbox, 3, "rejected registration writes no event")
	assert.Equal(t, "member.registered", outbox[0].EventType)
}

func TestMemberRepository_CreateDuplicateWallet(t *testing.T) {
	db := openTestDB(t)
	repo := &MemberRepository{DB: db}
	ctx := context.Background()

	require.NoError(t, repo.CreateWithinLimit(ctx, newMember("a", "same-wallet", model.RoleMember), 15, "admin"))
	err := repo.CreateWithinLimit(ctx, newMember("b", "same-wallet", model.RoleMember), 15, "admin")
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestMemberRepository_UpdateProfile(t *testing.T) {
	db := openTestDB(t)
	repo := &MemberRepository{DB: db}
	ctx := context.Background()

	require.NoError(t, repo.CreateWithinLimit(ctx, newMember("m1", "w1", model.RoleMember), 15, "admin"))

	m, err := repo.FindByID(ctx, "m1")
	require.NoError(t, err)
	m.Name = "Ada"
	m.Skills = []string{"go", "rust"}
	m.Social.Github = "ada"
	m.Role = model.RolePresident // 不在可写列

	require.NoError(t, repo.UpdateProfile(ctx, m, []string{"name", "skills", "social_github", "role"}))

	got, err := repo.FindByID(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name)
	assert.Equal(t, []string{"go", "rust"}, got.Skills)
	assert.Equal(t, "ada", got.Social.Github)
	assert.Equal(t, model.RoleMember, got.Role)

	err = repo.UpdateProfile(ctx, &model.Member{ID: "missing", Name: "x"}, []string{"name"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemberRepository_List(t *testing.T) {
	db := openTestDB(t)
	repo := &MemberRepository{DB: db}
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		require.NoError(t, repo.CreateWithinLimit(ctx, newMember(fmt.Sprintf("m%d", i), fmt.Sprintf("w%d", i), model.RoleMember), 15, "admin"))
	}
	require.NoError(t, db.Model(&model.Member{}).Where("id = ?", "m0").Update("is_active", false).Error)

	list, err := repo.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	list, err = repo.List(ctx, 0, 2)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

package service

import (
	"fmt"
	"testing"
	"time"

	"Club_Portal/internal/model"
	redisrepo "Club_Portal/internal/repository/redis"
	"Club_Portal/internal/repository/sqldb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestAdminSecretCheck(t *testing.T) {
	plain := AdminSecret{Plain: "s3cret"}
	assert.NoError(t, plain.Check("s3cret"))
	assert.ErrorIs(t, plain.Check("S3cret"), ErrAdminSecret)
	assert.ErrorIs(t, plain.Check(""), ErrAdminSecret)

	hash, err := bcrypt.GenerateFromPassword([]byte("hashed-secret"), bcrypt.MinCost)
	require.NoError(t, err)
	hashed := AdminSecret{Plain: "s3cret", Hash: string(hash)}
	assert.NoError(t, hashed.Check("hashed-secret"))
	assert.ErrorIs(t, hashed.Check("s3cret"), ErrAdminSecret)

	assert.ErrorIs(t, AdminSecret{}.Check("anything"), ErrAdminSecret)
}

func newMemberService(t *testing.T, limit int) (*MemberService, *sqldb.MemberRepository) {
	t.Helper()
	db := openTestDB(t)
	_, client := openTestRedis(t)
	repo := &sqldb.MemberRepository{DB: db}
	lock := &redisrepo.DistLock{RDB: client, TTL: time.Second}
	return NewMemberService(repo, lock, AdminSecret{Plain: "s3cret"}, limit, zap.NewNop()), repo
}

func TestRegisterDefaultsRole(t *testing.T) {
	svc, _ := newMemberService(t, 15)
	w := newWallet(t)

	m, err := svc.Register(bg, RegisterInput{WalletAddress: " " + w.Address, Name: "Ada"})
	require.NoError(t, err)
	assert.Equal(t, w.Address, m.WalletAddress)
	assert.Equal(t, model.RoleMember, m.Role)
	assert.True(t, m.IsActive)
	assert.NotEmpty(t, m.ID)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newMemberService(t, 15)

	_, err := svc.Register(bg, RegisterInput{Name: "x"})
	assert.ErrorIs(t, err, ErrWalletMissing)
	_, err = svc.Register(bg, RegisterInput{WalletAddress: "nope", Name: "x"})
	assert.ErrorIs(t, err, ErrWalletInvalid)
	_, err = svc.Register(bg, RegisterInput{WalletAddress: newWallet(t).Address, Name: "x", Role: "Treasurer"})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestRegisterDuplicateWallet(t *testing.T) {
	svc, _ := newMemberService(t, 15)
	w := newWallet(t)

	_, err := svc.Register(bg, RegisterInput{WalletAddress: w.Address, Name: "one"})
	require.NoError(t, err)
	_, err = svc.Register(bg, RegisterInput{WalletAddress: w.Address, Name: "two"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestRegisterRosterCap(t *testing.T) {
	svc, repo := newMemberService(t, 15)
	for i := 0; i < 15; i++ {
		_, err := svc.Register(bg, RegisterInput{WalletAddress: newWallet(t).Address, Name: fmt.Sprintf("m%d", i)})
		require.NoError(t, err)
	}

	extra := newWallet(t)
	_, err := svc.Register(bg, RegisterInput{WalletAddress: extra.Address, Name: "sixteenth"})
	assert.ErrorIs(t, err, ErrRosterFull)

	n, err := repo.CountActive(bg)
	require.NoError(t, err)
	assert.Equal(t, int64(15), n)
	_, err = repo.FindActiveByWallet(bg, extra.Address)
	assert.ErrorIs(t, err, sqldb.ErrNotFound)
}

func TestRegisterWaitsForLock(t *testing.T) {
	db := openTestDB(t)
	_, client := openTestRedis(t)
	lock := &redisrepo.DistLock{RDB: client, TTL: time.Minute}
	ok, err := lock.Acquire(bg, rosterLockName, "someone-else")
	require.NoError(t, err)
	require.True(t, ok)

	svc := NewMemberService(&sqldb.MemberRepository{DB: db}, lock, AdminSecret{Plain: "x"}, 15, zap.NewNop())
	_, err = svc.Register(bg, RegisterInput{WalletAddress: newWallet(t).Address, Name: "blocked"})
	assert.ErrorIs(t, err, ErrRosterBusy)
}

func TestUpdateProfileOnlyTouchesProfile(t *testing.T) {
	svc, repo := newMemberService(t, 15)
	m, err := svc.Register(bg, RegisterInput{WalletAddress: newWallet(t).Address, Name: "Ada"})
	require.NoError(t, err)

	name := "Ada Lovelace"
	github := "ada"
	skills := []string{"go", "rust"}
	self := *m
	self.Role = model.RolePresident
	updated, err := svc.UpdateProfile(bg, &self, ProfileInput{Name: &name, Github: &github, Skills: &skills})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.Equal(t, "ada", updated.Social.Github)
	assert.Equal(t, skills, updated.Skills)

	stored, err := repo.FindByID(bg, m.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RoleMember, stored.Role)
}

func TestMemberDirectoryHidesBankDetails(t *testing.T) {
	svc, _ := newMemberService(t, 15)
	m, err := svc.Register(bg, RegisterInput{
		WalletAddress: newWallet(t).Address,
		Name:          "Ada",
		BankDetails:   model.BankDetails{AccountNumber: "123"},
	})
	require.NoError(t, err)

	list, err := svc.List(bg, 1, 20)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Empty(t, list[0].BankDetails.AccountNumber)

	got, err := svc.Get(bg, m.ID)
	require.NoError(t, err)
	assert.Empty(t, got.BankDetails.AccountNumber)

	_, err = svc.Get(bg, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

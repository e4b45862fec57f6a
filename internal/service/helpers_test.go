package service

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"testing"
	"time"

	"Club_Portal/internal/model"
	"Club_Portal/internal/pkg"
	redisrepo "Club_Portal/internal/repository/redis"
	"Club_Portal/internal/repository/sqldb"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/mr-tron/base58"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, sqldb.AutoMigrate(db))
	return db
}

func openTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

type testWallet struct {
	Address string
	Key     ed25519.PrivateKey
}

func newWallet(t *testing.T) testWallet {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return testWallet{Address: base58.Encode(pub), Key: priv}
}

func (w testWallet) Sign(message string) string {
	return base58.Encode(ed25519.Sign(w.Key, []byte(message)))
}

// seedMember 直接写库，绕过名额检查
func seedMember(t *testing.T, db *gorm.DB, wallet, role string, active bool) *model.Member {
	t.Helper()
	m := &model.Member{
		ID:            uuid.NewString(),
		WalletAddress: wallet,
		Name:          "member " + role,
		Role:          role,
		IsActive:      true,
		Skills:        []string{},
	}
	require.NoError(t, db.Create(m).Error)
	if !active {
		// gorm 会跳过 bool 零值，停用需要单独更新
		require.NoError(t, db.Model(m).Update("is_active", false).Error)
		m.IsActive = false
	}
	return m
}

type authFixture struct {
	db     *gorm.DB
	mr     *miniredis.Miniredis
	svc    *AuthService
	tokens *redisrepo.TokenRepository
}

func newAuthFixture(t *testing.T, requireSignature bool) *authFixture {
	t.Helper()
	db := openTestDB(t)
	mr, client := openTestRedis(t)
	tokens := &redisrepo.TokenRepository{Client: client}
	resolver := NewWalletResolver(&sqldb.MemberRepository{DB: db}, nopLogger())
	issuer := pkg.NewTokenIssuer("access-secret", "refresh-secret", 30*time.Minute, 24*time.Hour)
	svc := NewAuthService(resolver, tokens, &redisrepo.NonceRepository{Client: client}, issuer,
		AuthOptions{ClubName: "Tech Club", RequireSignature: requireSignature}, nopLogger())
	return &authFixture{db: db, mr: mr, svc: svc, tokens: tokens}
}

var bg = context.Background()

func nopLogger() *zap.Logger { return zap.NewNop() }

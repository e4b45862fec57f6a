package service

import (
	"context"
	"errors"
	"fmt"

	"Club_Portal/internal/model"
	"Club_Portal/internal/pkg"
	redisrepo "Club_Portal/internal/repository/redis"

	"go.uber.org/zap"
)

type AuthOptions struct {
	ClubName         string
	RequireSignature bool
}

type AuthService struct {
	resolver *WalletResolver
	tokens   *redisrepo.TokenRepository
	nonces   *redisrepo.NonceRepository
	issuer   *pkg.TokenIssuer
	opts     AuthOptions
	log      *zap.Logger
}

// Challenge 登录挑战，钱包对 Message 签名后提交
type Challenge struct {
	Wallet  string `json:"wallet"`
	Nonce   string `json:"nonce"`
	Message string `json:"message"`
}

func NewAuthService(resolver *WalletResolver, tokens *redisrepo.TokenRepository, nonces *redisrepo.NonceRepository,
	issuer *pkg.TokenIssuer, opts AuthOptions, log *zap.Logger) *AuthService {
	return &AuthService{
		resolver: resolver,
		tokens:   tokens,
		nonces:   nonces,
		issuer:   issuer,
		opts:     opts,
		log:      log,
	}
}

func (s *AuthService) RequireSignature() bool { return s.opts.RequireSignature }

// Nonce 只校验格式，不暴露钱包是否已注册
func (s *AuthService) Nonce(ctx context.Context, wallet string) (*Challenge, error) {
	wallet = pkg.NormalizeWallet(wallet)
	if err := pkg.ValidateWallet(wallet); err != nil {
		if errors.Is(err, pkg.ErrWalletEmpty) {
			return nil, ErrWalletMissing
		}
		return nil, ErrWalletInvalid
	}
	nonce, err := pkg.RandHex(16)
	if err != nil {
		return nil, err
	}
	if err = s.nonces.SaveNonce(ctx, wallet, nonce); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthUnavailable, err)
	}
	return &Challenge{
		Wallet:  wallet,
		Nonce:   nonce,
		Message: pkg.ChallengeMessage(s.opts.ClubName, wallet, nonce),
	}, nil
}

// Login 先解析身份；带签名（或配置强制签名）时校验挑战签名，成功后签发 token
func (s *AuthService) Login(ctx context.Context, wallet, signature string) (*model.Member, *pkg.Pair, error) {
	m, err := s.resolver.Resolve(ctx, wallet)
	if err != nil {
		return nil, nil, err
	}

	if signature != "" || s.opts.RequireSignature {
		if signature == "" {
			return nil, nil, ErrSignatureRequired
		}
		if err = s.verifyChallenge(ctx, m.WalletAddress, signature); err != nil {
			return nil, nil, err
		}
	}

	pair, err := s.issue(ctx, m)
	if err != nil {
		return nil, nil, err
	}
	return m, pair, nil
}

func (s *AuthService) verifyChallenge(ctx context.Context, wallet, signature string) error {
	nonce, err := s.nonces.ConsumeNonce(ctx, wallet)
	if errors.Is(err, redisrepo.ErrNonceNotFound) {
		return ErrNonceExpired
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAuthUnavailable, err)
	}
	msg := pkg.ChallengeMessage(s.opts.ClubName, wallet, nonce)
	if err = pkg.VerifyWalletSignature(wallet, msg, signature); err != nil {
		s.log.Info("wallet signature rejected", zap.String("wallet", wallet), zap.Error(err))
		return ErrInvalidSignature
	}
	return nil
}

func (s *AuthService) issue(ctx context.Context, m *model.Member) (*pkg.Pair, error) {
	pair, err := s.issuer.GeneratePair(m.ID, m.WalletAddress, m.Role)
	if err != nil {
		return nil, err
	}
	if err = s.tokens.AddMemberToken(ctx, m.ID, pair.AccessToken, s.issuer.AccessTTL); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthUnavailable, err)
	}
	return pair, nil
}

// Refresh 重新解析成员，角色变更或被停用会在这里生效
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*pkg.Pair, error) {
	claims, err := s.issuer.ParseRefresh(refreshToken)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	m, err := s.resolver.Resolve(ctx, claims.Wallet)
	if err != nil {
		return nil, err
	}
	if m.ID != claims.MemberID {
		return nil, ErrTokenInvalid
	}
	return s.issue(ctx, m)
}

func (s *AuthService) Logout(ctx context.Context, memberID string) error {
	return s.tokens.DeleteMemberToken(ctx, memberID)
}

// Authenticate 校验 access token 且必须是 redis 中当前有效的那一个
func (s *AuthService) Authenticate(ctx context.Context, accessToken string) (*model.Member, error) {
	claims, err := s.issuer.ParseAccess(accessToken)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	current, err := s.tokens.GetMemberToken(ctx, claims.MemberID)
	if errors.Is(err, redisrepo.ErrTokenNotFound) {
		return nil, ErrTokenRevoked
	}
	if err != nil {
		s.log.Error("token store unavailable", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrAuthUnavailable, err)
	}
	if current != accessToken {
		return nil, ErrTokenRevoked
	}
	m, err := s.resolver.Resolve(ctx, claims.Wallet)
	if err != nil {
		return nil, err
	}
	if m.ID != claims.MemberID {
		return nil, ErrTokenInvalid
	}
	return m, nil
}

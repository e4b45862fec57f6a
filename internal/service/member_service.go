package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"Club_Portal/internal/model"
	"Club_Portal/internal/pkg"
	redisrepo "Club_Portal/internal/repository/redis"
	"Club_Portal/internal/repository/sqldb"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const rosterLockName = "member:roster"

// AdminSecret 明文或 bcrypt 哈希二选一，哈希优先
type AdminSecret struct {
	Plain string
	Hash  string
}

func (a AdminSecret) Check(supplied string) error {
	if supplied == "" {
		return ErrAdminSecret
	}
	if a.Hash != "" {
		if bcrypt.CompareHashAndPassword([]byte(a.Hash), []byte(supplied)) != nil {
			return ErrAdminSecret
		}
		return nil
	}
	if a.Plain == "" || subtle.ConstantTimeCompare([]byte(a.Plain), []byte(supplied)) != 1 {
		return ErrAdminSecret
	}
	return nil
}

type RegisterInput struct {
	WalletAddress string            `json:"walletAddress" binding:"required,wallet"`
	Name          string            `json:"name" binding:"required,max=64"`
	Email         string            `json:"email" binding:"omitempty,email"`
	Role          string            `json:"role"`
	AvatarURL     string            `json:"avatarUrl" binding:"omitempty,url"`
	Bio           string            `json:"bio" binding:"max=1000"`
	Skills        []string          `json:"skills"`
	Social        model.SocialLinks `json:"social"`
	BankDetails   model.BankDetails `json:"bankDetails"`
	AdminSecret   string            `json:"adminSecret"`
}

// ProfileInput 指针字段为 nil 表示不修改
type ProfileInput struct {
	Name        *string            `json:"name" binding:"omitempty,min=1,max=64"`
	Email       *string            `json:"email" binding:"omitempty,email"`
	AvatarURL   *string            `json:"avatarUrl" binding:"omitempty,url"`
	Bio         *string            `json:"bio" binding:"omitempty,max=1000"`
	Skills      *[]string          `json:"skills"`
	Github      *string            `json:"github"`
	Linkedin    *string            `json:"linkedin"`
	Twitter     *string            `json:"twitter"`
	BankDetails *model.BankDetails `json:"bankDetails"`
}

type MemberService struct {
	repo        *sqldb.MemberRepository
	lock        *redisrepo.DistLock
	admin       AdminSecret
	rosterLimit int
	log         *zap.Logger
}

// NewMemberService lock 为 nil 时只依赖事务做名额校验
func NewMemberService(repo *sqldb.MemberRepository, lock *redisrepo.DistLock, admin AdminSecret, rosterLimit int, log *zap.Logger) *MemberService {
	if rosterLimit <= 0 {
		rosterLimit = 15
	}
	return &MemberService{repo: repo, lock: lock, admin: admin, rosterLimit: rosterLimit, log: log}
}

func (s *MemberService) CheckAdminSecret(secret string) error {
	return s.admin.Check(secret)
}

// Register 名额已满或钱包已存在时不写入任何记录
func (s *MemberService) Register(ctx context.Context, in RegisterInput) (*model.Member, error) {
	wallet := pkg.NormalizeWallet(in.WalletAddress)
	if err := pkg.ValidateWallet(wallet); err != nil {
		if errors.Is(err, pkg.ErrWalletEmpty) {
			return nil, ErrWalletMissing
		}
		return nil, ErrWalletInvalid
	}
	role := in.Role
	if role == "" {
		role = model.RoleMember
	}
	if !model.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	m := &model.Member{
		ID:            uuid.NewString(),
		WalletAddress: wallet,
		Name:          in.Name,
		Email:         in.Email,
		Role:          role,
		IsActive:      true,
		AvatarURL:     in.AvatarURL,
		Bio:           in.Bio,
		Skills:        in.Skills,
		Social:        in.Social,
		BankDetails:   in.BankDetails,
	}
	if m.Skills == nil {
		m.Skills = []string{}
	}

	release, err := s.acquireRoster(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	if err = s.repo.CreateWithinLimit(ctx, m, s.rosterLimit, "admin"); err != nil {
		return nil, err
	}
	s.log.Info("member registered", zap.String("id", m.ID), zap.String("role", m.Role))
	return m, nil
}

// acquireRoster 多实例下串行化注册，短暂重试后放弃
func (s *MemberService) acquireRoster(ctx context.Context) (func(), error) {
	if s.lock == nil {
		return func() {}, nil
	}
	token, err := pkg.RandHex(8)
	if err != nil {
		return nil, err
	}
	for i := 0; i < 20; i++ {
		ok, err := s.lock.Acquire(ctx, rosterLockName, token)
		if err != nil {
			return nil, err
		}
		if ok {
			return func() {
				if err := s.lock.Release(context.WithoutCancel(ctx), rosterLockName, token); err != nil {
					s.log.Warn("release roster lock", zap.Error(err))
				}
			}, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(50 * time.Millisecond):
		}
	}
	return nil, ErrRosterBusy
}

func (s *MemberService) UpdateProfile(ctx context.Context, self *model.Member, in ProfileInput) (*model.Member, error) {
	m := *self
	cols := []string{"updated_at"}
	if in.Name != nil {
		m.Name = *in.Name
		cols = append(cols, "name")
	}
	if in.Email != nil {
		m.Email = *in.Email
		cols = append(cols, "email")
	}
	if in.AvatarURL != nil {
		m.AvatarURL = *in.AvatarURL
		cols = append(cols, "avatar_url")
	}
	if in.Bio != nil {
		m.Bio = *in.Bio
		cols = append(cols, "bio")
	}
	if in.Skills != nil {
		m.Skills = *in.Skills
		cols = append(cols, "skills")
	}
	if in.Github != nil {
		m.Social.Github = *in.Github
		cols = append(cols, "social_github")
	}
	if in.Linkedin != nil {
		m.Social.Linkedin = *in.Linkedin
		cols = append(cols, "social_linkedin")
	}
	if in.Twitter != nil {
		m.Social.Twitter = *in.Twitter
		cols = append(cols, "social_twitter")
	}
	if in.BankDetails != nil {
		m.BankDetails = *in.BankDetails
		cols = append(cols, "bank_details")
	}
	m.UpdatedAt = time.Now()
	if err := s.repo.UpdateProfile(ctx, &m, cols); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, m.ID)
}

// List 公开名录，不含银行信息
func (s *MemberService) List(ctx context.Context, page, size int) ([]model.Member, error) {
	offset, limit := sqldb.Page(page, size)
	list, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i] = list[i].Public()
	}
	return list, nil
}

func (s *MemberService) Get(ctx context.Context, id string) (*model.Member, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !m.IsActive {
		return nil, ErrNotFound
	}
	pub := m.Public()
	return &pub, nil
}

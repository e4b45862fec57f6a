package service

import (
	"context"
	"time"

	"Club_Portal/internal/model"
	"Club_Portal/internal/repository/sqldb"

	"github.com/google/uuid"
)

type BountyInput struct {
	Title       string     `json:"title" binding:"required,max=200"`
	Description string     `json:"description"`
	Reward      int64      `json:"reward" binding:"gte=0"`
	Deadline    *time.Time `json:"deadline"`
}

type BountyService struct {
	repo *sqldb.BountyRepository
}

func NewBountyService(repo *sqldb.BountyRepository) *BountyService {
	return &BountyService{repo: repo}
}

func (s *BountyService) Create(ctx context.Context, actor *model.Member, in BountyInput) (*model.Bounty, error) {
	b := &model.Bounty{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Reward:      in.Reward,
		Status:      model.BountyStatusOpen,
		Deadline:    in.Deadline,
		CreatedBy:   actor.ID,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BountyService) Get(ctx context.Context, id string) (*model.Bounty, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *BountyService) List(ctx context.Context, status string, page, size int) ([]model.Bounty, error) {
	offset, limit := sqldb.Page(page, size)
	return s.repo.List(ctx, status, offset, limit)
}

// Claim open -> claimed，已过截止时间的悬赏不能认领
func (s *BountyService) Claim(ctx context.Context, actor *model.Member, id string) (*model.Bounty, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Deadline != nil && b.Deadline.Before(time.Now()) {
		return nil, ErrStateConflict
	}
	if err = s.repo.Claim(ctx, id, actor.ID); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *BountyService) Complete(ctx context.Context, actor *model.Member, id string) (*model.Bounty, error) {
	if err := s.repo.Complete(ctx, id, actor.ID); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *BountyService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

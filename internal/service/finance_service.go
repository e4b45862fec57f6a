package service

import (
	"context"

	"Club_Portal/internal/model"
	"Club_Portal/internal/repository/sqldb"

	"github.com/google/uuid"
)

type FinanceInput struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Currency    string `json:"currency" binding:"omitempty,len=3"`
	ReceiptURL  string `json:"receiptUrl" binding:"omitempty,url"`
}

type ReviewInput struct {
	Note string `json:"note" binding:"max=1000"`
}

type FinanceService struct {
	repo *sqldb.FinanceRepository
}

func NewFinanceService(repo *sqldb.FinanceRepository) *FinanceService {
	return &FinanceService{repo: repo}
}

func (s *FinanceService) Create(ctx context.Context, actor *model.Member, in FinanceInput) (*model.FinanceRequest, error) {
	f := &model.FinanceRequest{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Amount:      in.Amount,
		Currency:    in.Currency,
		ReceiptURL:  in.ReceiptURL,
		Status:      model.FinanceStatusPending,
		RequestedBy: actor.ID,
	}
	if f.Currency == "" {
		f.Currency = "INR"
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *FinanceService) Get(ctx context.Context, id string) (*model.FinanceRequest, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *FinanceService) List(ctx context.Context, status, requestedBy string, page, size int) ([]model.FinanceRequest, error) {
	offset, limit := sqldb.Page(page, size)
	return s.repo.List(ctx, status, requestedBy, offset, limit)
}

func (s *FinanceService) Approve(ctx context.Context, reviewer *model.Member, id, note string) (*model.FinanceRequest, error) {
	return s.review(ctx, reviewer, id, model.FinanceStatusApproved, note)
}

func (s *FinanceService) Reject(ctx context.Context, reviewer *model.Member, id, note string) (*model.FinanceRequest, error) {
	return s.review(ctx, reviewer, id, model.FinanceStatusRejected, note)
}

// review 申请人不能审核自己的申请
func (s *FinanceService) review(ctx context.Context, reviewer *model.Member, id, status, note string) (*model.FinanceRequest, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f.RequestedBy == reviewer.ID {
		return nil, ErrForbidden
	}
	if err = s.repo.Review(ctx, id, reviewer.ID, status, note); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

package service

import (
	"context"
	"time"

	"Club_Portal/internal/model"
	"Club_Portal/internal/repository/sqldb"

	"github.com/google/uuid"
)

type EventInput struct {
	Title       string    `json:"title" binding:"required,max=200"`
	Description string    `json:"description"`
	Type        string    `json:"type" binding:"max=32"`
	Location    string    `json:"location" binding:"max=200"`
	StartsAt    time.Time `json:"startsAt" binding:"required"`
	EndsAt      time.Time `json:"endsAt"`
	RegisterURL string    `json:"registerUrl" binding:"omitempty,url"`
	ImageURL    string    `json:"imageUrl" binding:"omitempty,url"`
}

type EventService struct {
	repo *sqldb.EventRepository
	now  func() time.Time
}

func NewEventService(repo *sqldb.EventRepository) *EventService {
	return &EventService{repo: repo, now: time.Now}
}

func (in EventInput) validate() error {
	if !in.EndsAt.IsZero() && in.EndsAt.Before(in.StartsAt) {
		return ErrInvalidInput
	}
	return nil
}

func (s *EventService) Create(ctx context.Context, actor *model.Member, in EventInput) (*model.Event, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	e := &model.Event{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Type:        in.Type,
		Location:    in.Location,
		StartsAt:    in.StartsAt,
		EndsAt:      in.EndsAt,
		RegisterURL: in.RegisterURL,
		ImageURL:    in.ImageURL,
		CreatedBy:   actor.ID,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EventService) Get(ctx context.Context, id string) (*model.Event, error) {
	return s.repo.FindByID(ctx, id)
}

// List upcoming=true 时只返回尚未开始的活动
func (s *EventService) List(ctx context.Context, upcoming bool, page, size int) ([]model.Event, error) {
	offset, limit := sqldb.Page(page, size)
	return s.repo.List(ctx, upcoming, s.now(), offset, limit)
}

// Update 整体替换可编辑字段
func (s *EventService) Update(ctx context.Context, id string, in EventInput) (*model.Event, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	e.Title = in.Title
	e.Description = in.Description
	e.Type = in.Type
	e.Location = in.Location
	e.StartsAt = in.StartsAt
	e.EndsAt = in.EndsAt
	e.RegisterURL = in.RegisterURL
	e.ImageURL = in.ImageURL
	e.UpdatedAt = time.Now()
	cols := []string{"title", "description", "type", "location", "starts_at", "ends_at", "register_url", "image_url", "updated_at"}
	if err = s.repo.Update(ctx, e, cols); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

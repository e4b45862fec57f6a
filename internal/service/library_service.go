package service

import (
	"context"

	"Club_Portal/internal/model"
	"Club_Portal/internal/repository/sqldb"

	"github.com/google/uuid"
)

type CodeRepoInput struct {
	Name        string `json:"name" binding:"required,max=128"`
	URL         string `json:"url" binding:"required,url"`
	Description string `json:"description"`
	Language    string `json:"language" binding:"max=32"`
}

type ResourceInput struct {
	Title       string `json:"title" binding:"required,max=200"`
	URL         string `json:"url" binding:"required,url"`
	Category    string `json:"category" binding:"max=32"`
	Description string `json:"description"`
}

// LibraryService 代码仓库与学习资料登记
type LibraryService struct {
	repos     *sqldb.CodeRepoRepository
	resources *sqldb.ResourceRepository
}

func NewLibraryService(repos *sqldb.CodeRepoRepository, resources *sqldb.ResourceRepository) *LibraryService {
	return &LibraryService{repos: repos, resources: resources}
}

func (s *LibraryService) AddRepository(ctx context.Context, actor *model.Member, in CodeRepoInput) (*model.CodeRepository, error) {
	c := &model.CodeRepository{
		ID:          uuid.NewString(),
		Name:        in.Name,
		URL:         in.URL,
		Description: in.Description,
		Language:    in.Language,
		AddedBy:     actor.ID,
	}
	if err := s.repos.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *LibraryService) ListRepositories(ctx context.Context, language string, page, size int) ([]model.CodeRepository, error) {
	offset, limit := sqldb.Page(page, size)
	return s.repos.List(ctx, language, offset, limit)
}

func (s *LibraryService) DeleteRepository(ctx context.Context, id string) error {
	return s.repos.Delete(ctx, id)
}

func (s *LibraryService) AddResource(ctx context.Context, actor *model.Member, in ResourceInput) (*model.Resource, error) {
	r := &model.Resource{
		ID:          uuid.NewString(),
		Title:       in.Title,
		URL:         in.URL,
		Category:    in.Category,
		Description: in.Description,
		AddedBy:     actor.ID,
	}
	if err := s.resources.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *LibraryService) ListResources(ctx context.Context, category string, page, size int) ([]model.Resource, error) {
	offset, limit := sqldb.Page(page, size)
	return s.resources.List(ctx, category, offset, limit)
}

func (s *LibraryService) DeleteResource(ctx context.Context, id string) error {
	return s.resources.Delete(ctx, id)
}

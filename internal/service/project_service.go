package service

import (
	"context"
	"time"

	"Club_Portal/internal/model"
	"Club_Portal/internal/repository/sqldb"

	"github.com/google/uuid"
)

type ProjectInput struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Description string   `json:"description"`
	Status      string   `json:"status" binding:"omitempty,oneof=active completed archived"`
	GithubURL   string   `json:"githubUrl" binding:"omitempty,url"`
	DemoURL     string   `json:"demoUrl" binding:"omitempty,url"`
	ImageURL    string   `json:"imageUrl" binding:"omitempty,url"`
	TechStack   []string `json:"techStack"`
}

type ProjectPatch struct {
	Title       *string   `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string   `json:"description"`
	Status      *string   `json:"status" binding:"omitempty,oneof=active completed archived"`
	GithubURL   *string   `json:"githubUrl" binding:"omitempty,url"`
	DemoURL     *string   `json:"demoUrl" binding:"omitempty,url"`
	ImageURL    *string   `json:"imageUrl" binding:"omitempty,url"`
	TechStack   *[]string `json:"techStack"`
}

type ProjectService struct {
	repo *sqldb.ProjectRepository
}

func NewProjectService(repo *sqldb.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

func (s *ProjectService) Create(ctx context.Context, actor *model.Member, in ProjectInput) (*model.Project, error) {
	p := &model.Project{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		GithubURL:   in.GithubURL,
		DemoURL:     in.DemoURL,
		ImageURL:    in.ImageURL,
		TechStack:   in.TechStack,
		CreatedBy:   actor.ID,
	}
	if p.Status == "" {
		p.Status = model.ProjectStatusActive
	}
	if p.TechStack == nil {
		p.TechStack = []string{}
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProjectService) Get(ctx context.Context, id string) (*model.Project, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProjectService) List(ctx context.Context, status string, page, size int) ([]model.Project, error) {
	offset, limit := sqldb.Page(page, size)
	return s.repo.List(ctx, status, offset, limit)
}

// Update 创建者本人或拥有 project.update 能力的角色可以修改
func (s *ProjectService) Update(ctx context.Context, actor *model.Member, id string, in ProjectPatch) (*model.Project, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.CreatedBy != actor.ID && !model.Can(actor.Role, model.ActionProjectUpdate) {
		return nil, ErrForbidden
	}

	cols := []string{"updated_at"}
	if in.Title != nil {
		p.Title = *in.Title
		cols = append(cols, "title")
	}
	if in.Description != nil {
		p.Description = *in.Description
		cols = append(cols, "description")
	}
	if in.Status != nil {
		p.Status = *in.Status
		cols = append(cols, "status")
	}
	if in.GithubURL != nil {
		p.GithubURL = *in.GithubURL
		cols = append(cols, "github_url")
	}
	if in.DemoURL != nil {
		p.DemoURL = *in.DemoURL
		cols = append(cols, "demo_url")
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
		cols = append(cols, "image_url")
	}
	if in.TechStack != nil {
		p.TechStack = *in.TechStack
		cols = append(cols, "tech_stack")
	}
	p.UpdatedAt = time.Now()
	if err = s.repo.Update(ctx, p, cols); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProjectService) Delete(ctx context.Context, actor *model.Member, id string) error {
	return s.repo.Delete(ctx, id, actor.ID)
}

package sqldb

import (
	"context"

	"Club_Portal/internal/model"

	"gorm.io/gorm"
)

type ProjectRepository struct {
	DB *gorm.DB
}

func (r *ProjectRepository) Create(ctx context.Context, p *model.Project) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return translate(err)
		}
		return insertOutbox(tx, "project.created", p.ID, p.CreatedBy, map[string]any{"title": p.Title})
	})
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*model.Project, error) {
	var p model.Project
	if err := r.DB.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// List status 为空时不过滤
func (r *ProjectRepository) List(ctx context.Context, status string, offset, limit int) ([]model.Project, error) {
	var list []model.Project
	q := r.DB.WithContext(ctx).Model(&model.Project{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *ProjectRepository) Update(ctx context.Context, p *model.Project, columns []string) error {
	res := r.DB.WithContext(ctx).Model(p).Select(columns).Updates(p)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete 硬删除；记录不存在返回 ErrNotFound
func (r *ProjectRepository) Delete(ctx context.Context, id, actor string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.Project{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return insertOutbox(tx, "project.deleted", id, actor, nil)
	})
}

package sqldb

import (
	"context"

	"Club_Portal/internal/model"

	"gorm.io/gorm"
)

type CodeRepoRepository struct {
	DB *gorm.DB
}

// Create url 唯一，重复登记返回 ErrDuplicate
func (r *CodeRepoRepository) Create(ctx context.Context, c *model.CodeRepository) error {
	return translate(r.DB.WithContext(ctx).Create(c).Error)
}

func (r *CodeRepoRepository) FindByID(ctx context.Context, id string) (*model.CodeRepository, error) {
	var c model.CodeRepository
	if err := r.DB.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *CodeRepoRepository) List(ctx context.Context, language string, offset, limit int) ([]model.CodeRepository, error) {
	var list []model.CodeRepository
	q := r.DB.WithContext(ctx).Model(&model.CodeRepository{})
	if language != "" {
		q = q.Where("language = ?", language)
	}
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *CodeRepoRepository) Delete(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&model.CodeRepository{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

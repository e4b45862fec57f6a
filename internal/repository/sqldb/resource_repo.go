package sqldb

import (
	"context"

	"Club_Portal/internal/model"

	"gorm.io/gorm"
)

type ResourceRepository struct {
	DB *gorm.DB
}

func (r *ResourceRepository) Create(ctx context.Context, res *model.Resource) error {
	return translate(r.DB.WithContext(ctx).Create(res).Error)
}

func (r *ResourceRepository) FindByID(ctx context.Context, id string) (*model.Resource, error) {
	var res model.Resource
	if err := r.DB.WithContext(ctx).First(&res, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &res, nil
}

func (r *ResourceRepository) List(ctx context.Context, category string, offset, limit int) ([]model.Resource, error) {
	var list []model.Resource
	q := r.DB.WithContext(ctx).Model(&model.Resource{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *ResourceRepository) Delete(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&model.Resource{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

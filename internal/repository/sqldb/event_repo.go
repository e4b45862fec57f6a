package sqldb

import (
	"context"
	"time"

	"Club_Portal/internal/model"

	"gorm.io/gorm"
)

type EventRepository struct {
	DB *gorm.DB
}

func (r *EventRepository) Create(ctx context.Context, e *model.Event) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(e).Error; err != nil {
			return translate(err)
		}
		return insertOutbox(tx, "event.created", e.ID, e.CreatedBy, map[string]any{
			"title":    e.Title,
			"startsAt": e.StartsAt,
		})
	})
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*model.Event, error) {
	var e model.Event
	if err := r.DB.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

// List upcoming=true 只返回未开始的活动，按开始时间升序
func (r *EventRepository) List(ctx context.Context, upcoming bool, now time.Time, offset, limit int) ([]model.Event, error) {
	var list []model.Event
	q := r.DB.WithContext(ctx).Model(&model.Event{})
	if upcoming {
		q = q.Where("starts_at >= ?", now).Order("starts_at ASC")
	} else {
		q = q.Order("starts_at DESC")
	}
	err := q.Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *EventRepository) Update(ctx context.Context, e *model.Event, columns []string) error {
	res := r.DB.WithContext(ctx).Model(e).Select(columns).Updates(e)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&model.Event{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

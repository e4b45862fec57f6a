package sqldb

import (
	"context"
	"time"

	"Club_Portal/internal/model"

	"gorm.io/gorm"
)

type FinanceRepository struct {
	DB *gorm.DB
}

func (r *FinanceRepository) Create(ctx context.Context, f *model.FinanceRequest) error {
	return translate(r.DB.WithContext(ctx).Create(f).Error)
}

func (r *FinanceRepository) FindByID(ctx context.Context, id string) (*model.FinanceRequest, error) {
	var f model.FinanceRequest
	if err := r.DB.WithContext(ctx).First(&f, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &f, nil
}

// List requestedBy 非空时只看某个成员的申请
func (r *FinanceRepository) List(ctx context.Context, status, requestedBy string, offset, limit int) ([]model.FinanceRequest, error) {
	var list []model.FinanceRequest
	q := r.DB.WithContext(ctx).Model(&model.FinanceRequest{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if requestedBy != "" {
		q = q.Where("requested_by = ?", requestedBy)
	}
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

// Review 条件更新 pending -> approved/rejected，一条语句完成避免重复审核
func (r *FinanceRepository) Review(ctx context.Context, id, reviewer, status, note string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		res := tx.Model(&model.FinanceRequest{}).
			Where("id = ? AND status = ?", id, model.FinanceStatusPending).
			Updates(map[string]any{
				"status":      status,
				"reviewed_by": reviewer,
				"review_note": note,
				"reviewed_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var n int64
			if err := tx.Model(&model.FinanceRequest{}).Where("id = ?", id).Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return ErrNotFound
			}
			return ErrStateConflict
		}
		return insertOutbox(tx, "finance."+status, id, reviewer, map[string]any{"note": note})
	})
}

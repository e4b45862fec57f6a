package sqldb

import (
	"context"

	"Club_Portal/internal/model"

	"gorm.io/gorm"
)

type BountyRepository struct {
	DB *gorm.DB
}

func (r *BountyRepository) Create(ctx context.Context, b *model.Bounty) error {
	return translate(r.DB.WithContext(ctx).Create(b).Error)
}

func (r *BountyRepository) FindByID(ctx context.Context, id string) (*model.Bounty, error) {
	var b model.Bounty
	if err := r.DB.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *BountyRepository) List(ctx context.Context, status string, offset, limit int) ([]model.Bounty, error) {
	var list []model.Bounty
	q := r.DB.WithContext(ctx).Model(&model.Bounty{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

// transition 状态机一步推进：只有处于 from 状态时才更新
func (r *BountyRepository) transition(ctx context.Context, id, from string, updates map[string]any, event, actor string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Bounty{}).Where("id = ? AND status = ?", id, from).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var n int64
			if err := tx.Model(&model.Bounty{}).Where("id = ?", id).Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return ErrNotFound
			}
			return ErrStateConflict
		}
		return insertOutbox(tx, event, id, actor, updates)
	})
}

// Claim open -> claimed
func (r *BountyRepository) Claim(ctx context.Context, id, memberID string) error {
	return r.transition(ctx, id, model.BountyStatusOpen, map[string]any{
		"status":      model.BountyStatusClaimed,
		"assignee_id": memberID,
	}, "bounty.claimed", memberID)
}

// Complete claimed -> completed
func (r *BountyRepository) Complete(ctx context.Context, id, reviewer string) error {
	return r.transition(ctx, id, model.BountyStatusClaimed, map[string]any{
		"status": model.BountyStatusCompleted,
	}, "bounty.completed", reviewer)
}

func (r *BountyRepository) Delete(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&model.Bounty{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

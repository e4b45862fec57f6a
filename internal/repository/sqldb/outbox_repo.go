package sqldb

import (
	"context"

	"Club_Portal/internal/model"

	"gorm.io/gorm"
)

type OutboxRepository struct {
	DB *gorm.DB
}

// maxRetry 超过次数的失败事件不再自动重投
const maxRetry = 5

// List outbox 查询待投递（含可重试的失败）事件
func (r *OutboxRepository) List(ctx context.Context, batchSize int) ([]model.ClubOutbox, error) {
	var list []model.ClubOutbox
	if err := r.DB.WithContext(ctx).
		Where("status = ? OR (status = ? AND retry < ?)", model.OutboxPending, model.OutboxFailed, maxRetry).
		Order("id ASC").
		Limit(batchSize).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// RetryUpdate 投递失败，记录重试次数
func (r *OutboxRepository) RetryUpdate(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.ClubOutbox{}).Where("id = ?", id).
		Updates(map[string]any{"status": model.OutboxFailed, "retry": gorm.Expr("retry + 1")}).Error
}

// SuccessUpdate 投递成功
func (r *OutboxRepository) SuccessUpdate(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.ClubOutbox{}).Where("id = ?", id).
		Update("status", model.OutboxSent).Error
}

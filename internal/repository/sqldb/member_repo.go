package sqldb

import (
	"context"

	"Club_Portal/internal/model"

	"gorm.io/gorm"
)

type MemberRepository struct {
	DB *gorm.DB
}

// FindActiveByWallet 钱包地址精确匹配且处于激活状态
func (r *MemberRepository) FindActiveByWallet(ctx context.Context, wallet string) (*model.Member, error) {
	var m model.Member
	err := r.DB.WithContext(ctx).
		Where("wallet_address = ? AND is_active = ?", wallet, true).
		First(&m).Error
	if err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

func (r *MemberRepository) FindByID(ctx context.Context, id string) (*model.Member, error) {
	var m model.Member
	if err := r.DB.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

func (r *MemberRepository) List(ctx context.Context, offset, limit int) ([]model.Member, error) {
	var list []model.Member
	err := r.DB.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *MemberRepository) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.Member{}).Where("is_active = ?", true).Count(&n).Error
	return n, err
}

// CreateWithinLimit 事务内校验名额与钱包唯一后插入；名额满或钱包已存在时不写任何数据
func (r *MemberRepository) CreateWithinLimit(ctx context.Context, m *model.Member, limit int, actor string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var active int64
		if err := tx.Model(&model.Member{}).Where("is_active = ?", true).Count(&active).Error; err != nil {
			return err
		}
		if active >= int64(limit) {
			return ErrRosterFull
		}

		var existing int64
		if err := tx.Model(&model.Member{}).Where("wallet_address = ?", m.WalletAddress).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrDuplicate
		}

		if err := tx.Create(m).Error; err != nil {
			return translate(err)
		}
		return insertOutbox(tx, "member.registered", m.ID, actor, map[string]any{
			"name": m.Name,
			"role": m.Role,
		})
	})
}

// UpdateProfile 只更新 columns 指定的列，钱包、角色、激活状态不在可写范围内
func (r *MemberRepository) UpdateProfile(ctx context.Context, m *model.Member, columns []string) error {
	var allowed []string
	for _, c := range columns {
		switch c {
		case "id", "wallet_address", "role", "is_active", "created_at":
			continue
		}
		allowed = append(allowed, c)
	}
	if len(allowed) == 0 {
		return nil
	}
	res := r.DB.WithContext(ctx).Model(m).
		Where("is_active = ?", true).
		Select(allowed).
		Updates(m)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"

	"Club_Portal/internal/model"
	"Club_Portal/internal/pkg"
	"Club_Portal/internal/repository/sqldb"

	"go.uber.org/zap"
)

// MemberLookup 按钱包查激活成员
type MemberLookup interface {
	FindActiveByWallet(ctx context.Context, wallet string) (*model.Member, error)
}

// WalletResolver 钱包地址 -> 激活成员，每次请求都重新查询
type WalletResolver struct {
	lookup MemberLookup
	log    *zap.Logger
}

func NewWalletResolver(lookup MemberLookup, log *zap.Logger) *WalletResolver {
	return &WalletResolver{lookup: lookup, log: log}
}

// Resolve 格式不合法时直接拒绝，不触发查询
func (r *WalletResolver) Resolve(ctx context.Context, wallet string) (*model.Member, error) {
	wallet = pkg.NormalizeWallet(wallet)
	if err := pkg.ValidateWallet(wallet); err != nil {
		if errors.Is(err, pkg.ErrWalletEmpty) {
			pkg.AuthOutcomes.WithLabelValues("missing").Inc()
			return nil, ErrWalletMissing
		}
		pkg.AuthOutcomes.WithLabelValues("invalid").Inc()
		return nil, ErrWalletInvalid
	}

	m, err := r.lookup.FindActiveByWallet(ctx, wallet)
	switch {
	case err == nil:
		pkg.AuthOutcomes.WithLabelValues("ok").Inc()
		return m, nil
	case errors.Is(err, sqldb.ErrNotFound):
		pkg.AuthOutcomes.WithLabelValues("not_found").Inc()
		return nil, ErrMemberNotFound
	default:
		pkg.AuthOutcomes.WithLabelValues("error").Inc()
		r.log.Error("member lookup failed", zap.String("wallet", wallet), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrAuthUnavailable, err)
	}
}

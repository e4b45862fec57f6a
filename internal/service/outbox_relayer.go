package service

import (
	"context"
	"strconv"
	"time"

	"Club_Portal/internal/model"
	"Club_Portal/internal/pkg"
	"Club_Portal/internal/repository/sqldb"

	"go.uber.org/zap"
)

type Sender func(ctx context.Context, ob *model.ClubOutbox) error

// OutboxRelayer 从 club_outbox 读取待投递事件交给 sender
type OutboxRelayer struct {
	repo      *sqldb.OutboxRepository
	batchSize int
	interval  time.Duration
	sender    Sender
	log       *zap.Logger
}

func NewOutboxRelayer(repo *sqldb.OutboxRepository, sender Sender, log *zap.Logger) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      repo,
		batchSize: 200,
		interval:  time.Second,
		sender:    sender,
		log:       log,
	}
}

// Run outbox启动器
func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.DrainOnce(ctx)
		}
	}
}

// DrainOnce 投递一批，返回成功条数
func (r *OutboxRelayer) DrainOnce(ctx context.Context) int {
	rows, err := r.repo.List(ctx, r.batchSize)
	if err != nil {
		r.log.Warn("outbox query failed", zap.Error(err))
		return 0
	}
	sent := 0
	for i := range rows {
		ob := rows[i]
		if err = r.sender(ctx, &ob); err != nil {
			pkg.OutboxDelivered.WithLabelValues("retry").Inc()
			r.log.Warn("outbox send failed", zap.Uint64("id", ob.ID), zap.String("type", ob.EventType), zap.Error(err))
			if err = r.repo.RetryUpdate(ctx, ob.ID); err != nil {
				r.log.Error("outbox retry update failed", zap.Uint64("id", ob.ID), zap.Error(err))
			}
			continue
		}
		pkg.OutboxDelivered.WithLabelValues("sent").Inc()
		if err = r.repo.SuccessUpdate(ctx, ob.ID); err != nil {
			r.log.Error("outbox success update failed", zap.Uint64("id", ob.ID), zap.Error(err))
			continue
		}
		sent++
	}
	return sent
}

// KafkaSender 以聚合 id 为 key，保证同一记录的事件有序
func KafkaSender(p *pkg.KafkaProducer) Sender {
	return func(ctx context.Context, ob *model.ClubOutbox) error {
		return p.Send(ctx, ob.AggregateID, []byte(ob.Payload), map[string]string{
			"event_type": ob.EventType,
			"outbox_id":  strconv.FormatUint(ob.ID, 10),
			"actor":      ob.ActorID,
		})
	}
}

// LogSender 未配置 kafka 时只记录日志
func LogSender(log *zap.Logger) Sender {
	return func(_ context.Context, ob *model.ClubOutbox) error {
		log.Info("outbox event",
			zap.String("type", ob.EventType),
			zap.String("aggregate", ob.AggregateID),
			zap.String("actor", ob.ActorID),
			zap.String("payload", ob.Payload))
		return nil
	}
}

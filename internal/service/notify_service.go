package service

import (
	"context"
	"time"

	"buddyboard/internal/model"
	"buddyboard/internal/pkg"
	"buddyboard/internal/repository/mysql"

	"go.uber.org/zap"
)

type Sender func(ctx context.Context, ob *model.NotifyOutbox) error

// OutboxRelayer drains pending notification rows and hands them to a sender.
// Failed rows are marked for retry instead of blocking the batch.
type OutboxRelayer struct {
	repo      *mysql.OutboxRepository
	batchSize int
	interval  time.Duration
	sender    Sender
	logger    *zap.Logger
}

func NewOutboxRelayer(sender Sender, logger *zap.Logger) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      mysql.NewOutboxRepository(),
		batchSize: 200,
		interval:  time.Second,
		sender:    sender,
		logger:    logger,
	}
}

func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.drainOnce(ctx)
		}
	}
}

func (r *OutboxRelayer) drainOnce(ctx context.Context) {
	rows, err := r.repo.List(ctx, r.batchSize)
	if err != nil {
		r.logger.Warn("outbox query failed", zap.Error(err))
		return
	}
	for i := range rows {
		ob := rows[i]
		if err = r.sender(ctx, &ob); err != nil {
			r.logger.Warn("outbox send failed",
				zap.Uint64("id", ob.ID), zap.String("event", ob.EventType), zap.Error(err))
			_ = r.repo.RetryUpdate(ctx, ob.ID)
			continue
		}
		_ = r.repo.SuccessUpdate(ctx, ob.ID)
	}
}

// KafkaSender publishes outbox rows keyed by subject id so events for one
// post or message stay ordered.
func KafkaSender(producer *pkg.KafkaProducer) Sender {
	return func(ctx context.Context, ob *model.NotifyOutbox) error {
		return producer.Send(ctx, pkg.MakeKeyFromID(ob.SubjectID), []byte(ob.Payload))
	}
}

// LogSender is the fallback when no broker is configured.
func LogSender(logger *zap.Logger) Sender {
	return func(ctx context.Context, ob *model.NotifyOutbox) error {
		logger.Info("outbox event",
			zap.String("event", ob.EventType),
			zap.Uint64("actor", ob.ActorID),
			zap.Uint64("subject", ob.SubjectID))
		return nil
	}
}

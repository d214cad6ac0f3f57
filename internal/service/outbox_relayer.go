package service

import (
	"context"
	"time"

	"Haven_Community/internal/model"
	"Haven_Community/internal/pkg"
	"Haven_Community/internal/repository/mysql"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Sender func(ctx context.Context, ob *model.CommunityOutbox) error

// OutboxRelayer 定时把 community_outbox 的待投递事件刷给 sender
type OutboxRelayer struct {
	repo      *mysql.OutboxRepository
	batchSize int
	interval  time.Duration
	sender    Sender
}

func NewOutboxRelayer(db *gorm.DB, sender Sender) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      &mysql.OutboxRepository{DB: db},
		batchSize: 200,
		interval:  time.Second,
		sender:    sender,
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
		logrus.WithError(err).Warn("outbox query failed")
		return
	}
	for i := range rows {
		ob := rows[i]
		if err = r.sender(ctx, &ob); err != nil {
			logrus.WithError(err).WithField("id", ob.ID).Warn("outbox send failed")
			_ = r.repo.MarkFailed(ctx, ob.ID)
			continue
		}
		_ = r.repo.MarkSent(ctx, ob.ID)
	}
}

// KafkaSender 事件按社区分区投递
func KafkaSender(producer *pkg.KafkaProducer) Sender {
	return func(ctx context.Context, ob *model.CommunityOutbox) error {
		return producer.Send(ctx, pkg.MakeKeyFromID(ob.CommunityID), []byte(ob.Payload))
	}
}

// LogSender 没配 kafka 时的兜底 sender
func LogSender(ctx context.Context, ob *model.CommunityOutbox) error {
	logrus.WithFields(logrus.Fields{
		"type":      ob.EventType,
		"community": ob.CommunityID,
		"actor":     ob.ActorID,
		"target":    ob.TargetID,
	}).Info("outbox send")
	return nil
}

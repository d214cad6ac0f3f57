package service

import (
	"context"
	"errors"

	"Haven_Community/internal/repository/mysql"

	"gorm.io/gorm"
)

type SubscriptionService struct {
	repo *mysql.UnlockRepository
}

func NewSubscriptionService(db *gorm.DB) *SubscriptionService {
	return &SubscriptionService{
		repo: &mysql.UnlockRepository{DB: db},
	}
}

// Subscribe 幂等；非成员订阅顺带入会
func (s *SubscriptionService) Subscribe(ctx context.Context, accountID, communityID uint64) error {
	if accountID == 0 || communityID == 0 {
		return errors.New("invalid id")
	}
	return s.repo.Subscribe(ctx, accountID, communityID)
}

// Unsubscribe 幂等；不动成员关系
func (s *SubscriptionService) Unsubscribe(ctx context.Context, accountID, communityID uint64) error {
	if accountID == 0 || communityID == 0 {
		return errors.New("invalid id")
	}
	return s.repo.Unsubscribe(ctx, accountID, communityID)
}

func (s *SubscriptionService) IsUnlocked(ctx context.Context, accountID, communityID uint64) (bool, error) {
	return s.repo.IsUnlocked(ctx, accountID, communityID)
}

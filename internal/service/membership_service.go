package service

import (
	"context"
	"errors"

	"Haven_Community/internal/repository/mysql"

	"gorm.io/gorm"
)

type MembershipService struct {
	repo *mysql.MembershipRepository
}

func NewMembershipService(db *gorm.DB) *MembershipService {
	return &MembershipService{
		repo: &mysql.MembershipRepository{DB: db},
	}
}

func (s *MembershipService) Join(ctx context.Context, accountID, communityID uint64) error {
	if accountID == 0 || communityID == 0 {
		return errors.New("invalid id")
	}
	return s.repo.Join(ctx, accountID, communityID)
}

func (s *MembershipService) Leave(ctx context.Context, accountID, communityID uint64) error {
	if accountID == 0 || communityID == 0 {
		return errors.New("invalid id")
	}
	return s.repo.Leave(ctx, accountID, communityID)
}

func (s *MembershipService) SetRole(ctx context.Context, actorID, communityID, targetID uint64, newRole int) error {
	if actorID == 0 || communityID == 0 || targetID == 0 {
		return errors.New("invalid id")
	}
	return s.repo.SetRole(ctx, actorID, communityID, targetID, newRole)
}

func (s *MembershipService) Remove(ctx context.Context, actorID, communityID, targetID uint64) error {
	if actorID == 0 || communityID == 0 || targetID == 0 {
		return errors.New("invalid id")
	}
	return s.repo.Remove(ctx, actorID, communityID, targetID)
}

func (s *MembershipService) SetPremiumPublish(ctx context.Context, actorID, communityID, targetID uint64, allowed bool) error {
	if actorID == 0 || communityID == 0 || targetID == 0 {
		return errors.New("invalid id")
	}
	return s.repo.SetPremiumPublish(ctx, actorID, communityID, targetID, allowed)
}

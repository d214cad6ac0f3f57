package service

import (
	"context"
	"errors"

	"Haven_Community/internal/repository/mysql"

	"gorm.io/gorm"
)

type ReactionService struct {
	repo *mysql.ReactionRepository
}

func NewReactionService(db *gorm.DB) *ReactionService {
	return &ReactionService{
		repo: &mysql.ReactionRepository{DB: db},
	}
}

func (s *ReactionService) Toggle(ctx context.Context, accountID, postID uint64) (bool, error) {
	if accountID == 0 || postID == 0 {
		return false, errors.New("invalid id")
	}
	return s.repo.Toggle(ctx, accountID, postID)
}

func (s *ReactionService) IsLiked(ctx context.Context, accountID, postID uint64) (bool, error) {
	if accountID == 0 || postID == 0 {
		return false, errors.New("invalid id")
	}
	return s.repo.IsLiked(ctx, accountID, postID)
}

func (s *ReactionService) LikeCount(ctx context.Context, postID uint64) (int64, error) {
	return s.repo.LikeCount(ctx, postID)
}

package service

import (
	"context"
	"errors"

	"Haven_Community/internal/authz"
	"Haven_Community/internal/model"
	"Haven_Community/internal/repository/mysql"

	"gorm.io/gorm"
)

type CommentService struct {
	db   *gorm.DB
	repo *mysql.CommentRepository
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{
		db:   db,
		repo: &mysql.CommentRepository{DB: db},
	}
}

func (s *CommentService) Create(ctx context.Context, accountID, postID uint64, content string) (*model.Comment, error) {
	if content == "" {
		return nil, errors.New("content required")
	}
	return s.repo.Create(ctx, accountID, postID, content)
}

// ListByPost 评论列表同样先过社区闸门
func (s *CommentService) ListByPost(ctx context.Context, accountID, postID uint64, cursor uint64, limit int) ([]model.Comment, uint64, error) {
	ac, _, err := authz.ResolvePost(s.db, accountID, postID)
	if err != nil {
		return nil, 0, err
	}
	if err = authz.GateCommunity(ac, authz.ModeListing); err != nil {
		return nil, 0, err
	}
	return s.repo.ListByPost(ctx, postID, cursor, limit)
}

func (s *CommentService) Update(ctx context.Context, accountID, commentID uint64, content string) error {
	if content == "" {
		return errors.New("content required")
	}
	return s.repo.Update(ctx, accountID, commentID, content)
}

func (s *CommentService) Delete(ctx context.Context, accountID, commentID uint64) error {
	return s.repo.Delete(ctx, accountID, commentID)
}

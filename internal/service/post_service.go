package service

import (
	"context"
	"errors"

	"Haven_Community/internal/authz"
	"Haven_Community/internal/model"
	"Haven_Community/internal/repository/mysql"

	"gorm.io/gorm"
)

type PostService struct {
	db   *gorm.DB
	repo *mysql.PostRepository
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{
		db:   db,
		repo: &mysql.PostRepository{DB: db},
	}
}

func (s *PostService) Create(ctx context.Context, accountID, communityID uint64, title, content string, premium bool) (*model.Post, error) {
	if title == "" {
		return nil, errors.New("title required")
	}
	return s.repo.Create(ctx, accountID, communityID, title, content, premium)
}

// Get 详情走可见性引擎：付费帖未解锁的详情请求是硬拒绝
func (s *PostService) Get(accountID, postID uint64) (*model.Post, error) {
	ac, post, err := authz.ResolvePost(s.db, accountID, postID)
	if err != nil {
		return nil, err
	}
	return authz.ResolveVisibility(post, ac, authz.ModeDetail)
}

// ListByCommunity 列表先过社区闸门，再逐帖过可见性引擎打码。
// 列表永远不因付费墙报错，最多正文换占位符。
func (s *PostService) ListByCommunity(ctx context.Context, accountID, communityID uint64, cursor uint64, limit int) ([]model.Post, uint64, error) {
	ac, err := authz.ResolveCommunity(s.db, accountID, communityID)
	if err != nil {
		return nil, 0, err
	}
	if err = authz.GateCommunity(ac, authz.ModeListing); err != nil {
		return nil, 0, err
	}

	rows, next, err := s.repo.ListByCommunity(ctx, communityID, cursor, limit)
	if err != nil {
		return nil, 0, err
	}

	out := make([]model.Post, 0, len(rows))
	for i := range rows {
		visible, err := authz.ResolveVisibility(&rows[i], ac, authz.ModeListing)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *visible)
	}
	return out, next, nil
}

func (s *PostService) Update(ctx context.Context, accountID, postID uint64, title, content string) error {
	if title == "" {
		return errors.New("title required")
	}
	return s.repo.Update(ctx, accountID, postID, title, content)
}

func (s *PostService) Delete(ctx context.Context, accountID, postID uint64) error {
	return s.repo.Delete(ctx, accountID, postID)
}

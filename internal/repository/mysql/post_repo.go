package mysql

import (
	"context"

	"Haven_Community/internal/authz"
	"Haven_Community/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

// Create 发帖授权和落库同一事务；premium 标记要单独过 PublishPremium 这关
func (r *PostRepository) Create(ctx context.Context, accountID, communityID uint64, title, content string, premium bool) (*model.Post, error) {
	var post *model.Post
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ac, err := authz.ResolveCommunity(tx, accountID, communityID)
		if err != nil {
			return err
		}
		if err = authz.Authorize(authz.ActionCreatePost, ac); err != nil {
			return err
		}
		if premium {
			if err = authz.Authorize(authz.ActionPublishPremium, ac); err != nil {
				return err
			}
		}
		post = &model.Post{
			CommunityID: communityID,
			AuthorID:    accountID,
			Title:       title,
			Content:     content,
			Premium:     premium,
		}
		return tx.Create(post).Error
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (r *PostRepository) FindByID(id uint64) (*model.Post, error) {
	var post model.Post
	err := r.DB.First(&post, id).Error
	return &post, err
}

// ListByCommunity id 游标分页，limit+1 判断是否还有下一页
func (r *PostRepository) ListByCommunity(ctx context.Context, communityID uint64, cursor uint64, limit int) ([]model.Post, uint64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	q := r.DB.WithContext(ctx).Where("community_id = ?", communityID)
	if cursor > 0 {
		q = q.Where("id < ?", cursor)
	}
	var rows []model.Post
	if err := q.Order("id DESC").Limit(limit + 1).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	var next uint64
	if len(rows) > limit {
		next = rows[limit-1].ID
		rows = rows[:limit]
	}
	return rows, next, nil
}

// Update 只有作者能改标题正文；premium 不在可改集合里
func (r *PostRepository) Update(ctx context.Context, accountID, postID uint64, title, content string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ac, _, err := authz.ResolvePost(tx, accountID, postID)
		if err != nil {
			return err
		}
		if err = authz.Authorize(authz.ActionEditPost, ac); err != nil {
			return err
		}
		return tx.Model(&model.Post{}).Where("id = ?", postID).
			Updates(map[string]any{"title": title, "content": content}).Error
	})
}

// Delete 作者/创建者/版主可删，连带评论和点赞一个事务清掉
func (r *PostRepository) Delete(ctx context.Context, accountID, postID uint64) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ac, _, err := authz.ResolvePost(tx, accountID, postID)
		if err != nil {
			return err
		}
		if err = authz.Authorize(authz.ActionDeletePost, ac); err != nil {
			return err
		}
		if err = tx.Where("post_id = ?", postID).Delete(&model.Reaction{}).Error; err != nil {
			return err
		}
		if err = tx.Where("post_id = ?", postID).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, postID).Error
	})
}

package mysql

import (
	"context"
	"errors"

	"Haven_Community/internal/authz"
	"Haven_Community/internal/model"

	"gorm.io/gorm"
)

type ReactionRepository struct {
	DB *gorm.DB
}

// Toggle 点赞开关：有记录就删并减计数，没有就插并加计数。
// 返回 toggle 之后是否处于已点赞状态。
func (r *ReactionRepository) Toggle(ctx context.Context, accountID, postID uint64) (liked bool, err error) {
	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ac, _, err := authz.ResolvePost(tx, accountID, postID)
		if err != nil {
			return err
		}
		if err = authz.Authorize(authz.ActionToggleReaction, ac); err != nil {
			return err
		}

		var reaction model.Reaction
		err = lockForUpdate(tx).
			Where("account_id = ? AND post_id = ?", accountID, postID).
			First(&reaction).Error
		if err == nil {
			if err = tx.Delete(&reaction).Error; err != nil {
				return err
			}
			liked = false
			return tx.Model(&model.Post{}).Where("id = ?", postID).
				UpdateColumn("like_count", gorm.Expr("CASE WHEN like_count > 0 THEN like_count - 1 ELSE 0 END")).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err = tx.Create(&model.Reaction{AccountID: accountID, PostID: postID}).Error; err != nil {
			return err
		}
		liked = true
		return tx.Model(&model.Post{}).Where("id = ?", postID).
			UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error
	})
	return liked, err
}

func (r *ReactionRepository) IsLiked(ctx context.Context, accountID, postID uint64) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.Reaction{}).
		Where("account_id = ? AND post_id = ?", accountID, postID).
		Count(&count).Error
	return count > 0, err
}

func (r *ReactionRepository) LikeCount(ctx context.Context, postID uint64) (int64, error) {
	var p model.Post
	err := r.DB.WithContext(ctx).Select("id", "like_count").First(&p, postID).Error
	if err != nil {
		return 0, err
	}
	return p.LikeCount, nil
}

// ReconcileLikeCounts 用 reactions 表的真实计数修正帖子上的冗余计数
func (r *ReactionRepository) ReconcileLikeCounts(ctx context.Context, batchSize int, lastID uint64) (nextID uint64, err error) {
	var posts []model.Post
	if err = r.DB.WithContext(ctx).Model(&model.Post{}).
		Select("id", "like_count").
		Where("id > ?", lastID).
		Order("id ASC").
		Limit(batchSize).
		Find(&posts).Error; err != nil {
		return lastID, err
	}
	if len(posts) == 0 {
		return lastID, nil
	}
	for _, p := range posts {
		var real int64
		if err := r.DB.WithContext(ctx).Model(&model.Reaction{}).
			Where("post_id = ?", p.ID).Count(&real).Error; err != nil {
			continue
		}
		if real != p.LikeCount {
			_ = r.DB.WithContext(ctx).Model(&model.Post{}).Where("id = ?", p.ID).
				UpdateColumn("like_count", real).Error
		}
	}
	return posts[len(posts)-1].ID, nil
}

package mysql

import (
	"context"

	"Haven_Community/internal/authz"
	"Haven_Community/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	DB *gorm.DB
}

// Create 任意角色的成员（含创建者）都能评论
func (r *CommentRepository) Create(ctx context.Context, accountID, postID uint64, content string) (*model.Comment, error) {
	var comment *model.Comment
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ac, _, err := authz.ResolvePost(tx, accountID, postID)
		if err != nil {
			return err
		}
		if err = authz.Authorize(authz.ActionCreateComment, ac); err != nil {
			return err
		}
		comment = &model.Comment{
			PostID:   postID,
			AuthorID: accountID,
			Content:  content,
		}
		return tx.Create(comment).Error
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID uint64, cursor uint64, limit int) ([]model.Comment, uint64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	q := r.DB.WithContext(ctx).Where("post_id = ?", postID)
	if cursor > 0 {
		q = q.Where("id < ?", cursor)
	}
	var rows []model.Comment
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

func (r *CommentRepository) Update(ctx context.Context, accountID, commentID uint64, content string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ac, _, err := authz.ResolveComment(tx, accountID, commentID)
		if err != nil {
			return err
		}
		if err = authz.Authorize(authz.ActionEditComment, ac); err != nil {
			return err
		}
		return tx.Model(&model.Comment{}).Where("id = ?", commentID).
			Update("content", content).Error
	})
}

func (r *CommentRepository) Delete(ctx context.Context, accountID, commentID uint64) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ac, _, err := authz.ResolveComment(tx, accountID, commentID)
		if err != nil {
			return err
		}
		if err = authz.Authorize(authz.ActionDeleteComment, ac); err != nil {
			return err
		}
		return tx.Delete(&model.Comment{}, commentID).Error
	})
}

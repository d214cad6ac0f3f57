package mysql

import (
	"context"

	"Haven_Community/internal/authz"
	"Haven_Community/internal/model"

	"gorm.io/gorm"
)

type CommunityRepository struct {
	DB *gorm.DB
}

// Create 社区和 Creator 成员行同一事务写入，Creator 角色只在这里产生
func (r *CommunityRepository) Create(c *model.Community) (*model.Community, error) {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		return tx.Create(&model.Membership{
			CommunityID: c.ID,
			AccountID:   c.CreatorID,
			Role:        model.RoleCreator,
		}).Error
	})
	return c, err
}

func (r *CommunityRepository) FindByID(id uint64) (*model.Community, error) {
	var community model.Community
	err := r.DB.First(&community, id).Error
	return &community, err
}

func (r *CommunityRepository) FindByName(name string) (*model.Community, error) {
	var community model.Community
	err := r.DB.Where("name = ?", name).First(&community).Error
	return &community, err
}

// List 只列公开社区，私有社区不对外暴露存在
func (r *CommunityRepository) List(offset, limit int) ([]model.Community, error) {
	var list []model.Community
	err := r.DB.Where("private = ?", false).
		Order("id desc").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

// UpdateProfile 仅创建者；授权和写入同一事务
func (r *CommunityRepository) UpdateProfile(ctx context.Context, actorID, communityID uint64, description string, private bool) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ac, err := authz.ResolveCommunity(tx, actorID, communityID)
		if err != nil {
			return err
		}
		if err = authz.Authorize(authz.ActionUpdateCommunity, ac); err != nil {
			return err
		}
		return tx.Model(&model.Community{}).Where("id = ?", communityID).
			Updates(map[string]any{"description": description, "private": private}).Error
	})
}

// UpdateMedia 换社区配图，返回旧 key 供提交后尽力清理
func (r *CommunityRepository) UpdateMedia(ctx context.Context, actorID, communityID uint64, url, key string) (oldKey string, err error) {
	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ac, err := authz.ResolveCommunity(tx, actorID, communityID)
		if err != nil {
			return err
		}
		if err = authz.Authorize(authz.ActionUpdateCommunity, ac); err != nil {
			return err
		}
		var community model.Community
		if err := lockForUpdate(tx).First(&community, communityID).Error; err != nil {
			return err
		}
		oldKey = community.MediaKey
		return tx.Model(&community).Updates(map[string]any{
			"media_url": url,
			"media_key": key,
		}).Error
	})
	return oldKey, err
}

// DeleteCascade 级联删除必须一个事务做完：帖子的点赞和评论、帖子、
// 成员、订阅、outbox、社区本体。半途而废就是破坏不变式。
// 返回需要删的远端媒体 key，由调用方在提交之后尽力清理。
func (r *CommunityRepository) DeleteCascade(ctx context.Context, actorID, communityID uint64) (mediaKeys []string, err error) {
	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ac, err := authz.ResolveCommunity(tx, actorID, communityID)
		if err != nil {
			return err
		}
		if err = authz.Authorize(authz.ActionDeleteCommunity, ac); err != nil {
			return err
		}

		var community model.Community
		if err := lockForUpdate(tx).First(&community, communityID).Error; err != nil {
			return err
		}
		if community.MediaKey != "" {
			mediaKeys = append(mediaKeys, community.MediaKey)
		}

		if err := tx.Exec(
			`DELETE FROM reactions WHERE post_id IN (SELECT id FROM posts WHERE community_id = ?)`,
			communityID).Error; err != nil {
			return err
		}
		if err := tx.Exec(
			`DELETE FROM comments WHERE post_id IN (SELECT id FROM posts WHERE community_id = ?)`,
			communityID).Error; err != nil {
			return err
		}
		if err := tx.Where("community_id = ?", communityID).Delete(&model.Post{}).Error; err != nil {
			return err
		}
		if err := tx.Where("community_id = ?", communityID).Delete(&model.Membership{}).Error; err != nil {
			return err
		}
		if err := tx.Where("community_id = ?", communityID).Delete(&model.PremiumUnlock{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Community{}, communityID).Error
	})
	if err != nil {
		return nil, err
	}
	return mediaKeys, nil
}

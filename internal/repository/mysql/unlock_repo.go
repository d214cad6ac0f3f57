package mysql

import (
	"context"
	"errors"
	"fmt"

	"Haven_Community/internal/authz"
	"Haven_Community/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UnlockRepository struct {
	DB *gorm.DB
}

// Subscribe 幂等订阅。非成员订阅时顺带以 Member 加入（订阅即加入）。
func (r *UnlockRepository) Subscribe(ctx context.Context, accountID, communityID uint64) error {
	if accountID == 0 {
		return authz.ErrUnauthorized
	}
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var comm model.Community
		if err := tx.First(&comm, communityID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return authz.ErrNotFound
			}
			return fmt.Errorf("%w: %v", authz.ErrUpstream, err)
		}

		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}, {Name: "community_id"}},
			DoNothing: true,
		}).Create(&model.PremiumUnlock{AccountID: accountID, CommunityID: communityID})
		if res.Error != nil {
			return res.Error
		}
		// 已经订阅过，重复调用直接成功
		if res.RowsAffected == 0 {
			return nil
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "community_id"}, {Name: "account_id"}},
			DoNothing: true,
		}).Create(&model.Membership{
			CommunityID: communityID,
			AccountID:   accountID,
			Role:        model.RoleMember,
		}).Error; err != nil {
			return err
		}
		return insertOutbox(tx, "subscribe", communityID, accountID, accountID)
	})
}

// Unsubscribe 幂等退订，成员关系不动
func (r *UnlockRepository) Unsubscribe(ctx context.Context, accountID, communityID uint64) error {
	if accountID == 0 {
		return authz.ErrUnauthorized
	}
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("account_id = ? AND community_id = ?", accountID, communityID).
			Delete(&model.PremiumUnlock{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		return insertOutbox(tx, "unsubscribe", communityID, accountID, accountID)
	})
}

func (r *UnlockRepository) IsUnlocked(ctx context.Context, accountID, communityID uint64) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.PremiumUnlock{}).
		Where("account_id = ? AND community_id = ?", accountID, communityID).
		Count(&count).Error
	return count > 0, err
}

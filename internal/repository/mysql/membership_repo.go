package mysql

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"Haven_Community/internal/authz"
	"Haven_Community/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MembershipRepository struct {
	DB *gorm.DB
}

// Join NonMember -> Member。唯一索引 + DoNothing 保证并发重复 join 只留一行
func (r *MembershipRepository) Join(ctx context.Context, accountID, communityID uint64) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ac, err := authz.ResolveCommunity(tx, accountID, communityID)
		if err != nil {
			return err
		}
		if err = authz.CheckTransition(authz.TransitionJoin, ac, nil, 0); err != nil {
			return err
		}

		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "community_id"}, {Name: "account_id"}},
			DoNothing: true,
		}).Create(&model.Membership{
			CommunityID: communityID,
			AccountID:   accountID,
			Role:        model.RoleMember,
		})
		if res.Error != nil {
			return res.Error
		}
		// 守卫过了但插入落空，说明并发里已有别的 join 先落库
		if res.RowsAffected == 0 {
			return authz.ErrConflict
		}
		return insertOutbox(tx, "join", communityID, accountID, accountID)
	})
}

// Leave Member|Moderator -> NonMember。创建者禁止退出
func (r *MembershipRepository) Leave(ctx context.Context, accountID, communityID uint64) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ac, err := authz.ResolveCommunity(tx, accountID, communityID)
		if err != nil {
			return err
		}
		if err = authz.CheckTransition(authz.TransitionLeave, ac, nil, 0); err != nil {
			return err
		}
		if err = tx.Where("community_id = ? AND account_id = ?", communityID, accountID).
			Delete(&model.Membership{}).Error; err != nil {
			return err
		}
		return insertOutbox(tx, "leave", communityID, accountID, accountID)
	})
}

// SetRole 仅创建者可调；同角色重复设置是无动作的成功
func (r *MembershipRepository) SetRole(ctx context.Context, actorID, communityID, targetID uint64, newRole int) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ac, err := authz.ResolveCommunity(tx, actorID, communityID)
		if err != nil {
			return err
		}
		target, row, err := lockTarget(tx, communityID, targetID)
		if err != nil {
			return err
		}
		if err = authz.CheckTransition(authz.TransitionSetRole, ac, target, newRole); err != nil {
			return err
		}
		if target.Role == newRole {
			return nil
		}

		updates := map[string]any{"role": newRole}
		if newRole != model.RoleModerator {
			// 降级回 Member 时发布权一并收回
			updates["can_publish_premium"] = false
		}
		if err = tx.Model(row).Updates(updates).Error; err != nil {
			return err
		}
		return insertOutbox(tx, "role_change", communityID, actorID, targetID)
	})
}

// Remove 仅创建者可调，不能移除自己或 Creator 角色
func (r *MembershipRepository) Remove(ctx context.Context, actorID, communityID, targetID uint64) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ac, err := authz.ResolveCommunity(tx, actorID, communityID)
		if err != nil {
			return err
		}
		target, row, err := lockTarget(tx, communityID, targetID)
		if err != nil {
			return err
		}
		if err = authz.CheckTransition(authz.TransitionRemove, ac, target, 0); err != nil {
			return err
		}
		if err = tx.Delete(row).Error; err != nil {
			return err
		}
		return insertOutbox(tx, "remove", communityID, actorID, targetID)
	})
}

// SetPremiumPublish 仅创建者可调，目标必须是 Moderator
func (r *MembershipRepository) SetPremiumPublish(ctx context.Context, actorID, communityID, targetID uint64, allowed bool) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ac, err := authz.ResolveCommunity(tx, actorID, communityID)
		if err != nil {
			return err
		}
		target, row, err := lockTarget(tx, communityID, targetID)
		if err != nil {
			return err
		}
		if err = authz.CheckTransition(authz.TransitionSetPremiumPublish, ac, target, 0); err != nil {
			return err
		}
		if err = tx.Model(row).Update("can_publish_premium", allowed).Error; err != nil {
			return err
		}
		return insertOutbox(tx, "premium_publish", communityID, actorID, targetID)
	})
}

func (r *MembershipRepository) ListByCommunity(ctx context.Context, communityID uint64, cursor uint64, limit int) ([]model.Membership, uint64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	q := r.DB.WithContext(ctx).Model(&model.Membership{}).
		Where("community_id = ?", communityID)
	if cursor > 0 {
		q = q.Where("id < ?", cursor)
	}
	var rows []model.Membership
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

// lockTarget select for update 锁出目标成员当前角色
func lockTarget(tx *gorm.DB, communityID, targetID uint64) (*authz.MemberFacts, *model.Membership, error) {
	var m model.Membership
	err := lockForUpdate(tx).
		Where("community_id = ? AND account_id = ?", communityID, targetID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &authz.MemberFacts{AccountID: targetID}, nil, nil
		}
		return nil, nil, err
	}
	return &authz.MemberFacts{AccountID: targetID, Role: m.Role, Found: true}, &m, nil
}

// 事件和状态变更同一事务落库，由 relayer 异步投递
func insertOutbox(tx *gorm.DB, event string, communityID, actorID, targetID uint64) error {
	payload, _ := json.Marshal(map[string]any{
		"event_time":   time.Now().UTC().Format(time.RFC3339Nano),
		"community_id": communityID,
		"actor":        actorID,
		"target":       targetID,
	})
	ob := &model.CommunityOutbox{
		EventType:   event,
		CommunityID: communityID,
		ActorID:     actorID,
		TargetID:    targetID,
		Payload:     string(payload),
		Status:      0,
	}
	return tx.Create(ob).Error
}

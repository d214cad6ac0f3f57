package model

import "time"

// 成员角色。Creator 在建社区时一次性写入，之后不允许转入或转出。
const (
	RoleMember    = 0
	RoleModerator = 1
	RoleCreator   = 2
)

type Community struct {
	ID          uint64 `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;size:64;not null"`
	Description string `gorm:"type:text"`
	Private     bool   `gorm:"not null;default:false"`
	CreatorID   uint64 `gorm:"not null;index"`
	MediaURL    string `gorm:"size:1024"`
	MediaKey    string `gorm:"size:128"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Membership (community_id, account_id) 唯一，并发重复 join 只会留下一行
type Membership struct {
	ID                uint64 `gorm:"primaryKey"`
	CommunityID       uint64 `gorm:"not null;index;uniqueIndex:uk_community_account"`
	AccountID         uint64 `gorm:"not null;index;uniqueIndex:uk_community_account"`
	Role              int    `gorm:"not null;default:0"`
	CanPublishPremium bool   `gorm:"not null;default:false"` // 仅 Moderator 有意义
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

package model

import "time"

// PremiumUnlock 与 Membership 互相独立：订阅附带加入，退订不退出
type PremiumUnlock struct {
	ID          uint64 `gorm:"primaryKey"`
	AccountID   uint64 `gorm:"not null;index;uniqueIndex:uk_account_community"`
	CommunityID uint64 `gorm:"not null;index;uniqueIndex:uk_account_community"`
	CreatedAt   time.Time
}

func (PremiumUnlock) TableName() string {
	return "premium_unlocks"
}

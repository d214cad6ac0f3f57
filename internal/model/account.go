package model

import "time"

// 账号全局身份：0=普通 1=平台运营（可直接发布付费内容）
const (
	KindStandard = 0
	KindElevated = 1
)

type Account struct {
	ID        uint64 `gorm:"primaryKey"`
	Username  string `gorm:"uniqueIndex;size:32;not null"`
	Password  string `gorm:"size:255;not null"`
	Email     string `gorm:"uniqueIndex;size:64;not null"`
	Kind      int    `gorm:"not null;default:0"`
	Bio       string `gorm:"size:255"`
	AvatarURL string `gorm:"size:1024"`
	AvatarKey string `gorm:"size:128"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

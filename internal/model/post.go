package model

import "time"

type Post struct {
	ID          uint64 `gorm:"primaryKey"`
	CommunityID uint64 `gorm:"not null;index:idx_community_id_desc"`
	AuthorID    uint64 `gorm:"not null;index"`
	Title       string `gorm:"size:200;not null"`
	Content     string `gorm:"type:text"`
	Premium     bool   `gorm:"not null;default:false"` // 创建时定死，不可改
	LikeCount   int64  `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Comment struct {
	ID        uint64 `gorm:"primaryKey"`
	PostID    uint64 `gorm:"not null;index"`
	AuthorID  uint64 `gorm:"not null;index"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Reaction (account_id, post_id) 唯一：存在即已点赞，toggle 记录而不是计数器
type Reaction struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	AccountID uint64 `gorm:"not null;index;uniqueIndex:uk_account_post"`
	PostID    uint64 `gorm:"not null;index;uniqueIndex:uk_account_post"`
	CreatedAt time.Time
}

func (Reaction) TableName() string {
	return "reactions"
}

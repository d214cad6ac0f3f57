package authz

import (
	"errors"
	"fmt"

	"Haven_Community/internal/model"

	"gorm.io/gorm"
)

// ResolveCommunity 固定次数的单行查询拼出身份上下文。
// db 传事务句柄时，检查和后续写入共享同一快照，避免查完权限后角色被改。
func ResolveCommunity(db *gorm.DB, accountID, communityID uint64) (*Context, error) {
	var comm model.Community
	if err := db.First(&comm, communityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	ac := &Context{
		AccountID:        accountID,
		CommunityID:      communityID,
		CommunityPrivate: comm.Private,
		IsCreator:        accountID != 0 && comm.CreatorID == accountID,
	}
	if accountID == 0 {
		return ac, nil
	}

	var acct model.Account
	if err := db.Select("id", "kind").First(&acct, accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 上游说已验证，但账号不在库里，按未认证处理
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	ac.Kind = acct.Kind

	var m model.Membership
	err := db.Where("community_id = ? AND account_id = ?", communityID, accountID).First(&m).Error
	switch {
	case err == nil:
		ac.HasMembership = true
		ac.Role = m.Role
		ac.CanPublishPremium = m.CanPublishPremium
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	var n int64
	if err := db.Model(&model.PremiumUnlock{}).
		Where("community_id = ? AND account_id = ?", communityID, accountID).
		Count(&n).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	ac.PremiumUnlocked = n > 0

	return ac, nil
}

// ResolvePost 帖子目标：先找帖子再落到所属社区
func ResolvePost(db *gorm.DB, accountID, postID uint64) (*Context, *model.Post, error) {
	var post model.Post
	if err := db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	ac, err := ResolveCommunity(db, accountID, post.CommunityID)
	if err != nil {
		return nil, nil, err
	}
	ac.IsAuthor = accountID != 0 && post.AuthorID == accountID
	return ac, &post, nil
}

// ResolveComment 评论目标：评论 -> 帖子 -> 社区
func ResolveComment(db *gorm.DB, accountID, commentID uint64) (*Context, *model.Comment, error) {
	var comment model.Comment
	if err := db.First(&comment, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	var post model.Post
	if err := db.First(&post, comment.PostID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	ac, err := ResolveCommunity(db, accountID, post.CommunityID)
	if err != nil {
		return nil, nil, err
	}
	ac.IsAuthor = accountID != 0 && comment.AuthorID == accountID
	return ac, &comment, nil
}

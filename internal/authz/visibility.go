package authz

import "Haven_Community/internal/model"

type Mode int

const (
	ModeDetail Mode = iota
	ModeListing
)

// RedactedPlaceholder 列表里付费帖给未解锁用户看到的占位正文
const RedactedPlaceholder = "Premium content. Subscribe to this community to unlock."

// GateCommunity 社区级闸门先于帖子级闸门。
// 私有社区对外：列表类返回 NotFound（不暴露存在），已知 id 的详情返回 Forbidden。
func GateCommunity(ac *Context, mode Mode) error {
	if !ac.CommunityPrivate || ac.IsCreator || ac.HasMembership {
		return nil
	}
	if mode == ModeListing {
		return ErrNotFound
	}
	return ErrForbidden
}

// ResolveVisibility 返回原帖、打码副本或拒绝
func ResolveVisibility(post *model.Post, ac *Context, mode Mode) (*model.Post, error) {
	if err := GateCommunity(ac, mode); err != nil {
		return nil, err
	}
	if !post.Premium {
		return post, nil
	}

	isAuthor := ac.AccountID != 0 && post.AuthorID == ac.AccountID
	hasPremiumAccess := isAuthor || ac.IsCreator || ac.IsModerator() || ac.PremiumUnlocked
	if hasPremiumAccess {
		return post, nil
	}

	// 列表永远给元数据，正文打码，不报错
	if mode == ModeListing {
		redacted := *post
		redacted.Content = RedactedPlaceholder
		return &redacted, nil
	}
	if ac.AccountID == 0 {
		return nil, ErrUnauthorized
	}
	return nil, ErrForbidden
}

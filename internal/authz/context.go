package authz

import "Haven_Community/internal/model"

// Context 一次请求解析一次，之后所有授权判断都吃它，不再各自查库
type Context struct {
	AccountID uint64 // 0 表示未登录
	Kind      int

	CommunityID      uint64
	CommunityPrivate bool

	IsCreator         bool
	HasMembership     bool
	Role              int // HasMembership 为 false 时无意义
	CanPublishPremium bool

	PremiumUnlocked bool
	IsAuthor        bool // 针对 Resolve 的目标资源（帖子/评论）
}

func (ac *Context) IsModerator() bool {
	return ac.HasMembership && ac.Role == model.RoleModerator
}

package authz

import "Haven_Community/internal/model"

type Action int

const (
	ActionCreatePost Action = iota
	ActionPublishPremium
	ActionEditPost
	ActionDeletePost
	ActionCreateComment
	ActionEditComment
	ActionDeleteComment
	ActionToggleReaction
	ActionUpdateCommunity
	ActionDeleteCommunity
)

// Authorize 所有写操作的唯一入口，不要在 handler/service 里散落角色比较
func Authorize(action Action, ac *Context) error {
	if ac.AccountID == 0 {
		return ErrUnauthorized
	}

	switch action {
	case ActionCreatePost:
		if ac.IsCreator || ac.IsModerator() {
			return nil
		}
	case ActionPublishPremium:
		if ac.Kind == model.KindElevated {
			return nil
		}
		if ac.IsModerator() && ac.CanPublishPremium {
			return nil
		}
	case ActionEditPost, ActionEditComment:
		if ac.IsAuthor {
			return nil
		}
	case ActionDeletePost, ActionDeleteComment:
		if ac.IsAuthor || ac.IsCreator || ac.IsModerator() {
			return nil
		}
	case ActionCreateComment, ActionToggleReaction:
		if ac.HasMembership {
			return nil
		}
	case ActionUpdateCommunity, ActionDeleteCommunity:
		if ac.IsCreator {
			return nil
		}
	}
	return ErrForbidden
}

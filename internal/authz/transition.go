package authz

import "Haven_Community/internal/model"

type Transition int

const (
	TransitionJoin Transition = iota
	TransitionLeave
	TransitionSetRole
	TransitionRemove
	TransitionSetPremiumPublish
)

// MemberFacts 目标成员在事务内锁行读出的当前状态
type MemberFacts struct {
	AccountID uint64
	Role      int
	Found     bool
}

// CheckTransition 成员状态机守卫。仓储在同一事务里锁行后调用，
// 保证检查和写入看到同一份数据。
// Creator 是终态：任何转换都不能进入或离开 Creator。
func CheckTransition(t Transition, actor *Context, target *MemberFacts, newRole int) error {
	if actor.AccountID == 0 {
		return ErrUnauthorized
	}

	switch t {
	case TransitionJoin:
		// 已是成员（含创建者）重复加入算冲突，不算错误
		if actor.HasMembership || actor.IsCreator {
			return ErrConflict
		}
		return nil

	case TransitionLeave:
		if !actor.HasMembership {
			return ErrConflict
		}
		// 创建者只能删社区，不能退出
		if actor.Role == model.RoleCreator {
			return ErrForbidden
		}
		return nil

	case TransitionSetRole:
		if err := creatorOnly(actor, target); err != nil {
			return err
		}
		if newRole != model.RoleMember && newRole != model.RoleModerator {
			return ErrForbidden
		}
		return nil

	case TransitionRemove:
		return creatorOnly(actor, target)

	case TransitionSetPremiumPublish:
		if err := creatorOnly(actor, target); err != nil {
			return err
		}
		if target.Role != model.RoleModerator {
			return ErrForbidden
		}
		return nil
	}
	return ErrForbidden
}

// 只有创建者可操作他人，且不可对自己或 Creator 角色下手
func creatorOnly(actor *Context, target *MemberFacts) error {
	if !actor.IsCreator {
		return ErrForbidden
	}
	if target == nil || !target.Found {
		return ErrNotFound
	}
	if target.AccountID == actor.AccountID || target.Role == model.RoleCreator {
		return ErrForbidden
	}
	return nil
}

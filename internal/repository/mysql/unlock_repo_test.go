package mysql

import (
	"context"
	"testing"

	"Haven_Community/internal/authz"
	"Haven_Community/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeImpliesMembership(t *testing.T) {
	db := newTestDB(t)
	c := seedCommunity(t, db)
	repo := &UnlockRepository{DB: db}
	ctx := context.Background()

	// 非成员订阅，顺带以 Member 加入
	require.NoError(t, repo.Subscribe(ctx, 3, c.ID))

	var m model.Membership
	require.NoError(t, db.Where("community_id = ? AND account_id = ?", c.ID, 3).First(&m).Error)
	assert.Equal(t, model.RoleMember, m.Role)

	ok, err := repo.IsUnlocked(ctx, 3, c.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	// 重复订阅幂等，不追加行也不追加事件
	require.NoError(t, repo.Subscribe(ctx, 3, c.ID))
	var unlocks, events int64
	require.NoError(t, db.Model(&model.PremiumUnlock{}).Count(&unlocks).Error)
	require.NoError(t, db.Model(&model.CommunityOutbox{}).Where("event_type = ?", "subscribe").Count(&events).Error)
	assert.Equal(t, int64(1), unlocks)
	assert.Equal(t, int64(1), events)
}

func TestSubscribeExistingMemberKeepsRole(t *testing.T) {
	db := newTestDB(t)
	c := seedCommunity(t, db)
	repo := &UnlockRepository{DB: db}
	ctx := context.Background()

	mrepo := &MembershipRepository{DB: db}
	require.NoError(t, mrepo.SetRole(ctx, 1, c.ID, 2, model.RoleModerator))

	require.NoError(t, repo.Subscribe(ctx, 2, c.ID))
	var m model.Membership
	require.NoError(t, db.Where("community_id = ? AND account_id = ?", c.ID, 2).First(&m).Error)
	assert.Equal(t, model.RoleModerator, m.Role)
}

func TestSubscribeErrors(t *testing.T) {
	db := newTestDB(t)
	seedCommunity(t, db)
	repo := &UnlockRepository{DB: db}
	ctx := context.Background()

	require.ErrorIs(t, repo.Subscribe(ctx, 0, 1), authz.ErrUnauthorized)
	require.ErrorIs(t, repo.Subscribe(ctx, 3, 999), authz.ErrNotFound)
}

func TestUnsubscribeKeepsMembership(t *testing.T) {
	db := newTestDB(t)
	c := seedCommunity(t, db)
	repo := &UnlockRepository{DB: db}
	ctx := context.Background()

	require.NoError(t, repo.Subscribe(ctx, 3, c.ID))
	require.NoError(t, repo.Unsubscribe(ctx, 3, c.ID))

	ok, err := repo.IsUnlocked(ctx, 3, c.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	// 退订不退出社区
	var n int64
	require.NoError(t, db.Model(&model.Membership{}).
		Where("community_id = ? AND account_id = ?", c.ID, 3).Count(&n).Error)
	assert.Equal(t, int64(1), n)

	// 重复退订幂等，不追加事件
	require.NoError(t, repo.Unsubscribe(ctx, 3, c.ID))
	var events int64
	require.NoError(t, db.Model(&model.CommunityOutbox{}).Where("event_type = ?", "unsubscribe").Count(&events).Error)
	assert.Equal(t, int64(1), events)
}

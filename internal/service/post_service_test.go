package service

import (
	"context"
	"testing"

	"Haven_Community/internal/authz"
	"Haven_Community/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 付费发布权走完整闭环：版主要先被创建者点名才发得了付费帖，
// 未解锁的成员列表里只看到打码正文，订阅之后看到全文。
func TestPremiumPublishFlow(t *testing.T) {
	db := newTestDB(t)
	seedAccounts(t, db, 4)
	ctx := context.Background()

	communities := NewCommunityService(db, nil)
	members := NewMembershipService(db)
	posts := NewPostService(db)
	subs := NewSubscriptionService(db)

	c, err := communities.Create(1, "go-talk", "d", false)
	require.NoError(t, err)

	require.NoError(t, members.Join(ctx, 2, c.ID))
	require.NoError(t, members.Join(ctx, 3, c.ID))

	// 版主身份不够，还要发布授权
	require.NoError(t, members.SetRole(ctx, 1, c.ID, 2, model.RoleModerator))
	_, err = posts.Create(ctx, 2, c.ID, "premium", "secret", true)
	require.ErrorIs(t, err, authz.ErrForbidden)

	require.NoError(t, members.SetPremiumPublish(ctx, 1, c.ID, 2, true))
	post, err := posts.Create(ctx, 2, c.ID, "premium", "secret", true)
	require.NoError(t, err)

	// 未解锁成员：详情拒绝，列表打码
	_, err = posts.Get(3, post.ID)
	require.ErrorIs(t, err, authz.ErrForbidden)

	rows, _, err := posts.ListByCommunity(ctx, 3, c.ID, 0, 20)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, authz.RedactedPlaceholder, rows[0].Content)
	assert.Equal(t, "premium", rows[0].Title)

	// 订阅后全量可见
	require.NoError(t, subs.Subscribe(ctx, 3, c.ID))
	got, err := posts.Get(3, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "secret", got.Content)

	rows, _, err = posts.ListByCommunity(ctx, 3, c.ID, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, "secret", rows[0].Content)

	// 作者和创建者不需要订阅
	got, err = posts.Get(2, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "secret", got.Content)
	got, err = posts.Get(1, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "secret", got.Content)

	// 未登录看付费详情要求先登录
	_, err = posts.Get(0, post.ID)
	require.ErrorIs(t, err, authz.ErrUnauthorized)
}

func TestPrivateCommunityHidesPosts(t *testing.T) {
	db := newTestDB(t)
	seedAccounts(t, db, 2)
	ctx := context.Background()

	communities := NewCommunityService(db, nil)
	posts := NewPostService(db)

	c, err := communities.Create(1, "hidden", "d", true)
	require.NoError(t, err)
	post, err := posts.Create(ctx, 1, c.ID, "t", "c", false)
	require.NoError(t, err)

	// 非成员：列表装作不存在，详情硬拒绝
	_, _, err = posts.ListByCommunity(ctx, 2, c.ID, 0, 20)
	require.ErrorIs(t, err, authz.ErrNotFound)
	_, err = posts.Get(2, post.ID)
	require.ErrorIs(t, err, authz.ErrForbidden)

	// 成员正常读
	rows, _, err := posts.ListByCommunity(ctx, 1, c.ID, 0, 20)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestPostCreateValidation(t *testing.T) {
	db := newTestDB(t)
	seedAccounts(t, db, 1)
	communities := NewCommunityService(db, nil)
	posts := NewPostService(db)

	c, err := communities.Create(1, "go-talk", "d", false)
	require.NoError(t, err)

	_, err = posts.Create(context.Background(), 1, c.ID, "", "c", false)
	require.Error(t, err)
}

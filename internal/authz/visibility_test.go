package authz

import (
	"testing"

	"Haven_Community/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateCommunityPrivate(t *testing.T) {
	outsider := &Context{AccountID: 9, CommunityPrivate: true}
	require.ErrorIs(t, GateCommunity(outsider, ModeListing), ErrNotFound)
	require.ErrorIs(t, GateCommunity(outsider, ModeDetail), ErrForbidden)

	anon := &Context{CommunityPrivate: true}
	require.ErrorIs(t, GateCommunity(anon, ModeListing), ErrNotFound)

	member := &Context{AccountID: 9, CommunityPrivate: true, HasMembership: true}
	require.NoError(t, GateCommunity(member, ModeListing))
	require.NoError(t, GateCommunity(member, ModeDetail))

	public := &Context{CommunityPrivate: false}
	require.NoError(t, GateCommunity(public, ModeListing))
}

func TestResolveVisibilityPlainPost(t *testing.T) {
	post := &model.Post{ID: 1, AuthorID: 2, Content: "hello"}

	for _, ac := range []*Context{
		{},                                  // 未登录
		{AccountID: 3},                      // 非成员
		{AccountID: 4, HasMembership: true}, // 普通成员
	} {
		got, err := ResolveVisibility(post, ac, ModeDetail)
		require.NoError(t, err)
		assert.Equal(t, "hello", got.Content)
	}
}

func TestResolveVisibilityPremiumDetail(t *testing.T) {
	post := &model.Post{ID: 1, AuthorID: 2, Premium: true, Content: "secret"}

	// 作者、创建者、版主、已解锁放行
	for _, ac := range []*Context{
		{AccountID: 2},
		{AccountID: 3, IsCreator: true},
		{AccountID: 4, HasMembership: true, Role: model.RoleModerator},
		{AccountID: 5, PremiumUnlocked: true},
	} {
		got, err := ResolveVisibility(post, ac, ModeDetail)
		require.NoError(t, err)
		assert.Equal(t, "secret", got.Content)
	}

	// 未解锁的普通成员拒绝，未登录要求登录
	_, err := ResolveVisibility(post, &Context{AccountID: 6, HasMembership: true}, ModeDetail)
	require.ErrorIs(t, err, ErrForbidden)
	_, err = ResolveVisibility(post, &Context{}, ModeDetail)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestResolveVisibilityPremiumListing(t *testing.T) {
	post := &model.Post{ID: 1, AuthorID: 2, Premium: true, Title: "t", Content: "secret"}

	got, err := ResolveVisibility(post, &Context{AccountID: 6, HasMembership: true}, ModeListing)
	require.NoError(t, err)
	assert.Equal(t, RedactedPlaceholder, got.Content)
	assert.Equal(t, "t", got.Title)
	// 打码是副本，原帖不动
	assert.Equal(t, "secret", post.Content)

	got, err = ResolveVisibility(post, &Context{AccountID: 5, PremiumUnlocked: true}, ModeListing)
	require.NoError(t, err)
	assert.Equal(t, "secret", got.Content)
}

func TestResolveVisibilityPrivateGateFirst(t *testing.T) {
	post := &model.Post{ID: 1, AuthorID: 2, Premium: false}
	outsider := &Context{AccountID: 9, CommunityPrivate: true}

	_, err := ResolveVisibility(post, outsider, ModeListing)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = ResolveVisibility(post, outsider, ModeDetail)
	require.ErrorIs(t, err, ErrForbidden)
}

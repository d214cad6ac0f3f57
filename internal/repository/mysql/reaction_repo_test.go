package mysql

import (
	"context"
	"testing"

	"Haven_Community/internal/authz"
	"Haven_Community/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggle(t *testing.T) {
	db := newTestDB(t)
	c := seedCommunity(t, db)
	ctx := context.Background()

	posts := &PostRepository{DB: db}
	post, err := posts.Create(ctx, 1, c.ID, "t", "c", false)
	require.NoError(t, err)

	repo := &ReactionRepository{DB: db}

	liked, err := repo.Toggle(ctx, 2, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	n, err := repo.LikeCount(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	ok, err := repo.IsLiked(ctx, 2, post.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	// 再 toggle 一次回到未点赞
	liked, err = repo.Toggle(ctx, 2, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	n, err = repo.LikeCount(ctx, post.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	var rows int64
	require.NoError(t, db.Model(&model.Reaction{}).Count(&rows).Error)
	assert.Zero(t, rows)
}

func TestToggleRequiresMembership(t *testing.T) {
	db := newTestDB(t)
	c := seedCommunity(t, db)
	ctx := context.Background()

	posts := &PostRepository{DB: db}
	post, err := posts.Create(ctx, 1, c.ID, "t", "c", false)
	require.NoError(t, err)

	repo := &ReactionRepository{DB: db}
	_, err = repo.Toggle(ctx, 3, post.ID)
	require.ErrorIs(t, err, authz.ErrForbidden)
	_, err = repo.Toggle(ctx, 0, post.ID)
	require.ErrorIs(t, err, authz.ErrUnauthorized)
	_, err = repo.Toggle(ctx, 2, 999)
	require.ErrorIs(t, err, authz.ErrNotFound)
}

func TestReconcileLikeCounts(t *testing.T) {
	db := newTestDB(t)
	c := seedCommunity(t, db)
	ctx := context.Background()

	posts := &PostRepository{DB: db}
	post, err := posts.Create(ctx, 1, c.ID, "t", "c", false)
	require.NoError(t, err)

	repo := &ReactionRepository{DB: db}
	_, err = repo.Toggle(ctx, 2, post.ID)
	require.NoError(t, err)

	// 人为弄脏冗余计数
	require.NoError(t, db.Model(&model.Post{}).Where("id = ?", post.ID).
		UpdateColumn("like_count", 42).Error)

	next, err := repo.ReconcileLikeCounts(ctx, 100, 0)
	require.NoError(t, err)
	assert.Equal(t, post.ID, next)

	n, err := repo.LikeCount(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

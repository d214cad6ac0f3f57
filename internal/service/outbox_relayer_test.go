package service

import (
	"context"
	"errors"
	"testing"

	"Haven_Community/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelayerDrain(t *testing.T) {
	db := newTestDB(t)
	seedAccounts(t, db, 2)
	ctx := context.Background()

	communities := NewCommunityService(db, nil)
	members := NewMembershipService(db)
	c, err := communities.Create(1, "go-talk", "d", false)
	require.NoError(t, err)
	require.NoError(t, members.Join(ctx, 2, c.ID))

	var sent []string
	relayer := NewOutboxRelayer(db, func(ctx context.Context, ob *model.CommunityOutbox) error {
		sent = append(sent, ob.EventType)
		return nil
	})
	relayer.drainOnce(ctx)

	assert.Equal(t, []string{"join"}, sent)

	var pending int64
	require.NoError(t, db.Model(&model.CommunityOutbox{}).Where("status = 0").Count(&pending).Error)
	assert.Zero(t, pending)

	// 没有新事件就不再投递
	relayer.drainOnce(ctx)
	assert.Len(t, sent, 1)
}

func TestRelayerMarksFailed(t *testing.T) {
	db := newTestDB(t)
	seedAccounts(t, db, 2)
	ctx := context.Background()

	communities := NewCommunityService(db, nil)
	members := NewMembershipService(db)
	c, err := communities.Create(1, "go-talk", "d", false)
	require.NoError(t, err)
	require.NoError(t, members.Join(ctx, 2, c.ID))

	relayer := NewOutboxRelayer(db, func(ctx context.Context, ob *model.CommunityOutbox) error {
		return errors.New("broker down")
	})
	relayer.drainOnce(ctx)

	var row model.CommunityOutbox
	require.NoError(t, db.First(&row).Error)
	assert.Equal(t, int8(2), row.Status)
	assert.Equal(t, 1, row.Retry)
}

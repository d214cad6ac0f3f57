package service

import (
	"testing"

	"Haven_Community/internal/pkg"
	"Haven_Community/internal/repository/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) {
	t.Helper()
	srv := miniredis.RunT(t)
	require.NoError(t, redis.Init(srv.Addr(), "", 0))
	t.Cleanup(func() { _ = redis.Close() })
}

// 不走 SMTP，直接把验证码按两阶段写进 redis
func seedEmailCode(t *testing.T, scope, email, code string) {
	t.Helper()
	repo := &redis.EmailRepository{}
	require.NoError(t, repo.SetCodePending(scope, email, code))
	require.NoError(t, repo.PromoteCode(scope, email))
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	newTestRedis(t)

	svc := NewAccountService(db, NewEmailService(pkg.SMTPConfig{}), nil)

	seedEmailCode(t, "register", "a@x.com", "123456")

	// 验证码不对直接拒绝
	require.Error(t, svc.Register("alice", "pass123", "a@x.com", "000000"))

	seedEmailCode(t, "register", "a@x.com", "123456")
	require.NoError(t, svc.Register("alice", "pass123", "a@x.com", "123456"))

	// 验证码一次性，重复注册同邮箱也过不了
	require.Error(t, svc.Register("alice2", "pass123", "a@x.com", "123456"))

	_, err := svc.Login("alice", "wrong")
	require.Error(t, err)

	pair, err := svc.Login("alice", "pass123")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)

	claims, err := pkg.ParseAccess(pair.AccessToken)
	require.NoError(t, err)

	// 单点登录：再登录顶掉上一个会话
	pair2, err := svc.Login("alice", "pass123")
	require.NoError(t, err)

	sess := &redis.SessionRepository{}
	current, err := sess.GetSessionToken(claims.AccountID)
	require.NoError(t, err)
	assert.Equal(t, pair2.AccessToken, current)

	require.NoError(t, svc.Logout(claims.AccountID))
	_, err = sess.GetSessionToken(claims.AccountID)
	require.ErrorIs(t, err, redis.ErrTokenNotFound)
}

func TestChangePassword(t *testing.T) {
	db := newTestDB(t)
	newTestRedis(t)

	svc := NewAccountService(db, NewEmailService(pkg.SMTPConfig{}), nil)
	seedEmailCode(t, "register", "a@x.com", "123456")
	require.NoError(t, svc.Register("alice", "old-pass", "a@x.com", "123456"))

	pair, err := svc.Login("alice", "old-pass")
	require.NoError(t, err)
	claims, err := pkg.ParseAccess(pair.AccessToken)
	require.NoError(t, err)

	require.Error(t, svc.ChangePassword(claims.AccountID, "wrong", "new-pass"))
	require.NoError(t, svc.ChangePassword(claims.AccountID, "old-pass", "new-pass"))

	_, err = svc.Login("alice", "old-pass")
	require.Error(t, err)
	_, err = svc.Login("alice", "new-pass")
	require.NoError(t, err)
}

func TestResetPassword(t *testing.T) {
	db := newTestDB(t)
	newTestRedis(t)

	svc := NewAccountService(db, NewEmailService(pkg.SMTPConfig{}), nil)
	seedEmailCode(t, "register", "a@x.com", "123456")
	require.NoError(t, svc.Register("alice", "old-pass", "a@x.com", "123456"))

	seedEmailCode(t, "reset", "a@x.com", "654321")
	require.NoError(t, svc.ResetPassword("a@x.com", "654321", "new-pass"))

	_, err := svc.Login("alice", "new-pass")
	require.NoError(t, err)
}

package mysql

import (
	"context"
	"testing"

	"Haven_Community/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&model.Account{}, &model.Community{}, &model.Membership{},
		&model.Post{}, &model.Comment{}, &model.Reaction{},
		&model.PremiumUnlock{}, &model.CommunityOutbox{},
	))
	return db
}

// 建一个社区：1 号账号为创建者，2 号账号为普通成员
func seedCommunity(t *testing.T, db *gorm.DB) *model.Community {
	t.Helper()
	require.NoError(t, db.Create(&model.Account{ID: 1, Username: "alice", Password: "x", Email: "a@x.com"}).Error)
	require.NoError(t, db.Create(&model.Account{ID: 2, Username: "bob", Password: "x", Email: "b@x.com"}).Error)
	require.NoError(t, db.Create(&model.Account{ID: 3, Username: "carol", Password: "x", Email: "c@x.com"}).Error)

	repo := &CommunityRepository{DB: db}
	c, err := repo.Create(&model.Community{Name: "go-talk", Description: "d", CreatorID: 1})
	require.NoError(t, err)

	mrepo := &MembershipRepository{DB: db}
	require.NoError(t, mrepo.Join(context.Background(), 2, c.ID))
	return c
}

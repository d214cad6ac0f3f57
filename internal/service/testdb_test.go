package service

import (
	"context"
	"fmt"
	"sync"
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

func seedAccounts(t *testing.T, db *gorm.DB, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		require.NoError(t, db.Create(&model.Account{
			ID:       uint64(i),
			Username: fmt.Sprintf("user%d", i),
			Password: "x",
			Email:    fmt.Sprintf("u%d@x.com", i),
		}).Error)
	}
}

// fakeMedia 记录 Store/Remove 调用的内存替身
type fakeMedia struct {
	mu      sync.Mutex
	stored  int
	removed []string
}

func (f *fakeMedia) Store(ctx context.Context, data []byte, contentType string) (string, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stored++
	key := fmt.Sprintf("key-%d", f.stored)
	return "https://cdn.test/" + key, key, nil
}

func (f *fakeMedia) Remove(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, key)
	return nil
}

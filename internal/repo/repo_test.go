package repo

import (
	"LinkKeeper/internal/model"
	"context"
	"testing"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// newTestDB инициализирует in-memory SQLite (modernc.org/sqlite) для тестов репозитория
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: "file::memory:?cache=shared"}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	// Миграции для всех моделей, используемых в репозиториях
	if err := db.AutoMigrate(&model.User{}, &model.Tag{}, &model.Bookmark{}, &model.TagMark{}); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	return db
}

// newTestUser создаёт пользователя-владельца для тестов закладок и тегов
func newTestUser(t *testing.T, db *gorm.DB, login string) *model.User {
	t.Helper()
	u, err := NewUserRepository(db).CreateUser(context.Background(), &model.User{Login: login, Password: "hash"})
	if err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

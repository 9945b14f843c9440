package repo

import (
	"LinkKeeper/internal/model"
	"context"

	"gorm.io/gorm"
)

// BookmarkRepository — контракт доступа к Bookmark для слоя сервиса.
// Закладка неизменяема после создания: update/delete здесь нет.
type BookmarkRepository interface {
	// Create вставляет новую закладку.
	Create(ctx context.Context, b *model.Bookmark) error

	// ListByUser возвращает все закладки владельца в порядке хранения.
	ListByUser(ctx context.Context, userID int64) ([]model.Bookmark, error)
}

type bookmarkRepo struct {
	db *gorm.DB
}

// NewBookmarkRepository создаёт реализацию репозитория для Bookmark.
func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &bookmarkRepo{db: db}
}

func (r *bookmarkRepo) Create(ctx context.Context, b *model.Bookmark) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *bookmarkRepo) ListByUser(ctx context.Context, userID int64) ([]model.Bookmark, error) {
	var out []model.Bookmark
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

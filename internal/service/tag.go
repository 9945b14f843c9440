package service

import (
	"LinkKeeper/internal/model"
	"LinkKeeper/internal/repo"
	"context"
)

// TagService инкапсулирует работу с тегами владельца.
type TagService struct {
	repo repo.TagRepository
}

func NewTagService(r repo.TagRepository) *TagService {
	return &TagService{repo: r}
}

// Create заводит новый тег. Повторное имя не ошибка — будет второй тег.
func (s *TagService) Create(ctx context.Context, userID int64, name string) (*model.Tag, error) {
	tag := &model.Tag{UserID: userID, Name: name}
	if err := s.repo.CreateTag(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// ListForUser возвращает все теги владельца.
func (s *TagService) ListForUser(ctx context.Context, userID int64) ([]model.Tag, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Mark отмечает тег на закладке. Принадлежность tagID и bookmarkID
// владельцу не перепроверяется — связь лишь помечена его user_id
// и видна только в его выборках.
func (s *TagService) Mark(ctx context.Context, userID, tagID int64, bookmarkID string) error {
	return s.repo.CreateMark(ctx, &model.TagMark{UserID: userID, TagID: tagID, BookmarkID: bookmarkID})
}

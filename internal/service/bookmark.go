package service

import (
	"LinkKeeper/internal/model"
	"LinkKeeper/internal/repo"
	"LinkKeeper/internal/validate"
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInvalidISBN — строка не проходит контрольную сумму ISBN-10/13.
var ErrInvalidISBN = errors.New("invalid ISBN")

// BookmarkService инкапсулирует создание и выборку закладок.
type BookmarkService struct {
	bookmarks repo.BookmarkRepository
	tags      repo.TagRepository
	logger    *zap.SugaredLogger
}

func NewBookmarkService(br repo.BookmarkRepository, tr repo.TagRepository, logger *zap.SugaredLogger) *BookmarkService {
	return &BookmarkService{bookmarks: br, tags: tr, logger: logger}
}

// Add создаёт закладку владельца. Для варианта book сначала гоняется
// проверка ISBN; остальные варианты форматно не проверяются.
// Уникальности между закладками нет: повторная отправка даёт вторую строку.
func (s *BookmarkService) Add(ctx context.Context, userID int64, title, description, author string, payload model.BookmarkPayload) (*model.Bookmark, error) {
	if book, ok := payload.(model.BookPayload); ok {
		if !validate.IsISBN(book.ISBN) {
			return nil, ErrInvalidISBN
		}
	}

	b, err := model.NewBookmark(uuid.NewString(), userID, title, description, author, payload)
	if err != nil {
		return nil, err
	}
	if err := s.bookmarks.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// AddWithTags создаёт закладку и отмечает на ней выбранные теги.
// Единой транзакции нет: если отметка тега упала, закладка уже
// создана и остаётся без части тегов.
func (s *BookmarkService) AddWithTags(ctx context.Context, userID int64, title, description, author string, payload model.BookmarkPayload, tagIDs []int64) (*model.Bookmark, error) {
	b, err := s.Add(ctx, userID, title, description, author, payload)
	if err != nil {
		return nil, err
	}
	for _, tagID := range tagIDs {
		mark := &model.TagMark{UserID: userID, TagID: tagID, BookmarkID: b.ID}
		if err := s.tags.CreateMark(ctx, mark); err != nil {
			s.logger.Errorw("failed to mark tag on new bookmark",
				"user_id", userID, "tag_id", tagID, "bookmark_id", b.ID, "error", err)
			return b, err
		}
	}
	return b, nil
}

// ListForUser возвращает все закладки владельца.
func (s *BookmarkService) ListForUser(ctx context.Context, userID int64) ([]model.Bookmark, error) {
	return s.bookmarks.ListByUser(ctx, userID)
}

// TagNamesByBookmark собирает карту "id закладки → имена тегов".
// Имена внутри закладки идут в порядке вставки связей.
func (s *BookmarkService) TagNamesByBookmark(ctx context.Context, userID int64) (map[string][]string, error) {
	marked, err := s.tags.ListMarkedNamesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]string, len(marked))
	for _, m := range marked {
		out[m.BookmarkID] = append(out[m.BookmarkID], m.TagName)
	}
	return out, nil
}

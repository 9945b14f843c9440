package repo

import (
	"LinkKeeper/internal/model"
	"context"

	"gorm.io/gorm"
)

// TagRepository — контракт доступа к Tag и связям тег↔закладка.
type TagRepository interface {
	// CreateTag вставляет новый тег. Дедупликации по имени нет.
	CreateTag(ctx context.Context, tag *model.Tag) error

	// ListByUser возвращает все теги владельца.
	ListByUser(ctx context.Context, userID int64) ([]model.Tag, error)

	// CreateMark вставляет связь тег↔закладка без проверок:
	// принадлежность тега и закладки владельцу здесь не перепроверяется.
	CreateMark(ctx context.Context, mark *model.TagMark) error

	// ListMarkedNamesByUser возвращает пары (bookmark_id, имя тега)
	// по всем связям владельца в порядке вставки.
	ListMarkedNamesByUser(ctx context.Context, userID int64) ([]model.MarkedTag, error)
}

type tagRepo struct {
	db *gorm.DB
}

// NewTagRepository создаёт реализацию репозитория для Tag.
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepo{db: db}
}

func (r *tagRepo) CreateTag(ctx context.Context, tag *model.Tag) error {
	return r.db.WithContext(ctx).Create(tag).Error
}

func (r *tagRepo) ListByUser(ctx context.Context, userID int64) ([]model.Tag, error) {
	var out []model.Tag
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *tagRepo) CreateMark(ctx context.Context, mark *model.TagMark) error {
	return r.db.WithContext(ctx).Create(mark).Error
}

func (r *tagRepo) ListMarkedNamesByUser(ctx context.Context, userID int64) ([]model.MarkedTag, error) {
	var out []model.MarkedTag
	err := r.db.WithContext(ctx).
		Table("tag_marks").
		Select("tag_marks.bookmark_id AS bookmark_id, tags.name AS tag_name").
		Joins("JOIN tags ON tags.id = tag_marks.tag_id").
		Where("tag_marks.user_id = ?", userID).
		Order("tag_marks.id").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

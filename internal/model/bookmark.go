package model

import (
	"fmt"
	"time"
)

// BookmarkKind — дискриминатор варианта закладки.
type BookmarkKind string

const (
	KindBook              BookmarkKind = "book"
	KindVideo             BookmarkKind = "video"
	KindBlog              BookmarkKind = "blog"
	KindPodcast           BookmarkKind = "podcast"
	KindScientificArticle BookmarkKind = "scientific_article"
)

// BookmarkPayload — закрытое множество вариантов закладки.
// Ровно один payload на закладку; kind неизменяем после создания.
type BookmarkPayload interface {
	Kind() BookmarkKind
}

type BookPayload struct {
	ISBN string
}

type VideoPayload struct {
	Link string
}

type BlogPayload struct {
	Link string
}

type PodcastPayload struct {
	EpisodeName string
	Link        string
}

type ArticlePayload struct {
	PublicationTitle string
	DOI              string
	Year             string
	Publisher        string
}

func (BookPayload) Kind() BookmarkKind    { return KindBook }
func (VideoPayload) Kind() BookmarkKind   { return KindVideo }
func (BlogPayload) Kind() BookmarkKind    { return KindBlog }
func (PodcastPayload) Kind() BookmarkKind { return KindPodcast }
func (ArticlePayload) Kind() BookmarkKind { return KindScientificArticle }

// Bookmark — серверная модель закладки пользователя.
// Общие поля + колонки всех вариантов в одной таблице; какие из них
// значимы, определяет BookmarkKind.
type Bookmark struct {
	ID     string `gorm:"primaryKey;type:uuid"`
	UserID int64  `gorm:"not null;index"` // ссылка на users.id

	// Связи
	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Kind BookmarkKind `gorm:"not null;index"`

	Title       string `gorm:"not null"`
	Description string
	Author      string

	// Вариантные поля
	ISBN             string
	Link             string
	EpisodeName      string
	PublicationTitle string
	DOI              string `gorm:"column:doi"`
	Year             string
	Publisher        string

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// NewBookmark собирает строку закладки из общих полей и payload варианта.
// switch по вариантам исчерпывающий: новый kind без ветки здесь — ошибка.
func NewBookmark(id string, userID int64, title, description, author string, payload BookmarkPayload) (*Bookmark, error) {
	b := &Bookmark{
		ID:          id,
		UserID:      userID,
		Kind:        payload.Kind(),
		Title:       title,
		Description: description,
		Author:      author,
	}
	switch p := payload.(type) {
	case BookPayload:
		b.ISBN = p.ISBN
	case VideoPayload:
		b.Link = p.Link
	case BlogPayload:
		b.Link = p.Link
	case PodcastPayload:
		b.EpisodeName = p.EpisodeName
		b.Link = p.Link
	case ArticlePayload:
		b.PublicationTitle = p.PublicationTitle
		b.DOI = p.DOI
		b.Year = p.Year
		b.Publisher = p.Publisher
	default:
		return nil, fmt.Errorf("unknown bookmark payload %T", payload)
	}
	return b, nil
}

// Payload восстанавливает вариант из строки таблицы.
func (b *Bookmark) Payload() BookmarkPayload {
	switch b.Kind {
	case KindBook:
		return BookPayload{ISBN: b.ISBN}
	case KindVideo:
		return VideoPayload{Link: b.Link}
	case KindBlog:
		return BlogPayload{Link: b.Link}
	case KindPodcast:
		return PodcastPayload{EpisodeName: b.EpisodeName, Link: b.Link}
	case KindScientificArticle:
		return ArticlePayload{
			PublicationTitle: b.PublicationTitle,
			DOI:              b.DOI,
			Year:             b.Year,
			Publisher:        b.Publisher,
		}
	}
	return nil
}

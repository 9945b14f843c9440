package model

import "time"

// Tag — пользовательская метка. Имя не уникально: два тега с одним
// именем у одного пользователя допустимы.
type Tag struct {
	ID     int64 `gorm:"primaryKey"`
	UserID int64 `gorm:"not null;index"`

	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Name string `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TagMark — связь many-to-many тег↔закладка в рамках одного владельца.
// Дубликаты не запрещаются: повторная отметка даёт вторую строку.
type TagMark struct {
	ID     int64 `gorm:"primaryKey"`
	UserID int64 `gorm:"not null;index"`

	TagID int64 `gorm:"not null;index"`
	Tag   *Tag  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	BookmarkID string    `gorm:"not null;index;type:uuid"`
	Bookmark   *Bookmark `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// MarkedTag — проекция для построения карты "закладка → имена тегов".
// Не таблица, заполняется join-запросом репозитория.
type MarkedTag struct {
	BookmarkID string
	TagName    string
}

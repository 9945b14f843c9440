package model

import "time"

// User — зарегистрированный пользователь сервиса.
type User struct {
	ID       int64  `gorm:"primaryKey"`
	Login    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"` // bcrypt-хеш, исходный пароль не храним

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

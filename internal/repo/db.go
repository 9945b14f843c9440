package repo

import (
	"LinkKeeper/internal/model"
	"strings"

	gormpostgres "gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// InitDB открывает подключение к БД и прогоняет миграции моделей.
// По DSN выбираем драйвер: postgres для строк со схемой postgres://,
// иначе SQLite (modernc, без cgo).
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dial = gormpostgres.Open(dsn)
	} else {
		if dsn == "" {
			dsn = "linkkeeper.db"
		}
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Tag{},
		&model.Bookmark{},
		&model.TagMark{},
	); err != nil {
		return nil, err
	}
	return db, nil
}

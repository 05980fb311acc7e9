package migrate

import (
	"context"
	"database/sql"
	"fmt"

	"smartparking/be/biz/db/migrate/migrations"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

// dialects maps a database driver to its goose dialect.
var dialects = map[string]string{
	"mysql":  "mysql",
	"sqlite": "sqlite3",
}

// gooseUp is a seam for tests.
var gooseUp = func(ctx context.Context, db *sql.DB, dir string) error {
	return goose.UpContext(ctx, db, dir)
}

// Run applies every pending embedded migration for driver.
func Run(ctx context.Context, db *gorm.DB, driver string) error {
	if db == nil {
		return fmt.Errorf("db is required")
	}
	dialect, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("no migrations for driver %q", driver)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(gooseLogger{})
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := gooseUp(ctx, sqlDB, driver); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

type gooseLogger struct{}

func (gooseLogger) Fatalf(format string, v ...interface{}) {
	hlog.Fatalf(format, v...)
}

func (gooseLogger) Printf(format string, v ...interface{}) {
	hlog.Infof(format, v...)
}

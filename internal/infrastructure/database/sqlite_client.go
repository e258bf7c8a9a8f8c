package database

import (
	"context"
	"log"
	"os"

	"casamenteiro/internal/adapter/persistence/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// ConnectSQLite opens the marketplace database and applies migrations.
//
// Supported env vars:
//   - SQLITE_PATH (default: casamenteiro.db)
func ConnectSQLite() *gorm.DB {
	db, err := Open(getenvDefault("SQLITE_PATH", "casamenteiro.db"))
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	if err := repository.RunMigrations(context.Background(), db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}
	return db
}

// Open connects to a SQLite database at the given path using the pure-Go
// driver and enables foreign key enforcement, which SQLite leaves off by
// default. The pragma is scoped per connection, so it goes into the DSN where
// the driver applies it to every connection the pool opens.
func Open(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        path + "?_pragma=foreign_keys(1)",
	}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

package database

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
)

// EnsureDatabase membuat database cfg.Name kalau belum ada (postgres & mysql).
// SQLite membuat file sendiri saat dibuka.
func EnsureDatabase(cfg Config) error {
	switch cfg.Driver {
	case DriverPostgres, "":
		if strings.TrimSpace(cfg.URL) != "" {
			log.Println("ℹ️ DATABASE_URL diset, lewati CREATE DATABASE")
			return nil
		}
		return ensurePostgres(cfg)
	case DriverMySQL:
		return ensureMySQL(cfg)
	case DriverSQLite:
		return nil
	}
	return fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
}

func ensurePostgres(cfg Config) error {
	admin := cfg
	admin.Name = "postgres"
	db, err := sql.Open("postgres", admin.PostgresDSN())
	if err != nil {
		return err
	}
	defer db.Close()

	var exists bool
	if err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)`, cfg.Name).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}
	if _, err := db.Exec("CREATE DATABASE " + pq.QuoteIdentifier(cfg.Name)); err != nil {
		return err
	}
	log.Printf("✅ Database %s dibuat", cfg.Name)
	return nil
}

func ensureMySQL(cfg Config) error {
	db, err := sql.Open("mysql", cfg.MySQLDSN(""))
	if err != nil {
		return err
	}
	defer db.Close()

	name := strings.ReplaceAll(cfg.Name, "`", "``")
	_, err = db.Exec("CREATE DATABASE IF NOT EXISTS `" + name + "` CHARACTER SET utf8mb4 COLLATE utf8mb4_unicode_ci")
	return err
}

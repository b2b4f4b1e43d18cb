package database

import (
	"fmt"
	"log"
	"net"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"officer_duty_backend/internals/configs"
)

var DB *gorm.DB

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// Config menampung parameter koneksi untuk ketiga dialect.
type Config struct {
	Driver   string
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	Path     string
}

func ConfigFromEnv() Config {
	driver := strings.ToLower(strings.TrimSpace(configs.GetEnv("DB_DRIVER", DriverPostgres)))
	cfg := Config{
		Driver:   driver,
		URL:      configs.GetEnv("DATABASE_URL"),
		Host:     configs.GetEnv("DB_HOST", "127.0.0.1"),
		User:     configs.GetEnv("DB_USER"),
		Password: configs.GetEnv("DB_PASSWORD"),
		Name:     configs.GetEnv("DB_NAME", "officer_duty_db"),
		SSLMode:  configs.GetEnv("DB_SSLMODE", "disable"),
		Path:     configs.GetEnv("DB_PATH", "officer_duty.db"),
	}
	switch driver {
	case DriverMySQL:
		cfg.Port = configs.GetEnv("DB_PORT", "3306")
	default:
		cfg.Port = configs.GetEnv("DB_PORT", "5432")
	}
	return cfg
}

// PostgresDSN membangun DSN key/value; DATABASE_URL menang kalau diset.
func (c Config) PostgresDSN() string {
	if strings.TrimSpace(c.URL) != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC application_name=officer_duty",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// MySQLDSN: dbName kosong dipakai saat CREATE DATABASE.
func (c Config) MySQLDSN(dbName string) string {
	mc := mysql.NewConfig()
	mc.User = c.User
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(c.Host, c.Port)
	mc.DBName = dbName
	mc.ParseTime = true
	mc.Loc = time.UTC
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}

func (c Config) SQLiteDSN() string {
	p := strings.TrimSpace(c.Path)
	if p == "" {
		p = "officer_duty.db"
	}
	sep := "?"
	if strings.Contains(p, "?") {
		sep = "&"
	}
	return p + sep + "_foreign_keys=on&_busy_timeout=5000"
}

func (c Config) Dialector() (gorm.Dialector, error) {
	switch c.Driver {
	case DriverPostgres, "":
		return postgres.New(postgres.Config{
			DSN:                  c.PostgresDSN(),
			PreferSimpleProtocol: true,
		}), nil
	case DriverMySQL:
		return gormMysql.Open(c.MySQLDSN(c.Name)), nil
	case DriverSQLite:
		return sqlite.Open(c.SQLiteDSN()), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", c.Driver)
	}
}

// Open membuka koneksi gorm dengan logger custom & error translation.
func Open(cfg Config) (*gorm.DB, error) {
	dialector, err := cfg.Dialector()
	if err != nil {
		return nil, err
	}
	return gorm.Open(dialector, &gorm.Config{
		Logger:         configs.NewGormLogger(),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
}

func ConnectDB() {
	cfg := ConfigFromEnv()
	log.Printf("🔌 Koneksi ke database (%s)...", cfg.Driver)

	db, err := Open(cfg)
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	if DB.Dialector.Name() == DriverSQLite {
		// SQLite hanya satu writer
		sqlDB.SetMaxOpenConns(1)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := Ping(DB); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func Ping(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database not initialized")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func Close() {
	if DB == nil {
		return
	}
	if sqlDB, err := DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-reservation/models"
)

// finishDSN forces the driver options the persistence layer depends on:
// DATE columns scanned as time.Time, and UPDATE row counts that report
// matched rather than changed rows.
func finishDSN(cfg *mysqldriver.Config) string {
	cfg.ParseTime = true
	cfg.ClientFoundRows = true
	if cfg.Params == nil {
		cfg.Params = map[string]string{}
	}
	if _, ok := cfg.Params["charset"]; !ok {
		cfg.Params["charset"] = "utf8mb4"
	}
	return cfg.FormatDSN()
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	port := u.Port()
	if port == "" {
		port = "3306"
	}
	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	cfg := mysqldriver.NewConfig()
	cfg.User = u.User.Username()
	cfg.Passwd, _ = u.User.Password()
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(u.Hostname(), port)
	cfg.DBName = dbName
	cfg.Loc = time.Local

	q := u.Query()
	if loc := q.Get("loc"); loc != "" {
		if l, err := time.LoadLocation(loc); err == nil {
			cfg.Loc = l
		}
		q.Del("loc")
	}
	q.Del("parseTime")
	q.Del("clientFoundRows")
	for k := range q {
		if cfg.Params == nil {
			cfg.Params = map[string]string{}
		}
		cfg.Params[k] = q.Get(k)
	}

	return finishDSN(cfg), nil
}

// ResolveMySQLDSN builds the driver DSN from a mysql:// URL, a raw DSN, or
// the discrete DB_* settings, in that order.
func ResolveMySQLDSN(db DatabaseConfig) (string, error) {
	if raw := strings.TrimSpace(db.URL); raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		cfg, err := mysqldriver.ParseDSN(raw)
		if err != nil {
			return "", fmt.Errorf("parse mysql dsn: %w", err)
		}
		return finishDSN(cfg), nil
	}

	cfg := mysqldriver.NewConfig()
	cfg.User = db.User
	cfg.Passwd = db.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(db.Host, db.Port)
	cfg.DBName = db.Name
	cfg.Loc = time.Local
	return finishDSN(cfg), nil
}

// ConnectDatabase opens the MySQL connection, migrates the schema and
// optionally seeds sample rooms.
func ConnectDatabase(cfg *Config, log *zap.Logger) (*gorm.DB, error) {
	dsn, err := ResolveMySQLDSN(cfg.Database)
	if err != nil {
		return nil, err
	}

	gormLogger := logger.New(
		zap.NewStdLog(log.Named("gorm")),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormLogLevel(cfg.Log.Level),
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(&models.Room{}, &models.Reservation{}); err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
	}

	if cfg.SeedSampleData {
		SeedDatabase(db, log)
	}
	return db, nil
}

func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "debug":
		return logger.Info
	case "error":
		return logger.Error
	default:
		return logger.Warn
	}
}

// SeedDatabase inserts a few rooms when the table is empty.
func SeedDatabase(db *gorm.DB, log *zap.Logger) {
	var roomCount int64
	if err := db.Model(&models.Room{}).Count(&roomCount).Error; err != nil {
		log.Warn("seed: count rooms", zap.Error(err))
		return
	}
	if roomCount > 0 {
		return
	}

	rooms := []models.Room{
		{Description: "Single room, garden view", NumberOfPerson: 1, Price: 4500},
		{Description: "Double room with balcony", NumberOfPerson: 2, Price: 7000, HavePrivateBathroom: true},
		{Description: "Twin room", NumberOfPerson: 2, Price: 6500},
		{Description: "Family suite", NumberOfPerson: 4, Price: 12000, HavePrivateBathroom: true},
	}
	if err := db.Create(&rooms).Error; err != nil {
		log.Warn("seed: create rooms", zap.Error(err))
		return
	}
	log.Info("sample rooms seeded", zap.Int("count", len(rooms)))
}

package database

import (
	"fmt"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func New(config *viper.Viper) *gorm.DB {
	dialector, err := dialectorFor(config)
	if err != nil {
		panic(err)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel(config.GetString("database.log_level"))),
	})

	if err != nil {
		panic(fmt.Errorf("failed to connect database: %w", err))
	}

	// sqlite allows a single writer.
	if config.GetString("database.driver") == "sqlite" {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.SetMaxOpenConns(1)
		}
	}

	return db
}

func dialectorFor(config *viper.Viper) (gorm.Dialector, error) {
	switch driver := config.GetString("database.driver"); driver {
	case "", "sqlite":
		path := config.GetString("database.sqlite.path")
		if path == "" {
			path = "promptquest.db"
		}
		return sqlite.Open(path), nil
	case "postgres":
		return postgres.Open(postgresDSN(config)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

func postgresDSN(config *viper.Viper) string {
	username := config.GetString("database.username")
	password := config.GetString("database.password")
	host := config.GetString("database.host")
	port := config.GetInt("database.port")
	dbname := config.GetString("database.dbname")
	sslmode := config.GetString("database.sslmode")
	if sslmode == "" {
		sslmode = "disable"
	}
	timezone := config.GetString("database.timezone")
	if timezone == "" {
		timezone = "UTC"
	}

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		host,
		username,
		password,
		dbname,
		port,
		sslmode,
		timezone,
	)
}

func logLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

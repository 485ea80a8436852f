package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

func NewViper() *viper.Viper {
	config := viper.New()

	if os.Getenv("ENV") == "production" {
		config.SetConfigName("config.prod")
	} else {
		config.SetConfigName("config")
	}

	config.SetConfigType("yaml")
	config.AddConfigPath(".")

	// PROMPTQUEST_DATABASE_DRIVER overrides database.driver, etc.
	config.SetEnvPrefix("promptquest")
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()

	setDefaults(config)

	if err := config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	}

	return config
}

func setDefaults(config *viper.Viper) {
	config.SetDefault("app.name", "promptquest-be")

	config.SetDefault("api.listen", ":8080")
	config.SetDefault("api.prefork", false)
	config.SetDefault("api.max_submission_bytes", 16*1024)
	config.SetDefault("api.cors.origins", "*")
	config.SetDefault("api.cors.allow_credentials", false)
	config.SetDefault("api.cors.max_age", 600)

	config.SetDefault("log.level", "info")
	config.SetDefault("log.format", "text")

	config.SetDefault("database.driver", "sqlite")
	config.SetDefault("database.sqlite.path", "promptquest.db")
	config.SetDefault("database.port", 5432)
	config.SetDefault("database.sslmode", "disable")
	config.SetDefault("database.timezone", "UTC")

	config.SetDefault("progress.store", "database")
	config.SetDefault("redis.address", "localhost:6379")
	config.SetDefault("redis.db", 0)
	config.SetDefault("redis.key", "promptquest:progress")

	config.SetDefault("quest.catalog_path", "")
	config.SetDefault("quest.session_size", 3)
	config.SetDefault("quest.advisory_limit", 500)
	config.SetDefault("quest.recent_limit", 5)
}

package config

import (
	"context"
	"errors"
	"time"

	"github.com/evandrarf/promptquest-be/internal/delivery/http/handler"
	"github.com/evandrarf/promptquest-be/internal/delivery/http/middleware"
	"github.com/evandrarf/promptquest-be/internal/delivery/http/repository"
	"github.com/evandrarf/promptquest-be/internal/delivery/http/route"
	"github.com/evandrarf/promptquest-be/internal/delivery/http/usecase"
	"github.com/evandrarf/promptquest-be/internal/pkg/catalog"
	"github.com/evandrarf/promptquest-be/internal/pkg/progression"
	"github.com/evandrarf/promptquest-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type BootstrapConfig struct {
	Api       *fiber.App
	Config    *viper.Viper
	DB        *gorm.DB
	Log       *logrus.Logger
	Validator *validate.Validator
}

// Bootstrap wires the quest routes onto config.Api. The returned func
// releases connections opened here and should run after the server stops.
func Bootstrap(config *BootstrapConfig) func() {

	mid := middleware.NewMiddleware(&middleware.MiddlewareConfig{
		Log:    config.Log,
		Config: config.Config,
	})

	questCatalog := loadCatalog(config)
	store, closeStore := progressStore(config)
	tracker := progression.NewTracker(store, config.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// A corrupt record starts the user over and is replaced on the next save.
	// Any other failure stops startup so stored progress is never overwritten.
	if err := tracker.Load(ctx); err != nil {
		if !errors.Is(err, progression.ErrCorruptProgress) {
			config.Log.Fatalf("Failed to load user progress: %v", err)
		}
		config.Log.WithError(err).Warn("Stored user progress is corrupt, starting from level 1")
	}

	promptAttemptRepo := repository.NewPromptAttemptRepository(config.DB)
	questUsecase := usecase.NewQuestUsecase(usecase.QuestConfig{
		DB:            config.DB,
		Catalog:       questCatalog,
		Tracker:       tracker,
		Repository:    promptAttemptRepo,
		Log:           config.Log,
		SessionSize:   config.Config.GetInt("quest.session_size"),
		AdvisoryLimit: config.Config.GetInt("quest.advisory_limit"),
		RecentLimit:   config.Config.GetInt("quest.recent_limit"),
	})
	questHandler := handler.NewQuestHandler(config.Validator, config.Log, questUsecase)

	route.Setup(&route.RouteConfig{
		Api:          config.Api,
		Middleware:   mid,
		QuestHandler: questHandler,
	})

	return closeStore
}

func loadCatalog(config *BootstrapConfig) *catalog.Catalog {
	path := config.Config.GetString("quest.catalog_path")
	if path == "" {
		config.Log.Info("Using built-in quest catalog")
		return catalog.Default()
	}

	c, err := catalog.LoadFile(path)
	if err != nil {
		config.Log.Fatalf("Failed to load quest catalog: %v", err)
	}
	config.Log.WithFields(logrus.Fields{
		"path":   path,
		"quests": c.Len(),
	}).Info("Quest catalog loaded")
	return c
}

func progressStore(config *BootstrapConfig) (progression.ProgressStore, func()) {
	switch store := config.Config.GetString("progress.store"); store {
	case "redis":
		client, err := NewRedis(config.Config)
		if err != nil {
			config.Log.Fatalf("Failed to connect progress store: %v", err)
		}
		config.Log.WithField("address", config.Config.GetString("redis.address")).Info("Using redis progress store")
		return repository.NewRedisProgressRepository(client, config.Config.GetString("redis.key")), func() {
			if err := client.Close(); err != nil {
				config.Log.Errorf("Redis close error: %v", err)
			}
		}
	case "", "database":
		return repository.NewProgressRepository(config.DB), func() {}
	default:
		config.Log.Fatalf("Unknown progress store %q", store)
		return nil, func() {}
	}
}

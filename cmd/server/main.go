package main

import (
	"os"

	"github.com/arnavshah/rotation-scheduler/pkg/config"
	"github.com/arnavshah/rotation-scheduler/pkg/database"
	"github.com/arnavshah/rotation-scheduler/pkg/handlers"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

func main() {
	config.LoadEnvFile()

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	cfg, cfgErr := config.Load()
	level := os.Getenv("LOG_LEVEL")
	if cfgErr == nil {
		level = cfg.LogLevel
	}

	logger, err := newLogger(level)
	if err != nil {
		panic(err)
	}
	if cfgErr != nil {
		logger.Fatal("could not load config", zap.Error(cfgErr))
	}
	defer func() { _ = logger.Sync() }()

	roster, err := cfg.Roster()
	if err != nil {
		logger.Fatal("invalid roster", zap.Error(err))
	}

	db, err := database.Open(cfg.DatabaseURL, cfg.DataPath)
	if err != nil {
		logger.Fatal("could not open usage database", zap.Error(err))
	}

	h := &handlers.Handler{DB: db, Roster: roster, Logger: logger}
	r := handlers.NewRouter(h)

	logger.Info("server starting", zap.String("port", cfg.Port), zap.Any("roster", roster.Agents()))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("could not run server", zap.Error(err))
	}
}

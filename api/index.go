package handler

import (
	"net/http"

	"github.com/arnavshah/rotation-scheduler/pkg/config"
	"github.com/arnavshah/rotation-scheduler/pkg/database"
	"github.com/arnavshah/rotation-scheduler/pkg/handlers"
	"github.com/arnavshah/rotation-scheduler/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

var r *gin.Engine

func init() {
	// Load .env if it exists (for local testing with vercel dev)
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	logger, err := zap.NewProduction()
	if err != nil {
		logger = zap.NewNop()
	}

	roster := models.DefaultRoster()
	h := &handlers.Handler{Roster: roster, Logger: logger}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config rejected, using defaults", zap.Error(err))
	} else {
		if rr, err := cfg.Roster(); err == nil {
			h.Roster = rr
		}
		// Usage tracking is optional on serverless; run without it if the DB is unreachable
		if db, err := database.Open(cfg.DatabaseURL, cfg.DataPath); err == nil {
			h.DB = db
		} else {
			logger.Warn("usage tracking disabled", zap.Error(err))
		}
	}

	gin.SetMode(gin.ReleaseMode)
	r = handlers.NewRouter(h)
}

// Handler is the entry point for Vercel Go Runtime
func Handler(w http.ResponseWriter, r_req *http.Request) {
	r.ServeHTTP(w, r_req)
}

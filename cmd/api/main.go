package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/delegends/barber-api/internal/config"
	dbpkg "github.com/delegends/barber-api/internal/db"
	"github.com/delegends/barber-api/internal/logger"
	"github.com/delegends/barber-api/internal/middleware"
	"github.com/delegends/barber-api/internal/routes"
)

func main() {

	cfg := config.Load()

	log := logger.Init(cfg.IsProduction())
	defer log.Sync()

	db := dbpkg.NewDB(cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}

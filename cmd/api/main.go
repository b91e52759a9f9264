package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/docterbee/membership-system/internal/config"
	dbpkg "github.com/docterbee/membership-system/internal/db"
	infraRepo "github.com/docterbee/membership-system/internal/infra/repository"
	"github.com/docterbee/membership-system/internal/logger"
	"github.com/docterbee/membership-system/internal/middleware"
	"github.com/docterbee/membership-system/internal/routes"
	ucadmin "github.com/docterbee/membership-system/internal/usecase/admin"
)

func main() {

	cfg := config.Load()
	log := logger.Init(cfg.LogLevel, cfg.Env == "development")

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal().Err(err).Msg("failed to connect redis")
	}

	// First-run provisioning: seed the default admin if the table is empty.
	bootstrap := ucadmin.NewBootstrap(infraRepo.NewAdminGormRepository(db))
	if err := bootstrap.Execute(context.Background(), cfg.AdminBootstrapPassword); err != nil {
		log.Fatal().Err(err).Msg("admin bootstrap failed")
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

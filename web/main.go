package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Shin-da/ojt-tracking-system-sub000/config"
	"github.com/Shin-da/ojt-tracking-system-sub000/core"
	"github.com/Shin-da/ojt-tracking-system-sub000/infrastructure/filesystem"
	"github.com/Shin-da/ojt-tracking-system-sub000/logger"
	"github.com/Shin-da/ojt-tracking-system-sub000/web/handlers/auth"
	"github.com/Shin-da/ojt-tracking-system-sub000/web/handlers/document"
	"github.com/Shin-da/ojt-tracking-system-sub000/web/handlers/holiday"
	"github.com/Shin-da/ojt-tracking-system-sub000/web/handlers/report"
	"github.com/Shin-da/ojt-tracking-system-sub000/web/handlers/settings"
	"github.com/Shin-da/ojt-tracking-system-sub000/web/handlers/task"
	"github.com/Shin-da/ojt-tracking-system-sub000/web/handlers/timelog"
	"github.com/Shin-da/ojt-tracking-system-sub000/web/middlewares"
)

func main() {
	config.Load()
	logger.Init()
	defer logger.Sync()

	dbLogLevel := core.LogLevelWarn
	if config.Cfg.IsDevelopment() {
		dbLogLevel = core.LogLevelInfo
	}

	dm, err := core.New(config.Cfg.GetDSN(), config.Cfg.MySQLMaxConns, dbLogLevel)
	if err != nil {
		logger.Logger.Fatal("database connection failed", zap.Error(err))
	}
	defer dm.Close()

	blobs, err := buildBlobStorage()
	if err != nil {
		logger.Logger.Fatal("document storage init failed", zap.Error(err))
	}

	if config.Cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	auth.Register(r.Group("/"), dm.DB)

	protected := r.Group("/api")
	protected.Use(middlewares.Authentication([]byte(config.Cfg.JWTSecret)))
	{
		timelog.Register(protected, dm.DB)
		holiday.Register(protected, dm.DB)
		task.Register(protected, dm.DB)
		report.Register(protected, dm.DB)
		settings.Register(protected, dm.DB)
		document.Register(protected, dm.DB, blobs)
	}

	addr := config.Cfg.ServerHost + ":" + config.Cfg.ServerPort
	logger.Logger.Info("server listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Logger.Fatal("server stopped", zap.Error(err))
	}
}

func buildBlobStorage() (filesystem.Storage, error) {
	if config.Cfg.DocumentBackend == "s3" {
		return filesystem.NewS3Storage(context.Background(), config.Cfg.DocumentBucket)
	}
	return filesystem.NewDiskStorage(config.Cfg.DocumentDir)
}

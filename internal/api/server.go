package api

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "ordermanager/docs"
	"ordermanager/internal/app/config"
	"ordermanager/internal/app/handler"
	"ordermanager/internal/app/metrics"
	"ordermanager/internal/app/middleware"
	"ordermanager/internal/app/redis"
	"ordermanager/internal/app/repository"
	"ordermanager/internal/app/storage"
	"ordermanager/internal/pkg"
	"ordermanager/templates"
)

// StartServer поднимает зависимости из конфигурации и обслуживает HTTP до сигнала остановки
func StartServer(ctx context.Context) error {
	logrus.Info("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	if err := config.SetupLogging(cfg.Log); err != nil {
		return err
	}
	if cfg.DSN == "" {
		return errors.New("DSN string is empty, check DB_HOST and DB_NAME")
	}
	if err := cfg.JWT.Validate(); err != nil {
		return err
	}

	repo, err := repository.New(cfg.DSN)
	if err != nil {
		return err
	}

	var blacklist middleware.TokenBlacklist
	if cfg.Redis.Enabled() {
		redisClient, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer redisClient.Close()
		blacklist = redisClient
	} else {
		logrus.Warn("REDIS_HOST is not set, logout will not revoke tokens")
	}

	var images handler.ImageStore
	if cfg.MinIO.Enabled() {
		minioClient, err := storage.NewMinIOClient(ctx, cfg.MinIO)
		if err != nil {
			return err
		}
		images = minioClient
	} else {
		logrus.Warn("MINIO_ENDPOINT is not set, services are shown without images")
	}

	router, err := NewRouter(cfg, repo, blacklist, images)
	if err != nil {
		return err
	}

	err = pkg.NewApp(cfg, router).RunApp(ctx)
	logrus.Info("Server down")
	return err
}

// NewRouter собирает gin с middleware, страницами, API и служебными маршрутами
func NewRouter(cfg *config.Config, repo *repository.Repository, blacklist middleware.TokenBlacklist, images handler.ImageStore) (*gin.Engine, error) {
	tmpl, err := templates.Parse()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(gin.Recovery(), middleware.RequestLogger(), metrics.Middleware(), cors.New(corsConfig(cfg.CORS)))

	am := middleware.NewAuthMiddleware(blacklist, cfg)
	authHandler := handler.NewAuthHandler(repo, am, cfg)

	authHandler.RegisterRoutes(r)
	handler.NewHandler(repo, images).RegisterRoutes(r, am)
	handler.NewAPIHandler(repo, images, authHandler).RegisterAPIRoutes(r, am)

	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r, nil
}

func corsConfig(c config.CORSConfig) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(c.AllowOrigins) == 0 || slices.Contains(c.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = c.AllowOrigins
	}
	return corsCfg
}

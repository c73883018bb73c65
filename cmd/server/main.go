package main

import (
	"context"
	"log"
	"time"

	"invoice-dashboard-backend/internal/config"
	"invoice-dashboard-backend/internal/db"
	"invoice-dashboard-backend/internal/fixtures"
	"invoice-dashboard-backend/internal/logger"
	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/routes"
	"invoice-dashboard-backend/internal/viewcache"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zlog, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Sync()

	gdb, err := db.Open(cfg.Database)
	if err != nil {
		zlog.Fatal("connect to database", zap.Error(err))
	}
	defer db.Release(gdb)

	if err := gdb.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Invoice{},
		&models.Revenue{},
		&models.SeedRun{},
	); err != nil {
		zlog.Fatal("migrate schema", zap.Error(err))
	}

	var cache viewcache.Cache
	if cfg.Redis.Addr != "" {
		rdb, err := db.NewRedisClient(cfg.Redis)
		if err != nil {
			zlog.Fatal("connect to redis", zap.Error(err))
		}
		cache = viewcache.NewRedisCache(rdb, zlog)
	} else {
		zlog.Info("no redis address configured, using in-memory view cache")
		cache = viewcache.NewMemoryCache()
	}

	r := gin.Default()
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORS.Origin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, routes.Deps{
		DB:       gdb,
		Cache:    cache,
		Log:      zlog,
		Fixtures: fixtures.Placeholder(),
		// Each seed run gets its own store handle, released when the
		// run finishes regardless of outcome.
		OpenSeedStore: func(ctx context.Context) (*gorm.DB, func(), error) {
			seedDB, err := db.Open(cfg.Database)
			if err != nil {
				return nil, nil, err
			}
			release := func() {
				if err := db.Release(seedDB); err != nil {
					zlog.Warn("release seed store", zap.Error(err))
				}
			}
			return seedDB, release, nil
		},
	})

	if err := r.Run(cfg.HTTP.Addr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

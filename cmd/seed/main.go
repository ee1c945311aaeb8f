package main

import (
	"context"
	"log"
	"os"
	"time"

	"shop-service/internal/config"
	"shop-service/internal/infra"
	mmysql "shop-service/internal/infra/mysql"
	rcache "shop-service/internal/infra/redis"
	"shop-service/internal/logger"
	mysqlrepo "shop-service/internal/repository/mysql"
	"shop-service/internal/services"

	"go.uber.org/zap"
)

// seed replaces all customers, products and orders with the sample data set.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := logger.Initialize(cfg.Env); err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	db, err := mmysql.Open(cfg)
	if err != nil {
		logger.Log.Fatal("db: connect", zap.Error(err))
	}

	// Deleted products must not keep answering from the server's cache.
	var cache infra.ProductCache
	if cfg.RedisHost != "" {
		cache = rcache.NewProductCache(rcache.NewClient(cfg.RedisHost), time.Minute)
	}

	userRepo := mysqlrepo.NewUserRepository(db)
	auth := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	seeder := services.NewSeeder(
		mysqlrepo.NewCustomerRepository(db),
		mysqlrepo.NewProductRepository(db),
		mysqlrepo.NewOrderRepository(db),
		cache,
		auth,
	)

	admin := services.AdminCredentials{
		Username: os.Getenv("SEED_ADMIN_USERNAME"),
		Password: os.Getenv("SEED_ADMIN_PASSWORD"),
	}
	if err := seeder.Run(context.Background(), admin); err != nil {
		logger.Log.Fatal("seed failed", zap.Error(err))
	}
}

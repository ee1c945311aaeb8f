package main

import (
	"log"
	"time"

	"shop-service/internal/config"
	"shop-service/internal/controllers/http"
	"shop-service/internal/infra"
	mmysql "shop-service/internal/infra/mysql"
	"shop-service/internal/infra/rabbitmq"
	rcache "shop-service/internal/infra/redis"
	"shop-service/internal/logger"
	mysqlrepo "shop-service/internal/repository/mysql"
	"shop-service/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

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

	customerRepo := mysqlrepo.NewCustomerRepository(db)
	productRepo := mysqlrepo.NewProductRepository(db)
	orderRepo := mysqlrepo.NewOrderRepository(db)
	userRepo := mysqlrepo.NewUserRepository(db)

	var cache infra.ProductCache
	if cfg.RedisHost != "" {
		cache = rcache.NewProductCache(rcache.NewClient(cfg.RedisHost), time.Minute)
	} else {
		logger.Log.Info("REDIS_HOST not set, product cache disabled")
	}

	var publisher rabbitmq.PublisherInterface = rabbitmq.NoopPublisher{}
	if cfg.RabbitMQURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQURL, cfg.RabbitMQExchange)
		if err != nil {
			logger.Log.Fatal("failed to init publisher", zap.Error(err))
		}
		defer p.Close()
		publisher = p
	} else {
		logger.Log.Info("RABBITMQ_URL not set, events are discarded")
	}

	customers := services.NewCustomerService(customerRepo, publisher)
	products := services.NewProductService(productRepo, cache, publisher)
	orders := services.NewOrderService(orderRepo, customerRepo, productRepo, publisher)
	auth := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	limiter := http.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, 10*time.Minute)

	handler := http.NewHandler(customers, products, orders, auth, limiter)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), logger.RequestLogger(), http.Metrics())

	handler.RegisterRoutes(r)

	logger.Log.Info("starting shop service", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatal("server run", zap.Error(err))
	}
}

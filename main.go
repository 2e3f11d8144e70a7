package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/cache"
	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/cartstore"
	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/config"
	orderControllers "github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/controllers/order"
	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/events"
	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/logger"
	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/middleware"
	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/models"
	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/orderstore"
	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/routes"
	"github.com/VaibhavPatil04-cloud/ecommerce-jewelry-shop/seed"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Server.Env); err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("starting server", zap.String("env", cfg.Server.Env), zap.String("port", cfg.Server.Port))

	db := initDatabase(cfg, log)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatal("auto-migrate failed", zap.Error(err))
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	userCarts := cartstore.NewGormStore(db)
	guestCarts := cartstore.NewRedisStore(redisClient, cartstore.NewGormProductFinder(db), cfg.Auth.GuestTTL)
	orders := orderstore.NewGormStore(db)
	productCache := cache.NewProductCache(redisClient)

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.Events.URL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.Events.URL, cfg.Events.Exchange)
		if err != nil {
			log.Warn("event publisher unavailable, continuing without it", zap.Error(err))
		} else {
			publisher = amqpPublisher
		}
	}
	defer publisher.Close()

	if err := seed.Admin(db, cfg.Admin); err != nil {
		log.Fatal("admin seed failed", zap.Error(err))
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger)
	r.Use(middleware.Metrics)
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, routes.Deps{
		DB:           db,
		Config:       cfg,
		UserCarts:    userCarts,
		GuestCarts:   guestCarts,
		Orders:       orders,
		ProductCache: productCache,
		Publisher:    publisher,
		OrderHub:     orderControllers.NewHub(),
	})

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "timestamp": time.Now().Format(time.RFC3339)})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}

func initDatabase(cfg *config.Config, log *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.Database.URL), &gorm.Config{})
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	return db
}

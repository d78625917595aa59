package bootstrap

import (
	"context"
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"miva-analytics-be/internal/config"
	"miva-analytics-be/internal/controller"
	"miva-analytics-be/internal/pkg/logger"
	"miva-analytics-be/internal/pkg/mailer"
	"miva-analytics-be/internal/pkg/serverutils"
	"miva-analytics-be/internal/repository/cache"
	"miva-analytics-be/internal/repository/memory"
	"miva-analytics-be/internal/repository/unitofwork"
	"miva-analytics-be/internal/service"
	"miva-analytics-be/internal/websocket"
	"miva-analytics-be/pkg/dashboard"
	pktNats "miva-analytics-be/pkg/nats"
)

const auditTopic = "audit-events"

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	DashboardController controller.IDashboardController
	TableController     controller.ITableController
	QueryController     controller.IQueryController

	// WebSockets
	StatsHandler *websocket.StatsHandler

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Shared infrastructure
	DB     *gorm.DB
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS (optional; audit events still land in the log without it)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis (optional; stats queries fall through to the database)
	var rdb *redis.Client
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb = redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Stats caching disabled", err)
		rdb = nil
	}
	statsCache := cache.NewStatsCache(rdb, time.Duration(cfg.App.StatsCacheTTLSec)*time.Second)

	// In-memory operator session storage
	sessionTTL := time.Duration(cfg.Auth.SessionTTL) * time.Minute
	sessionRepo := memory.NewSessionRepository(sessionTTL)

	// 3. Services
	publisherService := service.NewPublisherService(auditTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, auditTopic, sysLogger, natsPub)

	credentialChecker := service.NewEnvCredentialChecker(cfg.Auth)
	authService := service.NewAuthService(credentialChecker, sessionRepo, publisherService, sessionTTL)

	aggregator := dashboard.NewAggregator()
	reportService := service.NewReportService(uowFactory, aggregator, statsCache, sysLogger)
	tableService := service.NewTableService(uowFactory, emailService, publisherService)
	queryService := service.NewQueryService(uowFactory, publisherService)

	// 4. Middleware & Controllers
	var authMiddleware fiber.Handler = serverutils.NewAuthMiddleware(sessionRepo)

	return &Container{
		AuthController:      controller.NewAuthController(authService, authMiddleware),
		DashboardController: controller.NewDashboardController(reportService, authMiddleware),
		TableController:     controller.NewTableController(tableService, authMiddleware),
		QueryController:     controller.NewQueryController(queryService, authMiddleware),
		StatsHandler:        websocket.NewStatsHandler(reportService, sessionRepo, sysLogger),
		ConsumerService:     consumerService,
		DB:                  db,
		Logger:              sysLogger,
	}
}

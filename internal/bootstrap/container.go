package bootstrap

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ghafer-khalfaoui/ai-chatbot/internal/config"
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/controller"
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/pkg/logger"
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/repository/memory"
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/repository/redisstore"
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/repository/unitofwork"
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/service"
	"github.com/ghafer-khalfaoui/ai-chatbot/pkg/advisor"
	"github.com/ghafer-khalfaoui/ai-chatbot/pkg/dialog"
	"github.com/ghafer-khalfaoui/ai-chatbot/pkg/nlp/extractor"
	"github.com/ghafer-khalfaoui/ai-chatbot/pkg/nlp/intent"
	"github.com/ghafer-khalfaoui/ai-chatbot/pkg/store"

	pktNats "github.com/ghafer-khalfaoui/ai-chatbot/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController    controller.IChatController
	CatalogController controller.ICatalogController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Infrastructure handles main.go shuts down on exit
	Logger  logger.ILogger
	NatsPub *pktNats.Publisher
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS mirror is optional; without a URL the turn events stay local.
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		pub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			natsPub = pub
		}
	}

	// 3. NLP layer
	ex := extractor.New()
	classifier := intent.NewHTTPClassifier(cfg.Nlp.ClassifierBaseURL, 10*time.Second)

	// 4. Context store selection
	var contextStore store.ContextStore
	if cfg.App.ContextStore == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		contextStore = redisstore.NewContextRepository(rdb, sysLogger)
		log.Printf("[INFO] Using Context Store: REDIS")
	} else {
		contextStore = memory.NewContextRepository()
		log.Printf("[INFO] Using Context Store: MEMORY")
	}

	sessionTimeout := time.Duration(cfg.Nlp.SessionTimeoutSecs) * time.Second
	contexts := dialog.NewContextManager(contextStore, ex, sessionTimeout)

	// 5. Domain core
	adv := advisor.New(advisor.Config{
		MaxSemesterCredits:   cfg.Advisor.MaxSemesterCredits,
		SeniorHoursThreshold: cfg.Advisor.SeniorHoursThreshold,
		GraduationHours:      cfg.Advisor.GraduationHours,
		LowCreditWarning:     cfg.Advisor.LowCreditWarning,
		ElectiveTarget:       advisor.DefaultConfig().ElectiveTarget,
	})

	catalogService := service.NewCatalogService(uowFactory, ex, sysLogger)

	router := dialog.NewRouter(
		contexts,
		catalogService,
		adv,
		classifier,
		ex,
		cfg.Nlp.ConfidenceThreshold,
		initDialogLogger(),
	)

	// 6. Services
	publisherService := service.NewPublisherService(cfg.App.TurnTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.TurnTopic, uowFactory, sysLogger)

	chatService := service.NewChatService(
		uowFactory,
		router,
		contexts,
		publisherService,
		natsPub,
		sysLogger,
	)

	// 7. Controllers
	chatController := controller.NewChatController(chatService)
	catalogController := controller.NewCatalogController(catalogService)

	return &Container{
		ChatController:    chatController,
		CatalogController: catalogController,
		ConsumerService:   consumerService,
		Logger:            sysLogger,
		NatsPub:           natsPub,
	}
}

// initDialogLogger writes the per-turn dialogue trace to its own file
// so the main log stays readable.
func initDialogLogger() *log.Logger {
	logPath := filepath.Join(".", "logs", "dialog.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(os.Stdout, "[DIALOG] ", log.LstdFlags)
	}
	return log.New(file, "", log.LstdFlags)
}

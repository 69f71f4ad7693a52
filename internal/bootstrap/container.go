package bootstrap

import (
	"context"
	"log"

	"todonotediary-be/internal/config"
	"todonotediary-be/internal/controller"
	"todonotediary-be/internal/handler"
	"todonotediary-be/internal/pkg/logger"
	"todonotediary-be/internal/repository/contract"
	"todonotediary-be/internal/repository/implementation"
	"todonotediary-be/internal/repository/local"
	"todonotediary-be/internal/repository/remote"
	"todonotediary-be/internal/repository/watermark"
	"todonotediary-be/internal/service"
	"todonotediary-be/internal/websocket"
	"todonotediary-be/pkg/database"

	pktNats "todonotediary-be/pkg/nats"

	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	AuthController  controller.IAuthController
	TodoController  controller.ITodoController
	NoteController  controller.INoteController
	DiaryController controller.IDiaryController
	SyncController  controller.ISyncController

	// WebSocket change feed
	ChangeFeedHandler *handler.ChangeFeedHandler
	WebSocketHub      *websocket.Hub

	// Shared resources main.go may need to flush/close
	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Stores
	// The document store is the source of truth and is required.
	mongoDB, err := database.NewMongoDatabase(cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatalf("[FATAL] Failed to connect to MongoDB: %v", err)
	}

	todoRemote := remote.NewTodoRemoteStore(mongoDB, sysLogger)
	noteRemote := remote.NewNoteRemoteStore(mongoDB, sysLogger)
	diaryRemote := remote.NewDiaryRemoteStore(mongoDB, sysLogger)
	userStore := remote.NewUserRemoteStore(mongoDB, sysLogger)

	// The relational mirror is optional. Without it the repositories run
	// remote-only and sync becomes a no-op.
	var todoLocal contract.LocalTodoStore
	var noteLocal contract.LocalNoteStore
	var diaryLocal contract.LocalDiaryStore
	if cfg.Database.Connection != "" {
		gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			log.Fatalf("[FATAL] Failed to connect to database: %v", err)
		}
		todoLocal = local.NewTodoLocalStore(gormDB)
		noteLocal = local.NewNoteLocalStore(gormDB)
		diaryLocal = local.NewDiaryLocalStore(gormDB)
	} else {
		log.Println("[INFO] No DB_CONNECTION_STRING set, running remote-only")
	}

	// 3. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
		natsSub = nil
	}

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

	// WebSocket hub with its own log file to keep the main log readable.
	wsLogger := logger.NewIsolatedLogger("logs/changefeed.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 4. Repositories
	todoRepo := implementation.NewTodoRepository(todoRemote, todoLocal, sysLogger)
	noteRepo := implementation.NewNoteRepository(noteRemote, noteLocal, sysLogger)
	diaryRepo := implementation.NewDiaryRepository(diaryRemote, diaryLocal, sysLogger)
	watermarks := watermark.NewRedisStore(rdb)

	// 5. Services
	todoService := service.NewTodoService(todoRepo, natsPub, sysLogger)
	noteService := service.NewNoteService(noteRepo, natsPub, sysLogger)
	diaryService := service.NewDiaryService(diaryRepo, natsPub, sysLogger)
	syncService := service.NewSyncService(todoRepo, noteRepo, diaryRepo, watermarks, natsPub, sysLogger)
	authService := service.NewAuthService(userStore)

	// Change feed worker: relays bus events to connected websockets.
	if natsSub != nil {
		changeFeed := service.NewChangeFeedService(natsSub, wsHub, wsLogger)
		go func() {
			if err := changeFeed.Start(); err != nil {
				sysLogger.Warn("Bootstrap", "change feed failed to start", map[string]interface{}{"error": err.Error()})
			}
		}()
	}

	// 6. Controllers
	return &Container{
		AuthController:  controller.NewAuthController(authService),
		TodoController:  controller.NewTodoController(todoService),
		NoteController:  controller.NewNoteController(noteService),
		DiaryController: controller.NewDiaryController(diaryService),
		SyncController:  controller.NewSyncController(syncService),

		ChangeFeedHandler: handler.NewChangeFeedHandler(wsHub, wsLogger),
		WebSocketHub:      wsHub,
		Logger:            sysLogger,
	}
}

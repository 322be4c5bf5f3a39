package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tradegate/internal/config"
	"tradegate/internal/db"
	"tradegate/internal/execution"
	"tradegate/internal/handler"
	"tradegate/internal/job"
	"tradegate/internal/notify"
	"tradegate/internal/repository"
	"tradegate/internal/service"
	"tradegate/internal/store"
	"tradegate/internal/trust"
	"tradegate/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	_ "tradegate/docs"
)

var (
	loadEnvFunc             = godotenv.Load
	loadConfigFunc          = config.Load
	initPostgresFunc        = db.InitPostgres
	initRedisFunc           = store.InitRedis
	initTracerFunc          = tracing.InitTracer
	newExecutionRepoFunc    = repository.NewExecutionRepository
	newAuditRepoFunc        = repository.NewAuditRepository
	newStoreFunc            = store.New
	newDispatcherFunc       = notify.NewDispatcher
	newSignalServiceFunc    = service.NewSignalService
	newManagerFunc          = trust.NewManager
	newRecorderFunc         = execution.NewRecorder
	newGateFunc             = trust.NewGate
	newAuthServiceFunc      = service.NewAuthorizationService
	newEmotionPollerFunc    = job.NewEmotionPoller
	newUndoSweeperFunc      = job.NewUndoSweeper
	newOutcomeDebouncerFunc = job.NewOutcomeDebouncer
	startJobFunc            = func(ctx context.Context, run func(context.Context)) { go run(ctx) }
	startTelegramBotFunc    = notify.StartTelegramBot
	newHandlerFunc          = handler.New
	newRouterFunc           = gin.Default
	setupSignalNotify       = signal.Notify
	waitForSignalFunc       = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc     = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc  = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

// @title           Tradegate API
// @version         1.0
// @description     A personality-aware trade authorization engine with OpenTelemetry tracing.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey ApiKeyAuth
// @in                         header
// @name                       X-API-Key
func main() {
	loadEnvFunc()

	cfg := loadConfigFunc()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init Postgres and Redis
	os.Setenv("DATABASE_URL", cfg.DatabaseURL)
	os.Setenv("REDIS_URL", cfg.RedisURL)
	initPostgresFunc(ctx)
	initRedisFunc(ctx)

	// Init tracing
	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	// Create repositories and run migrations
	execRepo := newExecutionRepoFunc(db.Pool, tracer)
	auditRepo := newAuditRepoFunc(db.Pool, tracer)
	if db.Pool != nil {
		if err := execRepo.RunMigrations(ctx); err != nil {
			log.Fatalf("failed to run execution migrations: %v", err)
		}
		if err := auditRepo.RunMigrations(ctx); err != nil {
			log.Fatalf("failed to run audit migrations: %v", err)
		}
	}

	// Engine state lives in Redis; operator limit defaults seed fresh reads
	st := newStoreFunc(tracer, store.Client)
	st.SetDefaultLimits(cfg.LimitDefaults)

	dispatcher := newDispatcherFunc()

	// Core services: personalization, trust state machine, execution recording
	signals := newSignalServiceFunc(tracer, st, auditRepo)
	manager := newManagerFunc(tracer, st, auditRepo, dispatcher)

	recorder := newRecorderFunc(tracer, execRepo, st, auditRepo, dispatcher,
		time.Duration(cfg.UndoWindowSecs)*time.Second)
	if db.Pool != nil {
		if err := recorder.Hydrate(ctx); err != nil {
			log.Printf("failed to hydrate execution history: %v", err)
		}
	}

	safety := trust.DefaultSafetyConfig()
	safety.AccountValue = cfg.AccountValue
	safety.MaxDailyDrawdownPct = cfg.MaxDailyDrawdownPct
	safety.DailyTradeHardCap = cfg.DailyTradeHardCap
	gate := newGateFunc(tracer, manager, recorder, signals, safety)

	authService := newAuthServiceFunc(tracer, manager, gate, recorder, st, auditRepo)

	// Background jobs (goroutines, stopped by ctx cancel)
	debouncer := newOutcomeDebouncerFunc(tracer, signals, time.Duration(cfg.RefreshDebounceMs)*time.Millisecond)
	authService.SetOutcomeHook(debouncer.Trigger)

	poller := newEmotionPollerFunc(tracer, signals, dispatcher, time.Duration(cfg.EmotionPollSecs)*time.Second)
	sweeper := newUndoSweeperFunc(tracer, recorder, time.Second)
	startJobFunc(ctx, poller.Start)
	startJobFunc(ctx, sweeper.Start)
	startJobFunc(ctx, debouncer.Start)

	// Start Telegram bot
	os.Setenv("TELEGRAM_BOT_TOKEN", cfg.TelegramBotToken)
	os.Setenv("TELEGRAM_CHAT_ID", cfg.TelegramChatID)
	startTelegramBotFunc(dispatcher, authService)

	// Create handlers and routes
	h := newHandlerFunc(tracer, signals, authService)

	r := newRouterFunc()
	r.Use(otelgin.Middleware("tradegate"))

	h.RegisterRoutes(r, cfg.APIKey)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}

	go func() {
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Println("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}

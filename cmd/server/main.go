package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/lanzy-lanzy/tailoring/internal/application/catalog"
	financeapp "github.com/lanzy-lanzy/tailoring/internal/application/finance"
	identityapp "github.com/lanzy-lanzy/tailoring/internal/application/identity"
	inventoryapp "github.com/lanzy-lanzy/tailoring/internal/application/inventory"
	notificationapp "github.com/lanzy-lanzy/tailoring/internal/application/notification"
	partnerapp "github.com/lanzy-lanzy/tailoring/internal/application/partner"
	reportapp "github.com/lanzy-lanzy/tailoring/internal/application/report"
	tradeapp "github.com/lanzy-lanzy/tailoring/internal/application/trade"
	workshopapp "github.com/lanzy-lanzy/tailoring/internal/application/workshop"
	"github.com/lanzy-lanzy/tailoring/internal/infrastructure/auth"
	"github.com/lanzy-lanzy/tailoring/internal/infrastructure/config"
	"github.com/lanzy-lanzy/tailoring/internal/infrastructure/logger"
	"github.com/lanzy-lanzy/tailoring/internal/infrastructure/persistence"
	"github.com/lanzy-lanzy/tailoring/internal/infrastructure/printing"
	"github.com/lanzy-lanzy/tailoring/internal/infrastructure/sms"
	"github.com/lanzy-lanzy/tailoring/internal/infrastructure/telemetry"
	"github.com/lanzy-lanzy/tailoring/internal/interfaces/http/handler"
	"github.com/lanzy-lanzy/tailoring/internal/interfaces/http/middleware"
	"github.com/lanzy-lanzy/tailoring/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting tailoring backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Tracing (optional)
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Database connection with zap-backed GORM logging
	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	db.DB.Logger = logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	log.Info("Database connected")

	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		dbTracing := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{
			Enabled:         true,
			SlowQueryThresh: 200 * time.Millisecond,
			DBSystem:        "postgresql",
		}, log)
		if err := dbTracing.RegisterOtelGorm(db.DB); err != nil {
			log.Warn("Failed to register database tracing", zap.Error(err))
		}
	}

	// Token blacklist: Redis when available, in-memory otherwise.
	// The in-memory fallback loses revocations on restart, which is
	// acceptable for a single-shop deployment without Redis.
	var blacklist auth.TokenBlacklist
	if cfg.Redis.Enabled {
		redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisBlacklist.Close(); err != nil {
				log.Error("Error closing Redis connection", zap.Error(err))
			}
		}()
		blacklist = redisBlacklist
		log.Info("Redis token blacklist enabled", zap.String("addr", cfg.Redis.Addr()))
	} else {
		blacklist = auth.NewInMemoryTokenBlacklist()
		log.Info("Using in-memory token blacklist")
	}

	// Receipt rendering: headless Chrome is only started when PDF
	// output is enabled. HTML receipts always work.
	var renderer printing.PDFRenderer
	if cfg.Printing.PDFEnabled {
		chromeRenderer, err := printing.NewChromedpRenderer(&printing.ChromedpConfig{
			DefaultTimeout: cfg.Printing.ChromeTimeout,
			NoSandbox:      true,
			Logger:         log,
		})
		if err != nil {
			log.Fatal("Failed to initialize PDF renderer", zap.Error(err))
		}
		defer func() {
			if err := chromeRenderer.Close(); err != nil {
				log.Error("Error closing PDF renderer", zap.Error(err))
			}
		}()
		renderer = chromeRenderer
		log.Info("PDF receipt rendering enabled")
	}

	receiptGenerator, err := printing.NewReceiptGenerator(cfg.Printing, renderer)
	if err != nil {
		log.Fatal("Failed to initialize receipt generator", zap.Error(err))
	}

	smsClient := sms.NewClient(cfg.SMS, log)
	if !smsClient.Configured() {
		log.Warn("SMS gateway not configured; pickup notifications will be logged only")
	}

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	garmentTypeRepo := persistence.NewGormGarmentTypeRepository(db.DB)
	fabricRepo := persistence.NewGormFabricRepository(db.DB)
	accessoryRepo := persistence.NewGormAccessoryRepository(db.DB)
	inventoryLogRepo := persistence.NewGormInventoryLogRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	taskRepo := persistence.NewGormTaskRepository(db.DB)
	commissionRepo := persistence.NewGormCommissionRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	notificationRepo := persistence.NewGormNotificationRepository(db.DB)
	smsLogRepo := persistence.NewGormSMSLogRepository(db.DB)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	userService := identityapp.NewUserService(userRepo)
	customerService := partnerapp.NewCustomerService(customerRepo, orderRepo)
	customerImportService := partnerapp.NewCustomerImportService(customerRepo, log)
	garmentTypeService := catalogapp.NewGarmentTypeService(garmentTypeRepo, accessoryRepo, userRepo)
	garmentTypeImportService := catalogapp.NewGarmentTypeImportService(garmentTypeRepo, log)
	fabricService := inventoryapp.NewFabricService(fabricRepo, inventoryLogRepo)
	accessoryService := inventoryapp.NewAccessoryService(accessoryRepo, inventoryLogRepo)
	stockImportService := inventoryapp.NewStockImportService(fabricRepo, accessoryRepo, inventoryLogRepo, log)
	inventoryLogService := inventoryapp.NewLogService(inventoryLogRepo)
	notificationService := notificationapp.NewNotificationService(notificationRepo, userRepo, log)
	smsService := notificationapp.NewSMSService(smsLogRepo, smsClient, log)
	orderService := tradeapp.NewOrderService(
		orderRepo, customerRepo, garmentTypeRepo, fabricRepo, accessoryRepo,
		inventoryLogRepo, taskRepo, paymentRepo, userRepo,
		persistence.NewGormTransactionScope(db.DB), notificationService,
	)
	claimService := tradeapp.NewClaimService(
		orderRepo, customerRepo, garmentTypeRepo, taskRepo,
		commissionRepo, paymentRepo, notificationService,
	)
	taskService := workshopapp.NewTaskService(
		taskRepo, orderRepo, customerRepo, garmentTypeRepo, paymentRepo,
		notificationService, smsService,
	)
	commissionService := workshopapp.NewCommissionService(commissionRepo)
	paymentService := financeapp.NewPaymentService(paymentRepo, orderRepo, notificationService)
	receiptService := financeapp.NewReceiptService(
		paymentRepo, orderRepo, customerRepo, garmentTypeRepo, userRepo, receiptGenerator,
	)
	dashboardService := reportapp.NewDashboardService(
		orderRepo, paymentRepo, fabricRepo, accessoryRepo,
		taskRepo, userRepo, customerRepo, garmentTypeRepo,
	)

	// HTTP engine and middleware chain
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if cfg.Telemetry.Enabled {
		engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     true,
		}))
		engine.Use(middleware.SpanErrorMarker())
	}

	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(limiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// A tighter limit on the credential endpoints slows brute forcing
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		limit := middleware.RateLimit(authLimiter)
		engine.Use(func(c *gin.Context) {
			if strings.HasPrefix(c.Request.URL.Path, "/api/v1/auth/") {
				limit(c)
				return
			}
			c.Next()
		})
	}

	engine.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		SkipPaths: []string{
			"/health",
			"/api/v1/health",
			"/api/v1/system/info",
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
		},
		Logger: log,
	}))

	// Liveness probe outside API versioning
	engine.GET("/health", healthHandler(db))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewSystemHandler()).
		Register(handler.NewAuthHandler(authService)).
		Register(handler.NewUserHandler(userService)).
		Register(handler.NewCustomerHandler(customerService)).
		Register(handler.NewCustomerImportHandler(customerImportService)).
		Register(handler.NewGarmentTypeHandler(garmentTypeService)).
		Register(handler.NewGarmentTypeImportHandler(garmentTypeImportService)).
		Register(handler.NewFabricHandler(fabricService)).
		Register(handler.NewAccessoryHandler(accessoryService)).
		Register(handler.NewStockImportHandler(stockImportService)).
		Register(handler.NewInventoryLogHandler(inventoryLogService)).
		Register(handler.NewOrderHandler(orderService)).
		Register(handler.NewClaimHandler(claimService)).
		Register(handler.NewTaskHandler(taskService)).
		Register(handler.NewCommissionHandler(commissionService)).
		Register(handler.NewPaymentHandler(paymentService)).
		Register(handler.NewReceiptHandler(receiptService)).
		Register(handler.NewNotificationHandler(notificationService, smsService)).
		Register(handler.NewDashboardHandler(dashboardService))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler reports liveness including database connectivity
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			logger.GetGinLogger(c).Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}

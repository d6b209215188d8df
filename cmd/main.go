package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/earnly/internal/broadcast"
	"github.com/sbilibin2017/earnly/internal/events"
	"github.com/sbilibin2017/earnly/internal/facades"
	"github.com/sbilibin2017/earnly/internal/handlers"
	"github.com/sbilibin2017/earnly/internal/jwt"
	"github.com/sbilibin2017/earnly/internal/locker"
	"github.com/sbilibin2017/earnly/internal/logger"
	"github.com/sbilibin2017/earnly/internal/middlewares"
	"github.com/sbilibin2017/earnly/internal/models"
	"github.com/sbilibin2017/earnly/internal/repositories"
	"github.com/sbilibin2017/earnly/internal/repositories/memory"
	"github.com/sbilibin2017/earnly/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Storage backends selectable with APP_STORAGE.
const (
	storagePostgres = "postgres"
	storageMemory   = "memory"
)

// config holds every setting read from the environment.
type config struct {
	AppHost   string
	AppPort   string
	LogLevel  string
	LogFormat string
	Storage   string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisExpSecond    int

	KafkaBrokers            []string
	KafkaTransactionsTopic  string
	KafkaNotificationsTopic string

	GWHost          string
	GWPort          string
	NGNFallbackRate float64

	PaystackBaseURL       string
	PaystackSecretKey     string
	PaystackCallbackURL   string
	PaystackTimeoutSecond int

	JWTSecretKey string
	JWTExpSecond int

	AdminEmail string
}

// @title earnly API
// @version 1.0.0
// @description Rewards backend: wallet, bonuses, withdrawals, admin console and channel subscriptions
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the application configuration.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var err error
	getInt := func(key, defaultValue string) int {
		if err != nil {
			return 0
		}
		var v int
		if v, err = strconv.Atoi(getEnv(key, defaultValue)); err != nil {
			err = fmt.Errorf("%s: %w", key, err)
		}
		return v
	}

	cfg := &config{
		// Application config
		AppHost:   getEnv("APP_HOST", "localhost"),
		AppPort:   getEnv("APP_PORT", "8080"),
		LogLevel:  getEnv("APP_LOG_LEVEL", "info"),
		LogFormat: getEnv("APP_LOG_FORMAT", "json"),
		Storage:   getEnv("APP_STORAGE", storagePostgres),

		// PostgreSQL config
		PGHost:         getEnv("POSTGRES_HOST", "localhost"),
		PGPort:         getInt("POSTGRES_PORT", "5432"),
		PGUser:         getEnv("POSTGRES_USER", "user"),
		PGPassword:     getEnv("POSTGRES_PASSWORD", "password"),
		PGDB:           getEnv("POSTGRES_DB", "database"),
		PGMaxOpenConns: getInt("POSTGRES_MAX_OPEN_CONNS", "16"),
		PGMaxIdleConns: getInt("POSTGRES_MAX_IDLE_CONNS", "8"),

		// Redis config
		RedisHost:         getEnv("REDIS_HOST", "localhost"),
		RedisPort:         getInt("REDIS_PORT", "6379"),
		RedisDB:           getInt("REDIS_DB", "0"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisPoolSize:     getInt("REDIS_POOL_SIZE", "10"),
		RedisMinIdleConns: getInt("REDIS_MIN_IDLE_CONNS", "2"),
		RedisExpSecond:    getInt("REDIS_EXP_SECOND", "3600"),

		// Kafka config
		KafkaTransactionsTopic:  getEnv("KAFKA_TRANSACTIONS_TOPIC", "wallet-transactions"),
		KafkaNotificationsTopic: getEnv("KAFKA_NOTIFICATIONS_TOPIC", "user-notifications"),

		// gRPC config
		GWHost: getEnv("GW_EXCHANGER_HOST", ""),
		GWPort: getEnv("GW_EXCHANGER_PORT", "50051"),

		// Paystack config
		PaystackBaseURL:       getEnv("PAYSTACK_BASE_URL", "https://api.paystack.co"),
		PaystackSecretKey:     getEnv("PAYSTACK_SECRET_KEY", ""),
		PaystackCallbackURL:   getEnv("PAYSTACK_CALLBACK_URL", ""),
		PaystackTimeoutSecond: getInt("PAYSTACK_TIMEOUT_SECOND", "30"),

		// JWT config
		JWTSecretKey: getEnv("JWT_SECRET_KEY", "my_super_secret_key"),
		JWTExpSecond: getInt("JWT_EXP_SECOND", "86400"),

		AdminEmail: getEnv("ADMIN_EMAIL", ""),
	}
	if err != nil {
		return nil, err
	}

	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	if cfg.NGNFallbackRate, err = strconv.ParseFloat(getEnv("NGN_FALLBACK_RATE", "1500"), 64); err != nil {
		return nil, fmt.Errorf("NGN_FALLBACK_RATE: %w", err)
	}

	if cfg.Storage != storagePostgres && cfg.Storage != storageMemory {
		return nil, fmt.Errorf("APP_STORAGE: unknown storage %q", cfg.Storage)
	}

	return cfg, nil
}

// userStore is everything the services need from the user table.
type userStore interface {
	services.UserRepository
	services.UserDirectory
	services.UserVerifier
}

// storage bundles one adapter per persisted entity.
type storage struct {
	users         userStore
	wallets       services.WalletRepository
	platform      services.PlatformRewardRepository
	withdrawals   services.WithdrawalRepository
	activity      services.ActivityRepository
	admins        services.AdminRepository
	emergency     services.EmergencyRepository
	subscriptions services.SubscriptionRepository
	channels      services.ChannelRepository
	codes         services.VerificationCodeRepository
	rates         services.ExchangeRateCache
	banks         services.BankCache
	tx            services.TxManager
	locker        services.Locker
	close         func()
}

func newMemoryStorage(cfg *config) *storage {
	exp := time.Duration(cfg.RedisExpSecond) * time.Second
	return &storage{
		users:         memory.NewUserRepository(),
		wallets:       memory.NewWalletRepository(),
		platform:      memory.NewPlatformRewardRepository(),
		withdrawals:   memory.NewWithdrawalRepository(),
		activity:      memory.NewActivityRepository(),
		admins:        memory.NewAdminRepository(),
		emergency:     memory.NewEmergencyRepository(),
		subscriptions: memory.NewSubscriptionRepository(),
		channels:      memory.NewChannelRepository(models.DefaultChannels...),
		codes:         memory.NewVerificationCodeRepository(),
		rates:         memory.NewExchangeRateCacheRepository(exp),
		banks:         memory.NewBankCacheRepository(exp),
		tx:            memory.NewTxManager(),
		locker:        locker.NewKeyedMutex(),
		close:         func() {},
	}
}

func newPostgresStorage(ctx context.Context, cfg *config) (*storage, error) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infow("connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}
	if err := repositories.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	channels := repositories.NewChannelRepository(db)
	if err := channels.Seed(ctx, models.DefaultChannels...); err != nil {
		db.Close()
		return nil, fmt.Errorf("channel seed failed: %w", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		db.Close()
		rdb.Close()
		return nil, fmt.Errorf("redis connection error: %w", err)
	}

	exp := time.Duration(cfg.RedisExpSecond) * time.Second
	return &storage{
		users:         repositories.NewUserRepository(db),
		wallets:       repositories.NewWalletRepository(db),
		platform:      repositories.NewPlatformRewardRepository(db),
		withdrawals:   repositories.NewWithdrawalRepository(db),
		activity:      repositories.NewActivityRepository(db),
		admins:        repositories.NewAdminRepository(db),
		emergency:     repositories.NewEmergencyRepository(db),
		subscriptions: repositories.NewSubscriptionRepository(db),
		channels:      channels,
		codes:         repositories.NewVerificationCodeRepository(rdb),
		rates:         repositories.NewExchangeRateCacheRepository(rdb, exp),
		banks:         repositories.NewBankCacheRepository(rdb, exp),
		tx:            repositories.NewTxManager(db),
		locker:        locker.NewRedisLocker(rdb, 2*time.Minute, 50*time.Millisecond),
		close: func() {
			rdb.Close()
			db.Close()
		},
	}, nil
}

// newPublisher builds Kafka writers when brokers are configured.
func newPublisher(cfg *config) *events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		logger.Log.Warn("KAFKA_BROKERS not set, events will not be published")
		return events.NewPublisher(nil, nil)
	}

	writer := func(topic string) *kafka.Writer {
		return &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
			BatchTimeout:           10 * time.Millisecond,
		}
	}
	return events.NewPublisher(writer(cfg.KafkaTransactionsTopic), writer(cfg.KafkaNotificationsTopic))
}

// application holds the services behind the HTTP API.
type application struct {
	tokens       *jwt.JWT
	hub          *broadcast.Hub
	activity     *services.ActivityService
	wallet       *services.WalletService
	auth         *services.AuthService
	verification *services.VerificationService
	withdrawal   *services.WithdrawalService
	admin        *services.AdminService
	emergency    *services.EmergencyService
	payment      *services.PaymentService
	subscription *services.SubscriptionService
}

// newApplication wires services on top of store. rateReader may be nil.
func newApplication(cfg *config, store *storage, rateReader services.ExchangeRateReader, publisher services.EventPublisher, hub *broadcast.Hub) *application {
	paystackTimeout := time.Duration(cfg.PaystackTimeoutSecond) * time.Second
	paystack := facades.NewPaystackFacade(cfg.PaystackBaseURL, cfg.PaystackSecretKey, cfg.PaystackCallbackURL, paystackTimeout)

	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	a := &application{tokens: tokens, hub: hub}
	a.activity = services.NewActivityService(store.activity)
	a.wallet = services.NewWalletService(store.wallets, store.platform, store.tx, store.locker, a.activity, publisher)
	a.auth = services.NewAuthService(store.users, store.wallets, store.tx, a.wallet, tokens, a.activity, publisher)
	a.verification = services.NewVerificationService(store.codes, store.users, a.activity, publisher)
	a.withdrawal = services.NewWithdrawalService(
		store.withdrawals, store.wallets, store.tx, store.locker,
		paystack, services.NewRateService(rateReader, store.rates, cfg.NGNFallbackRate),
		a.activity, publisher, paystackTimeout,
	)
	a.admin = services.NewAdminService(store.admins, store.users, a.activity, a.withdrawal, store.platform, a.activity)
	a.emergency = services.NewEmergencyService(store.emergency, hub, a.activity)
	a.payment = services.NewPaymentService(paystack, store.banks, a.activity, cfg.PaystackSecretKey)
	a.subscription = services.NewSubscriptionService(store.subscriptions, store.channels, paystack, store.tx, a.activity)
	return a
}

// routes builds the HTTP router.
func (a *application) routes(cfg *config) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api", func(r chi.Router) {
		// Public routes
		signup := handlers.NewSignupHandler(a.auth)
		r.Post("/auth/signup", signup)
		r.Post("/auth/signup-with-referral", signup)
		r.Post("/auth/login", handlers.NewLoginHandler(a.auth))
		r.Post("/send-verification", handlers.NewSendVerificationHandler(a.verification))
		r.Post("/verify-code", handlers.NewVerifyCodeHandler(a.verification))
		r.Get("/emergency-message", handlers.NewActiveEmergencyHandler(a.emergency))
		r.Get("/emergency-message/ws", a.hub.ServeWS)
		r.Get("/banks", handlers.NewBanksHandler(a.payment))
		r.Post("/paystack/webhook", handlers.NewWebhookHandler(a.payment))
		r.Get("/eytv/channels", handlers.NewChannelsHandler(a.subscription))

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(a.tokens))

			r.Route("/user", func(r chi.Router) {
				r.Get("/profile", handlers.NewProfileHandler(a.auth))
				r.Get("/balance", handlers.NewBalanceHandler(a.wallet))
				r.Post("/claim-bonus", handlers.NewClaimBonusHandler(a.wallet))
				r.Post("/complete-task", handlers.NewCompleteTaskHandler(a.wallet))
				r.Post("/purchase", handlers.NewPurchaseHandler(a.wallet))
				r.Post("/withdraw", handlers.NewWithdrawHandler(a.withdrawal))
				r.Get("/withdrawals", handlers.NewWithdrawalHistoryHandler(a.withdrawal))
			})

			r.Post("/payment/initialize", handlers.NewInitializePaymentHandler(a.payment))
			r.Post("/payment/verify", handlers.NewVerifyPaymentHandler(a.payment))

			r.Get("/eytv/user/subscription", handlers.NewActiveSubscriptionHandler(a.subscription))
			r.Post("/eytv/subscribe", handlers.NewSubscribeHandler(a.subscription))
			r.Get("/eytv/channel/{id}/access", handlers.NewChannelAccessHandler(a.subscription))

			r.Route("/admin", func(r chi.Router) {
				r.Post("/check-admin", handlers.NewCheckAdminHandler(a.admin))

				r.Group(func(r chi.Router) {
					r.Use(middlewares.AdminMiddleware(a.admin))

					r.Get("/stats", handlers.NewStatsHandler(a.admin))
					r.Get("/users", handlers.NewUsersHandler(a.admin))
					r.Post("/user/{email}/toggle", handlers.NewToggleUserHandler(a.admin))
					r.Get("/logs", handlers.NewLogsHandler(a.activity))
					r.Delete("/logs/clear", handlers.NewClearLogsHandler(a.activity))

					r.Get("/withdrawal-requests", handlers.NewWithdrawalRequestsHandler(a.withdrawal))
					r.Post("/withdrawal/{id}/approve", handlers.NewApproveWithdrawalHandler(a.withdrawal))
					r.Post("/withdrawal/{id}/deny", handlers.NewDenyWithdrawalHandler(a.withdrawal))
					r.Post("/withdrawal/{id}/retry", handlers.NewRetryWithdrawalHandler(a.withdrawal))

					r.Post("/emergency-message", handlers.NewSendEmergencyHandler(a.emergency))
					r.Delete("/emergency-message/{id}", handlers.NewDismissEmergencyHandler(a.emergency))

					r.Get("/admins", handlers.NewAdminsHandler(a.admin))
					r.Post("/add-admin", handlers.NewAddAdminHandler(a.admin))
					r.Post("/remove-admin/{id}", handlers.NewRemoveAdminHandler(a.admin))
					r.Post("/suspend-admin/{id}", handlers.NewSuspendAdminHandler(a.admin))
					r.Post("/restore-admin/{id}", handlers.NewRestoreAdminHandler(a.admin))
					r.Delete("/delete-admin/{id}", handlers.NewDeleteAdminHandler(a.admin))

					r.Get("/rewards", handlers.NewRewardsHandler(a.wallet))
					r.Get("/subscription-balance", handlers.NewSubscriptionBalanceHandler(a.subscription))
				})
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))
	return r
}

// run initializes the logger, storage, external clients and HTTP server.
// It handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infow("logger initialized", "level", cfg.LogLevel, "storage", cfg.Storage)

	var (
		store *storage
		err   error
	)
	switch cfg.Storage {
	case storageMemory:
		store = newMemoryStorage(cfg)
	default:
		if store, err = newPostgresStorage(ctx, cfg); err != nil {
			return err
		}
	}
	defer store.close()

	// Exchange rates come from the exchanger service when one is configured.
	var rateReader services.ExchangeRateReader
	if cfg.GWHost != "" {
		grpcAddr := fmt.Sprintf("%s:%s", cfg.GWHost, cfg.GWPort)
		conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return fmt.Errorf("failed to connect to gRPC service at %s: %w", grpcAddr, err)
		}
		defer conn.Close()
		rateReader = facades.NewExchangeRatesGRPCFacade(pb.NewExchangeServiceClient(conn))
	}

	publisher := newPublisher(cfg)
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Errorw("failed to close kafka writers", "error", err)
		}
	}()

	hub := broadcast.NewHub()
	defer hub.Close()

	app := newApplication(cfg, store, rateReader, publisher, hub)
	if cfg.AdminEmail != "" {
		if err := app.admin.Bootstrap(ctx, cfg.AdminEmail); err != nil {
			return fmt.Errorf("failed to bootstrap admin: %w", err)
		}
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           app.routes(cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}

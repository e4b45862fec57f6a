package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Club_Portal/internal/config"
	"Club_Portal/internal/logger"
	"Club_Portal/internal/pkg"
	redisrepo "Club_Portal/internal/repository/redis"
	"Club_Portal/internal/repository/sqldb"
	"Club_Portal/internal/router"
	"Club_Portal/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqldb.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("connect database", zap.Error(err))
	}
	// 自动建表
	if err = sqldb.AutoMigrate(db); err != nil {
		log.Fatal("migrate database", zap.Error(err))
	}

	// 连接redis
	rdb, err := redisrepo.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatal("connect redis", zap.Error(err))
	}
	defer func() { _ = rdb.Close() }()

	memberRepo := &sqldb.MemberRepository{DB: db}
	resolver := service.NewWalletResolver(memberRepo, log)
	issuer := pkg.NewTokenIssuer(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.AccessTTL, cfg.RefreshTTL)
	auth := service.NewAuthService(resolver,
		&redisrepo.TokenRepository{Client: rdb},
		&redisrepo.NonceRepository{Client: rdb},
		issuer,
		service.AuthOptions{ClubName: cfg.ClubName, RequireSignature: cfg.RequireSignature},
		log)
	members := service.NewMemberService(memberRepo,
		&redisrepo.DistLock{RDB: rdb, TTL: 5 * time.Second},
		service.AdminSecret{Plain: cfg.AdminSecret, Hash: cfg.AdminSecretHash},
		cfg.RosterLimit, log)

	var counters service.CounterStore
	switch cfg.RateLimitStore {
	case "redis":
		counters = &redisrepo.CounterStore{Client: rdb}
	default:
		mem := service.NewMemoryCounterStore()
		go mem.Run(ctx, time.Minute)
		counters = mem
	}

	var mailer pkg.Mailer
	if cfg.SMTPHost != "" {
		mailer = pkg.NewSMTPMailer(pkg.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		})
	} else {
		log.Warn("SMTP_HOST not set, contact form disabled")
	}

	// outbox 投递：配置了 kafka 就发 kafka，否则只打日志
	sender := service.LogSender(log)
	if len(cfg.KafkaBrokers) > 0 {
		producer := pkg.NewKafkaProducer(pkg.KafkaConfig{Brokers: cfg.KafkaBrokers, Topic: cfg.KafkaTopic})
		defer func() { _ = producer.Close() }()
		sender = service.KafkaSender(producer)
	}
	relayer := service.NewOutboxRelayer(&sqldb.OutboxRepository{DB: db}, sender, log)
	go relayer.Run(ctx)

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("database handle", zap.Error(err))
	}

	r := router.InitRouter(router.Deps{
		Log:               log,
		Resolver:          resolver,
		Auth:              auth,
		Members:           members,
		Projects:          service.NewProjectService(&sqldb.ProjectRepository{DB: db}),
		Events:            service.NewEventService(&sqldb.EventRepository{DB: db}),
		Finance:           service.NewFinanceService(&sqldb.FinanceRepository{DB: db}),
		Bounties:          service.NewBountyService(&sqldb.BountyRepository{DB: db}),
		Library:           service.NewLibraryService(&sqldb.CodeRepoRepository{DB: db}, &sqldb.ResourceRepository{DB: db}),
		Contact:           service.NewContactService(mailer, cfg.ContactInbox, cfg.ClubName, log),
		ContactLimiter:    service.NewLimiter(counters, "contact", cfg.ContactRateLimit, cfg.ContactRateWindow),
		AllowWalletHeader: cfg.AllowWalletHeader,
		Ping: func(ctx context.Context) error {
			if err := sqlDB.PingContext(ctx); err != nil {
				return err
			}
			return rdb.Ping(ctx).Err()
		},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()
	log.Info("club portal started", zap.String("port", cfg.AppPort), zap.String("db", cfg.DBDriver))

	<-ctx.Done()
	log.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	log.Info("club portal stopped")
}

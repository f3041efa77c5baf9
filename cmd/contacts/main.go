package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	pgrepo "github.com/webcontacts/contacts-api/internal/adapters/db/postgres"
	redisrepo "github.com/webcontacts/contacts-api/internal/adapters/db/redis"
	"github.com/webcontacts/contacts-api/internal/adapters/mail"
	"github.com/webcontacts/contacts-api/internal/adapters/storage"
	httptransport "github.com/webcontacts/contacts-api/internal/adapters/transport/http"
	"github.com/webcontacts/contacts-api/internal/auth/hash"
	authsvc "github.com/webcontacts/contacts-api/internal/auth/service"
	"github.com/webcontacts/contacts-api/internal/auth/token"
	"github.com/webcontacts/contacts-api/internal/config"
	contactsvc "github.com/webcontacts/contacts-api/internal/contacts/service"
	lg "github.com/webcontacts/contacts-api/internal/infra/log"
	"github.com/webcontacts/contacts-api/internal/infra/migrate"
	usersvc "github.com/webcontacts/contacts-api/internal/users/service"
)

func main() {
	zapLog := lg.Must(os.Getenv("LOG_LEVEL"))
	defer zapLog.Sync()

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("failed to load config", zap.Error(err))
	}

	db, err := gorm.Open(gormpostgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		zapLog.Fatal("failed to connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLog.Fatal("db handle", zap.Error(err))
	}
	defer sqlDB.Close()
	if err := migrate.Up(sqlDB); err != nil {
		zapLog.Fatal("run migrations", zap.Error(err))
	}

	redisCli := goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisCli.Close()

	validate := validator.New()

	tokens, err := token.New(cfg)
	if err != nil {
		zapLog.Fatal("failed to init token service", zap.Error(err))
	}

	avatarStore, err := storage.NewS3AvatarStore(context.Background(), cfg)
	if err != nil {
		zapLog.Fatal("failed to init avatar store", zap.Error(err))
	}

	userRepo := pgrepo.NewPostgresUserRepo(db)
	contactRepo := pgrepo.NewPostgresContactRepo(db)
	mailer := mail.NewSendgridMailer(cfg)
	quota := redisrepo.NewRedisRateLimiter(redisCli, cfg.RateLimitRequests, cfg.RateLimitWindow)

	auth := authsvc.New(userRepo, tokens, hash.New(), mailer, validate, zapLog, cfg.BaseURL)
	contacts := contactsvc.New(contactRepo, validate)
	users := usersvc.New(userRepo, avatarStore)

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Cfg:      cfg,
		Log:      zapLog,
		Auth:     auth,
		Contacts: contacts,
		Users:    users,
		Quota:    quota,
		DB:       db,
	})

	srv := &http.Server{Addr: cfg.HTTPAddress, Handler: router}
	rootCtx, cancel := context.WithCancel(context.Background())
	g, _ := errgroup.WithContext(rootCtx)

	g.Go(func() error {
		zapLog.Info("http server listening", zap.String("addr", cfg.HTTPAddress))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLog.Info("shutdown signal received")
	cancel()

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		zapLog.Error("shutdown error", zap.Error(err))
	}
	if err := g.Wait(); err != nil {
		zapLog.Error("server terminated", zap.Error(err))
	}
}

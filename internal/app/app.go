package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"log/slog"

	server "github.com/admin/emeraldworld/shop-backend/internal/adapters/primary/http"
	healthcheckController "github.com/admin/emeraldworld/shop-backend/internal/adapters/primary/http/controllers/healthcheck"
	notifyController "github.com/admin/emeraldworld/shop-backend/internal/adapters/primary/http/controllers/notify"
	paymentController "github.com/admin/emeraldworld/shop-backend/internal/adapters/primary/http/controllers/payment"
	serversController "github.com/admin/emeraldworld/shop-backend/internal/adapters/primary/http/controllers/servers"
	telegramController "github.com/admin/emeraldworld/shop-backend/internal/adapters/primary/http/controllers/telegram"
	"github.com/admin/emeraldworld/shop-backend/internal/adapters/secondary/payment/yookassa"
	"github.com/admin/emeraldworld/shop-backend/internal/adapters/secondary/storage/pg"
	tgAdapter "github.com/admin/emeraldworld/shop-backend/internal/adapters/secondary/telegram"
	"github.com/admin/emeraldworld/shop-backend/internal/pkg/logger"
	"github.com/admin/emeraldworld/shop-backend/internal/ports/repository"
	"github.com/admin/emeraldworld/shop-backend/internal/ports/service"
	serverRepo "github.com/admin/emeraldworld/shop-backend/internal/repository/server"
	botUsecase "github.com/admin/emeraldworld/shop-backend/internal/usecases/bot"
	notifyUsecase "github.com/admin/emeraldworld/shop-backend/internal/usecases/notify"
	paymentUsecase "github.com/admin/emeraldworld/shop-backend/internal/usecases/payment"
	serversUsecase "github.com/admin/emeraldworld/shop-backend/internal/usecases/servers"
	"golang.org/x/sync/errgroup"

	"github.com/jmoiron/sqlx"
)

type App struct {
	Name string
	Cfg  *Config
	Log  *slog.Logger
}

func New(name string, cfg *Config) *App {
	return &App{
		Name: name,
		Cfg:  cfg,
		Log:  logger.New(name, cfg.Log),
	}
}

func (a *App) Run(ctx context.Context) error {
	a.Log.Info("running emeraldworld shop backend")

	db := a.initPostgres()

	var repo repository.IServerRepo
	if db != nil {
		repo = serverRepo.New(pg.NewDB(db), a.Log)
	}

	var sender service.ITelegramSender
	if a.Cfg.Telegram.IsConfigured() {
		sender = tgAdapter.NewClient(a.Cfg.Telegram.BotToken, a.Log)
	} else {
		a.Log.Warn("telegram bot token not set, notifications and bot webhook are degraded")
	}

	yooClient := yookassa.NewClient(a.Cfg.YooKassa, a.Log)
	if !a.Cfg.YooKassa.IsConfigured() {
		a.Log.Warn("yookassa credentials not set, payment creation will fail")
	}

	paymentUC := paymentUsecase.New(yooClient, a.Cfg.YooKassa.IsConfigured(), a.Log)
	notifyUC := notifyUsecase.New(sender, a.Cfg.Telegram.AdminChatID, a.Log)
	serversUC := serversUsecase.New(repo, a.Log)
	botUC := botUsecase.New(sender, a.Cfg.Telegram.AdminChatID, a.Log)

	httpServer := server.NewHTTPServer(a.Cfg.Server, a.Log,
		healthcheckController.New(db, a.Log),
		paymentController.New(paymentUC, a.Log),
		notifyController.New(notifyUC, a.Log),
		serversController.New(serversUC, a.Log),
		telegramController.New(botUC, a.Log),
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Log.Info("starting http server",
			"host", a.Cfg.Server.Host,
			"port", a.Cfg.Server.Port)

		err := httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gCtx.Done()
		a.Log.Info("received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			a.Log.Error("failed to shutdown http server", "error", err)
		}

		if db != nil {
			if err := db.Close(); err != nil {
				a.Log.Error("failed to close database", "error", err)
			}
		}

		a.Log.Info("application shutdown completed")
		return nil
	})

	if err := g.Wait(); err != nil {
		a.Log.Error("application error", "error", err)
		return err
	}

	return nil
}

// initPostgres открывает пул и применяет миграции.
// Недоступная на старте база - не фатально: хендлеры ответят 5xx,
// а пул переподключится, когда база вернётся.
func (a *App) initPostgres() *sqlx.DB {
	if !a.Cfg.Postgres.IsConfigured() {
		a.Log.Warn("postgres connection not configured, server records are unavailable")
		return nil
	}

	db, err := a.Cfg.Postgres.Open()
	if err != nil {
		a.Log.Error("failed to open postgres pool", "error", err)
		return nil
	}

	if err := pg.RunMigrations(db, a.Log); err != nil {
		a.Log.Error("failed to run migrations, continuing with lazy connection", "error", err)
	}

	return db
}

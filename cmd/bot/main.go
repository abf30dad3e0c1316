package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"

	"github.com/yourusername/txed-bike-bot/config"
	"github.com/yourusername/txed-bike-bot/internal/delivery/telegram"
	"github.com/yourusername/txed-bike-bot/internal/domain/orderflow"
	"github.com/yourusername/txed-bike-bot/internal/domain/repository"
	"github.com/yourusername/txed-bike-bot/internal/infrastructure/gemini"
	"github.com/yourusername/txed-bike-bot/internal/infrastructure/parser"
	"github.com/yourusername/txed-bike-bot/internal/infrastructure/storage"
	tgtransport "github.com/yourusername/txed-bike-bot/internal/infrastructure/telegram"
	"github.com/yourusername/txed-bike-bot/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Konfiguratsiya xatosi: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger xatosi: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Errorw("bot stopped with error", "err", err)
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL %q: %w", level, err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

func run(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) error {
	// ---- Storage ----
	db, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	conversations, closeConversations, err := storage.NewCacheConversationRepository(ctx, cfg.ConversationTTL)
	if err != nil {
		return err
	}
	defer func() { _ = closeConversations() }()

	userRepo := storage.NewSQLiteUserRepository(db)
	orderRepo := storage.NewSQLiteOrderRepository(db)
	adminRepo := storage.NewSQLiteAdminRepository(db)

	catalogParser := parser.NewExcelCatalogParser(log)
	catalog := usecase.LoadCatalog(ctx, catalogParser, cfg.CatalogXLSXPath, storage.DefaultCatalog(), log)
	catalogRepo := storage.NewMemoryCatalogRepository(catalog)

	// ---- Telegram ----
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}
	log.Infow("telegram authorized", "username", bot.Self.UserName)

	sender := tgtransport.NewSender(bot)
	downloader := tgtransport.NewDownloader(bot, cfg.TelegramToken, &http.Client{Timeout: 30 * time.Second})

	// ---- AI (ixtiyoriy) ----
	var ai repository.AIRepository
	if cfg.GeminiAPIKey != "" {
		client, err := gemini.NewGeminiClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			log.Warnw("consultant disabled", "err", err)
		} else {
			ai = client
			if c, ok := client.(io.Closer); ok {
				defer c.Close()
			}
		}
	}

	// ---- Use cases ----
	machine := orderflow.NewMachine(orderflow.Config{CollectEmail: cfg.CollectEmail})
	users := usecase.NewUserUseCase(userRepo, cfg.Location)
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)
	orders := usecase.NewOrderUseCase(machine, usecase.NewOrderSink(orderRepo, sender, cfg.AdminID, log), log)
	admin := usecase.NewAdminUseCase(usecase.AdminDeps{
		AdminID:     cfg.AdminID,
		Users:       users,
		OrderRepo:   orderRepo,
		AdminRepo:   adminRepo,
		CatalogRepo: catalogRepo,
		Parser:      catalogParser,
		Exporter:    parser.NewExcelOrderExporter(cfg.Location),
		Sender:      sender,
		Limiter:     rate.NewLimiter(rate.Limit(cfg.BroadcastRate), 1),
		Logger:      log,
	})

	// ---- Handler ----
	handler := telegram.NewBotHandler(telegram.Deps{
		Bot:           bot,
		Sender:        sender,
		Downloader:    downloader,
		Conversations: conversations,
		Orders:        orders,
		Users:         users,
		Admin:         admin,
		Catalog:       catalogUseCase,
		Consultant:    usecase.NewConsultantUseCase(ai, catalogUseCase),
		Leads:         usecase.NewLeadUseCase(sender, cfg.AdminID),
		Workers:       cfg.Workers,
		Logger:        log,
	})

	log.Infow("starting bot",
		"admin_id", cfg.AdminID,
		"catalog", catalog.Source,
		"collect_email", cfg.CollectEmail,
		"consultant", ai != nil,
	)

	if err := handler.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

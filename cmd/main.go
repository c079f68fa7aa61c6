package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/DanRulev/sentrack.git/internal/bot"
	"github.com/DanRulev/sentrack.git/internal/client"
	"github.com/DanRulev/sentrack.git/internal/config"
	"github.com/DanRulev/sentrack.git/internal/repository"
	"github.com/DanRulev/sentrack.git/internal/scheduler"
	"github.com/DanRulev/sentrack.git/internal/service"
	"github.com/DanRulev/sentrack.git/internal/storage/cache"
	"github.com/DanRulev/sentrack.git/internal/storage/db"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)
	defer logger.Sync()

	remote, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}
	defer remote.Close()

	local, err := db.InitLocal(cfg.Local)
	if err != nil {
		logger.Fatal("failed init local db", zap.Error(err))
	}
	defer local.Close()

	repos := repository.NewRepository(remote)
	localState := repository.NewStateRepository(local)
	cache := cache.NewCache()
	clients := client.InitClients(cfg.App.Timeout)

	api, err := bot.NewBotAPI(cfg.BotToken, cfg.Env)
	if err != nil {
		logger.Fatal("failed connect to telegram", zap.Error(err))
		return
	}
	notifier := bot.NewNotifier(api, logger)

	services := service.InitServices(repos, localState, cache, notifier, service.Options{
		Namespace:     cfg.Local.Namespace,
		RemoteTimeout: cfg.App.Timeout,
	}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Scheduler.Enabled {
		reminders := scheduler.New(services.DashboardS, notifier, cfg.Scheduler.ReminderTime, logger)
		if err := reminders.Start(); err != nil {
			logger.Fatal("failed start scheduler", zap.Error(err))
		}
		defer reminders.Stop()
	}

	handler := bot.NewTelegramAPI(api, services, cache, clients, cfg.App.Timeout, logger)
	handler.Start(ctx)

	logger.Info("shutting down, waiting for remote writes")
	services.Wait()
}

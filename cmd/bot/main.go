package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"

	"secret-casino-bot/internal/cache"
	"secret-casino-bot/internal/config"
	"secret-casino-bot/internal/engine"
	"secret-casino-bot/internal/handlers"
	"secret-casino-bot/internal/logger"
	"secret-casino-bot/internal/repository"
	"secret-casino-bot/internal/scheduler"
	"secret-casino-bot/internal/service"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	rules, err := config.LoadRules(cfg.RulesPath)
	if err != nil {
		zlog.Fatal("rules load failed", zap.String("path", cfg.RulesPath), zap.Error(err))
	}

	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		zlog.Fatal("db open failed", zap.Error(err))
	}
	defer db.Close()
	if err := repository.Migrate(db, repository.Migrations(), zlog); err != nil {
		zlog.Fatal("db migration failed", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store engine.Store
	switch cfg.SnapshotStore {
	case config.StoreRedis:
		rdb, err := repository.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			zlog.Fatal("redis unavailable", zap.Error(err))
		}
		defer rdb.Close()
		store = repository.NewRedisSnapshotRepo(rdb)
	default:
		store = repository.NewSnapshotRepo(db)
	}
	spinLog := repository.NewSpinLogRepo(db)

	registry := cache.NewRegistry(func(userID int64) *engine.Engine {
		return engine.New(engine.Options{
			Key:      cache.SnapshotKey(userID),
			PlayerID: userID,
			Rules:    rules,
			Store:    store,
			Recorder: spinLog,
			Delay:    cfg.SpinDelay,
			Location: cfg.Location,
			Logger:   zlog.With(zap.Int64("player", userID)),
		})
	})

	gate := cache.NewGate(cfg.SecretTaps, cfg.DevIDs)
	if err := gate.LoadFromFile(cfg.ActivePath); err != nil {
		zlog.Warn("active players file unreadable, starting empty", zap.Error(err))
	}

	gateService := service.NewGateService(gate, zlog)
	slotService := service.NewSlotService(registry, gate, zlog)
	statsService := service.NewStatsService(registry, gate, spinLog, zlog)
	resetService := service.NewResetService(registry, gate, zlog)

	b, err := gotgbot.NewBot(cfg.BotToken, nil)
	if err != nil {
		zlog.Fatal("bot init failed", zap.Error(err))
	}

	dispatcher := ext.NewDispatcher(&ext.DispatcherOpts{
		Error: func(b *gotgbot.Bot, ctx *ext.Context, err error) ext.DispatcherAction {
			zlog.Error("an error occurred while handling update", zap.Error(err))
			return ext.DispatcherActionNoop
		},
		MaxRoutines: ext.DefaultMaxRoutines,
	})
	updater := ext.NewUpdater(dispatcher, &ext.UpdaterOpts{})

	dispatcher.AddHandler(handlers.GetCasinoCommand(gateService))
	dispatcher.AddHandler(handlers.GetSpinCommand(slotService))
	dispatcher.AddHandler(handlers.GetSpinCallback(slotService))
	dispatcher.AddHandler(handlers.GetBetCommand(slotService))
	dispatcher.AddHandler(handlers.GetBetCallback(slotService))
	dispatcher.AddHandler(handlers.GetDailyCommand(slotService))
	dispatcher.AddHandler(handlers.GetMeCommand(statsService))
	dispatcher.AddHandler(handlers.GetAchievementsCommand(statsService))
	dispatcher.AddHandler(handlers.GetHistoryCommand(statsService))
	dispatcher.AddHandler(handlers.GetHelpCommand(statsService))
	dispatcher.AddHandler(handlers.GetResetCommand(resetService))
	dispatcher.AddHandler(handlers.GetResetCallback(resetService))

	sched := scheduler.NewScheduler(gate, registry, b, cfg.ActivePath, cfg.Location, zlog)
	sched.Start()

	err = updater.StartPolling(b, &ext.PollingOpts{
		DropPendingUpdates:    false,
		EnableWebhookDeletion: true,
	})
	if err != nil {
		zlog.Fatal("failed to start polling", zap.Error(err))
	}
	zlog.Info("bot has been started",
		zap.String("bot_username", b.User.Username),
		zap.String("store", cfg.SnapshotStore))

	<-ctx.Done()
	zlog.Info("shutting down")
	if err := updater.Stop(); err != nil {
		zlog.Warn("updater stop failed", zap.Error(err))
	}
	sched.Stop()
}

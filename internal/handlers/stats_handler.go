package handlers

import (
	"secret-casino-bot/internal/service"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/PaulSonOfLars/gotgbot/v2/ext/handlers"
)

func GetMeCommand(statsService *service.StatsService) ext.Handler {
	return handlers.NewCommand("me", func(b *gotgbot.Bot, ctx *ext.Context) error {
		return statsService.HandleMeCommand(b, ctx)
	})
}

func GetAchievementsCommand(statsService *service.StatsService) ext.Handler {
	return handlers.NewCommand("achievements", func(b *gotgbot.Bot, ctx *ext.Context) error {
		return statsService.HandleAchievementsCommand(b, ctx)
	})
}

func GetHistoryCommand(statsService *service.StatsService) ext.Handler {
	return handlers.NewCommand("history", func(b *gotgbot.Bot, ctx *ext.Context) error {
		return statsService.HandleHistoryCommand(b, ctx)
	})
}

func GetHelpCommand(statsService *service.StatsService) ext.Handler {
	return handlers.NewCommand("help", func(b *gotgbot.Bot, ctx *ext.Context) error {
		return statsService.HandleHelpCommand(b, ctx)
	})
}

package handlers

import (
	"secret-casino-bot/internal/service"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/PaulSonOfLars/gotgbot/v2/ext/handlers"
	"github.com/PaulSonOfLars/gotgbot/v2/ext/handlers/filters/callbackquery"
)

func GetCasinoCommand(gateService *service.GateService) ext.Handler {
	return handlers.NewCommand("casino", func(b *gotgbot.Bot, ctx *ext.Context) error {
		return gateService.HandleCasinoCommand(b, ctx)
	})
}

func GetResetCommand(resetService *service.ResetService) ext.Handler {
	return handlers.NewCommand("reset", func(b *gotgbot.Bot, ctx *ext.Context) error {
		return resetService.HandleResetCommand(b, ctx)
	})
}

func GetResetCallback(resetService *service.ResetService) ext.Handler {
	return handlers.NewCallback(callbackquery.Prefix("reset:"), func(b *gotgbot.Bot, ctx *ext.Context) error {
		return resetService.HandleResetCallback(b, ctx)
	})
}

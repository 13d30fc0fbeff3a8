package handlers

import (
	"secret-casino-bot/internal/service"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/PaulSonOfLars/gotgbot/v2/ext/handlers"
	"github.com/PaulSonOfLars/gotgbot/v2/ext/handlers/filters/callbackquery"
)

func GetSpinCommand(slotService *service.SlotService) ext.Handler {
	return handlers.NewCommand("spin", func(b *gotgbot.Bot, ctx *ext.Context) error {
		return slotService.HandleSpinCommand(b, ctx)
	})
}

func GetSpinCallback(slotService *service.SlotService) ext.Handler {
	return handlers.NewCallback(callbackquery.Prefix("spin:"), func(b *gotgbot.Bot, ctx *ext.Context) error {
		return slotService.HandleSpinCallback(b, ctx)
	})
}

func GetBetCommand(slotService *service.SlotService) ext.Handler {
	return handlers.NewCommand("bet", func(b *gotgbot.Bot, ctx *ext.Context) error {
		return slotService.HandleBetCommand(b, ctx)
	})
}

func GetBetCallback(slotService *service.SlotService) ext.Handler {
	return handlers.NewCallback(callbackquery.Prefix("bet:"), func(b *gotgbot.Bot, ctx *ext.Context) error {
		return slotService.HandleBetCallback(b, ctx)
	})
}

func GetDailyCommand(slotService *service.SlotService) ext.Handler {
	return handlers.NewCommand("daily", func(b *gotgbot.Bot, ctx *ext.Context) error {
		return slotService.HandleDailyCommand(b, ctx)
	})
}

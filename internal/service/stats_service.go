package service

import (
	"context"

	"secret-casino-bot/internal/domain"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"go.uber.org/zap"
)

type HistoryReader interface {
	Recent(ctx context.Context, playerID int64, limit int) ([]domain.SpinRecord, error)
}

type StatsService struct {
	players Players
	gate    Activity
	history HistoryReader
	log     *zap.Logger
}

func NewStatsService(players Players, gate Activity, history HistoryReader, log *zap.Logger) *StatsService {
	return &StatsService{players: players, gate: gate, history: history, log: log}
}

func (s *StatsService) HandleMeCommand(b *gotgbot.Bot, ctx *ext.Context) error {
	userID := ctx.EffectiveUser.Id
	if !s.gate.IsActive(userID) {
		return nil
	}
	eng := s.players.Get(context.Background(), userID)

	text := FormatStats(eng.Snapshot())
	if eng.DailyEligible() {
		text += "\n\n📅 Ежедневная награда ждёт: /daily"
	}
	_, _ = ctx.EffectiveMessage.Reply(b, text, &gotgbot.SendMessageOpts{})
	return nil
}

func (s *StatsService) HandleAchievementsCommand(b *gotgbot.Bot, ctx *ext.Context) error {
	userID := ctx.EffectiveUser.Id
	if !s.gate.IsActive(userID) {
		return nil
	}
	snap := s.players.Get(context.Background(), userID).Snapshot()

	text := FormatAchievements(snap.Achievements, snap.Session.Metrics())
	_, _ = ctx.EffectiveMessage.Reply(b, text, &gotgbot.SendMessageOpts{})
	return nil
}

func (s *StatsService) HandleHistoryCommand(b *gotgbot.Bot, ctx *ext.Context) error {
	userID := ctx.EffectiveUser.Id
	if !s.gate.IsActive(userID) {
		return nil
	}
	records, err := s.history.Recent(context.Background(), userID, historyLimit)
	if err != nil {
		s.log.Warn("history read failed", zap.Int64("player", userID), zap.Error(err))
		_, _ = ctx.EffectiveMessage.Reply(b, "📜 История сейчас недоступна", &gotgbot.SendMessageOpts{})
		return nil
	}
	_, _ = ctx.EffectiveMessage.Reply(b, FormatHistory(records), &gotgbot.SendMessageOpts{})
	return nil
}

func (s *StatsService) HandleHelpCommand(b *gotgbot.Bot, ctx *ext.Context) error {
	if !s.gate.IsActive(ctx.EffectiveUser.Id) {
		return nil
	}
	_, _ = ctx.EffectiveMessage.Reply(b, FormatHelp(), &gotgbot.SendMessageOpts{})
	return nil
}

package service

import (
	"secret-casino-bot/internal/cache"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"go.uber.org/zap"
)

// Activity answers whether a player has the casino unlocked.
type Activity interface {
	IsActive(userID int64) bool
}

type GateService struct {
	gate *cache.Gate
	log  *zap.Logger
}

func NewGateService(gate *cache.Gate, log *zap.Logger) *GateService {
	return &GateService{gate: gate, log: log}
}

// HandleCasinoCommand counts a tap towards the secret unlock. Taps below the
// threshold get no reply.
func (s *GateService) HandleCasinoCommand(b *gotgbot.Bot, ctx *ext.Context) error {
	userID := ctx.EffectiveUser.Id
	res := s.gate.Tap(userID, ctx.EffectiveChat.Id)

	text, ok := gateReply(res)
	if !ok {
		return nil
	}
	if res.Toggled {
		s.log.Info("casino toggled", zap.Int64("player", userID), zap.Bool("active", res.Active))
	}
	_, _ = ctx.EffectiveMessage.Reply(b, text, &gotgbot.SendMessageOpts{})
	return nil
}

func gateReply(res cache.TapResult) (string, bool) {
	switch {
	case res.Toggled && res.Active:
		return "🔓 Секретное казино открыто\n\n" + FormatHelp(), true
	case res.Toggled:
		return "🔒 Казино закрыто", true
	case res.Active && res.Count == 0:
		return FormatHelp(), true
	}
	return "", false
}

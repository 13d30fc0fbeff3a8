package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"secret-casino-bot/internal/domain"
	"secret-casino-bot/internal/engine"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"go.uber.org/zap"
)

// Players hands out the per-player engine.
type Players interface {
	Get(ctx context.Context, userID int64) *engine.Engine
}

type SlotService struct {
	players Players
	gate    Activity
	log     *zap.Logger
}

func NewSlotService(players Players, gate Activity, log *zap.Logger) *SlotService {
	return &SlotService{players: players, gate: gate, log: log}
}

func (s *SlotService) HandleSpinCommand(b *gotgbot.Bot, ctx *ext.Context) error {
	userID := ctx.EffectiveUser.Id
	if !s.gate.IsActive(userID) {
		return nil
	}
	return s.spin(b, ctx.EffectiveChat.Id, userID, ctx.EffectiveMessage)
}

func (s *SlotService) HandleSpinCallback(b *gotgbot.Bot, ctx *ext.Context) error {
	cb := ctx.CallbackQuery
	if !s.gate.IsActive(cb.From.Id) {
		cb.Answer(b, nil)
		return nil
	}
	cb.Answer(b, nil)
	return s.spin(b, cb.Message.GetChat().Id, cb.From.Id, nil)
}

func (s *SlotService) spin(b *gotgbot.Bot, chatID, userID int64, trigger *gotgbot.Message) error {
	bg := context.Background()
	eng := s.players.Get(bg, userID)

	if eng.State() != domain.Idle {
		_, err := b.SendMessage(chatID, spinErrorText(engine.ErrBusy, eng.Limits()), nil)
		return err
	}
	sess := eng.Snapshot().Session
	if !sess.CanSpin() {
		_, err := b.SendMessage(chatID, spinErrorText(engine.ErrCannotSpin, eng.Limits()), nil)
		return err
	}

	placeholder, err := b.SendMessage(chatID, FormatSpinning(sess.Bet, sess.BonusRounds > 0), nil)
	if err != nil {
		return err
	}

	res, err := eng.Spin(bg)
	if err != nil {
		_, _, _ = placeholder.EditText(b, spinErrorText(err, eng.Limits()), &gotgbot.EditMessageTextOpts{})
		return nil
	}

	keyboard := BetKeyboard(res.Session.Bet, res.Session.Balance, eng.Limits())
	_, _, err = placeholder.EditText(b, FormatSpinResult(res), &gotgbot.EditMessageTextOpts{
		ReplyMarkup: keyboard,
	})
	if err != nil {
		s.log.Warn("spin result edit failed", zap.Int64("player", userID), zap.Error(err))
	}

	if trigger != nil && res.Payout.Coins > 0 {
		s.sendWinReaction(b, trigger)
	}
	return nil
}

var winReactionEmojis = []string{"🎉", "🔥", "❤", "👍", "🏆", "⚡", "🍾", "👏", "🤩", "😍"}

func (s *SlotService) sendWinReaction(b *gotgbot.Bot, msg *gotgbot.Message) {
	emoji := winReactionEmojis[rand.IntN(len(winReactionEmojis))]
	msg.SetReaction(b, &gotgbot.SetMessageReactionOpts{
		Reaction: []gotgbot.ReactionType{&gotgbot.ReactionTypeEmoji{Emoji: emoji}},
		IsBig:    true,
	})
}

func spinErrorText(err error, l engine.Limits) string {
	switch {
	case errors.Is(err, engine.ErrBusy):
		return "⏳ Барабаны ещё крутятся"
	case errors.Is(err, engine.ErrCannotSpin):
		return fmt.Sprintf("💸 Не хватает монет на ставку. Уменьши ставку (/bet %d), забери /daily или начни заново /reset", l.MinBet)
	}
	return "что-то пошло не так"
}

func (s *SlotService) HandleBetCommand(b *gotgbot.Bot, ctx *ext.Context) error {
	userID := ctx.EffectiveUser.Id
	if !s.gate.IsActive(userID) {
		return nil
	}
	eng := s.players.Get(context.Background(), userID)

	args := ctx.Args()
	if len(args) < 2 {
		sess := eng.Snapshot().Session
		_, _ = ctx.EffectiveMessage.Reply(b, fmt.Sprintf("🎯 Ставка: %s", FormatCoins(sess.Bet)), &gotgbot.SendMessageOpts{
			ReplyMarkup: BetKeyboard(sess.Bet, sess.Balance, eng.Limits()),
		})
		return nil
	}

	bet, ok := ParseBet(args[1])
	text := s.setBet(eng, bet, ok)
	_, _ = ctx.EffectiveMessage.Reply(b, text, &gotgbot.SendMessageOpts{})
	return nil
}

func (s *SlotService) HandleBetCallback(b *gotgbot.Bot, ctx *ext.Context) error {
	cb := ctx.CallbackQuery
	if !s.gate.IsActive(cb.From.Id) {
		cb.Answer(b, nil)
		return nil
	}
	eng := s.players.Get(context.Background(), cb.From.Id)

	bet, ok := ParseBet(cb.Data)
	cb.Answer(b, &gotgbot.AnswerCallbackQueryOpts{Text: s.setBet(eng, bet, ok)})
	return nil
}

func (s *SlotService) setBet(eng *engine.Engine, bet int64, parsed bool) string {
	if parsed && eng.SetBet(context.Background(), bet) {
		return fmt.Sprintf("🎯 Ставка: %s", FormatCoins(bet))
	}
	sess := eng.Snapshot().Session
	return betRejectedText(eng.Limits(), sess.Balance)
}

func betRejectedText(l engine.Limits, balance int64) string {
	hi := l.MaxBetFor(balance)
	if hi < l.MinBet {
		return "💸 Баланса не хватает даже на минимальную ставку"
	}
	return fmt.Sprintf("Ставка должна быть от %s до %s", FormatCoins(l.MinBet), FormatCoins(hi))
}

func (s *SlotService) HandleDailyCommand(b *gotgbot.Bot, ctx *ext.Context) error {
	userID := ctx.EffectiveUser.Id
	if !s.gate.IsActive(userID) {
		return nil
	}
	eng := s.players.Get(context.Background(), userID)

	claim, err := eng.ClaimDaily(context.Background())
	if err != nil {
		if errors.Is(err, engine.ErrAlreadyClaimed) {
			_, _ = ctx.EffectiveMessage.Reply(b, "📅 Награда уже получена, приходи завтра", &gotgbot.SendMessageOpts{})
			return nil
		}
		return err
	}
	s.log.Info("daily reward claimed", zap.Int64("player", userID),
		zap.Int64("reward", claim.Reward), zap.Int64("streak", claim.Streak))

	text := FormatDailyClaim(claim, eng.Snapshot().Session.Balance)
	_, _ = ctx.EffectiveMessage.Reply(b, text, &gotgbot.SendMessageOpts{})
	return nil
}

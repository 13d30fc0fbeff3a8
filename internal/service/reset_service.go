package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"secret-casino-bot/internal/engine"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"go.uber.org/zap"
)

type ResetService struct {
	players Players
	gate    Activity
	log     *zap.Logger
}

func NewResetService(players Players, gate Activity, log *zap.Logger) *ResetService {
	return &ResetService{players: players, gate: gate, log: log}
}

type resetAction struct {
	step   string
	userID int64
}

// parseResetData reads "reset:<step>:<userID>".
func parseResetData(data string) (resetAction, bool) {
	parts := strings.Split(data, ":")
	if len(parts) != 3 || parts[0] != "reset" {
		return resetAction{}, false
	}
	id, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return resetAction{}, false
	}
	return resetAction{step: parts[1], userID: id}, true
}

func resetKeyboard(userID int64, yes, yesStep, no string) gotgbot.InlineKeyboardMarkup {
	uid := strconv.FormatInt(userID, 10)
	return gotgbot.InlineKeyboardMarkup{
		InlineKeyboard: [][]gotgbot.InlineKeyboardButton{
			{
				{Text: yes, CallbackData: "reset:" + yesStep + ":" + uid},
				{Text: no, CallbackData: "reset:cancel:" + uid},
			},
		},
	}
}

func (s *ResetService) HandleResetCommand(b *gotgbot.Bot, ctx *ext.Context) error {
	userID := ctx.EffectiveUser.Id
	if !s.gate.IsActive(userID) {
		return nil
	}

	_, _ = ctx.EffectiveMessage.Reply(b, "⚠️ Начать заново? Баланс, статистика и достижения будут сброшены.", &gotgbot.SendMessageOpts{
		ReplyMarkup: resetKeyboard(userID, "Да", "step2", "Нет"),
	})
	return nil
}

func (s *ResetService) HandleResetCallback(b *gotgbot.Bot, ctx *ext.Context) error {
	cb := ctx.CallbackQuery

	action, ok := parseResetData(cb.Data)
	if !ok {
		cb.Answer(b, nil)
		return nil
	}
	if action.userID != cb.From.Id {
		cb.Answer(b, &gotgbot.AnswerCallbackQueryOpts{
			Text: "Это не твоя кнопка",
		})
		return nil
	}

	switch action.step {
	case "step2":
		cb.Message.EditText(b, "⚠️⚠️ Точно? Все достижения снова станут закрытыми.", &gotgbot.EditMessageTextOpts{
			ReplyMarkup: resetKeyboard(action.userID, "Точно", "confirm", "Передумал"),
		})

	case "confirm":
		eng := s.players.Get(context.Background(), action.userID)
		if err := eng.Reset(context.Background()); err != nil {
			if errors.Is(err, engine.ErrBusy) {
				cb.Answer(b, &gotgbot.AnswerCallbackQueryOpts{Text: "Дождись конца спина"})
				return nil
			}
			cb.Answer(b, nil)
			return err
		}
		s.log.Info("session reset", zap.Int64("player", action.userID))
		sess := eng.Snapshot().Session
		cb.Message.EditText(b, "💥 Всё сначала. Баланс: "+FormatCoins(sess.Balance), &gotgbot.EditMessageTextOpts{})

	case "cancel":
		cb.Message.EditText(b, "❌ Отменено", &gotgbot.EditMessageTextOpts{})
	}

	cb.Answer(b, nil)
	return nil
}

package service

import (
	"fmt"
	"strconv"
	"strings"

	"secret-casino-bot/internal/domain"
	"secret-casino-bot/internal/engine"

	"github.com/PaulSonOfLars/gotgbot/v2"
)

var betPresets = []int64{10, 25, 50, 100}

const historyLimit = 10

// FormatCoins renders n with thousands separators.
func FormatCoins(n int64) string {
	if n < 0 {
		return "-" + FormatCoins(-n)
	}
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}

func formatReels(o domain.Outcome) string {
	return fmt.Sprintf("| %s | %s | %s |", o[0], o[1], o[2])
}

func FormatSpinning(bet int64, bonus bool) string {
	if bonus {
		return "🎰 | ❔ | ❔ | ❔ |\n\n🎁 Бонусный спин..."
	}
	return fmt.Sprintf("🎰 | ❔ | ❔ | ❔ |\n\nСтавка %s, крутим...", FormatCoins(bet))
}

func FormatSpinResult(res domain.SpinResult) string {
	var b strings.Builder
	b.WriteString("🎰 " + formatReels(res.Outcome) + "\n\n")

	p := res.Payout
	switch {
	case p.IsJackpot:
		fmt.Fprintf(&b, "🎉 ДЖЕКПОТ! +%s\n", FormatCoins(p.Coins))
	case p.Coins > 0:
		fmt.Fprintf(&b, "✨ Выигрыш: +%s (x%g)\n", FormatCoins(p.Coins), p.Multiplier)
	default:
		b.WriteString("Мимо\n")
	}
	if p.BonusSpinsGranted > 0 {
		fmt.Fprintf(&b, "🎁 +%d бонусных спинов\n", p.BonusSpinsGranted)
	}

	s := res.Session
	if res.UsedBonus {
		fmt.Fprintf(&b, "\nСтавка: %s (бонусный спин)\n", FormatCoins(res.Bet))
	} else {
		fmt.Fprintf(&b, "\nСтавка: %s\n", FormatCoins(res.Bet))
	}
	fmt.Fprintf(&b, "💰 Баланс: %s\n", FormatCoins(s.Balance))
	fmt.Fprintf(&b, "🏆 Джекпот: %s\n", FormatCoins(s.Jackpot))
	if s.BonusRounds > 0 {
		fmt.Fprintf(&b, "🎁 Бонусных спинов: %d\n", s.BonusRounds)
	}
	if s.WinStreak > 1 {
		fmt.Fprintf(&b, "🔥 Серия: %d\n", s.WinStreak)
	}

	for _, a := range res.Unlocked {
		fmt.Fprintf(&b, "\n%s Достижение «%s»! +%s", a.Icon, a.Title, FormatCoins(a.Reward))
	}
	return strings.TrimRight(b.String(), "\n")
}

func FormatStats(snap domain.Snapshot) string {
	s := snap.Session
	text := fmt.Sprintf(
		"💰 Баланс: %s\n🎯 Ставка: %s\n🏆 Джекпот: %s\n🎁 Бонусных спинов: %d\n\n"+
			"🎰 Спинов: %d\n🍾 Всего выиграно: %s\n💸 Последний выигрыш: %s\n"+
			"🔥 Текущая серия: %d\n⚡ Лучшая серия: %d\n🎉 Джекпотов: %d",
		FormatCoins(s.Balance), FormatCoins(s.Bet), FormatCoins(s.Jackpot), s.BonusRounds,
		s.TotalSpins, FormatCoins(s.TotalWins), FormatCoins(s.LastWin),
		s.WinStreak, s.MaxWinStreak, s.JackpotWins)
	if snap.Daily.DailyStreak > 0 {
		text += fmt.Sprintf("\n📅 Ежедневная серия: %d", snap.Daily.DailyStreak)
	}
	return text
}

func FormatAchievements(list []domain.Achievement, m domain.Metrics) string {
	var b strings.Builder
	done := 0
	for _, a := range list {
		if a.Unlocked {
			done++
		}
	}
	fmt.Fprintf(&b, "🏅 Достижения %d/%d\n\n", done, len(list))
	for _, a := range list {
		if a.Unlocked {
			fmt.Fprintf(&b, "✅ %s %s — %s\n", a.Icon, a.Title, a.Description)
			continue
		}
		progress := min(a.Metric.Value(m), a.Requirement)
		fmt.Fprintf(&b, "🔒 %s %s — %s (%s/%s) +%s\n", a.Icon, a.Title, a.Description,
			FormatCoins(progress), FormatCoins(a.Requirement), FormatCoins(a.Reward))
	}
	return strings.TrimRight(b.String(), "\n")
}

func FormatHistory(records []domain.SpinRecord) string {
	if len(records) == 0 {
		return "📜 Спинов пока не было"
	}
	var b strings.Builder
	b.WriteString("📜 Последние спины\n\n")
	for _, r := range records {
		mark := ""
		if r.UsedBonus {
			mark = " 🎁"
		}
		result := "—"
		if r.Coins > 0 {
			result = "+" + FormatCoins(r.Coins)
		}
		if r.Jackpot {
			result += " 🎉"
		}
		fmt.Fprintf(&b, "%s %s ставка %s%s → %s, баланс %s\n",
			r.CreatedAt.Format("02.01 15:04"), r.Outcome, FormatCoins(r.Bet), mark, result, FormatCoins(r.Balance))
	}
	return strings.TrimRight(b.String(), "\n")
}

func FormatDailyClaim(claim domain.DailyClaim, balance int64) string {
	return fmt.Sprintf("📅 Ежедневная награда: +%s\n🔥 Серия: %d дн.\n💰 Баланс: %s",
		FormatCoins(claim.Reward), claim.Streak, FormatCoins(balance))
}

func FormatHelp() string {
	return "🎰 Секретное казино\n\n" +
		"/spin - крутить барабаны\n" +
		"/bet N - поставить ставку\n" +
		"/daily - ежедневная награда\n" +
		"/me - моя статистика\n" +
		"/achievements - достижения\n" +
		"/history - последние спины\n" +
		"/reset - начать заново\n" +
		"/help - список команд"
}

// BetKeyboard offers the presets the balance allows, marking the current bet.
func BetKeyboard(current, balance int64, l engine.Limits) gotgbot.InlineKeyboardMarkup {
	var row []gotgbot.InlineKeyboardButton
	for _, bet := range betPresets {
		if !l.ValidBet(bet, balance) {
			continue
		}
		label := FormatCoins(bet)
		if bet == current {
			label = "✅ " + label
		}
		row = append(row, gotgbot.InlineKeyboardButton{
			Text:         label,
			CallbackData: fmt.Sprintf("bet:%d", bet),
		})
	}
	rows := [][]gotgbot.InlineKeyboardButton{}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, []gotgbot.InlineKeyboardButton{{Text: "🎰 Крутить", CallbackData: "spin:go"}})
	return gotgbot.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// ParseBet reads a bet from a "bet:N" callback or a bare "N" argument.
func ParseBet(raw string) (int64, bool) {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "bet:")
	bet, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return bet, true
}

package scheduler

import (
	"context"
	"sync"
	"time"

	"secret-casino-bot/internal/cache"
	"secret-casino-bot/internal/domain"
	"secret-casino-bot/internal/service"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"go.uber.org/zap"
)

// Notifier is the slice of the Bot API the scheduler needs.
type Notifier interface {
	SendMessage(chatId int64, text string, opts *gotgbot.SendMessageOpts) (*gotgbot.Message, error)
}

const reminderText = "📅 Ежедневная награда ждёт тебя: /daily"

type Scheduler struct {
	gate       *cache.Gate
	players    service.Players
	notifier   Notifier
	activePath string
	loc        *time.Location
	log        *zap.Logger

	lastFlushMinute int64
	lastReminderDay string

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewScheduler(
	gate *cache.Gate,
	players service.Players,
	notifier Notifier,
	activePath string,
	loc *time.Location,
	log *zap.Logger,
) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		gate:            gate,
		players:         players,
		notifier:        notifier,
		activePath:      activePath,
		loc:             loc,
		log:             log,
		lastFlushMinute: -1,
		ctx:             ctx,
		cancel:          cancel,
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.loop()
}

// Stop ends the loop and writes the active set one last time.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	s.flush()
}

func (s *Scheduler) loop() {
	defer s.wg.Done()

	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case now := <-ticker.C:
			s.tick(now)
		}
	}
}

func (s *Scheduler) tick(nowUTC time.Time) {
	now := nowUTC.In(s.loc)

	minuteKey := now.Unix() / 60
	if (now.Minute() == 0 || now.Minute() == 30) &&
		now.Second() < 30 &&
		minuteKey != s.lastFlushMinute {

		s.lastFlushMinute = minuteKey
		s.flush()
	}

	// ---------- Daily reminder: 12:00 ----------
	dayKey := now.Format(domain.DateLayout)
	if now.Hour() == 12 &&
		now.Minute() == 0 &&
		now.Second() < 30 &&
		dayKey != s.lastReminderDay {

		s.lastReminderDay = dayKey
		s.runDailyReminders()
	}
}

func (s *Scheduler) flush() {
	if err := s.gate.SaveToFile(s.activePath); err != nil {
		s.log.Warn("active players flush failed", zap.String("path", s.activePath), zap.Error(err))
	}
}

func (s *Scheduler) runDailyReminders() {
	sent := 0
	s.gate.IterateActive(func(userID int64, p cache.ActivePlayer) bool {
		if !s.players.Get(s.ctx, userID).DailyEligible() {
			return true
		}

		_, err := s.notifier.SendMessage(p.ChatID, reminderText, nil)
		if err != nil {
			s.log.Warn("daily reminder failed", zap.Int64("player", userID), zap.Int64("chat", p.ChatID), zap.Error(err))
			return true
		}
		sent++
		return true
	})
	s.log.Info("daily reminders sent", zap.Int("count", sent))
}

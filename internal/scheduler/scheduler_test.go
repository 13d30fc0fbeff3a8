package scheduler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"secret-casino-bot/internal/cache"
	"secret-casino-bot/internal/engine"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"go.uber.org/zap"
)

type sentMessage struct {
	chatID int64
	text   string
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []sentMessage
	fail map[int64]bool
}

func (n *fakeNotifier) SendMessage(chatId int64, text string, opts *gotgbot.SendMessageOpts) (*gotgbot.Message, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.fail[chatId] {
		return nil, errors.New("blocked by user")
	}
	n.sent = append(n.sent, sentMessage{chatId, text})
	return &gotgbot.Message{}, nil
}

func newTestScheduler(t *testing.T, gate *cache.Gate, n Notifier) (*Scheduler, *cache.Registry) {
	t.Helper()
	reg := cache.NewRegistry(func(userID int64) *engine.Engine {
		return engine.New(engine.Options{Key: cache.SnapshotKey(userID), PlayerID: userID})
	})
	path := filepath.Join(t.TempDir(), "active.json")
	return NewScheduler(gate, reg, n, path, time.UTC, zap.NewNop()), reg
}

func TestDailyReminders(t *testing.T) {
	gate := cache.NewGate(1, nil)
	gate.Tap(1, 100)
	gate.Tap(2, 200)
	gate.Tap(3, 300)

	n := &fakeNotifier{fail: map[int64]bool{300: true}}
	s, reg := newTestScheduler(t, gate, n)

	// player 2 already claimed today
	if _, err := reg.Get(context.Background(), 2).ClaimDaily(context.Background()); err != nil {
		t.Fatal(err)
	}

	noon := time.Now().UTC().Truncate(24 * time.Hour).Add(12*time.Hour + 5*time.Second)
	s.tick(noon)

	if len(n.sent) != 1 || n.sent[0].chatID != 100 || n.sent[0].text != reminderText {
		t.Fatalf("sent = %+v, want one reminder to chat 100", n.sent)
	}

	// same day again is a no-op
	s.tick(noon.Add(10 * time.Second))
	if len(n.sent) != 1 {
		t.Errorf("reminder repeated: %+v", n.sent)
	}
}

func TestNoReminderOutsideNoon(t *testing.T) {
	gate := cache.NewGate(1, nil)
	gate.Tap(1, 100)
	n := &fakeNotifier{}
	s, _ := newTestScheduler(t, gate, n)

	s.tick(time.Date(2026, 10, 15, 11, 59, 55, 0, time.UTC))
	s.tick(time.Date(2026, 10, 15, 12, 1, 0, 0, time.UTC))
	if len(n.sent) != 0 {
		t.Errorf("sent = %+v", n.sent)
	}
}

func TestFlushOnHalfHour(t *testing.T) {
	gate := cache.NewGate(1, nil)
	gate.Tap(9, 900)
	s, _ := newTestScheduler(t, gate, &fakeNotifier{})

	s.tick(time.Date(2026, 10, 15, 10, 15, 0, 0, time.UTC))
	if _, err := os.Stat(s.activePath); !os.IsNotExist(err) {
		t.Fatal("flushed outside the half-hour mark")
	}

	s.tick(time.Date(2026, 10, 15, 10, 30, 5, 0, time.UTC))
	loaded := cache.NewGate(1, nil)
	if err := loaded.LoadFromFile(s.activePath); err != nil {
		t.Fatal(err)
	}
	if !loaded.IsActive(9) {
		t.Error("active set not flushed")
	}
}

func TestStopFlushes(t *testing.T) {
	gate := cache.NewGate(1, nil)
	gate.Tap(4, 400)
	s, _ := newTestScheduler(t, gate, &fakeNotifier{})

	s.Start()
	s.Stop()

	if _, err := os.Stat(s.activePath); err != nil {
		t.Errorf("active file missing after Stop: %v", err)
	}
}

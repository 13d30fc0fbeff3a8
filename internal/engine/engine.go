package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"secret-casino-bot/internal/domain"
	"secret-casino-bot/internal/slot"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrCannotSpin     = errors.New("cannot spin: insufficient balance and no bonus rounds")
	ErrBusy           = errors.New("spin already in progress")
	ErrAlreadyClaimed = errors.New("daily reward already claimed today")
	// ErrSnapshotNotFound is returned by a Store when nothing was saved yet.
	ErrSnapshotNotFound = errors.New("snapshot not found")
)

type OutcomeSource interface {
	Generate(winStreak int64) domain.Outcome
}

type Store interface {
	Load(ctx context.Context, key string) (*domain.Snapshot, error)
	Save(ctx context.Context, key string, snap domain.Snapshot) error
	Delete(ctx context.Context, key string) error
}

type SpinRecorder interface {
	Record(ctx context.Context, rec domain.SpinRecord) error
	DeletePlayer(ctx context.Context, playerID int64) error
}

type Rules struct {
	Limits    Limits
	Paytable  slot.Paytable
	Generator slot.GeneratorConfig
	Daily     DailyRules
	Catalog   []domain.Achievement
}

func DefaultRules() Rules {
	return Rules{
		Limits:    DefaultLimits(),
		Paytable:  slot.DefaultPaytable(),
		Generator: slot.DefaultGeneratorConfig(),
		Daily:     DefaultDailyRules(),
		Catalog:   domain.DefaultAchievements(),
	}
}

type Options struct {
	Key      string
	PlayerID int64
	Rules    Rules
	Store    Store
	Recorder SpinRecorder
	// Source defaults to a time-seeded slot.Generator.
	Source   OutcomeSource
	Delay    time.Duration
	Clock    func() time.Time
	Location *time.Location
	Logger   *zap.Logger
}

// Engine owns one player's session. All mutations go through its mutex and
// at most one spin is in flight at a time.
type Engine struct {
	mu    sync.Mutex
	state domain.SpinState

	key      string
	playerID int64
	rules    Rules
	store    Store
	recorder SpinRecorder
	source   OutcomeSource
	delay    time.Duration
	clock    func() time.Time
	loc      *time.Location
	log      *zap.Logger

	session      domain.Session
	achievements []domain.Achievement
	daily        domain.DailyRewardRecord
}

func New(opts Options) *Engine {
	if opts.Rules.Limits == (Limits{}) {
		opts.Rules = DefaultRules()
	}
	if opts.Source == nil {
		opts.Source = slot.NewGenerator(opts.Rules.Generator, slot.NewTimeSeededRNG())
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Engine{
		key:          opts.Key,
		playerID:     opts.PlayerID,
		rules:        opts.Rules,
		store:        opts.Store,
		recorder:     opts.Recorder,
		source:       opts.Source,
		delay:        opts.Delay,
		clock:        opts.Clock,
		loc:          opts.Location,
		log:          opts.Logger.With(zap.String("key", opts.Key)),
		session:      opts.Rules.Limits.FreshSession(),
		achievements: domain.Relock(opts.Rules.Catalog),
	}
}

// Load restores the persisted snapshot. A missing snapshot or an unreachable
// store leaves fresh defaults in place; it reports whether state was restored.
func (e *Engine) Load(ctx context.Context) bool {
	if e.store == nil {
		return false
	}
	snap, err := e.store.Load(ctx, e.key)
	if err != nil {
		if !errors.Is(err, ErrSnapshotNotFound) {
			e.log.Warn("snapshot load failed, starting fresh", zap.Error(err))
		}
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.session = snap.Session
	if e.session.Jackpot < e.rules.Limits.BaseJackpot {
		e.session.Jackpot = e.rules.Limits.BaseJackpot
	}
	e.achievements = domain.MergeUnlocked(e.rules.Catalog, snap.Achievements)
	e.daily = snap.Daily
	e.state = domain.Idle
	return true
}

// Spin runs one full Idle -> Spinning -> Resolved -> Idle cycle. The delay
// between Spinning and Resolved stands in for the reel animation; other
// spins are rejected with ErrBusy until it ends. Once started a spin always
// resolves, even if ctx is cancelled.
func (e *Engine) Spin(ctx context.Context) (domain.SpinResult, error) {
	e.mu.Lock()
	if e.state != domain.Idle {
		e.mu.Unlock()
		return domain.SpinResult{}, ErrBusy
	}
	next, stake, ok := Begin(e.session, e.rules.Limits)
	if !ok {
		e.mu.Unlock()
		return domain.SpinResult{}, ErrCannotSpin
	}
	e.session = next
	e.state = domain.Spinning
	e.persistLocked(ctx)
	e.mu.Unlock()

	if e.delay > 0 {
		time.Sleep(e.delay)
	}

	ctx = context.WithoutCancel(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()

	outcome := e.source.Generate(e.session.WinStreak)
	payout := Payout(e.session, stake, outcome, e.rules.Paytable)
	e.session = Resolve(e.session, stake, payout, e.rules.Limits)
	e.state = domain.Resolved

	var unlocked []domain.Achievement
	e.achievements, unlocked = EvaluateAchievements(e.session.Metrics(), e.achievements)
	e.session.Balance += rewardTotal(unlocked)

	if payout.IsJackpot {
		e.log.Info("jackpot", zap.Int64("coins", payout.Coins))
	}
	for _, a := range unlocked {
		e.log.Info("achievement unlocked", zap.String("id", a.ID), zap.Int64("reward", a.Reward))
	}

	res := domain.SpinResult{
		ID:        uuid.NewString(),
		Outcome:   outcome,
		Payout:    payout,
		Bet:       stake.Bet,
		UsedBonus: stake.UsedBonus,
		Session:   e.session,
		Unlocked:  unlocked,
		At:        e.clock(),
	}

	e.persistLocked(ctx)
	e.record(ctx, res)
	e.state = domain.Idle
	return res, nil
}

// SetBet changes the bet if it is within [MinBet, min(MaxBet, balance)] and
// no spin is running. Anything else is ignored.
func (e *Engine) SetBet(ctx context.Context, bet int64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != domain.Idle || !e.rules.Limits.ValidBet(bet, e.session.Balance) {
		return false
	}
	if e.session.Bet == bet {
		return true
	}
	e.session.Bet = bet
	e.persistLocked(ctx)
	return true
}

func (e *Engine) DailyEligible() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return CheckEligible(dayOf(e.clock(), e.loc), e.daily.LastClaimedDate)
}

func (e *Engine) ClaimDaily(ctx context.Context) (domain.DailyClaim, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	today := dayOf(e.clock(), e.loc)
	if !CheckEligible(today, e.daily.LastClaimedDate) {
		return domain.DailyClaim{}, ErrAlreadyClaimed
	}
	claim := ClaimReward(today, e.daily.LastClaimedDate, e.daily.DailyStreak, e.rules.Daily)
	e.session.Balance += claim.Reward
	e.daily = domain.DailyRewardRecord{LastClaimedDate: &today, DailyStreak: claim.Streak}
	e.persistLocked(ctx)
	return claim, nil
}

// Reset restores the starting session and relocks every achievement. The
// daily streak survives a reset.
func (e *Engine) Reset(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != domain.Idle {
		return ErrBusy
	}
	e.session = e.rules.Limits.FreshSession()
	e.achievements = domain.Relock(e.rules.Catalog)
	e.persistLocked(ctx)
	if e.recorder != nil {
		if err := e.recorder.DeletePlayer(ctx, e.playerID); err != nil {
			e.log.Warn("spin history cleanup failed", zap.Error(err))
		}
	}
	return nil
}

func (e *Engine) State() domain.SpinState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Engine) Snapshot() domain.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) Limits() Limits {
	return e.rules.Limits
}

func (e *Engine) snapshotLocked() domain.Snapshot {
	achievements := make([]domain.Achievement, len(e.achievements))
	copy(achievements, e.achievements)
	daily := e.daily
	if daily.LastClaimedDate != nil {
		d := *daily.LastClaimedDate
		daily.LastClaimedDate = &d
	}
	return domain.Snapshot{
		Version:      domain.SnapshotVersion,
		Session:      e.session,
		Achievements: achievements,
		Daily:        daily,
		SavedAt:      e.clock(),
	}
}

// persistLocked writes through to the store. Failures are logged and the
// in-memory state stays authoritative.
func (e *Engine) persistLocked(ctx context.Context) {
	if e.store == nil {
		return
	}
	if err := e.store.Save(ctx, e.key, e.snapshotLocked()); err != nil {
		e.log.Warn("snapshot save failed", zap.Error(err))
	}
}

func (e *Engine) record(ctx context.Context, res domain.SpinResult) {
	if e.recorder == nil {
		return
	}
	err := e.recorder.Record(ctx, domain.SpinRecord{
		ID:        res.ID,
		PlayerID:  e.playerID,
		Outcome:   res.Outcome.String(),
		Bet:       res.Bet,
		Coins:     res.Payout.Coins,
		Balance:   res.Session.Balance,
		UsedBonus: res.UsedBonus,
		Jackpot:   res.Payout.IsJackpot,
		CreatedAt: res.At,
	})
	if err != nil {
		e.log.Warn("spin history write failed", zap.Error(err))
	}
}

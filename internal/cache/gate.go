package cache

import (
	"os"
	"sort"
	"strconv"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultTapWindow is the longest pause between two taps that still counts
// as the same sequence.
const DefaultTapWindow = 30 * time.Second

type ActivePlayer struct {
	ChatID      int64 `json:"chat_id"`
	ActivatedAt int64 `json:"activated_at"`
}

type TapResult struct {
	Count   int
	Toggled bool
	Active  bool
}

type gateData struct {
	mu      sync.Mutex
	taps    int
	lastTap time.Time
	active  bool
	entry   ActivePlayer
}

// Gate tracks the secret-unlock taps per player and the resulting set of
// active players. Dev ids are always active and never toggle off.
type Gate struct {
	players   sync.Map // map[int64]*gateData
	threshold int
	window    time.Duration
	devIDs    map[int64]bool
	now       func() time.Time
}

func NewGate(threshold int, devIDs []int64) *Gate {
	devs := make(map[int64]bool, len(devIDs))
	for _, id := range devIDs {
		devs[id] = true
	}
	return &Gate{
		threshold: threshold,
		window:    DefaultTapWindow,
		devIDs:    devs,
		now:       time.Now,
	}
}

func (g *Gate) getData(userID int64) *gateData {
	val, _ := g.players.LoadOrStore(userID, &gateData{})
	return val.(*gateData)
}

// Tap registers one tap. Reaching the threshold flips the active flag and
// starts a new sequence.
func (g *Gate) Tap(userID, chatID int64) TapResult {
	if g.devIDs[userID] {
		return TapResult{Active: true}
	}

	data := g.getData(userID)
	data.mu.Lock()
	defer data.mu.Unlock()

	now := g.now()
	if data.taps > 0 && now.Sub(data.lastTap) > g.window {
		data.taps = 0
	}
	data.taps++
	data.lastTap = now

	if data.taps < g.threshold {
		return TapResult{Count: data.taps, Active: data.active}
	}

	data.taps = 0
	data.active = !data.active
	if data.active {
		data.entry = ActivePlayer{ChatID: chatID, ActivatedAt: now.Unix()}
	}
	return TapResult{Count: g.threshold, Toggled: true, Active: data.active}
}

func (g *Gate) Threshold() int {
	return g.threshold
}

func (g *Gate) IsActive(userID int64) bool {
	if g.devIDs[userID] {
		return true
	}
	val, ok := g.players.Load(userID)
	if !ok {
		return false
	}
	data := val.(*gateData)
	data.mu.Lock()
	defer data.mu.Unlock()
	return data.active
}

// IterateActive calls fn for each player unlocked through the gate. If fn
// returns false, iteration stops.
func (g *Gate) IterateActive(fn func(userID int64, p ActivePlayer) bool) {
	g.players.Range(func(key, value any) bool {
		data := value.(*gateData)
		data.mu.Lock()
		active, entry := data.active, data.entry
		data.mu.Unlock()
		if !active {
			return true
		}
		return fn(key.(int64), entry)
	})
}

// persistentGate is the file layout; keys are user ids as strings.
type persistentGate struct {
	Active map[string]ActivePlayer `json:"active"`
}

func (g *Gate) SaveToFile(path string) error {
	snap := persistentGate{Active: make(map[string]ActivePlayer)}
	g.IterateActive(func(userID int64, p ActivePlayer) bool {
		snap.Active[strconv.FormatInt(userID, 10)] = p
		return true
	})

	jsonData, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, jsonData, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (g *Gate) LoadFromFile(path string) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var snap persistentGate
	if err := json.Unmarshal(bytes, &snap); err == nil && snap.Active != nil {
		for k, p := range snap.Active {
			id, err := strconv.ParseInt(k, 10, 64)
			if err != nil {
				continue
			}
			g.players.Store(id, &gateData{active: true, entry: p})
		}
		return nil
	}

	// Fallback: bare list of user ids, chat unknown
	var old []int64
	if err := json.Unmarshal(bytes, &old); err != nil {
		return err
	}
	for _, id := range old {
		g.players.Store(id, &gateData{active: true, entry: ActivePlayer{ChatID: id}})
	}
	return nil
}

// ActiveIDs returns the gate-unlocked players in ascending order.
func (g *Gate) ActiveIDs() []int64 {
	var ids []int64
	g.IterateActive(func(userID int64, _ ActivePlayer) bool {
		ids = append(ids, userID)
		return true
	})
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

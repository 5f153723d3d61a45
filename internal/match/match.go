package match

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/ThurX360/RANKED-BOT/internal/economy"
	"github.com/ThurX360/RANKED-BOT/internal/rank"
	"github.com/ThurX360/RANKED-BOT/internal/scoring"
)

// Match is one active session: two drafted teams, their captains and
// the result votes collected so far. All mutations go through the
// match's own lock; a match is finalized exactly once.
type Match struct {
	GuildID     string
	ChannelID   string
	TeamSize    int
	TeamBlue    []string
	TeamRed     []string
	CaptainBlue string
	CaptainRed  string

	mu        sync.Mutex
	winner    rank.Winner
	mvp       string
	used      map[string]rank.ItemFlags
	confirms  map[string]bool
	finalized bool

	reg *Registry
}

// Snapshot is the read model of a match for rendering.
type Snapshot struct {
	GuildID     string
	ChannelID   string
	TeamSize    int
	TeamBlue    []string
	TeamRed     []string
	CaptainBlue string
	CaptainRed  string
	Winner      rank.Winner
	MVP         string
	UsedItems   map[string]rank.ItemFlags
	Confirmed   []string
}

// Confirmation is the outcome of a finalize confirmation: either the
// match is still waiting on the other captain, or it just finalized and
// carries the committed record and post-match player states.
type Confirmation struct {
	Waiting   bool
	WaitingOn string

	Record  *rank.MatchRecord
	Players map[string]*rank.Player
	Deltas  map[string]int
}

func (m *Match) isCaptain(id string) bool {
	return id == m.CaptainBlue || id == m.CaptainRed
}

func (m *Match) onRoster(id string) bool {
	for _, p := range m.TeamBlue {
		if p == id {
			return true
		}
	}
	for _, p := range m.TeamRed {
		if p == id {
			return true
		}
	}
	return false
}

// SetWinner records the winning side. Captains only; the last write
// wins, there is no vote history.
func (m *Match) SetWinner(requester string, side rank.Winner) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.finalized {
		return rank.ErrMatchFinalized
	}
	if !m.isCaptain(requester) {
		return rank.ErrNotCaptain
	}
	m.winner = side
	return nil
}

// SetMVP records the MVP. Captains only; the pick must be on one of the
// two rosters.
func (m *Match) SetMVP(requester, playerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.finalized {
		return rank.ErrMatchFinalized
	}
	if !m.isCaptain(requester) {
		return rank.ErrNotCaptain
	}
	if !m.onRoster(playerID) {
		return rank.ErrNotInMatch
	}
	m.mvp = playerID
	return nil
}

// UseItem activates an item for this match. The inventory unit is
// consumed immediately and is not refunded if the match never
// finalizes. Each item kind can be activated once per player per match.
func (m *Match) UseItem(playerID string, kind rank.ItemKind) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.finalized {
		return rank.ErrMatchFinalized
	}

	count, err := m.reg.economy.ItemCount(playerID, kind)
	if err != nil {
		return err
	}
	if count <= 0 {
		return rank.ErrNoSuchItem
	}

	flags := m.used[playerID]
	switch kind {
	case rank.ItemDouble:
		if flags.Double {
			return rank.ErrAlreadyUsed
		}
		flags.Double = true
	case rank.ItemShield:
		if flags.Shield {
			return rank.ErrAlreadyUsed
		}
		flags.Shield = true
	default:
		return rank.ErrInvalidItem
	}

	if err := m.reg.economy.ConsumeItem(playerID, kind); err != nil {
		return err
	}
	m.used[playerID] = flags
	return nil
}

// ConfirmFinalize records a captain's confirmation. Once both captains
// have confirmed, the match finalizes atomically: deltas are computed,
// applied and committed together with the history record, and the match
// leaves the active registry. Confirming twice is idempotent.
func (m *Match) ConfirmFinalize(requester string) (*Confirmation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.finalized {
		return nil, rank.ErrMatchFinalized
	}
	if !m.isCaptain(requester) {
		return nil, rank.ErrNotCaptain
	}
	if m.winner == "" {
		return nil, rank.ErrWinnerNotSet
	}
	if m.mvp == "" {
		return nil, rank.ErrMvpNotSet
	}

	m.confirms[requester] = true
	if !m.confirms[m.CaptainBlue] || !m.confirms[m.CaptainRed] {
		waitingOn := m.CaptainBlue
		if m.confirms[m.CaptainBlue] {
			waitingOn = m.CaptainRed
		}
		return &Confirmation{Waiting: true, WaitingOn: waitingOn}, nil
	}

	conf, err := m.finalizeLocked()
	if err != nil {
		return nil, err
	}

	m.finalized = true
	m.reg.remove(m.ChannelID)
	m.reg.logResult(conf.Record)
	return conf, nil
}

// finalizeLocked computes and commits the match outcome. Called with
// the match lock held, before the finalized flag is set, so a commit
// failure leaves the match confirmable again.
func (m *Match) finalizeLocked() (*Confirmation, error) {
	players := make(map[string]*rank.Player)
	for _, id := range append(append([]string(nil), m.TeamBlue...), m.TeamRed...) {
		p, err := m.reg.store.Player(id)
		if err != nil {
			return nil, fmt.Errorf("finalize match: %w", err)
		}
		if p == nil {
			p = rank.NewPlayer()
		}
		players[id] = p
	}

	winners, losers := m.TeamBlue, m.TeamRed
	if m.winner == rank.WinnerRed {
		winners, losers = m.TeamRed, m.TeamBlue
	}

	deltas := m.reg.ledger.Apply(players, scoring.Result{
		Winners:   winners,
		Losers:    losers,
		MVP:       m.mvp,
		UsedItems: m.used,
	})

	rec := &rank.MatchRecord{
		GuildID:     m.GuildID,
		ChannelID:   m.ChannelID,
		PlayedAt:    m.reg.now(),
		TeamBlue:    m.TeamBlue,
		TeamRed:     m.TeamRed,
		CaptainBlue: m.CaptainBlue,
		CaptainRed:  m.CaptainRed,
		Winner:      m.winner,
		MVP:         m.mvp,
		UsedItems:   m.used,
		PointsDelta: deltas,
		TeamSize:    m.TeamSize,
	}

	if _, err := m.reg.store.CommitMatch(players, rec); err != nil {
		return nil, fmt.Errorf("finalize match: %w", err)
	}

	return &Confirmation{Record: rec, Players: players, Deltas: deltas}, nil
}

// Snapshot returns a copy of the match state for rendering.
func (m *Match) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	used := make(map[string]rank.ItemFlags, len(m.used))
	for id, f := range m.used {
		used[id] = f
	}
	confirmed := make([]string, 0, len(m.confirms))
	for id := range m.confirms {
		confirmed = append(confirmed, id)
	}
	return Snapshot{
		GuildID:     m.GuildID,
		ChannelID:   m.ChannelID,
		TeamSize:    m.TeamSize,
		TeamBlue:    append([]string(nil), m.TeamBlue...),
		TeamRed:     append([]string(nil), m.TeamRed...),
		CaptainBlue: m.CaptainBlue,
		CaptainRed:  m.CaptainRed,
		Winner:      m.winner,
		MVP:         m.mvp,
		UsedItems:   used,
		Confirmed:   confirmed,
	}
}

// Registry tracks the single active match per channel.
type Registry struct {
	mu      sync.Mutex
	matches map[string]*Match

	store   rank.Store
	ledger  *scoring.Ledger
	economy *economy.Economy
	sink    rank.NotificationSink

	rngMu sync.Mutex
	rng   *rand.Rand

	now func() time.Time
}

// NewRegistry creates a match registry. The sink may be nil.
func NewRegistry(store rank.Store, ledger *scoring.Ledger, eco *economy.Economy, sink rank.NotificationSink, rng *rand.Rand) *Registry {
	return &Registry{
		matches: make(map[string]*Match),
		store:   store,
		ledger:  ledger,
		economy: eco,
		sink:    sink,
		rng:     rng,
		now:     time.Now,
	}
}

// Start drafts teams from the given players and opens a match in the
// channel. Fails if a match is already active there.
func (r *Registry) Start(guildID, channelID string, players []string, teamSize int) (*Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.matches[channelID]; exists {
		return nil, rank.ErrMatchActive
	}

	r.rngMu.Lock()
	blue, red, capBlue, capRed := Draft(r.rng, players, teamSize)
	r.rngMu.Unlock()

	m := &Match{
		GuildID:     guildID,
		ChannelID:   channelID,
		TeamSize:    teamSize,
		TeamBlue:    blue,
		TeamRed:     red,
		CaptainBlue: capBlue,
		CaptainRed:  capRed,
		used:        make(map[string]rank.ItemFlags),
		confirms:    make(map[string]bool),
		reg:         r,
	}
	r.matches[channelID] = m

	slog.Info("Match started", "channel", channelID, "teamSize", teamSize,
		"captainBlue", capBlue, "captainRed", capRed)
	return m, nil
}

// Match returns the active match for a channel, if any.
func (r *Registry) Match(channelID string) (*Match, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.matches[channelID]
	return m, ok
}

func (r *Registry) remove(channelID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.matches, channelID)
}

// logResult posts a plain-text result line to the logs channel.
func (r *Registry) logResult(rec *rank.MatchRecord) {
	slog.Info("Match finalized", "id", rec.ID, "winner", rec.Winner, "mvp", rec.MVP)
	if r.sink == nil {
		return
	}
	r.sink.Post(rec.GuildID, rank.ChannelLogs, fmt.Sprintf(
		"Match %s | winner: %s | mvp: <@%s> | deltas: %v", rec.ID, rec.Winner, rec.MVP, rec.PointsDelta))
}

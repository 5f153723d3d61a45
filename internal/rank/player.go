// Package rank holds the shared domain model for the ranked ladder:
// player records, items and their point effects, tiers, medals and the
// persistence contract everything else is built on.
package rank

import "time"

// Point and coin rewards applied when a match is finalized.
const (
	WinPoints  = 50
	LossPoints = -30
	MvpBonus   = 25

	WinCoins  = 20
	LossCoins = 5
)

// Player is the persistent record for a single ladder member, keyed by
// their Discord user ID. Records are created lazily on first interaction
// and never deleted.
type Player struct {
	Points    int
	Wins      int
	Losses    int
	Mvps      int
	Streak    int
	MaxStreak int
	Medals    []string
	Items     map[ItemKind]int
	Coins     int
	LastDaily *time.Time
	History   []string
}

// NewPlayer returns a fresh record with the starter inventory: one of
// each item kind.
func NewPlayer() *Player {
	return &Player{
		Medals:  []string{},
		Items:   map[ItemKind]int{ItemDouble: 1, ItemShield: 1},
		History: []string{},
	}
}

// HasMedal reports whether the player already holds the given medal.
func (p *Player) HasMedal(code string) bool {
	for _, m := range p.Medals {
		if m == code {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so stored records are never aliased by
// callers mutating a player mid-operation.
func (p *Player) Clone() *Player {
	c := *p
	c.Medals = append([]string(nil), p.Medals...)
	c.History = append([]string(nil), p.History...)
	c.Items = make(map[ItemKind]int, len(p.Items))
	for k, v := range p.Items {
		c.Items[k] = v
	}
	if p.LastDaily != nil {
		t := *p.LastDaily
		c.LastDaily = &t
	}
	return &c
}

// Tier is the named bracket a player's total points fall into.
type Tier int

const (
	TierBronze Tier = iota
	TierSilver
	TierGold
	TierPlatinum
	TierDiamond
)

func (t Tier) String() string {
	switch t {
	case TierBronze:
		return "Bronze"
	case TierSilver:
		return "Silver"
	case TierGold:
		return "Gold"
	case TierPlatinum:
		return "Platinum"
	case TierDiamond:
		return "Diamond"
	default:
		return "Unknown"
	}
}

// TierOf classifies total points into a tier. Intervals are half-open
// and the top tier is unbounded.
func TierOf(points int) Tier {
	switch {
	case points < 100:
		return TierBronze
	case points < 250:
		return TierSilver
	case points < 500:
		return TierGold
	case points < 800:
		return TierPlatinum
	default:
		return TierDiamond
	}
}

// Streak thresholds that award a medal the first time they are reached.
var medalThresholds = []struct {
	streak int
	code   string
}{
	{3, "streak-3"},
	{5, "streak-5"},
	{10, "streak-10"},
}

// MedalForStreak returns the medal awarded at exactly the given streak,
// if any. Thresholds are matched by equality; streaks only ever step by
// one win at a time, so no threshold can be skipped.
func MedalForStreak(streak int) (string, bool) {
	for _, m := range medalThresholds {
		if m.streak == streak {
			return m.code, true
		}
	}
	return "", false
}

// NormalizeTeamSize clamps a requested team size to the supported
// 2v2/3v3/4v4 formats. Anything else falls back to 4.
func NormalizeTeamSize(n int) int {
	switch n {
	case 2, 3:
		return n
	default:
		return 4
	}
}

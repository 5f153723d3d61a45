// Package scoring applies the point, streak, medal and coin effects of
// a finished match to player records.
package scoring

import "github.com/ThurX360/RANKED-BOT/internal/rank"

// Config holds the tunable reward constants.
type Config struct {
	WinPoints  int
	LossPoints int
	MvpBonus   int
	WinCoins   int
	LossCoins  int
}

// DefaultConfig returns the standard ladder rewards.
func DefaultConfig() Config {
	return Config{
		WinPoints:  rank.WinPoints,
		LossPoints: rank.LossPoints,
		MvpBonus:   rank.MvpBonus,
		WinCoins:   rank.WinCoins,
		LossCoins:  rank.LossCoins,
	}
}

// Ledger computes and applies match outcomes.
type Ledger struct {
	cfg Config
}

// New creates a ledger with the given reward config.
func New(cfg Config) *Ledger {
	return &Ledger{cfg: cfg}
}

// Result describes a finished match from the scorer's point of view.
type Result struct {
	Winners   []string
	Losers    []string
	MVP       string
	UsedItems map[string]rank.ItemFlags
}

// Apply mutates the given player records with the match outcome and
// returns the realized point delta per player. Every participant must
// be present in players; the MVP bonus is added on top of the item-
// adjusted delta and is itself never modified by items.
func (l *Ledger) Apply(players map[string]*rank.Player, res Result) map[string]int {
	deltas := make(map[string]int, len(res.Winners)+len(res.Losers))

	for _, id := range res.Winners {
		p := players[id]
		d := rank.Delta(l.cfg.WinPoints, res.UsedItems[id])
		p.Points += d
		p.Wins++
		p.Streak++
		if p.Streak > p.MaxStreak {
			p.MaxStreak = p.Streak
		}
		if code, ok := rank.MedalForStreak(p.Streak); ok && !p.HasMedal(code) {
			p.Medals = append(p.Medals, code)
		}
		p.Coins += l.cfg.WinCoins
		deltas[id] = d
	}

	for _, id := range res.Losers {
		p := players[id]
		d := rank.Delta(l.cfg.LossPoints, res.UsedItems[id])
		p.Points += d
		p.Losses++
		p.Streak = 0
		p.Coins += l.cfg.LossCoins
		deltas[id] = d
	}

	if res.MVP != "" {
		p := players[res.MVP]
		p.Points += l.cfg.MvpBonus
		p.Mvps++
		deltas[res.MVP] += l.cfg.MvpBonus
	}

	return deltas
}

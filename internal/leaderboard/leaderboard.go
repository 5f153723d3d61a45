// Package leaderboard sorts player records into the ranking views shown
// in the ranking channel.
package leaderboard

import (
	"sort"

	"github.com/ThurX360/RANKED-BOT/internal/rank"
)

// Metric selects what a ranking is sorted by.
type Metric int

const (
	ByPoints Metric = iota
	ByWins
	ByLosses
	ByMaxStreak
)

func (m Metric) String() string {
	switch m {
	case ByPoints:
		return "points"
	case ByWins:
		return "wins"
	case ByLosses:
		return "losses"
	case ByMaxStreak:
		return "max streak"
	default:
		return "unknown"
	}
}

// Entry is one ranked player.
type Entry struct {
	PlayerID string
	Player   *rank.Player
	Value    int
}

// Rankings sorts every player by the metric, descending, with the
// player id as a deterministic tie-break.
func Rankings(players map[string]*rank.Player, metric Metric) []Entry {
	entries := make([]Entry, 0, len(players))
	for id, p := range players {
		entries = append(entries, Entry{PlayerID: id, Player: p, Value: value(p, metric)})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].PlayerID < entries[j].PlayerID
	})
	return entries
}

// Top returns the first limit entries of the ranking.
func Top(players map[string]*rank.Player, metric Metric, limit int) []Entry {
	entries := Rankings(players, metric)
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

func value(p *rank.Player, metric Metric) int {
	switch metric {
	case ByWins:
		return p.Wins
	case ByLosses:
		return p.Losses
	case ByMaxStreak:
		return p.MaxStreak
	default:
		return p.Points
	}
}

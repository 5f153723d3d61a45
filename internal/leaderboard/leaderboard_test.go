package leaderboard

import (
	"testing"

	"github.com/ThurX360/RANKED-BOT/internal/rank"
)

func player(points, wins, losses, maxStreak int) *rank.Player {
	p := rank.NewPlayer()
	p.Points = points
	p.Wins = wins
	p.Losses = losses
	p.MaxStreak = maxStreak
	return p
}

func TestRankingsByPoints(t *testing.T) {
	players := map[string]*rank.Player{
		"a": player(120, 3, 1, 2),
		"b": player(500, 10, 2, 6),
		"c": player(-60, 0, 2, 0),
	}

	entries := Rankings(players, ByPoints)
	got := []string{entries[0].PlayerID, entries[1].PlayerID, entries[2].PlayerID}
	for i, want := range []string{"b", "a", "c"} {
		if got[i] != want {
			t.Fatalf("ranking order %v, want b a c", got)
		}
	}
	if entries[0].Value != 500 {
		t.Fatalf("top value = %d, want 500", entries[0].Value)
	}
}

func TestRankingsTieBreakIsDeterministic(t *testing.T) {
	players := map[string]*rank.Player{
		"z": player(100, 0, 0, 0),
		"a": player(100, 0, 0, 0),
	}
	entries := Rankings(players, ByPoints)
	if entries[0].PlayerID != "a" || entries[1].PlayerID != "z" {
		t.Fatalf("tie-break order: %s, %s", entries[0].PlayerID, entries[1].PlayerID)
	}
}

func TestTopLimitsAndMetrics(t *testing.T) {
	players := map[string]*rank.Player{
		"a": player(10, 9, 1, 4),
		"b": player(20, 2, 8, 1),
		"c": player(30, 5, 5, 9),
	}

	top := Top(players, ByWins, 2)
	if len(top) != 2 || top[0].PlayerID != "a" || top[1].PlayerID != "c" {
		t.Fatalf("top wins: %+v", top)
	}
	top = Top(players, ByLosses, 1)
	if len(top) != 1 || top[0].PlayerID != "b" {
		t.Fatalf("top losses: %+v", top)
	}
	top = Top(players, ByMaxStreak, 10)
	if len(top) != 3 || top[0].PlayerID != "c" {
		t.Fatalf("top streak: %+v", top)
	}
}

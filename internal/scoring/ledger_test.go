package scoring

import (
	"math/rand"
	"testing"

	"github.com/ThurX360/RANKED-BOT/internal/rank"
)

func newPlayers(ids ...string) map[string]*rank.Player {
	players := make(map[string]*rank.Player, len(ids))
	for _, id := range ids {
		players[id] = rank.NewPlayer()
	}
	return players
}

func TestApplyBasicResult(t *testing.T) {
	ledger := New(DefaultConfig())
	players := newPlayers("a", "b", "c", "d")

	deltas := ledger.Apply(players, Result{
		Winners: []string{"a", "b"},
		Losers:  []string{"c", "d"},
		MVP:     "a",
	})

	if deltas["a"] != 75 {
		t.Errorf("mvp winner delta = %d, want 75", deltas["a"])
	}
	if deltas["b"] != 50 {
		t.Errorf("winner delta = %d, want 50", deltas["b"])
	}
	if deltas["c"] != -30 || deltas["d"] != -30 {
		t.Errorf("loser deltas = %d/%d, want -30/-30", deltas["c"], deltas["d"])
	}

	a := players["a"]
	if a.Points != 75 || a.Wins != 1 || a.Mvps != 1 || a.Streak != 1 || a.MaxStreak != 1 {
		t.Errorf("unexpected mvp winner record: %+v", a)
	}
	if players["b"].Coins != 20 || players["c"].Coins != 5 {
		t.Errorf("coin rewards = %d/%d, want 20/5", players["b"].Coins, players["c"].Coins)
	}
	if players["c"].Losses != 1 || players["c"].Streak != 0 {
		t.Errorf("unexpected loser record: %+v", players["c"])
	}
}

func TestApplyItemFlags(t *testing.T) {
	ledger := New(DefaultConfig())
	players := newPlayers("w", "l")

	deltas := ledger.Apply(players, Result{
		Winners: []string{"w"},
		Losers:  []string{"l"},
		UsedItems: map[string]rank.ItemFlags{
			"w": {Double: true},
			"l": {Shield: true},
		},
	})

	if deltas["w"] != 100 {
		t.Errorf("doubled win delta = %d, want 100", deltas["w"])
	}
	if deltas["l"] != 0 {
		t.Errorf("shielded loss delta = %d, want 0", deltas["l"])
	}
	if players["l"].Points != 0 {
		t.Errorf("shielded loser points = %d, want 0", players["l"].Points)
	}
}

func TestMvpBonusOnLosingSideUnaffectedByItems(t *testing.T) {
	ledger := New(DefaultConfig())
	players := newPlayers("w", "l")

	deltas := ledger.Apply(players, Result{
		Winners:   []string{"w"},
		Losers:    []string{"l"},
		MVP:       "l",
		UsedItems: map[string]rank.ItemFlags{"l": {Double: true}},
	})

	// Doubled loss is -60; the flat MVP bonus stacks on top.
	if deltas["l"] != -35 {
		t.Errorf("losing mvp delta = %d, want -35", deltas["l"])
	}
	if players["l"].Mvps != 1 {
		t.Errorf("mvps = %d, want 1", players["l"].Mvps)
	}
}

func TestMedalsAwardedOnceAtThresholds(t *testing.T) {
	ledger := New(DefaultConfig())
	players := newPlayers("a", "b")

	winStreak := func(n int) {
		for i := 0; i < n; i++ {
			ledger.Apply(players, Result{Winners: []string{"a"}, Losers: []string{"b"}})
		}
	}
	loseOnce := func() {
		ledger.Apply(players, Result{Winners: []string{"b"}, Losers: []string{"a"}})
	}

	winStreak(5)
	a := players["a"]
	if !a.HasMedal("streak-3") || !a.HasMedal("streak-5") || a.HasMedal("streak-10") {
		t.Fatalf("medals after 5 straight wins: %v", a.Medals)
	}

	// A second run through the same thresholds must not re-award.
	loseOnce()
	winStreak(5)
	count := 0
	for _, m := range a.Medals {
		if m == "streak-3" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("streak-3 awarded %d times, want 1", count)
	}
	if len(a.Medals) != 2 {
		t.Fatalf("medal set = %v, want exactly streak-3 and streak-5", a.Medals)
	}
}

// TestMaxStreakInvariant applies a random win/loss sequence and checks
// max_streak is always the high-water mark of streak.
func TestMaxStreakInvariant(t *testing.T) {
	ledger := New(DefaultConfig())
	players := newPlayers("a", "b")
	rng := rand.New(rand.NewSource(42))

	best := 0
	for i := 0; i < 200; i++ {
		res := Result{Winners: []string{"a"}, Losers: []string{"b"}}
		if rng.Intn(2) == 0 {
			res = Result{Winners: []string{"b"}, Losers: []string{"a"}}
		}
		ledger.Apply(players, res)

		a := players["a"]
		if a.Streak > best {
			best = a.Streak
		}
		if a.MaxStreak < a.Streak {
			t.Fatalf("step %d: max_streak %d < streak %d", i, a.MaxStreak, a.Streak)
		}
		if a.MaxStreak != best {
			t.Fatalf("step %d: max_streak %d, want high-water %d", i, a.MaxStreak, best)
		}
	}
}

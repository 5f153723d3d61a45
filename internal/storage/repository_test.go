package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ThurX360/RANKED-BOT/internal/rank"
)

// Store is satisfied by both implementations; the shared suite below
// runs against each.
type storeUnderTest interface {
	rank.Store
}

func testStore(t *testing.T, store storeUnderTest) {
	t.Helper()

	// Unknown reads degrade to nil, not errors.
	if p, err := store.Player("nobody"); err != nil || p != nil {
		t.Fatalf("unknown player: got %v, %v", p, err)
	}
	if rec, err := store.Match("M1"); err != nil || rec != nil {
		t.Fatalf("unknown match: got %v, %v", rec, err)
	}

	// Player round trip.
	when := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	p := rank.NewPlayer()
	p.Points = 175
	p.Wins = 4
	p.Streak = 2
	p.MaxStreak = 3
	p.Coins = 12
	p.Medals = append(p.Medals, "streak-3")
	p.Items[rank.ItemShield] = 5
	p.LastDaily = &when
	if err := store.SavePlayer("p1", p); err != nil {
		t.Fatalf("save player: %v", err)
	}

	loaded, err := store.Player("p1")
	if err != nil {
		t.Fatalf("load player: %v", err)
	}
	if loaded.Points != 175 || loaded.Wins != 4 || loaded.MaxStreak != 3 || loaded.Coins != 12 {
		t.Fatalf("loaded player: %+v", loaded)
	}
	if !loaded.HasMedal("streak-3") || loaded.Items[rank.ItemShield] != 5 {
		t.Fatalf("loaded collections: medals=%v items=%v", loaded.Medals, loaded.Items)
	}
	if loaded.LastDaily == nil || !loaded.LastDaily.Equal(when) {
		t.Fatalf("loaded last daily: %v", loaded.LastDaily)
	}

	// CommitMatch: ledger id, history push and player writes together.
	rec := &rank.MatchRecord{
		GuildID:     "g1",
		ChannelID:   "c1",
		PlayedAt:    when,
		TeamBlue:    []string{"p1", "p2"},
		TeamRed:     []string{"p3", "p4"},
		CaptainBlue: "p1",
		CaptainRed:  "p3",
		Winner:      rank.WinnerBlue,
		MVP:         "p2",
		UsedItems:   map[string]rank.ItemFlags{"p3": {Shield: true}},
		PointsDelta: map[string]int{"p1": 50, "p2": 75, "p3": 0, "p4": -30},
		TeamSize:    2,
	}
	batch := map[string]*rank.Player{"p1": loaded, "p2": rank.NewPlayer()}
	id, err := store.CommitMatch(batch, rec)
	if err != nil {
		t.Fatalf("commit match: %v", err)
	}
	if id != "M1" {
		t.Fatalf("first ledger id = %s, want M1", id)
	}

	stored, err := store.Match("M1")
	if err != nil || stored == nil {
		t.Fatalf("load match: %v, %v", stored, err)
	}
	if stored.Winner != rank.WinnerBlue || stored.MVP != "p2" || stored.TeamSize != 2 {
		t.Fatalf("stored match: %+v", stored)
	}
	if !stored.UsedItems["p3"].Shield || stored.PointsDelta["p2"] != 75 {
		t.Fatalf("stored match payload: %+v", stored)
	}

	for _, pid := range []string{"p1", "p2"} {
		pp, _ := store.Player(pid)
		if len(pp.History) == 0 || pp.History[len(pp.History)-1] != "M1" {
			t.Fatalf("player %s history: %v", pid, pp.History)
		}
	}

	// A second append keeps the global counter moving.
	next := *rec
	next.PlayedAt = when.Add(time.Hour)
	if id, err := store.AppendMatch(&next); err != nil || id != "M2" {
		t.Fatalf("second ledger id = %s, %v, want M2", id, err)
	}

	// Config round trip.
	cfg := rank.NewChannelConfig()
	cfg.Channels[rank.ChannelRanking] = "ch-rank"
	cfg.Channels[rank.ChannelLogs] = "ch-logs"
	if err := store.SaveConfig(cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}
	got, err := store.Config()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if got.Channels[rank.ChannelRanking] != "ch-rank" || got.Channels[rank.ChannelLogs] != "ch-logs" {
		t.Fatalf("loaded config: %+v", got.Channels)
	}

	// Players listing includes everything written so far.
	all, err := store.Players()
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("player count = %d, want 2", len(all))
	}
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemory())
}

func TestSQLiteRepository(t *testing.T) {
	repo, err := NewRepository(filepath.Join(t.TempDir(), "ladder.db"))
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	defer repo.Close()

	testStore(t, repo)
}

func TestMemoryStoreCopiesRecords(t *testing.T) {
	store := NewMemory()
	p := rank.NewPlayer()
	store.SavePlayer("p1", p)

	loaded, _ := store.Player("p1")
	loaded.Coins = 999

	again, _ := store.Player("p1")
	if again.Coins != 0 {
		t.Fatalf("store leaked a mutable reference: coins = %d", again.Coins)
	}

	rec := &rank.MatchRecord{
		GuildID:  "g1",
		TeamBlue: []string{"p1"},
		TeamRed:  []string{"p2"},
		Winner:   rank.WinnerBlue,
	}
	id, _ := store.AppendMatch(rec)

	fetched, _ := store.Match(id)
	fetched.Winner = rank.WinnerRed
	fetched.TeamBlue[0] = "intruder"

	clean, _ := store.Match(id)
	if clean.Winner != rank.WinnerBlue || clean.TeamBlue[0] != "p1" {
		t.Fatalf("store leaked a mutable record: %+v", clean)
	}

	// The caller's own record is also detached from the ledger.
	rec.Winner = rank.WinnerRed
	clean, _ = store.Match(id)
	if clean.Winner != rank.WinnerBlue {
		t.Fatalf("appended record aliased the ledger: %+v", clean)
	}
}

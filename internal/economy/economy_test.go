package economy

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/ThurX360/RANKED-BOT/internal/rank"
	"github.com/ThurX360/RANKED-BOT/internal/storage"
)

func newEconomy(seed int64) (*Economy, *storage.Memory) {
	store := storage.NewMemory()
	e := New(store, rand.New(rand.NewSource(seed)))
	return e, store
}

func TestGrantDailyCooldown(t *testing.T) {
	e, _ := newEconomy(1)
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return base }

	if _, err := e.GrantDaily("p1"); err != nil {
		t.Fatalf("first daily failed: %v", err)
	}

	// One minute short of the cooldown still fails.
	e.now = func() time.Time { return base.Add(DailyCooldown - time.Minute) }
	_, err := e.GrantDaily("p1")
	if !errors.Is(err, rank.ErrOnCooldown) {
		t.Fatalf("expected cooldown error, got %v", err)
	}
	var cd *rank.CooldownError
	if !errors.As(err, &cd) || cd.Remaining <= 0 || cd.Remaining > time.Minute {
		t.Fatalf("unexpected remaining cooldown: %+v", cd)
	}

	// Exactly at the cooldown boundary succeeds.
	e.now = func() time.Time { return base.Add(DailyCooldown) }
	if _, err := e.GrantDaily("p1"); err != nil {
		t.Fatalf("daily at cooldown boundary failed: %v", err)
	}
}

func TestGrantDailyMatchesSeededDraw(t *testing.T) {
	seed := int64(7)
	oracle := rand.New(rand.NewSource(seed))
	want := dailyRewards[oracle.Intn(len(dailyRewards))]

	e, store := newEconomy(seed)
	got, err := e.GrantDaily("p1")
	if err != nil {
		t.Fatalf("GrantDaily failed: %v", err)
	}
	if got != want {
		t.Fatalf("reward = %+v, want %+v", got, want)
	}

	p, _ := store.Player("p1")
	if want.Item != "" {
		if p.Items[want.Item] != 2 { // starter inventory plus the reward
			t.Fatalf("item count = %d, want 2", p.Items[want.Item])
		}
	} else if p.Coins != want.Coins {
		t.Fatalf("coins = %d, want %d", p.Coins, want.Coins)
	}
	if p.LastDaily == nil {
		t.Fatal("last daily timestamp not set")
	}
}

func TestBuySellRoundTrip(t *testing.T) {
	e, store := newEconomy(1)
	seedPlayer := rank.NewPlayer()
	seedPlayer.Coins = 40
	store.SavePlayer("p1", seedPlayer)

	cost, err := e.Buy("p1", rank.ItemShield, 3)
	if err != nil {
		t.Fatalf("buy failed: %v", err)
	}
	if cost != 15 {
		t.Fatalf("cost = %d, want 15", cost)
	}

	payout, err := e.Sell("p1", rank.ItemShield, 3)
	if err != nil {
		t.Fatalf("sell failed: %v", err)
	}
	if payout != 15 {
		t.Fatalf("payout = %d, want 15", payout)
	}

	p, _ := store.Player("p1")
	if p.Coins != 40 {
		t.Fatalf("coins after round trip = %d, want 40", p.Coins)
	}
	if p.Items[rank.ItemShield] != 1 {
		t.Fatalf("shields after round trip = %d, want 1", p.Items[rank.ItemShield])
	}
}

func TestBuyValidation(t *testing.T) {
	e, _ := newEconomy(1)

	if _, err := e.Buy("p1", "sword", 1); !errors.Is(err, rank.ErrInvalidItem) {
		t.Errorf("bad item: got %v", err)
	}
	if _, err := e.Buy("p1", rank.ItemShield, 0); !errors.Is(err, rank.ErrInvalidQty) {
		t.Errorf("zero qty: got %v", err)
	}
	if _, err := e.Buy("p1", rank.ItemShield, 51); !errors.Is(err, rank.ErrInvalidQty) {
		t.Errorf("oversized qty: got %v", err)
	}
	if _, err := e.Buy("p1", rank.ItemShield, 1); !errors.Is(err, rank.ErrNotEnoughCoins) {
		t.Errorf("broke player: got %v", err)
	}
}

func TestSellWithoutInventory(t *testing.T) {
	e, _ := newEconomy(1)
	// Starter inventory holds one shield; selling two must fail.
	if _, err := e.Sell("p1", rank.ItemShield, 2); !errors.Is(err, rank.ErrNotEnoughItems) {
		t.Fatalf("expected ErrNotEnoughItems, got %v", err)
	}
}

func TestGift(t *testing.T) {
	e, store := newEconomy(1)
	rich := rank.NewPlayer()
	rich.Coins = 30
	store.SavePlayer("rich", rich)

	if err := e.Gift("rich", "rich", 10); !errors.Is(err, rank.ErrSelfGift) {
		t.Errorf("self gift: got %v", err)
	}
	if err := e.Gift("rich", "poor", 0); !errors.Is(err, rank.ErrBadGiftAmount) {
		t.Errorf("zero amount: got %v", err)
	}
	if err := e.Gift("rich", "poor", 100); !errors.Is(err, rank.ErrNotEnoughCoins) {
		t.Errorf("overdraw: got %v", err)
	}

	if err := e.Gift("rich", "poor", 12); err != nil {
		t.Fatalf("gift failed: %v", err)
	}
	r, _ := store.Player("rich")
	p, _ := store.Player("poor")
	if r.Coins != 18 || p.Coins != 12 {
		t.Fatalf("balances after gift = %d/%d, want 18/12", r.Coins, p.Coins)
	}
}

func TestConsumeItem(t *testing.T) {
	e, store := newEconomy(1)

	// Starter inventory: one of each. First consume succeeds, second fails.
	if err := e.ConsumeItem("p1", rank.ItemDouble); err != nil {
		t.Fatalf("consume failed: %v", err)
	}
	if err := e.ConsumeItem("p1", rank.ItemDouble); !errors.Is(err, rank.ErrNoSuchItem) {
		t.Fatalf("expected ErrNoSuchItem, got %v", err)
	}
	p, _ := store.Player("p1")
	if p.Items[rank.ItemDouble] != 0 {
		t.Fatalf("doubles left = %d, want 0", p.Items[rank.ItemDouble])
	}
}

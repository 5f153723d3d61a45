// Package economy manages coin balances, the item shop, gifts, daily
// rewards and in-match item consumption.
package economy

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/ThurX360/RANKED-BOT/internal/rank"
)

// DailyCooldown is the minimum time between daily reward claims.
const DailyCooldown = 20 * time.Hour

const (
	minQuantity = 1
	maxQuantity = 50
)

// DailyReward is one outcome of the daily draw: either coins or one item.
type DailyReward struct {
	Coins int
	Item  rank.ItemKind
}

// The six-outcome daily reward table; drawn uniformly.
var dailyRewards = []DailyReward{
	{Coins: 1},
	{Coins: 2},
	{Coins: 5},
	{Coins: 10},
	{Item: rank.ItemShield},
	{Item: rank.ItemDouble},
}

// Economy serializes all coin and inventory mutations. The RNG is
// injected so daily draws are reproducible in tests.
type Economy struct {
	mu    sync.Mutex
	store rank.Store
	rng   *rand.Rand
	now   func() time.Time
}

// New creates an economy over the given store.
func New(store rank.Store, rng *rand.Rand) *Economy {
	return &Economy{
		store: store,
		rng:   rng,
		now:   time.Now,
	}
}

// GrantDaily draws one reward from the daily table, applying the 20h
// cooldown. Returns a CooldownError carrying the remaining wait when
// claimed too early.
func (e *Economy) GrantDaily(playerID string) (DailyReward, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, err := e.getOrCreate(playerID)
	if err != nil {
		return DailyReward{}, err
	}

	now := e.now()
	if p.LastDaily != nil {
		elapsed := now.Sub(*p.LastDaily)
		if elapsed < DailyCooldown {
			return DailyReward{}, &rank.CooldownError{Remaining: DailyCooldown - elapsed}
		}
	}

	reward := dailyRewards[e.rng.Intn(len(dailyRewards))]
	if reward.Item != "" {
		p.Items[reward.Item]++
	} else {
		p.Coins += reward.Coins
	}
	p.LastDaily = &now

	if err := e.store.SavePlayer(playerID, p); err != nil {
		return DailyReward{}, fmt.Errorf("grant daily: %w", err)
	}
	return reward, nil
}

// Buy purchases qty items at the listed price and returns the cost.
func (e *Economy) Buy(playerID string, kind rank.ItemKind, qty int) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	price, ok := rank.ItemPrices[kind]
	if !ok {
		return 0, rank.ErrInvalidItem
	}
	if qty < minQuantity || qty > maxQuantity {
		return 0, rank.ErrInvalidQty
	}

	p, err := e.getOrCreate(playerID)
	if err != nil {
		return 0, err
	}

	cost := price * qty
	if p.Coins < cost {
		return 0, rank.ErrNotEnoughCoins
	}
	p.Coins -= cost
	p.Items[kind] += qty

	if err := e.store.SavePlayer(playerID, p); err != nil {
		return 0, fmt.Errorf("buy items: %w", err)
	}
	return cost, nil
}

// Sell is the inverse of Buy: items back to coins at the same price.
func (e *Economy) Sell(playerID string, kind rank.ItemKind, qty int) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	price, ok := rank.ItemPrices[kind]
	if !ok {
		return 0, rank.ErrInvalidItem
	}
	if qty < minQuantity || qty > maxQuantity {
		return 0, rank.ErrInvalidQty
	}

	p, err := e.getOrCreate(playerID)
	if err != nil {
		return 0, err
	}

	if p.Items[kind] < qty {
		return 0, rank.ErrNotEnoughItems
	}
	payout := price * qty
	p.Items[kind] -= qty
	p.Coins += payout

	if err := e.store.SavePlayer(playerID, p); err != nil {
		return 0, fmt.Errorf("sell items: %w", err)
	}
	return payout, nil
}

// Gift moves coins from sender to receiver. Both records change under
// the same lock so a transfer is never observed half-applied.
func (e *Economy) Gift(senderID, receiverID string, amount int) error {
	if senderID == receiverID {
		return rank.ErrSelfGift
	}
	if amount <= 0 {
		return rank.ErrBadGiftAmount
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	sender, err := e.getOrCreate(senderID)
	if err != nil {
		return err
	}
	if sender.Coins < amount {
		return rank.ErrNotEnoughCoins
	}
	receiver, err := e.getOrCreate(receiverID)
	if err != nil {
		return err
	}

	sender.Coins -= amount
	receiver.Coins += amount

	if err := e.store.SavePlayer(senderID, sender); err != nil {
		return fmt.Errorf("gift coins: %w", err)
	}
	if err := e.store.SavePlayer(receiverID, receiver); err != nil {
		return fmt.Errorf("gift coins: %w", err)
	}
	return nil
}

// ItemCount reports how many of an item the player owns.
func (e *Economy) ItemCount(playerID string, kind rank.ItemKind) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, err := e.getOrCreate(playerID)
	if err != nil {
		return 0, err
	}
	return p.Items[kind], nil
}

// ConsumeItem removes one item from the player's inventory for use in a
// match. Consumption is immediate and never refunded, even if the match
// is abandoned.
func (e *Economy) ConsumeItem(playerID string, kind rank.ItemKind) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, err := e.getOrCreate(playerID)
	if err != nil {
		return err
	}
	if p.Items[kind] <= 0 {
		return rank.ErrNoSuchItem
	}
	p.Items[kind]--

	if err := e.store.SavePlayer(playerID, p); err != nil {
		return fmt.Errorf("consume item: %w", err)
	}
	return nil
}

// Profile returns the player's record, a fresh default if they have
// never interacted before.
func (e *Economy) Profile(playerID string) (*rank.Player, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.getOrCreate(playerID)
}

func (e *Economy) getOrCreate(playerID string) (*rank.Player, error) {
	p, err := e.store.Player(playerID)
	if err != nil {
		return nil, fmt.Errorf("load player: %w", err)
	}
	if p == nil {
		p = rank.NewPlayer()
	}
	return p, nil
}

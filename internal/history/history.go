// Package history reads and appends the immutable match ledger.
package history

import (
	"fmt"

	"github.com/ThurX360/RANKED-BOT/internal/rank"
)

// History exposes the append-only match ledger and per-player views.
type History struct {
	store rank.Store
}

// New creates a history view over the given store.
func New(store rank.Store) *History {
	return &History{store: store}
}

// Append stores a record and returns its assigned "M<n>" id.
func (h *History) Append(rec *rank.MatchRecord) (string, error) {
	id, err := h.store.AppendMatch(rec)
	if err != nil {
		return "", fmt.Errorf("append match record: %w", err)
	}
	return id, nil
}

// Match returns a stored record, or (nil, nil) when unknown.
func (h *History) Match(id string) (*rank.MatchRecord, error) {
	return h.store.Match(id)
}

// RecentForPlayer returns up to limit of the player's own matches, most
// recent first. Ledger entries that can no longer be resolved are
// skipped.
func (h *History) RecentForPlayer(playerID string, limit int) ([]*rank.MatchRecord, error) {
	p, err := h.store.Player(playerID)
	if err != nil {
		return nil, fmt.Errorf("load player history: %w", err)
	}
	if p == nil || len(p.History) == 0 {
		return nil, nil
	}

	ids := p.History
	if len(ids) > limit {
		ids = ids[len(ids)-limit:]
	}

	records := make([]*rank.MatchRecord, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		rec, err := h.store.Match(ids[i])
		if err != nil {
			return nil, fmt.Errorf("load match %s: %w", ids[i], err)
		}
		if rec == nil {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

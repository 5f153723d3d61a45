package storage

import (
	"fmt"
	"sync"

	"github.com/ThurX360/RANKED-BOT/internal/rank"
)

// Memory is an in-memory Store used by tests and as a degraded fallback.
// It mirrors the Repository semantics, including atomic CommitMatch.
type Memory struct {
	mu      sync.RWMutex
	players map[string]*rank.Player
	matches []*rank.MatchRecord
	byID    map[string]*rank.MatchRecord
	config  *rank.ChannelConfig
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		players: make(map[string]*rank.Player),
		byID:    make(map[string]*rank.MatchRecord),
		config:  rank.NewChannelConfig(),
	}
}

// Player returns a copy of the stored record, or (nil, nil) if unknown.
func (m *Memory) Player(id string) (*rank.Player, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.players[id]
	if !ok {
		return nil, nil
	}
	return p.Clone(), nil
}

// SavePlayer stores a copy of the record.
func (m *Memory) SavePlayer(id string, p *rank.Player) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.players[id] = p.Clone()
	return nil
}

// Players returns copies of every stored record.
func (m *Memory) Players() (map[string]*rank.Player, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]*rank.Player, len(m.players))
	for id, p := range m.players {
		out[id] = p.Clone()
	}
	return out, nil
}

// AppendMatch assigns the next sequential "M<n>" id and stores the record.
func (m *Memory) AppendMatch(rec *rank.MatchRecord) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.appendLocked(rec), nil
}

// Match returns a copy of the stored record, or (nil, nil) if unknown.
func (m *Memory) Match(id string) (*rank.MatchRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	return rec.Clone(), nil
}

// CommitMatch appends the record, pushes its id onto each player's
// history and stores all players under one lock.
func (m *Memory) CommitMatch(players map[string]*rank.Player, rec *rank.MatchRecord) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.appendLocked(rec)
	for pid, p := range players {
		p.History = append(p.History, id)
		m.players[pid] = p.Clone()
	}
	return id, nil
}

// Config returns a copy of the channel routing config.
func (m *Memory) Config() (*rank.ChannelConfig, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cfg := rank.NewChannelConfig()
	for k, v := range m.config.Channels {
		cfg.Channels[k] = v
	}
	return cfg, nil
}

// SaveConfig replaces the channel routing config.
func (m *Memory) SaveConfig(cfg *rank.ChannelConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := rank.NewChannelConfig()
	for k, v := range cfg.Channels {
		stored.Channels[k] = v
	}
	m.config = stored
	return nil
}

func (m *Memory) appendLocked(rec *rank.MatchRecord) string {
	id := fmt.Sprintf("M%d", len(m.matches)+1)
	rec.ID = id
	stored := rec.Clone()
	m.matches = append(m.matches, stored)
	m.byID[id] = stored
	return id
}

// Package queue manages per-channel waiting queues: join/leave with a
// voice-presence precondition, owner-only close and start, and the
// automatic draft once the queue fills.
package queue

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/ThurX360/RANKED-BOT/internal/match"
	"github.com/ThurX360/RANKED-BOT/internal/rank"
)

// Starter opens a match from a filled queue. Implemented by the match
// registry.
type Starter interface {
	Start(guildID, channelID string, players []string, teamSize int) (*match.Match, error)
}

// Session is one open queue in a channel. A session holds at most
// 2×TeamSize distinct players and is destroyed when it fills, when the
// owner closes it or when the owner forces a start.
type Session struct {
	GuildID   string
	ChannelID string
	Owner     string
	TeamSize  int
	Players   []string
}

// Needed is the player count that fills the queue.
func (s *Session) Needed() int { return s.TeamSize * 2 }

func (s *Session) has(playerID string) bool {
	for _, id := range s.Players {
		if id == playerID {
			return true
		}
	}
	return false
}

func (s *Session) snapshot() *Session {
	c := *s
	c.Players = append([]string(nil), s.Players...)
	return &c
}

// Manager owns every open queue, one per channel at most.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	presence rank.PresenceProvider
	starter  Starter
	sink     rank.NotificationSink
}

// New creates a queue manager. The sink may be nil.
func New(presence rank.PresenceProvider, starter Starter, sink rank.NotificationSink) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		presence: presence,
		starter:  starter,
		sink:     sink,
	}
}

// Open creates a queue in the channel. The requested team size is
// normalized to 2, 3 or 4.
func (m *Manager) Open(guildID, channelID, owner string, teamSize int) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[channelID]; exists {
		return nil, rank.ErrQueueActive
	}

	s := &Session{
		GuildID:   guildID,
		ChannelID: channelID,
		Owner:     owner,
		TeamSize:  rank.NormalizeTeamSize(teamSize),
	}
	m.sessions[channelID] = s

	slog.Info("Queue opened", "channel", channelID, "owner", owner, "teamSize", s.TeamSize)
	m.post(guildID, rank.ChannelQueue, fmt.Sprintf("Queue opened (%dv%d)! Join to play.", s.TeamSize, s.TeamSize))
	return s.snapshot(), nil
}

// Join adds a player to the channel's queue. The player must be in a
// voice channel. When the join fills the queue the draft runs
// immediately and the returned match is non-nil.
func (m *Manager) Join(channelID, playerID string) (*Session, *match.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[channelID]
	if !ok {
		return nil, nil, rank.ErrNoActiveQueue
	}
	if !m.presence.IsInVoice(s.GuildID, playerID) {
		return nil, nil, rank.ErrNotInVoice
	}
	if s.has(playerID) {
		return nil, nil, rank.ErrAlreadyQueued
	}
	if len(s.Players) >= s.Needed() {
		return nil, nil, rank.ErrQueueFull
	}

	s.Players = append(s.Players, playerID)
	if len(s.Players) < s.Needed() {
		return s.snapshot(), nil, nil
	}

	mt, err := m.startLocked(s)
	if err != nil {
		// Roll the join back so the queue stays usable.
		s.Players = s.Players[:len(s.Players)-1]
		return nil, nil, err
	}
	m.post(s.GuildID, rank.ChannelMatch, fmt.Sprintf("Queue full (%dv%d)! Drafting teams...", s.TeamSize, s.TeamSize))
	return s.snapshot(), mt, nil
}

// Leave removes a player from the channel's queue.
func (m *Manager) Leave(channelID, playerID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[channelID]
	if !ok {
		return nil, rank.ErrNoActiveQueue
	}
	for i, id := range s.Players {
		if id == playerID {
			s.Players = append(s.Players[:i], s.Players[i+1:]...)
			return s.snapshot(), nil
		}
	}
	return nil, rank.ErrNotQueued
}

// Close destroys the channel's queue. Owner only.
func (m *Manager) Close(channelID, requester string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[channelID]
	if !ok {
		return rank.ErrNoActiveQueue
	}
	if s.Owner != requester {
		return rank.ErrNotOwner
	}
	delete(m.sessions, channelID)
	slog.Info("Queue closed", "channel", channelID, "owner", requester)
	return nil
}

// ForceStart drafts immediately. Owner only, and the queue must be
// exactly full.
func (m *Manager) ForceStart(channelID, requester string) (*match.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[channelID]
	if !ok {
		return nil, rank.ErrNoActiveQueue
	}
	if s.Owner != requester {
		return nil, rank.ErrNotOwner
	}
	if len(s.Players) < s.Needed() {
		return nil, rank.ErrUnderfilled
	}
	return m.startLocked(s)
}

// Session returns a copy of the channel's queue, if one is open.
func (m *Manager) Session(channelID string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[channelID]
	if !ok {
		return nil, false
	}
	return s.snapshot(), true
}

// startLocked destroys the session and hands its roster to the starter.
// On failure the session is restored so players are not lost.
func (m *Manager) startLocked(s *Session) (*match.Match, error) {
	delete(m.sessions, s.ChannelID)
	mt, err := m.starter.Start(s.GuildID, s.ChannelID, s.Players, s.TeamSize)
	if err != nil {
		m.sessions[s.ChannelID] = s
		return nil, err
	}
	return mt, nil
}

func (m *Manager) post(guildID string, kind rank.ChannelKind, content string) {
	if m.sink == nil {
		return
	}
	m.sink.Post(guildID, kind, content)
}

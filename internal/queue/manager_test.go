package queue

import (
	"errors"
	"testing"

	"github.com/ThurX360/RANKED-BOT/internal/match"
	"github.com/ThurX360/RANKED-BOT/internal/rank"
)

// presenceFunc adapts a function to rank.PresenceProvider.
type presenceFunc func(guildID, playerID string) bool

func (f presenceFunc) IsInVoice(guildID, playerID string) bool { return f(guildID, playerID) }

func everyoneInVoice(string, string) bool { return true }

// fakeStarter records draft requests instead of opening real matches.
type fakeStarter struct {
	calls   int
	players []string
	size    int
	err     error
}

func (f *fakeStarter) Start(guildID, channelID string, players []string, teamSize int) (*match.Match, error) {
	f.calls++
	f.players = append([]string(nil), players...)
	f.size = teamSize
	if f.err != nil {
		return nil, f.err
	}
	return &match.Match{GuildID: guildID, ChannelID: channelID, TeamSize: teamSize}, nil
}

func TestOpenRejectsSecondQueue(t *testing.T) {
	m := New(presenceFunc(everyoneInVoice), &fakeStarter{}, nil)

	s, err := m.Open("g1", "c1", "owner", 2)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if s.Needed() != 4 {
		t.Fatalf("needed = %d, want 4", s.Needed())
	}

	if _, err := m.Open("g1", "c1", "other", 3); !errors.Is(err, rank.ErrQueueActive) {
		t.Fatalf("second open: got %v", err)
	}
	if _, err := m.Open("g1", "c2", "other", 3); err != nil {
		t.Fatalf("open in another channel failed: %v", err)
	}
}

func TestOpenNormalizesTeamSize(t *testing.T) {
	m := New(presenceFunc(everyoneInVoice), &fakeStarter{}, nil)
	s, err := m.Open("g1", "c1", "owner", 7)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if s.TeamSize != 4 {
		t.Fatalf("team size = %d, want 4", s.TeamSize)
	}
}

func TestJoinPreconditions(t *testing.T) {
	inVoice := map[string]bool{"p1": true, "p2": true, "p3": true, "p4": true, "p5": true}
	m := New(presenceFunc(func(_, id string) bool { return inVoice[id] }), &fakeStarter{}, nil)

	if _, _, err := m.Join("c1", "p1"); !errors.Is(err, rank.ErrNoActiveQueue) {
		t.Fatalf("join without queue: got %v", err)
	}

	m.Open("g1", "c1", "p1", 2)

	if _, _, err := m.Join("c1", "ghost"); !errors.Is(err, rank.ErrNotInVoice) {
		t.Fatalf("join outside voice: got %v", err)
	}

	if _, _, err := m.Join("c1", "p1"); err != nil {
		t.Fatalf("join failed: %v", err)
	}
	if _, _, err := m.Join("c1", "p1"); !errors.Is(err, rank.ErrAlreadyQueued) {
		t.Fatalf("duplicate join: got %v", err)
	}
}

func TestJoinFillsQueueAndDrafts(t *testing.T) {
	starter := &fakeStarter{}
	m := New(presenceFunc(everyoneInVoice), starter, nil)
	m.Open("g1", "c1", "p1", 2)

	for _, id := range []string{"p1", "p2", "p3"} {
		s, mt, err := m.Join("c1", id)
		if err != nil {
			t.Fatalf("join %s failed: %v", id, err)
		}
		if mt != nil {
			t.Fatalf("draft triggered early at %s (%d/%d)", id, len(s.Players), s.Needed())
		}
	}

	_, mt, err := m.Join("c1", "p4")
	if err != nil {
		t.Fatalf("filling join failed: %v", err)
	}
	if mt == nil {
		t.Fatal("expected draft on fill")
	}
	if starter.calls != 1 || starter.size != 2 || len(starter.players) != 4 {
		t.Fatalf("starter called %d times with %v (size %d)", starter.calls, starter.players, starter.size)
	}

	// The session is gone; a fifth join finds no queue.
	if _, _, err := m.Join("c1", "p5"); !errors.Is(err, rank.ErrNoActiveQueue) {
		t.Fatalf("join after fill: got %v", err)
	}
}

func TestJoinRejectedWhenFullQueueLingers(t *testing.T) {
	// A failing starter keeps the full session alive; further joins must
	// see QueueFull.
	starter := &fakeStarter{err: rank.ErrMatchActive}
	m := New(presenceFunc(everyoneInVoice), starter, nil)
	m.Open("g1", "c1", "p1", 2)

	for _, id := range []string{"p1", "p2", "p3"} {
		if _, _, err := m.Join("c1", id); err != nil {
			t.Fatalf("join %s failed: %v", id, err)
		}
	}
	if _, _, err := m.Join("c1", "p4"); !errors.Is(err, rank.ErrMatchActive) {
		t.Fatalf("filling join with busy channel: got %v", err)
	}

	// The rolled-back session still has three players and accepts the
	// fourth once the starter recovers.
	starter.err = nil
	_, mt, err := m.Join("c1", "p4")
	if err != nil || mt == nil {
		t.Fatalf("recovered join: got %v, %v", mt, err)
	}
}

func TestLeave(t *testing.T) {
	m := New(presenceFunc(everyoneInVoice), &fakeStarter{}, nil)
	m.Open("g1", "c1", "p1", 2)
	m.Join("c1", "p1")

	if _, err := m.Leave("c1", "p2"); !errors.Is(err, rank.ErrNotQueued) {
		t.Fatalf("leave while not queued: got %v", err)
	}
	s, err := m.Leave("c1", "p1")
	if err != nil {
		t.Fatalf("leave failed: %v", err)
	}
	if len(s.Players) != 0 {
		t.Fatalf("players after leave: %v", s.Players)
	}
}

func TestCloseOwnerOnly(t *testing.T) {
	m := New(presenceFunc(everyoneInVoice), &fakeStarter{}, nil)

	if err := m.Close("c1", "p1"); !errors.Is(err, rank.ErrNoActiveQueue) {
		t.Fatalf("close without queue: got %v", err)
	}

	m.Open("g1", "c1", "owner", 2)
	if err := m.Close("c1", "intruder"); !errors.Is(err, rank.ErrNotOwner) {
		t.Fatalf("close by non-owner: got %v", err)
	}
	if err := m.Close("c1", "owner"); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if _, ok := m.Session("c1"); ok {
		t.Fatal("session survived close")
	}
}

func TestForceStart(t *testing.T) {
	starter := &fakeStarter{}
	m := New(presenceFunc(everyoneInVoice), starter, nil)
	m.Open("g1", "c1", "p1", 2)
	for _, id := range []string{"p1", "p2", "p3"} {
		m.Join("c1", id)
	}

	if _, err := m.ForceStart("c1", "p2"); !errors.Is(err, rank.ErrNotOwner) {
		t.Fatalf("force start by non-owner: got %v", err)
	}
	if _, err := m.ForceStart("c1", "p1"); !errors.Is(err, rank.ErrUnderfilled) {
		t.Fatalf("underfilled force start: got %v", err)
	}

	m.Join("c1", "p4")
	// The fill already drafted; force start on the gone session fails.
	if _, err := m.ForceStart("c1", "p1"); !errors.Is(err, rank.ErrNoActiveQueue) {
		t.Fatalf("force start after fill: got %v", err)
	}
	if starter.calls != 1 {
		t.Fatalf("starter calls = %d, want 1", starter.calls)
	}
}

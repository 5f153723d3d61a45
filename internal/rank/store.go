package rank

// ChannelKind routes bot output to a configured channel.
type ChannelKind string

const (
	ChannelQueue    ChannelKind = "queue"
	ChannelMatch    ChannelKind = "match"
	ChannelRanking  ChannelKind = "ranking"
	ChannelAnnounce ChannelKind = "announcements"
	ChannelLogs     ChannelKind = "logs"
)

// ChannelKinds lists every configurable routing slot.
var ChannelKinds = []ChannelKind{
	ChannelQueue, ChannelMatch, ChannelRanking, ChannelAnnounce, ChannelLogs,
}

// ChannelConfig maps routing slots to Discord channel IDs. Posts to an
// unset slot are dropped; command replies always go to the channel the
// command came from.
type ChannelConfig struct {
	Channels map[ChannelKind]string
}

// NewChannelConfig returns an empty routing config.
func NewChannelConfig() *ChannelConfig {
	return &ChannelConfig{Channels: make(map[ChannelKind]string)}
}

// Store is the persistence port for player records, the append-only
// match ledger and the channel routing config. Missing entries degrade
// to nil/defaults instead of failing; write errors are surfaced.
type Store interface {
	// Player returns the stored record or (nil, nil) when unknown.
	Player(id string) (*Player, error)
	SavePlayer(id string, p *Player) error
	Players() (map[string]*Player, error)

	// AppendMatch assigns the next sequential ledger ID, stores the
	// record and returns the ID.
	AppendMatch(rec *MatchRecord) (string, error)
	// Match returns the stored record or (nil, nil) when unknown.
	Match(id string) (*MatchRecord, error)
	// CommitMatch atomically appends the record, pushes its ID onto
	// every given player's history and saves those players. Either
	// everything is persisted or nothing is.
	CommitMatch(players map[string]*Player, rec *MatchRecord) (string, error)

	Config() (*ChannelConfig, error)
	SaveConfig(cfg *ChannelConfig) error
}

// PresenceProvider answers whether a player is currently connected to a
// voice channel, a precondition for joining a queue.
type PresenceProvider interface {
	IsInVoice(guildID, playerID string) bool
}

// NotificationSink posts best-effort messages to a routed channel.
// Delivery failures are swallowed; the ladder never depends on them.
type NotificationSink interface {
	Post(guildID string, kind ChannelKind, content string)
}

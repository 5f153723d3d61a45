package rank

import "time"

// Winner names the side that took a match.
type Winner string

const (
	WinnerBlue Winner = "blue"
	WinnerRed  Winner = "red"
)

// MatchRecord is the immutable ledger entry written when a match is
// finalized. IDs are sequential across the entire ledger ("M1", "M2",
// ...) and never reused.
type MatchRecord struct {
	ID          string               `json:"id"`
	GuildID     string               `json:"guild"`
	ChannelID   string               `json:"channel"`
	PlayedAt    time.Time            `json:"time"`
	TeamBlue    []string             `json:"team_blue"`
	TeamRed     []string             `json:"team_red"`
	CaptainBlue string               `json:"cap_blue"`
	CaptainRed  string               `json:"cap_red"`
	Winner      Winner               `json:"winner"`
	MVP         string               `json:"mvp"`
	UsedItems   map[string]ItemFlags `json:"used_items"`
	PointsDelta map[string]int       `json:"points_delta"`
	TeamSize    int                  `json:"team_size"`
}

// Clone returns a deep copy so ledger entries are never aliased by
// callers mutating a returned record.
func (r *MatchRecord) Clone() *MatchRecord {
	c := *r
	c.TeamBlue = append([]string(nil), r.TeamBlue...)
	c.TeamRed = append([]string(nil), r.TeamRed...)
	c.UsedItems = make(map[string]ItemFlags, len(r.UsedItems))
	for k, v := range r.UsedItems {
		c.UsedItems[k] = v
	}
	c.PointsDelta = make(map[string]int, len(r.PointsDelta))
	for k, v := range r.PointsDelta {
		c.PointsDelta[k] = v
	}
	return &c
}

// Participants returns both rosters combined.
func (r *MatchRecord) Participants() []string {
	out := make([]string, 0, len(r.TeamBlue)+len(r.TeamRed))
	out = append(out, r.TeamBlue...)
	out = append(out, r.TeamRed...)
	return out
}

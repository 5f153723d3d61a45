package bot

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/ThurX360/RANKED-BOT/internal/rank"
)

// Notifier posts ladder events to the routed channels. Delivery is best
// effort; an unconfigured or unreachable channel drops the message.
type Notifier struct {
	store   rank.Store
	discord *discordgo.Session
}

// NewNotifier creates a sink over the routing config in store.
func NewNotifier(store rank.Store, discord *discordgo.Session) *Notifier {
	return &Notifier{store: store, discord: discord}
}

// Post sends content to the channel configured for kind.
func (n *Notifier) Post(guildID string, kind rank.ChannelKind, content string) {
	cfg, err := n.store.Config()
	if err != nil {
		slog.Warn("Failed to load channel config", "error", err)
		return
	}
	channelID := cfg.Channels[kind]
	if channelID == "" {
		return
	}
	if _, err := n.discord.ChannelMessageSend(channelID, content); err != nil {
		slog.Warn("Failed to post notification", "guildID", guildID, "kind", kind, "error", err)
	}
}

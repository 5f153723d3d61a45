// Package announcer keeps the ranking channel and the "RANK <n>" member
// nicknames in sync with the ladder.
package announcer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/ThurX360/RANKED-BOT/internal/leaderboard"
	"github.com/ThurX360/RANKED-BOT/internal/rank"
)

// Announcer periodically refreshes leaderboard nicknames and publishes
// ranking embeds on demand (after every finalized match and on the
// leaderboard command).
type Announcer struct {
	store    rank.Store
	discord  *discordgo.Session
	interval time.Duration

	stopChan chan struct{}
	wg       sync.WaitGroup
}

// New creates an announcer refreshing every intervalMinutes.
func New(store rank.Store, discord *discordgo.Session, intervalMinutes int) *Announcer {
	return &Announcer{
		store:    store,
		discord:  discord,
		interval: time.Duration(intervalMinutes) * time.Minute,
		stopChan: make(chan struct{}),
	}
}

// Start begins the periodic nickname sync loop
func (a *Announcer) Start(ctx context.Context) {
	slog.Info("Starting announcer", "interval", a.interval)

	a.wg.Add(1)
	defer a.wg.Done()

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Announcer stopped (context cancelled)")
			return
		case <-a.stopChan:
			slog.Info("Announcer stopped")
			return
		case <-ticker.C:
			a.syncAll()
		}
	}
}

// Stop signals the announcer to stop
func (a *Announcer) Stop() {
	close(a.stopChan)
	a.wg.Wait()
}

func (a *Announcer) syncAll() {
	players, err := a.store.Players()
	if err != nil {
		slog.Error("Failed to load players for nickname sync", "error", err)
		return
	}
	if len(players) == 0 {
		return
	}
	ranking := leaderboard.Rankings(players, leaderboard.ByPoints)
	for _, guild := range a.discord.State.Guilds {
		a.syncNicknames(guild.ID, ranking)
	}
}

// Publish posts the top-10 leaderboard embed to the guild's ranking
// channel (or the fallback channel when none is configured) and syncs
// nicknames. Best effort throughout.
func (a *Announcer) Publish(guildID, fallbackChannelID string) {
	players, err := a.store.Players()
	if err != nil {
		slog.Error("Failed to load players for leaderboard", "error", err)
		return
	}
	ranking := leaderboard.Rankings(players, leaderboard.ByPoints)
	a.syncNicknames(guildID, ranking)

	channelID := fallbackChannelID
	if cfg, err := a.store.Config(); err == nil {
		if id := cfg.Channels[rank.ChannelRanking]; id != "" {
			channelID = id
		}
	}
	if channelID == "" {
		return
	}
	if _, err := a.discord.ChannelMessageSendEmbed(channelID, Embed(ranking)); err != nil {
		slog.Warn("Failed to publish leaderboard", "guildID", guildID, "error", err)
	}
}

// Embed renders the top 10 of a ranking.
func Embed(ranking []leaderboard.Entry) *discordgo.MessageEmbed {
	if len(ranking) > 10 {
		ranking = ranking[:10]
	}
	var sb strings.Builder
	for i, e := range ranking {
		tier := rank.TierOf(e.Player.Points)
		fmt.Fprintf(&sb, "**%d.** <@%s> — %d pts `%s`\n", i+1, e.PlayerID, e.Player.Points, tier)
	}
	desc := sb.String()
	if desc == "" {
		desc = "No players yet."
	}
	return &discordgo.MessageEmbed{
		Title:       "🏆 Current Rankings",
		Description: desc,
		Color:       0xf1c40f,
	}
}

// syncNicknames renames ranked members to "RANK <n> <username>".
// Members that left or outrank the bot's permissions are skipped.
func (a *Announcer) syncNicknames(guildID string, ranking []leaderboard.Entry) {
	for i, e := range ranking {
		member, err := a.discord.State.Member(guildID, e.PlayerID)
		if err != nil || member == nil {
			continue
		}
		nick := fmt.Sprintf("RANK %d %s", i+1, member.User.Username)
		if err := a.discord.GuildMemberNickname(guildID, e.PlayerID, nick); err != nil {
			slog.Debug("Failed to set nickname", "guildID", guildID, "player", e.PlayerID, "error", err)
		}
	}
}

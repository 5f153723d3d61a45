package bot

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/ThurX360/RANKED-BOT/internal/leaderboard"
	"github.com/ThurX360/RANKED-BOT/internal/match"
	"github.com/ThurX360/RANKED-BOT/internal/rank"
)

const (
	colorBlue   = 0x3498db
	colorRed    = 0xe74c3c
	colorGreen  = 0x2ecc71
	colorYellow = 0xf1c40f
)

func mentionList(ids []string) string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = "<@" + id + ">"
	}
	return strings.Join(out, ", ")
}

func mentions(ids []string, captain string) string {
	var sb strings.Builder
	for _, id := range ids {
		sb.WriteString("<@" + id + ">")
		if id == captain {
			sb.WriteString(" 👑")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// matchEmbed renders the active match panel: rosters, captains and the
// votes collected so far.
func matchEmbed(snap match.Snapshot) *discordgo.MessageEmbed {
	status := "Waiting for `/winner` from a captain."
	if snap.Winner != "" {
		status = fmt.Sprintf("Winner: **team %s**", snap.Winner)
		if snap.MVP != "" {
			status += fmt.Sprintf(" · MVP: <@%s>", snap.MVP)
		}
		status += "\nBoth captains `/confirm` to finalize."
	}
	if len(snap.Confirmed) > 0 {
		status += "\nConfirmed: " + mentionList(snap.Confirmed)
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "🔵 Team Blue", Value: mentions(snap.TeamBlue, snap.CaptainBlue), Inline: true},
		{Name: "🔴 Team Red", Value: mentions(snap.TeamRed, snap.CaptainRed), Inline: true},
	}
	if len(snap.UsedItems) > 0 {
		var sb strings.Builder
		for id, flags := range snap.UsedItems {
			var used []string
			if flags.Double {
				used = append(used, string(rank.ItemDouble))
			}
			if flags.Shield {
				used = append(used, string(rank.ItemShield))
			}
			fmt.Fprintf(&sb, "<@%s>: %s\n", id, strings.Join(used, ", "))
		}
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Items in play", Value: sb.String()})
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("⚔️ %dv%d Match", snap.TeamSize, snap.TeamSize),
		Description: status,
		Color:       colorBlue,
		Fields:      fields,
	}
}

// resultEmbed renders the finalize summary: the committed record plus
// every participant's realized point delta and new total.
func resultEmbed(conf *match.Confirmation) *discordgo.MessageEmbed {
	rec := conf.Record

	var sb strings.Builder
	for _, id := range rec.Participants() {
		delta := conf.Deltas[id]
		line := fmt.Sprintf("<@%s>: %+d pts", id, delta)
		if p := conf.Players[id]; p != nil {
			line += fmt.Sprintf(" (total %d, %s)", p.Points, rank.TierOf(p.Points))
		}
		if id == rec.MVP {
			line += " ⭐"
		}
		sb.WriteString(line + "\n")
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🏁 Match %s — Team %s wins!", rec.ID, rec.Winner),
		Description: sb.String(),
		Color:       colorGreen,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("MVP bonus +%d · played %s", rank.MvpBonus, rec.PlayedAt.Format("2006-01-02 15:04")),
		},
	}
}

// profileEmbed renders a player's ranked profile.
func profileEmbed(playerID string, p *rank.Player) *discordgo.MessageEmbed {
	medals := "none yet"
	if len(p.Medals) > 0 {
		medals = strings.Join(p.Medals, ", ")
	}

	return &discordgo.MessageEmbed{
		Title: "📊 Ranked Profile",
		Color: colorYellow,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Player", Value: fmt.Sprintf("<@%s>", playerID), Inline: true},
			{Name: "Tier", Value: rank.TierOf(p.Points).String(), Inline: true},
			{Name: "Points", Value: fmt.Sprintf("%d", p.Points), Inline: true},
			{Name: "Wins / Losses", Value: fmt.Sprintf("%d / %d", p.Wins, p.Losses), Inline: true},
			{Name: "MVPs", Value: fmt.Sprintf("%d", p.Mvps), Inline: true},
			{Name: "Streak", Value: fmt.Sprintf("%d (best %d)", p.Streak, p.MaxStreak), Inline: true},
			{Name: "Coins", Value: fmt.Sprintf("%d 🪙", p.Coins), Inline: true},
			{Name: "Medals", Value: medals, Inline: true},
		},
	}
}

// historyEmbed renders a player's recent matches, newest first.
func historyEmbed(playerID string, records []*rank.MatchRecord) *discordgo.MessageEmbed {
	var sb strings.Builder
	for _, rec := range records {
		outcome := "❌ Loss"
		for _, w := range winners(rec) {
			if w == playerID {
				outcome = "✅ Win"
				break
			}
		}
		line := fmt.Sprintf("**%s** · %s · %+d pts", rec.ID, outcome, rec.PointsDelta[playerID])
		if rec.MVP == playerID {
			line += " ⭐"
		}
		sb.WriteString(line + "\n")
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("📜 Recent matches for %s", "<@"+playerID+">"),
		Description: sb.String(),
		Color:       colorRed,
	}
}

func winners(rec *rank.MatchRecord) []string {
	if rec.Winner == rank.WinnerRed {
		return rec.TeamRed
	}
	return rec.TeamBlue
}

// leaderboardEmbed renders a top-N ranking for any metric.
func leaderboardEmbed(entries []leaderboard.Entry, metric leaderboard.Metric) *discordgo.MessageEmbed {
	var sb strings.Builder
	for i, e := range entries {
		fmt.Fprintf(&sb, "**%d.** <@%s> — %d %s `%s`\n",
			i+1, e.PlayerID, e.Value, metric, rank.TierOf(e.Player.Points))
	}
	desc := sb.String()
	if desc == "" {
		desc = "No players ranked yet."
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🏆 Leaderboard by %s", metric),
		Description: desc,
		Color:       colorYellow,
	}
}

package bot

import "github.com/bwmarrin/discordgo"

// VoicePresence answers voice-channel membership from the gateway state
// cache. Requires the GuildVoiceStates intent.
type VoicePresence struct {
	discord *discordgo.Session
}

// NewVoicePresence creates a presence provider over the session state.
func NewVoicePresence(discord *discordgo.Session) *VoicePresence {
	return &VoicePresence{discord: discord}
}

// IsInVoice reports whether the player is connected to any voice
// channel in the guild.
func (v *VoicePresence) IsInVoice(guildID, playerID string) bool {
	vs, err := v.discord.State.VoiceState(guildID, playerID)
	return err == nil && vs != nil && vs.ChannelID != ""
}

package bot

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/ThurX360/RANKED-BOT/internal/leaderboard"
	"github.com/ThurX360/RANKED-BOT/internal/rank"
)

// Slash command definitions
func (b *Bot) getCommandDefinitions() []*discordgo.ApplicationCommand {
	itemChoices := []*discordgo.ApplicationCommandOptionChoice{
		{Name: "Double Points", Value: string(rank.ItemDouble)},
		{Name: "Shield", Value: string(rank.ItemShield)},
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        "queue",
			Description: "Manage the ranked queue in this channel",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "open",
					Description: "Open a new queue",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "team_size",
							Description: "Players per team (2, 3 or 4)",
							Required:    true,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "2v2", Value: 2},
								{Name: "3v3", Value: 3},
								{Name: "4v4", Value: 4},
							},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "join",
					Description: "Join the open queue (requires a voice channel)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leave",
					Description: "Leave the open queue",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "status",
					Description: "Show who is waiting in the queue",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "close",
					Description: "Close the queue you opened",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Start the match early (owner only, queue must be full)",
				},
			},
		},
		{
			Name:        "winner",
			Description: "Record the winning team (captains only)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "side",
					Description: "The winning side",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Blue", Value: string(rank.WinnerBlue)},
						{Name: "Red", Value: string(rank.WinnerRed)},
					},
				},
			},
		},
		{
			Name:        "mvp",
			Description: "Pick the match MVP (captains only)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "player",
					Description: "The MVP, must be in the match",
					Required:    true,
				},
			},
		},
		{
			Name:        "item",
			Description: "Use an item in the current match",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "kind",
					Description: "The item to use",
					Required:    true,
					Choices:     itemChoices,
				},
			},
		},
		{
			Name:        "confirm",
			Description: "Confirm the match result (both captains must confirm)",
		},
		{
			Name:        "match",
			Description: "Show the current match in this channel",
		},
		{
			Name:        "profile",
			Description: "Show a player's ranked profile",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "player",
					Description: "Player to inspect (defaults to you)",
				},
			},
		},
		{
			Name:        "inventory",
			Description: "Show your items and coins",
		},
		{
			Name:        "history",
			Description: "Show a player's recent matches",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "player",
					Description: "Player to inspect (defaults to you)",
				},
			},
		},
		{
			Name:        "leaderboard",
			Description: "Show the server rankings",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "metric",
					Description: "What to rank by (defaults to points)",
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Points", Value: "points"},
						{Name: "Wins", Value: "wins"},
						{Name: "Losses", Value: "losses"},
						{Name: "Max Streak", Value: "maxstreak"},
					},
				},
			},
		},
		{
			Name:        "daily",
			Description: "Claim your daily reward (every 20 hours)",
		},
		{
			Name:        "balance",
			Description: "Show your coin balance",
		},
		{
			Name:        "shop",
			Description: "Show the item shop",
		},
		{
			Name:        "buy",
			Description: "Buy items from the shop",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "item",
					Description: "The item to buy",
					Required:    true,
					Choices:     itemChoices,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "quantity",
					Description: "How many (1 to 50)",
					Required:    true,
				},
			},
		},
		{
			Name:        "sell",
			Description: "Sell items back to the shop",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "item",
					Description: "The item to sell",
					Required:    true,
					Choices:     itemChoices,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "quantity",
					Description: "How many (1 to 50)",
					Required:    true,
				},
			},
		},
		{
			Name:        "gift",
			Description: "Gift coins to another player",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "player",
					Description: "Who receives the coins",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "How many coins",
					Required:    true,
				},
			},
		},
		{
			Name:        "setchannel",
			Description: "Route a kind of bot output to a channel",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "kind",
					Description: "What output to route",
					Required:    true,
					Choices:     channelKindChoices(),
				},
				{
					Type:        discordgo.ApplicationCommandOptionChannel,
					Name:        "channel",
					Description: "The channel to send it to",
					Required:    true,
					ChannelTypes: []discordgo.ChannelType{
						discordgo.ChannelTypeGuildText,
					},
				},
			},
		},
		{
			Name:        "channels",
			Description: "Show the configured channel routing",
		},
	}
}

func channelKindChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, len(rank.ChannelKinds))
	for i, kind := range rank.ChannelKinds {
		choices[i] = &discordgo.ApplicationCommandOptionChoice{
			Name:  string(kind),
			Value: string(kind),
		}
	}
	return choices
}

// registerCommands registers all slash commands with Discord
func (b *Bot) registerCommands() error {
	slog.Info("Registering slash commands")

	commandDefinitions := b.getCommandDefinitions()
	registeredCommands := make([]*discordgo.ApplicationCommand, 0, len(commandDefinitions))

	for _, cmd := range commandDefinitions {
		registered, err := b.session.ApplicationCommandCreate(
			b.session.State.User.ID,
			"", // Empty string = global command
			cmd,
		)
		if err != nil {
			return fmt.Errorf("failed to register command %s: %w", cmd.Name, err)
		}
		registeredCommands = append(registeredCommands, registered)
		slog.Debug("Registered command", "name", cmd.Name)
	}

	b.commands = registeredCommands
	slog.Info("Slash commands registered", "count", len(registeredCommands))
	return nil
}

// removeCommands removes all registered slash commands
func (b *Bot) removeCommands() {
	for _, cmd := range b.commands {
		err := b.session.ApplicationCommandDelete(b.session.State.User.ID, "", cmd.ID)
		if err != nil {
			slog.Error("Failed to remove command", "name", cmd.Name, "error", err)
		}
	}
}

// handleQueue dispatches the /queue subcommands
func (b *Bot) handleQueue(s *discordgo.Session, i *discordgo.InteractionCreate) {
	sub := i.ApplicationCommandData().Options[0]
	userID := i.Member.User.ID

	switch sub.Name {
	case "open":
		teamSize := int(sub.Options[0].IntValue())
		session, err := b.queues.Open(i.GuildID, i.ChannelID, userID, teamSize)
		if err != nil {
			respondWithMessage(s, i, userMessage(err))
			return
		}
		respondWithMessage(s, i, fmt.Sprintf(
			"Queue open for a **%dv%d**! %d players needed. Join with `/queue join`.",
			session.TeamSize, session.TeamSize, session.Needed()))

	case "join":
		session, m, err := b.queues.Join(i.ChannelID, userID)
		if err != nil {
			respondWithMessage(s, i, userMessage(err))
			return
		}
		if m != nil {
			respondWithEmbed(s, i, matchEmbed(m.Snapshot()))
			return
		}
		respondWithMessage(s, i, fmt.Sprintf(
			"<@%s> joined the queue (%d/%d).", userID, len(session.Players), session.Needed()))

	case "leave":
		session, err := b.queues.Leave(i.ChannelID, userID)
		if err != nil {
			respondWithMessage(s, i, userMessage(err))
			return
		}
		respondWithMessage(s, i, fmt.Sprintf(
			"<@%s> left the queue (%d/%d).", userID, len(session.Players), session.Needed()))

	case "status":
		session, ok := b.queues.Session(i.ChannelID)
		if !ok {
			respondWithMessage(s, i, userMessage(rank.ErrNoActiveQueue))
			return
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "**%dv%d queue** (%d/%d), opened by <@%s>:\n",
			session.TeamSize, session.TeamSize, len(session.Players), session.Needed(), session.Owner)
		for _, id := range session.Players {
			sb.WriteString("• <@" + id + ">\n")
		}
		respondWithMessage(s, i, sb.String())

	case "close":
		if err := b.queues.Close(i.ChannelID, userID); err != nil {
			respondWithMessage(s, i, userMessage(err))
			return
		}
		respondWithMessage(s, i, "Queue closed.")

	case "start":
		m, err := b.queues.ForceStart(i.ChannelID, userID)
		if err != nil {
			respondWithMessage(s, i, userMessage(err))
			return
		}
		respondWithEmbed(s, i, matchEmbed(m.Snapshot()))
	}
}

// handleWinner handles the /winner command
func (b *Bot) handleWinner(s *discordgo.Session, i *discordgo.InteractionCreate) {
	side := rank.Winner(i.ApplicationCommandData().Options[0].StringValue())

	m, ok := b.matches.Match(i.ChannelID)
	if !ok {
		respondWithMessage(s, i, userMessage(rank.ErrNoActiveMatch))
		return
	}
	if err := m.SetWinner(i.Member.User.ID, side); err != nil {
		respondWithMessage(s, i, userMessage(err))
		return
	}
	respondWithMessage(s, i, fmt.Sprintf("Winner set to **team %s**. Both captains `/confirm` to finalize.", side))
}

// handleMVP handles the /mvp command
func (b *Bot) handleMVP(s *discordgo.Session, i *discordgo.InteractionCreate) {
	player := i.ApplicationCommandData().Options[0].UserValue(s)

	m, ok := b.matches.Match(i.ChannelID)
	if !ok {
		respondWithMessage(s, i, userMessage(rank.ErrNoActiveMatch))
		return
	}
	if err := m.SetMVP(i.Member.User.ID, player.ID); err != nil {
		respondWithMessage(s, i, userMessage(err))
		return
	}
	respondWithMessage(s, i, fmt.Sprintf("MVP set to <@%s>.", player.ID))
}

// handleItem handles the /item command
func (b *Bot) handleItem(s *discordgo.Session, i *discordgo.InteractionCreate) {
	kind, err := rank.ParseItemKind(i.ApplicationCommandData().Options[0].StringValue())
	if err != nil {
		respondWithMessage(s, i, userMessage(err))
		return
	}

	m, ok := b.matches.Match(i.ChannelID)
	if !ok {
		respondWithMessage(s, i, userMessage(rank.ErrNoActiveMatch))
		return
	}
	if err := m.UseItem(i.Member.User.ID, kind); err != nil {
		respondWithMessage(s, i, userMessage(err))
		return
	}
	respondWithMessage(s, i, fmt.Sprintf("<@%s> activated **%s** for this match.", i.Member.User.ID, kind))
}

// handleConfirm handles the /confirm command
func (b *Bot) handleConfirm(s *discordgo.Session, i *discordgo.InteractionCreate) {
	m, ok := b.matches.Match(i.ChannelID)
	if !ok {
		respondWithMessage(s, i, userMessage(rank.ErrNoActiveMatch))
		return
	}

	conf, err := m.ConfirmFinalize(i.Member.User.ID)
	if err != nil {
		respondWithMessage(s, i, userMessage(err))
		return
	}
	if conf.Waiting {
		respondWithMessage(s, i, fmt.Sprintf("Confirmed. Waiting on <@%s>.", conf.WaitingOn))
		return
	}

	respondWithEmbed(s, i, resultEmbed(conf))
	b.notify.Post(i.GuildID, rank.ChannelAnnounce, fmt.Sprintf(
		"🏁 Match **%s**: team **%s** wins, MVP <@%s>!", conf.Record.ID, conf.Record.Winner, conf.Record.MVP))
	if b.announcer != nil {
		go b.announcer.Publish(i.GuildID, i.ChannelID)
	}
}

// handleMatch handles the /match command
func (b *Bot) handleMatch(s *discordgo.Session, i *discordgo.InteractionCreate) {
	m, ok := b.matches.Match(i.ChannelID)
	if !ok {
		respondWithMessage(s, i, userMessage(rank.ErrNoActiveMatch))
		return
	}
	respondWithEmbed(s, i, matchEmbed(m.Snapshot()))
}

// handleProfile handles the /profile command
func (b *Bot) handleProfile(s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID := i.Member.User.ID
	if opts := i.ApplicationCommandData().Options; len(opts) > 0 {
		userID = opts[0].UserValue(s).ID
	}

	p, err := b.economy.Profile(userID)
	if err != nil {
		slog.Error("Failed to load profile", "player", userID, "error", err)
		respondWithMessage(s, i, "Failed to load profile. Please try again.")
		return
	}
	respondWithEmbed(s, i, profileEmbed(userID, p))
}

// handleInventory handles the /inventory command
func (b *Bot) handleInventory(s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID := i.Member.User.ID
	p, err := b.economy.Profile(userID)
	if err != nil {
		slog.Error("Failed to load inventory", "player", userID, "error", err)
		respondWithMessage(s, i, "Failed to load inventory. Please try again.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("**Coins:** %d 🪙\n\n**Items:**\n", p.Coins))
	for _, kind := range []rank.ItemKind{rank.ItemDouble, rank.ItemShield} {
		sb.WriteString(fmt.Sprintf("  %s × %d\n", kind, p.Items[kind]))
	}
	respondWithMessage(s, i, sb.String())
}

// handleHistory handles the /history command
func (b *Bot) handleHistory(s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID := i.Member.User.ID
	if opts := i.ApplicationCommandData().Options; len(opts) > 0 {
		userID = opts[0].UserValue(s).ID
	}

	records, err := b.history.RecentForPlayer(userID, 10)
	if err != nil {
		slog.Error("Failed to load history", "player", userID, "error", err)
		respondWithMessage(s, i, "Failed to load match history. Please try again.")
		return
	}
	if len(records) == 0 {
		respondWithMessage(s, i, fmt.Sprintf("<@%s> has no recorded matches yet.", userID))
		return
	}
	respondWithEmbed(s, i, historyEmbed(userID, records))
}

// handleLeaderboard handles the /leaderboard command
func (b *Bot) handleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) {
	metric := leaderboard.ByPoints
	if opts := i.ApplicationCommandData().Options; len(opts) > 0 {
		switch opts[0].StringValue() {
		case "wins":
			metric = leaderboard.ByWins
		case "losses":
			metric = leaderboard.ByLosses
		case "maxstreak":
			metric = leaderboard.ByMaxStreak
		}
	}

	players, err := b.repo.Players()
	if err != nil {
		slog.Error("Failed to load players", "error", err)
		respondWithMessage(s, i, "Failed to load the leaderboard. Please try again.")
		return
	}
	respondWithEmbed(s, i, leaderboardEmbed(leaderboard.Top(players, metric, 10), metric))

	if metric == leaderboard.ByPoints && b.announcer != nil {
		go b.announcer.Publish(i.GuildID, "")
	}
}

// handleDaily handles the /daily command
func (b *Bot) handleDaily(s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID := i.Member.User.ID
	reward, err := b.economy.GrantDaily(userID)
	if err != nil {
		respondWithMessage(s, i, userMessage(err))
		return
	}

	var msg string
	if reward.Item != "" {
		msg = fmt.Sprintf("🎁 Daily reward: 1 × **%s**!", reward.Item)
	} else {
		msg = fmt.Sprintf("🎁 Daily reward: **%d** coins!", reward.Coins)
	}
	respondWithMessage(s, i, msg)
}

// handleBalance handles the /balance command
func (b *Bot) handleBalance(s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID := i.Member.User.ID
	p, err := b.economy.Profile(userID)
	if err != nil {
		slog.Error("Failed to load balance", "player", userID, "error", err)
		respondWithMessage(s, i, "Failed to load balance. Please try again.")
		return
	}
	respondWithMessage(s, i, fmt.Sprintf("<@%s> has **%d** coins 🪙", userID, p.Coins))
}

// handleShop handles the /shop command
func (b *Bot) handleShop(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var sb strings.Builder
	sb.WriteString("**Item Shop**\n\n")
	for _, kind := range []rank.ItemKind{rank.ItemDouble, rank.ItemShield} {
		sb.WriteString(fmt.Sprintf("**%s** — %d 🪙\n", kind, rank.ItemPrices[kind]))
	}
	sb.WriteString("\nBuy with `/buy`, sell back at the same price with `/sell`.")
	respondWithMessage(s, i, sb.String())
}

// handleBuy handles the /buy command
func (b *Bot) handleBuy(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	kind, err := rank.ParseItemKind(options[0].StringValue())
	if err != nil {
		respondWithMessage(s, i, userMessage(err))
		return
	}
	qty := int(options[1].IntValue())

	cost, err := b.economy.Buy(i.Member.User.ID, kind, qty)
	if err != nil {
		respondWithMessage(s, i, userMessage(err))
		return
	}
	respondWithMessage(s, i, fmt.Sprintf("Bought %d × **%s** for %d 🪙.", qty, kind, cost))
}

// handleSell handles the /sell command
func (b *Bot) handleSell(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	kind, err := rank.ParseItemKind(options[0].StringValue())
	if err != nil {
		respondWithMessage(s, i, userMessage(err))
		return
	}
	qty := int(options[1].IntValue())

	payout, err := b.economy.Sell(i.Member.User.ID, kind, qty)
	if err != nil {
		respondWithMessage(s, i, userMessage(err))
		return
	}
	respondWithMessage(s, i, fmt.Sprintf("Sold %d × **%s** for %d 🪙.", qty, kind, payout))
}

// handleGift handles the /gift command
func (b *Bot) handleGift(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	receiver := options[0].UserValue(s)
	amount := int(options[1].IntValue())

	if err := b.economy.Gift(i.Member.User.ID, receiver.ID, amount); err != nil {
		respondWithMessage(s, i, userMessage(err))
		return
	}
	respondWithMessage(s, i, fmt.Sprintf("<@%s> gifted **%d** coins to <@%s>!", i.Member.User.ID, amount, receiver.ID))
}

// handleSetChannel handles the /setchannel command
func (b *Bot) handleSetChannel(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	kind := rank.ChannelKind(options[0].StringValue())
	channel := options[1].ChannelValue(s)

	cfg, err := b.repo.Config()
	if err != nil {
		slog.Error("Failed to load channel config", "error", err)
		respondWithMessage(s, i, "Failed to load the channel config. Please try again.")
		return
	}
	cfg.Channels[kind] = channel.ID
	if err := b.repo.SaveConfig(cfg); err != nil {
		slog.Error("Failed to save channel config", "error", err)
		respondWithMessage(s, i, "Failed to save the channel config. Please try again.")
		return
	}
	respondWithMessage(s, i, fmt.Sprintf("**%s** output will be sent to <#%s>.", kind, channel.ID))
}

// handleChannels handles the /channels command
func (b *Bot) handleChannels(s *discordgo.Session, i *discordgo.InteractionCreate) {
	cfg, err := b.repo.Config()
	if err != nil {
		slog.Error("Failed to load channel config", "error", err)
		respondWithMessage(s, i, "Failed to load the channel config. Please try again.")
		return
	}

	var sb strings.Builder
	sb.WriteString("**Channel Routing:**\n\n")
	for _, kind := range rank.ChannelKinds {
		if id := cfg.Channels[kind]; id != "" {
			sb.WriteString(fmt.Sprintf("**%s** → <#%s>\n", kind, id))
		} else {
			sb.WriteString(fmt.Sprintf("**%s** → _not set_\n", kind))
		}
	}
	respondWithMessage(s, i, sb.String())
}

// userMessage maps a ladder error to the reply shown to the player.
func userMessage(err error) string {
	var cd *rank.CooldownError
	if errors.As(err, &cd) {
		return fmt.Sprintf("⏳ Daily reward already claimed. Try again in %s.", cd.Remaining.Round(time.Minute))
	}

	switch {
	case errors.Is(err, rank.ErrNotInVoice):
		return "You must be in a voice channel to join the queue."
	case errors.Is(err, rank.ErrAlreadyQueued):
		return "You are already in this queue."
	case errors.Is(err, rank.ErrNotQueued):
		return "You are not in this queue."
	case errors.Is(err, rank.ErrQueueFull):
		return "The queue is already full."
	case errors.Is(err, rank.ErrQueueActive):
		return "A queue is already open in this channel."
	case errors.Is(err, rank.ErrNoActiveQueue):
		return "There is no open queue in this channel. Open one with `/queue open`."
	case errors.Is(err, rank.ErrNotOwner):
		return "Only the queue owner can do that."
	case errors.Is(err, rank.ErrUnderfilled):
		return "The queue is not full yet."
	case errors.Is(err, rank.ErrMatchActive):
		return "A match is already running in this channel."
	case errors.Is(err, rank.ErrNoActiveMatch):
		return "There is no active match in this channel."
	case errors.Is(err, rank.ErrNotCaptain):
		return "Only a team captain can do that."
	case errors.Is(err, rank.ErrNotInMatch):
		return "That player is not part of this match."
	case errors.Is(err, rank.ErrWinnerNotSet):
		return "Set the winner first with `/winner`."
	case errors.Is(err, rank.ErrMvpNotSet):
		return "Pick the MVP first with `/mvp`."
	case errors.Is(err, rank.ErrMatchFinalized):
		return "This match is already finalized."
	case errors.Is(err, rank.ErrNoSuchItem):
		return "You do not own that item. Buy one with `/buy`."
	case errors.Is(err, rank.ErrAlreadyUsed):
		return "You already used an item in this match."
	case errors.Is(err, rank.ErrInvalidItem):
		return "Unknown item. Use `/shop` to see what is available."
	case errors.Is(err, rank.ErrInvalidQty):
		return "Quantity must be between 1 and 50."
	case errors.Is(err, rank.ErrNotEnoughCoins):
		return "You do not have enough coins."
	case errors.Is(err, rank.ErrNotEnoughItems):
		return "You do not own that many items."
	case errors.Is(err, rank.ErrSelfGift):
		return "You cannot gift coins to yourself."
	case errors.Is(err, rank.ErrBadGiftAmount):
		return "The gift amount must be positive."
	default:
		slog.Error("Command failed", "error", err)
		return "Something went wrong. Please try again."
	}
}

// Helper functions

func respondWithMessage(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	})
}

func respondWithEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}

package bot

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/bwmarrin/discordgo"

	"github.com/ThurX360/RANKED-BOT/internal/announcer"
	"github.com/ThurX360/RANKED-BOT/internal/config"
	"github.com/ThurX360/RANKED-BOT/internal/economy"
	"github.com/ThurX360/RANKED-BOT/internal/history"
	"github.com/ThurX360/RANKED-BOT/internal/match"
	"github.com/ThurX360/RANKED-BOT/internal/queue"
	"github.com/ThurX360/RANKED-BOT/internal/rank"
	"github.com/ThurX360/RANKED-BOT/internal/scoring"
	"github.com/ThurX360/RANKED-BOT/internal/storage"
)

// Bot represents the Discord bot instance
type Bot struct {
	config    *config.Config
	session   *discordgo.Session
	repo      *storage.Repository
	economy   *economy.Economy
	history   *history.History
	queues    *queue.Manager
	matches   *match.Registry
	notify    *Notifier
	announcer *announcer.Announcer
	commands  []*discordgo.ApplicationCommand
}

// New creates a new Bot instance
func New(cfg *config.Config) (*Bot, error) {
	// Create Discord session
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	// Voice states are needed for the queue presence check
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildVoiceStates

	// Initialize storage
	repo, err := storage.NewRepository(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Interactions run on separate goroutines, so the daily draw and the
	// draft each get their own rand.Rand behind their own lock.
	dailySeed, err := rank.NewSeed()
	if err != nil {
		return nil, fmt.Errorf("failed to seed rng: %w", err)
	}
	draftSeed, err := rank.NewSeed()
	if err != nil {
		return nil, fmt.Errorf("failed to seed rng: %w", err)
	}

	sink := NewNotifier(repo, session)
	eco := economy.New(repo, rand.New(rand.NewSource(dailySeed)))
	ledger := scoring.New(scoring.DefaultConfig())
	matches := match.NewRegistry(repo, ledger, eco, sink, rand.New(rand.NewSource(draftSeed)))
	queues := queue.New(NewVoicePresence(session), matches, sink)

	b := &Bot{
		config:  cfg,
		session: session,
		repo:    repo,
		economy: eco,
		history: history.New(repo),
		queues:  queues,
		matches: matches,
		notify:  sink,
	}

	// Register command handlers
	b.registerHandlers()

	return b, nil
}

// Start opens the Discord connection and starts background tasks
func (b *Bot) Start(ctx context.Context) error {
	// Open Discord connection
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	slog.Info("Connected to Discord", "user", b.session.State.User.Username)

	// Register slash commands
	if err := b.registerCommands(); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	// Start the periodic nickname refresh
	b.announcer = announcer.New(b.repo, b.session, b.config.RefreshIntervalMinutes)
	go b.announcer.Start(ctx)

	return nil
}

// Stop gracefully shuts down the bot
func (b *Bot) Stop() error {
	// Stop the announcer
	if b.announcer != nil {
		b.announcer.Stop()
	}

	// Remove registered commands (optional - comment out to keep commands)
	// b.removeCommands()

	// Close storage
	if b.repo != nil {
		b.repo.Close()
	}

	// Close Discord session
	if b.session != nil {
		return b.session.Close()
	}

	return nil
}

// registerHandlers sets up Discord event handlers
func (b *Bot) registerHandlers() {
	b.session.AddHandler(b.handleInteraction)
	b.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		slog.Info("Bot is ready", "guilds", len(r.Guilds))
	})
}

// handleInteraction processes slash command interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	slog.Debug("Received command", "command", data.Name, "guild", i.GuildID)

	switch data.Name {
	case "queue":
		b.handleQueue(s, i)
	case "winner":
		b.handleWinner(s, i)
	case "mvp":
		b.handleMVP(s, i)
	case "item":
		b.handleItem(s, i)
	case "confirm":
		b.handleConfirm(s, i)
	case "match":
		b.handleMatch(s, i)
	case "profile":
		b.handleProfile(s, i)
	case "inventory":
		b.handleInventory(s, i)
	case "history":
		b.handleHistory(s, i)
	case "leaderboard":
		b.handleLeaderboard(s, i)
	case "daily":
		b.handleDaily(s, i)
	case "balance":
		b.handleBalance(s, i)
	case "shop":
		b.handleShop(s, i)
	case "buy":
		b.handleBuy(s, i)
	case "sell":
		b.handleSell(s, i)
	case "gift":
		b.handleGift(s, i)
	case "setchannel":
		b.handleSetChannel(s, i)
	case "channels":
		b.handleChannels(s, i)
	default:
		slog.Warn("Unknown command", "command", data.Name)
	}
}

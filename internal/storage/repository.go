// Package storage persists the ladder: player records, the append-only
// match ledger and channel routing config, backed by SQLite.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ThurX360/RANKED-BOT/internal/rank"
)

// Repository handles all database operations
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new repository with SQLite
func NewRepository(dbPath string) (*Repository, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	repo := &Repository{db: db}

	// Run migrations
	if err := repo.migrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return repo, nil
}

// Close closes the database connection
func (r *Repository) Close() error {
	return r.db.Close()
}

// migrate creates the database schema
func (r *Repository) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS players (
			id VARCHAR(20) PRIMARY KEY,
			points INTEGER NOT NULL DEFAULT 0,
			wins INTEGER NOT NULL DEFAULT 0,
			losses INTEGER NOT NULL DEFAULT 0,
			mvps INTEGER NOT NULL DEFAULT 0,
			streak INTEGER NOT NULL DEFAULT 0,
			max_streak INTEGER NOT NULL DEFAULT 0,
			coins INTEGER NOT NULL DEFAULT 0,
			medals TEXT NOT NULL DEFAULT '[]',
			items TEXT NOT NULL DEFAULT '{}',
			history TEXT NOT NULL DEFAULT '[]',
			last_daily TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS matches (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id VARCHAR(20) UNIQUE NOT NULL,
			guild_id VARCHAR(20) NOT NULL,
			channel_id VARCHAR(20) NOT NULL,
			played_at TEXT NOT NULL,
			team_blue TEXT NOT NULL,
			team_red TEXT NOT NULL,
			cap_blue VARCHAR(20) NOT NULL,
			cap_red VARCHAR(20) NOT NULL,
			winner VARCHAR(10) NOT NULL,
			mvp VARCHAR(20) NOT NULL,
			used_items TEXT NOT NULL DEFAULT '{}',
			points_delta TEXT NOT NULL DEFAULT '{}',
			team_size INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS channels (
			kind VARCHAR(20) PRIMARY KEY,
			channel_id VARCHAR(20) NOT NULL
		)`,
	}

	for _, migration := range migrations {
		if _, err := r.db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// Player operations

// Player returns the stored record, or (nil, nil) if the id is unknown.
func (r *Repository) Player(id string) (*rank.Player, error) {
	row := r.db.QueryRow(
		`SELECT points, wins, losses, mvps, streak, max_streak, coins, medals, items, history, last_daily
		 FROM players WHERE id = ?`, id)

	var (
		p         rank.Player
		medals    string
		items     string
		history   string
		lastDaily sql.NullString
	)
	err := row.Scan(&p.Points, &p.Wins, &p.Losses, &p.Mvps, &p.Streak, &p.MaxStreak,
		&p.Coins, &medals, &items, &history, &lastDaily)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load player %s: %w", id, err)
	}
	decodePlayerFields(&p, medals, items, history, lastDaily)
	return &p, nil
}

// SavePlayer inserts or updates a player record.
func (r *Repository) SavePlayer(id string, p *rank.Player) error {
	return savePlayer(r.db, id, p)
}

// Players returns every stored record keyed by player id.
func (r *Repository) Players() (map[string]*rank.Player, error) {
	rows, err := r.db.Query(
		`SELECT id, points, wins, losses, mvps, streak, max_streak, coins, medals, items, history, last_daily
		 FROM players`)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	players := make(map[string]*rank.Player)
	for rows.Next() {
		var (
			id        string
			p         rank.Player
			medals    string
			items     string
			history   string
			lastDaily sql.NullString
		)
		err := rows.Scan(&id, &p.Points, &p.Wins, &p.Losses, &p.Mvps, &p.Streak, &p.MaxStreak,
			&p.Coins, &medals, &items, &history, &lastDaily)
		if err != nil {
			return nil, fmt.Errorf("list players: %w", err)
		}
		decodePlayerFields(&p, medals, items, history, lastDaily)
		players[id] = &p
	}
	return players, rows.Err()
}

// Match ledger operations

// AppendMatch assigns the next sequential "M<n>" id and stores the record.
func (r *Repository) AppendMatch(rec *rank.MatchRecord) (string, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return "", fmt.Errorf("append match: %w", err)
	}
	defer tx.Rollback()

	id, err := insertMatch(tx, rec)
	if err != nil {
		return "", err
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("append match: %w", err)
	}
	return id, nil
}

// Match returns the stored record, or (nil, nil) if the id is unknown.
func (r *Repository) Match(id string) (*rank.MatchRecord, error) {
	row := r.db.QueryRow(
		`SELECT id, guild_id, channel_id, played_at, team_blue, team_red, cap_blue, cap_red,
		        winner, mvp, used_items, points_delta, team_size
		 FROM matches WHERE id = ?`, id)
	rec, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load match %s: %w", id, err)
	}
	return rec, nil
}

// CommitMatch appends the record, pushes its id onto each player's
// history and saves all players in a single transaction, so a crash
// mid-finalize can never leave a partially scored match.
func (r *Repository) CommitMatch(players map[string]*rank.Player, rec *rank.MatchRecord) (string, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return "", fmt.Errorf("commit match: %w", err)
	}
	defer tx.Rollback()

	id, err := insertMatch(tx, rec)
	if err != nil {
		return "", err
	}
	for pid, p := range players {
		p.History = append(p.History, id)
		if err := savePlayer(tx, pid, p); err != nil {
			return "", err
		}
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit match: %w", err)
	}
	return id, nil
}

// Channel config operations

// Config returns the channel routing config, empty if never set.
func (r *Repository) Config() (*rank.ChannelConfig, error) {
	rows, err := r.db.Query(`SELECT kind, channel_id FROM channels`)
	if err != nil {
		return nil, fmt.Errorf("load channel config: %w", err)
	}
	defer rows.Close()

	cfg := rank.NewChannelConfig()
	for rows.Next() {
		var kind, channelID string
		if err := rows.Scan(&kind, &channelID); err != nil {
			return nil, fmt.Errorf("load channel config: %w", err)
		}
		cfg.Channels[rank.ChannelKind(kind)] = channelID
	}
	return cfg, rows.Err()
}

// SaveConfig replaces the channel routing config.
func (r *Repository) SaveConfig(cfg *rank.ChannelConfig) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("save channel config: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM channels`); err != nil {
		return fmt.Errorf("save channel config: %w", err)
	}
	for kind, channelID := range cfg.Channels {
		if channelID == "" {
			continue
		}
		if _, err := tx.Exec(`INSERT INTO channels (kind, channel_id) VALUES (?, ?)`, string(kind), channelID); err != nil {
			return fmt.Errorf("save channel config: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save channel config: %w", err)
	}
	return nil
}

// Helpers

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func savePlayer(db execer, id string, p *rank.Player) error {
	medals, _ := json.Marshal(p.Medals)
	items, _ := json.Marshal(p.Items)
	history, _ := json.Marshal(p.History)
	var lastDaily any
	if p.LastDaily != nil {
		lastDaily = p.LastDaily.UTC().Format(time.RFC3339Nano)
	}
	_, err := db.Exec(
		`INSERT INTO players (id, points, wins, losses, mvps, streak, max_streak, coins, medals, items, history, last_daily)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			points = excluded.points,
			wins = excluded.wins,
			losses = excluded.losses,
			mvps = excluded.mvps,
			streak = excluded.streak,
			max_streak = excluded.max_streak,
			coins = excluded.coins,
			medals = excluded.medals,
			items = excluded.items,
			history = excluded.history,
			last_daily = excluded.last_daily`,
		id, p.Points, p.Wins, p.Losses, p.Mvps, p.Streak, p.MaxStreak, p.Coins,
		string(medals), string(items), string(history), lastDaily,
	)
	if err != nil {
		return fmt.Errorf("save player %s: %w", id, err)
	}
	return nil
}

func insertMatch(tx *sql.Tx, rec *rank.MatchRecord) (string, error) {
	// Ledger ids are "M<n>" with n = ledger size + 1. Rows are never
	// deleted, so MAX(seq)+1 never reuses an id.
	var next int64
	if err := tx.QueryRow(`SELECT COALESCE(MAX(seq), 0) + 1 FROM matches`).Scan(&next); err != nil {
		return "", fmt.Errorf("next match id: %w", err)
	}
	id := fmt.Sprintf("M%d", next)
	rec.ID = id

	teamBlue, _ := json.Marshal(rec.TeamBlue)
	teamRed, _ := json.Marshal(rec.TeamRed)
	usedItems, _ := json.Marshal(rec.UsedItems)
	pointsDelta, _ := json.Marshal(rec.PointsDelta)
	_, err := tx.Exec(
		`INSERT INTO matches (seq, id, guild_id, channel_id, played_at, team_blue, team_red,
			cap_blue, cap_red, winner, mvp, used_items, points_delta, team_size)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		next, id, rec.GuildID, rec.ChannelID, rec.PlayedAt.UTC().Format(time.RFC3339Nano),
		string(teamBlue), string(teamRed), rec.CaptainBlue, rec.CaptainRed,
		string(rec.Winner), rec.MVP, string(usedItems), string(pointsDelta), rec.TeamSize,
	)
	if err != nil {
		return "", fmt.Errorf("insert match %s: %w", id, err)
	}
	return id, nil
}

// decodePlayerFields unpacks the JSON columns. Corrupt values degrade
// to empty defaults rather than failing the load.
func decodePlayerFields(p *rank.Player, medals, items, history string, lastDaily sql.NullString) {
	if json.Unmarshal([]byte(medals), &p.Medals) != nil || p.Medals == nil {
		p.Medals = []string{}
	}
	if json.Unmarshal([]byte(items), &p.Items) != nil || p.Items == nil {
		p.Items = map[rank.ItemKind]int{}
	}
	if json.Unmarshal([]byte(history), &p.History) != nil || p.History == nil {
		p.History = []string{}
	}
	if lastDaily.Valid {
		if t, err := time.Parse(time.RFC3339Nano, lastDaily.String); err == nil {
			p.LastDaily = &t
		}
	}
}

func scanMatch(row *sql.Row) (*rank.MatchRecord, error) {
	var (
		rec         rank.MatchRecord
		playedAt    string
		teamBlue    string
		teamRed     string
		winner      string
		usedItems   string
		pointsDelta string
	)
	err := row.Scan(&rec.ID, &rec.GuildID, &rec.ChannelID, &playedAt, &teamBlue, &teamRed,
		&rec.CaptainBlue, &rec.CaptainRed, &winner, &rec.MVP, &usedItems, &pointsDelta, &rec.TeamSize)
	if err != nil {
		return nil, err
	}
	rec.Winner = rank.Winner(winner)
	if t, err := time.Parse(time.RFC3339Nano, playedAt); err == nil {
		rec.PlayedAt = t
	}
	if json.Unmarshal([]byte(teamBlue), &rec.TeamBlue) != nil {
		rec.TeamBlue = nil
	}
	if json.Unmarshal([]byte(teamRed), &rec.TeamRed) != nil {
		rec.TeamRed = nil
	}
	if json.Unmarshal([]byte(usedItems), &rec.UsedItems) != nil || rec.UsedItems == nil {
		rec.UsedItems = map[string]rank.ItemFlags{}
	}
	if json.Unmarshal([]byte(pointsDelta), &rec.PointsDelta) != nil || rec.PointsDelta == nil {
		rec.PointsDelta = map[string]int{}
	}
	return &rec, nil
}

package bot

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/ThurX360/RANKED-BOT/internal/config"
)

func newTestBot(t *testing.T) *Bot {
	t.Helper()
	cfg := &config.Config{
		DiscordToken:           "test-token",
		DatabasePath:           filepath.Join(t.TempDir(), "ladder.db"),
		RefreshIntervalMinutes: 30,
		LogLevel:               "error",
	}
	b, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { b.repo.Close() })
	return b
}

// Discord dispatches each interaction on its own goroutine, so a daily
// claim and a queue-fill draft can draw randomness at the same time.
// The wired components must not share one rand.Rand.
func TestDailyAndDraftDrawRandomnessConcurrently(t *testing.T) {
	b := newTestBot(t)

	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		n := i
		wg.Add(2)
		go func() {
			defer wg.Done()
			if _, err := b.economy.GrantDaily(fmt.Sprintf("p%d", n)); err != nil {
				t.Errorf("GrantDaily: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			players := []string{
				fmt.Sprintf("a%d", n), fmt.Sprintf("b%d", n),
				fmt.Sprintf("c%d", n), fmt.Sprintf("d%d", n),
			}
			if _, err := b.matches.Start("g1", fmt.Sprintf("ch%d", n), players, 2); err != nil {
				t.Errorf("Start: %v", err)
			}
		}()
	}
	wg.Wait()
}

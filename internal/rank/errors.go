package rank

import (
	"errors"
	"fmt"
	"time"
)

// Every failure the ladder can produce is typed and recoverable; the
// presentation layer maps these to user-facing replies.
var (
	ErrNotInVoice     = errors.New("player must be in a voice channel to queue")
	ErrAlreadyQueued  = errors.New("player is already in the queue")
	ErrNotQueued      = errors.New("player is not in the queue")
	ErrQueueFull      = errors.New("queue is already full")
	ErrQueueActive    = errors.New("a queue is already active in this channel")
	ErrNoActiveQueue  = errors.New("no active queue in this channel")
	ErrNotOwner       = errors.New("only the queue owner can perform this action")
	ErrUnderfilled    = errors.New("queue does not have enough players to start")
	ErrMatchActive    = errors.New("a match is already active in this channel")
	ErrNoActiveMatch  = errors.New("no active match in this channel")
	ErrNotCaptain     = errors.New("only a team captain can perform this action")
	ErrNotInMatch     = errors.New("player is not part of this match")
	ErrWinnerNotSet   = errors.New("winner has not been set")
	ErrMvpNotSet      = errors.New("mvp has not been set")
	ErrMatchFinalized = errors.New("match is already finalized")
	ErrNoSuchItem     = errors.New("player does not own that item")
	ErrAlreadyUsed    = errors.New("item already used in this match")
	ErrOnCooldown     = errors.New("daily reward is on cooldown")
	ErrInvalidItem    = errors.New("no such item kind")
	ErrInvalidQty     = errors.New("quantity must be between 1 and 50")
	ErrNotEnoughCoins = errors.New("not enough coins")
	ErrNotEnoughItems = errors.New("not enough items to sell")
	ErrSelfGift       = errors.New("cannot gift coins to yourself")
	ErrBadGiftAmount  = errors.New("gift amount must be positive")
)

// CooldownError reports how long until the daily reward is available
// again. It matches ErrOnCooldown under errors.Is.
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("daily reward on cooldown for %s", e.Remaining.Round(time.Minute))
}

func (e *CooldownError) Unwrap() error { return ErrOnCooldown }

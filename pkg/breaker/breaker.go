package breaker

import (
	"context"
	"errors"
	"sync"
	"time"
)

type State uint8

const (
	Closed State = iota + 1
	Open
	HalfOpen
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case HalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

var ErrOpen = errors.New("circuit breaker is open")

type Config struct {
	// Window is the number of most recent calls the failure ratio is computed over.
	Window int `envconfig:"BREAKER_WINDOW" default:"10"`
	// Ratio of failed calls in the window that opens the breaker.
	Ratio float64 `envconfig:"BREAKER_RATIO" default:"0.5"`
	// Cooldown spent open before a probe call is let through.
	Cooldown time.Duration `envconfig:"BREAKER_COOLDOWN" default:"30s"`
	// Recovery is the number of consecutive half-open successes that close the breaker.
	Recovery int `envconfig:"BREAKER_RECOVERY" default:"3"`
}

type Breaker struct {
	mu  sync.Mutex
	cfg Config
	now func() time.Time

	state    State
	openedAt time.Time
	// ring of call outcomes, true for a failure
	outcomes  []bool
	pos       int
	successes int
}

func New(cfg Config) *Breaker {
	if cfg.Window <= 0 {
		cfg.Window = 1
	}
	return &Breaker{
		cfg:      cfg,
		now:      time.Now,
		state:    Closed,
		outcomes: make([]bool, cfg.Window),
	}
}

func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Breaker) Call(ctx context.Context, fn func(ctx context.Context) error) error {
	b.mu.Lock()
	if b.state == Open {
		if b.now().Sub(b.openedAt) < b.cfg.Cooldown {
			b.mu.Unlock()
			return ErrOpen
		}
		b.state = HalfOpen
		b.successes = 0
	}
	b.mu.Unlock()

	err := fn(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.outcomes[b.pos] = err != nil
	b.pos = (b.pos + 1) % len(b.outcomes)

	if b.state == HalfOpen {
		if err != nil {
			b.trip()
			return err
		}
		b.successes++
		if b.successes >= b.cfg.Recovery {
			b.reset()
		}
		return nil
	}

	fails := 0
	for _, failed := range b.outcomes {
		if failed {
			fails++
		}
	}
	if float64(fails)/float64(len(b.outcomes)) >= b.cfg.Ratio {
		b.trip()
	}
	return err
}

func (b *Breaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reset()
}

func (b *Breaker) trip() {
	b.state = Open
	b.successes = 0
	b.openedAt = b.now()
}

func (b *Breaker) reset() {
	for i := range b.outcomes {
		b.outcomes[i] = false
	}
	b.pos = 0
	b.successes = 0
	b.state = Closed
}

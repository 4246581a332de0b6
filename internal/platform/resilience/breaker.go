package resilience

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return "closed"
	}
}

// BreakerConfig configures a Breaker. Zero values fall back to 5 failures,
// a 15s open window and 2 half-open trial calls. OnStateChange is called outside
// the lock after every transition.
type BreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenTrials   int
	OnStateChange    func(from, to State)
}

// Breaker guards calls to an optional dependency such as the event stream.
// A nil Breaker admits every call.
type Breaker struct {
	cfg BreakerConfig
	now func() time.Time

	mu       sync.Mutex
	state    State
	failures int
	openedAt time.Time
	inFlight int
	passed   int
}

// NewBreaker returns nil when the config is disabled.
func NewBreaker(cfg BreakerConfig) *Breaker {
	if !cfg.Enabled {
		return nil
	}
	if cfg.FailureThreshold < 1 {
		cfg.FailureThreshold = 5
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 15 * time.Second
	}
	if cfg.HalfOpenTrials < 1 {
		cfg.HalfOpenTrials = 2
	}
	return &Breaker{cfg: cfg, now: time.Now}
}

// Do runs fn when the breaker admits it and records the outcome. A call
// abandoned because the caller's context ended is not counted as a failure.
func (b *Breaker) Do(ctx context.Context, fn func(context.Context) error) error {
	if b == nil {
		return fn(ctx)
	}
	if err := b.admit(); err != nil {
		return err
	}

	err := fn(ctx)
	switch {
	case err == nil:
		b.record(true)
	case ctx.Err() != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)):
		b.abandon()
	default:
		b.record(false)
	}
	return err
}

// State reports the current state. An open breaker whose window elapsed
// reports half-open.
func (b *Breaker) State() State {
	if b == nil {
		return StateClosed
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == StateOpen && b.now().Sub(b.openedAt) >= b.cfg.OpenTimeout {
		return StateHalfOpen
	}
	return b.state
}

func (b *Breaker) admit() error {
	b.mu.Lock()
	from := b.state
	if b.state == StateOpen {
		if b.now().Sub(b.openedAt) < b.cfg.OpenTimeout {
			b.mu.Unlock()
			return ErrCircuitOpen
		}
		b.moveLocked(StateHalfOpen)
	}
	if b.state == StateHalfOpen {
		if b.inFlight >= b.cfg.HalfOpenTrials {
			b.mu.Unlock()
			b.notify(from, StateHalfOpen)
			return ErrCircuitOpen
		}
		b.inFlight++
	}
	to := b.state
	b.mu.Unlock()
	b.notify(from, to)
	return nil
}

func (b *Breaker) record(ok bool) {
	b.mu.Lock()
	from := b.state
	switch b.state {
	case StateClosed:
		if ok {
			b.failures = 0
		} else if b.failures++; b.failures >= b.cfg.FailureThreshold {
			b.moveLocked(StateOpen)
		}
	case StateHalfOpen:
		b.inFlight = max(b.inFlight-1, 0)
		if !ok {
			b.moveLocked(StateOpen)
			break
		}
		b.passed++
		if b.passed >= b.cfg.HalfOpenTrials && b.inFlight == 0 {
			b.moveLocked(StateClosed)
		}
	case StateOpen:
		if !ok {
			b.openedAt = b.now()
		}
	}
	to := b.state
	b.mu.Unlock()
	b.notify(from, to)
}

func (b *Breaker) abandon() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == StateHalfOpen {
		b.inFlight = max(b.inFlight-1, 0)
	}
}

func (b *Breaker) moveLocked(to State) {
	b.state = to
	b.failures = 0
	b.inFlight = 0
	b.passed = 0
	if to == StateOpen {
		b.openedAt = b.now()
	}
}

func (b *Breaker) notify(from, to State) {
	if from != to && b.cfg.OnStateChange != nil {
		b.cfg.OnStateChange(from, to)
	}
}

package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"

	"github.com/riskibarqy/football-sim/internal/platform/logging"
	"github.com/riskibarqy/football-sim/internal/usecase"
)

const DefaultTickInterval = time.Second

var ErrClockRunning = errors.New("match clock is already running")

// Ticker advances the active match by one minute.
type Ticker interface {
	Tick(ctx context.Context) (usecase.TickResult, error)
}

// MatchClock drives a running match with a gocron duration job, one tick per
// interval. Singleton mode keeps ticks from overlapping.
type MatchClock struct {
	scheduler gocron.Scheduler
	ticker    Ticker
	interval  time.Duration
	logger    *logging.Logger

	mu     sync.Mutex
	jobID  uuid.UUID
	active bool
	done   chan usecase.MatchReport
}

func NewMatchClock(ticker Ticker, interval time.Duration, logger *logging.Logger) (*MatchClock, error) {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	if logger == nil {
		logger = logging.Default()
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	return &MatchClock{
		scheduler: s,
		ticker:    ticker,
		interval:  interval,
		logger:    logger.Named("match_clock"),
	}, nil
}

func (c *MatchClock) Start() {
	c.scheduler.Start()
}

func (c *MatchClock) Shutdown() error {
	return c.scheduler.Shutdown()
}

// Autoplay schedules ticks until the match ends. The returned channel gets
// the report of a finished match and is closed once the clock stops.
func (c *MatchClock) Autoplay(ctx context.Context) (<-chan usecase.MatchReport, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active {
		return nil, ErrClockRunning
	}

	done := make(chan usecase.MatchReport, 1)
	job, err := c.scheduler.NewJob(
		gocron.DurationJob(c.interval),
		gocron.NewTask(c.tick),
		gocron.WithName("match-clock"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return nil, fmt.Errorf("schedule match clock: %w", err)
	}

	c.jobID = job.ID()
	c.active = true
	c.done = done
	c.logger.InfoContext(ctx, "match clock started", "interval", c.interval)
	return done, nil
}

func (c *MatchClock) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Stop halts the clock without touching the match.
func (c *MatchClock) Stop() {
	c.finish(nil)
}

func (c *MatchClock) tick() {
	ctx := context.Background()
	res, err := c.ticker.Tick(ctx)
	if err != nil {
		if !errors.Is(err, usecase.ErrMatchNotActive) && !errors.Is(err, usecase.ErrNoActiveCareer) {
			c.logger.ErrorContext(ctx, "match clock tick failed", "error", err)
		}
		c.finish(nil)
		return
	}
	if res.Report != nil {
		c.finish(res.Report)
	}
}

func (c *MatchClock) finish(report *usecase.MatchReport) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.active {
		return
	}
	if err := c.scheduler.RemoveJob(c.jobID); err != nil && !errors.Is(err, gocron.ErrJobNotFound) {
		c.logger.Warn("remove match clock job failed", "error", err)
	}
	if report != nil {
		c.done <- *report
	}
	close(c.done)
	c.active = false
	c.done = nil
	c.logger.Info("match clock stopped", "finished", report != nil)
}

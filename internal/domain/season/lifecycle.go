package season

import (
	"sync"

	"github.com/riskibarqy/football-sim/internal/domain/leaguestanding"
)

// Lifecycle tracks the fixture counter of the running season and settles it
// once any team reaches the fixture cap.
type Lifecycle struct {
	mu       sync.Mutex
	cfg      Config
	table    *leaguestanding.Table
	season   int
	fixtures int
}

func NewLifecycle(cfg Config, table *leaguestanding.Table) *Lifecycle {
	if cfg.FixtureCap < 1 || len(cfg.Tiers) == 0 {
		cfg = DefaultConfig()
	}
	return &Lifecycle{cfg: cfg, table: table, season: 1}
}

func (l *Lifecycle) Config() Config {
	return l.cfg
}

// RecordFixture counts one user fixture.
func (l *Lifecycle) RecordFixture() {
	l.mu.Lock()
	l.fixtures++
	l.mu.Unlock()
}

func (l *Lifecycle) Fixtures() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fixtures
}

func (l *Lifecycle) Season() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.season
}

// Complete reports whether any team has played the fixture cap.
func (l *Lifecycle) Complete() bool {
	return l.table.MaxPlayed() >= l.cfg.FixtureCap
}

// Settle ranks the user's team, resets the table and the fixture counter and
// opens the next season. Career stats are not touched.
func (l *Lifecycle) Settle(userTeam string) Settlement {
	l.mu.Lock()
	defer l.mu.Unlock()

	standings := l.table.Standings()
	rank := len(standings) + 1
	for _, s := range standings {
		if s.TeamKey == userTeam {
			rank = s.Position
			break
		}
	}
	tier := l.cfg.TierFor(rank)

	out := Settlement{
		Season:    l.season,
		TeamKey:   userTeam,
		Rank:      rank,
		Tier:      tier,
		Reward:    tier.Reward,
		Standings: standings,
	}

	l.table.Reset()
	l.fixtures = 0
	l.season++
	return out
}

// Restore sets the counters from a saved career.
func (l *Lifecycle) Restore(seasonNumber, fixtures int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.season = max(1, seasonNumber)
	l.fixtures = max(0, fixtures)
}

// Reset returns to season one with an empty table.
func (l *Lifecycle) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.table.Reset()
	l.fixtures = 0
	l.season = 1
}

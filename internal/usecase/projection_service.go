package usecase

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/football-sim/internal/domain/fixture"
	"github.com/riskibarqy/football-sim/internal/domain/leaguestanding"
	"github.com/riskibarqy/football-sim/internal/domain/outcome"
	"github.com/riskibarqy/football-sim/internal/domain/player"
	"github.com/riskibarqy/football-sim/internal/domain/season"
	"github.com/riskibarqy/football-sim/internal/platform/logging"
	"github.com/riskibarqy/football-sim/internal/platform/random"
)

const (
	DefaultProjectionRuns = 200
	MaxProjectionRuns     = 5000
	defaultProjectionPool = 4
)

type ProjectionInput struct {
	Runs int
	Seed uint64
}

// TeamProjection aggregates one club over every simulated season.
type TeamProjection struct {
	TeamKey            string  `json:"team_key"`
	AveragePoints      float64 `json:"average_points"`
	AveragePosition    float64 `json:"average_position"`
	TitleProbability   float64 `json:"title_probability"`
	TopFourProbability float64 `json:"top_four_probability"`
}

type Projection struct {
	Runs       int              `json:"runs"`
	Seed       uint64           `json:"seed"`
	FixtureCap int              `json:"fixture_cap"`
	Teams      []TeamProjection `json:"teams"`
}

// runPool is the worker pool the runs are submitted to. *ants.Pool satisfies it.
type runPool interface {
	Submit(task func()) error
	Release()
}

// ProjectionService estimates final tables by simulating whole seasons with
// every club on autopilot. Runs share nothing but the read-only rosters.
type ProjectionService struct {
	rosters player.RosterProvider
	cfg     season.Config
	workers int
	logger  *logging.Logger
	now     func() time.Time
	newPool func(size int) (runPool, error)
}

func NewProjectionService(rosters player.RosterProvider, cfg season.Config, workers int, logger *logging.Logger) *ProjectionService {
	if cfg.Validate() != nil {
		cfg = season.DefaultConfig()
	}
	if workers < 1 {
		workers = defaultProjectionPool
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ProjectionService{
		rosters: rosters,
		cfg:     cfg,
		workers: workers,
		logger:  logger.Named("projection"),
		now:     time.Now,
		newPool: func(size int) (runPool, error) { return ants.NewPool(size) },
	}
}

type projectionTally struct {
	points    int
	positions int
	titles    int
	topFour   int
}

func (s *ProjectionService) Project(ctx context.Context, input ProjectionInput) (Projection, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProjectionService.Project")
	defer span.End()

	if input.Runs == 0 {
		input.Runs = DefaultProjectionRuns
	}
	if input.Runs < 0 || input.Runs > MaxProjectionRuns {
		return Projection{}, fmt.Errorf("%w: runs must be between 1 and %d", ErrInvalidInput, MaxProjectionRuns)
	}
	if input.Seed == 0 {
		input.Seed = uint64(s.now().UnixNano())
	}

	keys := s.rosters.TeamKeys(ctx)
	if len(keys) < 2 {
		return Projection{}, fmt.Errorf("%w: at least two teams are required", ErrInvalidInput)
	}
	teams := make([]fixture.Team, 0, len(keys))
	for _, key := range keys {
		teams = append(teams, fixture.Team{Key: key, Roster: s.rosters.RosterOf(ctx, key)})
	}

	pool, err := s.newPool(min(s.workers, input.Runs))
	if err != nil {
		return Projection{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	start := s.now()
	tallies := make(map[string]*projectionTally, len(keys))
	for _, key := range keys {
		tallies[key] = &projectionTally{}
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		mu      sync.Mutex
		workers sync.WaitGroup
	)
	for run := 0; run < input.Runs; run++ {
		workers.Add(1)
		seed := input.Seed + uint64(run)
		if err := pool.Submit(func() {
			defer workers.Done()
			if runCtx.Err() != nil {
				return
			}

			standings := s.simulateSeason(teams, random.NewSeeded(seed))

			mu.Lock()
			defer mu.Unlock()
			for _, row := range standings {
				t := tallies[row.TeamKey]
				t.points += row.Points
				t.positions += row.Position
				if row.Position == 1 {
					t.titles++
				}
				if row.Position <= 4 {
					t.topFour++
				}
			}
		}); err != nil {
			workers.Done()
			// Runs already accepted still write to the tallies.
			cancel()
			workers.Wait()
			return Projection{}, fmt.Errorf("submit projection run: %w", err)
		}
	}
	workers.Wait()

	if err := ctx.Err(); err != nil {
		return Projection{}, err
	}

	out := Projection{
		Runs:       input.Runs,
		Seed:       input.Seed,
		FixtureCap: s.cfg.FixtureCap,
		Teams:      make([]TeamProjection, 0, len(keys)),
	}
	runs := float64(input.Runs)
	for _, key := range keys {
		t := tallies[key]
		out.Teams = append(out.Teams, TeamProjection{
			TeamKey:            key,
			AveragePoints:      float64(t.points) / runs,
			AveragePosition:    float64(t.positions) / runs,
			TitleProbability:   float64(t.titles) / runs,
			TopFourProbability: float64(t.topFour) / runs,
		})
	}
	slices.SortStableFunc(out.Teams, func(a, b TeamProjection) int {
		return cmp.Compare(a.AveragePosition, b.AveragePosition)
	})

	s.logger.InfoContext(ctx, "season projection finished",
		"runs", input.Runs,
		"workers", s.workers,
		"duration", s.now().Sub(start),
	)
	return out, nil
}

// simulateSeason plays rounds until the fixture cap is reached and returns
// the final table.
func (s *ProjectionService) simulateSeason(teams []fixture.Team, src random.Source) []leaguestanding.Standing {
	keys := make([]string, len(teams))
	byKey := make(map[string]fixture.Team, len(teams))
	for i, t := range teams {
		keys[i] = t.Key
		byKey[t.Key] = t
	}

	table := leaguestanding.NewTable(keys...)
	lifecycle := season.NewLifecycle(s.cfg, table)

	maxRounds := 2*s.cfg.FixtureCap + len(keys)
	for round := 0; round < maxRounds && !lifecycle.Complete(); round++ {
		for _, pair := range RoundPairings(keys, round) {
			fixture.Simulate(src, byKey[pair.Team1], byKey[pair.Team2]).ApplyTable(table)
		}
	}
	return table.Standings()
}

// RoundPairings schedules one round with the circle method: the first team is
// fixed and the others rotate. With an odd count one team rests each round.
func RoundPairings(keys []string, round int) []outcome.Pairing {
	ring := slices.Clone(keys)
	if len(ring)%2 == 1 {
		ring = append(ring, "")
	}
	n := len(ring)
	if n < 2 {
		return nil
	}

	rest := ring[1:]
	shift := round % len(rest)
	rotated := append(slices.Clone(rest[len(rest)-shift:]), rest[:len(rest)-shift]...)
	order := append([]string{ring[0]}, rotated...)

	out := make([]outcome.Pairing, 0, n/2)
	for i := 0; i < n/2; i++ {
		home, away := order[i], order[n-1-i]
		if home == "" || away == "" {
			continue
		}
		if round%2 == 1 {
			home, away = away, home
		}
		out = append(out, outcome.Pairing{Team1: home, Team2: away})
	}
	return out
}

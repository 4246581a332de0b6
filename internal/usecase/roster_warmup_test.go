package usecase

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/football-sim/internal/domain/player"
	playermock "github.com/riskibarqy/football-sim/internal/mocks/domain/player"
	"github.com/riskibarqy/football-sim/internal/platform/cache"
	"github.com/riskibarqy/football-sim/internal/platform/random"
	"github.com/stretchr/testify/mock"
)

type countingRosters struct {
	stubRosters
	calls atomic.Int64
}

func (c *countingRosters) RosterOf(ctx context.Context, teamKey string) []player.Player {
	c.calls.Add(1)
	return c.stubRosters.RosterOf(ctx, teamKey)
}

func TestCareerService_WarmRosters(t *testing.T) {
	t.Parallel()

	rosters := &countingRosters{stubRosters: defaultStubRosters()}
	store := cache.NewStore[[]player.Player](time.Minute)
	svc := NewCareerService(rosters, nil, nil, nil, nil, store, CareerServiceConfig{Random: random.NewSeeded(1)}, nil)

	if got := svc.WarmRosters(t.Context()); got != 4 {
		t.Fatalf("expected 4 rosters warmed, got %d", got)
	}
	if store.Len() != 4 {
		t.Fatalf("expected 4 cache entries, got %d", store.Len())
	}

	before := rosters.calls.Load()
	if _, err := svc.NewCareer(t.Context(), NewCareerInput{TeamKey: "napoli"}); err != nil {
		t.Fatalf("new career: %v", err)
	}
	if rosters.calls.Load() != before {
		t.Fatalf("expected warmed rosters to be served from cache, provider called %d more times", rosters.calls.Load()-before)
	}
}

func TestCareerService_WarmRostersWithoutCache(t *testing.T) {
	t.Parallel()

	svc := NewCareerService(defaultStubRosters(), nil, nil, nil, nil, nil, CareerServiceConfig{}, nil)
	if got := svc.WarmRosters(t.Context()); got != 0 {
		t.Fatalf("expected no warm-up without a cache, got %d", got)
	}
}

func TestCareerService_TeamsServedFromWarmCache(t *testing.T) {
	t.Parallel()

	stub := defaultStubRosters()
	rosters := playermock.NewRosterProvider(t)
	rosters.On("TeamKeys", mock.Anything).Return([]string{"genoa", "inter"})
	rosters.On("RosterOf", mock.Anything, "genoa").Return(stub.rosters["genoa"]).Once()
	rosters.On("RosterOf", mock.Anything, "inter").Return(stub.rosters["inter"]).Once()

	store := cache.NewStore[[]player.Player](time.Minute)
	svc := NewCareerService(rosters, nil, nil, nil, nil, store, CareerServiceConfig{}, nil)

	if got := svc.WarmRosters(t.Context()); got != 2 {
		t.Fatalf("expected 2 rosters warmed, got %d", got)
	}
	teams, err := svc.Teams(t.Context())
	if err != nil {
		t.Fatalf("teams: %v", err)
	}
	if len(teams) != 2 || teams[0].Key != "inter" || teams[0].RosterSize != len(stub.rosters["inter"]) {
		t.Fatalf("unexpected teams: %+v", teams)
	}
}

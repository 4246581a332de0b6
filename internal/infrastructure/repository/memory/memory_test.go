package memory

import (
	"testing"

	"github.com/riskibarqy/football-sim/internal/domain/career"
	"github.com/riskibarqy/football-sim/internal/domain/leaguestanding"
	"github.com/riskibarqy/football-sim/internal/domain/lineup"
	"github.com/riskibarqy/football-sim/internal/domain/tactic"
)

func TestSeedPlayers_EveryClubFieldsAFullEleven(t *testing.T) {
	t.Parallel()

	provider := NewRosterProvider(SeedPlayers())
	keys := provider.TeamKeys(t.Context())
	if len(keys) != 19 {
		t.Fatalf("expected 19 clubs, got %d", len(keys))
	}

	catalog := tactic.DefaultCatalog()
	for _, key := range keys {
		roster := provider.RosterOf(t.Context(), key)
		if err := lineup.Canonical(key, roster).ValidateComplete(); err != nil {
			t.Fatalf("club %s cannot field eleven: %v", key, err)
		}

		names := make(map[string]struct{}, len(roster))
		for _, p := range roster {
			if err := p.Validate(); err != nil {
				t.Fatalf("invalid seeded player %+v: %v", p, err)
			}
			if _, dup := names[p.Name]; dup {
				t.Fatalf("duplicate name %s in %s", p.Name, key)
			}
			names[p.Name] = struct{}{}
		}

		if catalog.DefaultFor(key) == "" {
			t.Fatalf("club %s has no tactic", key)
		}
	}

	if got := provider.RosterOf(t.Context(), "unknown"); len(got) != 0 {
		t.Fatalf("unknown club must yield an empty roster, got %d players", len(got))
	}
}

func TestSeedPlayers_Deterministic(t *testing.T) {
	t.Parallel()

	first, second := SeedPlayers(), SeedPlayers()
	if len(first) != len(second) {
		t.Fatalf("seed sizes differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("seed differs at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestCareerRepository_RoundTripIsIsolated(t *testing.T) {
	t.Parallel()

	repo := NewCareerRepository()
	snap := career.Snapshot{
		ID:        "career-1",
		UserTeam:  "napoli",
		Morale:    61,
		Standings: []leaguestanding.Row{{TeamKey: "napoli", Played: 1, Won: 1, Points: 3}},
	}
	if err := repo.Upsert(t.Context(), snap); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	snap.Standings[0].Points = 99

	got, ok, err := repo.Get(t.Context(), "career-1")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.Standings[0].Points != 3 || got.Morale != 61 {
		t.Fatalf("stored snapshot was mutated: %+v", got)
	}

	if err := repo.Delete(t.Context(), "career-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := repo.Get(t.Context(), "career-1"); ok {
		t.Fatalf("expected snapshot to be deleted")
	}
}

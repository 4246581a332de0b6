package tactic

import (
	"slices"
	"testing"
)

func TestEffect(t *testing.T) {
	t.Parallel()

	c := DefaultCatalog()
	tests := []struct {
		user     string
		opponent string
		want     int
	}{
		{user: Gegenpress, opponent: TwoLine, want: 15},
		{user: Gegenpress, opponent: LongBall, want: -10},
		{user: Gegenpress, opponent: TikiTaka, want: 0},
		{user: "Gegenpress", opponent: TwoLine, want: 0},
		{user: "unknown", opponent: Possession, want: 0},
	}

	for _, tc := range tests {
		if got := c.Effect(tc.user, tc.opponent); got != tc.want {
			t.Fatalf("effect(%s, %s): expected %d, got %d", tc.user, tc.opponent, tc.want, got)
		}
	}
}

func TestEffectivenessSetsAreDisjoint(t *testing.T) {
	t.Parallel()

	for _, p := range DefaultCatalog().Profiles() {
		for _, key := range p.EffectiveAgainst {
			if slices.Contains(p.IneffectiveAgainst, key) {
				t.Fatalf("%s lists %s as both effective and ineffective", p.Key, key)
			}
		}
	}
}

func TestModifiersUnknownIsZero(t *testing.T) {
	t.Parallel()

	c := DefaultCatalog()
	if got := c.Modifiers("wingPlay"); got != (Modifiers{}) {
		t.Fatalf("expected zero modifiers, got %+v", got)
	}
	if got := c.Modifiers(TikiTaka); got.PassAccuracy != 10 || got.GoalChance != 0.005 {
		t.Fatalf("unexpected tikitaka modifiers: %+v", got)
	}
}

func TestMatchup(t *testing.T) {
	t.Parallel()

	c := DefaultCatalog()
	m := c.Matchup(Possession, TikiTaka)
	if m.Result != ResultFavorable || m.Advantage != 5 {
		t.Fatalf("expected favorable matchup, got %+v", m)
	}
	if m.Description != "Possession vs Tiki-Taka: favorable" {
		t.Fatalf("unexpected description %q", m.Description)
	}

	if m := c.Matchup(ParkBus, Gegenpress); m.Result != ResultUnfavorable || m.Advantage != -3 {
		t.Fatalf("expected unfavorable matchup, got %+v", m)
	}
	if m := c.Matchup("bogus", Gegenpress); m.Result != ResultNeutral {
		t.Fatalf("expected neutral matchup for unknown tactic, got %+v", m)
	}
}

func TestRecommendedAndDefaults(t *testing.T) {
	t.Parallel()

	c := DefaultCatalog()
	got := c.Recommended(Possession)
	want := []string{Gegenpress, LaVolpiana, TikiTaka}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if got := c.DefaultFor("napoli"); got != ParkBus {
		t.Fatalf("expected parkBus for napoli, got %s", got)
	}
	if got := c.DefaultFor("unknownFC"); got != Possession {
		t.Fatalf("expected possession fallback, got %s", got)
	}

	p, known := c.Resolve("nope")
	if known || p.Key != DefaultKey {
		t.Fatalf("expected neutral fallback profile, got %+v known=%v", p, known)
	}
}

package records

import (
	"sync"
	"testing"

	"github.com/riskibarqy/football-sim/internal/domain/player"
)

func fw(name, team string) player.Player {
	return player.Player{Name: name, TeamKey: team, Position: player.PositionForward, Rating: 80}
}

func TestTopScorersTieBreaksOnAssists(t *testing.T) {
	t.Parallel()

	l := NewLedger()
	a, b := fw("alpha", "x"), fw("bravo", "y")
	feeder := fw("feeder", "x")
	for range 3 {
		l.RecordGoal(a, nil)
		l.RecordGoal(b, nil)
	}
	l.RecordGoal(feeder, &a)
	l.RecordGoal(feeder, &b)
	l.RecordGoal(feeder, &b)

	top := l.TopScorers(5)
	if len(top) != 3 {
		t.Fatalf("expected 3 scorers, got %d", len(top))
	}
	if top[0].Name != "bravo" || top[1].Name != "alpha" || top[2].Name != "feeder" {
		t.Fatalf("expected bravo, alpha, feeder; got %s, %s, %s", top[0].Name, top[1].Name, top[2].Name)
	}
}

func TestTopScorersFiltersAndLimits(t *testing.T) {
	t.Parallel()

	l := NewLedger()
	for i := range 8 {
		p := fw(string(rune('a'+i)), "t")
		l.RecordAppearance(p)
		for range i {
			l.RecordGoal(p, nil)
		}
	}

	top := l.TopScorers(5)
	if len(top) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(top))
	}
	for i, s := range top {
		if s.Goals <= 0 {
			t.Fatalf("entry %d has no goals", i)
		}
		if i > 0 && top[i-1].Goals < s.Goals {
			t.Fatalf("entries not sorted by goals: %+v", top)
		}
	}
	if got := l.TopScorers(0); len(got) != DefaultRankingLimit {
		t.Fatalf("expected default limit, got %d", len(got))
	}
	if got := l.TopAssisters(5); len(got) != 0 {
		t.Fatalf("expected no assisters, got %d", len(got))
	}
}

func TestTopAssisters(t *testing.T) {
	t.Parallel()

	l := NewLedger()
	scorer := fw("scorer", "t")
	one, two := fw("one", "t"), fw("two", "t")
	l.RecordGoal(scorer, &one)
	l.RecordGoal(scorer, &two)
	l.RecordGoal(two, &one)

	top := l.TopAssisters(5)
	if len(top) != 3 {
		t.Fatalf("expected 3 assisters, got %d", len(top))
	}
	if top[0].Name != "one" || top[1].Name != "scorer" || top[2].Name != "two" {
		t.Fatalf("unexpected order: %+v", top)
	}
}

func TestRecordAppearanceIsAdditive(t *testing.T) {
	t.Parallel()

	l := NewLedger()
	p := fw("nine", "club")
	l.RecordGoal(p, nil)
	l.RecordGoal(p, nil)
	other := fw("ten", "club")
	l.RecordGoal(other, &p)

	l.RecordAppearance(p)
	l.RecordAppearance(p)

	s, ok := l.Stat(p)
	if !ok {
		t.Fatalf("expected registered player")
	}
	if s.MatchesPlayed != 2 || s.Goals != 2 || s.Assists != 1 {
		t.Fatalf("unexpected stat after appearances: %+v", s)
	}
}

func TestSamePlayerNameOnDifferentTeams(t *testing.T) {
	t.Parallel()

	l := NewLedger()
	l.RecordGoal(fw("silva", "a"), nil)
	l.RecordGoal(fw("silva", "b"), nil)

	if got := len(l.Export().CareerStats); got != 2 {
		t.Fatalf("expected two distinct records, got %d", got)
	}
}

func TestExportImportReset(t *testing.T) {
	t.Parallel()

	l := NewLedger()
	p := fw("nine", "club")
	l.RecordGoal(p, nil)
	l.RecordLineup([]player.Player{p, fw("ten", "club")})
	l.AppendMatch(MatchSummary{ID: "m1", HomeTeam: "club", AwayTeam: "rival", HomeScore: 1})

	snap := l.Export()
	restored := NewLedger()
	restored.Import(snap)

	s, ok := restored.Stat(p)
	if !ok || s.Goals != 1 || s.MatchesPlayed != 1 {
		t.Fatalf("unexpected restored stat: %+v", s)
	}
	if log := restored.MatchLog(); len(log) != 1 || log[0].ID != "m1" {
		t.Fatalf("unexpected restored log: %+v", log)
	}

	// Mutating the restored ledger must not leak into the snapshot.
	restored.RecordGoal(p, nil)
	if snap.CareerStats[0].Goals != 1 {
		t.Fatalf("expected snapshot to be detached from ledger")
	}

	restored.Reset()
	if _, ok := restored.Stat(p); ok {
		t.Fatalf("expected reset to clear stats")
	}
	if len(restored.MatchLog()) != 0 {
		t.Fatalf("expected reset to clear the match log")
	}
}

func TestConcurrentRecording(t *testing.T) {
	t.Parallel()

	l := NewLedger()
	p := fw("nine", "club")

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.RecordGoal(p, nil)
			l.RecordAppearance(p)
		}()
	}
	wg.Wait()

	s, _ := l.Stat(p)
	if s.Goals != 50 || s.MatchesPlayed != 50 {
		t.Fatalf("expected 50 goals and appearances, got %+v", s)
	}
}

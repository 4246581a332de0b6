package lineup

import (
	"errors"
	"fmt"
	"testing"

	"github.com/riskibarqy/football-sim/internal/domain/player"
)

func testRoster() []player.Player {
	roster := []player.Player{
		{Name: "gk1", Position: player.PositionGoalkeeper, Rating: 80},
		{Name: "gk2", Position: player.PositionGoalkeeper, Rating: 84},
	}
	for i := range 5 {
		roster = append(roster, player.Player{Name: fmt.Sprintf("df%d", i), Position: player.PositionDefender, Rating: float64(70 + i)})
	}
	for i := range 4 {
		roster = append(roster, player.Player{Name: fmt.Sprintf("mf%d", i), Position: player.PositionMidfielder, Rating: float64(75 + i)})
	}
	for i := range 4 {
		roster = append(roster, player.Player{Name: fmt.Sprintf("fw%d", i), Position: player.PositionForward, Rating: float64(80 + i)})
	}
	for i := range roster {
		roster[i].TeamKey = "home"
	}
	return roster
}

func TestCanonical(t *testing.T) {
	t.Parallel()

	l := Canonical("home", testRoster())
	if l.Count() != StartingSize {
		t.Fatalf("expected full lineup, got %d players", l.Count())
	}
	if l.Goalkeeper.Name != "gk2" {
		t.Fatalf("expected best goalkeeper gk2, got %s", l.Goalkeeper.Name)
	}
	if l.Defenders[0].Name != "df4" || l.Defenders[3].Name != "df1" {
		t.Fatalf("expected top four defenders by rating, got %s..%s", l.Defenders[0].Name, l.Defenders[3].Name)
	}
	if l.Forwards[0].Name != "fw3" {
		t.Fatalf("expected fw3 leading the line, got %s", l.Forwards[0].Name)
	}
}

func TestValidateCompleteReportsShortfall(t *testing.T) {
	t.Parallel()

	l := Canonical("home", testRoster())
	l.Forwards[1] = nil
	l.Defenders[2] = nil

	err := l.ValidateComplete()
	if !errors.Is(err, ErrIncomplete) {
		t.Fatalf("expected ErrIncomplete, got %v", err)
	}
	var incomplete *IncompleteError
	if !errors.As(err, &incomplete) {
		t.Fatalf("expected *IncompleteError, got %T", err)
	}
	if incomplete.Shortfall != 2 || incomplete.Fielded != 9 {
		t.Fatalf("expected 9 fielded and shortfall 2, got %+v", incomplete)
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	roster := testRoster()
	tests := []struct {
		name      string
		sel       Selection
		targetErr error
		count     int
	}{
		{
			name:  "partial selection",
			sel:   Selection{Goalkeeper: "gk1", Defenders: []string{"df0", "df1"}, Forwards: []string{"fw0"}},
			count: 4,
		},
		{
			name:      "duplicate",
			sel:       Selection{Defenders: []string{"df0", "df0"}},
			targetErr: ErrDuplicatePlayer,
		},
		{
			name:      "wrong slot",
			sel:       Selection{Goalkeeper: "df0"},
			targetErr: ErrPositionMismatch,
		},
		{
			name:      "unknown",
			sel:       Selection{Forwards: []string{"nobody"}},
			targetErr: ErrUnknownPlayer,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, err := Build("home", roster, tc.sel)
			if tc.targetErr != nil {
				if !errors.Is(err, tc.targetErr) {
					t.Fatalf("expected %v, got %v", tc.targetErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if l.Count() != tc.count {
				t.Fatalf("expected %d players, got %d", tc.count, l.Count())
			}
			if got := l.Names(); got.Goalkeeper != tc.sel.Goalkeeper {
				t.Fatalf("expected goalkeeper %q, got %q", tc.sel.Goalkeeper, got.Goalkeeper)
			}
		})
	}
}

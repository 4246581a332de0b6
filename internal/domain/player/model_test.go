package player

import "testing"

func TestByRatingDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	roster := []Player{
		{Name: "a", Rating: 70},
		{Name: "b", Rating: 90},
		{Name: "c", Rating: 80},
		{Name: "d", Rating: 90},
	}

	sorted := ByRating(roster)
	if roster[0].Name != "a" || roster[1].Name != "b" {
		t.Fatalf("expected input order untouched, got %+v", roster)
	}

	want := []string{"b", "d", "c", "a"}
	for i, name := range want {
		if sorted[i].Name != name {
			t.Fatalf("expected %s at %d, got %s", name, i, sorted[i].Name)
		}
	}
}

func TestTopByPosition(t *testing.T) {
	t.Parallel()

	roster := []Player{
		{Name: "fw1", Position: PositionForward, Rating: 70},
		{Name: "df1", Position: PositionDefender, Rating: 88},
		{Name: "fw2", Position: PositionForward, Rating: 85},
		{Name: "fw3", Position: PositionForward, Rating: 75},
		{Name: "fw4", Position: PositionForward, Rating: 60},
	}

	top := TopByPosition(roster, PositionForward, 3)
	if len(top) != 3 {
		t.Fatalf("expected 3 forwards, got %d", len(top))
	}
	if top[0].Name != "fw2" || top[1].Name != "fw3" || top[2].Name != "fw1" {
		t.Fatalf("unexpected order: %+v", top)
	}
	if got := TopByPosition(roster, PositionGoalkeeper, 1); len(got) != 0 {
		t.Fatalf("expected no goalkeepers, got %+v", got)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		player  Player
		wantErr bool
	}{
		{name: "valid", player: Player{Name: "x", TeamKey: "t", Position: PositionMidfielder, Rating: 80}},
		{name: "missing name", player: Player{TeamKey: "t", Position: PositionMidfielder}, wantErr: true},
		{name: "bad position", player: Player{Name: "x", TeamKey: "t", Position: "ST"}, wantErr: true},
		{name: "negative rating", player: Player{Name: "x", TeamKey: "t", Position: PositionForward, Rating: -1}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.player.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

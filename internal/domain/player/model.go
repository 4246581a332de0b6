package player

import (
	"cmp"
	"fmt"
	"slices"
)

// Position represents the four positional groups a squad is built from.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DF"
	PositionMidfielder Position = "MF"
	PositionForward    Position = "FW"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

// Player is a rostered footballer. Name is unique within a team.
type Player struct {
	Name     string
	TeamKey  string
	Position Position
	Rating   float64
}

func (p Player) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.TeamKey == "" {
		return fmt.Errorf("player team key is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}
	if p.Rating < 0 {
		return fmt.Errorf("player rating must not be negative")
	}

	return nil
}

// Key identifies a player across teams.
func (p Player) Key() string {
	return p.TeamKey + "/" + p.Name
}

// ByRating returns a copy of players sorted by rating descending. Ties keep
// roster order. The input slice is never reordered.
func ByRating(players []Player) []Player {
	out := slices.Clone(players)
	slices.SortStableFunc(out, func(a, b Player) int {
		return cmp.Compare(b.Rating, a.Rating)
	})
	return out
}

// TopByPosition returns up to n players of the given position, best rated first.
func TopByPosition(players []Player, position Position, n int) []Player {
	if n <= 0 {
		return nil
	}
	out := make([]Player, 0, n)
	for _, p := range ByRating(players) {
		if p.Position != position {
			continue
		}
		out = append(out, p)
		if len(out) == n {
			break
		}
	}
	return out
}

// Find looks a player up by name.
func Find(players []Player, name string) (Player, bool) {
	for _, p := range players {
		if p.Name == name {
			return p, true
		}
	}
	return Player{}, false
}

package lineup

import (
	"fmt"

	"github.com/riskibarqy/football-sim/internal/domain/player"
)

// Selection names the players picked for each slot. Empty names leave the
// slot unfilled.
type Selection struct {
	Goalkeeper  string   `json:"goalkeeper"`
	Defenders   []string `json:"defenders"`
	Midfielders []string `json:"midfielders"`
	Forwards    []string `json:"forwards"`
}

// Build resolves a selection against a roster. Players must exist in the
// roster, appear once and play the position of their slot. Unfilled slots are
// allowed; completeness is only enforced at kickoff.
func Build(teamKey string, roster []player.Player, sel Selection) (Lineup, error) {
	if len(sel.Defenders) > DefenderSlots || len(sel.Midfielders) > MidfielderSlots || len(sel.Forwards) > ForwardSlots {
		return Lineup{}, fmt.Errorf("too many players for a 4-3-3: defenders=%d midfielders=%d forwards=%d",
			len(sel.Defenders), len(sel.Midfielders), len(sel.Forwards))
	}

	seen := make(map[string]struct{}, StartingSize)
	resolve := func(name string, position player.Position) (*player.Player, error) {
		if name == "" {
			return nil, nil
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePlayer, name)
		}
		seen[name] = struct{}{}

		p, ok := player.Find(roster, name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPlayer, name)
		}
		if p.Position != position {
			return nil, fmt.Errorf("%w: %s is %s, slot is %s", ErrPositionMismatch, name, p.Position, position)
		}
		return &p, nil
	}

	out := Lineup{TeamKey: teamKey}
	gk, err := resolve(sel.Goalkeeper, player.PositionGoalkeeper)
	if err != nil {
		return Lineup{}, err
	}
	out.Goalkeeper = gk

	groups := []struct {
		names    []string
		slots    []*player.Player
		position player.Position
	}{
		{names: sel.Defenders, slots: out.Defenders[:], position: player.PositionDefender},
		{names: sel.Midfielders, slots: out.Midfielders[:], position: player.PositionMidfielder},
		{names: sel.Forwards, slots: out.Forwards[:], position: player.PositionForward},
	}
	for _, g := range groups {
		for i, name := range g.names {
			p, err := resolve(name, g.position)
			if err != nil {
				return Lineup{}, err
			}
			g.slots[i] = p
		}
	}

	return out, nil
}

// Names is the inverse of Build.
func (l Lineup) Names() Selection {
	names := func(slots []*player.Player) []string {
		out := make([]string, len(slots))
		for i, p := range slots {
			if p != nil {
				out[i] = p.Name
			}
		}
		return out
	}

	sel := Selection{
		Defenders:   names(l.Defenders[:]),
		Midfielders: names(l.Midfielders[:]),
		Forwards:    names(l.Forwards[:]),
	}
	if l.Goalkeeper != nil {
		sel.Goalkeeper = l.Goalkeeper.Name
	}
	return sel
}

package lineup

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/football-sim/internal/domain/player"
)

const (
	DefenderSlots   = 4
	MidfielderSlots = 3
	ForwardSlots    = 3
	StartingSize    = 1 + DefenderSlots + MidfielderSlots + ForwardSlots
)

var (
	ErrIncomplete       = errors.New("squad incomplete")
	ErrDuplicatePlayer  = errors.New("duplicate player in lineup")
	ErrPositionMismatch = errors.New("player position does not match slot")
	ErrUnknownPlayer    = errors.New("player not in roster")
)

// IncompleteError reports how many starters are missing at kickoff.
type IncompleteError struct {
	Fielded   int
	Shortfall int
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("%s: %d fielded, %d missing", ErrIncomplete, e.Fielded, e.Shortfall)
}

func (e *IncompleteError) Unwrap() error {
	return ErrIncomplete
}

// Lineup is a 4-3-3 starting eleven. Nil slots are unfilled.
type Lineup struct {
	TeamKey     string
	Goalkeeper  *player.Player
	Defenders   [DefenderSlots]*player.Player
	Midfielders [MidfielderSlots]*player.Player
	Forwards    [ForwardSlots]*player.Player
}

// Players returns the fielded players, goalkeeper first then defenders,
// midfielders and forwards.
func (l Lineup) Players() []player.Player {
	out := make([]player.Player, 0, StartingSize)
	if l.Goalkeeper != nil {
		out = append(out, *l.Goalkeeper)
	}
	out = appendFilled(out, l.Defenders[:])
	out = appendFilled(out, l.Midfielders[:])
	out = appendFilled(out, l.Forwards[:])
	return out
}

// ByPosition returns fielded players of one position group in slot order.
func (l Lineup) ByPosition(position player.Position) []player.Player {
	switch position {
	case player.PositionGoalkeeper:
		if l.Goalkeeper == nil {
			return nil
		}
		return []player.Player{*l.Goalkeeper}
	case player.PositionDefender:
		return appendFilled(nil, l.Defenders[:])
	case player.PositionMidfielder:
		return appendFilled(nil, l.Midfielders[:])
	case player.PositionForward:
		return appendFilled(nil, l.Forwards[:])
	default:
		return nil
	}
}

func (l Lineup) Count() int {
	return len(l.Players())
}

func (l Lineup) Shortfall() int {
	return StartingSize - l.Count()
}

// ValidateComplete returns an *IncompleteError when fewer than eleven players
// are fielded.
func (l Lineup) ValidateComplete() error {
	count := l.Count()
	if count == StartingSize {
		return nil
	}
	return &IncompleteError{Fielded: count, Shortfall: StartingSize - count}
}

// Canonical derives the default 4-3-3 from a roster: best goalkeeper, top four
// defenders, top three midfielders and top three forwards by rating. Missing
// players leave slots empty.
func Canonical(teamKey string, roster []player.Player) Lineup {
	l := Lineup{TeamKey: teamKey}
	if gk := player.TopByPosition(roster, player.PositionGoalkeeper, 1); len(gk) == 1 {
		l.Goalkeeper = &gk[0]
	}
	fill(l.Defenders[:], player.TopByPosition(roster, player.PositionDefender, DefenderSlots))
	fill(l.Midfielders[:], player.TopByPosition(roster, player.PositionMidfielder, MidfielderSlots))
	fill(l.Forwards[:], player.TopByPosition(roster, player.PositionForward, ForwardSlots))
	return l
}

func appendFilled(out []player.Player, slots []*player.Player) []player.Player {
	for _, p := range slots {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out
}

func fill(slots []*player.Player, players []player.Player) {
	for i := range players {
		if i >= len(slots) {
			return
		}
		p := players[i]
		slots[i] = &p
	}
}

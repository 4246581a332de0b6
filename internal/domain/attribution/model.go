package attribution

import (
	"github.com/riskibarqy/football-sim/internal/domain/lineup"
	"github.com/riskibarqy/football-sim/internal/domain/player"
	"github.com/riskibarqy/football-sim/internal/platform/random"
)

const (
	AssistProbability = 0.85
	UnknownPlayerName = "Unknown Player"

	rosterForwards    = 3
	rosterMidfielders = 3
	rosterDefenders   = 4
)

// Weights is the draw weight of each position group. Positions without a
// weight are never drawn.
type Weights map[player.Position]int

var (
	ScorerWeights = Weights{
		player.PositionForward:    75,
		player.PositionMidfielder: 21,
		player.PositionDefender:   4,
	}
	AssistWeights = Weights{
		player.PositionForward:    50,
		player.PositionMidfielder: 45,
		player.PositionDefender:   5,
	}
)

// Pool is the set of outfield candidates for a goal, forwards first.
type Pool struct {
	candidates []player.Player
}

// FromRoster builds a pool from the top three forwards, top three midfielders
// and top four defenders of a roster.
func FromRoster(roster []player.Player) Pool {
	out := make([]player.Player, 0, rosterForwards+rosterMidfielders+rosterDefenders)
	out = append(out, player.TopByPosition(roster, player.PositionForward, rosterForwards)...)
	out = append(out, player.TopByPosition(roster, player.PositionMidfielder, rosterMidfielders)...)
	out = append(out, player.TopByPosition(roster, player.PositionDefender, rosterDefenders)...)
	return Pool{candidates: out}
}

// FromLineup builds a pool from the fielded outfield slots of a lineup.
func FromLineup(l lineup.Lineup) Pool {
	out := make([]player.Player, 0, lineup.StartingSize-1)
	out = append(out, l.ByPosition(player.PositionForward)...)
	out = append(out, l.ByPosition(player.PositionMidfielder)...)
	out = append(out, l.ByPosition(player.PositionDefender)...)
	return Pool{candidates: out}
}

func (p Pool) Len() int {
	return len(p.candidates)
}

func (p Pool) Candidates() []player.Player {
	out := make([]player.Player, len(p.candidates))
	copy(out, p.candidates)
	return out
}

// Draw picks one candidate with probability proportional to its position
// weight, skipping the excluded name. It reports false when nobody is eligible.
func (p Pool) Draw(src random.Source, w Weights, exclude string) (player.Player, bool) {
	total := p.totalWeight(w, exclude)
	if total == 0 {
		return player.Player{}, false
	}

	pick := src.IntN(total)
	cumulative := 0
	for _, c := range p.candidates {
		weight := p.weightOf(c, w, exclude)
		if weight == 0 {
			continue
		}
		cumulative += weight
		if pick < cumulative {
			return c, true
		}
	}
	return player.Player{}, false
}

// Mass is the probability that Draw returns a player of the given position.
func (p Pool) Mass(w Weights, position player.Position, exclude string) float64 {
	total := p.totalWeight(w, exclude)
	if total == 0 {
		return 0
	}
	var tier int
	for _, c := range p.candidates {
		if c.Position == position {
			tier += p.weightOf(c, w, exclude)
		}
	}
	return float64(tier) / float64(total)
}

func (p Pool) totalWeight(w Weights, exclude string) int {
	total := 0
	for _, c := range p.candidates {
		total += p.weightOf(c, w, exclude)
	}
	return total
}

func (Pool) weightOf(c player.Player, w Weights, exclude string) int {
	if exclude != "" && c.Name == exclude {
		return 0
	}
	return w[c.Position]
}

// Attribution is the scorer and optional assister of one goal. An unknown
// scorer carries the sentinel name and no rating.
type Attribution struct {
	Scorer      player.Player
	ScorerKnown bool
	Assister    *player.Player
}

// Attribute draws a scorer and, with probability 0.85, an assister other than
// the scorer.
func Attribute(src random.Source, pool Pool) Attribution {
	scorer, ok := pool.Draw(src, ScorerWeights, "")
	if !ok {
		return Attribution{Scorer: player.Player{Name: UnknownPlayerName}}
	}

	out := Attribution{Scorer: scorer, ScorerKnown: true}
	if src.Float64() >= AssistProbability {
		return out
	}
	if assister, ok := pool.Draw(src, AssistWeights, scorer.Name); ok {
		out.Assister = &assister
	}
	return out
}

package strength

import (
	"math"

	"github.com/riskibarqy/football-sim/internal/domain/lineup"
	"github.com/riskibarqy/football-sim/internal/domain/player"
)

const (
	// DefaultRating stands in for unknown teams and empty rosters.
	DefaultRating = 70.0
	// TopN is the number of best-rated players a team rating averages.
	TopN = 11
)

// TeamRating averages the top eleven ratings of a roster. Smaller rosters
// average what they have.
func TeamRating(roster []player.Player) float64 {
	if len(roster) == 0 {
		return DefaultRating
	}

	top := player.ByRating(roster)
	if len(top) > TopN {
		top = top[:TopN]
	}
	return mean(top)
}

// LineupRating averages the filled slots of a starting eleven.
func LineupRating(l lineup.Lineup) float64 {
	players := l.Players()
	if len(players) == 0 {
		return DefaultRating
	}
	return mean(players)
}

// Comparison is the strength gap between the user's side and the opponent.
type Comparison struct {
	UserRating     float64
	OpponentRating float64
	Difference     float64
	Gap            float64
	UserAdvantage  bool
}

func Compare(user, opponent float64) Comparison {
	diff := user - opponent
	return Comparison{
		UserRating:     user,
		OpponentRating: opponent,
		Difference:     diff,
		Gap:            math.Abs(diff),
		UserAdvantage:  diff > 0,
	}
}

func mean(players []player.Player) float64 {
	var total float64
	for _, p := range players {
		total += p.Rating
	}
	return total / float64(len(players))
}

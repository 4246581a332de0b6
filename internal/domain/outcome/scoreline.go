package outcome

import (
	"slices"

	"github.com/riskibarqy/football-sim/internal/platform/random"
)

// WinScore draws a winning scoreline: 40% 1-0, 30% 2-0 or 2-1, 20% 2..3 vs
// 0..1, 10% 2..4 vs 0..2. The loser always trails by at least one.
func WinScore(src random.Source) (winner, loser int) {
	roll := src.Float64()
	switch {
	case roll < 0.4:
		winner, loser = 1, 0
	case roll < 0.7:
		winner = 2
		if src.Float64() >= 0.5 {
			loser = 1
		}
	case roll < 0.9:
		winner, loser = src.IntN(2)+2, src.IntN(2)
	default:
		winner, loser = src.IntN(3)+2, src.IntN(3)
	}
	return winner, capLoser(winner, loser)
}

// UpsetWinScore is the narrow 1..2 vs 0..1 scoreline of an upset.
func UpsetWinScore(src random.Source) (winner, loser int) {
	winner, loser = src.IntN(2)+1, src.IntN(2)
	return winner, capLoser(winner, loser)
}

// DrawScore draws the goals each side scores in a draw: 40% 0, 30% 1, 20% 2,
// 10% 3 or 4.
func DrawScore(src random.Source) int {
	roll := src.Float64()
	switch {
	case roll < 0.4:
		return 0
	case roll < 0.7:
		return 1
	case roll < 0.9:
		return 2
	default:
		return src.IntN(2) + 3
	}
}

func capLoser(winner, loser int) int {
	if loser >= winner {
		return winner - 1
	}
	return loser
}

// Side identifies which team of a fixture scored.
type Side int

const (
	SideTeam1 Side = iota
	SideTeam2
)

// GoalMinutes draws a minute in 5..90 for each goal, sorted ascending.
func GoalMinutes(src random.Source, goals int) []int {
	out := make([]int, goals)
	for i := range out {
		out[i] = src.IntN(86) + 5
	}
	slices.Sort(out)
	return out
}

// AssignScorers orders the goals of a known scoreline, choosing at random
// between the sides that still have goals left.
func AssignScorers(src random.Source, team1Goals, team2Goals int) []Side {
	out := make([]Side, 0, team1Goals+team2Goals)
	for team1Goals > 0 || team2Goals > 0 {
		switch {
		case team1Goals > 0 && team2Goals > 0:
			if src.Float64() < 0.5 {
				out = append(out, SideTeam1)
				team1Goals--
			} else {
				out = append(out, SideTeam2)
				team2Goals--
			}
		case team1Goals > 0:
			out = append(out, SideTeam1)
			team1Goals--
		default:
			out = append(out, SideTeam2)
			team2Goals--
		}
	}
	return out
}

package outcome

import (
	"math"

	"github.com/riskibarqy/football-sim/internal/platform/random"
)

const (
	BaseTeam1Win = 0.33
	BaseTeam2Win = 0.33
	BaseDraw     = 0.34

	UpsetProbability = 0.08
	ShareFloor       = 0.05

	maxAdvantage      = 0.3
	team1FavouredDiv  = 150.0
	team2FavouredDiv  = 100.0
	upsetBonusMin     = 0.15
	upsetBonusSpread  = 0.15
	levelJitterSpread = 0.2
)

type Kind string

const (
	Team1Win Kind = "team1_win"
	Team2Win Kind = "team2_win"
	Draw     Kind = "draw"
)

// Probabilities are normalized win/draw shares for one fixture.
type Probabilities struct {
	Team1Win float64
	Team2Win float64
	Draw     float64
}

// Result is one resolved fixture.
type Result struct {
	Probabilities Probabilities
	RatingDiff    float64
	Upset         bool
	Kind          Kind
	Team1Goals    int
	Team2Goals    int
}

// UpsetWin reports whether the nominal underdog won while an upset was active.
func (r Result) UpsetWin() bool {
	if !r.Upset {
		return false
	}
	return (r.RatingDiff > 0 && r.Kind == Team2Win) || (r.RatingDiff < 0 && r.Kind == Team1Win)
}

// Shares derives outcome shares from the rating difference (team1 minus
// team2). upsetBonus is only applied when upset is set and the teams differ in
// strength; levelJitter only when they are level.
func Shares(diff float64, upset bool, upsetBonus, levelJitter float64) Probabilities {
	p := Probabilities{Team1Win: BaseTeam1Win, Team2Win: BaseTeam2Win, Draw: BaseDraw}

	switch {
	case diff > 0:
		adv := math.Min(maxAdvantage, diff/team1FavouredDiv)
		p.Team1Win += adv
		p.Team2Win -= adv * 0.7
		p.Draw -= adv * 0.3
		if upset {
			p.Team2Win += upsetBonus
			p.Team1Win -= upsetBonus * 0.6
			p.Draw -= upsetBonus * 0.4
		}
	case diff < 0:
		adv := math.Min(maxAdvantage, math.Abs(diff)/team2FavouredDiv)
		p.Team2Win += adv
		p.Team1Win -= adv * 0.7
		p.Draw -= adv * 0.3
		if upset {
			p.Team1Win += upsetBonus
			p.Team2Win -= upsetBonus * 0.6
			p.Draw -= upsetBonus * 0.4
		}
	default:
		p.Team1Win += levelJitter
		p.Team2Win -= levelJitter
	}

	return p.normalize()
}

func (p Probabilities) normalize() Probabilities {
	p.Team1Win = math.Max(ShareFloor, p.Team1Win)
	p.Team2Win = math.Max(ShareFloor, p.Team2Win)
	p.Draw = math.Max(ShareFloor, p.Draw)

	total := p.Team1Win + p.Team2Win + p.Draw
	p.Team1Win /= total
	p.Team2Win /= total
	p.Draw /= total
	return p
}

// Pick maps a uniform roll in [0,1) onto an outcome.
func (p Probabilities) Pick(roll float64) Kind {
	switch {
	case roll < p.Team1Win:
		return Team1Win
	case roll < p.Team1Win+p.Team2Win:
		return Team2Win
	default:
		return Draw
	}
}

// Resolve simulates one fixture between two strengths.
func Resolve(src random.Source, rating1, rating2 float64) Result {
	diff := rating1 - rating2
	upset := src.Float64() < UpsetProbability

	var bonus, jitter float64
	switch {
	case diff != 0 && upset:
		bonus = upsetBonusMin + src.Float64()*upsetBonusSpread
	case diff == 0:
		jitter = (src.Float64() - 0.5) * levelJitterSpread
	}

	res := Result{
		Probabilities: Shares(diff, upset, bonus, jitter),
		RatingDiff:    diff,
		Upset:         upset,
	}
	res.Kind = res.Probabilities.Pick(src.Float64())

	switch res.Kind {
	case Draw:
		g := DrawScore(src)
		res.Team1Goals, res.Team2Goals = g, g
	default:
		var winner, loser int
		if res.UpsetWin() {
			winner, loser = UpsetWinScore(src)
		} else {
			winner, loser = WinScore(src)
		}
		if res.Kind == Team1Win {
			res.Team1Goals, res.Team2Goals = winner, loser
		} else {
			res.Team1Goals, res.Team2Goals = loser, winner
		}
	}

	return res
}

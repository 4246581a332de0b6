package match

import "github.com/riskibarqy/football-sim/internal/domain/player"

type Kind string

const (
	KindKickoff  Kind = "kickoff"
	KindGoal     Kind = "goal"
	KindFoul     Kind = "foul"
	KindPass     Kind = "pass"
	KindThrowIn  Kind = "throw_in"
	KindGoalKick Kind = "goal_kick"
	KindCorner   Kind = "corner"
	KindUpset    Kind = "upset"
	KindFinal    Kind = "final"
)

// Side is the half of the fixture an event belongs to. The user's team is
// always the home side.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

// Tag annotates a goal with match context.
type Tag string

const (
	TagFirstGoal      Tag = "first_goal"
	TagAddedTimeDrama Tag = "added_time_drama"
	TagLateGoal       Tag = "late_goal"
	TagEarlyGoal      Tag = "early_goal"
	TagEqualizer      Tag = "equalizer"
	TagComeback       Tag = "comeback"
	TagLeadReversal   Tag = "lead_reversal"
)

// Event is one entry of a match's event stream. The set of implementations is
// closed: Kickoff, Goal, Foul, Pass, ThrowIn, GoalKick, Corner, Upset, Final.
type Event interface {
	Kind() Kind
	Minute() int
	Description() string
	sealed()
}

type header struct {
	At   int
	Text string
}

func (h header) Minute() int         { return h.At }
func (h header) Description() string { return h.Text }
func (header) sealed()               {}

type Kickoff struct {
	header
	HomeTeam string
	AwayTeam string
}

func (Kickoff) Kind() Kind { return KindKickoff }

type Goal struct {
	header
	Side        Side
	TeamKey     string
	Scorer      player.Player
	ScorerKnown bool
	Assister    *player.Player
	Tags        []Tag
	HomeScore   int
	AwayScore   int
}

func (Goal) Kind() Kind { return KindGoal }

func (g Goal) HasTag(tag Tag) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Play is a non-scoring event credited to one team.
type Play struct {
	header
	Side    Side
	TeamKey string
}

type Foul struct{ Play }

func (Foul) Kind() Kind { return KindFoul }

type Pass struct{ Play }

func (Pass) Kind() Kind { return KindPass }

type ThrowIn struct{ Play }

func (ThrowIn) Kind() Kind { return KindThrowIn }

type GoalKick struct{ Play }

func (GoalKick) Kind() Kind { return KindGoalKick }

type Corner struct{ Play }

func (Corner) Kind() Kind { return KindCorner }

// Upset is commentary for a spell of pressure by the weaker side.
type Upset struct {
	header
	Side    Side
	TeamKey string
}

func (Upset) Kind() Kind { return KindUpset }

type Final struct {
	header
	HomeScore int
	AwayScore int
}

func (Final) Kind() Kind { return KindFinal }

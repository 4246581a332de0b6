package tactic

import "fmt"

const (
	Gegenpress    = "gegenpress"
	TwoLine       = "twoLine"
	LaVolpiana    = "lavolpiana"
	LongBall      = "longBall"
	Possession    = "possession"
	ParkBus       = "parkBus"
	Catenaccio    = "catenaccio"
	TotalFootball = "totalFootball"
	TikiTaka      = "tikitaka"

	// DefaultKey is used for teams without a configured tactic.
	DefaultKey = Possession

	EffectiveBonus     = 15
	IneffectivePenalty = -10
)

// Modifiers shift the per-tick event probabilities of the side playing a tactic.
type Modifiers struct {
	GoalChance   float64
	FoulChance   float64
	Possession   float64
	PassAccuracy float64
}

// Profile is a named tactic with fixed effectiveness relationships.
type Profile struct {
	Key                string
	Name               string
	Description        string
	EffectiveAgainst   []string
	IneffectiveAgainst []string
	Modifiers          Modifiers
}

func (p Profile) beats(other string) bool {
	return contains(p.EffectiveAgainst, other)
}

func (p Profile) losesTo(other string) bool {
	return contains(p.IneffectiveAgainst, other)
}

type Result string

const (
	ResultFavorable   Result = "favorable"
	ResultUnfavorable Result = "unfavorable"
	ResultNeutral     Result = "neutral"
)

// Matchup describes how a user tactic fares against the opponent's.
type Matchup struct {
	UserTactic     string
	OpponentTactic string
	Result         Result
	Advantage      int
	Effect         int
	Description    string
}

func newMatchup(user, opponent Profile, effect int) Matchup {
	m := Matchup{
		UserTactic:     user.Key,
		OpponentTactic: opponent.Key,
		Result:         ResultNeutral,
		Effect:         effect,
	}
	switch {
	case effect > 0:
		m.Result = ResultFavorable
		m.Advantage = 5
	case effect < 0:
		m.Result = ResultUnfavorable
		m.Advantage = -3
	}
	m.Description = fmt.Sprintf("%s vs %s: %s", user.Name, opponent.Name, m.Result)
	return m
}

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

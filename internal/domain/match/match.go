package match

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/riskibarqy/football-sim/internal/domain/attribution"
	"github.com/riskibarqy/football-sim/internal/domain/lineup"
	"github.com/riskibarqy/football-sim/internal/domain/tactic"
	"github.com/riskibarqy/football-sim/internal/platform/random"
)

type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusKickoff    Status = "kickoff"
	StatusRunning    Status = "running"
	StatusEnded      Status = "ended"
)

const (
	FullTime = 90

	activeTickProbability = 0.4
	upsetModeProbability  = 0.07
	upsetBonusMin         = 0.05
	upsetBonusSpread      = 0.15
	upsetTrim             = 0.3
	baseGoalChance        = 0.015
	strengthDivisor       = 60.0
	userFavouredCounter   = 0.3
	oppFavouredCounter    = 0.5
	jitterBase            = 0.8
	jitterSpread          = 0.1
	goalChanceFloor       = 0.01

	foulChance     = 0.08
	passChance     = 0.755
	throwInChance  = 0.06
	goalKickChance = 0.04
)

var ErrInvalidTransition = errors.New("invalid match state transition")

// Team is one side of a fixture as the simulator sees it.
type Team struct {
	Key       string
	Tactic    string
	Rating    float64
	Modifiers tactic.Modifiers
	Pool      attribution.Pool
}

// Setup is everything needed to create a match. Home is the user's side and
// Lineup its fielded eleven.
type Setup struct {
	ID     string
	Home   Team
	Away   Team
	Lineup lineup.Lineup
	Random random.Source
}

// Match is the minute-by-minute state machine of one fixture. It is not safe
// for concurrent use; the owner serializes calls.
type Match struct {
	id           string
	home         Team
	away         Team
	lineup       lineup.Lineup
	src          random.Source
	status       Status
	minute       int
	homeScore    int
	awayScore    int
	strengthDiff float64
	stopped      bool
	trailed      map[Side]bool
	events       []Event
}

func New(s Setup) *Match {
	src := s.Random
	if src == nil {
		src = random.NewSeeded(0)
	}
	return &Match{
		id:           s.ID,
		home:         s.Home,
		away:         s.Away,
		lineup:       s.Lineup,
		src:          src,
		status:       StatusNotStarted,
		strengthDiff: s.Home.Rating - s.Away.Rating,
		trailed:      make(map[Side]bool, 2),
	}
}

func (m *Match) ID() string              { return m.id }
func (m *Match) Status() Status          { return m.status }
func (m *Match) Minute() int             { return m.minute }
func (m *Match) Home() Team              { return m.home }
func (m *Match) Away() Team              { return m.away }
func (m *Match) Lineup() lineup.Lineup   { return m.lineup }
func (m *Match) StrengthDiff() float64   { return m.strengthDiff }
func (m *Match) Stopped() bool           { return m.stopped }
func (m *Match) Score() (home, away int) { return m.homeScore, m.awayScore }

func (m *Match) Events() []Event {
	return slices.Clone(m.events)
}

// Kickoff checks the fielded lineup and moves the match out of NotStarted. An
// incomplete lineup is reported as *lineup.IncompleteError and leaves the
// match untouched.
func (m *Match) Kickoff() error {
	if m.status != StatusNotStarted {
		return fmt.Errorf("%w: kickoff from %s", ErrInvalidTransition, m.status)
	}
	if err := m.lineup.ValidateComplete(); err != nil {
		return err
	}
	m.status = StatusKickoff
	return nil
}

// Start begins play and returns the kickoff event.
func (m *Match) Start() ([]Event, error) {
	if m.status != StatusKickoff {
		return nil, fmt.Errorf("%w: start from %s", ErrInvalidTransition, m.status)
	}
	m.status = StatusRunning

	ev := Kickoff{
		header:   header{At: 0, Text: fmt.Sprintf("Kick-off! %s take on %s.", m.home.Key, m.away.Key)},
		HomeTeam: m.home.Key,
		AwayTeam: m.away.Key,
	}
	m.events = append(m.events, ev)
	return []Event{ev}, nil
}

// Stop ends the match early. Events already produced are kept and no final
// event is emitted. It reports whether the match was in progress.
func (m *Match) Stop() bool {
	if m.status != StatusRunning && m.status != StatusKickoff {
		return false
	}
	m.status = StatusEnded
	m.stopped = true
	return true
}

// Tick advances the clock by one minute and returns the events of that
// minute, if any. Reaching full time ends the match with a Final event.
// Ticks outside the running state are no-ops.
func (m *Match) Tick() []Event {
	if m.status != StatusRunning {
		return nil
	}

	m.minute++
	var out []Event
	if m.src.Float64() < activeTickProbability {
		out = m.roll(out)
	}

	if m.minute >= FullTime {
		m.status = StatusEnded
		final := Final{
			header:    header{At: m.minute, Text: finalText(m.home.Key, m.away.Key, m.homeScore, m.awayScore)},
			HomeScore: m.homeScore,
			AwayScore: m.awayScore,
		}
		out = append(out, final)
	}

	m.events = append(m.events, out...)
	return out
}

// Chances are the per-tick goal probabilities of both sides.
type Chances struct {
	Home float64
	Away float64
}

// GoalChances computes the goal probabilities of one tick. upsetBonus is the
// bonus granted to the weaker side, zero when upset mode is off.
func GoalChances(home, away tactic.Modifiers, strengthDiff, upsetBonus, jitter float64) Chances {
	user := baseGoalChance + home.GoalChance
	opp := baseGoalChance + away.GoalChance
	swing := math.Abs(strengthDiff) / strengthDivisor

	if strengthDiff > 0 {
		user += swing
		opp -= swing * userFavouredCounter
		opp += upsetBonus
		user -= upsetBonus * upsetTrim
	} else {
		opp += swing
		user -= swing * oppFavouredCounter
		user += upsetBonus
		opp -= upsetBonus * upsetTrim
	}

	user *= jitter
	opp *= 2 - jitter

	return Chances{
		Home: math.Max(goalChanceFloor, user),
		Away: math.Max(goalChanceFloor, opp),
	}
}

func (m *Match) roll(out []Event) []Event {
	var upsetBonus float64
	if m.src.Float64() < upsetModeProbability {
		upsetBonus = upsetBonusMin + m.src.Float64()*upsetBonusSpread
		if m.minute%10 == 0 {
			out = append(out, m.upsetEvent())
		}
	}

	eventRoll := m.src.Float64()
	jitter := jitterBase + m.src.Float64()*jitterSpread
	chances := GoalChances(m.home.Modifiers, m.away.Modifiers, m.strengthDiff, upsetBonus, jitter)

	threshold := chances.Home
	if eventRoll < threshold {
		return append(out, m.goal(SideHome))
	}
	threshold += chances.Away
	if eventRoll < threshold {
		return append(out, m.goal(SideAway))
	}

	side, team := m.randomSide()
	play := Play{header: header{At: m.minute}, Side: side, TeamKey: team}
	switch {
	case eventRoll < threshold+foulChance:
		play.Text = m.pick(foulLines, team)
		return append(out, Foul{Play: play})
	case eventRoll < threshold+foulChance+passChance:
		play.Text = m.pick(passLines, team)
		return append(out, Pass{Play: play})
	case eventRoll < threshold+foulChance+passChance+throwInChance:
		play.Text = m.pick(throwInLines, team)
		return append(out, ThrowIn{Play: play})
	case eventRoll < threshold+foulChance+passChance+throwInChance+goalKickChance:
		play.Text = m.pick(goalKickLines, team)
		return append(out, GoalKick{Play: play})
	default:
		play.Text = m.pick(cornerLines, team)
		return append(out, Corner{Play: play})
	}
}

func (m *Match) randomSide() (Side, string) {
	if m.src.Float64() < 0.5 {
		return SideHome, m.home.Key
	}
	return SideAway, m.away.Key
}

func (m *Match) upsetEvent() Upset {
	side, team := SideAway, m.away.Key
	if m.strengthDiff <= 0 {
		side, team = SideHome, m.home.Key
	}
	return Upset{
		header:  header{At: m.minute, Text: m.pick(upsetLines, team)},
		Side:    side,
		TeamKey: team,
	}
}

func (m *Match) goal(side Side) Goal {
	team := m.home
	if side == SideAway {
		team = m.away
	}

	prevHome, prevAway := m.homeScore, m.awayScore
	if side == SideHome {
		m.homeScore++
	} else {
		m.awayScore++
	}

	credit := attribution.Attribute(m.src, team.Pool)
	g := Goal{
		header:      header{At: m.minute},
		Side:        side,
		TeamKey:     team.Key,
		Scorer:      credit.Scorer,
		ScorerKnown: credit.ScorerKnown,
		Assister:    credit.Assister,
		HomeScore:   m.homeScore,
		AwayScore:   m.awayScore,
	}
	g.Tags = Tags(m.minute, side, prevHome, prevAway, m.homeScore, m.awayScore, m.trailed[side])
	m.trackDeficits()
	g.Text = goalText(m.src, g)
	return g
}

func (m *Match) trackDeficits() {
	switch {
	case m.homeScore < m.awayScore:
		m.trailed[SideHome] = true
	case m.awayScore < m.homeScore:
		m.trailed[SideAway] = true
	}
}

// Tags annotates a goal from the scores before and after it. trailedBefore
// reports whether the scoring side was behind at any earlier point; a lead
// reversal is only the goal that puts such a side ahead.
func Tags(minute int, side Side, prevHome, prevAway, home, away int, trailedBefore bool) []Tag {
	var tags []Tag
	total := home + away
	gap := absInt(home - away)
	prevGap := absInt(prevHome - prevAway)

	if total == 1 {
		tags = append(tags, TagFirstGoal)
	}

	switch {
	case minute >= 85 && gap <= 2:
		tags = append(tags, TagAddedTimeDrama)
	case minute >= 75:
		tags = append(tags, TagLateGoal)
	case minute <= 5:
		tags = append(tags, TagEarlyGoal)
	}

	if total >= 2 {
		scorer, other := home, away
		prevScorer, prevOther := prevHome, prevAway
		if side == SideAway {
			scorer, other = away, home
			prevScorer, prevOther = prevAway, prevHome
		}
		switch {
		case gap == 0:
			tags = append(tags, TagEqualizer)
		case prevGap >= 2 && gap <= 1:
			tags = append(tags, TagComeback)
		case scorer > other && prevScorer <= prevOther && trailedBefore:
			tags = append(tags, TagLeadReversal)
		}
	}

	return tags
}

// Snapshot is a read-only view of a match.
type Snapshot struct {
	ID           string
	HomeTeam     string
	AwayTeam     string
	HomeTactic   string
	AwayTactic   string
	HomeRating   float64
	AwayRating   float64
	HomeScore    int
	AwayScore    int
	Minute       int
	Status       Status
	Stopped      bool
	StrengthDiff float64
	Events       []Event
}

func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		ID:           m.id,
		HomeTeam:     m.home.Key,
		AwayTeam:     m.away.Key,
		HomeTactic:   m.home.Tactic,
		AwayTactic:   m.away.Tactic,
		HomeRating:   m.home.Rating,
		AwayRating:   m.away.Rating,
		HomeScore:    m.homeScore,
		AwayScore:    m.awayScore,
		Minute:       m.minute,
		Status:       m.status,
		Stopped:      m.stopped,
		StrengthDiff: m.strengthDiff,
		Events:       m.Events(),
	}
}

// Goals returns the goal events of the snapshot in order.
func (s Snapshot) Goals() []Goal {
	var out []Goal
	for _, e := range s.Events {
		if g, ok := e.(Goal); ok {
			out = append(out, g)
		}
	}
	return out
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

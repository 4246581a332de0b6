package fixture

import (
	"time"

	"github.com/riskibarqy/football-sim/internal/domain/attribution"
	"github.com/riskibarqy/football-sim/internal/domain/leaguestanding"
	"github.com/riskibarqy/football-sim/internal/domain/lineup"
	"github.com/riskibarqy/football-sim/internal/domain/outcome"
	"github.com/riskibarqy/football-sim/internal/domain/player"
	"github.com/riskibarqy/football-sim/internal/domain/records"
	"github.com/riskibarqy/football-sim/internal/domain/strength"
	"github.com/riskibarqy/football-sim/internal/platform/random"
)

// Team is a computer-controlled side with its full roster.
type Team struct {
	Key    string
	Roster []player.Player
}

// Goal is one goal of a simulated fixture.
type Goal struct {
	Minute  int
	Side    outcome.Side
	TeamKey string
	Credit  attribution.Attribution
}

// Result is a fully simulated fixture between two computer-controlled teams.
type Result struct {
	HomeTeam   string
	AwayTeam   string
	HomeScore  int
	AwayScore  int
	Outcome    outcome.Result
	Goals      []Goal
	HomeLineup lineup.Lineup
	AwayLineup lineup.Lineup
}

// Simulate resolves the scoreline from team strength, then places and
// attributes every goal so the goal list always matches the score.
func Simulate(src random.Source, home, away Team) Result {
	res := outcome.Resolve(src, strength.TeamRating(home.Roster), strength.TeamRating(away.Roster))

	out := Result{
		HomeTeam:   home.Key,
		AwayTeam:   away.Key,
		HomeScore:  res.Team1Goals,
		AwayScore:  res.Team2Goals,
		Outcome:    res,
		HomeLineup: lineup.Canonical(home.Key, home.Roster),
		AwayLineup: lineup.Canonical(away.Key, away.Roster),
	}

	minutes := outcome.GoalMinutes(src, res.Team1Goals+res.Team2Goals)
	sides := outcome.AssignScorers(src, res.Team1Goals, res.Team2Goals)
	pools := map[outcome.Side]attribution.Pool{
		outcome.SideTeam1: attribution.FromRoster(home.Roster),
		outcome.SideTeam2: attribution.FromRoster(away.Roster),
	}
	keys := map[outcome.Side]string{outcome.SideTeam1: home.Key, outcome.SideTeam2: away.Key}

	out.Goals = make([]Goal, 0, len(sides))
	for i, side := range sides {
		out.Goals = append(out.Goals, Goal{
			Minute:  minutes[i],
			Side:    side,
			TeamKey: keys[side],
			Credit:  attribution.Attribute(src, pools[side]),
		})
	}
	return out
}

// Apply folds the result into the league table and the records ledger:
// standings, goals and assists, and one appearance for each canonical starter.
func (r Result) Apply(table *leaguestanding.Table, ledger *records.Ledger) {
	r.ApplyTable(table)
	for _, g := range r.Goals {
		if g.Credit.ScorerKnown {
			ledger.RecordGoal(g.Credit.Scorer, g.Credit.Assister)
		}
	}
	ledger.RecordLineup(r.HomeLineup.Players())
	ledger.RecordLineup(r.AwayLineup.Players())
}

// ApplyTable folds only the score into the league table.
func (r Result) ApplyTable(table *leaguestanding.Table) {
	table.ApplyResult(r.HomeTeam, r.AwayTeam, r.HomeScore, r.AwayScore)
}

// Summary is the match log entry of the result.
func (r Result) Summary(id string, seasonNumber, round int, playedAt time.Time) records.MatchSummary {
	goals := make([]records.GoalRecord, 0, len(r.Goals))
	for _, g := range r.Goals {
		rec := records.GoalRecord{Minute: g.Minute, TeamKey: g.TeamKey, Scorer: g.Credit.Scorer.Name}
		if g.Credit.Assister != nil {
			rec.Assister = g.Credit.Assister.Name
		}
		goals = append(goals, rec)
	}

	return records.MatchSummary{
		ID:        id,
		Season:    seasonNumber,
		Round:     round,
		HomeTeam:  r.HomeTeam,
		AwayTeam:  r.AwayTeam,
		HomeScore: r.HomeScore,
		AwayScore: r.AwayScore,
		Goals:     goals,
		PlayedAt:  playedAt,
	}
}

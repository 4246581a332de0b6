package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/football-sim/internal/domain/attribution"
	"github.com/riskibarqy/football-sim/internal/domain/career"
	"github.com/riskibarqy/football-sim/internal/domain/fixture"
	"github.com/riskibarqy/football-sim/internal/domain/interview"
	"github.com/riskibarqy/football-sim/internal/domain/lineup"
	"github.com/riskibarqy/football-sim/internal/domain/match"
	"github.com/riskibarqy/football-sim/internal/domain/outcome"
	"github.com/riskibarqy/football-sim/internal/domain/records"
	"github.com/riskibarqy/football-sim/internal/domain/strength"
	"github.com/riskibarqy/football-sim/internal/platform/random"
)

const (
	ResultWin  = "win"
	ResultDraw = "draw"
	ResultLoss = "loss"

	IncomeWin  int64 = 50
	IncomeDraw int64 = 15
	IncomeLoss int64 = 10

	// closeGap is the rating gap under which a draw counts as even.
	closeGap = 5.0
)

// MatchPreview is what the user sees before kickoff.
type MatchPreview struct {
	MatchID            string              `json:"match_id"`
	Season             int                 `json:"season"`
	Round              int                 `json:"round"`
	UserTeam           string              `json:"user_team"`
	Opponent           string              `json:"opponent"`
	UserTactic         string              `json:"user_tactic"`
	OpponentTactic     string              `json:"opponent_tactic"`
	MatchupResult      string              `json:"matchup_result"`
	MatchupDescription string              `json:"matchup_description"`
	Advantage          int                 `json:"advantage"`
	Recommended        []string            `json:"recommended_tactics"`
	Comparison         strength.Comparison `json:"-"`
	UserRating         float64             `json:"user_rating"`
	OpponentRating     float64             `json:"opponent_rating"`
	MoraleEffect       int                 `json:"morale_effect"`
	Morale             int                 `json:"morale"`
}

// MatchReport is the outcome of the user's match once it has ended.
type MatchReport struct {
	MatchID        string                 `json:"match_id"`
	Opponent       string                 `json:"opponent"`
	HomeScore      int                    `json:"home_score"`
	AwayScore      int                    `json:"away_score"`
	Result         string                 `json:"result,omitempty"`
	Upset          bool                   `json:"upset"`
	Stopped        bool                   `json:"stopped"`
	MoraleDelta    int                    `json:"morale_delta"`
	Morale         int                    `json:"morale"`
	Income         int64                  `json:"income"`
	Money          int64                  `json:"money"`
	OtherResults   []records.MatchSummary `json:"other_results"`
	SeasonComplete bool                   `json:"season_complete"`
	Interview      *interview.Question    `json:"interview,omitempty"`
}

// TickResult is one minute of play.
type TickResult struct {
	Minute    int
	Status    match.Status
	HomeScore int
	AwayScore int
	Events    []match.Event
	Report    *MatchReport
}

// MatchState is the current or last match of the career.
type MatchState struct {
	Preview  MatchPreview
	Snapshot match.Snapshot
	Report   *MatchReport
}

// PrepareMatch sets up the fixture against the next opponent and performs the
// kickoff check. The tactic matchup effect is applied to morale once the
// lineup is accepted.
func (s *CareerService) PrepareMatch(ctx context.Context) (MatchPreview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CareerService.PrepareMatch")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prepareLocked(ctx)
}

func (s *CareerService) prepareLocked(ctx context.Context) (MatchPreview, error) {
	st := s.state
	if st == nil {
		return MatchPreview{}, ErrNoActiveCareer
	}
	if st.matchInProgress() {
		return MatchPreview{}, fmt.Errorf("%w: match %s is already in progress", ErrConflict, st.current.ID())
	}
	if st.lifecycle.Complete() {
		return MatchPreview{}, fmt.Errorf("%w: season %d is complete and must be settled", ErrConflict, st.lifecycle.Season())
	}

	opponent := s.opponentLocked(ctx)
	if opponent == "" {
		return MatchPreview{}, fmt.Errorf("%w: no opponent available", ErrConflict)
	}

	userRoster := s.roster(ctx, st.userTeam)
	oppRoster := s.roster(ctx, opponent)
	fielded, err := lineup.Build(st.userTeam, userRoster, st.selection)
	if err != nil {
		return MatchPreview{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	matchID, err := s.idGen.NewID()
	if err != nil {
		return MatchPreview{}, fmt.Errorf("generate match id: %w", err)
	}

	oppTactic := s.catalog.DefaultFor(opponent)
	cmp := strength.Compare(strength.LineupRating(fielded), strength.TeamRating(oppRoster))
	m := match.New(match.Setup{
		ID: matchID,
		Home: match.Team{
			Key:       st.userTeam,
			Tactic:    st.tactic,
			Rating:    cmp.UserRating,
			Modifiers: s.catalog.Modifiers(st.tactic),
			Pool:      attribution.FromLineup(fielded),
		},
		Away: match.Team{
			Key:       opponent,
			Tactic:    oppTactic,
			Rating:    cmp.OpponentRating,
			Modifiers: s.catalog.Modifiers(oppTactic),
			Pool:      attribution.FromRoster(oppRoster),
		},
		Lineup: fielded,
		Random: s.src,
	})
	if err := m.Kickoff(); err != nil {
		return MatchPreview{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	matchup := s.catalog.Matchup(st.tactic, oppTactic)
	st.morale = career.ClampMorale(st.morale + matchup.Effect)
	st.current = m
	st.reported = nil
	st.interview = nil
	st.preview = MatchPreview{
		MatchID:            matchID,
		Season:             st.lifecycle.Season(),
		Round:              st.round + 1,
		UserTeam:           st.userTeam,
		Opponent:           opponent,
		UserTactic:         st.tactic,
		OpponentTactic:     oppTactic,
		MatchupResult:      string(matchup.Result),
		MatchupDescription: matchup.Description,
		Advantage:          matchup.Advantage,
		Recommended:        s.catalog.Recommended(oppTactic),
		Comparison:         cmp,
		UserRating:         cmp.UserRating,
		OpponentRating:     cmp.OpponentRating,
		MoraleEffect:       matchup.Effect,
		Morale:             st.morale,
	}

	s.logger.InfoContext(ctx, "match prepared",
		"match_id", matchID,
		"home", st.userTeam,
		"away", opponent,
		"strength_diff", cmp.Difference,
		"matchup", matchup.Result,
	)
	return st.preview, nil
}

// StartMatch blows the whistle on a prepared match.
func (s *CareerService) StartMatch(ctx context.Context) ([]match.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startLocked(ctx)
}

func (s *CareerService) startLocked(ctx context.Context) ([]match.Event, error) {
	if s.state == nil {
		return nil, ErrNoActiveCareer
	}
	m := s.state.current
	if m == nil {
		return nil, fmt.Errorf("%w: no match prepared", ErrMatchNotActive)
	}
	events, err := m.Start()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMatchNotActive, err)
	}
	match.Publish(ctx, s.sink, m, events)
	return events, nil
}

// Tick plays one minute. The tick that reaches full time also settles the
// match into the table, the ledger and the rest of the round.
func (s *CareerService) Tick(ctx context.Context) (TickResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tickLocked(ctx)
}

func (s *CareerService) tickLocked(ctx context.Context) (TickResult, error) {
	if s.state == nil {
		return TickResult{}, ErrNoActiveCareer
	}
	m := s.state.current
	if m == nil || m.Status() != match.StatusRunning {
		return TickResult{}, ErrMatchNotActive
	}

	events := m.Tick()
	match.Publish(ctx, s.sink, m, events)

	home, away := m.Score()
	out := TickResult{
		Minute:    m.Minute(),
		Status:    m.Status(),
		HomeScore: home,
		AwayScore: away,
		Events:    events,
	}
	if m.Status() == match.StatusEnded {
		report := s.finishLocked(ctx)
		out.Report = &report
	}
	return out, nil
}

// StopMatch abandons the match in play. Nothing is applied to the table or
// the career stats; the match is logged as stopped.
func (s *CareerService) StopMatch(ctx context.Context) (MatchReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	if st == nil {
		return MatchReport{}, ErrNoActiveCareer
	}
	m := st.current
	if m == nil || !m.Stop() {
		return MatchReport{}, ErrMatchNotActive
	}

	snap := m.Snapshot()
	summary := userSummary(snap, st.lifecycle.Season(), st.round+1, s.now().UTC())
	summary.Stopped = true
	st.ledger.AppendMatch(summary)
	s.sink.OnMatchEnded(ctx, snap)

	report := MatchReport{
		MatchID:   m.ID(),
		Opponent:  m.Away().Key,
		HomeScore: snap.HomeScore,
		AwayScore: snap.AwayScore,
		Stopped:   true,
		Morale:    st.morale,
		Money:     st.money,
	}
	st.reported = &report

	s.logger.InfoContext(ctx, "match stopped", "match_id", m.ID(), "minute", snap.Minute)
	return report, nil
}

// PlayMatch runs the next fixture to full time without pauses.
func (s *CareerService) PlayMatch(ctx context.Context) (MatchReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CareerService.PlayMatch")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return MatchReport{}, ErrNoActiveCareer
	}
	if cur := s.state.current; cur == nil || cur.Status() == match.StatusEnded {
		if _, err := s.prepareLocked(ctx); err != nil {
			return MatchReport{}, err
		}
	}
	if s.state.current.Status() == match.StatusKickoff {
		if _, err := s.startLocked(ctx); err != nil {
			return MatchReport{}, err
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return MatchReport{}, err
		}
		res, err := s.tickLocked(ctx)
		if err != nil {
			return MatchReport{}, err
		}
		if res.Report != nil {
			return *res.Report, nil
		}
	}
}

// CurrentMatch returns the match in play or the last one of the career.
func (s *CareerService) CurrentMatch(ctx context.Context) (MatchState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return MatchState{}, ErrNoActiveCareer
	}
	if s.state.current == nil {
		return MatchState{}, fmt.Errorf("%w: no match prepared", ErrNotFound)
	}
	return MatchState{
		Preview:  s.state.preview,
		Snapshot: s.state.current.Snapshot(),
		Report:   s.state.reported,
	}, nil
}

func (s *CareerService) finishLocked(ctx context.Context) MatchReport {
	st := s.state
	m := st.current
	snap := m.Snapshot()
	cmp := st.preview.Comparison
	opponent := m.Away().Key

	report := MatchReport{
		MatchID:   m.ID(),
		Opponent:  opponent,
		HomeScore: snap.HomeScore,
		AwayScore: snap.AwayScore,
	}
	report.Result, report.MoraleDelta, report.Income = settleResult(s.src, snap.HomeScore, snap.AwayScore, cmp)
	report.Upset = (report.Result == ResultWin && !cmp.UserAdvantage) || (report.Result == ResultLoss && cmp.UserAdvantage)

	st.morale = career.ClampMorale(st.morale + report.MoraleDelta)
	st.money += report.Income
	report.Morale = st.morale
	report.Money = st.money

	st.table.ApplyResult(st.userTeam, opponent, snap.HomeScore, snap.AwayScore)
	st.ledger.RecordLineup(m.Lineup().Players())
	st.ledger.RecordLineup(lineup.Canonical(opponent, s.roster(ctx, opponent)).Players())
	for _, g := range snap.Goals() {
		if g.ScorerKnown {
			st.ledger.RecordGoal(g.Scorer, g.Assister)
		}
	}
	st.lifecycle.RecordFixture()

	playedAt := s.now().UTC()
	st.ledger.AppendMatch(userSummary(snap, st.lifecycle.Season(), st.round+1, playedAt))
	report.OtherResults = s.simulateRoundLocked(ctx, opponent)

	st.round++
	st.opponentIndex++
	report.SeasonComplete = st.lifecycle.Complete()
	question := interview.For(snap.HomeScore, snap.AwayScore, cmp)
	report.Interview = &question
	st.interview = &question
	st.reported = &report

	s.logger.InfoContext(ctx, "match finished",
		"match_id", m.ID(),
		"home", st.userTeam,
		"away", opponent,
		"score", fmt.Sprintf("%d-%d", snap.HomeScore, snap.AwayScore),
		"result", report.Result,
		"upset", report.Upset,
		"season_complete", report.SeasonComplete,
	)
	return report
}

// settleResult classifies the user's result and draws the morale swing from
// the favourite/underdog range of that result.
func settleResult(src random.Source, userGoals, oppGoals int, cmp strength.Comparison) (string, int, int64) {
	switch {
	case userGoals > oppGoals:
		if cmp.UserAdvantage {
			return ResultWin, random.IntRange(src, 5, 12), IncomeWin
		}
		return ResultWin, random.IntRange(src, 10, 24), IncomeWin
	case userGoals < oppGoals:
		if cmp.UserAdvantage {
			return ResultLoss, -random.IntRange(src, 10, 24), IncomeLoss
		}
		return ResultLoss, -random.IntRange(src, 3, 10), IncomeLoss
	default:
		switch {
		case cmp.Gap < closeGap:
			return ResultDraw, random.IntRange(src, -1, 1), IncomeDraw
		case cmp.UserAdvantage:
			return ResultDraw, -random.IntRange(src, 2, 6), IncomeDraw
		default:
			return ResultDraw, random.IntRange(src, 3, 10), IncomeDraw
		}
	}
}

// simulateRoundLocked plays every other fixture of the round.
func (s *CareerService) simulateRoundLocked(ctx context.Context, opponent string) []records.MatchSummary {
	st := s.state
	pairs := outcome.PairFixtures(s.teamKeys(ctx), st.userTeam, opponent)
	out := make([]records.MatchSummary, 0, len(pairs))
	playedAt := s.now().UTC()

	for i, pair := range pairs {
		res := fixture.Simulate(s.src,
			fixture.Team{Key: pair.Team1, Roster: s.roster(ctx, pair.Team1)},
			fixture.Team{Key: pair.Team2, Roster: s.roster(ctx, pair.Team2)},
		)
		res.Apply(st.table, st.ledger)

		fixtureID, err := s.idGen.NewID()
		if err != nil {
			fixtureID = fmt.Sprintf("%s-r%d-f%d", st.id, st.round+1, i+1)
		}
		summary := res.Summary(fixtureID, st.lifecycle.Season(), st.round+1, playedAt)
		st.ledger.AppendMatch(summary)
		out = append(out, summary)
	}
	return out
}

func userSummary(snap match.Snapshot, seasonNumber, round int, playedAt time.Time) records.MatchSummary {
	goals := snap.Goals()
	out := records.MatchSummary{
		ID:        snap.ID,
		Season:    seasonNumber,
		Round:     round,
		HomeTeam:  snap.HomeTeam,
		AwayTeam:  snap.AwayTeam,
		HomeScore: snap.HomeScore,
		AwayScore: snap.AwayScore,
		UserMatch: true,
		Goals:     make([]records.GoalRecord, 0, len(goals)),
		PlayedAt:  playedAt,
	}
	for _, g := range goals {
		rec := records.GoalRecord{Minute: g.Minute(), TeamKey: g.TeamKey, Scorer: g.Scorer.Name}
		if g.Assister != nil {
			rec.Assister = g.Assister.Name
		}
		out.Goals = append(out.Goals, rec)
	}
	return out
}

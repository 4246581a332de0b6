package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/football-sim/internal/domain/career"
	"github.com/riskibarqy/football-sim/internal/domain/leaguestanding"
	"github.com/riskibarqy/football-sim/internal/domain/lineup"
	"github.com/riskibarqy/football-sim/internal/domain/match"
	"github.com/riskibarqy/football-sim/internal/domain/player"
	"github.com/riskibarqy/football-sim/internal/domain/records"
	"github.com/riskibarqy/football-sim/internal/domain/season"
	"github.com/riskibarqy/football-sim/internal/domain/strength"
	"github.com/riskibarqy/football-sim/internal/domain/tactic"
	"github.com/riskibarqy/football-sim/internal/platform/cache"
	idgen "github.com/riskibarqy/football-sim/internal/platform/id"
	"github.com/riskibarqy/football-sim/internal/platform/logging"
	"github.com/riskibarqy/football-sim/internal/platform/random"
)

// NewCareerInput starts a career with the given club.
type NewCareerInput struct {
	TeamKey string
	Tactic  string
}

// CareerView is the user-facing state of the active career.
type CareerView struct {
	ID              string           `json:"id"`
	UserTeam        string           `json:"user_team"`
	Tactic          string           `json:"tactic"`
	Morale          int              `json:"morale"`
	Money           int64            `json:"money"`
	Round           int              `json:"round"`
	Season          int              `json:"season"`
	Fixtures        int              `json:"fixtures"`
	SeasonComplete  bool             `json:"season_complete"`
	NextOpponent    string           `json:"next_opponent"`
	Lineup          lineup.Selection `json:"lineup"`
	LineupShortfall int              `json:"lineup_shortfall"`
	MatchStatus     match.Status     `json:"match_status,omitempty"`
}

// TeamSummary describes a club available for a career.
type TeamSummary struct {
	Key           string  `json:"key"`
	Rating        float64 `json:"rating"`
	DefaultTactic string  `json:"default_tactic"`
	RosterSize    int     `json:"roster_size"`
}

// TacticChange reports a tactic switch and its small morale swing.
type TacticChange struct {
	OldTactic   string `json:"old_tactic"`
	NewTactic   string `json:"new_tactic"`
	MoraleDelta int    `json:"morale_delta"`
	Morale      int    `json:"morale"`
	Suggestion  string `json:"suggestion,omitempty"`
}

type CareerServiceConfig struct {
	Season season.Config
	Random random.Source
}

// CareerService owns the simulation context of a single career: the league
// table, records ledger, season counters and the match in play. All operations
// are serialized.
type CareerService struct {
	mu      sync.Mutex
	rosters player.RosterProvider
	catalog *tactic.Catalog
	repo    career.Repository
	idGen   idgen.Generator
	sink    match.Sink
	cache   *cache.Store[[]player.Player]
	cfg     season.Config
	src     random.Source
	logger  *logging.Logger
	now     func() time.Time

	state *careerState
}

// NewCareerService wires a career service. rosterCache may be nil to read
// rosters from the provider on every use.
func NewCareerService(
	rosters player.RosterProvider,
	catalog *tactic.Catalog,
	repo career.Repository,
	idGen idgen.Generator,
	sink match.Sink,
	rosterCache *cache.Store[[]player.Player],
	cfg CareerServiceConfig,
	logger *logging.Logger,
) *CareerService {
	if catalog == nil {
		catalog = tactic.DefaultCatalog()
	}
	if sink == nil {
		sink = match.NopSink{}
	}
	if idGen == nil {
		idGen = idgen.NewUUIDGenerator("")
	}
	if cfg.Season.Validate() != nil {
		cfg.Season = season.DefaultConfig()
	}
	if cfg.Random == nil {
		cfg.Random = random.NewSeeded(0)
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &CareerService{
		rosters: rosters,
		catalog: catalog,
		repo:    repo,
		idGen:   idGen,
		sink:    sink,
		cache:   rosterCache,
		cfg:     cfg.Season,
		src:     cfg.Random,
		logger:  logger.Named("career"),
		now:     time.Now,
	}
}

func (s *CareerService) Catalog() *tactic.Catalog {
	return s.catalog
}

// TacticMatchup compares two tactics. Unlike ChangeTactic, unknown keys are
// reported instead of falling back, so callers can correct them.
func (s *CareerService) TacticMatchup(ctx context.Context, user, opponent string) (tactic.Matchup, []string, error) {
	for _, key := range []string{user, opponent} {
		if _, ok := s.catalog.Lookup(key); !ok {
			return tactic.Matchup{}, nil, fmt.Errorf("%w: tactic=%s%s", ErrNotFound, key, suggestion(key, s.catalog.Keys()))
		}
	}
	return s.catalog.Matchup(user, opponent), s.catalog.Recommended(opponent), nil
}

func (s *CareerService) roster(ctx context.Context, teamKey string) []player.Player {
	if s.cache == nil {
		return s.rosters.RosterOf(ctx, teamKey)
	}
	roster, _ := s.cache.GetOrLoad(ctx, "roster:"+teamKey, func(ctx context.Context) ([]player.Player, error) {
		return s.rosters.RosterOf(ctx, teamKey), nil
	})
	return roster
}

func (s *CareerService) rating(ctx context.Context, teamKey string) float64 {
	return strength.TeamRating(s.roster(ctx, teamKey))
}

func (s *CareerService) teamKeys(ctx context.Context) []string {
	return s.rosters.TeamKeys(ctx)
}

// Teams lists every club with its rating, strongest first.
func (s *CareerService) Teams(ctx context.Context) ([]TeamSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CareerService.Teams")
	defer span.End()

	keys := s.teamKeys(ctx)
	out := make([]TeamSummary, 0, len(keys))
	for _, key := range keys {
		roster := s.roster(ctx, key)
		out = append(out, TeamSummary{
			Key:           key,
			Rating:        strength.TeamRating(roster),
			DefaultTactic: s.catalog.DefaultFor(key),
			RosterSize:    len(roster),
		})
	}
	slices.SortStableFunc(out, func(a, b TeamSummary) int {
		switch {
		case a.Rating > b.Rating:
			return -1
		case a.Rating < b.Rating:
			return 1
		default:
			return 0
		}
	})
	return out, nil
}

// Roster returns the players of a club ordered by rating.
func (s *CareerService) Roster(ctx context.Context, teamKey string) ([]player.Player, error) {
	teamKey = strings.TrimSpace(teamKey)
	if err := s.requireTeam(ctx, teamKey); err != nil {
		return nil, err
	}
	return player.ByRating(s.roster(ctx, teamKey)), nil
}

func (s *CareerService) requireTeam(ctx context.Context, teamKey string) error {
	if teamKey == "" {
		return fmt.Errorf("%w: team key is required", ErrInvalidInput)
	}
	keys := s.teamKeys(ctx)
	if !slices.Contains(keys, teamKey) {
		return fmt.Errorf("%w: team=%s%s", ErrNotFound, teamKey, suggestion(teamKey, keys))
	}
	return nil
}

// resolveTactic maps an unknown key to the neutral default with a warning.
func (s *CareerService) resolveTactic(ctx context.Context, key string) (string, string) {
	key = strings.TrimSpace(key)
	if _, ok := s.catalog.Lookup(key); ok {
		return key, ""
	}
	hint := closestMatch(key, s.catalog.Keys())
	s.logger.WarnContext(ctx, "unknown tactic, using neutral default",
		"tactic", key,
		"fallback", tactic.DefaultKey,
		"suggestion", hint,
	)
	return tactic.DefaultKey, hint
}

// NewCareer replaces any active career with a fresh one for the given club.
func (s *CareerService) NewCareer(ctx context.Context, input NewCareerInput) (CareerView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CareerService.NewCareer")
	defer span.End()

	input.TeamKey = strings.TrimSpace(input.TeamKey)
	if err := s.requireTeam(ctx, input.TeamKey); err != nil {
		return CareerView{}, err
	}

	tacticKey := s.catalog.DefaultFor(input.TeamKey)
	if strings.TrimSpace(input.Tactic) != "" {
		tacticKey, _ = s.resolveTactic(ctx, input.Tactic)
	}

	careerID, err := s.idGen.NewID()
	if err != nil {
		return CareerView{}, fmt.Errorf("generate career id: %w", err)
	}

	st := newCareerState(careerID, input.TeamKey, tacticKey, s.teamKeys(ctx), s.cfg)
	st.selection = lineup.Canonical(input.TeamKey, s.roster(ctx, input.TeamKey)).Names()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = st

	s.logger.InfoContext(ctx, "career started", "career_id", careerID, "team", input.TeamKey, "tactic", tacticKey)
	return s.viewLocked(ctx), nil
}

// Career returns the active career.
func (s *CareerService) Career(ctx context.Context) (CareerView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return CareerView{}, ErrNoActiveCareer
	}
	return s.viewLocked(ctx), nil
}

// EndCareer drops the active career without saving it.
func (s *CareerService) EndCareer(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return ErrNoActiveCareer
	}
	s.logger.InfoContext(ctx, "career ended", "career_id", s.state.id)
	s.state = nil
	return nil
}

// Reset clears the ledger, the table and every counter while keeping the
// club, tactic and lineup.
func (s *CareerService) Reset(ctx context.Context) (CareerView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return CareerView{}, ErrNoActiveCareer
	}
	s.state.reset()
	return s.viewLocked(ctx), nil
}

func (s *CareerService) viewLocked(ctx context.Context) CareerView {
	st := s.state
	l, _ := lineup.Build(st.userTeam, s.roster(ctx, st.userTeam), st.selection)
	view := CareerView{
		ID:              st.id,
		UserTeam:        st.userTeam,
		Tactic:          st.tactic,
		Morale:          st.morale,
		Money:           st.money,
		Round:           st.round,
		Season:          st.lifecycle.Season(),
		Fixtures:        st.lifecycle.Fixtures(),
		SeasonComplete:  st.lifecycle.Complete(),
		NextOpponent:    s.opponentLocked(ctx),
		Lineup:          st.selection,
		LineupShortfall: l.Shortfall(),
	}
	if st.current != nil {
		view.MatchStatus = st.current.Status()
	}
	return view
}

// opponentLocked serves opponents round-robin over every other club.
func (s *CareerService) opponentLocked(ctx context.Context) string {
	keys := s.teamKeys(ctx)
	opponents := make([]string, 0, len(keys))
	for _, key := range keys {
		if key != s.state.userTeam {
			opponents = append(opponents, key)
		}
	}
	if len(opponents) == 0 {
		return ""
	}
	return opponents[s.state.opponentIndex%len(opponents)]
}

// SetLineup replaces the user's selection. Incomplete selections are stored;
// they are rejected only at kickoff.
func (s *CareerService) SetLineup(ctx context.Context, sel lineup.Selection) (CareerView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CareerService.SetLineup")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return CareerView{}, ErrNoActiveCareer
	}
	if s.state.matchInProgress() {
		return CareerView{}, fmt.Errorf("%w: lineup is locked while a match is in progress", ErrConflict)
	}

	l, err := lineup.Build(s.state.userTeam, s.roster(ctx, s.state.userTeam), sel)
	if err != nil {
		return CareerView{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	s.state.selection = l.Names()
	return s.viewLocked(ctx), nil
}

// AutoLineup fields the canonical 4-3-3 of the user's roster.
func (s *CareerService) AutoLineup(ctx context.Context) (CareerView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return CareerView{}, ErrNoActiveCareer
	}
	if s.state.matchInProgress() {
		return CareerView{}, fmt.Errorf("%w: lineup is locked while a match is in progress", ErrConflict)
	}
	s.state.selection = lineup.Canonical(s.state.userTeam, s.roster(ctx, s.state.userTeam)).Names()
	return s.viewLocked(ctx), nil
}

// ChangeTactic switches the user's tactic. Unknown keys fall back to the
// neutral default. Morale moves by -1, 0 or +1.
func (s *CareerService) ChangeTactic(ctx context.Context, key string) (TacticChange, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CareerService.ChangeTactic")
	defer span.End()

	if strings.TrimSpace(key) == "" {
		return TacticChange{}, fmt.Errorf("%w: tactic is required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return TacticChange{}, ErrNoActiveCareer
	}
	if s.state.matchInProgress() {
		return TacticChange{}, fmt.Errorf("%w: tactic is locked while a match is in progress", ErrConflict)
	}

	resolved, hint := s.resolveTactic(ctx, key)
	delta := random.IntRange(s.src, -1, 1)
	out := TacticChange{
		OldTactic:   s.state.tactic,
		NewTactic:   resolved,
		MoraleDelta: delta,
		Suggestion:  hint,
	}
	s.state.tactic = resolved
	s.state.morale = career.ClampMorale(s.state.morale + delta)
	out.Morale = s.state.morale
	return out, nil
}

// Standings returns the current league table.
func (s *CareerService) Standings(ctx context.Context) ([]leaguestanding.Standing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return nil, ErrNoActiveCareer
	}
	return s.state.table.Standings(), nil
}

func (s *CareerService) TopScorers(ctx context.Context, limit int) ([]records.CareerStat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return nil, ErrNoActiveCareer
	}
	return s.state.ledger.TopScorers(limit), nil
}

func (s *CareerService) TopAssisters(ctx context.Context, limit int) ([]records.CareerStat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return nil, ErrNoActiveCareer
	}
	return s.state.ledger.TopAssisters(limit), nil
}

func (s *CareerService) MatchLog(ctx context.Context) ([]records.MatchSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return nil, ErrNoActiveCareer
	}
	return s.state.ledger.MatchLog(), nil
}

// SettleSeason pays the placement reward and opens the next season. It is
// only allowed once the fixture cap has been reached.
func (s *CareerService) SettleSeason(ctx context.Context) (season.Settlement, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CareerService.SettleSeason")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return season.Settlement{}, ErrNoActiveCareer
	}
	if s.state.matchInProgress() {
		return season.Settlement{}, fmt.Errorf("%w: match in progress", ErrConflict)
	}
	if !s.state.lifecycle.Complete() {
		return season.Settlement{}, fmt.Errorf("%w: season %d is not complete", ErrConflict, s.state.lifecycle.Season())
	}

	settlement := s.state.lifecycle.Settle(s.state.userTeam)
	s.state.money += settlement.Reward
	s.state.round = 0

	s.logger.InfoContext(ctx, "season settled",
		"career_id", s.state.id,
		"season", settlement.Season,
		"rank", settlement.Rank,
		"tier", settlement.Tier.Name,
		"reward", settlement.Reward,
	)
	return settlement, nil
}

// Snapshot exports the whole simulation context.
func (s *CareerService) Snapshot(ctx context.Context) (career.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return career.Snapshot{}, ErrNoActiveCareer
	}
	return s.state.snapshot(s.now().UTC()), nil
}

// Restore replaces the active career with a snapshot. A match in play is not
// part of a snapshot and is discarded.
func (s *CareerService) Restore(ctx context.Context, snap career.Snapshot) (CareerView, error) {
	snap.UserTeam = strings.TrimSpace(snap.UserTeam)
	if strings.TrimSpace(snap.ID) == "" {
		return CareerView{}, fmt.Errorf("%w: snapshot id is required", ErrInvalidInput)
	}
	if err := s.requireTeam(ctx, snap.UserTeam); err != nil {
		return CareerView{}, err
	}
	snap.Tactic, _ = s.resolveTactic(ctx, snap.Tactic)

	st := restoreCareerState(snap, s.teamKeys(ctx), s.cfg)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = st
	return s.viewLocked(ctx), nil
}

// Save persists the active career.
func (s *CareerService) Save(ctx context.Context) (career.Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CareerService.Save")
	defer span.End()

	if s.repo == nil {
		return career.Snapshot{}, fmt.Errorf("%w: no career repository configured", ErrDependencyUnavailable)
	}

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return career.Snapshot{}, err
	}
	if err := s.repo.Upsert(ctx, snap); err != nil {
		return career.Snapshot{}, fmt.Errorf("%w: save career: %w", ErrDependencyUnavailable, err)
	}

	s.logger.InfoContext(ctx, "career saved", "career_id", snap.ID, "season", snap.Season, "round", snap.Round)
	return snap, nil
}

// Load restores a saved career by id.
func (s *CareerService) Load(ctx context.Context, careerID string) (CareerView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CareerService.Load")
	defer span.End()

	careerID = strings.TrimSpace(careerID)
	if careerID == "" {
		return CareerView{}, fmt.Errorf("%w: career id is required", ErrInvalidInput)
	}
	if s.repo == nil {
		return CareerView{}, fmt.Errorf("%w: no career repository configured", ErrDependencyUnavailable)
	}

	snap, exists, err := s.repo.Get(ctx, careerID)
	if err != nil {
		return CareerView{}, fmt.Errorf("%w: load career: %w", ErrDependencyUnavailable, err)
	}
	if !exists {
		return CareerView{}, fmt.Errorf("%w: career=%s", ErrNotFound, careerID)
	}

	view, err := s.Restore(ctx, snap)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return CareerView{}, fmt.Errorf("%w: saved career references an unknown team", ErrConflict)
		}
		return CareerView{}, err
	}
	return view, nil
}

// Delete removes a saved career.
func (s *CareerService) Delete(ctx context.Context, careerID string) error {
	careerID = strings.TrimSpace(careerID)
	if careerID == "" {
		return fmt.Errorf("%w: career id is required", ErrInvalidInput)
	}
	if s.repo == nil {
		return fmt.Errorf("%w: no career repository configured", ErrDependencyUnavailable)
	}
	if err := s.repo.Delete(ctx, careerID); err != nil {
		return fmt.Errorf("%w: delete career: %w", ErrDependencyUnavailable, err)
	}
	return nil
}

package usecase

import (
	"time"

	"github.com/riskibarqy/football-sim/internal/domain/career"
	"github.com/riskibarqy/football-sim/internal/domain/interview"
	"github.com/riskibarqy/football-sim/internal/domain/leaguestanding"
	"github.com/riskibarqy/football-sim/internal/domain/lineup"
	"github.com/riskibarqy/football-sim/internal/domain/match"
	"github.com/riskibarqy/football-sim/internal/domain/records"
	"github.com/riskibarqy/football-sim/internal/domain/season"
)

// careerState is the whole mutable simulation context of one career. It is
// owned by CareerService and only touched under its mutex.
type careerState struct {
	id            string
	userTeam      string
	tactic        string
	morale        int
	money         int64
	round         int
	opponentIndex int
	selection     lineup.Selection

	table     *leaguestanding.Table
	ledger    *records.Ledger
	lifecycle *season.Lifecycle

	current   *match.Match
	preview   MatchPreview
	reported  *MatchReport
	interview *interview.Question
}

func newCareerState(id, userTeam, tacticKey string, teamKeys []string, cfg season.Config) *careerState {
	table := leaguestanding.NewTable(teamKeys...)
	return &careerState{
		id:        id,
		userTeam:  userTeam,
		tactic:    tacticKey,
		morale:    career.InitialMorale,
		table:     table,
		ledger:    records.NewLedger(),
		lifecycle: season.NewLifecycle(cfg, table),
	}
}

func (st *careerState) matchInProgress() bool {
	if st.current == nil {
		return false
	}
	status := st.current.Status()
	return status == match.StatusKickoff || status == match.StatusRunning
}

func (st *careerState) reset() {
	st.morale = career.InitialMorale
	st.money = 0
	st.round = 0
	st.opponentIndex = 0
	st.ledger.Reset()
	st.lifecycle.Reset()
	st.current = nil
	st.preview = MatchPreview{}
	st.reported = nil
	st.interview = nil
}

func (st *careerState) snapshot(savedAt time.Time) career.Snapshot {
	return career.Snapshot{
		ID:            st.id,
		UserTeam:      st.userTeam,
		Tactic:        st.tactic,
		Morale:        st.morale,
		Money:         st.money,
		Round:         st.round,
		OpponentIndex: st.opponentIndex,
		Season:        st.lifecycle.Season(),
		Fixtures:      st.lifecycle.Fixtures(),
		Lineup:        st.selection,
		Standings:     st.table.Export(),
		Ledger:        st.ledger.Export(),
		SavedAt:       savedAt,
	}
}

// restoreCareerState rebuilds a context from a snapshot. Teams missing from
// the snapshot standings are registered with empty rows.
func restoreCareerState(snap career.Snapshot, teamKeys []string, cfg season.Config) *careerState {
	st := newCareerState(snap.ID, snap.UserTeam, snap.Tactic, teamKeys, cfg)
	st.morale = career.ClampMorale(snap.Morale)
	st.money = snap.Money
	st.round = max(0, snap.Round)
	st.opponentIndex = max(0, snap.OpponentIndex)
	st.selection = snap.Lineup
	st.table.Import(snap.Standings)
	st.table.Register(teamKeys...)
	st.ledger.Import(snap.Ledger)
	st.lifecycle.Restore(snap.Season, snap.Fixtures)
	return st
}

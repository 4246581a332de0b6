package career

import (
	"time"

	"github.com/riskibarqy/football-sim/internal/domain/leaguestanding"
	"github.com/riskibarqy/football-sim/internal/domain/lineup"
	"github.com/riskibarqy/football-sim/internal/domain/records"
)

const (
	MinMorale     = 0
	MaxMorale     = 100
	InitialMorale = 50
)

// Snapshot is a saved career: the user's club state, the running season and
// the records ledger. Shapes are not versioned.
type Snapshot struct {
	ID            string               `json:"id"`
	UserTeam      string               `json:"user_team"`
	Tactic        string               `json:"tactic"`
	Morale        int                  `json:"morale"`
	Money         int64                `json:"money"`
	Round         int                  `json:"round"`
	OpponentIndex int                  `json:"opponent_index"`
	Season        int                  `json:"season"`
	Fixtures      int                  `json:"fixtures"`
	Lineup        lineup.Selection     `json:"lineup"`
	Standings     []leaguestanding.Row `json:"standings"`
	Ledger        records.Snapshot     `json:"ledger"`
	SavedAt       time.Time            `json:"saved_at"`
}

// ClampMorale keeps morale within 0..100.
func ClampMorale(v int) int {
	return min(MaxMorale, max(MinMorale, v))
}

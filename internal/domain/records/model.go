package records

import (
	"errors"
	"time"

	"github.com/riskibarqy/football-sim/internal/domain/player"
)

const DefaultRankingLimit = 5

var ErrEmptySnapshot = errors.New("empty ledger snapshot")

// CareerStat accumulates a player's goals, assists and appearances.
type CareerStat struct {
	Name          string          `json:"name"`
	TeamKey       string          `json:"team_key"`
	Position      player.Position `json:"position"`
	Goals         int             `json:"goals"`
	Assists       int             `json:"assists"`
	MatchesPlayed int             `json:"matches_played"`
}

func (s CareerStat) Key() string {
	return s.TeamKey + "/" + s.Name
}

// GoalRecord is one goal of a logged match.
type GoalRecord struct {
	Minute   int    `json:"minute"`
	TeamKey  string `json:"team_key"`
	Scorer   string `json:"scorer"`
	Assister string `json:"assister,omitempty"`
}

// MatchSummary is one entry of the match log.
type MatchSummary struct {
	ID        string       `json:"id"`
	Season    int          `json:"season"`
	Round     int          `json:"round"`
	HomeTeam  string       `json:"home_team"`
	AwayTeam  string       `json:"away_team"`
	HomeScore int          `json:"home_score"`
	AwayScore int          `json:"away_score"`
	UserMatch bool         `json:"user_match"`
	Stopped   bool         `json:"stopped,omitempty"`
	Goals     []GoalRecord `json:"goals"`
	PlayedAt  time.Time    `json:"played_at"`
}

// Snapshot is the exported ledger state.
type Snapshot struct {
	CareerStats []CareerStat   `json:"career_stats"`
	MatchLog    []MatchSummary `json:"match_log"`
}

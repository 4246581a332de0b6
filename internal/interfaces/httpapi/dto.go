package httpapi

import (
	"time"

	"github.com/riskibarqy/football-sim/internal/domain/career"
	"github.com/riskibarqy/football-sim/internal/domain/leaguestanding"
	"github.com/riskibarqy/football-sim/internal/domain/match"
	"github.com/riskibarqy/football-sim/internal/domain/player"
	"github.com/riskibarqy/football-sim/internal/domain/season"
	"github.com/riskibarqy/football-sim/internal/domain/tactic"
	"github.com/riskibarqy/football-sim/internal/usecase"
)

type startCareerRequest struct {
	TeamKey string `json:"team_key" validate:"required,max=64"`
	Tactic  string `json:"tactic" validate:"omitempty,max=64"`
}

type lineupRequest struct {
	Goalkeeper  string   `json:"goalkeeper" validate:"max=128"`
	Defenders   []string `json:"defenders" validate:"max=4,dive,required"`
	Midfielders []string `json:"midfielders" validate:"max=3,dive,required"`
	Forwards    []string `json:"forwards" validate:"max=3,dive,required"`
}

type changeTacticRequest struct {
	Tactic string `json:"tactic" validate:"required,max=64"`
}

type interviewRequest struct {
	Option int `json:"option" validate:"required,min=1,max=3"`
}

type loadCareerRequest struct {
	CareerID string `json:"career_id" validate:"required,max=128"`
}

type projectionRequest struct {
	Runs int    `json:"runs" validate:"omitempty,min=1,max=5000"`
	Seed uint64 `json:"seed"`
}

type playerDTO struct {
	Name     string  `json:"name"`
	TeamKey  string  `json:"team_key"`
	Position string  `json:"position"`
	Rating   float64 `json:"rating"`
}

type tacticDTO struct {
	Key                string   `json:"key"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	EffectiveAgainst   []string `json:"effective_against"`
	IneffectiveAgainst []string `json:"ineffective_against"`
}

type matchupDTO struct {
	UserTactic     string   `json:"user_tactic"`
	OpponentTactic string   `json:"opponent_tactic"`
	Result         string   `json:"result"`
	Advantage      int      `json:"advantage"`
	MoraleEffect   int      `json:"morale_effect"`
	Description    string   `json:"description"`
	Recommended    []string `json:"recommended_tactics"`
}

type standingDTO struct {
	Position       int    `json:"position"`
	TeamKey        string `json:"team_key"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

type matchSnapshotDTO struct {
	ID         string         `json:"id"`
	HomeTeam   string         `json:"home_team"`
	AwayTeam   string         `json:"away_team"`
	HomeTactic string         `json:"home_tactic"`
	AwayTactic string         `json:"away_tactic"`
	HomeRating float64        `json:"home_rating"`
	AwayRating float64        `json:"away_rating"`
	HomeScore  int            `json:"home_score"`
	AwayScore  int            `json:"away_score"`
	Minute     int            `json:"minute"`
	Status     match.Status   `json:"status"`
	Stopped    bool           `json:"stopped"`
	Events     []match.Record `json:"events"`
}

type matchStateDTO struct {
	Preview usecase.MatchPreview `json:"preview"`
	Match   matchSnapshotDTO     `json:"match"`
	Report  *usecase.MatchReport `json:"report,omitempty"`
}

type tickDTO struct {
	Minute    int                  `json:"minute"`
	Status    match.Status         `json:"status"`
	HomeScore int                  `json:"home_score"`
	AwayScore int                  `json:"away_score"`
	Events    []match.Record       `json:"events"`
	Report    *usecase.MatchReport `json:"report,omitempty"`
}

type settlementDTO struct {
	Season    int           `json:"season"`
	TeamKey   string        `json:"team_key"`
	Rank      int           `json:"rank"`
	Tier      string        `json:"tier"`
	Reward    int64         `json:"reward"`
	Standings []standingDTO `json:"standings"`
}

type savedCareerDTO struct {
	ID       string    `json:"id"`
	UserTeam string    `json:"user_team"`
	Season   int       `json:"season"`
	Round    int       `json:"round"`
	SavedAt  time.Time `json:"saved_at"`
}

func playersToDTO(players []player.Player) []playerDTO {
	out := make([]playerDTO, 0, len(players))
	for _, p := range players {
		out = append(out, playerDTO{Name: p.Name, TeamKey: p.TeamKey, Position: string(p.Position), Rating: p.Rating})
	}
	return out
}

func tacticToDTO(p tactic.Profile) tacticDTO {
	return tacticDTO{
		Key:                p.Key,
		Name:               p.Name,
		Description:        p.Description,
		EffectiveAgainst:   p.EffectiveAgainst,
		IneffectiveAgainst: p.IneffectiveAgainst,
	}
}

func standingsToDTO(items []leaguestanding.Standing) []standingDTO {
	out := make([]standingDTO, 0, len(items))
	for _, s := range items {
		out = append(out, standingDTO{
			Position:       s.Position,
			TeamKey:        s.TeamKey,
			Played:         s.Played,
			Won:            s.Won,
			Drawn:          s.Drawn,
			Lost:           s.Lost,
			GoalsFor:       s.GoalsFor,
			GoalsAgainst:   s.GoalsAgainst,
			GoalDifference: s.GoalDifference,
			Points:         s.Points,
		})
	}
	return out
}

func matchSnapshotToDTO(s match.Snapshot) matchSnapshotDTO {
	return matchSnapshotDTO{
		ID:         s.ID,
		HomeTeam:   s.HomeTeam,
		AwayTeam:   s.AwayTeam,
		HomeTactic: s.HomeTactic,
		AwayTactic: s.AwayTactic,
		HomeRating: s.HomeRating,
		AwayRating: s.AwayRating,
		HomeScore:  s.HomeScore,
		AwayScore:  s.AwayScore,
		Minute:     s.Minute,
		Status:     s.Status,
		Stopped:    s.Stopped,
		Events:     match.ToRecords(s.Events),
	}
}

func tickToDTO(res usecase.TickResult) tickDTO {
	return tickDTO{
		Minute:    res.Minute,
		Status:    res.Status,
		HomeScore: res.HomeScore,
		AwayScore: res.AwayScore,
		Events:    match.ToRecords(res.Events),
		Report:    res.Report,
	}
}

func settlementToDTO(s season.Settlement) settlementDTO {
	return settlementDTO{
		Season:    s.Season,
		TeamKey:   s.TeamKey,
		Rank:      s.Rank,
		Tier:      s.Tier.Name,
		Reward:    s.Reward,
		Standings: standingsToDTO(s.Standings),
	}
}

func savedCareerToDTO(s career.Snapshot) savedCareerDTO {
	return savedCareerDTO{ID: s.ID, UserTeam: s.UserTeam, Season: s.Season, Round: s.Round, SavedAt: s.SavedAt}
}

package leaguestanding

// Row accumulates one team's league record. Points always equals
// 3*Won + Drawn.
type Row struct {
	TeamKey      string `json:"team_key"`
	Played       int    `json:"played"`
	Won          int    `json:"won"`
	Drawn        int    `json:"drawn"`
	Lost         int    `json:"lost"`
	GoalsFor     int    `json:"goals_for"`
	GoalsAgainst int    `json:"goals_against"`
	Points       int    `json:"points"`
}

func (r Row) GoalDifference() int {
	return r.GoalsFor - r.GoalsAgainst
}

func (r *Row) apply(scored, conceded int) {
	r.Played++
	r.GoalsFor += scored
	r.GoalsAgainst += conceded
	switch {
	case scored > conceded:
		r.Won++
		r.Points += 3
	case scored == conceded:
		r.Drawn++
		r.Points++
	default:
		r.Lost++
	}
}

// Standing is a ranked row of the league table.
type Standing struct {
	Position       int
	GoalDifference int
	Row
}

package postgres

import (
	"time"

	"github.com/riskibarqy/football-sim/internal/domain/player"
)

type playerTableModel struct {
	ID        int64     `db:"id"`
	TeamKey   string    `db:"team_key"`
	Name      string    `db:"name"`
	Position  string    `db:"position"`
	Rating    float64   `db:"rating"`
	CreatedAt time.Time `db:"created_at"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		Name:     m.Name,
		TeamKey:  m.TeamKey,
		Position: player.Position(m.Position),
		Rating:   m.Rating,
	}
}

func playersFromRows(rows []playerTableModel) []player.Player {
	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}

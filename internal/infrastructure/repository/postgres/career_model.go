package postgres

import "time"

// careerSnapshotTableModel stores the full snapshot as JSONB; user_team and
// season are copied out for listing.
type careerSnapshotTableModel struct {
	ID       string    `db:"id"`
	UserTeam string    `db:"user_team"`
	Season   int       `db:"season"`
	Payload  string    `db:"payload"`
	SavedAt  time.Time `db:"saved_at"`
}

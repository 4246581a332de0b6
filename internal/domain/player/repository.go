package player

import "context"

// RosterProvider supplies read-only rosters. Unknown team keys yield an empty
// roster rather than an error.
type RosterProvider interface {
	RosterOf(ctx context.Context, teamKey string) []Player
	TeamKeys(ctx context.Context) []string
}

// Repository describes roster persistence needs from loaders.
type Repository interface {
	ListAll(ctx context.Context) ([]Player, error)
	ListByTeam(ctx context.Context, teamKey string) ([]Player, error)
}

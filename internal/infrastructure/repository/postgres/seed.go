package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-sim/internal/infrastructure/repository/memory"
)

// BootstrapSeed fills an empty players table with the seeded clubs.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM players`); err != nil {
		if isUndefinedTable(err) {
			return crerr.Wrap(err, "players table missing, run migrations first")
		}
		return crerr.Wrap(err, "count players for bootstrap seed")
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin seed tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, p := range memory.SeedPlayers() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO players (team_key, name, position, rating)
VALUES (:team_key, :name, :position, :rating)
ON CONFLICT (team_key, name) DO NOTHING`, map[string]any{
			"team_key": p.TeamKey,
			"name":     p.Name,
			"position": string(p.Position),
			"rating":   p.Rating,
		})
		if err != nil {
			return crerr.Wrapf(err, "bind seed player %s query", p.Key())
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return crerr.Wrapf(err, "seed player %s", p.Key())
		}
	}

	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit seed tx")
	}
	return nil
}

package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-sim/internal/domain/player"
	"github.com/riskibarqy/football-sim/internal/platform/logging"
	qb "github.com/riskibarqy/football-sim/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

var playerSelectColumns = qb.Columns(playerTableModel{})

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) ListAll(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select players query")
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select players")
	}
	return playersFromRows(rows), nil
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamKey string) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Eq("team_key", teamKey)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select players by team query")
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "select players by team %s", teamKey)
	}
	return playersFromRows(rows), nil
}

// ListTeamKeys returns team keys in the order their first player was stored.
func (r *PlayerRepository) ListTeamKeys(ctx context.Context) ([]string, error) {
	var keys []string
	const query = `SELECT team_key FROM players GROUP BY team_key ORDER BY MIN(id)`
	if err := r.db.SelectContext(ctx, &keys, query); err != nil {
		return nil, crerr.Wrap(err, "select team keys")
	}
	return keys, nil
}

// RosterProvider adapts PlayerRepository to player.RosterProvider. Query
// failures are logged and surface as an empty roster.
type RosterProvider struct {
	repo   *PlayerRepository
	logger *logging.Logger
}

func NewRosterProvider(repo *PlayerRepository, logger *logging.Logger) *RosterProvider {
	if logger == nil {
		logger = logging.Default()
	}
	return &RosterProvider{repo: repo, logger: logger.Named("postgres.rosters")}
}

func (p *RosterProvider) RosterOf(ctx context.Context, teamKey string) []player.Player {
	players, err := p.repo.ListByTeam(ctx, teamKey)
	if err != nil {
		p.logger.WarnContext(ctx, "load roster failed", "team", teamKey, "error", err)
		return nil
	}
	return players
}

func (p *RosterProvider) TeamKeys(ctx context.Context) []string {
	keys, err := p.repo.ListTeamKeys(ctx)
	if err != nil {
		p.logger.WarnContext(ctx, "load team keys failed", "error", err)
		return nil
	}
	return keys
}

package postgres

import (
	"context"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-sim/internal/domain/career"
	qb "github.com/riskibarqy/football-sim/internal/platform/querybuilder"
)

const careerSnapshotTable = "career_snapshots"

type CareerRepository struct {
	db *sqlx.DB
}

func NewCareerRepository(db *sqlx.DB) *CareerRepository {
	return &CareerRepository{db: db}
}

func (r *CareerRepository) Get(ctx context.Context, id string) (career.Snapshot, bool, error) {
	query, args, err := qb.Select(qb.Columns(careerSnapshotTableModel{})...).From(careerSnapshotTable).
		Where(qb.Eq("id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return career.Snapshot{}, false, crerr.Wrap(err, "build select career snapshot query")
	}

	var row careerSnapshotTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return career.Snapshot{}, false, nil
		}
		return career.Snapshot{}, false, crerr.Wrapf(err, "select career snapshot %s", id)
	}

	snap, err := decodeCareerSnapshot(row)
	if err != nil {
		return career.Snapshot{}, false, err
	}
	return snap, true, nil
}

func (r *CareerRepository) Upsert(ctx context.Context, snapshot career.Snapshot) error {
	row, err := encodeCareerSnapshot(snapshot)
	if err != nil {
		return err
	}

	query, args, err := qb.UpsertModel(careerSnapshotTable, row, "id")
	if err != nil {
		return crerr.Wrap(err, "build upsert career snapshot query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrapf(err, "upsert career snapshot %s", snapshot.ID)
	}
	return nil
}

func (r *CareerRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.DeleteFrom(careerSnapshotTable).
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return crerr.Wrap(err, "build delete career snapshot query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrapf(err, "delete career snapshot %s", id)
	}
	return nil
}

func encodeCareerSnapshot(snapshot career.Snapshot) (careerSnapshotTableModel, error) {
	payload, err := sonic.Marshal(snapshot)
	if err != nil {
		return careerSnapshotTableModel{}, crerr.Wrapf(err, "encode career snapshot %s", snapshot.ID)
	}
	return careerSnapshotTableModel{
		ID:       snapshot.ID,
		UserTeam: snapshot.UserTeam,
		Season:   snapshot.Season,
		Payload:  string(payload),
		SavedAt:  snapshot.SavedAt.UTC(),
	}, nil
}

func decodeCareerSnapshot(row careerSnapshotTableModel) (career.Snapshot, error) {
	var snap career.Snapshot
	if err := sonic.Unmarshal([]byte(row.Payload), &snap); err != nil {
		return career.Snapshot{}, crerr.Wrapf(err, "decode career snapshot %s", row.ID)
	}
	return snap, nil
}

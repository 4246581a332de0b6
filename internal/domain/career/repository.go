package career

import "context"

// Repository persists career snapshots.
type Repository interface {
	Get(ctx context.Context, id string) (Snapshot, bool, error)
	Upsert(ctx context.Context, snapshot Snapshot) error
	Delete(ctx context.Context, id string) error
}

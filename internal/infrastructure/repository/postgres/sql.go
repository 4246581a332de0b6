package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

const pqUndefinedTable = "42P01"

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// isUndefinedTable reports a query against a relation that does not exist,
// usually because migrations were not applied.
func isUndefinedTable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUndefinedTable
	}
	return false
}

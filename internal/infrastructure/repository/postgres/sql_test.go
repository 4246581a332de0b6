package postgres

import (
	"database/sql"
	"errors"
	"testing"

	crerr "github.com/cockroachdb/errors"
	"github.com/lib/pq"
)

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	if !isNotFound(crerr.Wrap(sql.ErrNoRows, "select career snapshot")) {
		t.Fatalf("expected wrapped sql.ErrNoRows to be not found")
	}
	if isNotFound(errors.New("connection reset")) {
		t.Fatalf("expected unrelated error to be found")
	}
	if isNotFound(nil) {
		t.Fatalf("nil error is not a miss")
	}
}

func TestIsUndefinedTable(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want bool
	}{
		{name: "missing relation", err: &pq.Error{Code: "42P01"}, want: true},
		{name: "wrapped missing relation", err: crerr.Wrap(&pq.Error{Code: "42P01"}, "select players"), want: true},
		{name: "unique violation", err: &pq.Error{Code: "23505"}, want: false},
		{name: "plain error", err: errors.New("pq: relation players does not exist"), want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := isUndefinedTable(tc.err); got != tc.want {
				t.Fatalf("isUndefinedTable(%v)=%v want %v", tc.err, got, tc.want)
			}
		})
	}
}

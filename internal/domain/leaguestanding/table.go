package leaguestanding

import (
	"cmp"
	"slices"
	"sync"
)

// Table is the season's league table. Rows are created on first reference and
// keep their registration order for the final tie-break.
type Table struct {
	mu    sync.RWMutex
	rows  map[string]*Row
	order []string
}

func NewTable(teamKeys ...string) *Table {
	t := &Table{rows: make(map[string]*Row, len(teamKeys))}
	t.Register(teamKeys...)
	return t
}

// Register adds zeroed rows for unknown teams.
func (t *Table) Register(teamKeys ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, key := range teamKeys {
		t.row(key)
	}
}

func (t *Table) row(key string) *Row {
	if r, ok := t.rows[key]; ok {
		return r
	}
	r := &Row{TeamKey: key}
	t.rows[key] = r
	t.order = append(t.order, key)
	return r
}

// ApplyResult folds one final score into both teams' rows.
func (t *Table) ApplyResult(teamA, teamB string, scoreA, scoreB int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.row(teamA).apply(scoreA, scoreB)
	t.row(teamB).apply(scoreB, scoreA)
}

func (t *Table) Row(key string) (Row, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	r, ok := t.rows[key]
	if !ok {
		return Row{}, false
	}
	return *r, true
}

// MaxPlayed is the highest match count of any team.
func (t *Table) MaxPlayed() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	played := 0
	for _, r := range t.rows {
		played = max(played, r.Played)
	}
	return played
}

// Standings ranks teams by points, goal difference and goals scored, all
// descending. Teams level on all three keep registration order.
func (t *Table) Standings() []Standing {
	t.mu.RLock()
	out := make([]Standing, 0, len(t.order))
	for _, key := range t.order {
		r := *t.rows[key]
		out = append(out, Standing{Row: r, GoalDifference: r.GoalDifference()})
	}
	t.mu.RUnlock()

	slices.SortStableFunc(out, func(a, b Standing) int {
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		if c := cmp.Compare(b.GoalDifference, a.GoalDifference); c != 0 {
			return c
		}
		return cmp.Compare(b.GoalsFor, a.GoalsFor)
	})
	for i := range out {
		out[i].Position = i + 1
	}
	return out
}

// Rank returns the 1-based table position of a team, or 0 if it has no row.
func (t *Table) Rank(teamKey string) int {
	for _, s := range t.Standings() {
		if s.TeamKey == teamKey {
			return s.Position
		}
	}
	return 0
}

// Reset zeroes every row, keeping the registered teams.
func (t *Table) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, key := range t.order {
		t.rows[key] = &Row{TeamKey: key}
	}
}

// Export returns the rows in registration order.
func (t *Table) Export() []Row {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Row, 0, len(t.order))
	for _, key := range t.order {
		out = append(out, *t.rows[key])
	}
	return out
}

// Import replaces the table with rows, registration order following the slice.
func (t *Table) Import(rows []Row) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rows = make(map[string]*Row, len(rows))
	t.order = t.order[:0]
	for _, r := range rows {
		if _, dup := t.rows[r.TeamKey]; dup {
			continue
		}
		r.Points = 3*r.Won + r.Drawn
		t.rows[r.TeamKey] = &r
		t.order = append(t.order, r.TeamKey)
	}
}

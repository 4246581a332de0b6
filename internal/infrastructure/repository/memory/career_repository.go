package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/riskibarqy/football-sim/internal/domain/career"
	"github.com/riskibarqy/football-sim/internal/domain/records"
)

type CareerRepository struct {
	mu        sync.RWMutex
	snapshots map[string]career.Snapshot
}

func NewCareerRepository() *CareerRepository {
	return &CareerRepository{snapshots: make(map[string]career.Snapshot)}
}

func (r *CareerRepository) Get(_ context.Context, id string) (career.Snapshot, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap, ok := r.snapshots[id]
	if !ok {
		return career.Snapshot{}, false, nil
	}
	return cloneSnapshot(snap), true, nil
}

func (r *CareerRepository) Upsert(_ context.Context, snapshot career.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshots[snapshot.ID] = cloneSnapshot(snapshot)
	return nil
}

func (r *CareerRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.snapshots, id)
	return nil
}

// cloneSnapshot copies every slice so callers cannot mutate stored state.
func cloneSnapshot(s career.Snapshot) career.Snapshot {
	s.Lineup.Defenders = slices.Clone(s.Lineup.Defenders)
	s.Lineup.Midfielders = slices.Clone(s.Lineup.Midfielders)
	s.Lineup.Forwards = slices.Clone(s.Lineup.Forwards)
	s.Standings = slices.Clone(s.Standings)
	s.Ledger.CareerStats = slices.Clone(s.Ledger.CareerStats)
	log := make([]records.MatchSummary, len(s.Ledger.MatchLog))
	for i, m := range s.Ledger.MatchLog {
		m.Goals = slices.Clone(m.Goals)
		log[i] = m
	}
	s.Ledger.MatchLog = log
	return s
}

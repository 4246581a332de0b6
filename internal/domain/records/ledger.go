package records

import (
	"cmp"
	"slices"
	"sync"

	"github.com/riskibarqy/football-sim/internal/domain/player"
)

// Ledger is the aggregate store of per-player career statistics and the
// match log. It is safe for concurrent use.
type Ledger struct {
	mu    sync.RWMutex
	stats map[string]*CareerStat
	log   []MatchSummary
}

func NewLedger() *Ledger {
	return &Ledger{stats: make(map[string]*CareerStat)}
}

// entry registers a player on first reference. Existing records are never
// overwritten. Callers hold the write lock.
func (l *Ledger) entry(p player.Player) *CareerStat {
	key := p.Key()
	if s, ok := l.stats[key]; ok {
		return s
	}
	s := &CareerStat{Name: p.Name, TeamKey: p.TeamKey, Position: p.Position}
	l.stats[key] = s
	return s
}

// RecordGoal credits a goal to scorer and, when present, an assist to assister.
func (l *Ledger) RecordGoal(scorer player.Player, assister *player.Player) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entry(scorer).Goals++
	if assister != nil {
		l.entry(*assister).Assists++
	}
}

func (l *Ledger) RecordAppearance(p player.Player) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entry(p).MatchesPlayed++
}

// RecordLineup records one appearance for every fielded player.
func (l *Ledger) RecordLineup(players []player.Player) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, p := range players {
		l.entry(p).MatchesPlayed++
	}
}

func (l *Ledger) AppendMatch(summary MatchSummary) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.log = append(l.log, summary)
}

func (l *Ledger) Stat(p player.Player) (CareerStat, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	s, ok := l.stats[p.Key()]
	if !ok {
		return CareerStat{}, false
	}
	return *s, true
}

func (l *Ledger) MatchLog() []MatchSummary {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return slices.Clone(l.log)
}

// TopScorers ranks players with at least one goal by goals, then assists.
func (l *Ledger) TopScorers(limit int) []CareerStat {
	return l.rank(limit,
		func(s CareerStat) int { return s.Goals },
		func(s CareerStat) int { return s.Assists },
	)
}

// TopAssisters ranks players with at least one assist by assists, then goals.
func (l *Ledger) TopAssisters(limit int) []CareerStat {
	return l.rank(limit,
		func(s CareerStat) int { return s.Assists },
		func(s CareerStat) int { return s.Goals },
	)
}

func (l *Ledger) rank(limit int, primary, secondary func(CareerStat) int) []CareerStat {
	if limit <= 0 {
		limit = DefaultRankingLimit
	}

	l.mu.RLock()
	out := make([]CareerStat, 0, len(l.stats))
	for _, s := range l.stats {
		if primary(*s) > 0 {
			out = append(out, *s)
		}
	}
	l.mu.RUnlock()

	slices.SortFunc(out, func(a, b CareerStat) int {
		if c := cmp.Compare(primary(b), primary(a)); c != 0 {
			return c
		}
		if c := cmp.Compare(secondary(b), secondary(a)); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.TeamKey, b.TeamKey)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Export returns the full ledger, career stats ordered by team then name.
func (l *Ledger) Export() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	stats := make([]CareerStat, 0, len(l.stats))
	for _, s := range l.stats {
		stats = append(stats, *s)
	}
	slices.SortFunc(stats, func(a, b CareerStat) int {
		return cmp.Compare(a.Key(), b.Key())
	})

	return Snapshot{
		CareerStats: stats,
		MatchLog:    slices.Clone(l.log),
	}
}

// Import replaces the ledger with a snapshot.
func (l *Ledger) Import(snap Snapshot) {
	stats := make(map[string]*CareerStat, len(snap.CareerStats))
	for _, s := range snap.CareerStats {
		stats[s.Key()] = &s
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.stats = stats
	l.log = slices.Clone(snap.MatchLog)
}

// Reset clears all career stats and the match log.
func (l *Ledger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.stats = make(map[string]*CareerStat)
	l.log = nil
}

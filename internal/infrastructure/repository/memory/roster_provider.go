package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/riskibarqy/football-sim/internal/domain/player"
)

// RosterProvider serves rosters from memory. Team keys keep the order in
// which teams first appear in the seed.
type RosterProvider struct {
	mu     sync.RWMutex
	keys   []string
	byTeam map[string][]player.Player
}

func NewRosterProvider(players []player.Player) *RosterProvider {
	r := &RosterProvider{byTeam: make(map[string][]player.Player)}
	for _, p := range players {
		if _, ok := r.byTeam[p.TeamKey]; !ok {
			r.keys = append(r.keys, p.TeamKey)
		}
		r.byTeam[p.TeamKey] = append(r.byTeam[p.TeamKey], p)
	}
	return r
}

func (r *RosterProvider) RosterOf(_ context.Context, teamKey string) []player.Player {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.byTeam[teamKey])
}

func (r *RosterProvider) TeamKeys(context.Context) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.keys)
}

func (r *RosterProvider) ListAll(ctx context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.keys)*18)
	for _, key := range r.keys {
		out = append(out, r.byTeam[key]...)
	}
	return out, nil
}

func (r *RosterProvider) ListByTeam(ctx context.Context, teamKey string) ([]player.Player, error) {
	return r.RosterOf(ctx, teamKey), nil
}

package usecase

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/sourcegraph/conc/pool"
)

const rosterWarmupConcurrency = 4

// WarmRosters loads every club's roster into the roster cache so the first
// match preparation does not pay for it. It returns the number of rosters
// loaded and is a no-op without a cache.
func (s *CareerService) WarmRosters(ctx context.Context) int {
	ctx, span := startUsecaseSpan(ctx, "usecase.CareerService.WarmRosters")
	defer span.End()

	if s.cache == nil {
		return 0
	}

	start := time.Now()
	keys := s.teamKeys(ctx)
	var loaded atomic.Int64

	p := pool.New().WithMaxGoroutines(rosterWarmupConcurrency)
	for _, key := range keys {
		p.Go(func() {
			if ctx.Err() != nil {
				return
			}
			if len(s.roster(ctx, key)) > 0 {
				loaded.Add(1)
			}
		})
	}
	p.Wait()

	s.logger.InfoContext(ctx, "roster cache warmed",
		"teams", len(keys),
		"loaded", loaded.Load(),
		"duration", time.Since(start),
	)
	return int(loaded.Load())
}

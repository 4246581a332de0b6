package publisher

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/riskibarqy/football-sim/internal/domain/match"
	"github.com/riskibarqy/football-sim/internal/platform/resilience"
)

type stubStream struct {
	calls []*redis.XAddArgs
	err   error
}

func (s *stubStream) XAdd(_ context.Context, a *redis.XAddArgs) *redis.StringCmd {
	s.calls = append(s.calls, a)
	if s.err != nil {
		return redis.NewStringResult("", s.err)
	}
	return redis.NewStringResult("1-0", nil)
}

func TestRedisStreamSink_PublishesMatchMessages(t *testing.T) {
	t.Parallel()

	stub := &stubStream{}
	s := NewRedisStreamSink(stub, RedisStreamConfig{Stream: "matches", MaxLen: 1000}, nil)

	s.OnScoreChanged(t.Context(), "m1", 2, 1)
	s.OnMatchEnded(t.Context(), match.Snapshot{ID: "m1", HomeTeam: "napoli", AwayTeam: "inter", HomeScore: 2, AwayScore: 1, Minute: 90})

	if len(stub.calls) != 2 {
		t.Fatalf("expected 2 xadd calls, got %d", len(stub.calls))
	}
	score := stub.calls[0]
	if score.Stream != "matches" || score.MaxLen != 1000 || !score.Approx {
		t.Fatalf("unexpected stream args: %+v", score)
	}
	values := score.Values.(map[string]any)
	if values["type"] != messageScore || values["match_id"] != "m1" {
		t.Fatalf("unexpected values: %v", values)
	}
	if data := values["data"].(string); data != `{"home_score":2,"away_score":1}` {
		t.Fatalf("unexpected payload: %s", data)
	}

	ended := stub.calls[1].Values.(map[string]any)
	if ended["type"] != messageEnded || !strings.Contains(ended["data"].(string), `"home_team":"napoli"`) {
		t.Fatalf("unexpected ended message: %v", ended)
	}
}

func TestRedisStreamSink_BreakerOpensAfterFailures(t *testing.T) {
	t.Parallel()

	stub := &stubStream{err: errors.New("connection refused")}
	s := NewRedisStreamSink(stub, RedisStreamConfig{
		Breaker: resilience.BreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenTrials:   1,
		},
	}, nil)

	for range 2 {
		if err := s.Publish(t.Context(), messageScore, "m1", scorePayload{}); err == nil {
			t.Fatalf("expected publish error")
		}
	}
	err := s.Publish(t.Context(), messageScore, "m1", scorePayload{})
	if !errors.Is(err, resilience.ErrCircuitOpen) {
		t.Fatalf("expected open circuit, got %v", err)
	}
	if len(stub.calls) != 2 {
		t.Fatalf("open circuit must not reach redis, got %d calls", len(stub.calls))
	}
	if stub.calls[0].Stream != defaultStream {
		t.Fatalf("expected default stream, got %s", stub.calls[0].Stream)
	}
}

package publisher

import (
	"context"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/football-sim/internal/domain/match"
	"github.com/riskibarqy/football-sim/internal/platform/logging"
	"github.com/riskibarqy/football-sim/internal/platform/resilience"
)

const (
	defaultStream         = "football-sim.matches"
	defaultPublishTimeout = 500 * time.Millisecond

	messageEvent = "event"
	messageScore = "score"
	messageEnded = "ended"
)

// StreamAdder is the slice of the redis client the sink needs.
type StreamAdder interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

type RedisStreamConfig struct {
	Stream  string
	MaxLen  int64
	Timeout time.Duration
	Breaker resilience.BreakerConfig
}

// RedisStreamSink appends every match callback to a redis stream. Publish
// failures are logged and never interrupt the match.
type RedisStreamSink struct {
	client  StreamAdder
	stream  string
	maxLen  int64
	timeout time.Duration
	breaker *resilience.Breaker
	logger  *logging.Logger
}

func NewRedisStreamSink(client StreamAdder, cfg RedisStreamConfig, logger *logging.Logger) *RedisStreamSink {
	if logger == nil {
		logger = logging.Default()
	}
	stream := strings.TrimSpace(cfg.Stream)
	if stream == "" {
		stream = defaultStream
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}

	logger = logger.Named("redis.stream")
	if cfg.Breaker.OnStateChange == nil {
		cfg.Breaker.OnStateChange = func(from, to resilience.State) {
			logger.Warn("redis stream circuit changed", "stream", stream, "from", from.String(), "to", to.String())
		}
	}

	return &RedisStreamSink{
		client:  client,
		stream:  stream,
		maxLen:  cfg.MaxLen,
		timeout: timeout,
		breaker: resilience.NewBreaker(cfg.Breaker),
		logger:  logger,
	}
}

type scorePayload struct {
	HomeScore int `json:"home_score"`
	AwayScore int `json:"away_score"`
}

type endedPayload struct {
	HomeTeam  string         `json:"home_team"`
	AwayTeam  string         `json:"away_team"`
	HomeScore int            `json:"home_score"`
	AwayScore int            `json:"away_score"`
	Minute    int            `json:"minute"`
	Stopped   bool           `json:"stopped"`
	Goals     []match.Record `json:"goals"`
}

func (s *RedisStreamSink) OnEvent(ctx context.Context, matchID string, e match.Event) {
	s.publish(ctx, messageEvent, matchID, match.ToRecord(e))
}

func (s *RedisStreamSink) OnScoreChanged(ctx context.Context, matchID string, home, away int) {
	s.publish(ctx, messageScore, matchID, scorePayload{HomeScore: home, AwayScore: away})
}

func (s *RedisStreamSink) OnMatchEnded(ctx context.Context, summary match.Snapshot) {
	goals := make([]match.Record, 0, summary.HomeScore+summary.AwayScore)
	for _, g := range summary.Goals() {
		goals = append(goals, match.ToRecord(g))
	}
	s.publish(ctx, messageEnded, summary.ID, endedPayload{
		HomeTeam:  summary.HomeTeam,
		AwayTeam:  summary.AwayTeam,
		HomeScore: summary.HomeScore,
		AwayScore: summary.AwayScore,
		Minute:    summary.Minute,
		Stopped:   summary.Stopped,
		Goals:     goals,
	})
}

func (s *RedisStreamSink) publish(ctx context.Context, kind, matchID string, payload any) {
	if err := s.Publish(ctx, kind, matchID, payload); err != nil {
		s.logger.WarnContext(ctx, "publish match message failed",
			"type", kind,
			"match_id", matchID,
			"stream", s.stream,
			"circuit_state", s.breaker.State().String(),
			"error", err,
		)
	}
}

// Publish appends one message to the stream.
func (s *RedisStreamSink) Publish(ctx context.Context, kind, matchID string, payload any) error {
	data, err := encodePayload(payload)
	if err != nil {
		return crerr.Wrapf(err, "encode %s payload", kind)
	}

	args := &redis.XAddArgs{
		Stream: s.stream,
		Values: map[string]any{
			"type":     kind,
			"match_id": matchID,
			"data":     data,
		},
	}
	if s.maxLen > 0 {
		args.MaxLen = s.maxLen
		args.Approx = true
	}

	return s.breaker.Do(ctx, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()
		if err := s.client.XAdd(ctx, args).Err(); err != nil {
			return crerr.Wrapf(err, "xadd %s", s.stream)
		}
		return nil
	})
}

func encodePayload(payload any) (string, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

package sink

import (
	"context"

	"go.uber.org/zap"

	"github.com/riskibarqy/football-sim/internal/domain/match"
	"github.com/riskibarqy/football-sim/internal/platform/logging"
)

// LogSink renders a match as structured log lines. Routine plays are logged
// at debug so a live match does not flood info output.
type LogSink struct {
	logger *logging.Logger
}

func NewLogSink(logger *logging.Logger) *LogSink {
	if logger == nil {
		logger = logging.Default()
	}
	return &LogSink{logger: logger.Named("match")}
}

func (s *LogSink) OnEvent(ctx context.Context, matchID string, e match.Event) {
	r := match.ToRecord(e)
	fields := []any{
		zap.String("match_id", matchID),
		zap.String("kind", string(r.Kind)),
		zap.Int("minute", r.Minute),
	}
	if r.TeamKey != "" {
		fields = append(fields, zap.String("team", r.TeamKey))
	}

	switch e.(type) {
	case match.Goal:
		fields = append(fields, zap.String("scorer", r.Scorer), zap.String("assister", r.Assister), zap.Any("tags", r.Tags))
		s.logger.InfoContext(ctx, r.Text, fields...)
	case match.Kickoff, match.Final, match.Upset:
		s.logger.InfoContext(ctx, r.Text, fields...)
	default:
		s.logger.DebugContext(ctx, r.Text, fields...)
	}
}

func (s *LogSink) OnScoreChanged(ctx context.Context, matchID string, home, away int) {
	s.logger.InfoContext(ctx, "score changed",
		zap.String("match_id", matchID),
		zap.Int("home_score", home),
		zap.Int("away_score", away),
	)
}

func (s *LogSink) OnMatchEnded(ctx context.Context, summary match.Snapshot) {
	s.logger.InfoContext(ctx, "match ended",
		zap.String("match_id", summary.ID),
		zap.String("home", summary.HomeTeam),
		zap.String("away", summary.AwayTeam),
		zap.Int("home_score", summary.HomeScore),
		zap.Int("away_score", summary.AwayScore),
		zap.Int("minute", summary.Minute),
		zap.Bool("stopped", summary.Stopped),
	)
}

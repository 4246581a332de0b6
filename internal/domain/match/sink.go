package match

import "context"

// Sink receives the event stream of a match as it is produced.
type Sink interface {
	OnEvent(ctx context.Context, matchID string, e Event)
	OnScoreChanged(ctx context.Context, matchID string, home, away int)
	OnMatchEnded(ctx context.Context, summary Snapshot)
}

type NopSink struct{}

func (NopSink) OnEvent(context.Context, string, Event)           {}
func (NopSink) OnScoreChanged(context.Context, string, int, int) {}
func (NopSink) OnMatchEnded(context.Context, Snapshot)           {}

// MultiSink fans every callback out to each sink in order.
type MultiSink []Sink

func (m MultiSink) OnEvent(ctx context.Context, matchID string, e Event) {
	for _, s := range m {
		s.OnEvent(ctx, matchID, e)
	}
}

func (m MultiSink) OnScoreChanged(ctx context.Context, matchID string, home, away int) {
	for _, s := range m {
		s.OnScoreChanged(ctx, matchID, home, away)
	}
}

func (m MultiSink) OnMatchEnded(ctx context.Context, summary Snapshot) {
	for _, s := range m {
		s.OnMatchEnded(ctx, summary)
	}
}

// Publish pushes events to a sink, plus a score change for every goal and the
// match summary once a final whistle is among them.
func Publish(ctx context.Context, sink Sink, m *Match, events []Event) {
	if sink == nil {
		return
	}
	for _, e := range events {
		sink.OnEvent(ctx, m.ID(), e)
		switch ev := e.(type) {
		case Goal:
			sink.OnScoreChanged(ctx, m.ID(), ev.HomeScore, ev.AwayScore)
		case Final:
			sink.OnMatchEnded(ctx, m.Snapshot())
		}
	}
}

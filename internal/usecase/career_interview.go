package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-sim/internal/domain/career"
	"github.com/riskibarqy/football-sim/internal/domain/interview"
)

// InterviewAnswer is the outcome of the post-match press interview.
type InterviewAnswer struct {
	Kind        interview.Kind `json:"kind"`
	Choice      int            `json:"choice"`
	Answer      string         `json:"answer"`
	MoraleDelta int            `json:"morale_delta"`
	Morale      int            `json:"morale"`
}

// PendingInterview returns the question of the last finished match, if it
// has not been answered yet.
func (s *CareerService) PendingInterview(ctx context.Context) (interview.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return interview.Question{}, ErrNoActiveCareer
	}
	if s.state.interview == nil {
		return interview.Question{}, fmt.Errorf("%w: no interview pending", ErrNotFound)
	}
	return *s.state.interview, nil
}

// AnswerInterview applies the morale effect of the chosen answer. Each
// finished match allows one answer; preparing the next match skips it.
func (s *CareerService) AnswerInterview(ctx context.Context, choice int) (InterviewAnswer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CareerService.AnswerInterview")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	if st == nil {
		return InterviewAnswer{}, ErrNoActiveCareer
	}
	if st.interview == nil {
		return InterviewAnswer{}, fmt.Errorf("%w: no interview pending", ErrConflict)
	}
	opt, err := st.interview.Answer(choice)
	if err != nil {
		return InterviewAnswer{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	st.morale = career.ClampMorale(st.morale + opt.Morale)
	out := InterviewAnswer{
		Kind:        st.interview.Kind,
		Choice:      choice,
		Answer:      opt.Text,
		MoraleDelta: opt.Morale,
		Morale:      st.morale,
	}
	st.interview = nil

	s.logger.InfoContext(ctx, "interview answered",
		"career_id", st.id,
		"kind", out.Kind,
		"morale_delta", out.MoraleDelta,
		"morale", out.Morale,
	)
	return out, nil
}

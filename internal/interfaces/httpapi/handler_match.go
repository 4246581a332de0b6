package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/football-sim/internal/domain/match"
	"github.com/riskibarqy/football-sim/internal/usecase"
)

// PrepareMatch sets up the next fixture and performs the kickoff check.
func (h *Handler) PrepareMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PrepareMatch")
	defer span.End()

	preview, err := h.careerService.PrepareMatch(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "prepare match failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, preview)
}

func (h *Handler) GetCurrentMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCurrentMatch")
	defer span.End()

	state, err := h.careerService.CurrentMatch(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchStateDTO{
		Preview: state.Preview,
		Match:   matchSnapshotToDTO(state.Snapshot),
		Report:  state.Report,
	})
}

func (h *Handler) StartMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StartMatch")
	defer span.End()

	events, err := h.careerService.StartMatch(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, match.ToRecords(events))
}

func (h *Handler) TickMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TickMatch")
	defer span.End()

	if h.clock != nil && h.clock.Running() {
		writeError(ctx, w, fmt.Errorf("%w: match is on autoplay", usecase.ErrConflict))
		return
	}
	res, err := h.careerService.Tick(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tickToDTO(res))
}

func (h *Handler) StopMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StopMatch")
	defer span.End()

	if h.clock != nil {
		h.clock.Stop()
	}
	report, err := h.careerService.StopMatch(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, report)
}

// AutoplayMatch hands the running match to the match clock. A match still at
// kickoff is started first.
func (h *Handler) AutoplayMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AutoplayMatch")
	defer span.End()

	if h.clock == nil {
		writeError(ctx, w, fmt.Errorf("%w: match clock is disabled", usecase.ErrDependencyUnavailable))
		return
	}

	state, err := h.careerService.CurrentMatch(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	switch state.Snapshot.Status {
	case match.StatusKickoff:
		if _, err := h.careerService.StartMatch(ctx); err != nil {
			writeError(ctx, w, err)
			return
		}
	case match.StatusRunning:
	default:
		writeError(ctx, w, usecase.ErrMatchNotActive)
		return
	}

	if _, err := h.clock.Autoplay(ctx); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusAccepted, map[string]string{
		"status":   "autoplay",
		"match_id": state.Snapshot.ID,
	})
}

// PlayMatch simulates the next fixture to the final whistle in one call.
func (h *Handler) PlayMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PlayMatch")
	defer span.End()

	if h.clock != nil && h.clock.Running() {
		writeError(ctx, w, fmt.Errorf("%w: match is on autoplay", usecase.ErrConflict))
		return
	}
	report, err := h.careerService.PlayMatch(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, report)
}

func (h *Handler) GetInterview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetInterview")
	defer span.End()

	question, err := h.careerService.PendingInterview(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, question)
}

// AnswerInterview answers the post-match press question by its 1-based
// option number.
func (h *Handler) AnswerInterview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AnswerInterview")
	defer span.End()

	var req interviewRequest
	if err := h.decodeRequest(ctx, r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}

	answer, err := h.careerService.AnswerInterview(ctx, req.Option)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, answer)
}

func (h *Handler) ListMatchLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchLog")
	defer span.End()

	items, err := h.careerService.MatchLog(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

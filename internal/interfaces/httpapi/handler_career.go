package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/football-sim/internal/domain/lineup"
	"github.com/riskibarqy/football-sim/internal/usecase"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.careerService.Teams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teams)
}

func (h *Handler) ListTeamPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamPlayers")
	defer span.End()

	teamKey := strings.TrimSpace(r.PathValue("teamKey"))
	players, err := h.careerService.Roster(ctx, teamKey)
	if err != nil {
		h.logger.WarnContext(ctx, "list team players failed", "team", teamKey, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(players))
}

func (h *Handler) ListTactics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTactics")
	defer span.End()

	profiles := h.careerService.Catalog().Profiles()
	items := make([]tacticDTO, 0, len(profiles))
	for _, p := range profiles {
		items = append(items, tacticToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTacticMatchup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTacticMatchup")
	defer span.End()

	user := strings.TrimSpace(r.URL.Query().Get("user"))
	opponent := strings.TrimSpace(r.URL.Query().Get("opponent"))
	m, recommended, err := h.careerService.TacticMatchup(ctx, user, opponent)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchupDTO{
		UserTactic:     m.UserTactic,
		OpponentTactic: m.OpponentTactic,
		Result:         string(m.Result),
		Advantage:      m.Advantage,
		MoraleEffect:   m.Effect,
		Description:    m.Description,
		Recommended:    recommended,
	})
}

func (h *Handler) StartCareer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StartCareer")
	defer span.End()

	var req startCareerRequest
	if err := h.decodeRequest(ctx, r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.careerService.NewCareer(ctx, usecase.NewCareerInput{TeamKey: req.TeamKey, Tactic: req.Tactic})
	if err != nil {
		h.logger.WarnContext(ctx, "start career failed", "team", req.TeamKey, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, view)
}

func (h *Handler) GetCareer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCareer")
	defer span.End()

	view, err := h.careerService.Career(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, view)
}

func (h *Handler) EndCareer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.EndCareer")
	defer span.End()

	if h.clock != nil {
		h.clock.Stop()
	}
	if err := h.careerService.EndCareer(ctx); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ended"})
}

func (h *Handler) ResetCareer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResetCareer")
	defer span.End()

	if h.clock != nil {
		h.clock.Stop()
	}
	view, err := h.careerService.Reset(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, view)
}

func (h *Handler) SetLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetLineup")
	defer span.End()

	var req lineupRequest
	if err := h.decodeRequest(ctx, r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.careerService.SetLineup(ctx, lineup.Selection{
		Goalkeeper:  strings.TrimSpace(req.Goalkeeper),
		Defenders:   req.Defenders,
		Midfielders: req.Midfielders,
		Forwards:    req.Forwards,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "set lineup failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, view)
}

func (h *Handler) AutoLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AutoLineup")
	defer span.End()

	view, err := h.careerService.AutoLineup(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, view)
}

func (h *Handler) ChangeTactic(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ChangeTactic")
	defer span.End()

	var req changeTacticRequest
	if err := h.decodeRequest(ctx, r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}

	change, err := h.careerService.ChangeTactic(ctx, req.Tactic)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, change)
}

func (h *Handler) SaveCareer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveCareer")
	defer span.End()

	snap, err := h.careerService.Save(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "save career failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, savedCareerToDTO(snap))
}

func (h *Handler) LoadCareer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LoadCareer")
	defer span.End()

	var req loadCareerRequest
	if err := h.decodeRequest(ctx, r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}

	if h.clock != nil {
		h.clock.Stop()
	}
	view, err := h.careerService.Load(ctx, req.CareerID)
	if err != nil {
		h.logger.WarnContext(ctx, "load career failed", "career_id", req.CareerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, view)
}

func (h *Handler) DeleteSavedCareer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteSavedCareer")
	defer span.End()

	careerID := strings.TrimSpace(r.PathValue("careerID"))
	if err := h.careerService.Delete(ctx, careerID); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

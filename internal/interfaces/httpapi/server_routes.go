package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerCatalogRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamKey}/players", handler.ListTeamPlayers)
	mux.HandleFunc("GET /v1/tactics", handler.ListTactics)
	mux.HandleFunc("GET /v1/tactics/matchup", handler.GetTacticMatchup)
}

func registerCareerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/career", handler.StartCareer)
	mux.HandleFunc("GET /v1/career", handler.GetCareer)
	mux.HandleFunc("DELETE /v1/career", handler.EndCareer)
	mux.HandleFunc("POST /v1/career/reset", handler.ResetCareer)
	mux.HandleFunc("PUT /v1/career/lineup", handler.SetLineup)
	mux.HandleFunc("POST /v1/career/lineup/auto", handler.AutoLineup)
	mux.HandleFunc("PUT /v1/career/tactic", handler.ChangeTactic)
	mux.HandleFunc("POST /v1/career/save", handler.SaveCareer)
	mux.HandleFunc("POST /v1/career/load", handler.LoadCareer)
	mux.HandleFunc("DELETE /v1/career/saves/{careerID}", handler.DeleteSavedCareer)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/matches", handler.PrepareMatch)
	mux.HandleFunc("GET /v1/matches/current", handler.GetCurrentMatch)
	mux.HandleFunc("POST /v1/matches/current/start", handler.StartMatch)
	mux.HandleFunc("POST /v1/matches/current/tick", handler.TickMatch)
	mux.HandleFunc("POST /v1/matches/current/stop", handler.StopMatch)
	mux.HandleFunc("POST /v1/matches/current/autoplay", handler.AutoplayMatch)
	mux.HandleFunc("POST /v1/matches/current/play", handler.PlayMatch)
	mux.HandleFunc("GET /v1/matches/current/interview", handler.GetInterview)
	mux.HandleFunc("POST /v1/matches/current/interview", handler.AnswerInterview)
	mux.HandleFunc("GET /v1/matches/log", handler.ListMatchLog)
}

func registerSeasonRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/standings", handler.ListStandings)
	mux.HandleFunc("GET /v1/records/top-scorers", handler.ListTopScorers)
	mux.HandleFunc("GET /v1/records/top-assisters", handler.ListTopAssisters)
	mux.HandleFunc("POST /v1/season/settle", handler.SettleSeason)
	mux.HandleFunc("POST /v1/season/projection", handler.ProjectSeason)
}

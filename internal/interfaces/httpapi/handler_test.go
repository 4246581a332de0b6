package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/football-sim/internal/domain/season"
	"github.com/riskibarqy/football-sim/internal/infrastructure/repository/memory"
	idgen "github.com/riskibarqy/football-sim/internal/platform/id"
	"github.com/riskibarqy/football-sim/internal/platform/logging"
	"github.com/riskibarqy/football-sim/internal/platform/random"
	"github.com/riskibarqy/football-sim/internal/usecase"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	rosters := memory.NewRosterProvider(memory.SeedPlayers())
	careerService := usecase.NewCareerService(
		rosters,
		nil,
		memory.NewCareerRepository(),
		idgen.NewSequence("id"),
		nil,
		nil,
		usecase.CareerServiceConfig{Season: season.DefaultConfig(), Random: random.NewSeeded(42)},
		logging.NewNop(),
	)
	cfg := season.DefaultConfig()
	cfg.FixtureCap = 4
	projectionService := usecase.NewProjectionService(rosters, cfg, 2, logging.NewNop())

	return NewRouter(NewHandler(careerService, projectionService, nil, logging.NewNop()), logging.NewNop(), nil)
}

type apiResponse struct {
	Code int
	Body map[string]any
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) apiResponse {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var decoded map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("%s %s: unmarshal response %q: %v", method, path, rec.Body.String(), err)
	}
	return apiResponse{Code: rec.Code, Body: decoded}
}

func (r apiResponse) data(t *testing.T) map[string]any {
	t.Helper()
	data, ok := r.Body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected object data, got %v", r.Body)
	}
	return data
}

func (r apiResponse) list(t *testing.T) []any {
	t.Helper()
	items, ok := r.Body["data"].([]any)
	if !ok {
		t.Fatalf("expected list data, got %v", r.Body)
	}
	return items
}

func (r apiResponse) errorReason() string {
	errObj, _ := r.Body["error"].(map[string]any)
	items, _ := errObj["errors"].([]any)
	if len(items) == 0 {
		return ""
	}
	first, _ := items[0].(map[string]any)
	reason, _ := first["reason"].(string)
	return reason
}

func (r apiResponse) errorMessage() string {
	errObj, _ := r.Body["error"].(map[string]any)
	msg, _ := errObj["message"].(string)
	return msg
}

func TestHandler_Healthz(t *testing.T) {
	t.Parallel()

	res := doRequest(t, newTestRouter(t), http.MethodGet, "/healthz", "")
	if res.Code != http.StatusOK || res.data(t)["status"] != "ok" {
		t.Fatalf("unexpected health response: %d %v", res.Code, res.Body)
	}
}

func TestHandler_CatalogEndpoints(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	teams := doRequest(t, router, http.MethodGet, "/v1/teams", "")
	if teams.Code != http.StatusOK || len(teams.list(t)) != len(memory.SeedClubs()) {
		t.Fatalf("unexpected teams response: %d %v", teams.Code, teams.Body)
	}

	players := doRequest(t, router, http.MethodGet, "/v1/teams/napoli/players", "")
	if players.Code != http.StatusOK || len(players.list(t)) != 18 {
		t.Fatalf("unexpected players response: %d %v", players.Code, players.Body)
	}

	tactics := doRequest(t, router, http.MethodGet, "/v1/tactics", "")
	if tactics.Code != http.StatusOK || len(tactics.list(t)) == 0 {
		t.Fatalf("unexpected tactics response: %d %v", tactics.Code, tactics.Body)
	}

	unknown := doRequest(t, router, http.MethodGet, "/v1/tactics/matchup?user=gegenpres&opponent=possession", "")
	if unknown.Code != http.StatusNotFound || !strings.Contains(unknown.errorMessage(), "did you mean gegenpress?") {
		t.Fatalf("expected not found with suggestion, got %d %v", unknown.Code, unknown.Body)
	}
}

func TestHandler_StartCareerUnknownTeamSuggests(t *testing.T) {
	t.Parallel()

	res := doRequest(t, newTestRouter(t), http.MethodPost, "/v1/career", `{"team_key":"napol"}`)
	if res.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d %v", res.Code, res.Body)
	}
	if !strings.Contains(res.errorMessage(), "did you mean napoli?") {
		t.Fatalf("expected suggestion in message, got %q", res.errorMessage())
	}
}

func TestHandler_RejectsBadPayloads(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "unknown field", body: `{"team_key":"napoli","stadium":"maradona"}`},
		{name: "missing team", body: `{}`},
		{name: "empty body", body: ""},
		{name: "malformed", body: `{"team_key":`},
	}
	for _, tc := range tests {
		res := doRequest(t, router, http.MethodPost, "/v1/career", tc.body)
		if res.Code != http.StatusBadRequest || res.errorReason() != "invalidInput" {
			t.Fatalf("%s: expected 400 invalidInput, got %d %v", tc.name, res.Code, res.Body)
		}
	}
}

func TestHandler_NoActiveCareer(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	for _, path := range []string{"/v1/career", "/v1/standings", "/v1/records/top-scorers"} {
		res := doRequest(t, router, http.MethodGet, path, "")
		if res.Code != http.StatusConflict || res.errorReason() != "noActiveCareer" {
			t.Fatalf("GET %s: expected 409 noActiveCareer, got %d %v", path, res.Code, res.Body)
		}
	}
}

func TestHandler_IncompleteLineupBlocksKickoff(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	if res := doRequest(t, router, http.MethodPost, "/v1/career", `{"team_key":"napoli"}`); res.Code != http.StatusCreated {
		t.Fatalf("start career: %d %v", res.Code, res.Body)
	}

	cleared := doRequest(t, router, http.MethodPut, "/v1/career/lineup", `{}`)
	if cleared.Code != http.StatusOK {
		t.Fatalf("clear lineup: %d %v", cleared.Code, cleared.Body)
	}
	if got := cleared.data(t)["lineup_shortfall"]; got != float64(11) {
		t.Fatalf("expected shortfall 11, got %v", got)
	}

	res := doRequest(t, router, http.MethodPost, "/v1/matches", "")
	if res.Code != http.StatusBadRequest || res.errorReason() != "incompleteLineup" {
		t.Fatalf("expected 400 incompleteLineup, got %d %v", res.Code, res.Body)
	}

	wrong := doRequest(t, router, http.MethodPut, "/v1/career/lineup", `{"goalkeeper":"Nobody Atall"}`)
	if wrong.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown player, got %d %v", wrong.Code, wrong.Body)
	}
}

func TestHandler_PlayMatchFlow(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	if res := doRequest(t, router, http.MethodPost, "/v1/career", `{"team_key":"napoli","tactic":"gegenpress"}`); res.Code != http.StatusCreated {
		t.Fatalf("start career: %d %v", res.Code, res.Body)
	}

	if res := doRequest(t, router, http.MethodPost, "/v1/matches/current/tick", ""); res.Code != http.StatusConflict || res.errorReason() != "matchNotActive" {
		t.Fatalf("tick without a match: %d %v", res.Code, res.Body)
	}

	preview := doRequest(t, router, http.MethodPost, "/v1/matches", "")
	if preview.Code != http.StatusCreated || preview.data(t)["user_team"] != "napoli" {
		t.Fatalf("prepare match: %d %v", preview.Code, preview.Body)
	}

	started := doRequest(t, router, http.MethodPost, "/v1/matches/current/start", "")
	if started.Code != http.StatusOK {
		t.Fatalf("start match: %d %v", started.Code, started.Body)
	}

	tick := doRequest(t, router, http.MethodPost, "/v1/matches/current/tick", "")
	if tick.Code != http.StatusOK || tick.data(t)["minute"] != float64(1) {
		t.Fatalf("tick: %d %v", tick.Code, tick.Body)
	}

	report := doRequest(t, router, http.MethodPost, "/v1/matches/current/play", "")
	if report.Code != http.StatusOK {
		t.Fatalf("play: %d %v", report.Code, report.Body)
	}
	if result, _ := report.data(t)["result"].(string); result == "" {
		t.Fatalf("expected a result in the report, got %v", report.Body)
	}

	current := doRequest(t, router, http.MethodGet, "/v1/matches/current", "")
	if current.Code != http.StatusOK {
		t.Fatalf("current match: %d %v", current.Code, current.Body)
	}
	matchObj, _ := current.data(t)["match"].(map[string]any)
	if matchObj["status"] != "ended" || matchObj["minute"] != float64(90) {
		t.Fatalf("expected ended match at minute 90, got %v", matchObj)
	}

	standings := doRequest(t, router, http.MethodGet, "/v1/standings", "")
	if standings.Code != http.StatusOK || len(standings.list(t)) != len(memory.SeedClubs()) {
		t.Fatalf("standings: %d %v", standings.Code, standings.Body)
	}

	log := doRequest(t, router, http.MethodGet, "/v1/matches/log", "")
	if log.Code != http.StatusOK || len(log.list(t)) == 0 {
		t.Fatalf("match log: %d %v", log.Code, log.Body)
	}

	if res := doRequest(t, router, http.MethodGet, "/v1/records/top-scorers?limit=0", ""); res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for limit=0, got %d", res.Code)
	}

	settle := doRequest(t, router, http.MethodPost, "/v1/season/settle", "")
	if settle.Code != http.StatusConflict {
		t.Fatalf("settling an unfinished season must conflict, got %d %v", settle.Code, settle.Body)
	}
}

func TestHandler_SaveAndLoadCareer(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	if res := doRequest(t, router, http.MethodPost, "/v1/career", `{"team_key":"inter"}`); res.Code != http.StatusCreated {
		t.Fatalf("start career: %d %v", res.Code, res.Body)
	}
	saved := doRequest(t, router, http.MethodPost, "/v1/career/save", "")
	if saved.Code != http.StatusOK {
		t.Fatalf("save: %d %v", saved.Code, saved.Body)
	}
	careerID, _ := saved.data(t)["id"].(string)
	if careerID == "" {
		t.Fatalf("expected saved career id, got %v", saved.Body)
	}

	if res := doRequest(t, router, http.MethodDelete, "/v1/career", ""); res.Code != http.StatusOK {
		t.Fatalf("end career: %d %v", res.Code, res.Body)
	}

	loaded := doRequest(t, router, http.MethodPost, "/v1/career/load", `{"career_id":"`+careerID+`"}`)
	if loaded.Code != http.StatusOK || loaded.data(t)["user_team"] != "inter" {
		t.Fatalf("load: %d %v", loaded.Code, loaded.Body)
	}

	missing := doRequest(t, router, http.MethodPost, "/v1/career/load", `{"career_id":"nope"}`)
	if missing.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown save, got %d %v", missing.Code, missing.Body)
	}
}

func TestHandler_ProjectSeason(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	res := doRequest(t, router, http.MethodPost, "/v1/season/projection", `{"runs":4,"seed":3}`)
	if res.Code != http.StatusOK {
		t.Fatalf("projection: %d %v", res.Code, res.Body)
	}
	data := res.data(t)
	if data["runs"] != float64(4) || data["fixture_cap"] != float64(4) {
		t.Fatalf("unexpected projection header: %v", data)
	}
	teams, _ := data["teams"].([]any)
	if len(teams) != len(memory.SeedClubs()) {
		t.Fatalf("expected every club projected, got %d", len(teams))
	}

	if bad := doRequest(t, router, http.MethodPost, "/v1/season/projection", `{"runs":-1}`); bad.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative runs, got %d", bad.Code)
	}
}

func TestHandler_AutoplayWithoutClock(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	res := doRequest(t, router, http.MethodPost, "/v1/matches/current/autoplay", "")
	if res.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without a match clock, got %d %v", res.Code, res.Body)
	}
}

func TestHandler_PostMatchInterview(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	if res := doRequest(t, router, http.MethodPost, "/v1/career", `{"team_key":"napoli"}`); res.Code != http.StatusCreated {
		t.Fatalf("start career: %d %v", res.Code, res.Body)
	}
	if res := doRequest(t, router, http.MethodGet, "/v1/matches/current/interview", ""); res.Code != http.StatusNotFound {
		t.Fatalf("expected no interview before a match, got %d %v", res.Code, res.Body)
	}

	report := doRequest(t, router, http.MethodPost, "/v1/matches/current/play", "")
	if report.Code != http.StatusOK {
		t.Fatalf("play: %d %v", report.Code, report.Body)
	}
	morale, _ := report.data(t)["morale"].(float64)

	question := doRequest(t, router, http.MethodGet, "/v1/matches/current/interview", "")
	if question.Code != http.StatusOK {
		t.Fatalf("interview: %d %v", question.Code, question.Body)
	}
	options, _ := question.data(t)["options"].([]any)
	if len(options) != 3 || question.data(t)["question"] == "" {
		t.Fatalf("expected a question with three options, got %v", question.Body)
	}
	second, _ := options[1].(map[string]any)
	delta, _ := second["morale"].(float64)

	if res := doRequest(t, router, http.MethodPost, "/v1/matches/current/interview", `{"option":0}`); res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for option 0, got %d %v", res.Code, res.Body)
	}

	answer := doRequest(t, router, http.MethodPost, "/v1/matches/current/interview", `{"option":2}`)
	if answer.Code != http.StatusOK {
		t.Fatalf("answer: %d %v", answer.Code, answer.Body)
	}
	want := min(100, max(0, morale+delta))
	if got := answer.data(t)["morale"]; got != want || answer.data(t)["morale_delta"] != delta {
		t.Fatalf("expected morale %v after delta %v, got %v", want, delta, answer.Body)
	}

	if res := doRequest(t, router, http.MethodPost, "/v1/matches/current/interview", `{"option":1}`); res.Code != http.StatusConflict || res.errorReason() != "conflict" {
		t.Fatalf("expected 409 for a second answer, got %d %v", res.Code, res.Body)
	}
}

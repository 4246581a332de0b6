package main

import (
	"strings"
	"testing"

	"github.com/riskibarqy/football-sim/internal/config"
	"github.com/riskibarqy/football-sim/internal/platform/logging"
)

func testConfig(fixtureCap int) config.Config {
	return config.Config{
		SimFixtureCap:       fixtureCap,
		SimRewardChampion:   1500,
		SimRewardUpper:      1000,
		SimRewardMid:        500,
		SimRewardRelegation: 200,
	}
}

func TestRun_PlaysRoundsAndPrintsTables(t *testing.T) {
	var out strings.Builder
	opts := options{team: "napoli", rounds: 3, seed: 11, top: 5}

	if err := run(t.Context(), testConfig(36), opts, &out, logging.NewNop()); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := out.String()
	for _, want := range []string{"napoli", "round  3", "Pts", "scorer"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output:\n%s", want, got)
		}
	}
	if strings.Contains(got, "round  4") {
		t.Fatalf("played more rounds than asked:\n%s", got)
	}
}

func TestRun_SameSeedSameSeason(t *testing.T) {
	opts := options{team: "inter", rounds: 2, seed: 99, top: 3}

	var first, second strings.Builder
	if err := run(t.Context(), testConfig(36), opts, &first, logging.NewNop()); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := run(t.Context(), testConfig(36), opts, &second, logging.NewNop()); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if first.String() != second.String() {
		t.Fatalf("same seed produced different seasons:\n%s\n---\n%s", first.String(), second.String())
	}
}

func TestRun_SettlesCompletedSeason(t *testing.T) {
	var out strings.Builder
	opts := options{team: "napoli", rounds: 10, seed: 5, top: 3, settle: true}

	if err := run(t.Context(), testConfig(2), opts, &out, logging.NewNop()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "season 1 settled") {
		t.Fatalf("expected settlement line, got:\n%s", out.String())
	}
}

func TestRun_UnknownTeamSuggests(t *testing.T) {
	var out strings.Builder
	opts := options{team: "napol", rounds: 1, seed: 1}

	err := run(t.Context(), testConfig(36), opts, &out, logging.NewNop())
	if err == nil || !strings.Contains(err.Error(), "did you mean napoli?") {
		t.Fatalf("expected suggestion error, got %v", err)
	}
}

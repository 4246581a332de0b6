package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/joho/godotenv"

	"github.com/riskibarqy/football-sim/internal/app"
	"github.com/riskibarqy/football-sim/internal/config"
	"github.com/riskibarqy/football-sim/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-sim/internal/platform/logging"
	"github.com/riskibarqy/football-sim/internal/platform/random"
	"github.com/riskibarqy/football-sim/internal/usecase"
)

type options struct {
	team   string
	tactic string
	rounds int
	seed   uint64
	top    int
	settle bool
	debug  bool
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	opts := options{}
	flag.StringVar(&opts.team, "team", "napoli", "club key to manage")
	flag.StringVar(&opts.tactic, "tactic", "", "tactic key; empty uses the club default")
	flag.IntVar(&opts.rounds, "rounds", cfg.SimFixtureCap, "rounds to play; stops early when the season completes")
	flag.Uint64Var(&opts.seed, "seed", app.SimulationSeed(cfg), "random seed")
	flag.IntVar(&opts.top, "top", 10, "rows in the top scorer table")
	flag.BoolVar(&opts.settle, "settle", false, "settle the season once it completes")
	flag.BoolVar(&opts.debug, "debug", false, "log every match event")
	flag.Parse()

	level := logging.LevelWarn
	if opts.debug {
		level = logging.LevelDebug
	}
	logger := logging.NewConsole(level)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, opts, os.Stdout, logger); err != nil {
		fmt.Fprintln(os.Stderr, "season:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, opts options, out io.Writer, logger *logging.Logger) error {
	if opts.rounds < 1 {
		return fmt.Errorf("rounds must be >= 1")
	}
	seasonCfg, err := app.SeasonConfig(cfg)
	if err != nil {
		return err
	}

	svc := usecase.NewCareerService(
		memory.NewRosterProvider(memory.SeedPlayers()),
		nil,
		memory.NewCareerRepository(),
		nil,
		nil,
		nil,
		usecase.CareerServiceConfig{Season: seasonCfg, Random: random.NewSeeded(opts.seed)},
		logger,
	)

	view, err := svc.NewCareer(ctx, usecase.NewCareerInput{TeamKey: opts.team, Tactic: opts.tactic})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s (%s), seed %d\n\n", view.UserTeam, view.Tactic, opts.seed)

	played := 0
	for played < opts.rounds {
		report, err := svc.PlayMatch(ctx)
		if err != nil {
			return fmt.Errorf("round %d: %w", played+1, err)
		}
		played++
		fmt.Fprintf(out, "round %2d  %-12s %d-%d  %-5s morale %3d  money %d\n",
			played, report.Opponent, report.HomeScore, report.AwayScore, report.Result, report.Morale, report.Money)
		if report.SeasonComplete {
			break
		}
	}

	standings, err := svc.Standings(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "#\tteam\tP\tW\tD\tL\tGF\tGA\tGD\tPts\t")
	for _, s := range standings {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%+d\t%d\t\n",
			s.Position, s.TeamKey, s.Played, s.Won, s.Drawn, s.Lost, s.GoalsFor, s.GoalsAgainst, s.GoalDifference, s.Points)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	scorers, err := svc.TopScorers(ctx, opts.top)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	tw = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "scorer\tteam\tgoals\tassists\tapps")
	for _, s := range scorers {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\n", s.Name, s.TeamKey, s.Goals, s.Assists, s.MatchesPlayed)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if !opts.settle {
		return nil
	}
	settlement, err := svc.SettleSeason(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nseason %d settled: rank %d, tier %s, reward %d\n",
		settlement.Season, settlement.Rank, settlement.Tier.Name, settlement.Reward)
	return nil
}

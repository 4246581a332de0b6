package observability

import (
	"context"
	"errors"
	"net/http"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/football-sim/internal/config"
	"github.com/riskibarqy/football-sim/internal/platform/logging"
)

// Telemetry owns the process-wide tracing and profiling hooks.
type Telemetry struct {
	logger          *logging.Logger
	shutdownTracing func(context.Context) error
	stopProfiler    func() error
	pprofServer     *http.Server
}

// Start enables whatever cfg turns on. On error everything already started is
// torn down again.
func Start(cfg config.Config, logger *logging.Logger) (*Telemetry, error) {
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("observability")

	shutdownTracing, err := InitUptrace(cfg, logger)
	if err != nil {
		return nil, crerr.Wrap(err, "init uptrace")
	}

	stopProfiler, err := initPyroscope(cfg, logger)
	if err != nil {
		_ = shutdownTracing(context.Background())
		return nil, crerr.Wrap(err, "init pyroscope")
	}

	return &Telemetry{
		logger:          logger,
		shutdownTracing: shutdownTracing,
		stopProfiler:    stopProfiler,
		pprofServer:     startPprofServer(cfg, logger),
	}, nil
}

func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}

	var errs []error
	if err := stopPprofServer(ctx, t.pprofServer, t.logger); err != nil {
		errs = append(errs, crerr.Wrap(err, "stop pprof server"))
	}
	if err := t.stopProfiler(); err != nil {
		errs = append(errs, crerr.Wrap(err, "stop pyroscope"))
	}
	if err := t.shutdownTracing(ctx); err != nil {
		errs = append(errs, crerr.Wrap(err, "shutdown uptrace"))
	}
	return errors.Join(errs...)
}

package httpapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/football-sim/internal/platform/logging"
	"github.com/riskibarqy/football-sim/internal/scheduler"
	"github.com/riskibarqy/football-sim/internal/usecase"
)

const (
	defaultRecordsLimit = 10
	maxRecordsLimit     = 100
	maxBodyBytes        = 1 << 20
)

type Handler struct {
	careerService     *usecase.CareerService
	projectionService *usecase.ProjectionService
	clock             *scheduler.MatchClock
	logger            *logging.Logger
	validator         *validator.Validate
}

// NewHandler wires the API handlers. clock may be nil, in which case
// autoplay is unavailable.
func NewHandler(
	careerService *usecase.CareerService,
	projectionService *usecase.ProjectionService,
	clock *scheduler.MatchClock,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		careerService:     careerService,
		projectionService: projectionService,
		clock:             clock,
		logger:            logger.Named("http.handler"),
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

var strictJSON = sonic.Config{DisallowUnknownFields: true}.Froze()

// decodeRequest reads a JSON body into dst and validates it. An empty body
// is accepted when allowEmpty is set and leaves dst untouched.
func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, dst any, allowEmpty bool) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: read body: %v", usecase.ErrInvalidInput, err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		if !allowEmpty {
			return fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
		}
	} else if err := strictJSON.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, dst)
}

func parseLimit(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("limit"))
	if raw == "" {
		return defaultRecordsLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > maxRecordsLimit {
		return 0, fmt.Errorf("%w: limit must be between 1 and %d", usecase.ErrInvalidInput, maxRecordsLimit)
	}
	return limit, nil
}

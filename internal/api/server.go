package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/example/study-planner/internal/logger"
	"github.com/example/study-planner/internal/models"
)

const maxBodyBytes = 16 << 10

// PlanGenerator is the orchestrator surface the handlers need.
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, req models.PlanRequest) *models.StudyPlan
}

type Options struct {
	AllowOrigin    string
	RateLimitRPS   float64
	RateLimitBurst int
}

type Server struct {
	gen     PlanGenerator
	log     *logger.Logger
	opts    Options
	limiter func(http.Handler) http.Handler
}

func NewServer(gen PlanGenerator, log *logger.Logger, opts Options) *Server {
	if log == nil {
		log = logger.Nop()
	}
	if opts.AllowOrigin == "" {
		opts.AllowOrigin = "*"
	}
	return &Server{
		gen:     gen,
		log:     log,
		opts:    opts,
		limiter: rateLimit(opts.RateLimitRPS, opts.RateLimitBurst),
	}
}

// RegisterRoutes mounts the handlers. Only the plan routes are rate limited;
// health checks always answer.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	plan := s.limiter(http.HandlerFunc(s.handlePlan))

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("POST /plan", plan)
	mux.Handle("POST /api/plan", plan)
}

// Handler returns the routes wrapped in the middleware chain, outermost first:
// request ID, access log, CORS.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)

	var h http.Handler = mux
	h = cors(s.opts.AllowOrigin)(h)
	h = accessLog(s.log)(h)
	h = requestID(h)
	return h
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	log := s.log.With("request_id", RequestIDFrom(r.Context()))

	in, err := decodePlanInput(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		log.Warn("plan request rejected", "error", err.Error())
		respondJSON(w, http.StatusInternalServerError, map[string]any{"ok": false, "error": "plan_generation_failed"})
		return
	}

	plan := s.gen.GeneratePlan(r.Context(), in.Request())
	respondJSON(w, http.StatusOK, map[string]any{"ok": true, "plan": plan})
}

func decodePlanInput(body io.Reader) (models.PlanInput, error) {
	var in models.PlanInput
	raw, err := io.ReadAll(body)
	if err != nil {
		return in, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return in, nil
	}
	if err := json.Unmarshal(raw, &in); err != nil {
		return in, err
	}
	return in, nil
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// ListenAndServe serves h on addr until ctx is cancelled, then drains
// in-flight requests for up to shutdownTimeout.
func ListenAndServe(ctx context.Context, addr string, h http.Handler, log *logger.Logger, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", "timeout", shutdownTimeout.String())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

package orchestrator

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/example/study-planner/internal/agents"
	"github.com/example/study-planner/internal/logger"
	"github.com/example/study-planner/internal/models"
	"github.com/example/study-planner/internal/providers/llm"
)

// DefaultTimeout bounds a single vendor call when none is configured.
const DefaultTimeout = 45 * time.Second

// Orchestrator runs the vendor planner and substitutes the local plan on any
// failure. GeneratePlan never returns an error.
type Orchestrator struct {
	Planner  agents.Planner
	Fallback agents.Planner
	Verifier agents.Verifier
	Logger   *logger.Logger
	Timeout  time.Duration

	validate *validator.Validate
}

func New(planner agents.Planner, verifier agents.Verifier, log *logger.Logger, timeout time.Duration) *Orchestrator {
	if log == nil {
		log = logger.Nop()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Orchestrator{
		Planner:  planner,
		Fallback: agents.LocalPlanner{},
		Verifier: verifier,
		Logger:   log,
		Timeout:  timeout,
		validate: validator.New(),
	}
}

// GeneratePlan returns a plan that has at least one block and titled blocks.
func (o *Orchestrator) GeneratePlan(ctx context.Context, req models.PlanRequest) *models.StudyPlan {
	start := time.Now()
	log := o.Logger

	if err := o.validate.Struct(req); err != nil {
		log.Warn("invalid plan request, using local plan", "error", err.Error())
		return o.local(ctx, req)
	}
	if o.Planner == nil {
		return o.local(ctx, req)
	}

	plan, err := o.vendorPlan(ctx, req)
	switch {
	case err == nil:
	case agents.IsAuthError(err):
		log.Debug("no vendor credential, using local plan", "error", err.Error())
		return o.local(ctx, req)
	default:
		log.Warn("vendor plan failed, using local plan",
			"error_kind", llm.ErrorKind(err),
			"error", err.Error(),
			"latency_ms", time.Since(start).Milliseconds(),
		)
		return o.local(ctx, req)
	}

	if o.Verifier != nil {
		if ok, reason := o.Verifier.Verify(ctx, plan); !ok {
			log.Warn("vendor plan rejected, using local plan", "source", plan.Source, "reason", reason)
			return o.local(ctx, req)
		}
	}

	log.Info("plan generated",
		"source", plan.Source,
		"blocks", len(plan.Blocks),
		"latency_ms", time.Since(start).Milliseconds(),
	)
	return plan
}

func (o *Orchestrator) vendorPlan(ctx context.Context, req models.PlanRequest) (plan *models.StudyPlan, err error) {
	ctx, cancel := context.WithTimeout(ctx, o.Timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			plan, err = nil, &panicError{value: r}
		}
	}()
	plan, err = o.Planner.Plan(ctx, req)
	if err == nil && plan == nil {
		err = errNilPlan
	}
	return plan, err
}

func (o *Orchestrator) local(ctx context.Context, req models.PlanRequest) *models.StudyPlan {
	if o.Fallback != nil {
		if plan, err := o.Fallback.Plan(ctx, req); err == nil && plan != nil {
			return plan
		}
	}
	return agents.Synthesize(req)
}

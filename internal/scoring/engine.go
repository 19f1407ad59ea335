// Package scoring runs every registered parameter against a résumé and
// aggregates the results into a composite score.
package scoring

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-resume-scorer/internal/feedback"
	"github.com/jonathan/ats-resume-scorer/internal/keywords"
	"github.com/jonathan/ats-resume-scorer/internal/parameters"
	"github.com/jonathan/ats-resume-scorer/internal/parsing"
	"github.com/jonathan/ats-resume-scorer/internal/types"
)

// Defaults applied when no option overrides them
const (
	DefaultTimeout = 2 * time.Second
	DefaultTopN    = 5
)

// Request is one scoring call. Job may be nil.
type Request struct {
	Resume *types.ResumeSignal
	Job    *types.JobRequirement
	Level  types.ExperienceLevel
	Role   string
}

// Engine evaluates the registry against résumés. It holds no per-call
// state and may be shared between goroutines.
type Engine struct {
	registry    *parameters.Registry
	dictionary  *keywords.Dictionary
	logger      *zap.Logger
	now         func() time.Time
	timeout     time.Duration
	workers     int
	topN        int
	countErrors bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for per-parameter diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithClock sets the source of the evaluation date.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithTimeout bounds each parameter evaluation.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithWorkers limits how many parameters evaluate at once.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithTopN sets how many strengths and weaknesses are reported.
func WithTopN(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.topN = n
		}
	}
}

// WithCountErrors controls whether parameters that failed still add
// their maximum to the available points.
func WithCountErrors(count bool) Option {
	return func(e *Engine) {
		e.countErrors = count
	}
}

// NewEngine creates an engine over a registry. The dictionary supplies
// role defaults when a request carries no job keywords and may be nil.
func NewEngine(registry *parameters.Registry, dictionary *keywords.Dictionary, opts ...Option) *Engine {
	e := &Engine{
		registry:    registry,
		dictionary:  dictionary,
		logger:      zap.NewNop(),
		now:         time.Now,
		timeout:     DefaultTimeout,
		workers:     runtime.NumCPU(),
		topN:        DefaultTopN,
		countErrors: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Score evaluates every parameter and aggregates the outcome. It returns
// an error only for an invalid request or a cancelled context; failures
// inside individual parameters are reported in the result.
func (e *Engine) Score(ctx context.Context, req Request) (*types.ScoringResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.Resume == nil {
		return nil, &ValidationError{Field: "resume", Message: "resume is required"}
	}
	if !req.Level.Valid() {
		return nil, &ValidationError{Field: "level", Message: fmt.Sprintf("unsupported experience level %q", req.Level)}
	}

	view := e.buildView(req)
	defs := e.registry.Definitions()
	results := make([]types.ParameterResult, len(defs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, def := range defs {
		g.Go(func() error {
			res, err := e.evaluate(gCtx, def, view)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	agg := Aggregate(results, e.countErrors)
	result := &types.ScoringResult{
		RawScore:        agg.RawScore,
		MaxAvailable:    agg.MaxAvailable,
		NormalizedScore: agg.NormalizedScore,
		Rating:          RatingFor(agg.NormalizedScore),
		Level:           req.Level,
		Role:            view.Role,
		KeywordSource:   view.KeywordSource,
		Categories:      agg.Categories,
		Parameters:      results,
		Feedback:        feedback.Build(results, e.topN),
	}

	e.logger.Debug("scoring complete",
		zap.Float64("normalized_score", result.NormalizedScore),
		zap.String("rating", string(result.Rating)),
		zap.Int("max_available", result.MaxAvailable),
	)
	return result, nil
}

// buildView resolves the keyword lists, preferring the job's own lists
// over role defaults.
func (e *Engine) buildView(req Request) *parameters.View {
	view := &parameters.View{
		Resume:        req.Resume,
		Level:         req.Level,
		Role:          req.Role,
		KeywordSource: types.KeywordSourceNone,
		Now:           e.now(),
	}

	job := parsing.NormalizeJobRequirement(req.Job)
	switch {
	case !job.IsEmpty():
		view.Required = job.RequiredKeywords
		view.Preferred = job.PreferredKeywords
		view.KeywordSource = types.KeywordSourceJob
	case e.dictionary != nil:
		defaults, role := e.dictionary.Lookup(req.Role, req.Level)
		view.Required = defaults.RequiredKeywords
		view.Preferred = defaults.PreferredKeywords
		view.Role = role
		view.KeywordSource = types.KeywordSourceRoleDefault
	}
	return view
}

type outcome struct {
	res parameters.Result
	err error
}

// evaluate runs one parameter. Only cancellation of ctx is returned as an
// error; everything else is folded into the result status.
func (e *Engine) evaluate(ctx context.Context, def parameters.Definition, view *parameters.View) (types.ParameterResult, error) {
	pr := types.ParameterResult{
		ID:       def.ID,
		Name:     def.Name,
		Category: def.Category,
		MaxScore: def.MaxScore,
	}
	log := e.logger.With(zap.String("parameter", string(def.ID)))

	if missing := def.MissingInputs(view); len(missing) > 0 {
		pr.Status = types.StatusSkipped
		pr.Message = parameters.MissingInputError(missing).Error()
		log.Debug("parameter skipped", zap.String("status", string(pr.Status)), zap.String("reason", pr.Message))
		return pr, nil
	}

	start := time.Now()
	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: errors.Errorf("panic: %v", r)}
			}
		}()
		res, err := def.Scorer.Evaluate(view)
		done <- outcome{res: res, err: err}
	}()

	timer := time.NewTimer(e.timeout)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return pr, ctx.Err()
	case <-timer.C:
		pr.Status = types.StatusSkipped
		pr.Message = "timed out"
		log.Warn("parameter timed out", zap.String("status", string(pr.Status)), zap.Duration("duration", time.Since(start)))
		return pr, nil
	case out := <-done:
		duration := time.Since(start)
		if out.err != nil {
			pr.Status = types.StatusError
			pr.Message = out.err.Error()
			log.Warn("parameter failed", zap.String("status", string(pr.Status)), zap.Duration("duration", duration), zap.Error(out.err))
			return pr, nil
		}
		pr.Status = types.StatusSuccess
		pr.Score = Clamp(out.res.Score, def.MaxScore)
		pr.Message = out.res.Message
		pr.Details = out.res.Details
		log.Debug("parameter evaluated",
			zap.String("status", string(pr.Status)),
			zap.Float64("score", pr.Score),
			zap.Duration("duration", duration),
		)
		return pr, nil
	}
}

// Clamp bounds a score to [0, maxScore] and rounds it to two decimals.
// NaN scores become zero.
func Clamp(score float64, maxScore int) float64 {
	if math.IsNaN(score) || score < 0 {
		return 0
	}
	if score > float64(maxScore) {
		return float64(maxScore)
	}
	return round2(score)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

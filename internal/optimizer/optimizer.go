// Package optimizer runs the bounded score-dispatch-rescore loop that drives
// a résumé toward a target match score.
package optimizer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-optimizer/internal/agent"
	"github.com/jonathan/resume-optimizer/internal/config"
	"github.com/jonathan/resume-optimizer/internal/recommend"
	"github.com/jonathan/resume-optimizer/internal/scoring"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// Evaluation is one extraction-and-matching pass over a résumé document
// against the run's job elements.
type Evaluation struct {
	ResumeElements []types.TaggedElement
	Matches        []types.SemanticMatch
}

// Evaluator produces résumé elements and semantic matches for a document.
// The semantic package provides the production implementation.
type Evaluator interface {
	Evaluate(ctx context.Context, resume *types.ResumeDocument) (*Evaluation, error)
}

// WriterDispatcher dispatches a rewrite request to the rewriting collaborator.
// *agent.Client satisfies it.
type WriterDispatcher interface {
	SendToWriter(ctx context.Context, req *types.ResumeWriterRequest) (*agent.Result, error)
}

// JobContext is the fixed job-side input of one optimization run.
type JobContext struct {
	ID       string
	Elements []types.TaggedElement
	Themes   []types.Theme
}

// Controller owns the optimization loop for one configuration. Each Run call
// owns its own snapshot history, so a Controller may be reused across runs.
type Controller struct {
	cfg       *config.Config
	scorer    *scoring.Scorer
	generator *recommend.Generator
	evaluator Evaluator
	writer    WriterDispatcher
	logger    *zap.Logger
}

// NewController validates the configuration and wires the loop's
// collaborators. An invalid configuration or missing collaborator is fatal
// here, before any run starts.
func NewController(cfg *config.Config, evaluator Evaluator, writer WriterDispatcher, logger *zap.Logger) (*Controller, error) {
	if cfg == nil {
		return nil, &config.Error{Message: "configuration is required"}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if evaluator == nil {
		return nil, &config.Error{Field: "evaluator", Message: "is required"}
	}
	if writer == nil {
		return nil, &config.Error{Field: "writer", Message: "is required"}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Controller{
		cfg:       cfg,
		scorer:    scoring.NewScorer(cfg.DimensionWeights),
		generator: recommend.NewGenerator(),
		evaluator: evaluator,
		writer:    writer,
		logger:    logger,
	}, nil
}

// Run executes the optimization loop: score the initial document, then
// repeatedly dispatch recommendations to the writer and rescore the revision
// until the target is reached, the round budget is spent, improvement stalls,
// or the writer fails. The returned result is always populated; when err is
// non-nil it describes why the run ended early and the result holds every
// round completed before that.
func (c *Controller) Run(ctx context.Context, resume types.ResumeDocument, job JobContext) (*types.OptimizationResult, error) {
	result := &types.OptimizationResult{Iterations: make([]types.IterationSnapshot, 0, c.cfg.MaxIterations)}

	state, err := c.evaluateRound(ctx, &resume, job, 1)
	if err != nil {
		result.TerminationReason = types.TerminationAgentFailure
		c.finalize(result)
		return result, err
	}
	result.Iterations = append(result.Iterations, types.IterationSnapshot{
		ScoreBefore:     state.score,
		ScoreAfter:      state.score,
		Recommendations: state.recommendations,
		Timestamp:       time.Now().UTC(),
	})
	c.logger.Info("initial score computed",
		zap.String("job_id", job.ID),
		zap.Float64("score", state.score),
		zap.Float64("target", c.cfg.TargetScore))

	bestScore := state.score
	staleRounds := 0

	for {
		switch {
		case state.score >= c.cfg.TargetScore:
			result.TerminationReason = types.TerminationTargetReached
			c.finalize(result)
			return result, nil
		case len(result.Iterations) >= c.cfg.MaxIterations:
			result.TerminationReason = types.TerminationMaxRounds
			c.finalize(result)
			return result, nil
		case staleRounds >= c.cfg.EarlyStoppingRounds:
			result.TerminationReason = types.TerminationNoImprovement
			c.finalize(result)
			return result, nil
		}

		round := len(result.Iterations) + 1
		req := c.buildRequest(&resume, job, round, state, result.Iterations)

		dispatch, err := c.dispatchWithRetries(ctx, req)
		if err != nil {
			result.TerminationReason = types.TerminationAgentFailure
			c.finalize(result)
			return result, err
		}
		resume = dispatch.Response.Resume

		scoreBefore := state.score
		state, err = c.evaluateRound(ctx, &resume, job, round)
		if err != nil {
			result.TerminationReason = types.TerminationAgentFailure
			c.finalize(result)
			return result, err
		}
		result.Iterations = append(result.Iterations, types.IterationSnapshot{
			ScoreBefore:     scoreBefore,
			ScoreAfter:      state.score,
			Recommendations: state.recommendations,
			Timestamp:       time.Now().UTC(),
		})

		if state.score-bestScore >= c.cfg.MinImprovement {
			bestScore = state.score
			staleRounds = 0
		} else {
			staleRounds++
		}

		c.logger.Info("round complete",
			zap.String("job_id", job.ID),
			zap.Int("round", round),
			zap.Float64("score_before", scoreBefore),
			zap.Float64("score_after", state.score),
			zap.Int("stale_rounds", staleRounds))
	}
}

// roundState is the scored view of the document at the end of one round.
type roundState struct {
	score           float64
	matchResult     types.MatchResult
	recommendations types.Recommendations
}

// evaluateRound extracts and matches the current document, scores it, and
// generates the round's recommendations.
func (c *Controller) evaluateRound(ctx context.Context, resume *types.ResumeDocument, job JobContext, round int) (roundState, error) {
	eval, err := c.evaluator.Evaluate(ctx, resume)
	if err != nil {
		return roundState{}, fmt.Errorf("failed to evaluate resume %s: %w", resume.ID, err)
	}

	matchResult := c.scorer.Score(eval.ResumeElements, job.Elements, eval.Matches)
	recs := c.generator.Generate(matchResult, eval.Matches, round, c.cfg.TargetScore, job.Themes, eval.ResumeElements)
	return roundState{
		score:           matchResult.OverallScore,
		matchResult:     matchResult,
		recommendations: recs,
	}, nil
}

// dispatchWithRetries makes up to 1+MaxRetries attempts at a writer dispatch.
// Timeouts and transport errors are retried after the configured delay;
// validation rejections are deterministic and fail the run immediately.
func (c *Controller) dispatchWithRetries(ctx context.Context, req *types.ResumeWriterRequest) (*agent.Result, error) {
	attempts := c.cfg.MaxRetries + 1

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		res, err := c.writer.SendToWriter(ctx, req)
		if err == nil {
			if res.Rejected() {
				return nil, &agent.FailureError{
					Agent:   agent.AgentResumeWriter,
					Message: fmt.Sprintf("request rejected: %s", res.Message),
				}
			}
			return res, nil
		}

		var notConfigured *agent.HandlerNotConfiguredError
		if errors.As(err, &notConfigured) {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, &agent.FailureError{Agent: agent.AgentResumeWriter, Message: "run cancelled", Cause: ctx.Err()}
		}

		lastErr = err
		c.logger.Warn("writer dispatch failed",
			zap.String("request_id", req.RequestID),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", attempts),
			zap.Error(err))

		if attempt < attempts {
			if err := sleepFor(ctx, c.cfg.RetryDelay()); err != nil {
				return nil, &agent.FailureError{Agent: agent.AgentResumeWriter, Message: "run cancelled", Cause: err}
			}
		}
	}

	return nil, &agent.FailureError{
		Agent:   agent.AgentResumeWriter,
		Message: fmt.Sprintf("all %d attempts failed", attempts),
		Cause:   lastErr,
	}
}

// buildRequest assembles the wire payload for one writer dispatch.
func (c *Controller) buildRequest(resume *types.ResumeDocument, job JobContext, round int, state roundState, history []types.IterationSnapshot) *types.ResumeWriterRequest {
	gaps := make([]types.WireGap, 0, len(state.matchResult.Gaps))
	for _, gap := range state.matchResult.Gaps {
		gaps = append(gaps, types.WireGap{
			Element:    gap.Element.Text,
			Importance: gap.Importance,
			Category:   gap.Category,
			Impact:     gap.Impact,
		})
	}

	strengths := make([]types.WireStrength, 0, len(state.matchResult.Strengths))
	for _, strength := range state.matchResult.Strengths {
		strengths = append(strengths, types.WireStrength{
			Element:      strength.Element.Text,
			MatchType:    strength.MatchType,
			Contribution: strength.Contribution,
		})
	}

	previous := make([]float64, 0, len(history))
	for _, snap := range history {
		previous = append(previous, snap.ScoreAfter)
	}

	return &types.ResumeWriterRequest{
		RequestID:       uuid.NewString(),
		JobID:           job.ID,
		ResumeID:        resume.ID,
		IterationRound:  round,
		CurrentScore:    state.score,
		TargetScore:     c.cfg.TargetScore,
		Recommendations: state.recommendations,
		Gaps:            gaps,
		Strengths:       strengths,
		Metadata: types.RequestMetadata{
			Timestamp:      time.Now().UTC(),
			PreviousScores: previous,
		},
	}
}

// finalize computes run metrics from the snapshot history.
func (c *Controller) finalize(result *types.OptimizationResult) {
	result.Metrics.IterationCount = len(result.Iterations)
	if len(result.Iterations) == 0 {
		return
	}
	result.Metrics.InitialScore = result.Iterations[0].ScoreAfter
	result.Metrics.FinalScore = result.Iterations[len(result.Iterations)-1].ScoreAfter
	result.Metrics.Improvement = result.Metrics.FinalScore - result.Metrics.InitialScore
}

// sleepFor waits out the retry delay unless the context ends first.
func sleepFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

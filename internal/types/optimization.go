package types

import "time"

// TerminationReason classifies why an optimization run stopped.
type TerminationReason string

// Termination reasons. Every finished run carries exactly one.
const (
	TerminationTargetReached TerminationReason = "target_reached"
	TerminationMaxRounds     TerminationReason = "max_rounds"
	TerminationNoImprovement TerminationReason = "no_improvement"
	TerminationAgentFailure  TerminationReason = "agent_failure"
)

// IterationSnapshot records one round of the optimization loop. Snapshots are
// append-only and owned exclusively by the iteration controller for the
// lifetime of one run.
type IterationSnapshot struct {
	ScoreBefore     float64         `json:"score_before"`
	ScoreAfter      float64         `json:"score_after"`
	Recommendations Recommendations `json:"recommendations"`
	Timestamp       time.Time       `json:"timestamp"`
}

// OptimizationMetrics summarizes a finished run.
type OptimizationMetrics struct {
	InitialScore   float64 `json:"initial_score"`
	FinalScore     float64 `json:"final_score"`
	Improvement    float64 `json:"improvement"`
	IterationCount int     `json:"iteration_count"`
}

// OptimizationResult is the complete, inspectable outcome of one run. It is
// always populated, even when the run terminated on a failure: a partial run
// is a valid result, never silently discarded.
type OptimizationResult struct {
	Metrics           OptimizationMetrics `json:"metrics"`
	Iterations        []IterationSnapshot `json:"iterations"`
	TerminationReason TerminationReason   `json:"termination_reason"`
}

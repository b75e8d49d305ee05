package semantic

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-optimizer/internal/optimizer"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// Evaluator adapts the extractor and matcher to the optimization loop: each
// call re-extracts the current résumé revision and matches it against the
// run's fixed job elements.
type Evaluator struct {
	extractor *Extractor
	matcher   *Matcher
	job       []types.TaggedElement
}

// NewEvaluator creates an Evaluator bound to one job posting's elements.
func NewEvaluator(extractor *Extractor, matcher *Matcher, jobElements []types.TaggedElement) *Evaluator {
	return &Evaluator{extractor: extractor, matcher: matcher, job: jobElements}
}

// Evaluate extracts and matches one résumé revision.
func (e *Evaluator) Evaluate(ctx context.Context, resume *types.ResumeDocument) (*optimizer.Evaluation, error) {
	resumeElements, err := e.extractor.ExtractResume(ctx, resume.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to extract resume %s: %w", resume.ID, err)
	}

	matches, err := e.matcher.Match(ctx, resumeElements, e.job)
	if err != nil {
		return nil, fmt.Errorf("failed to match resume %s: %w", resume.ID, err)
	}

	return &optimizer.Evaluation{ResumeElements: resumeElements, Matches: matches}, nil
}

// Package rewrite implements the in-process rewriting collaborator: it holds
// the current résumé document and revises it according to dispatched
// recommendations.
package rewrite

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-optimizer/internal/llm"
	"github.com/jonathan/resume-optimizer/internal/types"
)

const rewritePrompt = `You are revising a resume to better match a job posting.

Current resume:
%s

The current match score is %.2f against a target of %.2f.

Apply these recommendations:
%s

Rules:
- Keep every claim truthful to the original resume; rephrase and restructure, never invent employers, titles, or dates.
- Address the priority recommendations first.
- Return only the full revised resume text, no commentary.`

// Writer is the LLM-backed rewriting collaborator. It owns the working copy
// of one résumé for the duration of a run.
type Writer struct {
	client llm.Client
	logger *zap.Logger

	mu      sync.Mutex
	current types.ResumeDocument
}

// NewWriter creates a Writer seeded with the initial résumé document.
func NewWriter(client llm.Client, initial types.ResumeDocument, logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{client: client, logger: logger, current: initial}
}

// Document returns the current revision.
func (w *Writer) Document() types.ResumeDocument {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// Handle revises the current document per the request's recommendations and
// returns the new revision. It satisfies agent.RewriteHandler.
func (w *Writer) Handle(ctx context.Context, req *types.ResumeWriterRequest) (*types.ResumeWriterResponse, error) {
	started := time.Now()

	w.mu.Lock()
	current := w.current
	w.mu.Unlock()

	recsJSON, err := json.MarshalIndent(req.Recommendations, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode recommendations: %w", err)
	}

	prompt := fmt.Sprintf(rewritePrompt, current.Content, req.CurrentScore, req.TargetScore, recsJSON)
	revised, err := w.client.Complete(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, fmt.Errorf("rewrite completion failed: %w", err)
	}
	revised = strings.TrimSpace(revised)
	if revised == "" {
		return nil, fmt.Errorf("rewrite produced empty content")
	}

	next := types.ResumeDocument{
		ID:      current.ID,
		Content: revised,
		Format:  current.Format,
		Version: current.Version + 1,
	}

	w.mu.Lock()
	w.current = next
	w.mu.Unlock()

	w.logger.Info("resume revised",
		zap.String("resume_id", next.ID),
		zap.Int("version", next.Version),
		zap.Int("round", req.IterationRound))

	return &types.ResumeWriterResponse{
		ResponseID:  uuid.NewString(),
		RequestID:   req.RequestID,
		ResumeID:    req.ResumeID,
		Resume:      next,
		ChangesMade: changesFromRecommendations(&req.Recommendations),
		Metadata: types.ResponseMetadata{
			Timestamp:        time.Now().UTC(),
			ProcessingTimeMs: time.Since(started).Milliseconds(),
		},
	}, nil
}

// changesFromRecommendations summarizes which recommendations were applied.
func changesFromRecommendations(recs *types.Recommendations) []string {
	changes := make([]string, 0, recs.Total())
	for _, rec := range recs.Priority {
		changes = append(changes, fmt.Sprintf("%s: %s", rec.Type, rec.Element))
	}
	for _, rec := range recs.Optional {
		changes = append(changes, fmt.Sprintf("%s: %s", rec.Type, rec.Element))
	}
	for _, rec := range recs.Rewording {
		changes = append(changes, fmt.Sprintf("%s: %s", rec.Type, rec.Element))
	}
	return changes
}

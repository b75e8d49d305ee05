// Package semantic turns raw job-posting and résumé text into tagged
// elements and semantic matches using the completion client.
package semantic

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-optimizer/internal/dedup"
	"github.com/jonathan/resume-optimizer/internal/llm"
	"github.com/jonathan/resume-optimizer/internal/schemas"
	"github.com/jonathan/resume-optimizer/internal/types"
)

const jobExtractionPrompt = `You are analyzing a job posting. Extract every requirement as an element.

For each element provide:
- text: the requirement as written
- category: one of keyword, skill, attribute, experience, concept
- importance: 0.0 to 1.0, how strongly the posting requires it
- tags: short lowercase labels for the element
- semantic_tags: broader topical labels
- context: the section or sentence it came from

Return JSON: {"elements": [...]}

Job posting:
%s`

const resumeExtractionPrompt = `You are analyzing a resume. Extract every piece of substantive content as an element.

For each element provide:
- text: the content as written
- category: one of keyword, skill, attribute, experience, concept
- importance: 0.0 to 1.0, how prominent it is in the resume
- tags: short lowercase labels for the element
- semantic_tags: broader topical labels
- context: the section it came from

Return JSON: {"elements": [...]}

Resume:
%s`

// wireElement mirrors the extracted_elements schema.
type wireElement struct {
	Text         string   `json:"text"`
	Category     string   `json:"category"`
	Importance   float64  `json:"importance"`
	Tags         []string `json:"tags,omitempty"`
	SemanticTags []string `json:"semantic_tags,omitempty"`
	Context      string   `json:"context,omitempty"`
}

type wireElements struct {
	Elements []wireElement `json:"elements"`
}

// Extractor produces deduplicated tagged elements from raw text.
type Extractor struct {
	client llm.Client
	logger *zap.Logger
}

// NewExtractor creates an Extractor backed by the given completion client.
func NewExtractor(client llm.Client, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{client: client, logger: logger}
}

// ExtractJob extracts the tagged requirement elements of a job posting.
func (e *Extractor) ExtractJob(ctx context.Context, content string) ([]types.TaggedElement, error) {
	return e.extract(ctx, fmt.Sprintf(jobExtractionPrompt, content))
}

// ExtractResume extracts the tagged content elements of a résumé.
func (e *Extractor) ExtractResume(ctx context.Context, content string) ([]types.TaggedElement, error) {
	return e.extract(ctx, fmt.Sprintf(resumeExtractionPrompt, content))
}

// ExtractPair extracts résumé and job elements concurrently.
func (e *Extractor) ExtractPair(ctx context.Context, resumeContent, jobContent string) (resumeElements, jobElements []types.TaggedElement, err error) {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		resumeElements, err = e.ExtractResume(gctx, resumeContent)
		return err
	})
	g.Go(func() error {
		var err error
		jobElements, err = e.ExtractJob(gctx, jobContent)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return resumeElements, jobElements, nil
}

func (e *Extractor) extract(ctx context.Context, prompt string) ([]types.TaggedElement, error) {
	raw, err := e.client.CompleteJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, fmt.Errorf("extraction completion failed: %w", err)
	}

	if err := schemas.Validate(schemas.ExtractedElements, raw); err != nil {
		return nil, fmt.Errorf("extraction output failed validation: %w", err)
	}

	var wire wireElements
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		return nil, fmt.Errorf("failed to parse extraction output: %w", err)
	}

	elements := make([]types.TaggedElement, 0, len(wire.Elements))
	for _, w := range wire.Elements {
		category := types.Category(w.Category)
		if !types.ValidCategory(category) {
			e.logger.Warn("dropping element with unknown category",
				zap.String("text", w.Text),
				zap.String("category", w.Category))
			continue
		}
		elements = append(elements, types.TaggedElement{
			Element:      types.NewElement(w.Text, w.Tags, w.Context, types.Position{}),
			Importance:   clamp01(w.Importance),
			SemanticTags: w.SemanticTags,
			Category:     category,
		})
	}

	deduped := dedup.Tagged(elements)
	e.logger.Debug("extraction complete",
		zap.Int("raw_elements", len(wire.Elements)),
		zap.Int("deduplicated", len(deduped)))
	return deduped, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

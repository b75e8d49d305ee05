package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-optimizer/internal/llm"
	"github.com/jonathan/resume-optimizer/internal/observability"
	"github.com/jonathan/resume-optimizer/internal/recommend"
	"github.com/jonathan/resume-optimizer/internal/scoring"
	"github.com/jonathan/resume-optimizer/internal/semantic"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job posting",
	Long:  "Score a resume against a job posting once and print the match breakdown, gaps, strengths, and recommendations without dispatching any rewrites.",
	RunE:  runScore,
}

var (
	scoreResumeFile string
	scoreJobFile    string
	scoreJobURL     string
	scoreOutFile    string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResumeFile, "resume", "r", "", "Path to resume file (required)")
	scoreCmd.Flags().StringVarP(&scoreJobFile, "job-file", "j", "", "Path to job posting text file")
	scoreCmd.Flags().StringVarP(&scoreJobURL, "job-url", "u", "", "URL to fetch the job posting from")
	scoreCmd.Flags().StringVarP(&scoreOutFile, "out", "o", "", "Write the match result as JSON to this file")

	_ = scoreCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	ctx := cmd.Context()

	resume, err := loadResume(scoreResumeFile)
	if err != nil {
		return err
	}
	posting, err := loadJobPosting(ctx, scoreJobFile, scoreJobURL, cfg, log)
	if err != nil {
		return err
	}

	client, err := llm.NewGeminiClient(ctx, nil, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create completion client: %w", err)
	}
	defer func() { _ = client.Close() }()

	extractor := semantic.NewExtractor(client, log)
	matcher := semantic.NewMatcher(client, log)

	resumeElements, jobElements, err := extractor.ExtractPair(ctx, resume.Content, posting.Content)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	matches, err := matcher.Match(ctx, resumeElements, jobElements)
	if err != nil {
		return fmt.Errorf("matching failed: %w", err)
	}

	result := scoring.NewScorer(cfg.DimensionWeights).Score(resumeElements, jobElements, matches)
	themes := semantic.DeriveThemes(jobElements)
	recs := recommend.NewGenerator().Generate(result, matches, 1, cfg.TargetScore, themes, resumeElements)

	log.Info("scoring complete",
		zap.String("job_id", posting.JobID),
		zap.Float64("overall_score", result.OverallScore),
		zap.Int("gaps", len(result.Gaps)),
		zap.Int("recommendations", recs.Total()))

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintMatchResult(&result)
	printer.PrintRecommendations(&recs)

	if scoreOutFile != "" {
		out := struct {
			MatchResult     interface{} `json:"match_result"`
			Recommendations interface{} `json:"recommendations"`
		}{MatchResult: result, Recommendations: recs}

		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		if err := os.WriteFile(scoreOutFile, data, 0o644); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Match result written to %s\n", scoreOutFile)
	}

	return nil
}

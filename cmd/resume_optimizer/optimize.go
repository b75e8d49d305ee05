package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-optimizer/internal/agent"
	"github.com/jonathan/resume-optimizer/internal/llm"
	"github.com/jonathan/resume-optimizer/internal/observability"
	"github.com/jonathan/resume-optimizer/internal/optimizer"
	"github.com/jonathan/resume-optimizer/internal/rewrite"
	"github.com/jonathan/resume-optimizer/internal/semantic"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Iteratively optimize a resume toward the target score",
	Long:  "Run the full optimization loop: score the resume, dispatch recommendations to the rewriting collaborator, rescore the revision, and repeat until the target score, round budget, or stagnation limit is hit.",
	RunE:  runOptimize,
}

var (
	optResumeFile    string
	optJobFile       string
	optJobURL        string
	optOutFile       string
	optResumeOut     string
	optTargetScore   float64
	optMaxIterations int
	optUseBrowser    bool
)

func init() {
	optimizeCmd.Flags().StringVarP(&optResumeFile, "resume", "r", "", "Path to resume file (required)")
	optimizeCmd.Flags().StringVarP(&optJobFile, "job-file", "j", "", "Path to job posting text file")
	optimizeCmd.Flags().StringVarP(&optJobURL, "job-url", "u", "", "URL to fetch the job posting from")
	optimizeCmd.Flags().StringVarP(&optOutFile, "out", "o", "", "Write the optimization result as JSON to this file")
	optimizeCmd.Flags().StringVar(&optResumeOut, "resume-out", "", "Write the final resume revision to this file")
	optimizeCmd.Flags().Float64Var(&optTargetScore, "target", 0, "Override the target score from config")
	optimizeCmd.Flags().IntVar(&optMaxIterations, "max-iterations", 0, "Override the iteration budget from config")
	optimizeCmd.Flags().BoolVar(&optUseBrowser, "use-browser", false, "Render job posting URLs in a headless browser when static fetch is too thin")

	_ = optimizeCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("target") {
		cfg.TargetScore = optTargetScore
	}
	if cmd.Flags().Changed("max-iterations") {
		cfg.MaxIterations = optMaxIterations
	}
	if optUseBrowser {
		cfg.UseBrowser = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	ctx := cmd.Context()

	resume, err := loadResume(optResumeFile)
	if err != nil {
		return err
	}
	posting, err := loadJobPosting(ctx, optJobFile, optJobURL, cfg, log)
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

	jobElements, err := extractor.ExtractJob(ctx, posting.Content)
	if err != nil {
		return fmt.Errorf("failed to extract job posting: %w", err)
	}

	writer := rewrite.NewWriter(client, resume, log)
	agentClient := agent.NewClient(agent.Options{Timeout: cfg.Timeout(), Logger: log})
	agentClient.RegisterRewriteHandler(writer.Handle)

	evaluator := semantic.NewEvaluator(extractor, matcher, jobElements)
	controller, err := optimizer.NewController(cfg, evaluator, agentClient, log)
	if err != nil {
		return err
	}

	job := optimizer.JobContext{
		ID:       posting.JobID,
		Elements: jobElements,
		Themes:   semantic.DeriveThemes(jobElements),
	}

	result, runErr := controller.Run(ctx, resume, job)
	if runErr != nil {
		// A failed run still carries every completed round.
		var failure *agent.FailureError
		if errors.As(runErr, &failure) {
			log.Error("optimization terminated on agent failure", zap.Error(runErr))
		} else {
			log.Error("optimization terminated", zap.Error(runErr))
		}
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintOptimizationResult(result)

	if optOutFile != "" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		if err := os.WriteFile(optOutFile, data, 0o644); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Optimization result written to %s\n", optOutFile)
	}

	if optResumeOut != "" {
		final := writer.Document()
		if err := os.WriteFile(optResumeOut, []byte(final.Content), 0o644); err != nil {
			return fmt.Errorf("failed to write final resume: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Final resume (version %d) written to %s\n", final.Version, optResumeOut)
	}

	return runErr
}

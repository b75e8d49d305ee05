package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-optimizer/internal/agent"
	"github.com/jonathan/resume-optimizer/internal/fetch"
	"github.com/jonathan/resume-optimizer/internal/logger"
	"github.com/jonathan/resume-optimizer/internal/types"
)

var fetchJobCmd = &cobra.Command{
	Use:   "fetch-job",
	Short: "Fetch a job posting and hand it to the sourcing collaborator",
	Long:  "Fetch a job posting from a URL, reduce it to plain text, validate it against the job posting schema, and persist the payload for later scoring runs.",
	RunE:  runFetchJob,
}

var (
	fetchURL     string
	fetchOutFile string
)

func init() {
	fetchJobCmd.Flags().StringVarP(&fetchURL, "url", "u", "", "URL to fetch the job posting from (required)")
	fetchJobCmd.Flags().StringVarP(&fetchOutFile, "out", "o", "", "Output file for the posting payload (required)")

	_ = fetchJobCmd.MarkFlagRequired("url")
	_ = fetchJobCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(fetchJobCmd)
}

func runFetchJob(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	ctx := cmd.Context()

	opts := fetch.DefaultOptions()
	opts.Timeout = cfg.Timeout()
	opts.UseBrowser = cfg.UseBrowser
	opts.Logger = log

	payload, err := fetch.JobPosting(ctx, fetchURL, opts)
	if err != nil {
		return err
	}
	log.Info("job posting fetched",
		zap.String("job_id", payload.JobID),
		zap.String("title", payload.Title),
		zap.String("content_preview", logger.Truncate(payload.Content, 120)))

	// The sourcing collaborator persists accepted postings to disk.
	agentClient := agent.NewClient(agent.Options{Timeout: cfg.Timeout(), Logger: log})
	agentClient.RegisterSourcingHandler(func(_ context.Context, p *types.JobPostingPayload) (*types.SourcingAck, error) {
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode payload: %w", err)
		}
		if err := os.WriteFile(fetchOutFile, data, 0o644); err != nil {
			return nil, fmt.Errorf("failed to write payload: %w", err)
		}
		return &types.SourcingAck{Status: agent.StatusAccepted, JobID: p.JobID}, nil
	})

	result, err := agentClient.SendJobPosting(ctx, payload)
	if err != nil {
		return err
	}
	if result.Rejected() {
		return fmt.Errorf("posting rejected: %s", result.Message)
	}

	fmt.Fprintf(os.Stdout, "Job posting %s written to %s\n", payload.JobID, fetchOutFile)
	return nil
}

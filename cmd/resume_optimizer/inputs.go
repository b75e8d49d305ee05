package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-optimizer/internal/config"
	"github.com/jonathan/resume-optimizer/internal/fetch"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// loadResume reads a résumé file into a version-1 document. Markdown files
// keep their format tag; everything else is treated as plain text.
func loadResume(path string) (types.ResumeDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ResumeDocument{}, fmt.Errorf("failed to read resume file %s: %w", path, err)
	}
	content := strings.TrimSpace(string(data))
	if content == "" {
		return types.ResumeDocument{}, fmt.Errorf("resume file %s is empty", path)
	}

	format := types.FormatText
	if strings.HasSuffix(path, ".md") || strings.HasSuffix(path, ".markdown") {
		format = types.FormatMarkdown
	}

	return types.ResumeDocument{
		ID:      uuid.NewString(),
		Content: content,
		Format:  format,
		Version: 1,
	}, nil
}

// loadJobPosting reads a job posting from a file or fetches it from a URL.
// Exactly one of the two sources must be set.
func loadJobPosting(ctx context.Context, filePath, urlStr string, cfg *config.Config, log *zap.Logger) (*types.JobPostingPayload, error) {
	if filePath == "" && urlStr == "" {
		return nil, fmt.Errorf("either --job-file or --job-url must be provided")
	}
	if filePath != "" && urlStr != "" {
		return nil, fmt.Errorf("--job-file and --job-url are mutually exclusive; provide only one")
	}

	if urlStr != "" {
		opts := fetch.DefaultOptions()
		opts.Timeout = cfg.Timeout()
		opts.UseBrowser = cfg.UseBrowser
		opts.Logger = log
		return fetch.JobPosting(ctx, urlStr, opts)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read job posting file %s: %w", filePath, err)
	}
	content := strings.TrimSpace(string(data))
	if content == "" {
		return nil, fmt.Errorf("job posting file %s is empty", filePath)
	}

	return &types.JobPostingPayload{
		JobID:     uuid.NewString(),
		Content:   content,
		FetchedAt: time.Now().UTC(),
	}, nil
}

package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validRequest() *ResumeWriterRequest {
	return &ResumeWriterRequest{
		RequestID:      "req-1",
		JobID:          "job-1",
		ResumeID:       "resume-1",
		IterationRound: 1,
		CurrentScore:   0.5,
		TargetScore:    0.8,
		Metadata:       RequestMetadata{Timestamp: time.Now().UTC()},
	}
}

func TestResumeWriterRequest_Validate(t *testing.T) {
	assert.NoError(t, validRequest().Validate())

	missing := validRequest()
	missing.JobID = ""
	assert.Error(t, missing.Validate())

	outOfRange := validRequest()
	outOfRange.CurrentScore = 1.2
	assert.Error(t, outOfRange.Validate())

	badRound := validRequest()
	badRound.IterationRound = 0
	assert.Error(t, badRound.Validate())
}

func TestResumeWriterResponse_Validate(t *testing.T) {
	resp := &ResumeWriterResponse{
		ResponseID: "resp-1",
		RequestID:  "req-1",
		ResumeID:   "resume-1",
		Resume:     ResumeDocument{ID: "resume-1", Content: "text", Format: FormatMarkdown, Version: 2},
		Metadata:   ResponseMetadata{Timestamp: time.Now().UTC(), ProcessingTimeMs: 10},
	}
	assert.NoError(t, resp.Validate())

	resp.Resume.Format = "pdf"
	assert.Error(t, resp.Validate())

	resp.Resume.Format = FormatText
	resp.Resume.Version = 0
	assert.Error(t, resp.Validate())
}

func TestJobPostingPayload_Validate(t *testing.T) {
	payload := &JobPostingPayload{JobID: "job-1", Content: "We need a Go engineer."}
	assert.NoError(t, payload.Validate())

	payload.Content = ""
	assert.Error(t, payload.Validate())
}

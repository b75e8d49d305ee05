package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// ResumeFormat is the document format a rewriting agent returns.
type ResumeFormat string

// Supported resume document formats.
const (
	FormatText     ResumeFormat = "text"
	FormatMarkdown ResumeFormat = "markdown"
)

// WireGap is the gap representation sent across the agent boundary.
type WireGap struct {
	Element    string   `json:"element" validate:"required"`
	Importance float64  `json:"importance" validate:"gte=0,lte=1"`
	Category   Category `json:"category" validate:"required"`
	Impact     float64  `json:"impact" validate:"gte=0,lte=1"`
}

// WireStrength is the strength representation sent across the agent boundary.
type WireStrength struct {
	Element      string    `json:"element" validate:"required"`
	MatchType    MatchType `json:"match_type" validate:"required"`
	Contribution float64   `json:"contribution" validate:"gte=0,lte=1"`
}

// RequestMetadata carries round bookkeeping on an outbound writer request.
type RequestMetadata struct {
	Timestamp      time.Time `json:"timestamp"`
	PreviousScores []float64 `json:"previous_scores"`
}

// ResumeWriterRequest is the payload dispatched to the rewriting agent.
type ResumeWriterRequest struct {
	RequestID       string          `json:"request_id" validate:"required"`
	JobID           string          `json:"job_id" validate:"required"`
	ResumeID        string          `json:"resume_id" validate:"required"`
	IterationRound  int             `json:"iteration_round" validate:"gte=1"`
	CurrentScore    float64         `json:"current_score" validate:"gte=0,lte=1"`
	TargetScore     float64         `json:"target_score" validate:"gte=0,lte=1"`
	Recommendations Recommendations `json:"recommendations"`
	Gaps            []WireGap       `json:"gaps"`
	Strengths       []WireStrength  `json:"strengths"`
	Metadata        RequestMetadata `json:"metadata"`
}

// ResumeDocument is a versioned résumé returned by the rewriting agent.
type ResumeDocument struct {
	ID      string       `json:"id" validate:"required"`
	Content string       `json:"content" validate:"required"`
	Format  ResumeFormat `json:"format" validate:"oneof=text markdown"`
	Version int          `json:"version" validate:"gte=1"`
}

// ResponseMetadata carries timing information on a writer response.
type ResponseMetadata struct {
	Timestamp        time.Time `json:"timestamp"`
	ProcessingTimeMs int64     `json:"processing_time_ms" validate:"gte=0"`
}

// ResumeWriterResponse is the rewriting agent's reply to a writer request.
type ResumeWriterResponse struct {
	ResponseID  string           `json:"response_id" validate:"required"`
	RequestID   string           `json:"request_id" validate:"required"`
	ResumeID    string           `json:"resume_id" validate:"required"`
	Resume      ResumeDocument   `json:"resume"`
	ChangesMade []string         `json:"changes_made"`
	Metadata    ResponseMetadata `json:"metadata"`
}

// JobPostingPayload is the payload exchanged with the sourcing agent.
type JobPostingPayload struct {
	JobID     string    `json:"job_id" validate:"required"`
	Title     string    `json:"title,omitempty"`
	Content   string    `json:"content" validate:"required"`
	SourceURL string    `json:"source_url,omitempty"`
	FetchedAt time.Time `json:"fetched_at"`
}

// SourcingAck is the sourcing agent's acknowledgement of a delivered payload.
type SourcingAck struct {
	Status  string `json:"status" validate:"oneof=accepted rejected"`
	JobID   string `json:"job_id"`
	Message string `json:"message,omitempty"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors,omitempty"`
}

// Validate validates the ResumeWriterRequest using the validator.
func (r *ResumeWriterRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ResumeWriterResponse using the validator.
func (r *ResumeWriterResponse) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the JobPostingPayload using the validator.
func (p *JobPostingPayload) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

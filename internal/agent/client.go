package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-optimizer/internal/schemas"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// Collaborator names used in timeouts and log fields.
const (
	AgentResumeWriter = "resume-writer"
	AgentSourcing     = "sourcing"
)

// Result statuses.
const (
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// defaultTimeout is used when options carry no timeout.
const defaultTimeout = 30 * time.Second

// RewriteHandler processes a writer request and returns the revised document.
type RewriteHandler func(ctx context.Context, req *types.ResumeWriterRequest) (*types.ResumeWriterResponse, error)

// SourcingHandler delivers a job posting payload and returns an acknowledgement.
type SourcingHandler func(ctx context.Context, payload *types.JobPostingPayload) (*types.SourcingAck, error)

// Result is the structured outcome of one dispatch. Validation failures come
// back as a rejected Result, never as an error.
type Result struct {
	Status   string               `json:"status"`
	Message  string               `json:"message,omitempty"`
	Errors   []schemas.FieldError `json:"errors,omitempty"`
	Response *types.ResumeWriterResponse
	Ack      *types.SourcingAck
}

// Rejected reports whether the dispatch was rejected on validation.
func (r *Result) Rejected() bool {
	return r.Status == StatusRejected
}

// Options configures a Client.
type Options struct {
	Timeout time.Duration
	Logger  *zap.Logger
}

// Client validates payloads against their schemas and dispatches them to the
// configured collaborators. It makes exactly one attempt per invocation;
// retry policy belongs to the caller.
type Client struct {
	rewrite  RewriteHandler
	sourcing SourcingHandler
	timeout  time.Duration
	logger   *zap.Logger
}

// NewClient creates a Client with the given options. Handlers are registered
// separately so tests can supply fakes.
func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{timeout: timeout, logger: logger}
}

// RegisterRewriteHandler configures the rewriting collaborator.
func (c *Client) RegisterRewriteHandler(h RewriteHandler) {
	c.rewrite = h
}

// RegisterSourcingHandler configures the sourcing collaborator.
func (c *Client) RegisterSourcingHandler(h SourcingHandler) {
	c.sourcing = h
}

// SendToWriter validates and dispatches a writer request, then validates the
// response before trusting it. Invalid payloads in either direction produce a
// rejected Result; a missing handler is a configuration error.
func (c *Client) SendToWriter(ctx context.Context, req *types.ResumeWriterRequest) (*Result, error) {
	if c.rewrite == nil {
		return nil, &HandlerNotConfiguredError{Agent: AgentResumeWriter}
	}

	if rejection, err := validatePayload(schemas.ResumeWriterRequest, req, "request failed validation"); rejection != nil || err != nil {
		return rejection, err
	}

	c.logger.Debug("dispatching writer request",
		zap.String("agent", AgentResumeWriter),
		zap.String("request_id", req.RequestID),
		zap.Int("iteration_round", req.IterationRound))

	resp, err := callWithTimeout(ctx, c.timeout, AgentResumeWriter, func(callCtx context.Context) (*types.ResumeWriterResponse, error) {
		return c.rewrite(callCtx, req)
	})
	if err != nil {
		return nil, err
	}

	if rejection, err := validatePayload(schemas.ResumeWriterResponse, resp, "response failed validation"); rejection != nil || err != nil {
		return rejection, err
	}
	if resp.RequestID != req.RequestID {
		return &Result{
			Status:  StatusRejected,
			Message: "response does not match request",
			Errors: []schemas.FieldError{
				{Field: "request_id", Message: fmt.Sprintf("expected %s, got %s", req.RequestID, resp.RequestID)},
			},
		}, nil
	}

	return &Result{Status: StatusAccepted, Response: resp}, nil
}

// SendJobPosting validates and delivers a job posting to the sourcing
// collaborator, then validates the acknowledgement before trusting it.
func (c *Client) SendJobPosting(ctx context.Context, payload *types.JobPostingPayload) (*Result, error) {
	if c.sourcing == nil {
		return nil, &HandlerNotConfiguredError{Agent: AgentSourcing}
	}

	if rejection, err := validatePayload(schemas.JobPosting, payload, "payload failed validation"); rejection != nil || err != nil {
		return rejection, err
	}

	ack, err := callWithTimeout(ctx, c.timeout, AgentSourcing, func(callCtx context.Context) (*types.SourcingAck, error) {
		return c.sourcing(callCtx, payload)
	})
	if err != nil {
		return nil, err
	}

	if rejection, err := validatePayload(schemas.SourcingAck, ack, "ack failed validation"); rejection != nil || err != nil {
		return rejection, err
	}
	if ack.JobID != payload.JobID {
		return &Result{
			Status:  StatusRejected,
			Message: "ack does not match payload",
			Errors: []schemas.FieldError{
				{Field: "job_id", Message: fmt.Sprintf("expected %s, got %s", payload.JobID, ack.JobID)},
			},
		}, nil
	}

	return &Result{Status: ack.Status, Message: ack.Message, Ack: ack}, nil
}

// validatePayload marshals the payload and checks it against its schema.
// Returns a rejected Result for field-level failures and an error only for
// broken schemas or unmarshalable payloads.
func validatePayload(schemaName string, payload any, message string) (*Result, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", schemaName, err)
	}

	err = schemas.Validate(schemaName, string(data))
	if err == nil {
		return nil, nil
	}

	var ve *schemas.ValidationError
	if errors.As(err, &ve) {
		return &Result{Status: StatusRejected, Message: message, Errors: ve.Errors}, nil
	}
	return nil, err
}

// callWithTimeout races a collaborator call against a timer. There is no
// mid-call cancellation lower than letting the timeout fire; the handler
// receives a context that expires with the timer.
func callWithTimeout[T any](ctx context.Context, timeout time.Duration, agentName string, call func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type outcome struct {
		value T
		err   error
	}
	done := make(chan outcome, 1)

	go func() {
		value, err := call(callCtx)
		done <- outcome{value: value, err: err}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case out := <-done:
		if out.err != nil {
			return zero, fmt.Errorf("agent %s call failed: %w", agentName, out.err)
		}
		return out.value, nil
	case <-timer.C:
		return zero, &TimeoutError{Agent: agentName, Timeout: timeout}
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

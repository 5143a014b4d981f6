package client

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"vetgate/internal/inquiry/models"
	"vetgate/internal/sentinel"
	dErrors "vetgate/pkg/domain-errors"
)

// State is the lifecycle state of the client.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateFailure State = "failure"
)

// Snapshot is a point-in-time view of the client state. Inquiry is set only
// in Success, Err only in Failure.
type Snapshot struct {
	State   State
	Inquiry *models.Inquiry
	Err     error
}

// Client wraps a Provider with the Idle -> Loading -> Success | Failure
// state machine. A call issued while another is in flight supersedes it:
// there is no cancellation token, the superseded call simply never lands in
// the observable state, guarded by a generation counter. Only the most
// recently issued call's outcome is retained (last-write-wins). No retries
// happen here; every retry is a new explicit call.
type Client struct {
	provider Provider
	logger   *slog.Logger

	mu      sync.Mutex
	state   State
	inquiry *models.Inquiry
	err     error
	gen     uint64
}

// New creates a client in the Idle state.
func New(provider Provider, logger *slog.Logger) *Client {
	return &Client{
		provider: provider,
		logger:   logger,
		state:    StateIdle,
	}
}

// Snapshot returns the current state without blocking in-flight calls.
func (c *Client) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{State: c.state, Inquiry: c.inquiry, Err: c.err}
}

// Submit sends a new inquiry to the provider. Collaborator rejections and
// unparseable responses surface as submission_failed.
func (c *Client) Submit(ctx context.Context, req *models.InquiryRequest) (*models.Inquiry, error) {
	gen := c.begin()

	inq, err := c.provider.Submit(ctx, req)
	if err != nil {
		err = dErrors.Wrap(err, dErrors.CodeSubmissionFailed, "inquiry submission failed: "+err.Error())
	}
	return c.finish(gen, inq, err)
}

// Retrieve fetches an inquiry by id. A missing inquiry surfaces as not_found,
// any other collaborator failure as retrieval_failed. Retrieval is idempotent:
// the same id yields the same data or a clean not_found.
func (c *Client) Retrieve(ctx context.Context, id string) (*models.Inquiry, error) {
	gen := c.begin()

	inq, err := c.provider.Retrieve(ctx, id)
	switch {
	case err == nil:
	case errors.Is(err, sentinel.ErrNotFound):
		err = dErrors.Wrap(err, dErrors.CodeNotFound, "inquiry "+id+" not found")
	default:
		err = dErrors.Wrap(err, dErrors.CodeRetrievalFailed, "inquiry retrieval failed: "+err.Error())
	}
	return c.finish(gen, inq, err)
}

// begin transitions to Loading, superseding any in-flight call. The previous
// outcome is cleared so a Loading snapshot never exposes stale data.
func (c *Client) begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	c.state = StateLoading
	c.inquiry = nil
	c.err = nil
	return c.gen
}

// finish records the outcome unless a newer call has superseded this one, in
// which case the stale result is discarded and the caller gets it back
// without it ever becoming observable state.
func (c *Client) finish(gen uint64, inq *models.Inquiry, err error) (*models.Inquiry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		if c.logger != nil {
			c.logger.Debug("discarding superseded inquiry call result", "generation", gen)
		}
		return inq, err
	}

	if err != nil {
		c.state = StateFailure
		c.inquiry = nil
		c.err = err
		return nil, err
	}
	c.state = StateSuccess
	c.inquiry = inq
	c.err = nil
	return inq, nil
}

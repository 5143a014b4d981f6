package client

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"vetgate/internal/inquiry/models"
	dErrors "vetgate/pkg/domain-errors"
)

type ClientSuite struct {
	suite.Suite
	provider *MockProvider
	client   *Client
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

func (s *ClientSuite) SetupTest() {
	s.provider = NewMockProvider(0)
	s.client = New(s.provider, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *ClientSuite) validRequest() *models.InquiryRequest {
	return &models.InquiryRequest{
		ContactName: "Contact",
		SubjectName: "Subject",
		Services:    []models.Service{models.ServiceIdentity},
		Language:    models.LanguageEN,
	}
}

func (s *ClientSuite) TestStartsIdle() {
	snap := s.client.Snapshot()
	s.Equal(StateIdle, snap.State)
	s.Nil(snap.Inquiry)
	s.NoError(snap.Err)
}

func (s *ClientSuite) TestSubmitSuccess() {
	inq, err := s.client.Submit(context.Background(), s.validRequest())
	s.Require().NoError(err)
	s.NotEmpty(inq.ID)
	s.Equal(models.StatusPending, inq.Status)

	snap := s.client.Snapshot()
	s.Equal(StateSuccess, snap.State)
	s.Equal(inq.ID, snap.Inquiry.ID)
	s.NoError(snap.Err)
}

func (s *ClientSuite) TestSubmitFailureMapsToSubmissionFailed() {
	failing := &failingProvider{err: errors.New("provider exploded")}
	cl := New(failing, nil)

	inq, err := cl.Submit(context.Background(), s.validRequest())
	s.Nil(inq)
	s.True(dErrors.HasCode(err, dErrors.CodeSubmissionFailed))

	snap := cl.Snapshot()
	s.Equal(StateFailure, snap.State)
	s.Nil(snap.Inquiry)
	s.Error(snap.Err)
}

// TestRetrieveIsIdempotent verifies retrieving the same id repeatedly yields
// the same data, and a missing id a clean not_found, with no side effects.
func (s *ClientSuite) TestRetrieveIsIdempotent() {
	first, err := s.client.Retrieve(context.Background(), DemoInquiryID)
	s.Require().NoError(err)
	second, err := s.client.Retrieve(context.Background(), DemoInquiryID)
	s.Require().NoError(err)
	s.Equal(first, second)

	for range 2 {
		_, err = s.client.Retrieve(context.Background(), "no-such-id")
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	}
}

func (s *ClientSuite) TestRetrieveErrorMapping() {
	s.Run("missing inquiry is not_found", func() {
		_, err := s.client.Retrieve(context.Background(), "missing")
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("infrastructure failure is retrieval_failed", func() {
		failing := &failingProvider{err: errors.New("connection reset")}
		cl := New(failing, nil)

		_, err := cl.Retrieve(context.Background(), DemoInquiryID)
		s.True(dErrors.HasCode(err, dErrors.CodeRetrievalFailed))
	})
}

// TestSupersededCallNeverBecomesState verifies last-write-wins: when a second
// call starts while the first is in flight, the first call's outcome is
// returned to its caller but never stored as observable state.
func (s *ClientSuite) TestSupersededCallNeverBecomesState() {
	slow := newGatedProvider(s.provider, 1)
	cl := New(slow, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		// First call blocks on the gate until after the second completes.
		inq, err := cl.Retrieve(context.Background(), DemoInquiryID)
		s.NoError(err)
		s.NotNil(inq, "the superseded caller still gets its result back")
	}()

	// Wait for the first call to be in flight, then let the second run
	// through unobstructed.
	<-slow.started
	second, err := cl.Retrieve(context.Background(), "no-such-id")
	s.Nil(second)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	// Release the first call; its success must not overwrite the newer
	// failure state.
	close(slow.gate)
	wg.Wait()

	snap := cl.Snapshot()
	s.Equal(StateFailure, snap.State)
	s.Nil(snap.Inquiry)
	s.True(dErrors.HasCode(snap.Err, dErrors.CodeNotFound))
}

// TestLoadingClearsPreviousOutcome verifies a Loading snapshot carries
// neither the previous inquiry nor the previous error: Inquiry is set only in
// Success, Err only in Failure.
func (s *ClientSuite) TestLoadingClearsPreviousOutcome() {
	slow := newGatedProvider(s.provider, 2)
	cl := New(slow, nil)

	_, err := cl.Retrieve(context.Background(), DemoInquiryID)
	s.Require().NoError(err)
	s.Equal(StateSuccess, cl.Snapshot().State)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := cl.Retrieve(context.Background(), DemoInquiryID)
		s.NoError(err)
	}()

	<-slow.started
	snap := cl.Snapshot()
	s.Equal(StateLoading, snap.State)
	s.Nil(snap.Inquiry, "loading must not expose the stale inquiry")
	s.NoError(snap.Err)

	close(slow.gate)
	wg.Wait()
	s.Equal(StateSuccess, cl.Snapshot().State)
}

func (s *ClientSuite) TestFailureThenRetrySucceeds() {
	_, err := s.client.Retrieve(context.Background(), "missing")
	s.Require().Error(err)
	s.Equal(StateFailure, s.client.Snapshot().State)

	// Every retry is a new explicit call; nothing retries automatically.
	inq, err := s.client.Retrieve(context.Background(), DemoInquiryID)
	s.Require().NoError(err)
	s.Equal(StateSuccess, s.client.Snapshot().State)
	s.Equal(DemoInquiryID, inq.ID)
}

func (s *ClientSuite) TestMockProviderHonoursContext() {
	slow := NewMockProvider(time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := slow.Retrieve(ctx, DemoInquiryID)
	s.ErrorIs(err, context.DeadlineExceeded)
}

// failingProvider always returns its configured error.
type failingProvider struct {
	err error
}

func (p *failingProvider) Submit(context.Context, *models.InquiryRequest) (*models.Inquiry, error) {
	return nil, p.err
}

func (p *failingProvider) Retrieve(context.Context, string) (*models.Inquiry, error) {
	return nil, p.err
}

// gatedProvider blocks the gateCall-th Retrieve until its gate closes,
// signalling started once that call is in flight. Other calls pass straight
// through.
type gatedProvider struct {
	inner    *MockProvider
	gate     chan struct{}
	started  chan struct{}
	gateCall int32
	calls    atomic.Int32
}

func newGatedProvider(inner *MockProvider, gateCall int32) *gatedProvider {
	return &gatedProvider{
		inner:    inner,
		gate:     make(chan struct{}),
		started:  make(chan struct{}),
		gateCall: gateCall,
	}
}

func (p *gatedProvider) Submit(ctx context.Context, req *models.InquiryRequest) (*models.Inquiry, error) {
	return p.inner.Submit(ctx, req)
}

func (p *gatedProvider) Retrieve(ctx context.Context, id string) (*models.Inquiry, error) {
	if p.calls.Add(1) == p.gateCall {
		close(p.started)
		<-p.gate
	}
	return p.inner.Retrieve(ctx, id)
}

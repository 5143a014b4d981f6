// Package service orchestrates the inquiry lifecycle: request validation,
// provider submission and retrieval, snapshot persistence, caching, report
// rendering, and audit.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"vetgate/internal/audit"
	"vetgate/internal/inquiry/client"
	"vetgate/internal/inquiry/models"
	"vetgate/internal/platform/metrics"
	reportmodels "vetgate/internal/report/models"
	"vetgate/internal/report/render"
	"vetgate/internal/sentinel"
	dErrors "vetgate/pkg/domain-errors"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,Cache

// Store persists inquiry snapshots locally. Implementations return
// sentinel.ErrNotFound when no record exists for an id.
type Store interface {
	Save(ctx context.Context, inq *models.Inquiry) error
	FindByID(ctx context.Context, id string) (*models.Inquiry, error)
	List(ctx context.Context) ([]*models.Inquiry, error)
}

// Cache is a read-through cache over provider retrievals. Get returns
// sentinel.ErrNotFound on a miss.
type Cache interface {
	Get(ctx context.Context, id string) (*models.Inquiry, error)
	Set(ctx context.Context, inq *models.Inquiry) error
	Invalidate(ctx context.Context, id string) error
}

// ValidationError carries every field violation found on a rejected request.
// All rules are evaluated together so the caller sees the full set at once.
type ValidationError struct {
	Fields models.FieldErrors
	err    error
}

func (e *ValidationError) Error() string { return e.err.Error() }
func (e *ValidationError) Unwrap() error { return e.err }

func newValidationError(fields models.FieldErrors) *ValidationError {
	return &ValidationError{
		Fields: fields,
		err: dErrors.New(dErrors.CodeValidation,
			"invalid inquiry request: "+strings.Join(fields.Fields(), ", ")),
	}
}

// ExportBundle is the machine-readable export of a completed inquiry. The
// report appears at the top level as well as nested in the inquiry, so
// consumers get the `{inquiry, report, generatedAt}` shape directly.
type ExportBundle struct {
	Inquiry     *models.Inquiry      `json:"inquiry"`
	Report      *reportmodels.Report `json:"report"`
	GeneratedAt time.Time            `json:"generated_at"`
	ShareURL    string               `json:"share_url,omitempty"`
}

// Service coordinates the provider client, local snapshot store, cache, and
// report rendering. The client owns the submit/retrieve state machine; the
// service owns persistence and the read path.
type Service struct {
	client  *client.Client
	store   Store
	cache   Cache
	audit   *audit.Publisher
	metrics *metrics.Metrics
	logger  *slog.Logger

	// group collapses concurrent retrievals of the same inquiry id into a
	// single provider call.
	group singleflight.Group

	shareBaseURL string
	now          func() time.Time
}

// NewService builds a Service around a provider client and a snapshot store.
func NewService(cl *client.Client, store Store, opts ...Option) *Service {
	cfg := &serviceConfig{
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Service{
		client:       cl,
		store:        store,
		cache:        cfg.cache,
		audit:        cfg.audit,
		metrics:      cfg.metrics,
		logger:       cfg.logger,
		shareBaseURL: cfg.shareBaseURL,
		now:          cfg.now,
	}
}

// Create validates the request and submits it to the provider. Validation
// reports every violation together; nothing is sent while any rule fails.
func (s *Service) Create(ctx context.Context, req *models.InquiryRequest) (*models.Inquiry, error) {
	if req == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "inquiry request is required")
	}

	req.Normalize()
	if fieldErrs := req.Validate(); !fieldErrs.IsEmpty() {
		if s.metrics != nil {
			s.metrics.IncrementValidationFailures()
		}
		s.logger.Info("inquiry request rejected", "fields", fieldErrs.Fields())
		return nil, newValidationError(fieldErrs)
	}

	inq, err := s.client.Submit(ctx, req)
	if err != nil {
		if s.metrics != nil {
			s.metrics.IncrementProviderFailures("submit")
		}
		return nil, err
	}

	s.persist(ctx, inq)
	s.emit(ctx, audit.Event{
		InquiryID: inq.ID,
		Action:    audit.ActionInquiryCreated,
		Subject:   inq.SubjectName,
	})
	if s.metrics != nil {
		s.metrics.IncrementInquiriesSubmitted()
	}
	s.logger.Info("inquiry created", "inquiry_id", inq.ID, "services", len(inq.Services))
	return inq, nil
}

// Get returns the current state of an inquiry, serving from cache when fresh.
// Concurrent requests for the same id share one provider call.
func (s *Service) Get(ctx context.Context, id string) (*models.Inquiry, error) {
	if strings.TrimSpace(id) == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "inquiry id is required")
	}

	v, err, _ := s.group.Do(id, func() (any, error) {
		return s.fetch(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.Inquiry), nil
}

func (s *Service) fetch(ctx context.Context, id string) (*models.Inquiry, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil {
			if s.metrics != nil {
				s.metrics.IncrementCacheHits()
			}
			return cached, nil
		} else if !errors.Is(err, sentinel.ErrNotFound) {
			s.logger.Warn("inquiry cache read failed", "inquiry_id", id, "error", err)
		}
		if s.metrics != nil {
			s.metrics.IncrementCacheMisses()
		}
	}

	inq, err := s.client.Retrieve(ctx, id)
	if err != nil {
		if s.metrics != nil && !dErrors.HasCode(err, dErrors.CodeNotFound) {
			s.metrics.IncrementProviderFailures("retrieve")
		}
		return nil, err
	}

	s.persist(ctx, inq)
	s.emit(ctx, audit.Event{
		InquiryID: inq.ID,
		Action:    audit.ActionInquiryRetrieved,
		Subject:   inq.SubjectName,
	})
	if s.metrics != nil {
		s.metrics.IncrementInquiriesRetrieved()
	}
	return inq, nil
}

// List returns the locally persisted inquiry snapshots, newest first.
func (s *Service) List(ctx context.Context) ([]*models.Inquiry, error) {
	inquiries, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list inquiries")
	}
	return inquiries, nil
}

// Cancel transitions an inquiry to Cancelled. Terminal inquiries are never
// cancellable; the operation fails with invalid_state instead of silently
// ignoring the request.
func (s *Service) Cancel(ctx context.Context, id string) (*models.Inquiry, error) {
	inq, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !inq.Cancellable || !inq.Status.CanTransitionTo(models.StatusCancelled) {
		return nil, dErrors.New(dErrors.CodeInvalidState,
			"inquiry "+id+" cannot be cancelled in status "+string(inq.Status))
	}

	inq.Status = models.StatusCancelled
	inq.Normalize()

	if err := s.store.Save(ctx, inq); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist cancellation")
	}
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, id); err != nil {
			s.logger.Warn("inquiry cache invalidation failed", "inquiry_id", id, "error", err)
		}
	}

	s.emit(ctx, audit.Event{
		InquiryID: inq.ID,
		Action:    audit.ActionInquiryCancelled,
		Subject:   inq.SubjectName,
	})
	if s.metrics != nil {
		s.metrics.IncrementInquiriesCancelled()
	}
	s.logger.Info("inquiry cancelled", "inquiry_id", inq.ID)
	return inq, nil
}

// ShareLink builds the public URL for a report. The link resolves through the
// report read endpoint; no token is embedded.
func (s *Service) ShareLink(id string) string {
	base := strings.TrimSuffix(s.shareBaseURL, "/")
	return base + "/reports/" + id
}

// Export bundles the full inquiry and report for machine-readable download.
// It requires a completed report, like every report-consuming operation.
func (s *Service) Export(ctx context.Context, id string) (*ExportBundle, error) {
	inq, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if inq.Status != models.StatusCompleted || !inq.HasReport() {
		return nil, dErrors.New(dErrors.CodeReportNotReady, "report is not ready for inquiry "+id)
	}

	s.emit(ctx, audit.Event{
		InquiryID: inq.ID,
		Action:    audit.ActionReportExported,
		Subject:   inq.SubjectName,
	})
	return &ExportBundle{
		Inquiry:     inq,
		Report:      inq.Report,
		GeneratedAt: s.now(),
		ShareURL:    s.ShareLink(id),
	}, nil
}

// RenderScreen projects the report into the on-screen view tree.
func (s *Service) RenderScreen(ctx context.Context, id string) (*render.Node, error) {
	p, err := s.project(ctx, id, "screen")
	if err != nil {
		return nil, err
	}
	return render.Screen(p), nil
}

// RenderPrint produces the self-contained print HTML document.
func (s *Service) RenderPrint(ctx context.Context, id string) ([]byte, error) {
	p, err := s.project(ctx, id, "print")
	if err != nil {
		return nil, err
	}
	doc, err := render.Print(p)
	if err != nil {
		s.observeRenderFailure("print", err)
		return nil, err
	}
	return doc, nil
}

// RenderPDF produces the paginated PDF document and its download filename.
func (s *Service) RenderPDF(ctx context.Context, id string) ([]byte, string, error) {
	p, err := s.project(ctx, id, "pdf")
	if err != nil {
		return nil, "", err
	}
	doc, err := render.PDF(p)
	if err != nil {
		s.observeRenderFailure("pdf", err)
		return nil, "", err
	}
	return doc, render.FileName(id), nil
}

// project fetches the inquiry and builds the shared projection all render
// backends consume. Backend-specific failures are recorded against the
// backend label; projection failures count against it too since no artifact
// was produced.
func (s *Service) project(ctx context.Context, id, backend string) (*render.Projection, error) {
	start := s.now()

	inq, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	p, err := render.Project(inq, s.now())
	if err != nil {
		s.observeRenderFailure(backend, err)
		return nil, err
	}
	p.ShareURL = s.ShareLink(id)

	if s.metrics != nil {
		s.metrics.IncrementRenders(backend)
		s.metrics.ObserveRenderLatency(backend, s.now().Sub(start).Seconds())
	}
	s.emit(ctx, audit.Event{
		InquiryID: inq.ID,
		Action:    audit.ActionReportRendered,
		Subject:   inq.SubjectName,
		Detail:    backend,
	})
	return p, nil
}

func (s *Service) observeRenderFailure(backend string, err error) {
	reason := string(dErrors.CodeRenderError)
	switch {
	case dErrors.HasCode(err, dErrors.CodeReportNotReady):
		reason = string(dErrors.CodeReportNotReady)
	case dErrors.HasCode(err, dErrors.CodeRenderInconsistency):
		reason = string(dErrors.CodeRenderInconsistency)
	}
	if s.metrics != nil {
		s.metrics.IncrementRenderFailures(backend, reason)
	}
	s.logger.Error("report render failed", "backend", backend, "reason", reason, "error", err)
}

// persist writes the snapshot to the store and cache. Both are best-effort:
// the provider remains the source of truth and a failed write must not fail
// the request that already succeeded upstream.
func (s *Service) persist(ctx context.Context, inq *models.Inquiry) {
	if err := s.store.Save(ctx, inq); err != nil {
		s.logger.Error("failed to persist inquiry snapshot", "inquiry_id", inq.ID, "error", err)
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, inq); err != nil {
			s.logger.Warn("failed to cache inquiry", "inquiry_id", inq.ID, "error", err)
		}
	}
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Emit(ctx, event); err != nil {
		s.logger.Warn("failed to emit audit event", "action", event.Action, "error", err)
	}
}

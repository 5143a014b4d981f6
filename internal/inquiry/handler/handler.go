// Package handler exposes the inquiry and report endpoints over HTTP.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"vetgate/internal/inquiry/models"
	"vetgate/internal/inquiry/service"
	"vetgate/internal/platform/metrics"
	"vetgate/internal/platform/middleware"
	"vetgate/internal/report/render"
	dErrors "vetgate/pkg/domain-errors"
	"vetgate/pkg/platform/httputil"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

// Service defines the interface for inquiry operations.
type Service interface {
	Create(ctx context.Context, req *models.InquiryRequest) (*models.Inquiry, error)
	Get(ctx context.Context, id string) (*models.Inquiry, error)
	List(ctx context.Context) ([]*models.Inquiry, error)
	Cancel(ctx context.Context, id string) (*models.Inquiry, error)
	Export(ctx context.Context, id string) (*service.ExportBundle, error)
	ShareLink(id string) string
	RenderScreen(ctx context.Context, id string) (*render.Node, error)
	RenderPrint(ctx context.Context, id string) ([]byte, error)
	RenderPDF(ctx context.Context, id string) ([]byte, string, error)
}

// Handler handles inquiry and report endpoints.
type Handler struct {
	logger  *slog.Logger
	service Service
	metrics *metrics.Metrics
}

// New creates a new inquiry Handler.
func New(svc Service, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		logger:  logger,
		service: svc,
		metrics: m,
	}
}

// Register registers the inquiry and report routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/inquiries", h.handleCreateInquiry)
	r.Get("/inquiries", h.handleListInquiries)
	r.Get("/inquiries/{id}", h.handleGetInquiry)
	r.Post("/inquiries/{id}/cancel", h.handleCancelInquiry)

	r.Get("/reports/{id}", h.handleReportScreen)
	r.Get("/reports/{id}/print", h.handleReportPrint)
	r.Get("/reports/{id}/pdf", h.handleReportPDF)
	r.Get("/reports/{id}/export", h.handleReportExport)
	r.Get("/reports/{id}/share", h.handleReportShare)
}

func (h *Handler) handleCreateInquiry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	defer h.observeLatency("create_inquiry", start)

	requestID := middleware.GetRequestID(ctx)

	var req models.InquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode inquiry request",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	inq, err := h.service.Create(ctx, &req)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			writeValidationError(w, vErr)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create inquiry",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, inq)
}

func (h *Handler) handleListInquiries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	inquiries, err := h.service.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list inquiries",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, listResponse{Inquiries: inquiries})
}

func (h *Handler) handleGetInquiry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	defer h.observeLatency("get_inquiry", start)

	inq, err := h.service.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.logError(ctx, "failed to get inquiry", err)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, inq)
}

func (h *Handler) handleCancelInquiry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	inq, err := h.service.Cancel(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.logError(ctx, "failed to cancel inquiry", err)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, inq)
}

func (h *Handler) handleReportScreen(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	defer h.observeLatency("report_screen", start)

	view, err := h.service.RenderScreen(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.logError(ctx, "failed to render report view", err)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) handleReportPrint(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	defer h.observeLatency("report_print", start)

	doc, err := h.service.RenderPrint(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.logError(ctx, "failed to render print document", err)
		httputil.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

func (h *Handler) handleReportPDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	defer h.observeLatency("report_pdf", start)

	doc, filename, err := h.service.RenderPDF(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.logError(ctx, "failed to render pdf document", err)
		httputil.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

func (h *Handler) handleReportExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bundle, err := h.service.Export(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.logError(ctx, "failed to export report", err)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, bundle)
}

func (h *Handler) handleReportShare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	// The link is only issued for inquiries that actually exist.
	inq, err := h.service.Get(ctx, id)
	if err != nil {
		h.logError(ctx, "failed to resolve inquiry for share link", err)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, shareResponse{
		Title: "Background Verification Report",
		Text:  "Background verification report for " + inq.SubjectName,
		URL:   h.service.ShareLink(id),
	})
}

type listResponse struct {
	Inquiries []*models.Inquiry `json:"inquiries"`
}

// shareResponse is the payload handed to a native share capability.
type shareResponse struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}

// validationResponse reports every violated field with its violation code.
type validationResponse struct {
	Error            string                           `json:"error"`
	ErrorDescription string                           `json:"error_description"`
	Fields           map[string]models.FieldErrorCode `json:"fields"`
}

func writeValidationError(w http.ResponseWriter, vErr *service.ValidationError) {
	httputil.WriteJSON(w, http.StatusBadRequest, validationResponse{
		Error:            string(dErrors.CodeValidation),
		ErrorDescription: vErr.Error(),
		Fields:           vErr.Fields,
	})
}

func (h *Handler) logError(ctx context.Context, msg string, err error) {
	// Expected lifecycle conditions are not server errors.
	if dErrors.HasCode(err, dErrors.CodeNotFound) || dErrors.HasCode(err, dErrors.CodeReportNotReady) {
		h.logger.InfoContext(ctx, msg,
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		return
	}
	h.logger.ErrorContext(ctx, msg,
		"request_id", middleware.GetRequestID(ctx),
		"error", err,
	)
}

func (h *Handler) observeLatency(endpoint string, start time.Time) {
	if h.metrics != nil {
		h.metrics.ObserveEndpointLatency(endpoint, time.Since(start).Seconds())
	}
}

// Package client talks to the external background-verification provider and
// owns the submit/retrieve lifecycle state machine.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"vetgate/internal/inquiry/models"
	"vetgate/internal/sentinel"
)

// Provider is the narrow interface to the verification provider. Only the
// JSON shape of the exchanged documents is a contract; the provider itself
// is opaque.
type Provider interface {
	Submit(ctx context.Context, req *models.InquiryRequest) (*models.Inquiry, error)
	Retrieve(ctx context.Context, id string) (*models.Inquiry, error)
}

// HTTPProvider calls the provider's JSON-over-HTTP API.
type HTTPProvider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	tracer     trace.Tracer
}

// NewHTTPProvider builds a provider client for the given base URL.
func NewHTTPProvider(baseURL, apiKey string, timeout time.Duration) *HTTPProvider {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPProvider{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		tracer:     otel.Tracer("vetgate/inquiry/client"),
	}
}

// Submit creates a new inquiry at the provider.
func (p *HTTPProvider) Submit(ctx context.Context, req *models.InquiryRequest) (*models.Inquiry, error) {
	ctx, span := p.tracer.Start(ctx, "provider.submit")
	defer span.End()

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode inquiry request: %w", err)
	}
	inq, err := p.do(ctx, http.MethodPost, p.baseURL+"/inquiries", bytes.NewReader(body))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "submit failed")
		return nil, err
	}
	span.SetAttributes(attribute.String("inquiry.id", inq.ID))
	return inq, nil
}

// Retrieve fetches an existing inquiry by its opaque identifier.
func (p *HTTPProvider) Retrieve(ctx context.Context, id string) (*models.Inquiry, error) {
	ctx, span := p.tracer.Start(ctx, "provider.retrieve",
		trace.WithAttributes(attribute.String("inquiry.id", id)))
	defer span.End()

	inq, err := p.do(ctx, http.MethodGet, p.baseURL+"/inquiries/"+id, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "retrieve failed")
		return nil, err
	}
	return inq, nil
}

func (p *HTTPProvider) do(ctx context.Context, method, url string, body io.Reader) (*models.Inquiry, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("build provider request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call provider: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, sentinel.ErrNotFound
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("provider returned %s: %s", resp.Status, readErrorMessage(resp.Body))
	}

	var inq models.Inquiry
	if err := json.NewDecoder(resp.Body).Decode(&inq); err != nil {
		return nil, fmt.Errorf("decode inquiry response: %w", err)
	}
	if inq.ID == "" {
		return nil, fmt.Errorf("provider response missing inquiry id")
	}
	inq.Normalize()
	return &inq, nil
}

// readErrorMessage extracts the provider's error message when it sends one.
func readErrorMessage(body io.Reader) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(body, 4096)).Decode(&payload); err != nil {
		return "unreadable error body"
	}
	if payload.Message != "" {
		return payload.Message
	}
	if payload.Error != "" {
		return payload.Error
	}
	return "no error detail"
}

package client

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"vetgate/internal/inquiry/models"
	reportmodels "vetgate/internal/report/models"
	"vetgate/internal/sentinel"
)

// MockProvider serves deterministic inquiry data with a configurable latency
// to mimic real-world provider calls. It backs demo mode and tests.
type MockProvider struct {
	Latency time.Duration

	mu        sync.Mutex
	inquiries map[string]*models.Inquiry
}

// NewMockProvider seeds the mock with one completed demo inquiry so the
// report pipeline is exercisable without a live provider.
func NewMockProvider(latency time.Duration) *MockProvider {
	p := &MockProvider{
		Latency:   latency,
		inquiries: make(map[string]*models.Inquiry),
	}
	demo := DemoInquiry()
	p.inquiries[demo.ID] = demo
	return p
}

func (p *MockProvider) Submit(ctx context.Context, req *models.InquiryRequest) (*models.Inquiry, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	inq := &models.Inquiry{
		ID:            uuid.New().String(),
		CreatedAt:     now,
		ExpiresAt:     now.Add(30 * 24 * time.Hour),
		Status:        models.StatusPending,
		Cancellable:   true,
		Services:      req.Services,
		Tags:          req.Tags,
		ServiceAddOns: req.ServiceAddOns,
		ContactName:   req.ContactName,
		SubjectName:   req.SubjectName,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		Language:      req.Language,
	}
	inq.Normalize()

	p.mu.Lock()
	p.inquiries[inq.ID] = inq
	p.mu.Unlock()

	copied := *inq
	return &copied, nil
}

func (p *MockProvider) Retrieve(ctx context.Context, id string) (*models.Inquiry, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	inq, ok := p.inquiries[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	copied := *inq
	return &copied, nil
}

func (p *MockProvider) wait(ctx context.Context) error {
	if p.Latency <= 0 {
		return nil
	}
	select {
	case <-time.After(p.Latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// DemoInquiryID is the stable identifier of the seeded completed inquiry.
const DemoInquiryID = "demo-inquiry-0001"

// DemoInquiry returns a completed inquiry with a full report covering every
// result block, suitable for exercising all render backends.
func DemoInquiry() *models.Inquiry {
	created := time.Date(2024, time.January, 10, 14, 30, 0, 0, time.UTC)
	completed := created.Add(72 * time.Hour)
	startDate := time.Date(2019, time.March, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2023, time.November, 30, 0, 0, 0, 0, time.UTC)
	salary := int64(72500)

	inq := &models.Inquiry{
		ID:           DemoInquiryID,
		CreatedAt:    created,
		CompletedAt:  &completed,
		ExpiresAt:    created.Add(30 * 24 * time.Hour),
		Status:       models.StatusCompleted,
		CreditStatus: models.CreditAvailable,
		Services: []models.Service{
			models.ServiceIdentity,
			models.ServiceCredit,
			models.ServiceCriminalCanada,
		},
		Tags:        []string{"rental-application"},
		ContactName: "Marie Tremblay",
		SubjectName: "Jean Dupont",
		Email:       "jean.dupont@example.com",
		Language:    models.LanguageFR,
		Report: &reportmodels.Report{
			ID:        "demo-report-0001",
			Status:    reportmodels.ReportCompleted,
			CreatedAt: created,
			UpdatedAt: completed,
			Results: reportmodels.Results{
				Identity: &reportmodels.IdentityVerification{
					Verified:     true,
					FullName:     "Jean Dupont",
					DateOfBirth:  "1988-06-14",
					Address:      "1200 Rue Sainte-Catherine, Montreal, QC",
					DocumentType: "Driver's Licence",
					Notes:        "Document matched government records.",
				},
				Employment: &reportmodels.EmploymentVerification{
					Verified:  true,
					Employer:  "Nordique Logistique Inc.",
					Position:  "Operations Analyst",
					StartDate: &startDate,
					EndDate:   &endDate,
					Salary:    &salary,
				},
				Criminal: &reportmodels.CriminalBackgroundCheck{
					Verified:          true,
					HasCriminalRecord: false,
					Records:           nil,
					Jurisdictions:     []string{"Canada"},
				},
			},
			Summary: reportmodels.Summary{
				OverallStatus: reportmodels.OverallPass,
				TotalChecks:   3,
				PassedChecks:  3,
				FailedChecks:  0,
				PendingChecks: 0,
			},
		},
	}
	inq.Normalize()
	return inq
}

// Package testutil provides shared fixture builders for tests.
package testutil

import (
	"time"

	"github.com/google/uuid"

	inquirymodels "vetgate/internal/inquiry/models"
	reportmodels "vetgate/internal/report/models"
)

// TestIDs provides convenient pre-generated IDs for tests.
// Use these for deterministic test data.
var TestIDs = struct {
	InquiryID1 string
	InquiryID2 string
	ReportID1  string
}{
	InquiryID1: "11111111-1111-1111-1111-111111111111",
	InquiryID2: "22222222-2222-2222-2222-222222222222",
	ReportID1:  "aaaa0000-0000-0000-0000-000000000001",
}

// RequestBuilder provides a fluent interface for building inquiry requests.
type RequestBuilder struct {
	req *inquirymodels.InquiryRequest
}

// NewRequestBuilder creates a RequestBuilder with a valid default request.
func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{
		req: &inquirymodels.InquiryRequest{
			ContactName: "Recruiting Contact",
			SubjectName: "Jordan Candidate",
			Services:    []inquirymodels.Service{inquirymodels.ServiceIdentity},
			Email:       "candidate@example.com",
			Language:    inquirymodels.LanguageEN,
		},
	}
}

func (b *RequestBuilder) WithContactName(name string) *RequestBuilder {
	b.req.ContactName = name
	return b
}

func (b *RequestBuilder) WithSubjectName(name string) *RequestBuilder {
	b.req.SubjectName = name
	return b
}

func (b *RequestBuilder) WithServices(services ...inquirymodels.Service) *RequestBuilder {
	b.req.Services = services
	return b
}

func (b *RequestBuilder) WithEmail(email string) *RequestBuilder {
	b.req.Email = email
	return b
}

func (b *RequestBuilder) WithLanguage(lang inquirymodels.Language) *RequestBuilder {
	b.req.Language = lang
	return b
}

func (b *RequestBuilder) WithTags(tags ...string) *RequestBuilder {
	b.req.Tags = tags
	return b
}

func (b *RequestBuilder) Build() *inquirymodels.InquiryRequest {
	return b.req
}

// InquiryBuilder provides a fluent interface for building test inquiries.
type InquiryBuilder struct {
	inquiry *inquirymodels.Inquiry
}

// NewInquiryBuilder creates an InquiryBuilder with sensible defaults: a
// pending identity-only inquiry created now, expiring in 30 days.
func NewInquiryBuilder() *InquiryBuilder {
	now := time.Now().UTC()
	return &InquiryBuilder{
		inquiry: &inquirymodels.Inquiry{
			ID:           uuid.NewString(),
			CreatedAt:    now,
			ExpiresAt:    now.Add(30 * 24 * time.Hour),
			Status:       inquirymodels.StatusPending,
			Cancellable:  true,
			CreditStatus: inquirymodels.CreditNotIncluded,
			Services:     []inquirymodels.Service{inquirymodels.ServiceIdentity},
			ContactName:  "Recruiting Contact",
			SubjectName:  "Jordan Candidate",
			Email:        "candidate@example.com",
			Language:     inquirymodels.LanguageEN,
		},
	}
}

func (b *InquiryBuilder) WithID(id string) *InquiryBuilder {
	b.inquiry.ID = id
	return b
}

func (b *InquiryBuilder) WithStatus(status inquirymodels.InquiryStatus) *InquiryBuilder {
	b.inquiry.Status = status
	return b
}

func (b *InquiryBuilder) WithServices(services ...inquirymodels.Service) *InquiryBuilder {
	b.inquiry.Services = services
	return b
}

func (b *InquiryBuilder) WithCreditStatus(status inquirymodels.CreditStatus) *InquiryBuilder {
	b.inquiry.CreditStatus = status
	return b
}

func (b *InquiryBuilder) WithSubjectName(name string) *InquiryBuilder {
	b.inquiry.SubjectName = name
	return b
}

func (b *InquiryBuilder) WithReport(report *reportmodels.Report) *InquiryBuilder {
	b.inquiry.Report = report
	return b
}

func (b *InquiryBuilder) Cancellable(cancellable bool) *InquiryBuilder {
	b.inquiry.Cancellable = cancellable
	return b
}

// Completed marks the inquiry Completed with a completion timestamp.
func (b *InquiryBuilder) Completed() *InquiryBuilder {
	completed := b.inquiry.CreatedAt.Add(48 * time.Hour)
	b.inquiry.Status = inquirymodels.StatusCompleted
	b.inquiry.CompletedAt = &completed
	b.inquiry.Cancellable = false
	return b
}

func (b *InquiryBuilder) Build() *inquirymodels.Inquiry {
	return b.inquiry
}

// ReportBuilder provides a fluent interface for building test reports.
type ReportBuilder struct {
	report *reportmodels.Report
}

// NewReportBuilder creates a ReportBuilder for a completed report with a
// passing identity block and a consistent summary.
func NewReportBuilder() *ReportBuilder {
	now := time.Now().UTC()
	return &ReportBuilder{
		report: &reportmodels.Report{
			ID:        TestIDs.ReportID1,
			Status:    reportmodels.ReportCompleted,
			CreatedAt: now,
			UpdatedAt: now,
			Results: reportmodels.Results{
				Identity: &reportmodels.IdentityVerification{
					Verified: true,
					FullName: "Jordan Candidate",
				},
			},
			Summary: reportmodels.Summary{
				OverallStatus: reportmodels.OverallPass,
				TotalChecks:   1,
				PassedChecks:  1,
			},
		},
	}
}

func (b *ReportBuilder) WithID(id string) *ReportBuilder {
	b.report.ID = id
	return b
}

func (b *ReportBuilder) WithStatus(status reportmodels.ReportStatus) *ReportBuilder {
	b.report.Status = status
	return b
}

func (b *ReportBuilder) WithIdentity(block *reportmodels.IdentityVerification) *ReportBuilder {
	b.report.Results.Identity = block
	return b
}

func (b *ReportBuilder) WithEmployment(block *reportmodels.EmploymentVerification) *ReportBuilder {
	b.report.Results.Employment = block
	return b
}

func (b *ReportBuilder) WithCriminal(block *reportmodels.CriminalBackgroundCheck) *ReportBuilder {
	b.report.Results.Criminal = block
	return b
}

func (b *ReportBuilder) WithEducation(block *reportmodels.EducationVerification) *ReportBuilder {
	b.report.Results.Education = block
	return b
}

func (b *ReportBuilder) WithSummary(summary reportmodels.Summary) *ReportBuilder {
	b.report.Summary = summary
	return b
}

func (b *ReportBuilder) Build() *reportmodels.Report {
	return b.report
}

// NewCompletedInquiry builds a completed inquiry carrying a consistent report.
func NewCompletedInquiry() *inquirymodels.Inquiry {
	return NewInquiryBuilder().
		WithID(TestIDs.InquiryID1).
		Completed().
		WithReport(NewReportBuilder().Build()).
		Build()
}

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	reportmodels "vetgate/internal/report/models"
)

type InquirySuite struct {
	suite.Suite
}

func TestInquirySuite(t *testing.T) {
	suite.Run(t, new(InquirySuite))
}

func (s *InquirySuite) newInquiry(status InquiryStatus) *Inquiry {
	now := time.Now()
	return &Inquiry{
		ID:          "inq-1",
		CreatedAt:   now,
		ExpiresAt:   now.Add(30 * 24 * time.Hour),
		Status:      status,
		Cancellable: true,
		Services:    []Service{ServiceIdentity},
		ContactName: "Contact",
		SubjectName: "Subject",
		Language:    LanguageEN,
	}
}

// TestNormalizeTerminalNeverCancellable verifies that terminal inquiries are
// forced non-cancellable whatever the provider sent.
func (s *InquirySuite) TestNormalizeTerminalNeverCancellable() {
	for _, status := range []InquiryStatus{StatusCompleted, StatusSuspended, StatusCancelled} {
		inq := s.newInquiry(status)
		inq.Cancellable = true

		inq.Normalize()
		s.False(inq.Cancellable, "status %s must not be cancellable", status)
	}

	active := s.newInquiry(StatusPending)
	active.Normalize()
	s.True(active.Cancellable, "pending inquiries keep the provider's flag")
}

// TestNormalizeDropsReportUnlessCompleted verifies the report visibility rule:
// a report is only exposed on a Completed inquiry.
func (s *InquirySuite) TestNormalizeDropsReportUnlessCompleted() {
	report := &reportmodels.Report{ID: "rep-1", Status: reportmodels.ReportCompleted}

	inProgress := s.newInquiry(StatusInProgress)
	inProgress.Report = report
	inProgress.Normalize()
	s.Nil(inProgress.Report)
	s.False(inProgress.HasReport())

	completed := s.newInquiry(StatusCompleted)
	completed.Report = report
	completed.Normalize()
	s.NotNil(completed.Report)
	s.True(completed.HasReport())
}

// TestNormalizeDerivesCreditStatus verifies the service set overrides the
// provider's credit status.
func (s *InquirySuite) TestNormalizeDerivesCreditStatus() {
	noCredit := s.newInquiry(StatusInProgress)
	noCredit.CreditStatus = CreditAvailable
	noCredit.Normalize()
	s.Equal(CreditNotIncluded, noCredit.CreditStatus)

	withCredit := s.newInquiry(StatusInProgress)
	withCredit.Services = []Service{ServiceIdentity, ServiceCredit}
	withCredit.CreditStatus = CreditAvailable
	withCredit.Normalize()
	s.Equal(CreditAvailable, withCredit.CreditStatus)
}

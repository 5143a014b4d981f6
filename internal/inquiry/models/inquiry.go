package models

import (
	"time"

	reportmodels "vetgate/internal/report/models"
)

// Inquiry is the provider-materialized state of a verification request. It is
// created by the provider in response to submission and is read-only from
// this service's perspective; fresher state is obtained by re-fetching by id.
type Inquiry struct {
	ID           string        `json:"id"`
	CreatedAt    time.Time     `json:"createdAt"`
	CompletedAt  *time.Time    `json:"completedAt,omitempty"`
	ExpiresAt    time.Time     `json:"expiresAt"`
	Status       InquiryStatus `json:"status"`
	Cancellable  bool          `json:"cancellable"`
	CreditStatus CreditStatus  `json:"creditStatus"`

	Services      []Service `json:"services"`
	Tags          []string  `json:"tags,omitempty"`
	ServiceAddOns []string  `json:"serviceAddOns,omitempty"`

	ContactName string   `json:"contactName"`
	SubjectName string   `json:"subjectName"`
	Email       string   `json:"email,omitempty"`
	PhoneNumber string   `json:"phoneNumber,omitempty"`
	Language    Language `json:"language"`

	// Report is present only once Status is Completed.
	Report *reportmodels.Report `json:"report,omitempty"`
}

// HasReport reports whether a completed report is attached.
func (i *Inquiry) HasReport() bool {
	return i.Report != nil
}

// Normalize enforces the invariants this service owns over provider data:
// credit status is derived from the requested services, terminal inquiries
// are never cancellable, and a report on a non-completed inquiry is dropped.
func (i *Inquiry) Normalize() {
	i.CreditStatus = DeriveCreditStatus(i.Services, i.CreditStatus)
	if i.Status.IsTerminal() {
		i.Cancellable = false
	}
	if i.Status != StatusCompleted {
		i.Report = nil
	}
}

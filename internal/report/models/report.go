// Package models defines the structured outcome of a completed inquiry:
// per-service verification results plus a pass/fail summary.
package models

import (
	"fmt"
	"time"
)

// ReportStatus represents the provider-side state of report generation.
type ReportStatus string

const (
	ReportPending   ReportStatus = "pending"
	ReportCompleted ReportStatus = "completed"
	ReportFailed    ReportStatus = "failed"
)

func (s ReportStatus) IsValid() bool {
	return s == ReportPending || s == ReportCompleted || s == ReportFailed
}

// OverallStatus is the aggregate verdict across all checks.
type OverallStatus string

const (
	OverallPass    OverallStatus = "pass"
	OverallFail    OverallStatus = "fail"
	OverallPending OverallStatus = "pending"
)

// Report is the structured outcome of a completed inquiry.
type Report struct {
	ID        string       `json:"id"`
	Status    ReportStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	Results   Results      `json:"results"`
	Summary   Summary      `json:"summary"`
}

// Results holds the per-service verification blocks. Each block is optional
// and present only when the corresponding check was requested and applicable.
type Results struct {
	Identity   *IdentityVerification    `json:"identity_verification,omitempty"`
	Employment *EmploymentVerification  `json:"employment_verification,omitempty"`
	Criminal   *CriminalBackgroundCheck `json:"criminal_background_check,omitempty"`
	Education  *EducationVerification   `json:"education_verification,omitempty"`
}

// IdentityVerification is the identity check result block.
type IdentityVerification struct {
	Verified     bool   `json:"verified"`
	FullName     string `json:"full_name,omitempty"`
	DateOfBirth  string `json:"date_of_birth,omitempty"`
	Address      string `json:"address,omitempty"`
	DocumentType string `json:"document_type,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// EmploymentVerification is the employment check result block.
type EmploymentVerification struct {
	Verified         bool       `json:"verified"`
	Employer         string     `json:"employer,omitempty"`
	Position         string     `json:"position,omitempty"`
	StartDate        *time.Time `json:"start_date,omitempty"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	Salary           *int64     `json:"salary,omitempty"`
	ReasonForLeaving string     `json:"reason_for_leaving,omitempty"`
	Notes            string     `json:"notes,omitempty"`
}

// CriminalBackgroundCheck is the criminal record check result block.
type CriminalBackgroundCheck struct {
	Verified          bool             `json:"verified"`
	HasCriminalRecord bool             `json:"has_criminal_record"`
	Records           []CriminalRecord `json:"records"`
	Jurisdictions     []string         `json:"jurisdictions,omitempty"`
	Notes             string           `json:"notes,omitempty"`
}

// CriminalRecord is one entry on a criminal history. The list is empty when
// HasCriminalRecord is false.
type CriminalRecord struct {
	Offense      string     `json:"offense"`
	Date         *time.Time `json:"date,omitempty"`
	Disposition  string     `json:"disposition"`
	Jurisdiction string     `json:"jurisdiction"`
}

// EducationVerification is the education check result block.
type EducationVerification struct {
	Verified       bool   `json:"verified"`
	Institution    string `json:"institution,omitempty"`
	Degree         string `json:"degree,omitempty"`
	GraduationYear string `json:"graduation_year,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// Summary aggregates check counts and the overall verdict.
type Summary struct {
	OverallStatus OverallStatus `json:"overall_status"`
	TotalChecks   int           `json:"total_checks"`
	PassedChecks  int           `json:"passed_checks"`
	FailedChecks  int           `json:"failed_checks"`
	PendingChecks int           `json:"pending_checks"`
}

// Validate enforces the summary invariants: counts must add up, and the
// overall status is fail exactly when at least one check failed.
func (s Summary) Validate() error {
	if s.TotalChecks != s.PassedChecks+s.FailedChecks+s.PendingChecks {
		return fmt.Errorf("summary counts do not add up: total=%d passed=%d failed=%d pending=%d",
			s.TotalChecks, s.PassedChecks, s.FailedChecks, s.PendingChecks)
	}
	if (s.OverallStatus == OverallFail) != (s.FailedChecks > 0) {
		return fmt.Errorf("overall status %q inconsistent with %d failed checks", s.OverallStatus, s.FailedChecks)
	}
	return nil
}

// PopulatedKeys returns the result keys present on the report, in the fixed
// rendering order. All render backends derive their block selection from this.
func (r *Results) PopulatedKeys() []string {
	var keys []string
	if r.Identity != nil {
		keys = append(keys, "identity_verification")
	}
	if r.Employment != nil {
		keys = append(keys, "employment_verification")
	}
	if r.Criminal != nil {
		keys = append(keys, "criminal_background_check")
	}
	if r.Education != nil {
		keys = append(keys, "education_verification")
	}
	return keys
}

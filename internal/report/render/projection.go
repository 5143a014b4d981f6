// Package render projects a completed report into its three output channels:
// an on-screen view tree, a self-contained print HTML document, and a
// paginated PDF. All three consume the same Projection so no channel can
// show or hide a block the others don't.
package render

import (
	"strings"
	"time"

	inquirymodels "vetgate/internal/inquiry/models"
	"vetgate/internal/report/models"
	dErrors "vetgate/pkg/domain-errors"
)

// Field is one labelled value inside a section. Absent optional values are
// never materialized as Fields; they are skipped at projection time.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// RecordItem is one itemized criminal record entry.
type RecordItem struct {
	Offense      string `json:"offense"`
	Date         string `json:"date,omitempty"`
	Disposition  string `json:"disposition"`
	Jurisdiction string `json:"jurisdiction"`
}

// DetailBlock is one verification result section. Key matches the report's
// results key; Verified always renders as a binary badge.
type DetailBlock struct {
	Key      string       `json:"key"`
	Title    string       `json:"title"`
	Verified bool         `json:"verified"`
	Fields   []Field      `json:"fields,omitempty"`
	Records  []RecordItem `json:"records,omitempty"`
}

// SummarySection reproduces the report's check counts verbatim.
type SummarySection struct {
	OverallStatus string `json:"overall_status"`
	TotalChecks   int    `json:"total_checks"`
	PassedChecks  int    `json:"passed_checks"`
	FailedChecks  int    `json:"failed_checks"`
	PendingChecks int    `json:"pending_checks"`
}

// Projection is the single field-selection pass shared by every backend.
// Section order is fixed: header/status, services, additional info, summary
// stats, then detail blocks (identity, employment, criminal, education).
type Projection struct {
	Title       string    `json:"title"`
	InquiryID   string    `json:"inquiry_id"`
	GeneratedAt time.Time `json:"generated_at"`

	Header         []Field         `json:"header"`
	Services       []string        `json:"services"`
	AdditionalInfo []Field         `json:"additional_info,omitempty"`
	Summary        *SummarySection `json:"summary,omitempty"`
	Details        []DetailBlock   `json:"details,omitempty"`

	// ShareURL is appended to artifact footers when set.
	ShareURL string `json:"share_url,omitempty"`
}

// Keys returns the detail block keys in render order, used to assert
// cross-channel parity.
func (p *Projection) Keys() []string {
	keys := make([]string, 0, len(p.Details))
	for _, d := range p.Details {
		keys = append(keys, d.Key)
	}
	return keys
}

const reportTitle = "Background Verification Report"

// Project builds the full projection for a completed inquiry. It fails with
// report_not_ready when no report is attached, and with render_inconsistency
// when the summary counts don't add up; a detected inconsistency is never
// rendered partially.
func Project(inq *inquirymodels.Inquiry, now time.Time) (*Projection, error) {
	if inq == nil {
		return nil, dErrors.New(dErrors.CodeRenderError, "inquiry is required")
	}
	if inq.Report == nil || inq.Status != inquirymodels.StatusCompleted {
		return nil, dErrors.New(dErrors.CodeReportNotReady, "report is not ready for inquiry "+inq.ID)
	}
	report := inq.Report
	if err := report.Summary.Validate(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeRenderInconsistency, "report summary failed consistency check")
	}

	p := ProjectShell(inq, now)
	p.Summary = &SummarySection{
		OverallStatus: string(report.Summary.OverallStatus),
		TotalChecks:   report.Summary.TotalChecks,
		PassedChecks:  report.Summary.PassedChecks,
		FailedChecks:  report.Summary.FailedChecks,
		PendingChecks: report.Summary.PendingChecks,
	}
	p.Details = projectDetails(&report.Results)
	return p, nil
}

// ProjectShell builds the status/summary shell that may still be shown when
// detailed results cannot be rendered. It never touches the report results.
func ProjectShell(inq *inquirymodels.Inquiry, now time.Time) *Projection {
	header := []Field{
		{Label: "Subject", Value: inq.SubjectName},
		{Label: "Contact", Value: inq.ContactName},
		{Label: "Status", Value: string(inq.Status)},
		{Label: "Created", Value: FormatDate(inq.CreatedAt)},
	}
	if inq.CompletedAt != nil {
		header = append(header, Field{Label: "Completed", Value: FormatDate(*inq.CompletedAt)})
	}
	header = append(header, Field{Label: "Expires", Value: FormatDate(inq.ExpiresAt)})
	if inq.CreditStatus != inquirymodels.CreditNotIncluded {
		header = append(header, Field{Label: "Credit Status", Value: string(inq.CreditStatus)})
	}

	services := make([]string, 0, len(inq.Services))
	for _, svc := range inq.Services {
		services = append(services, svc.Label())
	}

	var info []Field
	if inq.Language != "" {
		info = append(info, Field{Label: "Language", Value: string(inq.Language)})
	}
	if inq.Email != "" {
		info = append(info, Field{Label: "Email", Value: inq.Email})
	}
	if inq.PhoneNumber != "" {
		info = append(info, Field{Label: "Phone", Value: inq.PhoneNumber})
	}
	if len(inq.Tags) > 0 {
		info = append(info, Field{Label: "Tags", Value: joinComma(inq.Tags)})
	}
	if len(inq.ServiceAddOns) > 0 {
		info = append(info, Field{Label: "Add-ons", Value: joinComma(inq.ServiceAddOns)})
	}

	return &Projection{
		Title:          reportTitle,
		InquiryID:      inq.ID,
		GeneratedAt:    now,
		Header:         header,
		Services:       services,
		AdditionalInfo: info,
	}
}

// projectDetails emits one block per populated result key, in fixed order.
// Optional sub-fields are skipped when absent, never shown as placeholders.
func projectDetails(results *models.Results) []DetailBlock {
	var blocks []DetailBlock

	if r := results.Identity; r != nil {
		block := DetailBlock{Key: "identity_verification", Title: "Identity Verification", Verified: r.Verified}
		block.Fields = appendField(block.Fields, "Full Name", r.FullName)
		block.Fields = appendField(block.Fields, "Date of Birth", r.DateOfBirth)
		block.Fields = appendField(block.Fields, "Address", r.Address)
		block.Fields = appendField(block.Fields, "Document Type", r.DocumentType)
		block.Fields = appendField(block.Fields, "Notes", r.Notes)
		blocks = append(blocks, block)
	}

	if r := results.Employment; r != nil {
		block := DetailBlock{Key: "employment_verification", Title: "Employment Verification", Verified: r.Verified}
		block.Fields = appendField(block.Fields, "Employer", r.Employer)
		block.Fields = appendField(block.Fields, "Position", r.Position)
		if r.StartDate != nil {
			block.Fields = append(block.Fields, Field{Label: "Start Date", Value: FormatDate(*r.StartDate)})
		}
		if r.EndDate != nil {
			block.Fields = append(block.Fields, Field{Label: "End Date", Value: FormatDate(*r.EndDate)})
		}
		if r.Salary != nil {
			block.Fields = append(block.Fields, Field{Label: "Salary", Value: FormatCurrency(*r.Salary)})
		}
		block.Fields = appendField(block.Fields, "Reason for Leaving", r.ReasonForLeaving)
		block.Fields = appendField(block.Fields, "Notes", r.Notes)
		blocks = append(blocks, block)
	}

	if r := results.Criminal; r != nil {
		block := DetailBlock{Key: "criminal_background_check", Title: "Criminal Background Check", Verified: r.Verified}
		record := "No"
		if r.HasCriminalRecord {
			record = "Yes"
		}
		block.Fields = append(block.Fields, Field{Label: "Criminal Record", Value: record})
		if len(r.Jurisdictions) > 0 {
			block.Fields = append(block.Fields, Field{Label: "Jurisdictions", Value: joinComma(r.Jurisdictions)})
		}
		block.Fields = appendField(block.Fields, "Notes", r.Notes)
		// The records subsection is omitted entirely when the list is empty;
		// only the has-record badge above remains.
		for _, rec := range r.Records {
			item := RecordItem{
				Offense:      rec.Offense,
				Disposition:  rec.Disposition,
				Jurisdiction: rec.Jurisdiction,
			}
			if rec.Date != nil {
				item.Date = FormatDate(*rec.Date)
			}
			block.Records = append(block.Records, item)
		}
		blocks = append(blocks, block)
	}

	if r := results.Education; r != nil {
		block := DetailBlock{Key: "education_verification", Title: "Education Verification", Verified: r.Verified}
		block.Fields = appendField(block.Fields, "Institution", r.Institution)
		block.Fields = appendField(block.Fields, "Degree", r.Degree)
		block.Fields = appendField(block.Fields, "Graduation Year", r.GraduationYear)
		block.Fields = appendField(block.Fields, "Notes", r.Notes)
		blocks = append(blocks, block)
	}

	return blocks
}

func appendField(fields []Field, label, value string) []Field {
	if value == "" {
		return fields
	}
	return append(fields, Field{Label: label, Value: value})
}

func joinComma(values []string) string {
	return strings.Join(values, ", ")
}

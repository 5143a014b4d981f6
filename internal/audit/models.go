package audit

import "time"

// Event is emitted from domain logic to capture key inquiry lifecycle
// actions. Keep it transport-agnostic so sinks can fan out.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	InquiryID string    `json:"inquiry_id"`
	Action    Action    `json:"action"`
	Subject   string    `json:"subject,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
}

// Action enumerates the audited lifecycle actions.
type Action string

const (
	ActionInquiryCreated   Action = "inquiry_created"
	ActionInquiryRetrieved Action = "inquiry_retrieved"
	ActionInquiryCancelled Action = "inquiry_cancelled"
	ActionReportRendered   Action = "report_rendered"
	ActionReportExported   Action = "report_exported"
)

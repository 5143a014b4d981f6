package models

import (
	s "vetgate/pkg/string"
	"vetgate/pkg/validation"
)

// InquiryRequest is the outbound creation payload sent to the verification
// provider. It is constructed from user input and never persisted locally.
type InquiryRequest struct {
	ContactName      string           `json:"contactName" validate:"required,notblank"`
	SubjectName      string           `json:"subjectName" validate:"required,notblank"`
	Services         []Service        `json:"services" validate:"required,min=1"`
	Email            string           `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber      string           `json:"phoneNumber,omitempty"`
	Language         Language         `json:"language" validate:"required,oneof=FR EN"`
	NotificationType NotificationType `json:"notificationType,omitempty"`
	DelegatePayment  bool             `json:"delegatePayment"`
	Tags             []string         `json:"tags,omitempty"`
	ServiceAddOns    []string         `json:"serviceAddOns,omitempty"`

	// Detail blocks are only meaningful when identity and/or credit is
	// selected, but the model never rejects extras; the UI decides which
	// sections to surface.
	Address    *AddressDetails    `json:"address,omitempty"`
	Employment *EmploymentDetails `json:"employment,omitempty"`
	Education  *EducationDetails  `json:"education,omitempty"`
}

// AddressDetails is the current-address detail block.
type AddressDetails struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	Province   string `json:"province,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// EmploymentDetails is the employment-history detail block.
type EmploymentDetails struct {
	Employer  string `json:"employer,omitempty"`
	Position  string `json:"position,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// EducationDetails is the education-history detail block.
type EducationDetails struct {
	Institution string `json:"institution,omitempty"`
	Degree      string `json:"degree,omitempty"`
	Year        string `json:"year,omitempty"`
}

// FieldErrorCode categorizes a single validation violation.
type FieldErrorCode string

const (
	ErrCodeRequired      FieldErrorCode = "required"
	ErrCodeInvalidEnum   FieldErrorCode = "invalid_enum"
	ErrCodeInvalidFormat FieldErrorCode = "invalid_format"
)

// FieldErrors maps a field name to the violation found on it. Validation
// evaluates every rule independently so all violations surface together.
type FieldErrors map[string]FieldErrorCode

func (fe FieldErrors) IsEmpty() bool {
	return len(fe) == 0
}

// Fields returns the violated field names, for logging and error messages.
func (fe FieldErrors) Fields() []string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	return fields
}

// Normalize trims surrounding whitespace from the free-text fields before
// validation and submission.
func (r *InquiryRequest) Normalize() {
	s.TrimStrings(&r.ContactName, &r.SubjectName, &r.Email, &r.PhoneNumber)
	s.TrimSlice(r.Tags)
	s.TrimSlice(r.ServiceAddOns)
}

// Validate checks the request against the creation contract and reports every
// violation. The structural rules live in the validate tags; only service
// element validity needs a hand check, since the tags cannot tell a malformed
// service name from a missing list. It is pure and idempotent; optional
// free-text fields (phoneNumber, tags, serviceAddOns, detail blocks) never
// produce errors. Empty-string email is treated as absent, not invalid.
func (r *InquiryRequest) Validate() FieldErrors {
	errs := FieldErrors{}

	for _, v := range validation.Violations(r) {
		if v.Field == "" {
			continue
		}
		errs[v.Field] = codeForTag(v.Tag)
	}

	for _, svc := range r.Services {
		if !svc.IsValid() {
			errs["services"] = ErrCodeInvalidEnum
			break
		}
	}

	return errs
}

func codeForTag(tag string) FieldErrorCode {
	if tag == "email" {
		return ErrCodeInvalidFormat
	}
	// required, notblank, min, oneof: the field is missing or unusable.
	return ErrCodeRequired
}

// DetailSection identifies a conditional form section surfaced by the UI.
type DetailSection string

const (
	SectionAddress    DetailSection = "address"
	SectionEmployment DetailSection = "employment"
	SectionEducation  DetailSection = "education"
)

// VisibleDetailSections resolves which detail sections are meaningful for the
// selected service set. Pure lookup, independent of any UI concern: identity
// surfaces address and education, credit surfaces address and employment.
func VisibleDetailSections(services []Service) map[DetailSection]bool {
	sections := make(map[DetailSection]bool)
	if HasService(services, ServiceIdentity) {
		sections[SectionAddress] = true
		sections[SectionEducation] = true
	}
	if HasService(services, ServiceCredit) {
		sections[SectionAddress] = true
		sections[SectionEmployment] = true
	}
	return sections
}

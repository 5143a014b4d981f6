package models

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// RequestValidationSuite tests the inquiry creation contract.
type RequestValidationSuite struct {
	suite.Suite
}

func TestRequestValidationSuite(t *testing.T) {
	suite.Run(t, new(RequestValidationSuite))
}

func (s *RequestValidationSuite) validRequest() *InquiryRequest {
	return &InquiryRequest{
		ContactName: "Recruiting Contact",
		SubjectName: "Jordan Candidate",
		Services:    []Service{ServiceIdentity},
		Email:       "candidate@example.com",
		Language:    LanguageEN,
	}
}

func (s *RequestValidationSuite) TestValidRequestPasses() {
	s.True(s.validRequest().Validate().IsEmpty())
}

// TestAllViolationsReportedTogether verifies that validation evaluates every
// rule independently instead of stopping at the first failure.
func (s *RequestValidationSuite) TestAllViolationsReportedTogether() {
	req := &InquiryRequest{
		ContactName: "   ",
		SubjectName: "",
		Services:    nil,
		Email:       "not-an-email",
		Language:    Language("DE"),
	}

	errs := req.Validate()
	s.Len(errs, 5)
	s.Equal(ErrCodeRequired, errs["contactName"])
	s.Equal(ErrCodeRequired, errs["subjectName"])
	s.Equal(ErrCodeRequired, errs["services"])
	s.Equal(ErrCodeInvalidFormat, errs["email"])
	s.Equal(ErrCodeRequired, errs["language"])
}

func (s *RequestValidationSuite) TestNameRules() {
	s.Run("blank-only contact name is rejected", func() {
		req := s.validRequest()
		req.ContactName = " \t "
		s.Equal(ErrCodeRequired, req.Validate()["contactName"])
	})

	s.Run("blank-only subject name is rejected", func() {
		req := s.validRequest()
		req.SubjectName = "  "
		s.Equal(ErrCodeRequired, req.Validate()["subjectName"])
	})
}

func (s *RequestValidationSuite) TestServiceRules() {
	s.Run("empty service list is rejected", func() {
		req := s.validRequest()
		req.Services = []Service{}
		s.Equal(ErrCodeRequired, req.Validate()["services"])
	})

	s.Run("unknown service tag is rejected", func() {
		req := s.validRequest()
		req.Services = []Service{ServiceIdentity, Service("palm_reading")}
		s.Equal(ErrCodeInvalidEnum, req.Validate()["services"])
	})
}

func (s *RequestValidationSuite) TestEmailRules() {
	s.Run("absent email is fine", func() {
		req := s.validRequest()
		req.Email = ""
		s.True(req.Validate().IsEmpty(), "empty string means absent, not invalid")
	})

	s.Run("malformed email is rejected", func() {
		req := s.validRequest()
		req.Email = "missing-at-sign.example.com"
		s.Equal(ErrCodeInvalidFormat, req.Validate()["email"])
	})
}

// TestOptionalFieldsNeverError verifies that free-text optional fields are
// accepted regardless of content.
func (s *RequestValidationSuite) TestOptionalFieldsNeverError() {
	req := s.validRequest()
	req.PhoneNumber = "not even a phone number!!"
	req.Tags = []string{"", "   ", "x"}
	req.ServiceAddOns = []string{"??"}
	req.Address = &AddressDetails{Street: ""}
	req.Employment = &EmploymentDetails{StartDate: "not a date"}
	req.Education = &EducationDetails{Year: "????"}

	s.True(req.Validate().IsEmpty())
}

// TestNormalizeTrimsFreeText verifies whitespace padding is stripped before
// validation, so a padded-but-present name passes while a blank-only one is
// still rejected.
func (s *RequestValidationSuite) TestNormalizeTrimsFreeText() {
	req := s.validRequest()
	req.ContactName = "  Recruiting Contact  "
	req.Email = " candidate@example.com "
	req.PhoneNumber = " 514-555-0100 "
	req.Tags = []string{" urgent ", "batch-7"}

	req.Normalize()

	s.Equal("Recruiting Contact", req.ContactName)
	s.Equal("candidate@example.com", req.Email)
	s.Equal("514-555-0100", req.PhoneNumber)
	s.Equal([]string{"urgent", "batch-7"}, req.Tags)
	s.True(req.Validate().IsEmpty())
}

func (s *RequestValidationSuite) TestValidateIsIdempotent() {
	req := s.validRequest()
	req.Email = "bad"

	first := req.Validate()
	second := req.Validate()
	s.Equal(first, second)
}

// TestVisibleDetailSections verifies the conditional section rules: identity
// surfaces address and education, credit surfaces address and employment.
func (s *RequestValidationSuite) TestVisibleDetailSections() {
	s.Run("identity only", func() {
		sections := VisibleDetailSections([]Service{ServiceIdentity})
		s.True(sections[SectionAddress])
		s.True(sections[SectionEducation])
		s.False(sections[SectionEmployment])
	})

	s.Run("credit only", func() {
		sections := VisibleDetailSections([]Service{ServiceCredit})
		s.True(sections[SectionAddress])
		s.True(sections[SectionEmployment])
		s.False(sections[SectionEducation])
	})

	s.Run("identity and credit surface all three", func() {
		sections := VisibleDetailSections([]Service{ServiceIdentity, ServiceCredit})
		s.Len(sections, 3)
	})

	s.Run("criminal checks surface nothing extra", func() {
		sections := VisibleDetailSections([]Service{ServiceCriminalCanada, ServiceOnlineReputation})
		s.Empty(sections)
	})
}

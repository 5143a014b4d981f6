package models

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// ValueObjectSuite tests the enumerated value types and their rules.
type ValueObjectSuite struct {
	suite.Suite
}

func TestValueObjectSuite(t *testing.T) {
	suite.Run(t, new(ValueObjectSuite))
}

func (s *ValueObjectSuite) TestServiceValidity() {
	for _, svc := range AllServices {
		s.True(svc.IsValid(), "service %s should be valid", svc)
	}
	s.False(Service("credit_check").IsValid())
	s.False(Service("").IsValid())
	s.False(Service("Identity").IsValid(), "service tags are case-sensitive")
}

func (s *ValueObjectSuite) TestServiceLabels() {
	s.Equal("Identity Verification", ServiceIdentity.Label())
	s.Equal("Criminal Record Check (Quebec)", ServiceCriminalQuebec.Label())
	s.Equal("unknown", Service("unknown").Label(), "unknown tags fall back to the raw value")
}

func (s *ValueObjectSuite) TestStatusTransitions() {
	s.Run("pending can start or cancel", func() {
		s.True(StatusPending.CanTransitionTo(StatusInProgress))
		s.True(StatusPending.CanTransitionTo(StatusCancelled))
		s.False(StatusPending.CanTransitionTo(StatusCompleted))
		s.False(StatusPending.CanTransitionTo(StatusSuspended))
	})

	s.Run("in progress can finish, suspend, or cancel", func() {
		s.True(StatusInProgress.CanTransitionTo(StatusCompleted))
		s.True(StatusInProgress.CanTransitionTo(StatusSuspended))
		s.True(StatusInProgress.CanTransitionTo(StatusCancelled))
		s.False(StatusInProgress.CanTransitionTo(StatusPending))
	})

	s.Run("terminal statuses allow no transitions", func() {
		for _, terminal := range []InquiryStatus{StatusCompleted, StatusSuspended, StatusCancelled} {
			s.True(terminal.IsTerminal())
			for _, target := range []InquiryStatus{StatusPending, StatusInProgress, StatusCompleted, StatusSuspended, StatusCancelled} {
				s.False(terminal.CanTransitionTo(target),
					"%s -> %s should be rejected", terminal, target)
			}
		}
	})

	s.Run("non-terminal statuses", func() {
		s.False(StatusPending.IsTerminal())
		s.False(StatusInProgress.IsTerminal())
	})
}

// TestDeriveCreditStatus verifies that the requested service set, not the
// provider's reported value, decides whether credit is included.
func (s *ValueObjectSuite) TestDeriveCreditStatus() {
	withCredit := []Service{ServiceIdentity, ServiceCredit}
	withoutCredit := []Service{ServiceIdentity}

	s.Run("credit not requested is always NotIncluded", func() {
		s.Equal(CreditNotIncluded, DeriveCreditStatus(withoutCredit, CreditAvailable))
		s.Equal(CreditNotIncluded, DeriveCreditStatus(withoutCredit, CreditUnavailable))
		s.Equal(CreditNotIncluded, DeriveCreditStatus(nil, CreditAvailable))
	})

	s.Run("credit requested keeps the reported value", func() {
		s.Equal(CreditAvailable, DeriveCreditStatus(withCredit, CreditAvailable))
		s.Equal(CreditUnavailable, DeriveCreditStatus(withCredit, CreditUnavailable))
	})

	s.Run("credit requested with unusable reported value defaults to Unavailable", func() {
		s.Equal(CreditUnavailable, DeriveCreditStatus(withCredit, CreditNotIncluded))
		s.Equal(CreditUnavailable, DeriveCreditStatus(withCredit, CreditStatus("")))
	})
}

func (s *ValueObjectSuite) TestLanguage() {
	s.True(LanguageFR.IsValid())
	s.True(LanguageEN.IsValid())
	s.False(Language("fr").IsValid(), "language codes are upper-case")
	s.False(Language("").IsValid())
}

package models

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type SummarySuite struct {
	suite.Suite
}

func TestSummarySuite(t *testing.T) {
	suite.Run(t, new(SummarySuite))
}

// TestCountsMustAddUp verifies the summary invariant
// total = passed + failed + pending.
func (s *SummarySuite) TestCountsMustAddUp() {
	valid := Summary{
		OverallStatus: OverallPass,
		TotalChecks:   4,
		PassedChecks:  2,
		FailedChecks:  0,
		PendingChecks: 2,
	}
	s.NoError(valid.Validate())

	broken := valid
	broken.TotalChecks = 5
	s.Error(broken.Validate())
}

// TestOverallFailIffAnyFailed verifies the overall status rule in both
// directions: fail with zero failures and non-fail with failures are both
// inconsistent.
func (s *SummarySuite) TestOverallFailIffAnyFailed() {
	s.Run("failed checks require overall fail", func() {
		summary := Summary{
			OverallStatus: OverallPass,
			TotalChecks:   2,
			PassedChecks:  1,
			FailedChecks:  1,
		}
		s.Error(summary.Validate())

		summary.OverallStatus = OverallFail
		s.NoError(summary.Validate())
	})

	s.Run("overall fail requires a failed check", func() {
		summary := Summary{
			OverallStatus: OverallFail,
			TotalChecks:   2,
			PassedChecks:  2,
		}
		s.Error(summary.Validate())
	})

	s.Run("pending overall with no failures is consistent", func() {
		summary := Summary{
			OverallStatus: OverallPending,
			TotalChecks:   3,
			PassedChecks:  1,
			PendingChecks: 2,
		}
		s.NoError(summary.Validate())
	})
}

// TestPopulatedKeys verifies block selection follows the fixed render order.
func (s *SummarySuite) TestPopulatedKeys() {
	results := Results{
		Education: &EducationVerification{Verified: true},
		Identity:  &IdentityVerification{Verified: true},
	}
	s.Equal([]string{"identity_verification", "education_verification"}, results.PopulatedKeys())

	all := Results{
		Identity:   &IdentityVerification{},
		Employment: &EmploymentVerification{},
		Criminal:   &CriminalBackgroundCheck{},
		Education:  &EducationVerification{},
	}
	s.Equal([]string{
		"identity_verification",
		"employment_verification",
		"criminal_background_check",
		"education_verification",
	}, all.PopulatedKeys())

	var empty Results
	s.Empty(empty.PopulatedKeys())
}

//go:build integration

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"vetgate/internal/inquiry/models"
	"vetgate/internal/sentinel"
	"vetgate/pkg/testutil"
	"vetgate/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	pg    *containers.PostgresContainer
	store *PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.pg = containers.GetManager().GetPostgres(s.T())
	s.store = NewPostgres(s.pg.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.pg.TruncateAll(context.Background()))
}

func (s *PostgresStoreSuite) TestSaveAndFindRoundTrip() {
	inq := testutil.NewInquiryBuilder().
		WithID(testutil.TestIDs.InquiryID1).
		WithServices(models.ServiceIdentity, models.ServiceCredit).
		WithCreditStatus(models.CreditAvailable).
		Completed().
		WithReport(testutil.NewReportBuilder().Build()).
		Build()

	s.Require().NoError(s.store.Save(context.Background(), inq))

	found, err := s.store.FindByID(context.Background(), inq.ID)
	s.Require().NoError(err)
	s.Equal(inq.ID, found.ID)
	s.Equal(models.StatusCompleted, found.Status)
	s.Equal(models.CreditAvailable, found.CreditStatus)
	s.Require().NotNil(found.Report)
	s.Equal(inq.Report.ID, found.Report.ID)
}

func (s *PostgresStoreSuite) TestFindMissingReturnsNotFound() {
	_, err := s.store.FindByID(context.Background(), "missing")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

// TestSaveUpsertsOnConflict verifies a second save for the same id replaces
// the stored document instead of failing.
func (s *PostgresStoreSuite) TestSaveUpsertsOnConflict() {
	inq := testutil.NewInquiryBuilder().WithID(testutil.TestIDs.InquiryID1).Build()
	s.Require().NoError(s.store.Save(context.Background(), inq))

	inq.Status = models.StatusInProgress
	s.Require().NoError(s.store.Save(context.Background(), inq))

	found, err := s.store.FindByID(context.Background(), inq.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusInProgress, found.Status)

	var count int
	err = s.pg.QueryRow(context.Background(), "SELECT count(*) FROM inquiries").Scan(&count)
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *PostgresStoreSuite) TestStatusColumnTracksDocument() {
	inq := testutil.NewInquiryBuilder().
		WithID(testutil.TestIDs.InquiryID1).
		WithStatus(models.StatusSuspended).
		Build()
	inq.Cancellable = false
	s.Require().NoError(s.store.Save(context.Background(), inq))

	var status string
	err := s.pg.QueryRow(context.Background(),
		"SELECT status FROM inquiries WHERE id = $1", inq.ID).Scan(&status)
	s.Require().NoError(err)
	s.Equal("suspended", status)
}

func (s *PostgresStoreSuite) TestListNewestFirst() {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"older", "newer", "newest"} {
		inq := testutil.NewInquiryBuilder().WithID(id).Build()
		inq.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		s.Require().NoError(s.store.Save(context.Background(), inq))
	}

	listed, err := s.store.List(context.Background())
	s.Require().NoError(err)
	s.Require().Len(listed, 3)
	s.Equal("newest", listed[0].ID)
	s.Equal("older", listed[2].ID)
}

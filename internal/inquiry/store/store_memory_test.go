package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"vetgate/internal/inquiry/models"
	"vetgate/internal/sentinel"
	"vetgate/pkg/testutil"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemoryStore
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = NewInMemory()
}

func (s *InMemoryStoreSuite) TestSaveAndFind() {
	inq := testutil.NewInquiryBuilder().WithID(testutil.TestIDs.InquiryID1).Build()
	s.Require().NoError(s.store.Save(context.Background(), inq))

	found, err := s.store.FindByID(context.Background(), inq.ID)
	s.Require().NoError(err)
	s.Equal(inq.ID, found.ID)
	s.Equal(inq.Status, found.Status)
}

func (s *InMemoryStoreSuite) TestFindMissingReturnsNotFound() {
	_, err := s.store.FindByID(context.Background(), "missing")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *InMemoryStoreSuite) TestSaveOverwritesExisting() {
	inq := testutil.NewInquiryBuilder().WithID(testutil.TestIDs.InquiryID1).Build()
	s.Require().NoError(s.store.Save(context.Background(), inq))

	inq.Status = models.StatusInProgress
	s.Require().NoError(s.store.Save(context.Background(), inq))

	found, err := s.store.FindByID(context.Background(), inq.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusInProgress, found.Status)
}

// TestReturnsCopies verifies callers cannot mutate stored state through the
// pointers the store hands out.
func (s *InMemoryStoreSuite) TestReturnsCopies() {
	inq := testutil.NewInquiryBuilder().WithID(testutil.TestIDs.InquiryID1).Build()
	s.Require().NoError(s.store.Save(context.Background(), inq))

	first, err := s.store.FindByID(context.Background(), inq.ID)
	s.Require().NoError(err)
	first.Status = models.StatusCancelled

	second, err := s.store.FindByID(context.Background(), inq.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusPending, second.Status)
}

func (s *InMemoryStoreSuite) TestListNewestFirst() {
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
	s.Equal("newer", listed[1].ID)
	s.Equal("older", listed[2].ID)
}

func (s *InMemoryStoreSuite) TestListEmpty() {
	listed, err := s.store.List(context.Background())
	s.NoError(err)
	s.Empty(listed)
}

//go:build integration

package store

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"vetgate/internal/inquiry/models"
	"vetgate/internal/sentinel"
	"vetgate/pkg/testutil"
	"vetgate/pkg/testutil/containers"
)

type RedisCacheSuite struct {
	suite.Suite
	client *redis.Client
	cache  *RedisCache
}

func TestRedisCacheSuite(t *testing.T) {
	suite.Run(t, new(RedisCacheSuite))
}

func (s *RedisCacheSuite) SetupSuite() {
	rc := containers.GetManager().GetRedis(s.T())
	opts, err := redis.ParseURL(rc.URL)
	s.Require().NoError(err)
	s.client = redis.NewClient(opts)
	s.cache = NewRedisCache(s.client, time.Minute)
}

func (s *RedisCacheSuite) SetupTest() {
	s.Require().NoError(s.client.FlushDB(context.Background()).Err())
}

func (s *RedisCacheSuite) TestSetAndGetRoundTrip() {
	inq := testutil.NewInquiryBuilder().
		WithID(testutil.TestIDs.InquiryID1).
		Completed().
		WithReport(testutil.NewReportBuilder().Build()).
		Build()

	s.Require().NoError(s.cache.Set(context.Background(), inq))

	cached, err := s.cache.Get(context.Background(), inq.ID)
	s.Require().NoError(err)
	s.Equal(inq.ID, cached.ID)
	s.Equal(models.StatusCompleted, cached.Status)
	s.Require().NotNil(cached.Report)
	s.Equal(inq.Report.Summary.TotalChecks, cached.Report.Summary.TotalChecks)
}

func (s *RedisCacheSuite) TestMissReturnsNotFound() {
	_, err := s.cache.Get(context.Background(), "missing")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *RedisCacheSuite) TestInvalidate() {
	inq := testutil.NewInquiryBuilder().WithID(testutil.TestIDs.InquiryID1).Build()
	s.Require().NoError(s.cache.Set(context.Background(), inq))
	s.Require().NoError(s.cache.Invalidate(context.Background(), inq.ID))

	_, err := s.cache.Get(context.Background(), inq.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

// TestEntriesExpire verifies the TTL is applied so stale in-flight inquiries
// are re-fetched from the provider.
func (s *RedisCacheSuite) TestEntriesExpire() {
	short := NewRedisCache(s.client, 50*time.Millisecond)
	inq := testutil.NewInquiryBuilder().WithID(testutil.TestIDs.InquiryID2).Build()
	s.Require().NoError(short.Set(context.Background(), inq))

	s.Eventually(func() bool {
		_, err := short.Get(context.Background(), inq.ID)
		return err != nil
	}, time.Second, 20*time.Millisecond)
}

func (s *RedisCacheSuite) TestInvalidateMissingIsNoError() {
	s.NoError(s.cache.Invalidate(context.Background(), "missing"))
}

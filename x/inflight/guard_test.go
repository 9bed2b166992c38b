package inflight

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/totegamma/longrest/core"
)

type GuardTestSuite struct {
	suite.Suite
	mr    *miniredis.Miniredis
	rdb   *redis.Client
	guard core.InFlightGuard
	ctx   context.Context
}

func (s *GuardTestSuite) SetupTest() {
	var err error
	s.mr, err = miniredis.Run()
	s.Require().NoError(err)

	s.rdb = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})
	s.guard = NewGuard(s.rdb, core.Config{InFlightTTL: 5 * time.Second})
	s.ctx = context.Background()
}

func (s *GuardTestSuite) TearDownTest() {
	s.rdb.Close()
	s.mr.Close()
}

func (s *GuardTestSuite) TestRejectsDuplicate() {
	release, err := s.guard.Acquire(s.ctx, "session.finalize:s1")
	s.Require().NoError(err)

	_, err = s.guard.Acquire(s.ctx, "session.finalize:s1")
	s.ErrorIs(err, core.ErrorInFlight{})

	// other scopes are independent
	releaseOther, err := s.guard.Acquire(s.ctx, "session.finalize:s2")
	s.Require().NoError(err)
	releaseOther()

	release()

	release, err = s.guard.Acquire(s.ctx, "session.finalize:s1")
	s.Require().NoError(err)
	release()
	s.False(s.mr.Exists("inflight:session.finalize:s1"))
}

func (s *GuardTestSuite) TestExpiresAfterTTL() {
	_, err := s.guard.Acquire(s.ctx, "packet.send:c1")
	s.Require().NoError(err)
	s.True(s.mr.Exists("inflight:packet.send:c1"))

	s.mr.FastForward(6 * time.Second)

	release, err := s.guard.Acquire(s.ctx, "packet.send:c1")
	s.Require().NoError(err)
	release()
}

func (s *GuardTestSuite) TestStaleReleaseKeepsNewHolder() {
	stale, err := s.guard.Acquire(s.ctx, "packet.send:c2")
	s.Require().NoError(err)

	s.mr.FastForward(6 * time.Second)

	current, err := s.guard.Acquire(s.ctx, "packet.send:c2")
	s.Require().NoError(err)

	stale()
	s.True(s.mr.Exists("inflight:packet.send:c2"))

	_, err = s.guard.Acquire(s.ctx, "packet.send:c2")
	s.ErrorIs(err, core.ErrorInFlight{})

	current()
	s.False(s.mr.Exists("inflight:packet.send:c2"))
}

func TestGuardTestSuite(t *testing.T) {
	suite.Run(t, new(GuardTestSuite))
}

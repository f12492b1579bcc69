package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type MemoryStoreSuite struct {
	suite.Suite
	store *MemoryStore
	clock time.Time
	ctx   context.Context
}

func (s *MemoryStoreSuite) SetupTest() {
	s.clock = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.store = NewMemoryStore()
	s.store.now = func() time.Time { return s.clock }
	s.ctx = context.Background()
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) newSession(id string) Session {
	return Session{
		SessionID:     id,
		Authenticated: true,
		Email:         "a@x.com",
		CreatedAt:     s.clock,
		ExpiresAt:     s.clock.Add(time.Hour),
	}
}

func (s *MemoryStoreSuite) TestCreateGetDelete() {
	sess := s.newSession("sid-1")
	s.Require().NoError(s.store.Create(s.ctx, sess))

	got, err := s.store.Get(s.ctx, "sid-1")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(sess, *got)

	s.Require().NoError(s.store.Delete(s.ctx, "sid-1"))
	got, err = s.store.Get(s.ctx, "sid-1")
	s.Require().NoError(err)
	s.Nil(got)
}

func (s *MemoryStoreSuite) TestDeleteIsIdempotent() {
	s.NoError(s.store.Delete(s.ctx, "never-existed"))
}

func (s *MemoryStoreSuite) TestCreateRejectsInvalidSessions() {
	s.Run("missing id", func() {
		sess := s.newSession("")
		s.Error(s.store.Create(s.ctx, sess))
	})

	s.Run("authenticated without email", func() {
		sess := s.newSession("sid-2")
		sess.Email = ""
		s.Error(s.store.Create(s.ctx, sess))
	})

	s.Run("already expired", func() {
		sess := s.newSession("sid-3")
		sess.ExpiresAt = s.clock
		s.Error(s.store.Create(s.ctx, sess))
	})

	s.Run("duplicate id", func() {
		s.Require().NoError(s.store.Create(s.ctx, s.newSession("sid-4")))
		s.ErrorIs(s.store.Create(s.ctx, s.newSession("sid-4")), ErrIDInUse)
	})
}

func (s *MemoryStoreSuite) TestExpiredSessionsAreDropped() {
	s.Require().NoError(s.store.Create(s.ctx, s.newSession("sid-1")))

	s.clock = s.clock.Add(2 * time.Hour)

	got, err := s.store.Get(s.ctx, "sid-1")
	s.Require().NoError(err)
	s.Nil(got)
	s.Equal(0, s.store.Len())
}

func (s *MemoryStoreSuite) TestUpdate() {
	sess := s.newSession("sid-1")
	s.Require().NoError(s.store.Create(s.ctx, sess))

	sess.ExpiresAt = s.clock.Add(3 * time.Hour)
	s.Require().NoError(s.store.Update(s.ctx, sess))

	got, err := s.store.Get(s.ctx, "sid-1")
	s.Require().NoError(err)
	s.Equal(sess.ExpiresAt, got.ExpiresAt)

	sess.ExpiresAt = s.clock.Add(-time.Minute)
	s.Require().NoError(s.store.Update(s.ctx, sess))
	s.Equal(0, s.store.Len())
}

func (s *MemoryStoreSuite) TestUpdateDoesNotResurrect() {
	s.Require().NoError(s.store.Update(s.ctx, s.newSession("ghost")))
	s.Equal(0, s.store.Len())
}

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mathrace/mathrace-go/internal/dependencies/mocks"
	"github.com/mathrace/mathrace-go/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, DefaultConfig())
	s.ctx = context.Background()
}

// Register tests

func (s *ServiceSuite) TestRegisterSucceeds() {
	session, err := s.service.Register(s.ctx, "alice", "secret123")
	s.Require().NoError(err)

	s.NotEmpty(session.Token)
	s.Equal("alice", session.User.Username)
	s.NotEqual("secret123", session.User.PasswordHash)
}

func (s *ServiceSuite) TestRegisterFailsIfUsernameExists() {
	_, err := s.service.Register(s.ctx, "alice", "secret123")
	s.Require().NoError(err)

	_, err = s.service.Register(s.ctx, "alice", "other456")
	s.ErrorIs(err, ErrUsernameExists)
}

// Login tests

func (s *ServiceSuite) TestLoginSucceeds() {
	registered, err := s.service.Register(s.ctx, "alice", "secret123")
	s.Require().NoError(err)

	session, err := s.service.Login(s.ctx, "alice", "secret123")
	s.Require().NoError(err)
	s.Equal(registered.UserID, session.UserID)
	s.NotEqual(registered.Token, session.Token)
}

func (s *ServiceSuite) TestLoginFailsWithWrongPassword() {
	_, err := s.service.Register(s.ctx, "alice", "secret123")
	s.Require().NoError(err)

	_, err = s.service.Login(s.ctx, "alice", "wrong")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginFailsForUnknownUser() {
	_, err := s.service.Login(s.ctx, "nobody", "secret123")
	s.ErrorIs(err, ErrInvalidCredentials)
}

// Session tests

func (s *ServiceSuite) TestValidateSession() {
	registered, err := s.service.Register(s.ctx, "alice", "secret123")
	s.Require().NoError(err)

	session, err := s.service.ValidateSession(registered.Token)
	s.Require().NoError(err)
	s.Equal(registered.UserID, session.UserID)
}

func (s *ServiceSuite) TestValidateSessionFailsForUnknownToken() {
	_, err := s.service.ValidateSession("bogus")
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestValidateSessionFailsWhenExpired() {
	registered, err := s.service.Register(s.ctx, "alice", "secret123")
	s.Require().NoError(err)

	s.clock.Advance(25 * time.Hour)

	_, err = s.service.ValidateSession(registered.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestInvalidateSession() {
	registered, err := s.service.Register(s.ctx, "alice", "secret123")
	s.Require().NoError(err)

	s.service.InvalidateSession(registered.Token)

	_, err = s.service.ValidateSession(registered.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

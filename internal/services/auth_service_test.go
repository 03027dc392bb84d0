// internal/services/auth_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/shopsphere/commerce-backend/internal/models"
)

type AuthServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *AuthService
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.service = NewAuthService(s.db, testConfig())
}

func (s *AuthServiceTestSuite) register(username string) *models.User {
	user, err := s.service.Register(&RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "Password123",
	})
	s.Require().NoError(err)
	return user
}

func (s *AuthServiceTestSuite) TestRegisterStoresHashedPassword() {
	user := s.register("newbuyer")

	s.NotEmpty(user.PasswordHash)
	s.NotEqual("Password123", user.PasswordHash)
	s.NoError(user.CheckPassword("Password123"))
	s.Error(user.CheckPassword("wrong"))
}

func (s *AuthServiceTestSuite) TestRegisterDuplicateUsernameConflicts() {
	s.register("newbuyer")

	_, err := s.service.Register(&RegisterRequest{
		Username: "newbuyer",
		Email:    "different@example.com",
		Password: "Password123",
	})
	s.Require().ErrorIs(err, ErrConflict)
}

func (s *AuthServiceTestSuite) TestRegisterDuplicateEmailConflicts() {
	s.register("newbuyer")

	_, err := s.service.Register(&RegisterRequest{
		Username: "differentname",
		Email:    "newbuyer@example.com",
		Password: "Password123",
	})
	s.Require().ErrorIs(err, ErrConflict)
}

func (s *AuthServiceTestSuite) TestLoginIssuesTokensAndRecordsLogin() {
	s.register("newbuyer")

	user, tokens, err := s.service.Login(&LoginRequest{Username: "newbuyer", Password: "Password123"})
	s.Require().NoError(err)
	s.NotEmpty(tokens.AccessToken)
	s.NotEmpty(tokens.RefreshToken)
	s.NotNil(user.LastLoginAt)
}

func (s *AuthServiceTestSuite) TestLoginWrongPassword() {
	s.register("newbuyer")

	_, _, err := s.service.Login(&LoginRequest{Username: "newbuyer", Password: "nope"})
	s.Require().ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestLoginUnknownUserLooksLikeWrongPassword() {
	_, _, err := s.service.Login(&LoginRequest{Username: "ghost", Password: "Password123"})
	s.Require().ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestRefreshRoundTrip() {
	s.register("newbuyer")
	_, tokens, err := s.service.Login(&LoginRequest{Username: "newbuyer", Password: "Password123"})
	s.Require().NoError(err)

	fresh, err := s.service.Refresh(tokens.RefreshToken)
	s.Require().NoError(err)
	s.NotEmpty(fresh.AccessToken)
}

func (s *AuthServiceTestSuite) TestRefreshRejectsGarbage() {
	_, err := s.service.Refresh("not-a-token")
	s.Require().ErrorIs(err, ErrInvalidCredentials)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

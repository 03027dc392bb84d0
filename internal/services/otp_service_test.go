// internal/services/otp_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/shopsphere/commerce-backend/internal/cache"
)

type OTPServiceTestSuite struct {
	suite.Suite
	cache   cache.TTLCache
	service *OTPService
}

func (s *OTPServiceTestSuite) SetupTest() {
	cfg := testConfig()
	s.cache = cache.NewMemory(time.Minute)
	s.service = NewOTPService(s.cache, NewNotificationService(cfg), cfg.OTP)
}

func (s *OTPServiceTestSuite) issuedCode(email string) string {
	code, ok := s.cache.Get(otpKey(email))
	s.Require().True(ok, "expected a live code for %s", email)
	return code
}

func (s *OTPServiceTestSuite) TestSendIssuesSixDigitCode() {
	s.Require().NoError(s.service.Send("buyer@example.com"))

	code := s.issuedCode("buyer@example.com")
	s.Len(code, 6)
	s.GreaterOrEqual(code, "100000")
	s.LessOrEqual(code, "999999")
}

func (s *OTPServiceTestSuite) TestVerifyConsumesMatchingCode() {
	s.Require().NoError(s.service.Send("buyer@example.com"))
	code := s.issuedCode("buyer@example.com")

	s.Require().NoError(s.service.Verify("buyer@example.com", code))

	// A code is single-use.
	s.Require().ErrorIs(s.service.Verify("buyer@example.com", code), ErrInvalidState)
}

func (s *OTPServiceTestSuite) TestVerifyRejectsWrongCode() {
	s.Require().NoError(s.service.Send("buyer@example.com"))
	code := s.issuedCode("buyer@example.com")

	wrong := "100000"
	if wrong == code {
		wrong = "100001"
	}
	s.Require().ErrorIs(s.service.Verify("buyer@example.com", wrong), ErrInvalidState)

	// A failed attempt does not consume the live code.
	s.Require().NoError(s.service.Verify("buyer@example.com", code))
}

func (s *OTPServiceTestSuite) TestVerifyWithoutSendFails() {
	s.Require().ErrorIs(s.service.Verify("nobody@example.com", "123456"), ErrInvalidState)
}

func (s *OTPServiceTestSuite) TestResendInvalidatesPreviousCode() {
	s.Require().NoError(s.service.Send("buyer@example.com"))
	first := s.issuedCode("buyer@example.com")

	s.Require().NoError(s.service.Send("buyer@example.com"))
	second := s.issuedCode("buyer@example.com")

	if first != second {
		s.Require().ErrorIs(s.service.Verify("buyer@example.com", first), ErrInvalidState)
	}
	s.Require().NoError(s.service.Verify("buyer@example.com", second))
}

func (s *OTPServiceTestSuite) TestExpiredCodeBehavesAsMissing() {
	service := s.service
	service.ttl = 20 * time.Millisecond

	s.Require().NoError(service.Send("buyer@example.com"))
	time.Sleep(50 * time.Millisecond)

	_, ok := s.cache.Get(otpKey("buyer@example.com"))
	s.False(ok)
}

func (s *OTPServiceTestSuite) TestEmailIsCaseInsensitive() {
	s.Require().NoError(s.service.Send("Buyer@Example.com"))
	code := s.issuedCode("buyer@example.com")

	s.Require().NoError(s.service.Verify("BUYER@example.COM", code))
}

func TestOTPServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OTPServiceTestSuite))
}

package services

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zenith-max/Wellmed/internal/dto"
	"github.com/zenith-max/Wellmed/internal/helper"
)

var codePattern = regexp.MustCompile(`\b\d{6}\b`)

func newAuthFixture(t *testing.T) (AuthService, *fakeUserRepo, *fakeMailer) {
	t.Helper()
	repo := newFakeUserRepo()
	mailer := &fakeMailer{}
	svc := NewAuthService(repo, helper.SetupAuth("test-secret"), mailer)
	return svc, repo, mailer
}

func registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Name:            "Priya Menon",
		Email:           "priya@example.com",
		Password:        "hunter22",
		ConfirmPassword: "hunter22",
	}
}

func lastCode(t *testing.T, mailer *fakeMailer) string {
	t.Helper()
	sent := mailer.all()
	require.NotEmpty(t, sent, "expected at least one email")
	code := codePattern.FindString(sent[len(sent)-1].Body)
	require.Len(t, code, 6, "expected a 6-digit code in the email body")
	return code
}

func TestRegisterVerifyLoginFlow(t *testing.T) {
	svc, _, mailer := newAuthFixture(t)

	user, err := svc.Register(registerRequest())
	require.NoError(t, err)
	assert.False(t, user.EmailVerified)
	assert.NotEmpty(t, user.VerificationCodeHash, "a verification challenge must be outstanding")

	// login before verification is refused but does not leak a token
	_, err = svc.Login("priya@example.com", "hunter22")
	require.ErrorIs(t, err, ErrEmailNotVerified)

	// the outstanding code is still valid, so the refused login must not
	// have dispatched a second email
	require.Len(t, mailer.all(), 1)

	code := lastCode(t, mailer)
	resp, err := svc.VerifyEmail(dto.VerifyEmailRequest{Email: "Priya@Example.com", Code: code})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.User.EmailVerified)

	// now a normal login succeeds
	login, err := svc.Login("priya@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	req := registerRequest()
	req.ConfirmPassword = "different"
	_, err := svc.Register(req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = registerRequest()
	req.Password, req.ConfirmPassword = "abc", "abc"
	_, err = svc.Register(req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = registerRequest()
	req.Email = ""
	_, err = svc.Register(req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, err := svc.Register(registerRequest())
	require.NoError(t, err)

	_, err = svc.Register(registerRequest())
	assert.ErrorIs(t, err, ErrEmailRegistered)
}

func TestLoginUniformFailure(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, err := svc.Register(registerRequest())
	require.NoError(t, err)

	// wrong password and unknown email fail identically
	_, errWrongPass := svc.Login("priya@example.com", "not-it")
	_, errNoUser := svc.Login("ghost@example.com", "whatever")
	assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, errNoUser, ErrInvalidCredentials)
	assert.Equal(t, errWrongPass.Error(), errNoUser.Error())
}

func TestVerifyEmailWrongCode(t *testing.T) {
	svc, _, mailer := newAuthFixture(t)

	_, err := svc.Register(registerRequest())
	require.NoError(t, err)

	right := lastCode(t, mailer)
	wrong := "000000"
	if wrong == right {
		wrong = "000001"
	}

	_, err = svc.VerifyEmail(dto.VerifyEmailRequest{Email: "priya@example.com", Code: wrong})
	assert.ErrorIs(t, err, ErrInvalidOrExpiredCode)
}

func TestVerifyEmailExpiredCode(t *testing.T) {
	svc, repo, mailer := newAuthFixture(t)

	user, err := svc.Register(registerRequest())
	require.NoError(t, err)

	// age the challenge past its lifetime
	stored, err := repo.FindUserByID(user.ID)
	require.NoError(t, err)
	past := time.Now().Add(-time.Minute)
	stored.VerificationCodeExpiresAt = &past
	require.NoError(t, repo.SaveUser(stored))

	code := lastCode(t, mailer)
	_, err = svc.VerifyEmail(dto.VerifyEmailRequest{Email: "priya@example.com", Code: code})
	assert.ErrorIs(t, err, ErrInvalidOrExpiredCode)
}

func TestVerifyEmailIdempotent(t *testing.T) {
	svc, _, mailer := newAuthFixture(t)

	_, err := svc.Register(registerRequest())
	require.NoError(t, err)

	code := lastCode(t, mailer)
	_, err = svc.VerifyEmail(dto.VerifyEmailRequest{Email: "priya@example.com", Code: code})
	require.NoError(t, err)

	// verifying again, even with a stale code, still yields a session
	resp, err := svc.VerifyEmail(dto.VerifyEmailRequest{Email: "priya@example.com", Code: code})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestResendVerificationIsEnumerationSafe(t *testing.T) {
	svc, _, mailer := newAuthFixture(t)

	_, err := svc.Register(registerRequest())
	require.NoError(t, err)
	before := len(mailer.all())

	// unknown address: quiet success, no email
	require.NoError(t, svc.ResendVerification("nobody@example.com"))
	assert.Len(t, mailer.all(), before)

	// known unverified address: fresh code goes out
	require.NoError(t, svc.ResendVerification("priya@example.com"))
	assert.Len(t, mailer.all(), before+1)
}

func TestForgotAndResetPassword(t *testing.T) {
	svc, _, mailer := newAuthFixture(t)

	_, err := svc.Register(registerRequest())
	require.NoError(t, err)

	verifyCode := lastCode(t, mailer)
	_, err = svc.VerifyEmail(dto.VerifyEmailRequest{Email: "priya@example.com", Code: verifyCode})
	require.NoError(t, err)

	// unknown email also reports success
	require.NoError(t, svc.ForgotPassword("nobody@example.com"))

	require.NoError(t, svc.ForgotPassword("priya@example.com"))
	resetCode := lastCode(t, mailer)

	err = svc.ResetPassword(dto.ResetPasswordRequest{
		Email:           "priya@example.com",
		Code:            resetCode,
		NewPassword:     "new-password-9",
		ConfirmPassword: "new-password-9",
	})
	require.NoError(t, err)

	// old password is dead, new one works
	_, err = svc.Login("priya@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login("priya@example.com", "new-password-9")
	assert.NoError(t, err)

	// the reset code is single-use
	err = svc.ResetPassword(dto.ResetPasswordRequest{
		Email:           "priya@example.com",
		Code:            resetCode,
		NewPassword:     "another-pass",
		ConfirmPassword: "another-pass",
	})
	assert.ErrorIs(t, err, ErrInvalidOrExpiredCode)
}

func TestResetPasswordUnknownEmail(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	err := svc.ResetPassword(dto.ResetPasswordRequest{
		Email:           "ghost@example.com",
		Code:            "123456",
		NewPassword:     "whatever1",
		ConfirmPassword: "whatever1",
	})
	assert.ErrorIs(t, err, ErrInvalidOrExpiredCode)
}

func TestGetProfile(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	user, err := svc.Register(registerRequest())
	require.NoError(t, err)

	got, err := svc.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "priya@example.com", got.Email)

	_, err = svc.GetProfile(999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

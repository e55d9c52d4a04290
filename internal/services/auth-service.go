package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/zenith-max/Wellmed/internal/domain"
	"github.com/zenith-max/Wellmed/internal/dto"
	"github.com/zenith-max/Wellmed/internal/helper"
	"github.com/zenith-max/Wellmed/internal/interfaces"
	"github.com/zenith-max/Wellmed/internal/repository"
)

type AuthService interface {
	Register(input dto.RegisterRequest) (*domain.User, error)
	Login(email, password string) (*dto.LoginResponse, error)
	VerifyEmail(input dto.VerifyEmailRequest) (*dto.LoginResponse, error)
	ResendVerification(email string) error
	ForgotPassword(email string) error
	ResetPassword(input dto.ResetPasswordRequest) error
	GetProfile(userID uint) (*domain.User, error)
}

type authService struct {
	repo   repository.UserRepository
	auth   helper.Auth
	mailer interfaces.Mailer
}

func NewAuthService(repo repository.UserRepository, auth helper.Auth, mailer interfaces.Mailer) AuthService {
	return &authService{
		repo:   repo,
		auth:   auth,
		mailer: mailer,
	}
}

func (s *authService) Register(input dto.RegisterRequest) (*domain.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(strings.ToLower(input.Email))

	if name == "" || email == "" || input.Password == "" || input.ConfirmPassword == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", ErrInvalidInput)
	}
	if input.Password != input.ConfirmPassword {
		return nil, fmt.Errorf("%w: passwords do not match", ErrInvalidInput)
	}
	if len(input.Password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", ErrInvalidInput)
	}

	existing, err := s.repo.FindUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailRegistered
	}

	hashedPassword, err := s.auth.CreatePassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         domain.RoleCustomer,
	}

	if err := s.repo.CreateUser(user); err != nil {
		// the unique index decides races that slipped past the lookup
		if helper.IsUniqueViolation(err) {
			return nil, ErrEmailRegistered
		}
		return nil, err
	}

	if err := s.issueVerificationCode(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *authService) Login(email, password string) (*dto.LoginResponse, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.repo.FindUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.auth.VerifyPassword(password, user.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.EmailVerified {
		// refresh the challenge if the outstanding code is gone or stale,
		// so the customer always has a usable code in their inbox
		now := time.Now()
		if user.VerificationCodeHash == "" ||
			user.VerificationCodeExpiresAt == nil ||
			user.VerificationCodeExpiresAt.Before(now) {
			if err := s.issueVerificationCode(user); err != nil {
				return nil, err
			}
		}
		return nil, ErrEmailNotVerified
	}

	token, err := s.auth.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{Token: token, User: toUserResponse(user)}, nil
}

func (s *authService) VerifyEmail(input dto.VerifyEmailRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	code := strings.TrimSpace(input.Code)

	if email == "" || code == "" {
		return nil, fmt.Errorf("%w: email and code are required", ErrInvalidInput)
	}

	user, err := s.repo.FindUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	// verifying twice is harmless; just hand back a session token
	if !user.EmailVerified {
		if !helper.ValidateCode(code, user.VerificationCodeHash, user.VerificationCodeExpiresAt, time.Now()) {
			return nil, ErrInvalidOrExpiredCode
		}

		now := time.Now()
		user.EmailVerified = true
		user.VerifiedAt = &now
		user.VerificationCodeHash = ""
		user.VerificationCodeExpiresAt = nil

		if err := s.repo.SaveUser(user); err != nil {
			return nil, err
		}
	}

	token, err := s.auth.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{Token: token, User: toUserResponse(user)}, nil
}

// ResendVerification reports success even for unknown addresses so the
// endpoint cannot be used to probe which emails are registered.
func (s *authService) ResendVerification(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	user, err := s.repo.FindUserByEmail(email)
	if err != nil {
		return err
	}
	if user == nil || user.EmailVerified {
		return nil
	}

	return s.issueVerificationCode(user)
}

// ForgotPassword has the same uniform response contract as ResendVerification.
func (s *authService) ForgotPassword(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	user, err := s.repo.FindUserByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	plain, hashed, expiresAt := helper.IssueCode(helper.CodeReset)
	user.ResetCodeHash = hashed
	user.ResetCodeExpiresAt = &expiresAt

	if err := s.repo.SaveUser(user); err != nil {
		return err
	}

	s.sendMail(user.Email, "Reset your Medwell password", resetEmailBody(user.Name, plain))
	return nil
}

func (s *authService) ResetPassword(input dto.ResetPasswordRequest) error {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	code := strings.TrimSpace(input.Code)

	if email == "" || code == "" || input.NewPassword == "" || input.ConfirmPassword == "" {
		return fmt.Errorf("%w: email, code and new password are required", ErrInvalidInput)
	}
	if input.NewPassword != input.ConfirmPassword {
		return fmt.Errorf("%w: passwords do not match", ErrInvalidInput)
	}
	if len(input.NewPassword) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", ErrInvalidInput)
	}

	user, err := s.repo.FindUserByEmail(email)
	if err != nil {
		return err
	}
	// an unknown email and a wrong code are indistinguishable on purpose
	if user == nil {
		return ErrInvalidOrExpiredCode
	}

	if !helper.ValidateCode(code, user.ResetCodeHash, user.ResetCodeExpiresAt, time.Now()) {
		return ErrInvalidOrExpiredCode
	}

	hashedPassword, err := s.auth.CreatePassword(input.NewPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = hashedPassword
	user.ResetCodeHash = ""
	user.ResetCodeExpiresAt = nil

	return s.repo.SaveUser(user)
}

func (s *authService) GetProfile(userID uint) (*domain.User, error) {
	if userID == 0 {
		return nil, fmt.Errorf("%w: invalid user id", ErrInvalidInput)
	}

	user, err := s.repo.FindUserByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// issueVerificationCode replaces any outstanding verification challenge with
// a fresh one and emails the plaintext code.
func (s *authService) issueVerificationCode(user *domain.User) error {
	plain, hashed, expiresAt := helper.IssueCode(helper.CodeVerification)
	user.VerificationCodeHash = hashed
	user.VerificationCodeExpiresAt = &expiresAt

	if err := s.repo.SaveUser(user); err != nil {
		return err
	}

	s.sendMail(user.Email, "Verify your Medwell account", verificationEmailBody(user.Name, plain))
	return nil
}

func (s *authService) sendMail(to, subject, body string) {
	if s.mailer == nil {
		log.Printf("mailer not configured - skip %q to %s", subject, to)
		return
	}
	if delivered := s.mailer.Send(to, subject, body); !delivered {
		log.Printf("email %q to %s was not delivered", subject, to)
	}
}

func toUserResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		Role:          user.Role,
		EmailVerified: user.EmailVerified,
	}
}

func verificationEmailBody(name, code string) string {
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf(`<p>Hi %s,</p>
<p>Use the code below to verify your Medwell account:</p>
<h2 style="letter-spacing:4px;">%s</h2>
<p>This code will expire in 24 hours.</p>
<p>If you didn't create an account, you can ignore this email.</p>`, name, code)
}

func resetEmailBody(name, code string) string {
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf(`<p>Hi %s,</p>
<p>Use the code below to reset your Medwell password:</p>
<h2 style="letter-spacing:4px;">%s</h2>
<p>This code will expire in 1 hour.</p>
<p>If you did not request a reset, you can ignore this email.</p>`, name, code)
}

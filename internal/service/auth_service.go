package service

import (
	"context"
	"log/slog"
	"time"

	"quill/internal/featureflags"
	"quill/internal/mail"
	"quill/internal/middleware"
	"quill/internal/models"
	"quill/internal/repository"
	"quill/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	mailer      mail.Sender
	flags       *featureflags.Manager
	sessionTTL  time.Duration
}

type SignupInput struct {
	Username  string
	Email     string
	Password  string
	IPAddress string
	UserAgent string
}

type LoginInput struct {
	Email     string
	Password  string
	IPAddress string
	UserAgent string
}

func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	mailer mail.Sender,
	flags *featureflags.Manager,
	sessionTTL time.Duration,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		mailer:      mailer,
		flags:       flags,
		sessionTTL:  sessionTTL,
	}
}

// Signup registers a new user and opens a session for them.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*models.User, *models.Session, error) {
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, nil, models.NewValidationError(err.Error())
	}

	if existing, err := s.userRepo.GetByEmail(ctx, in.Email); err != nil {
		return nil, nil, err
	} else if existing != nil {
		return nil, nil, models.NewConflictError("Email is already registered")
	}
	if existing, err := s.userRepo.GetByUsername(ctx, in.Username); err != nil {
		return nil, nil, err
	} else if existing != nil {
		return nil, nil, models.NewConflictError("Username is already taken")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username: in.Username,
		Email:    in.Email,
		Password: string(hashed),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	session, err := s.sessionRepo.Create(ctx, user.ID, s.sessionTTL, in.IPAddress, in.UserAgent)
	if err != nil {
		return nil, nil, err
	}

	if s.flags.Enabled(featureflags.FlagWelcomeEmail, user.ID) {
		// Best effort; a mail failure never fails the signup.
		go func(email, username string) {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := s.mailer.Send(ctx, email, "Welcome to Quill", mail.WelcomeBody(username)); err != nil {
				middleware.Logger.Warn("Welcome email failed",
					slog.String("email", email),
					slog.String("error", err.Error()),
				)
			}
		}(user.Email, user.Username)
	}

	return user, session, nil
}

// Login verifies credentials and opens a session. Unknown emails and wrong
// passwords produce the same error so the endpoint cannot be used to probe
// which addresses have accounts.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*models.User, *models.Session, error) {
	user, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, models.NewUnauthorizedError("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, nil, models.NewUnauthorizedError("Invalid email or password")
	}

	session, err := s.sessionRepo.Create(ctx, user.ID, s.sessionTTL, in.IPAddress, in.UserAgent)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// Logout deletes the session behind token. Unknown tokens are ignored.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessionRepo.Delete(ctx, token)
}

// CurrentUser loads the profile for an authenticated user ID.
func (s *AuthService) CurrentUser(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

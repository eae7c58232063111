package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/orbitdesk/orbitdesk/internal/googleauth"
	"github.com/orbitdesk/orbitdesk/internal/metrics"
	"github.com/orbitdesk/orbitdesk/internal/model"
	"github.com/orbitdesk/orbitdesk/internal/repository"
	"github.com/orbitdesk/orbitdesk/internal/token"
)

// Auth service errors.
var (
	ErrInvalidGoogleToken  = errors.New("invalid Google token")
	ErrProviderUnavailable = errors.New("identity provider unavailable")
	ErrUserNotFound        = errors.New("user not found")
	ErrUserInactive        = errors.New("user account is inactive")
)

// GoogleVerifier verifies a Google-issued ID token.
type GoogleVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*googleauth.UserInfo, error)
}

// AuthService exchanges Google identities for internal sessions.
type AuthService struct {
	repo     *repository.Repository
	verifier GoogleVerifier
	tokens   *token.Service
	metrics  metrics.Recorder
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.Repository, verifier GoogleVerifier, tokens *token.Service, recorder metrics.Recorder) *AuthService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &AuthService{
		repo:     repo,
		verifier: verifier,
		tokens:   tokens,
		metrics:  recorder,
	}
}

// LoginResult is the outcome of a successful Google login.
type LoginResult struct {
	User        *model.User
	AccessToken string
}

// Login verifies a Google ID token, resolves or creates the user, and
// issues a session token. The Google subject id is the canonical
// external-identity key; email stays unique and pre-Google accounts are
// linked on first sign-in. Repeat logins by the same identity reuse the
// same user row.
func (s *AuthService) Login(ctx context.Context, idToken string) (*LoginResult, error) {
	start := time.Now()
	info, err := s.verifier.VerifyIDToken(ctx, idToken)
	s.metrics.ObserveGoogleVerifyDuration(time.Since(start))

	if err != nil {
		switch {
		case errors.Is(err, googleauth.ErrProviderUnavailable):
			s.metrics.IncLoginFailure("provider")
			return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
		case errors.Is(err, googleauth.ErrAudienceMismatch):
			s.metrics.IncLoginFailure("audience")
			return nil, ErrInvalidGoogleToken
		default:
			s.metrics.IncLoginFailure("invalid_token")
			return nil, ErrInvalidGoogleToken
		}
	}

	user, err := s.resolveUser(ctx, info)
	if err != nil {
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	accessToken, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	s.metrics.IncLoginSuccess()

	return &LoginResult{User: user, AccessToken: accessToken}, nil
}

// resolveUser finds the account for a verified Google identity, creating
// it on first sign-in.
func (s *AuthService) resolveUser(ctx context.Context, info *googleauth.UserInfo) (*model.User, error) {
	user, err := s.repo.GetUserByGoogleID(ctx, info.Subject)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	// An account may predate Google sign-in; link it by email.
	user, err = s.repo.GetUserByEmail(ctx, info.Email)
	if err == nil {
		if err := s.repo.LinkGoogleID(ctx, user.ID, info.Subject); err != nil {
			return nil, err
		}
		user.GoogleID = &info.Subject
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	user = &model.User{
		ID:                newID(),
		Email:             info.Email,
		GoogleID:          &info.Subject,
		IsActive:          true,
		IsProfileComplete: false,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if info.Name != "" {
		user.FullName = &info.Name
	}
	if info.Picture != "" {
		user.ProfilePicture = &info.Picture
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		// Handle race condition - a concurrent login may have created it
		if errors.Is(err, repository.ErrEmailExists) {
			return s.repo.GetUserByEmail(ctx, info.Email)
		}
		return nil, err
	}

	return user, nil
}

// CurrentUser loads the authenticated caller's profile.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

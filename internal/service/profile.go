package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/orbitdesk/orbitdesk/internal/model"
	"github.com/orbitdesk/orbitdesk/internal/repository"
)

// ErrInvalidMobileNumber is returned when a mobile number fails the
// format check.
var ErrInvalidMobileNumber = errors.New("invalid mobile number format")

// ProfileService handles user profile updates.
type ProfileService struct {
	repo *repository.Repository
}

// NewProfileService creates a new ProfileService.
func NewProfileService(repo *repository.Repository) *ProfileService {
	return &ProfileService{repo: repo}
}

// UpdateProfileInput defines input for a partial profile update.
// Nil or empty fields are left unchanged.
type UpdateProfileInput struct {
	FullName *string
	MobileNo *string
}

// UpdateProfile applies a partial update to the caller's profile and
// recomputes the profile-complete flag.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*model.User, error) {
	if input.MobileNo != nil && *input.MobileNo != "" {
		if !ValidMobileNumber(*input.MobileNo) {
			return nil, ErrInvalidMobileNumber
		}
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if input.FullName != nil && *input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.MobileNo != nil && *input.MobileNo != "" {
		user.MobileNo = input.MobileNo
	}

	user.IsProfileComplete = user.ComputeProfileComplete()
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateUserProfile(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// ValidMobileNumber checks that a mobile number consists only of digits
// once '+', '-' and spaces are stripped. A weak format check, not full
// phone number validation.
func ValidMobileNumber(mobile string) bool {
	stripped := strings.NewReplacer("+", "", "-", "", " ", "").Replace(mobile)
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

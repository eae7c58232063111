// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import "github.com/orbitdesk/orbitdesk/internal/model"

// GoogleAuthRequest represents the login request body.
type GoogleAuthRequest struct {
	Token string `json:"token"`
}

// UpdateProfileRequest represents a partial profile update.
type UpdateProfileRequest struct {
	FullName *string `json:"full_name,omitempty"`
	MobileNo *string `json:"mobile_no,omitempty"`
}

// UserResponse represents a user profile in API responses.
type UserResponse struct {
	ID                string  `json:"id"`
	Email             string  `json:"email"`
	FullName          *string `json:"full_name"`
	MobileNo          *string `json:"mobile_no"`
	ProfilePicture    *string `json:"profile_picture"`
	IsProfileComplete bool    `json:"is_profile_complete"`
}

// TokenResponse represents a successful login.
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ToUserResponse converts a User model to UserResponse DTO.
func ToUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:                user.ID,
		Email:             user.Email,
		FullName:          user.FullName,
		MobileNo:          user.MobileNo,
		ProfilePicture:    user.ProfilePicture,
		IsProfileComplete: user.IsProfileComplete,
	}
}

// ToTokenResponse builds the login response.
func ToTokenResponse(accessToken string, user *model.User) TokenResponse {
	return TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User:        ToUserResponse(user),
	}
}

// Package model defines domain entities for the application.
package model

import "time"

// User represents an account created on first Google sign-in.
// Users are never deleted; profile updates are the only mutation.
type User struct {
	ID                string     `json:"id"`
	Email             string     `json:"email"`
	FullName          *string    `json:"full_name"`
	GoogleID          *string    `json:"-"`
	ProfilePicture    *string    `json:"profile_picture"`
	MobileNo          *string    `json:"mobile_no"`
	IsActive          bool       `json:"is_active"`
	IsProfileComplete bool       `json:"is_profile_complete"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// ComputeProfileComplete reports whether the profile has both a display
// name and a mobile number. Stored on the row after every profile update.
func (u *User) ComputeProfileComplete() bool {
	return u.FullName != nil && *u.FullName != "" &&
		u.MobileNo != nil && *u.MobileNo != ""
}

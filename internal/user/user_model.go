package user

import (
	"time"

	"gorm.io/gorm"
)

// User is an account holder. FullName is derived from the name parts at
// registration time.
type User struct {
	gorm.Model
	Username     string `json:"username" gorm:"uniqueIndex;not null"`
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	Phone        string `json:"phone"`
	FirstName    string `json:"first_name" gorm:"not null"`
	MiddleName   string `json:"middle_name"`
	LastName     string `json:"last_name" gorm:"not null"`
	FullName     string `json:"full_name"`
	PasswordHash string `json:"-" gorm:"not null"`
	IsVerified   bool   `json:"is_verified" gorm:"default:false"`
}

// RefreshToken is a persisted long-lived token that can mint new access tokens.
type RefreshToken struct {
	gorm.Model
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Token     string    `json:"token" gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	Revoked   bool      `json:"revoked" gorm:"default:false"`
}

type RegisterRequest struct {
	Username   string `json:"username" binding:"required,min=3,max=30"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"omitempty"`
	FirstName  string `json:"first_name" binding:"required"`
	MiddleName string `json:"middle_name" binding:"omitempty"`
	LastName   string `json:"last_name" binding:"required"`
	Password   string `json:"password" binding:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type UpdateProfileRequest struct {
	Username   *string `json:"username,omitempty" binding:"omitempty,min=3,max=30"`
	Email      *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone      *string `json:"phone,omitempty"`
	FirstName  *string `json:"first_name,omitempty"`
	MiddleName *string `json:"middle_name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`
	Password   *string `json:"password,omitempty" binding:"omitempty,min=8,max=72"`
}

type UserResponse struct {
	ID         uint      `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	FirstName  string    `json:"first_name"`
	MiddleName string    `json:"middle_name"`
	LastName   string    `json:"last_name"`
	FullName   string    `json:"full_name"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type AuthResponse struct {
	User         UserResponse `json:"user"`
	Token        string       `json:"token"`
	RefreshToken string       `json:"refresh_token"`
}

// FilterUserRecord strips the password hash from a user for API responses.
func FilterUserRecord(u *User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Phone:      u.Phone,
		FirstName:  u.FirstName,
		MiddleName: u.MiddleName,
		LastName:   u.LastName,
		FullName:   u.FullName,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

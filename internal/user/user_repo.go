package user

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(u *User) error
	GetUserByID(id uint) (*User, error)
	GetUserByEmail(email string) (*User, error)
	GetUserByUsername(username string) (*User, error)
	UpdateUser(u *User) error
	DeleteUser(id uint) error

	SaveRefreshToken(rt *RefreshToken) error
	GetRefreshToken(tokenString string) (*RefreshToken, error)
	InvalidateRefreshToken(tokenString string) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(u *User) error {
	return r.db.Create(u).Error
}

func (r *userRepository) GetUserByID(id uint) (*User, error) {
	var u User
	err := r.db.First(&u, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetUserByEmail(email string) (*User, error) {
	var u User
	err := r.db.Where("email = ?", email).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetUserByUsername(username string) (*User, error) {
	var u User
	err := r.db.Where("username = ?", username).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) UpdateUser(u *User) error {
	return r.db.Save(u).Error
}

func (r *userRepository) DeleteUser(id uint) error {
	return r.db.Delete(&User{}, id).Error
}

func (r *userRepository) SaveRefreshToken(rt *RefreshToken) error {
	return r.db.Create(rt).Error
}

func (r *userRepository) GetRefreshToken(tokenString string) (*RefreshToken, error) {
	var rt RefreshToken
	err := r.db.Where("token = ? AND expires_at > ? AND revoked = ?", tokenString, time.Now(), false).First(&rt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rt, nil
}

func (r *userRepository) InvalidateRefreshToken(tokenString string) error {
	return r.db.Model(&RefreshToken{}).Where("token = ?", tokenString).Update("revoked", true).Error
}

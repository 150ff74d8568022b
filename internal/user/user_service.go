package user

import (
	"strings"
	"time"

	"github.com/SharanSapkota/arena-server/config"
	"github.com/SharanSapkota/arena-server/pkg/apperr"
	"github.com/SharanSapkota/arena-server/pkg/token"
	pkgutils "github.com/SharanSapkota/arena-server/pkg/utils"
	"github.com/SharanSapkota/arena-server/utils"
)

// UserService implements registration, login, and profile self-service.
type UserService struct {
	repo UserRepository
	cfg  *config.Config
}

func NewUserService(repo UserRepository, cfg *config.Config) *UserService {
	return &UserService{repo: repo, cfg: cfg}
}

func (s *UserService) Register(req RegisterRequest) (*AuthResponse, error) {
	email := strings.ToLower(req.Email)

	existing, err := s.repo.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("Email already registered")
	}

	existing, err = s.repo.GetUserByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("Username already taken")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &User{
		Username:     req.Username,
		Email:        email,
		Phone:        req.Phone,
		FirstName:    req.FirstName,
		MiddleName:   req.MiddleName,
		LastName:     req.LastName,
		FullName:     strings.TrimSpace(req.FirstName + " " + req.LastName),
		PasswordHash: hash,
	}

	if err := s.repo.CreateUser(u); err != nil {
		return nil, err
	}

	return s.issueTokens(u)
}

func (s *UserService) Login(req LoginRequest) (*AuthResponse, error) {
	u, err := s.repo.GetUserByEmail(strings.ToLower(req.Email))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	if !utils.CheckPassword(u.PasswordHash, req.Password) {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	return s.issueTokens(u)
}

// Refresh mints a new access token from a valid stored refresh token.
func (s *UserService) Refresh(refreshToken string) (string, error) {
	rt, err := s.repo.GetRefreshToken(refreshToken)
	if err != nil {
		return "", err
	}
	if rt == nil {
		return "", apperr.Unauthorized("Invalid or expired refresh token")
	}

	userID, err := pkgutils.VerifyRefreshToken(refreshToken, s.cfg.JWT.RefreshTokenSecret)
	if err != nil || userID != rt.UserID {
		return "", apperr.Unauthorized("Invalid or expired refresh token")
	}

	u, err := s.repo.GetUserByID(rt.UserID)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", apperr.Unauthorized("User no longer exists")
	}

	return token.GenerateJWT(u.ID, u.Email, s.cfg.JWT.AccessTokenSecret, s.cfg.JWT.AccessTokenExpiryMinutes)
}

func (s *UserService) GetProfile(id uint) (*UserResponse, error) {
	u, err := s.repo.GetUserByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("User not found")
	}
	resp := FilterUserRecord(u)
	return &resp, nil
}

func (s *UserService) UpdateProfile(id uint, req UpdateProfileRequest) (*UserResponse, error) {
	u, err := s.repo.GetUserByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("User not found")
	}

	if req.Email != nil && strings.ToLower(*req.Email) != u.Email {
		existing, err := s.repo.GetUserByEmail(strings.ToLower(*req.Email))
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperr.Conflict("Email already registered")
		}
		u.Email = strings.ToLower(*req.Email)
	}
	if req.Username != nil && *req.Username != u.Username {
		existing, err := s.repo.GetUserByUsername(*req.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperr.Conflict("Username already taken")
		}
		u.Username = *req.Username
	}
	if req.Phone != nil {
		u.Phone = *req.Phone
	}
	if req.FirstName != nil {
		u.FirstName = *req.FirstName
	}
	if req.MiddleName != nil {
		u.MiddleName = *req.MiddleName
	}
	if req.LastName != nil {
		u.LastName = *req.LastName
	}
	if req.FirstName != nil || req.LastName != nil {
		u.FullName = strings.TrimSpace(u.FirstName + " " + u.LastName)
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}

	if err := s.repo.UpdateUser(u); err != nil {
		return nil, err
	}

	resp := FilterUserRecord(u)
	return &resp, nil
}

func (s *UserService) DeleteProfile(id uint) error {
	u, err := s.repo.GetUserByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return apperr.NotFound("User not found")
	}
	return s.repo.DeleteUser(id)
}

func (s *UserService) issueTokens(u *User) (*AuthResponse, error) {
	accessToken, err := token.GenerateJWT(u.ID, u.Email, s.cfg.JWT.AccessTokenSecret, s.cfg.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		return nil, err
	}

	refreshToken, err := pkgutils.GenerateRefreshToken(u.ID, s.cfg.JWT.RefreshTokenSecret, s.cfg.JWT.RefreshTokenExpiryDays)
	if err != nil {
		return nil, err
	}

	rt := &RefreshToken{
		UserID:    u.ID,
		Token:     refreshToken,
		ExpiresAt: time.Now().AddDate(0, 0, s.cfg.JWT.RefreshTokenExpiryDays),
	}
	if err := s.repo.SaveRefreshToken(rt); err != nil {
		return nil, err
	}

	return &AuthResponse{
		User:         FilterUserRecord(u),
		Token:        accessToken,
		RefreshToken: refreshToken,
	}, nil
}

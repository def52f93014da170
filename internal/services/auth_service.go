package services

import (
	"context"
	"time"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type AuthConfig struct {
	JWTSecret      string
	TokenTTL       time.Duration
	PasswordPepper string
	BcryptCost     int
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	cfg      AuthConfig
}

func NewAuthService(userRepo repositories.UserRepository, cfg AuthConfig) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// Register - регистрация нового пользователя.
// Дубликат имени ловится на ограничении уникальности хранилища.
func (s *AuthServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	ctx, cancel := withStoreTimeout(ctx)
	defer cancel()

	hashedPassword, err := auth.HashPassword(req.Password, s.cfg.PasswordPepper, s.cfg.BcryptCost)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrUsernameTaken
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.RegisterResponse{
		Success: true,
		Message: "User registered successfully",
		UserID:  user.ID,
	}, nil
}

// Login - аутентификация пользователя и выпуск токена
func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	ctx, cancel := withStoreTimeout(ctx)
	defer cancel()

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, s.cfg.PasswordPepper, user.PasswordHash) {
		return nil, apperrors.ErrInvalidPassword
	}

	token, err := auth.GenerateToken(user.ID, user.Username, s.cfg.JWTSecret, s.cfg.TokenTTL)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Success:  true,
		Message:  "Login successful",
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
	}, nil
}

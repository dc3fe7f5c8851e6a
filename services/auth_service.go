package services

import (
	"context"
	"errors"

	"blog-api/models"
	"blog-api/repositories"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
}

type authService struct {
	userRepo repositories.UserRepository
	tokens   TokenService
	log      *logrus.Logger
}

func NewAuthService(userRepo repositories.UserRepository, tokens TokenService, log *logrus.Logger) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens, log: log}
}

var (
	errEmailInUse         = models.ErrorConflict{Message: "Email already in use"}
	errInvalidCredentials = models.ErrorBadRequest{Message: "Invalid credentials"}
)

func (s *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	// Check if user already exists
	_, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		return nil, errEmailInUse
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.ErrorInternalServer{Message: "failed to hash password", Err: err}
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration.
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, errEmailInUse
		}
		return nil, err
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, models.ErrorInternalServer{Message: "failed to sign token", Err: err}
	}

	s.log.WithField("user_id", user.ID).Info("User registered")

	return &models.AuthResponse{
		User:  *user,
		Token: token,
	}, nil
}

func (s *authService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, errInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, models.ErrorInternalServer{Message: "failed to sign token", Err: err}
	}

	s.log.WithField("user_id", user.ID).Info("User logged in")

	return &models.AuthResponse{
		User:  *user,
		Token: token,
	}, nil
}

// GetUserByID returns repositories.ErrNotFound (wrapped) for unknown ids so
// callers can tell a missing user from a store failure.
func (s *authService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"todoly-be/internal/cache"
	"todoly-be/internal/jwt"
	"todoly-be/internal/models"
	"todoly-be/internal/repository"
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	CheckEmail(email string) error
	Register(req *models.SignUpRequest) (*models.SignUpResponse, error)
	Login(req *models.LoginRequest) (*models.LoginResponse, error)
	DeleteAccount(userID string) error
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
	cache      cache.Cache
	ctx        context.Context
}

// NewAuthService creates a new auth service. The cache is optional and is
// only touched to drop a deleted account's todo-list entry.
func NewAuthService(userRepo repository.UserRepository, jwtService *jwt.JWTService, cacheClient cache.Cache) AuthService {
	svc := &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		ctx:        context.Background(),
	}
	if cacheClient != nil {
		svc.cache = cacheClient
	}
	return svc
}

// CheckEmail reports whether an email is still available for registration
func (s *authService) CheckEmail(email string) error {
	_, err := s.userRepo.FindByEmail(email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	return ErrEmailTaken
}

// Register creates a new user account
func (s *authService) Register(req *models.SignUpRequest) (*models.SignUpResponse, error) {
	// Check if user already exists
	existingUser, err := s.userRepo.FindByEmail(req.Email)
	if err == nil && existingUser != nil {
		return nil, ErrEmailTaken
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	// Hash password. bcrypt salts per hash; the stored digest is never
	// comparable across users even for identical passwords.
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	createdAt := time.Now().UTC().Format(time.RFC3339)

	user, err := s.userRepo.Create(req.Email, string(hashedPassword), req.Username, createdAt)
	if errors.Is(err, repository.ErrDuplicateEmail) {
		// Lost a race with a concurrent sign-up for the same email
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &models.SignUpResponse{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
		Version:   user.Version,
	}, nil
}

// Login authenticates a user and returns a signed bearer token
func (s *authService) Login(req *models.LoginRequest) (*models.LoginResponse, error) {
	// Find user by email. A missing user and a wrong password report the
	// same error so the response never reveals whether the email exists.
	user, err := s.userRepo.FindByEmail(req.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.LoginResponse{AccessToken: token}, nil
}

// DeleteAccount removes the user and every todo it owns
func (s *authService) DeleteAccount(userID string) error {
	err := s.userRepo.DeleteWithTodos(userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	// The cached todo list must not outlive the account; a still-valid
	// token would otherwise read the dead user's todos until the TTL hits.
	if s.cache != nil {
		s.cache.Delete(s.ctx, listCacheKey(userID))
	}

	return nil
}

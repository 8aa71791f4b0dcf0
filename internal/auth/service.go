package auth

import (
	"errors"
	"fmt"
	"time"

	"crestora-backend/internal/config"
	"crestora-backend/internal/database/models"
	apperrors "crestora-backend/internal/errors"
	"crestora-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Claims carries the identity a token asserts: the username, whether it
// is the admin or a club account, and which club it judges for.
type Claims struct {
	Username string          `json:"username"`
	Role     models.UserRole `json:"role"`
	Club     string          `json:"club,omitempty"`
	jwt.RegisteredClaims
}

// Service handles authentication: credential checks and JWT issuing
type Service struct {
	users  repository.UserRepositoryInterface
	secret []byte
	expiry time.Duration
}

// NewService creates a new auth service
func NewService(users repository.UserRepositoryInterface, cfg *config.Config) *Service {
	return &Service{
		users:  users,
		secret: []byte(cfg.JWTSecret),
		expiry: time.Duration(cfg.JWTExpiryHours) * time.Hour,
	}
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the identity it encodes
type LoginResponse struct {
	Token     string          `json:"token"`
	TokenType string          `json:"token_type"`
	ExpiresAt string          `json:"expires_at"`
	Username  string          `json:"username"`
	Role      models.UserRole `json:"role"`
	Club      string          `json:"club,omitempty"`
}

// Login verifies credentials and issues a signed token. Unknown users
// and wrong passwords are indistinguishable to the caller.
func (s *Service) Login(req *LoginRequest) (*LoginResponse, error) {
	user, err := s.users.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(s.expiry)
	claims := Claims{
		Username: user.Username,
		Role:     user.Role,
		Club:     user.Club,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
		Username:  user.Username,
		Role:      user.Role,
		Club:      user.Club,
	}, nil
}

// ValidateToken parses and verifies a token and returns its claims
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, &apperrors.AuthenticationError{Message: "invalid or expired token"}
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, &apperrors.AuthenticationError{Message: "invalid or expired token"}
	}
	if !claims.Role.IsValid() {
		return nil, &apperrors.AuthenticationError{Message: "token carries an unknown role"}
	}
	return claims, nil
}

// EnsureUser creates a user if the username is free. Used at startup to
// seed the admin account and the club accounts from configuration.
func (s *Service) EnsureUser(username, password string, role models.UserRole, club string) error {
	_, err := s.users.GetByUsername(username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Club:         club,
		IsActive:     true,
	}
	if err := s.users.Create(user); err != nil {
		return fmt.Errorf("failed to create user %s: %w", username, err)
	}
	return nil
}

package services

import (
	"errors"
	"fmt"
	"time"

	"sbfoods/internal/apperrors"
	"sbfoods/internal/models"
	"sbfoods/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles registration, login, and credential resolution.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	tokenDurat time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 7 * 24 * time.Hour,
	}
}

// Register creates a new account, hashes the password, and issues a token.
// Restaurant-only fields are dropped for non-restaurant roles; restaurants
// start unapproved.
func (s *AuthService) Register(user *models.User) (string, error) {
	if _, err := s.userRepo.GetByEmail(user.Email); err == nil {
		return "", apperrors.InvalidRequest("User already exists with this email")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", apperrors.Internal(err)
	}

	if user.Role == "" {
		user.Role = models.RoleCustomer
	}
	if user.Role != models.RoleRestaurant {
		user.CuisineType = ""
		user.Description = ""
	}
	user.IsApproved = false
	user.IsPromoted = false

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", apperrors.Internal(fmt.Errorf("failed to hash password: %w", err))
	}
	user.Password = string(hashedPassword)

	if err := s.userRepo.Create(user); err != nil {
		return "", apperrors.Internal(err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", apperrors.Internal(err)
	}
	return token, nil
}

// Login verifies the email/password pair and issues a token. Both unknown
// email and wrong password produce the same generic failure.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.InvalidRequest("Invalid credentials")
		}
		return nil, "", apperrors.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperrors.InvalidRequest("Invalid credentials")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", apperrors.Internal(err)
	}
	return user, token, nil
}

// UserFromToken verifies a bearer token and resolves its subject to a live
// user record. Every failure mode collapses into the same generic
// unauthenticated error so callers cannot tell which check failed.
func (s *AuthService) UserFromToken(tokenString string) (*models.User, error) {
	claims, err := s.validateToken(tokenString)
	if err != nil {
		return nil, apperrors.Unauthenticated()
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, apperrors.Unauthenticated()
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, apperrors.Unauthenticated()
	}
	return user, nil
}

func (s *AuthService) issueToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(s.tokenDurat).Unix(),
		"iat":     time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

func (s *AuthService) validateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

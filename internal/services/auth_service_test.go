package services_test

import (
	"fmt"
	"testing"
	"time"

	"sbfoods/internal/apperrors"
	"sbfoods/internal/models"
	"sbfoods/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testJWTSecret = "test_jwt_secret"

func notFoundErr(what string) error {
	return fmt.Errorf("%s: %w", what, gorm.ErrRecordNotFound)
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	user := &models.User{
		Name:     "Test Customer",
		Email:    "test@example.com",
		Password: "password123",
	}

	mockRepo.On("GetByEmail", user.Email).Return(nil, notFoundErr("user")).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	token, err := authService.Register(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, models.RoleCustomer, user.Role)
	// The stored password must be a bcrypt hash of the original.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	existing := &models.User{ID: "user-1", Email: "taken@example.com"}
	mockRepo.On("GetByEmail", existing.Email).Return(existing, nil).Once()

	_, err := authService.Register(&models.User{
		Name:     "Another",
		Email:    existing.Email,
		Password: "password123",
	})
	assert.Error(t, err)
	appErr, ok := apperrors.As(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.KindInvalidRequest, appErr.Kind)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Register_DropsRestaurantFieldsForCustomers(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	user := &models.User{
		Name:        "Plain Customer",
		Email:       "plain@example.com",
		Password:    "password123",
		Role:        models.RoleCustomer,
		CuisineType: "Italian",
		Description: "should not survive",
		IsApproved:  true,
		IsPromoted:  true,
	}
	mockRepo.On("GetByEmail", user.Email).Return(nil, notFoundErr("user")).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	_, err := authService.Register(user)
	assert.NoError(t, err)
	assert.Empty(t, user.CuisineType)
	assert.Empty(t, user.Description)
	assert.False(t, user.IsApproved)
	assert.False(t, user.IsPromoted)
}

func TestAuthService_Register_RestaurantStartsUnapproved(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	user := &models.User{
		Name:        "New Bistro",
		Email:       "bistro@example.com",
		Password:    "password123",
		Role:        models.RoleRestaurant,
		CuisineType: "French",
		IsApproved:  true,
	}
	mockRepo.On("GetByEmail", user.Email).Return(nil, notFoundErr("user")).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	_, err := authService.Register(user)
	assert.NoError(t, err)
	assert.Equal(t, "French", user.CuisineType)
	assert.False(t, user.IsApproved)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-123",
		Name:     "Test Customer",
		Email:    "test@example.com",
		Password: string(hashedPassword),
		Role:     models.RoleCustomer,
	}

	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	loggedIn, token, err := authService.Login(user.Email, "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, loggedIn.ID)

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, user.ID, claims["user_id"])
	assert.Equal(t, models.RoleCustomer, claims["role"])
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{ID: "user-123", Email: "test@example.com", Password: string(hashedPassword)}

	// Wrong password.
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, _, err := authService.Login(user.Email, "wrongpassword")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid credentials")

	// Unknown email yields the same message as a wrong password.
	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, notFoundErr("user")).Once()
	_, _, err = authService.Login("nobody@example.com", "password123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid credentials")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_UserFromToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	user := &models.User{ID: "user-123", Role: models.RoleCustomer}
	signToken := func(claims jwt.MapClaims) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, _ := token.SignedString([]byte(testJWTSecret))
		return signed
	}

	validToken := signToken(jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	mockRepo.On("GetByID", user.ID).Return(user, nil).Once()
	resolved, err := authService.UserFromToken(validToken)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
	mockRepo.AssertExpectations(t)

	assertUnauthenticated := func(t *testing.T, err error) {
		t.Helper()
		assert.Error(t, err)
		appErr, ok := apperrors.As(err)
		assert.True(t, ok)
		assert.Equal(t, apperrors.KindUnauthenticated, appErr.Kind)
	}

	// Garbage token.
	_, err = authService.UserFromToken("not.a.token")
	assertUnauthenticated(t, err)

	// Expired token.
	expiredToken := signToken(jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	_, err = authService.UserFromToken(expiredToken)
	assertUnauthenticated(t, err)

	// Valid token whose subject no longer exists.
	mockRepo.On("GetByID", "ghost").Return(nil, notFoundErr("user")).Once()
	orphanToken := signToken(jwt.MapClaims{
		"user_id": "ghost",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	_, err = authService.UserFromToken(orphanToken)
	assertUnauthenticated(t, err)
	mockRepo.AssertExpectations(t)
}

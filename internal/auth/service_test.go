package auth_test

import (
	"testing"

	"crestora-backend/internal/auth"
	"crestora-backend/internal/config"
	"crestora-backend/internal/database/models"
	apperrors "crestora-backend/internal/errors"
	"crestora-backend/internal/mocks"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockUsers *mocks.MockUserRepositoryInterface
	service   *auth.Service
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUsers = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.service = auth.NewService(suite.mockUsers, &config.Config{
		JWTSecret:      "test-secret",
		JWTExpiryHours: 1,
	})
}

func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (suite *AuthServiceTestSuite) userWithPassword(password string) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	suite.Require().NoError(err)
	return &models.User{
		Username:     "techclub",
		PasswordHash: string(hash),
		Role:         models.UserRoleClubs,
		Club:         "Tech Club",
		IsActive:     true,
	}
}

func (suite *AuthServiceTestSuite) TestLogin() {
	suite.Run("unknown user", func() {
		suite.mockUsers.EXPECT().GetByUsername("ghost").Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.service.Login(&auth.LoginRequest{Username: "ghost", Password: "whatever"})

		suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	})

	suite.Run("wrong password", func() {
		suite.mockUsers.EXPECT().GetByUsername("techclub").Return(suite.userWithPassword("correct"), nil)

		_, err := suite.service.Login(&auth.LoginRequest{Username: "techclub", Password: "wrong"})

		suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	})

	suite.Run("inactive user", func() {
		user := suite.userWithPassword("correct")
		user.IsActive = false
		suite.mockUsers.EXPECT().GetByUsername("techclub").Return(user, nil)

		_, err := suite.service.Login(&auth.LoginRequest{Username: "techclub", Password: "correct"})

		suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	})

	suite.Run("issues a token round-trippable by ValidateToken", func() {
		suite.mockUsers.EXPECT().GetByUsername("techclub").Return(suite.userWithPassword("correct"), nil)

		response, err := suite.service.Login(&auth.LoginRequest{Username: "techclub", Password: "correct"})

		suite.Require().NoError(err)
		suite.Equal("Bearer", response.TokenType)
		suite.Equal("techclub", response.Username)
		suite.Equal(models.UserRoleClubs, response.Role)

		claims, err := suite.service.ValidateToken(response.Token)
		suite.Require().NoError(err)
		suite.Equal("techclub", claims.Username)
		suite.Equal(models.UserRoleClubs, claims.Role)
		suite.Equal("Tech Club", claims.Club)
	})
}

func (suite *AuthServiceTestSuite) TestValidateToken() {
	suite.Run("garbage token", func() {
		_, err := suite.service.ValidateToken("not.a.token")

		suite.True(apperrors.IsAuthentication(err))
	})

	suite.Run("token signed with another secret", func() {
		other := auth.NewService(suite.mockUsers, &config.Config{JWTSecret: "other-secret", JWTExpiryHours: 1})
		suite.mockUsers.EXPECT().GetByUsername("techclub").Return(suite.userWithPassword("correct"), nil)
		response, err := other.Login(&auth.LoginRequest{Username: "techclub", Password: "correct"})
		suite.Require().NoError(err)

		_, err = suite.service.ValidateToken(response.Token)

		suite.True(apperrors.IsAuthentication(err))
	})
}

func (suite *AuthServiceTestSuite) TestEnsureUser() {
	suite.Run("existing user is left alone", func() {
		suite.mockUsers.EXPECT().GetByUsername("admin").Return(&models.User{Username: "admin"}, nil)

		suite.NoError(suite.service.EnsureUser("admin", "secret-password", models.UserRoleAdmin, ""))
	})

	suite.Run("missing user is created with a hashed password", func() {
		suite.mockUsers.EXPECT().GetByUsername("admin").Return(nil, gorm.ErrRecordNotFound)
		suite.mockUsers.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *models.User) error {
			suite.Equal("admin", user.Username)
			suite.Equal(models.UserRoleAdmin, user.Role)
			suite.True(user.IsActive)
			suite.NoError(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret-password")))
			return nil
		})

		suite.NoError(suite.service.EnsureUser("admin", "secret-password", models.UserRoleAdmin, ""))
	})
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Mohsin1016/post-blog-test/internal/config"
	"github.com/Mohsin1016/post-blog-test/internal/models"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	args := m.Called(ctx, user, password)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) VerifyPassword(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func newAuthService(repo *MockUserRepository, ttl time.Duration) AuthService {
	cfg := &config.Config{
		JWTSecretKey: "test-secret-key",
		TokenTTL:     ttl,
	}
	return NewAuthService(repo, cfg)
}

func TestAuthService_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := newAuthService(repo, 0)

		repo.On("CreateUser", mock.Anything, mock.Anything, "password123").
			Run(func(args mock.Arguments) {
				args.Get(1).(*models.User).UserID = "user-1"
			}).
			Return(nil)

		user, err := svc.Register(context.Background(), "alice", "password123")

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "user-1", user.UserID)
	})

	t.Run("duplicate username", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := newAuthService(repo, 0)

		repo.On("CreateUser", mock.Anything, mock.Anything, "password123").
			Return(models.ErrDuplicateUsername)

		_, err := svc.Register(context.Background(), "alice", "password123")

		assert.ErrorIs(t, err, models.ErrDuplicateUsername)
	})
}

func TestAuthService_LoginTokenRoundTrip(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newAuthService(repo, 0)

	repo.On("VerifyPassword", mock.Anything, "alice", "password123").
		Return(&models.User{UserID: "user-1", Username: "alice"}, nil)

	user, token, err := svc.Login(context.Background(), "alice", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "user-1", user.UserID)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Nil(t, claims.ExpiresAt)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newAuthService(repo, 0)

	repo.On("VerifyPassword", mock.Anything, "alice", "oops").
		Return(nil, models.ErrInvalidCredentials)

	_, _, err := svc.Login(context.Background(), "alice", "oops")

	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestAuthService_ParseToken(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("VerifyPassword", mock.Anything, "alice", "password123").
		Return(&models.User{UserID: "user-1", Username: "alice"}, nil)

	t.Run("tampered token is rejected", func(t *testing.T) {
		svc := newAuthService(repo, 0)

		_, token, err := svc.Login(context.Background(), "alice", "password123")
		require.NoError(t, err)

		_, err = svc.ParseToken(token + "x")
		assert.ErrorIs(t, err, models.ErrInvalidToken)
	})

	t.Run("wrong key is rejected", func(t *testing.T) {
		svc := newAuthService(repo, 0)
		other := NewAuthService(repo, &config.Config{JWTSecretKey: "other-key"})

		_, token, err := svc.Login(context.Background(), "alice", "password123")
		require.NoError(t, err)

		_, err = other.ParseToken(token)
		assert.ErrorIs(t, err, models.ErrInvalidToken)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		svc := newAuthService(repo, -time.Hour)

		_, token, err := svc.Login(context.Background(), "alice", "password123")
		require.NoError(t, err)

		_, err = svc.ParseToken(token)
		assert.ErrorIs(t, err, models.ErrInvalidToken)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		svc := newAuthService(repo, 0)

		_, err := svc.ParseToken("not-a-token")
		assert.ErrorIs(t, err, models.ErrInvalidToken)
	})

	t.Run("ttl sets expiry", func(t *testing.T) {
		svc := newAuthService(repo, time.Hour)

		_, token, err := svc.Login(context.Background(), "alice", "password123")
		require.NoError(t, err)

		claims, err := svc.ParseToken(token)
		require.NoError(t, err)
		require.NotNil(t, claims.ExpiresAt)
		assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
	})
}

package services

import (
	"context"
	"testing"
	"time"

	"shop-service/internal/domain"
	"shop-service/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestUser(t *testing.T, id uint64, username, password string, admin bool) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{ID: id, Username: username, PasswordHash: string(hash), IsAdmin: admin}
}

func TestAuthService_LoginAndParse(t *testing.T) {
	users := new(mocks.MockUserRepository)
	admin := newTestUser(t, 1, "testadmin", "testpassword", true)
	users.On("FindByUsername", mock.Anything, "testadmin").Return(admin, nil)

	service := NewAuthService(users, "test-secret", time.Minute, time.Hour)
	pair, err := service.Login(context.Background(), "testadmin", "testpassword")
	require.NoError(t, err)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)

	claims, err := service.ParseAccess(pair.Access)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), claims.UserID)
	assert.Equal(t, "testadmin", claims.Username)
	assert.True(t, claims.IsAdmin())

	_, err = service.ParseAccess(pair.Refresh)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_LoginRejectsBadCredentials(t *testing.T) {
	users := new(mocks.MockUserRepository)
	users.On("FindByUsername", mock.Anything, "testuser").Return(newTestUser(t, 2, "testuser", "testpassword", false), nil)
	users.On("FindByUsername", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

	service := NewAuthService(users, "test-secret", time.Minute, time.Hour)

	_, err := service.Login(context.Background(), "testuser", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = service.Login(context.Background(), "ghost", "testpassword")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Refresh(t *testing.T) {
	users := new(mocks.MockUserRepository)
	user := newTestUser(t, 2, "testuser", "testpassword", false)
	users.On("FindByUsername", mock.Anything, "testuser").Return(user, nil)
	users.On("FindByID", mock.Anything, uint64(2)).Return(user, nil)

	service := NewAuthService(users, "test-secret", time.Minute, time.Hour)
	pair, err := service.Login(context.Background(), "testuser", "testpassword")
	require.NoError(t, err)

	access, err := service.Refresh(context.Background(), pair.Refresh)
	require.NoError(t, err)

	claims, err := service.ParseAccess(access)
	require.NoError(t, err)
	assert.False(t, claims.IsAdmin())

	_, err = service.Refresh(context.Background(), pair.Access)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_ExpiredAndForeignTokens(t *testing.T) {
	users := new(mocks.MockUserRepository)
	users.On("FindByUsername", mock.Anything, "testuser").Return(newTestUser(t, 2, "testuser", "testpassword", false), nil)

	expired := NewAuthService(users, "test-secret", time.Minute, time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }
	pair, err := expired.Login(context.Background(), "testuser", "testpassword")
	require.NoError(t, err)

	_, err = expired.ParseAccess(pair.Access)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	other := NewAuthService(users, "other-secret", time.Minute, time.Hour)
	fresh, err := NewAuthService(users, "test-secret", time.Minute, time.Hour).Login(context.Background(), "testuser", "testpassword")
	require.NoError(t, err)
	_, err = other.ParseAccess(fresh.Access)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_Register(t *testing.T) {
	users := new(mocks.MockUserRepository)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Username == "testadmin" && u.IsAdmin &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("testpassword")) == nil
	})).Return(nil)

	service := NewAuthService(users, "test-secret", time.Minute, time.Hour)

	u, err := service.Register(context.Background(), " testadmin ", "testpassword", true)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, u.Role())

	_, err = service.Register(context.Background(), "", "testpassword", false)
	assert.ErrorIs(t, err, domain.ErrFieldRequired)

	users.AssertExpectations(t)
}

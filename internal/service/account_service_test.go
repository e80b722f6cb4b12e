package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/notes-service/internal/auth"
	"github.com/spec-kit/notes-service/internal/events"
	"github.com/spec-kit/notes-service/internal/repository"
	apperrors "github.com/spec-kit/notes-service/pkg/util"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newAccountService() (*AccountService, *repository.InMemoryUserRepository) {
	users := repository.NewInMemoryUserRepository()
	svc := NewAccountService(AccountDependencies{
		UserRepo:   users,
		Tokens:     auth.NewTokenManager(testSecret, time.Hour),
		Dispatcher: events.NewInMemoryDispatcher(),
		Logger:     zap.NewNop(),
		BcryptCost: bcrypt.MinCost,
	})
	return svc, users
}

func TestSignupThenSignin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newAccountService()

	_, _, err := svc.Signup(ctx, "alice@example.com", "hunter22", "Alice")
	require.NoError(t, err)

	token, _, err := svc.Signin(ctx, "alice@example.com", "hunter22")
	require.NoError(t, err)

	claims, err := svc.TokenManager().Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Subject)
	assert.Equal(t, "Alice", claims.Name)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newAccountService()

	_, _, err := svc.Signup(ctx, "alice@example.com", "hunter22", "Alice")
	require.NoError(t, err)

	_, _, err = svc.Signup(ctx, "alice@example.com", "different-password", "Mallory")
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "DUPLICATE_ACCOUNT", domainErr.Code)
	assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus)
}

func TestSignup_StoresHashNotPlaintext(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, users := newAccountService()

	_, _, err := svc.Signup(ctx, "alice@example.com", "hunter22", "Alice")
	require.NoError(t, err)

	user, err := users.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", user.PasswordHash)
	assert.True(t, auth.VerifyPassword(user.PasswordHash, "hunter22"))
}

func TestSignin_FailuresIndistinguishable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newAccountService()

	_, _, err := svc.Signup(ctx, "alice@example.com", "hunter22", "Alice")
	require.NoError(t, err)

	_, _, unknownErr := svc.Signin(ctx, "nobody@example.com", "hunter22")
	require.Error(t, unknownErr)
	_, _, wrongErr := svc.Signin(ctx, "alice@example.com", "wrong-password")
	require.Error(t, wrongErr)

	unknown := apperrors.ToDomainError(unknownErr)
	wrong := apperrors.ToDomainError(wrongErr)
	assert.Equal(t, unknown.Code, wrong.Code)
	assert.Equal(t, unknown.HTTPStatus, wrong.HTTPStatus)
	assert.Equal(t, unknown.Message, wrong.Message)
	assert.Equal(t, "INVALID_CREDENTIALS", unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.HTTPStatus)
}

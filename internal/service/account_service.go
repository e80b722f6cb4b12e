package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/notes-service/internal/auth"
	"github.com/spec-kit/notes-service/internal/domain"
	"github.com/spec-kit/notes-service/internal/events"
	"github.com/spec-kit/notes-service/internal/repository"
	apperrors "github.com/spec-kit/notes-service/pkg/util"
)

// AccountService coordinates signup and signin flows.
type AccountService struct {
	users      repository.UserRepository
	tokens     *auth.TokenManager
	dispatcher events.Dispatcher
	logger     *zap.Logger
	bcryptCost int
}

// AccountDependencies bundles collaborators for the account service.
type AccountDependencies struct {
	UserRepo   repository.UserRepository
	Tokens     *auth.TokenManager
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	BcryptCost int
}

// NewAccountService builds the service.
func NewAccountService(deps AccountDependencies) *AccountService {
	return &AccountService{
		users:      deps.UserRepo,
		tokens:     deps.Tokens,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		bcryptCost: deps.BcryptCost,
	}
}

// Signup creates a new account and returns a freshly issued token. Email
// uniqueness rides on the storage unique index; a duplicate insert, not a
// prior existence check, is the DuplicateAccount signal.
func (s *AccountService) Signup(ctx context.Context, email, password, name string) (string, time.Time, error) {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return "", time.Time{}, err
	}

	user := &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return "", time.Time{}, apperrors.NewDuplicateAccount()
		}
		return "", time.Time{}, err
	}

	s.logger.Info("user registered", zap.String("email", user.Email))
	s.publish(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       events.EventUserRegistered,
		OwnerEmail: user.Email,
		Timestamp:  time.Now(),
		Payload:    events.UserRegisteredPayload{Email: user.Email},
	})

	return s.issue(user.Email, user.Name)
}

// Signin authenticates an account. Unknown email and wrong password collapse
// into the same error, and both paths pay for a bcrypt verification so the
// two cannot be told apart by timing either.
func (s *AccountService) Signin(ctx context.Context, email, password string) (string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			auth.VerifyDummy(password)
			return "", time.Time{}, apperrors.NewInvalidCredentials()
		}
		return "", time.Time{}, err
	}

	if !auth.VerifyPassword(user.PasswordHash, password) {
		return "", time.Time{}, apperrors.NewInvalidCredentials()
	}

	s.logger.Info("user signed in", zap.String("email", user.Email))
	return s.issue(user.Email, user.Name)
}

func (s *AccountService) issue(email, name string) (string, time.Time, error) {
	token, expiresAt, err := s.tokens.Issue(email, name)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

func (s *AccountService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AccountService) TokenManager() *auth.TokenManager {
	return s.tokens
}

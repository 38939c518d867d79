package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"news-explorer/internal/domain/entity"
	"news-explorer/internal/observability/metrics"
	"news-explorer/internal/repository"
	"news-explorer/internal/service/auth"
)

// RegisterInput is a validated signup request.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginResult is returned by a successful signin.
type LoginResult struct {
	Token string
	User  *entity.User
}

// TokenIssuer signs access tokens for a user ID.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// Service provides account use cases.
type Service struct {
	Repo   repository.UserRepository
	Hasher auth.PasswordHasher
	Tokens TokenIssuer
}

// normalizeEmail trims and lowercases so that uniqueness is case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account. The password is stored only as a hash.
// A duplicate email is reported as ErrEmailTaken both by the pre-check and,
// when two registrations race, by the store's unique index.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	email := normalizeEmail(in.Email)

	exists, err := s.Repo.ExistsByEmail(ctx, email)
	if err != nil {
		metrics.RecordSignup(metrics.OutcomeError)
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		metrics.RecordSignup(metrics.OutcomeConflict)
		return nil, ErrEmailTaken
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		metrics.RecordSignup(metrics.OutcomeError)
		return nil, fmt.Errorf("register: %w", err)
	}

	user := &entity.User{
		Name:         in.Name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		if errors.Is(err, entity.ErrDuplicateKey) {
			metrics.RecordSignup(metrics.OutcomeConflict)
			return nil, ErrEmailTaken.Wrap(err)
		}
		metrics.RecordSignup(metrics.OutcomeError)
		return nil, fmt.Errorf("create user: %w", err)
	}

	metrics.RecordSignup(metrics.OutcomeSuccess)
	return user, nil
}

// Login checks the credentials and issues an access token.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		metrics.RecordLogin(metrics.OutcomeInvalid)
		return nil, ErrCredentialsRequired
	}

	user, err := s.Repo.FindByCredentials(ctx, email, password)
	if errors.Is(err, repository.ErrInvalidCredentials) {
		metrics.RecordLogin(metrics.OutcomeFailure)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		metrics.RecordLogin(metrics.OutcomeError)
		return nil, fmt.Errorf("find by credentials: %w", err)
	}

	token, err := s.Tokens.Issue(user.ID)
	if err != nil {
		metrics.RecordLogin(metrics.OutcomeError)
		return nil, fmt.Errorf("issue token: %w", err)
	}

	metrics.RecordLogin(metrics.OutcomeSuccess)
	return &LoginResult{Token: token, User: user}, nil
}

// Current returns the account a verified token refers to.
func (s *Service) Current(ctx context.Context, userID string) (*entity.User, error) {
	user, err := s.Repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

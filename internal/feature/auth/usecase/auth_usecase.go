package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"opticode_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength is the minimum number of password characters.
	minPasswordLength = 6

	// bcryptCost is the work factor used when hashing passwords.
	bcryptCost = 12
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer (usecase)
// rather than the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrEmailAlreadyExists when the
	// email is already registered; uniqueness is enforced by the database.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves the full user record, including the password
	// hash, for credential verification. Returns ErrUserNotFound if absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user by ID. Returns ErrUserNotFound if absent.
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

// TokenIssuer creates signed identity tokens.
type TokenIssuer interface {
	GenerateToken(userID, name, email string) (string, error)
}

// authUsecase implements registration, login and identity lookup.
type authUsecase struct {
	users  UserRepository
	tokens TokenIssuer
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, tokens TokenIssuer) *authUsecase {
	return &authUsecase{users: users, tokens: tokens}
}

// normalizeEmail lowercases and trims an email so comparisons are
// case-insensitive on both write and read paths.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account and returns a signed token for it.
// Validation runs before any store access.
func (u *authUsecase) Register(ctx context.Context, name, email, password string) (string, *entity.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	password = strings.TrimSpace(password)

	if name == "" || email == "" || password == "" {
		return "", nil, ErrMissingFields
	}
	if len(password) < minPasswordLength {
		return "", nil, ErrPasswordTooShort
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Name: name, Email: email, Password: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Name, user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return token, user, nil
}

// Login authenticates a user and returns a signed token on success.
// A bcrypt comparison runs even when the user does not exist so response
// timing does not reveal whether the email is registered.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	email = normalizeEmail(email)
	password = strings.TrimSpace(password)

	if email == "" || password == "" {
		return "", nil, ErrCredentialsRequired
	}

	user, err := u.users.FindByEmail(ctx, email)

	// Dummy hash keeps bcrypt.CompareHashAndPassword on the unknown-user path.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))
	if err != nil || compareErr != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, tokenErr := u.tokens.GenerateToken(user.ID, user.Name, user.Email)
	if tokenErr != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return token, user, nil
}

// CurrentUser returns the account behind an authenticated identity.
func (u *authUsecase) CurrentUser(ctx context.Context, id string) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

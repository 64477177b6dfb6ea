package usecase

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/servicebooking/internal/domain/errors"
	"github.com/polkiloo/servicebooking/internal/domain/model"
	"github.com/polkiloo/servicebooking/internal/domain/repository"
	pkgAuth "github.com/polkiloo/servicebooking/internal/pkg/auth"
)

const minPasswordLen = 6

// AdminPolicy decides which registrations receive administrator rights.
type AdminPolicy interface {
	IsAdminEmail(email string) bool
}

// AuthUseCase handles user lifecycle and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
	admins AdminPolicy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy, admins AdminPolicy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy, admins: admins}
}

// Register creates a new user and returns an access token.
func (u *AuthUseCase) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || len(password) < minPasswordLen {
		return nil, "", domainErrors.ErrInvalidCredentials
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, pkgAuth.ErrPasswordTooLong) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, model.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      u.admins != nil && u.admins.IsAdminEmail(email),
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, "", domainErrors.ErrAlreadyExists
		}
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(principalOf(usr))
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Authenticate validates credentials and returns an access token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(principalOf(usr))
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts the principal from provided token.
func (u *AuthUseCase) ParseToken(token string) (model.Principal, error) {
	if token == "" {
		return model.Principal{}, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// UpdateAccount changes name, email or password of userID. Blank fields keep
// their stored value.
func (u *AuthUseCase) UpdateAccount(ctx context.Context, userID uuid.UUID, change model.AccountChange) (*model.User, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	updated := *usr

	if name := strings.TrimSpace(change.Name); name != "" {
		updated.Name = name
	}
	if email := normalizeEmail(change.Email); email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, domainErrors.ErrInvalidCredentials
		}
		updated.Email = email
	}
	if change.Password != "" {
		if len(change.Password) < minPasswordLen {
			return nil, domainErrors.ErrInvalidCredentials
		}
		hash, err := u.hasher.Hash(change.Password)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrPasswordTooLong) {
				return nil, domainErrors.ErrInvalidCredentials
			}
			return nil, err
		}
		updated.PasswordHash = hash
	}

	return u.users.Update(ctx, updated)
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

func principalOf(usr *model.User) model.Principal {
	return model.Principal{UserID: usr.ID, Admin: usr.IsAdmin}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

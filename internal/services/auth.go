package services

import (
	"context"
	"errors"

	"github.com/sulochan19/image-conversion-api/internal/logger"
	"github.com/sulochan19/image-conversion-api/internal/models"
	"github.com/sulochan19/image-conversion-api/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("could not validate credentials")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username string, passwordHash string) error
}

// Tokener defines token issuance and validation.
type Tokener interface {
	Generate(ctx context.Context, subject string) (string, error)
	GetSubject(ctx context.Context, tokenString string) (string, error)
}

// AuthService handles registration, login and token resolution.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    Tokener
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt Tokener) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register hashes the password and stores a new user. Duplicate usernames are
// not pre-checked; the store's unique constraint reports the conflict.
func (svc *AuthService) Register(ctx context.Context, username, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.Save(ctx, username, string(hashedPassword)); err != nil {
		if errors.Is(err, repositories.ErrUsernameTaken) {
			logger.FromContext(ctx).Errorw("user already exists", "username", username)
			return ErrUserAlreadyExists
		}
		logger.FromContext(ctx).Errorw("failed to save user", "err", err)
		return err
	}

	return nil
}

// Login authenticates a user and returns a JWT token. An unknown username and
// a wrong password both come back as ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.FromContext(ctx).Errorw("user does not exist", "username", username)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.FromContext(ctx).Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.Username)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// ResolveUser validates the token and loads the user named by its subject.
// Every failure mode collapses into ErrInvalidToken.
func (svc *AuthService) ResolveUser(ctx context.Context, tokenString string) (*models.UserDB, error) {
	subject, err := svc.jwt.GetSubject(ctx, tokenString)
	if err != nil {
		logger.FromContext(ctx).Errorw("token validation failed", "err", err)
		return nil, ErrInvalidToken
	}

	user, err := svc.reader.GetByUsername(ctx, subject)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get user for token subject", "err", err)
		return nil, ErrInvalidToken
	}
	if user == nil {
		logger.FromContext(ctx).Errorw("token subject does not resolve to a user", "subject", subject)
		return nil, ErrInvalidToken
	}

	return user, nil
}

package service

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/JC-Quero/gym-tracker/internal/entity"
	"github.com/JC-Quero/gym-tracker/internal/repository"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

const bcryptCost = 11

// TokenClaims is the payload embedded in issued bearer tokens.
type TokenClaims struct {
	UserID int    `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type UserService struct {
	repo      repository.UserRepository
	jwtSecret []byte
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo repository.UserRepository, jwtSecret string) *UserService {
	return &UserService{repo: repo, jwtSecret: []byte(jwtSecret)}
}

// CreateUser hashes the password and persists the user. The hash is stored
// but never serialized back to callers.
func (s *UserService) CreateUser(ctx context.Context, username, password, role string) (*entity.User, error) {
	if username == "" {
		return nil, &entity.ValidationError{Field: "username", Reason: "required"}
	}
	if password == "" {
		return nil, &entity.ValidationError{Field: "password", Reason: "required"}
	}
	if role == "" {
		role = entity.DefaultRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{Username: username, Role: role, HashedPassword: string(hash)}
	createdUser, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating user")
		return nil, err
	}

	return createdUser, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]entity.User, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing users")
		return nil, err
	}
	return users, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (*entity.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error getting user by ID %d", id)
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and issues a signed bearer token embedding
// the username, user id and role. Unknown users and wrong passwords are
// indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, username, password string) (*entity.User, string, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		var notFound *entity.NotFoundError
		if errors.As(err, &notFound) {
			return nil, "", &entity.AuthenticationError{Reason: "incorrect username or password"}
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, "", &entity.AuthenticationError{Reason: "incorrect username or password"}
	}

	claims := &TokenClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		logger.Error().Err(err).Msg("Error signing token")
		return nil, "", err
	}

	return user, token, nil
}

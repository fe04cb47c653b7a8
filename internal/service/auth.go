package service

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/threadmind-dev/threadmind/internal/domain"
	"github.com/threadmind-dev/threadmind/internal/errors"
	"github.com/threadmind-dev/threadmind/internal/logger"
)

type AuthService interface {
	Register(name string, creds domain.Credentials) (*domain.User, error)
	Login(creds domain.Credentials) (*domain.User, string, error)
	Profile(uid domain.UserId) (*domain.User, error)
}

type Auth struct {
	storage AuthStorage
	jwt     Jwt
}

type AuthStorage interface {
	SaveUser(user *domain.User) error
	UserByEmail(email domain.Email) (*domain.User, error)
	User(id domain.UserId) (*domain.User, error)
}

type Jwt interface {
	NewToken(user *domain.User) (string, error)
}

func NewAuth(storage AuthStorage, jwt Jwt) *Auth {
	return &Auth{storage, jwt}
}

func (a *Auth) Register(name string, creds domain.Credentials) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewBadRequest("Name must not be empty")
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return nil, err
	}

	user := &domain.User{
		Id:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Avatar:    "https://api.dicebear.com/7.x/avataaars/svg?seed=" + url.QueryEscape(name),
		PassHash:  string(passHash),
		CreatedAt: time.Now().UTC(),
	}
	if err := a.storage.SaveUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks credentials and returns the user with an access token.
// Unknown email and wrong password are indistinguishable to the caller.
func (a *Auth) Login(creds domain.Credentials) (*domain.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))

	user, err := a.storage.UserByEmail(email)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, "", errors.NewUnauthorized("Invalid credentials")
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(creds.Password)); err != nil {
		return nil, "", errors.NewUnauthorized("Invalid credentials")
	}

	token, err := a.jwt.NewToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (a *Auth) Profile(uid domain.UserId) (*domain.User, error) {
	return a.storage.User(uid)
}

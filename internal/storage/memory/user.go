package memory

import (
	"net/http"
	"strings"

	"github.com/threadmind-dev/threadmind/internal/domain"
	"github.com/threadmind-dev/threadmind/internal/errors"
)

func (s *Storage) SaveUser(user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(user.Email)
	if _, exists := s.usersByEmail[email]; exists {
		return &errors.ErrorWithStatusCode{Message: "Email already registered", StatusCode: http.StatusConflict}
	}
	cp := *user
	cp.Email = email
	s.users[cp.Id] = &cp
	s.usersByEmail[email] = cp.Id
	return nil
}

func (s *Storage) UserByEmail(email domain.Email) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usersByEmail[strings.ToLower(email)]
	if !ok {
		return nil, errors.NewNotFound("User not found")
	}
	cp := *s.users[id]
	return &cp, nil
}

func (s *Storage) User(id domain.UserId) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, errors.NewNotFound("User not found")
	}
	cp := *u
	return &cp, nil
}

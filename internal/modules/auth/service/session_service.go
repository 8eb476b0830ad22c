package service

import (
	"fmt"
	"strings"

	"statdeck/internal/modules/auth/domain"
	apperrors "statdeck/internal/platform/errors"
)

type SessionService struct{}

func NewSessionService() *SessionService {
	return &SessionService{}
}

// Open builds a session from whatever user record the caller has. Only the
// token is required; it is what every later request depends on.
func (s *SessionService) Open(token string, user domain.Record) (domain.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.Session{}, fmt.Errorf("%w: token is required", apperrors.ErrInvalidInput)
	}
	if user == nil {
		user = domain.Record{}
	}
	return domain.Session{
		UserName: domain.DisplayName(user),
		Token:    token,
		User:     user,
	}, nil
}

func (s *SessionService) ValidateCredentials(email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return fmt.Errorf("%w: email and password are required", apperrors.ErrInvalidInput)
	}
	return nil
}

package out

import (
	"context"

	"statdeck/internal/modules/auth/domain"
)

// SessionStore persists the single process-wide session.
// Load returns apperrors.ErrUnauthenticated when nothing is stored and
// apperrors.ErrMalformedSession when the stored user record cannot be parsed.
type SessionStore interface {
	Save(ctx context.Context, session domain.Session) error
	Load(ctx context.Context) (domain.Session, error)
	Clear(ctx context.Context) error
	Token(ctx context.Context) (string, error)
}

type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (token string, user domain.Record, err error)
}

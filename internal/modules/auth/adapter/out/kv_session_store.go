package out

import (
	"context"
	"encoding/json"
	"fmt"

	"statdeck/internal/modules/auth/domain"
	authout "statdeck/internal/modules/auth/port/out"
	apperrors "statdeck/internal/platform/errors"
)

type keyValue interface {
	Get(ctx context.Context, key string) (string, bool, error)
	SetMany(ctx context.Context, pairs map[string]string) error
	Delete(ctx context.Context, keys ...string) error
}

type KVSessionStore struct {
	kv keyValue
}

func NewKVSessionStore(kv keyValue) authout.SessionStore {
	return &KVSessionStore{kv: kv}
}

func (s *KVSessionStore) Save(ctx context.Context, session domain.Session) error {
	user, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("marshal user record: %w", err)
	}
	return s.kv.SetMany(ctx, map[string]string{
		domain.KeyToken: session.Token,
		domain.KeyUser:  string(user),
	})
}

func (s *KVSessionStore) Load(ctx context.Context) (domain.Session, error) {
	token, hasToken, err := s.kv.Get(ctx, domain.KeyToken)
	if err != nil {
		return domain.Session{}, err
	}
	raw, hasUser, err := s.kv.Get(ctx, domain.KeyUser)
	if err != nil {
		return domain.Session{}, err
	}
	if !hasToken || !hasUser || token == "" {
		return domain.Session{}, apperrors.ErrUnauthenticated
	}
	var user domain.Record
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return domain.Session{}, fmt.Errorf("%w: decode user record: %v", apperrors.ErrMalformedSession, err)
	}
	if user == nil {
		return domain.Session{}, fmt.Errorf("%w: user record is null", apperrors.ErrMalformedSession)
	}
	return domain.Session{UserName: domain.DisplayName(user), Token: token, User: user}, nil
}

func (s *KVSessionStore) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, domain.KeyToken, domain.KeyUser); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *KVSessionStore) Token(ctx context.Context) (string, error) {
	token, _, err := s.kv.Get(ctx, domain.KeyToken)
	if err != nil {
		return "", err
	}
	return token, nil
}

package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"

	authout "statdeck/internal/modules/auth/adapter/out"
	"statdeck/internal/modules/auth/domain"
	authdto "statdeck/internal/modules/auth/dto"
	authin "statdeck/internal/modules/auth/port/in"
	"statdeck/internal/modules/auth/service"
	"statdeck/internal/modules/auth/usecase"
	"statdeck/internal/platform/clock"
	apperrors "statdeck/internal/platform/errors"
	"statdeck/internal/platform/kvstore"
)

type fakeAuthenticator struct {
	token string
	user  domain.Record
	err   error
	calls int
}

func (f *fakeAuthenticator) Authenticate(context.Context, string, string) (string, domain.Record, error) {
	f.calls++
	return f.token, f.user, f.err
}

func newInteractor(t *testing.T, remote *fakeAuthenticator) (authin.Usecase, *kvstore.Store) {
	t.Helper()
	kv, err := kvstore.Open(filepath.Join(t.TempDir(), "statdeck.db"), clock.SystemClock{})
	if err != nil {
		t.Fatalf("open kv: %v", err)
	}
	t.Cleanup(func() { _ = kv.Close() })
	uc := usecase.NewInteractor(service.NewSessionService(), authout.NewKVSessionStore(kv), remote, zaptest.NewLogger(t))
	return uc, kv
}

func TestLoginPersistsAndLogoutClearsBothKeys(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc, kv := newInteractor(t, &fakeAuthenticator{})

	out, err := uc.Login(ctx, authdto.LoginInput{Token: "tok-1", User: map[string]any{"name": "Ada", "plan": "pro"}})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if out.UserName != "Ada" || out.Token != "tok-1" {
		t.Fatalf("unexpected session %+v", out)
	}
	for _, key := range []string{domain.KeyToken, domain.KeyUser} {
		if _, ok, _ := kv.Get(ctx, key); !ok {
			t.Fatalf("%s should be persisted", key)
		}
	}
	token, err := uc.Token(ctx)
	if err != nil || token != "tok-1" {
		t.Fatalf("expected persisted token, got %q err=%v", token, err)
	}

	if err := uc.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	for _, key := range []string{domain.KeyToken, domain.KeyUser} {
		if _, ok, _ := kv.Get(ctx, key); ok {
			t.Fatalf("%s should be cleared", key)
		}
	}
	if _, err := uc.Current(ctx); !errors.Is(err, apperrors.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated after logout, got %v", err)
	}
	if err := uc.Logout(ctx); err != nil {
		t.Fatalf("second logout should be a no-op: %v", err)
	}
	if token, _ := uc.Token(ctx); token != "" {
		t.Fatalf("token should be empty after logout, got %q", token)
	}
}

func TestLoginReplacesExistingSessionAndAcceptsAnyRecord(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc, _ := newInteractor(t, &fakeAuthenticator{})

	if _, err := uc.Login(ctx, authdto.LoginInput{Token: "first", User: map[string]any{"name": "Ada"}}); err != nil {
		t.Fatalf("first login: %v", err)
	}
	if _, err := uc.Login(ctx, authdto.LoginInput{Token: "second", User: map[string]any{"id": 7.0}}); err != nil {
		t.Fatalf("second login: %v", err)
	}
	current, err := uc.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if current.Token != "second" || current.UserName != "unknown" || current.User["id"] != 7.0 {
		t.Fatalf("expected the second session to win, got %+v", current)
	}
	if _, err := uc.Login(ctx, authdto.LoginInput{Token: " "}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("empty token should be rejected, got %v", err)
	}
}

func TestRestore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("nothing persisted", func(t *testing.T) {
		uc, _ := newInteractor(t, &fakeAuthenticator{})
		out, err := uc.Restore(ctx)
		if err != nil || out.Authenticated || out.Discarded {
			t.Fatalf("expected unauthenticated restore, got %+v err=%v", out, err)
		}
	})

	t.Run("token without user", func(t *testing.T) {
		uc, kv := newInteractor(t, &fakeAuthenticator{})
		if err := kv.Set(ctx, domain.KeyToken, "tok"); err != nil {
			t.Fatalf("seed: %v", err)
		}
		out, err := uc.Restore(ctx)
		if err != nil || out.Authenticated {
			t.Fatalf("token alone must not authenticate, got %+v err=%v", out, err)
		}
	})

	t.Run("valid session", func(t *testing.T) {
		uc, kv := newInteractor(t, &fakeAuthenticator{})
		if err := kv.SetMany(ctx, map[string]string{domain.KeyToken: "tok", domain.KeyUser: `{"name":"Grace"}`}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		out, err := uc.Restore(ctx)
		if err != nil || !out.Authenticated || out.Session.UserName != "Grace" {
			t.Fatalf("expected restored session, got %+v err=%v", out, err)
		}
	})

	for name, raw := range map[string]string{"garbage": "{not json", "null": "null", "array": "[1,2]"} {
		raw := raw
		t.Run("malformed "+name, func(t *testing.T) {
			uc, kv := newInteractor(t, &fakeAuthenticator{})
			if err := kv.SetMany(ctx, map[string]string{domain.KeyToken: "tok", domain.KeyUser: raw}); err != nil {
				t.Fatalf("seed: %v", err)
			}
			out, err := uc.Restore(ctx)
			if err != nil {
				t.Fatalf("restore must not propagate parse errors: %v", err)
			}
			if out.Authenticated || !out.Discarded {
				t.Fatalf("expected fail-closed restore, got %+v", out)
			}
			if _, ok, _ := kv.Get(ctx, domain.KeyToken); ok {
				t.Fatalf("malformed session should be cleared")
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	remote := &fakeAuthenticator{token: "srv-token", user: domain.Record{"name": "Linus", "email": "l@example.com"}}
	uc, _ := newInteractor(t, remote)
	if _, err := uc.Authenticate(ctx, authdto.CredentialsInput{Email: "", Password: "x"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("missing email should be invalid input, got %v", err)
	}
	if remote.calls != 0 {
		t.Fatalf("remote must not be called for invalid input")
	}
	out, err := uc.Authenticate(ctx, authdto.CredentialsInput{Email: "l@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if out.UserName != "Linus" || out.Token != "srv-token" {
		t.Fatalf("unexpected session %+v", out)
	}

	failing := &fakeAuthenticator{err: apperrors.ErrUnauthenticated}
	uc2, kv2 := newInteractor(t, failing)
	if _, err := uc2.Authenticate(ctx, authdto.CredentialsInput{Email: "a@b.c", Password: "bad"}); !errors.Is(err, apperrors.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
	if _, ok, _ := kv2.Get(ctx, domain.KeyToken); ok {
		t.Fatalf("failed login must not persist anything")
	}
}

package out

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

type stubGetter struct {
	body string
	err  error
	path string
}

func (s *stubGetter) GetJSON(_ context.Context, path string, out any) error {
	s.path = path
	if s.err != nil {
		return s.err
	}
	return json.Unmarshal([]byte(s.body), out)
}

func TestListAcceptsNumericAndStringIDs(t *testing.T) {
	t.Parallel()
	stub := &stubGetter{body: `[
		{"id": 7, "name": "Ada", "email": "ada@example.com", "role": "admin", "status": "active", "lastActive": "2026-03-01"},
		{"id": "u-8", "name": "Grace", "status": "inactive"},
		{"id": null, "name": "Nobody"}
	]`}
	users, err := NewHTTPDirectory(stub).List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if stub.path != UsersPath {
		t.Fatalf("path = %q, want %q", stub.path, UsersPath)
	}
	if len(users) != 3 || users[0].ID != "7" || users[1].ID != "u-8" || users[2].ID != "" {
		t.Fatalf("unexpected users %+v", users)
	}
	if !users[0].Active() || users[1].Active() {
		t.Fatal("status mapping is wrong")
	}
}

func TestListRejectsNonArrayAndWrapsErrors(t *testing.T) {
	t.Parallel()
	if _, err := NewHTTPDirectory(&stubGetter{body: `{"id": true}`}).List(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
	boom := errors.New("boom")
	if _, err := NewHTTPDirectory(&stubGetter{err: boom}).List(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
}

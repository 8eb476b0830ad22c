package out

import (
	"context"
	"fmt"
	"strings"

	"statdeck/internal/modules/auth/domain"
	authout "statdeck/internal/modules/auth/port/out"
	apperrors "statdeck/internal/platform/errors"
)

const LoginPath = "/api/auth/login"

type jsonPoster interface {
	PostJSON(ctx context.Context, path string, in, out any) error
}

type HTTPAuthenticator struct {
	client jsonPoster
}

func NewHTTPAuthenticator(client jsonPoster) authout.Authenticator {
	return &HTTPAuthenticator{client: client}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string         `json:"token"`
	User  map[string]any `json:"user"`
}

func (a *HTTPAuthenticator) Authenticate(ctx context.Context, email, password string) (string, domain.Record, error) {
	var resp loginResponse
	if err := a.client.PostJSON(ctx, LoginPath, loginRequest{Email: email, Password: password}, &resp); err != nil {
		return "", nil, fmt.Errorf("login: %w", err)
	}
	if strings.TrimSpace(resp.Token) == "" {
		return "", nil, fmt.Errorf("login: %w: response carried no token", apperrors.ErrUnauthenticated)
	}
	return resp.Token, domain.Record(resp.User), nil
}

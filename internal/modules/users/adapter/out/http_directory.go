package out

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"statdeck/internal/modules/users/domain"
	usersout "statdeck/internal/modules/users/port/out"
)

const UsersPath = "/api/users"

type jsonGetter interface {
	GetJSON(ctx context.Context, path string, out any) error
}

type HTTPDirectory struct {
	client jsonGetter
}

func NewHTTPDirectory(client jsonGetter) usersout.Directory {
	return &HTTPDirectory{client: client}
}

// looseString accepts JSON strings and numbers; ids come back as either.
type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*s = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = looseString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", raw)
	}
	*s = looseString(n.String())
	return nil
}

type userRecord struct {
	ID         looseString `json:"id"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Role       string      `json:"role"`
	Status     string      `json:"status"`
	LastActive string      `json:"lastActive"`
}

func (d *HTTPDirectory) List(ctx context.Context) ([]domain.User, error) {
	var records []userRecord
	if err := d.client.GetJSON(ctx, UsersPath, &records); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	users := make([]domain.User, 0, len(records))
	for _, r := range records {
		users = append(users, domain.User{
			ID:         string(r.ID),
			Name:       r.Name,
			Email:      r.Email,
			Role:       r.Role,
			Status:     r.Status,
			LastActive: r.LastActive,
		})
	}
	return users, nil
}

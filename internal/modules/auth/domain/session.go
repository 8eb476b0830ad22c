package domain

import "strings"

// Persisted storage keys. Both are written at login and cleared at logout.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// Record is the user record exactly as the API returned it. Its shape is not
// validated.
type Record map[string]any

type Session struct {
	UserName string
	Token    string
	User     Record
}

var nameFields = []string{"name", "email", "username"}

// DisplayName picks the first non-empty string among name, email and
// username.
func DisplayName(r Record) string {
	for _, field := range nameFields {
		if v, ok := r[field].(string); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return "unknown"
}

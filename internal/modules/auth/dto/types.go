package dto

type LoginInput struct {
	User  map[string]any
	Token string
}

type CredentialsInput struct {
	Email    string
	Password string
}

type SessionOutput struct {
	UserName string
	Token    string
	User     map[string]any
}

// RestoreOutput is the result of hydrating the session at startup.
// Discarded is set when persisted data existed but could not be parsed.
type RestoreOutput struct {
	Session       SessionOutput
	Authenticated bool
	Discarded     bool
}

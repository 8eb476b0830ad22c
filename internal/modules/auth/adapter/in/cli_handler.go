package in

import (
	"context"

	authdto "statdeck/internal/modules/auth/dto"
	authin "statdeck/internal/modules/auth/port/in"
)

type CLIHandler struct {
	usecase authin.Usecase
}

func NewCLIHandler(usecase authin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Login(ctx context.Context, email, password string) (authdto.SessionOutput, error) {
	return h.usecase.Authenticate(ctx, authdto.CredentialsInput{Email: email, Password: password})
}

// LoginWithToken adopts an existing token and user record as-is.
func (h CLIHandler) LoginWithToken(ctx context.Context, token string, user map[string]any) (authdto.SessionOutput, error) {
	return h.usecase.Login(ctx, authdto.LoginInput{Token: token, User: user})
}

func (h CLIHandler) Logout(ctx context.Context) error {
	return h.usecase.Logout(ctx)
}

func (h CLIHandler) WhoAmI(ctx context.Context) (authdto.SessionOutput, error) {
	return h.usecase.Current(ctx)
}

func (h CLIHandler) Restore(ctx context.Context) (authdto.RestoreOutput, error) {
	return h.usecase.Restore(ctx)
}

// Token satisfies httpclient.TokenSource.
func (h CLIHandler) Token(ctx context.Context) (string, error) {
	return h.usecase.Token(ctx)
}

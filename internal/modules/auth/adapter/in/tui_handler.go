package in

import (
	"context"

	authdto "statdeck/internal/modules/auth/dto"
	authin "statdeck/internal/modules/auth/port/in"
)

// TUIHandler is the slice of the auth usecase the shell drives.
type TUIHandler struct {
	usecase authin.Usecase
}

func NewTUIHandler(usecase authin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Authenticate(ctx context.Context, input authdto.CredentialsInput) (authdto.SessionOutput, error) {
	return h.usecase.Authenticate(ctx, input)
}

func (h TUIHandler) Logout(ctx context.Context) error {
	return h.usecase.Logout(ctx)
}

func (h TUIHandler) Restore(ctx context.Context) (authdto.RestoreOutput, error) {
	return h.usecase.Restore(ctx)
}

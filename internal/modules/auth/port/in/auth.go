package in

import (
	"context"

	"statdeck/internal/modules/auth/dto"
)

type Usecase interface {
	Login(ctx context.Context, input dto.LoginInput) (dto.SessionOutput, error)
	Authenticate(ctx context.Context, input dto.CredentialsInput) (dto.SessionOutput, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (dto.SessionOutput, error)
	Restore(ctx context.Context) (dto.RestoreOutput, error)
	Token(ctx context.Context) (string, error)
}

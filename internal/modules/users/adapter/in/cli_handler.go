package in

import (
	"context"

	"statdeck/internal/modules/users/dto"
	usersin "statdeck/internal/modules/users/port/in"
)

type CLIHandler struct {
	usecase usersin.Usecase
}

func NewCLIHandler(usecase usersin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListUsers(ctx context.Context) (dto.ListOutput, error) {
	return h.usecase.List(ctx)
}

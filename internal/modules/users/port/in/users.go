package in

import (
	"context"

	"statdeck/internal/modules/users/dto"
)

type Usecase interface {
	List(ctx context.Context) (dto.ListOutput, error)
}

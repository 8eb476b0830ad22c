package out

import (
	"context"

	"statdeck/internal/modules/users/domain"
)

type Directory interface {
	List(ctx context.Context) ([]domain.User, error)
}

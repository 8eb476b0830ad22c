package usecase

import (
	"context"

	"statdeck/internal/modules/users/dto"
	usersin "statdeck/internal/modules/users/port/in"
	usersout "statdeck/internal/modules/users/port/out"
	"statdeck/internal/modules/users/service"
)

type Interactor struct {
	svc       *service.UsersService
	directory usersout.Directory
}

func NewInteractor(svc *service.UsersService, directory usersout.Directory) usersin.Usecase {
	return &Interactor{svc: svc, directory: directory}
}

func (i *Interactor) List(ctx context.Context) (dto.ListOutput, error) {
	users, err := i.directory.List(ctx)
	if err != nil {
		return dto.ListOutput{}, err
	}
	return i.svc.Summarize(users), nil
}

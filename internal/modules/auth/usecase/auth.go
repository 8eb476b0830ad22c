package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"statdeck/internal/modules/auth/domain"
	authdto "statdeck/internal/modules/auth/dto"
	authin "statdeck/internal/modules/auth/port/in"
	authout "statdeck/internal/modules/auth/port/out"
	"statdeck/internal/modules/auth/service"
	apperrors "statdeck/internal/platform/errors"
)

type Interactor struct {
	svc    *service.SessionService
	store  authout.SessionStore
	remote authout.Authenticator
	logger *zap.Logger
}

func NewInteractor(svc *service.SessionService, store authout.SessionStore, remote authout.Authenticator, logger *zap.Logger) authin.Usecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interactor{svc: svc, store: store, remote: remote, logger: logger.Named("auth")}
}

// Login stores the session, replacing any previous one.
func (i *Interactor) Login(ctx context.Context, input authdto.LoginInput) (authdto.SessionOutput, error) {
	session, err := i.svc.Open(input.Token, domain.Record(input.User))
	if err != nil {
		return authdto.SessionOutput{}, err
	}
	if err := i.store.Save(ctx, session); err != nil {
		return authdto.SessionOutput{}, err
	}
	i.logger.Info("logged in", zap.String("user", session.UserName))
	return toOutput(session), nil
}

func (i *Interactor) Authenticate(ctx context.Context, input authdto.CredentialsInput) (authdto.SessionOutput, error) {
	if err := i.svc.ValidateCredentials(input.Email, input.Password); err != nil {
		return authdto.SessionOutput{}, err
	}
	if i.remote == nil {
		return authdto.SessionOutput{}, fmt.Errorf("authenticator is not configured")
	}
	token, user, err := i.remote.Authenticate(ctx, input.Email, input.Password)
	if err != nil {
		i.logger.Warn("authentication failed", zap.String("email", input.Email), zap.Error(err))
		return authdto.SessionOutput{}, err
	}
	return i.Login(ctx, authdto.LoginInput{User: user, Token: token})
}

// Logout clears both persisted keys. Calling it without a session is fine.
func (i *Interactor) Logout(ctx context.Context) error {
	if err := i.store.Clear(ctx); err != nil {
		return err
	}
	i.logger.Info("logged out")
	return nil
}

func (i *Interactor) Current(ctx context.Context) (authdto.SessionOutput, error) {
	session, err := i.store.Load(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrMalformedSession) {
			return authdto.SessionOutput{}, apperrors.ErrUnauthenticated
		}
		return authdto.SessionOutput{}, err
	}
	return toOutput(session), nil
}

// Restore hydrates the session at startup. Unparseable persisted data fails
// closed: the keys are cleared and the caller starts unauthenticated.
func (i *Interactor) Restore(ctx context.Context) (authdto.RestoreOutput, error) {
	session, err := i.store.Load(ctx)
	switch {
	case err == nil:
		return authdto.RestoreOutput{Session: toOutput(session), Authenticated: true}, nil
	case errors.Is(err, apperrors.ErrUnauthenticated):
		return authdto.RestoreOutput{}, nil
	case errors.Is(err, apperrors.ErrMalformedSession):
		i.logger.Warn("discarding persisted session", zap.Error(err))
		if clearErr := i.store.Clear(ctx); clearErr != nil {
			i.logger.Error("clear malformed session", zap.Error(clearErr))
		}
		return authdto.RestoreOutput{Discarded: true}, nil
	default:
		return authdto.RestoreOutput{}, err
	}
}

func (i *Interactor) Token(ctx context.Context) (string, error) {
	return i.store.Token(ctx)
}

func toOutput(s domain.Session) authdto.SessionOutput {
	return authdto.SessionOutput{UserName: s.UserName, Token: s.Token, User: s.User}
}

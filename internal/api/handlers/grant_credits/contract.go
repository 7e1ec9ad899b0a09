package grant_credits

import (
	"context"

	"github.com/m04kA/SMC-VolleyballService/internal/session"
	grantCredits "github.com/m04kA/SMC-VolleyballService/internal/usecase/grant_credits"
)

type GrantCreditsUseCase interface {
	Execute(ctx context.Context, sess session.Session, req *grantCredits.Request) (*grantCredits.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

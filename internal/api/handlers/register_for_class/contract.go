package register_for_class

import (
	"context"

	"github.com/m04kA/SMC-VolleyballService/internal/session"
	registerForClass "github.com/m04kA/SMC-VolleyballService/internal/usecase/register_for_class"
)

type RegisterForClassUseCase interface {
	Execute(ctx context.Context, sess session.Session, req *registerForClass.Request) (*registerForClass.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

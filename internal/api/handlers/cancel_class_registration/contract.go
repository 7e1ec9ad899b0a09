package cancel_class_registration

import (
	"context"

	"github.com/m04kA/SMC-VolleyballService/internal/session"
	cancelRegistration "github.com/m04kA/SMC-VolleyballService/internal/usecase/cancel_class_registration"
)

type CancelRegistrationUseCase interface {
	Execute(ctx context.Context, sess session.Session, req *cancelRegistration.Request) (*cancelRegistration.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package cancel_lesson

import (
	"context"

	"github.com/m04kA/SMC-VolleyballService/internal/session"
	cancelLesson "github.com/m04kA/SMC-VolleyballService/internal/usecase/cancel_lesson"
)

type CancelLessonUseCase interface {
	Execute(ctx context.Context, sess session.Session, req *cancelLesson.Request) (*cancelLesson.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

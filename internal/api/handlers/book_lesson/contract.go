package book_lesson

import (
	"context"

	bookLesson "github.com/m04kA/SMC-VolleyballService/internal/usecase/book_lesson"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
)

type BookLessonUseCase interface {
	Execute(ctx context.Context, sess session.Session, req *bookLesson.Request) (*bookLesson.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

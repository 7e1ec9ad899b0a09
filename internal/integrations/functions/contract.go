package functions

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics учет вызовов процедур
type Metrics interface {
	ObserveRemoteCall(procedure, outcome string, d time.Duration)
}

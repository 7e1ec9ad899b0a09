package events

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics учет отправленных событий
type Metrics interface {
	IncEventPublished(eventType string)
}

// Config параметры подключения к Kafka
type Config struct {
	Brokers []string
	Topic   string
	Version string
	// FlushTimeout сколько ждать отправки буфера при закрытии
	FlushTimeout time.Duration
}

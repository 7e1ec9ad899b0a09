// Package action guards one-shot user actions against duplicate submission.
//
// Each (user, action) pair moves idle -> inFlight -> {succeeded, failed}.
// A new attempt is allowed from any state except inFlight; nothing is retried.
// Only in-flight actions are stored: a finished action is idle again and its
// outcome is reported by Outcome of the returned error.
package action

import (
	"errors"
	"sync"
)

// ErrInFlight возвращается при повторном запуске действия, которое еще выполняется
var ErrInFlight = errors.New("action: already in progress")

// State состояние действия
type State string

const (
	StateIdle      State = "idle"
	StateInFlight  State = "in_flight"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
)

// Key идентифицирует действие конкретного пользователя
type Key struct {
	UserID string
	Action string
}

// Gate хранит выполняющиеся действия
type Gate struct {
	mu       sync.Mutex
	inFlight map[Key]struct{}
}

func NewGate() *Gate {
	return &Gate{inFlight: make(map[Key]struct{})}
}

// Begin переводит действие в inFlight.
// Возвращает функцию завершения, которую нужно вызвать ровно один раз
// с ошибкой результата (nil означает успех).
func (g *Gate) Begin(key Key) (func(err error), error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.inFlight[key]; ok {
		return nil, ErrInFlight
	}
	g.inFlight[key] = struct{}{}

	var once sync.Once
	return func(error) {
		once.Do(func() {
			g.finish(key)
		})
	}, nil
}

// Run выполняет fn под защитой гейта
func (g *Gate) Run(key Key, fn func() error) error {
	done, err := g.Begin(key)
	if err != nil {
		return err
	}

	err = fn()
	done(err)
	return err
}

// State возвращает текущее состояние действия: inFlight или idle
func (g *Gate) State(key Key) State {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.inFlight[key]; ok {
		return StateInFlight
	}
	return StateIdle
}

// Len количество выполняющихся действий
func (g *Gate) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.inFlight)
}

func (g *Gate) finish(key Key) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.inFlight, key)
}

// Outcome метка результата действия для метрик
func Outcome(err error) string {
	switch {
	case err == nil:
		return string(StateSucceeded)
	case errors.Is(err, ErrInFlight):
		return "rejected"
	default:
		return string(StateFailed)
	}
}

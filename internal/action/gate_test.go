package action

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate_Transitions(t *testing.T) {
	g := NewGate()
	key := Key{UserID: "u-1", Action: "book_lesson"}

	assert.Equal(t, StateIdle, g.State(key))

	done, err := g.Begin(key)
	require.NoError(t, err)
	assert.Equal(t, StateInFlight, g.State(key))

	_, err = g.Begin(key)
	assert.ErrorIs(t, err, ErrInFlight, "re-entry from inFlight is refused")

	// другой пользователь не блокируется
	otherDone, err := g.Begin(Key{UserID: "u-2", Action: "book_lesson"})
	require.NoError(t, err)
	otherDone(nil)

	done(errors.New("boom"))
	assert.Equal(t, StateIdle, g.State(key))

	// done идемпотентна
	done(nil)
	assert.Equal(t, StateIdle, g.State(key))

	err = g.Run(key, func() error { return nil })
	require.NoError(t, err)
	assert.Equal(t, StateIdle, g.State(key))
	assert.Zero(t, g.Len())
}

func TestGate_ForgetsFinishedActions(t *testing.T) {
	g := NewGate()

	for i := 0; i < 100; i++ {
		key := Key{UserID: fmt.Sprintf("u-%d", i), Action: "book_lesson"}
		require.NoError(t, g.Run(key, func() error { return nil }))
		assert.Error(t, g.Run(key, func() error { return errors.New("declined") }))
	}
	assert.Zero(t, g.Len())

	// повторная отправка после завершения снова разрешена
	done, err := g.Begin(Key{UserID: "u-1", Action: "book_lesson"})
	require.NoError(t, err)
	assert.Equal(t, 1, g.Len())
	done(nil)
	assert.Zero(t, g.Len())
}

func TestGate_RunReturnsActionError(t *testing.T) {
	g := NewGate()
	want := errors.New("server said no")

	err := g.Run(Key{UserID: "u", Action: "a"}, func() error { return want })
	assert.ErrorIs(t, err, want)
	assert.Equal(t, "failed", Outcome(err))
	assert.Equal(t, StateIdle, g.State(Key{UserID: "u", Action: "a"}))
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "succeeded", Outcome(nil))
	assert.Equal(t, "failed", Outcome(errors.New("x")))
	assert.Equal(t, "rejected", Outcome(ErrInFlight))
}

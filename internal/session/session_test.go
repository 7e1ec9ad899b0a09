package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession(t *testing.T) {
	assert.ErrorIs(t, Session{}.Require(), ErrNotAuthenticated)
	assert.NoError(t, Session{UserID: "u-1"}.Require())

	ctx := WithSession(context.Background(), Session{UserID: "u-1", IDToken: "tok"})
	assert.Equal(t, "u-1", FromContext(ctx).UserID)
	assert.False(t, FromContext(context.Background()).IsAuthenticated())
}

package ptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeref(t *testing.T) {
	assert.Equal(t, 7, Deref(Ptr(7), 1))
	assert.Equal(t, "fallback", Deref[string](nil, "fallback"))
}

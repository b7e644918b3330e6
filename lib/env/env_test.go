package env_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/seqdiag/lib/env"
)

func TestTimeout(t *testing.T) {
	t.Setenv("SEQDIAG_TIMEOUT", "")
	_, ok := env.Timeout()
	assert.False(t, ok)

	t.Setenv("SEQDIAG_TIMEOUT", "nope")
	_, ok = env.Timeout()
	assert.False(t, ok)

	t.Setenv("SEQDIAG_TIMEOUT", "12")
	s, ok := env.Timeout()
	assert.True(t, ok)
	assert.Equal(t, 12, s)
}

func TestDebug(t *testing.T) {
	t.Setenv("DEBUG", "1")
	assert.True(t, env.Debug())
	t.Setenv("DEBUG", "")
	assert.False(t, env.Debug())
}

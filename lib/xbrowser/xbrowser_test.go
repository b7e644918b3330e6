package xbrowser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/xos"
)

func TestDisabled(t *testing.T) {
	t.Parallel()

	assert.True(t, Disabled(xos.NewEnv([]string{"BROWSER=0"})))
	assert.True(t, Disabled(xos.NewEnv([]string{"BROWSER=false"})))
	assert.False(t, Disabled(xos.NewEnv([]string{"BROWSER=firefox"})))
	assert.False(t, Disabled(xos.NewEnv(nil)))

	assert.NoError(t, OpenURL(context.Background(), xos.NewEnv([]string{"BROWSER=0"}), "http://localhost"))
}

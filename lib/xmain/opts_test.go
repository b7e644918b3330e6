package xmain

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"oss.terrastruct.com/cmdlog"
	"oss.terrastruct.com/xos"
)

func newTestOpts(environ []string, args ...string) *Opts {
	env := xos.NewEnv(environ)
	return NewOpts(env, cmdlog.Log(env, io.Discard), args)
}

func TestOptsEnvFallback(t *testing.T) {
	t.Parallel()

	o := newTestOpts([]string{"SEQDIAG_PAD=42.5", "SEQDIAG_WATCH=true", "SEQDIAG_FG=red"})
	pad, err := o.Float64("SEQDIAG_PAD", "pad", "", 100, "")
	require.NoError(t, err)
	watch, err := o.Bool("SEQDIAG_WATCH", "watch", "w", false, "")
	require.NoError(t, err)
	fg := o.String("SEQDIAG_FG", "fg", "", "#000", "")
	n, err := o.Int64("SEQDIAG_N", "n", "", 7, "")
	require.NoError(t, err)

	require.NoError(t, o.Flags.Parse(o.Args))
	assert.Equal(t, 42.5, *pad)
	assert.True(t, *watch)
	assert.Equal(t, "red", *fg)
	assert.Equal(t, int64(7), *n)

	help := o.Help()
	assert.Contains(t, help, "--pad")
	assert.Contains(t, help, "- $SEQDIAG_PAD (--pad)")
	assert.Contains(t, help, "- $SEQDIAG_N (--n)")
	assert.True(t, strings.HasSuffix(help, "- $SEQDIAG_N (--n)"), help)
}

func TestOptsFlagsOverrideEnv(t *testing.T) {
	t.Parallel()

	o := newTestOpts([]string{"SEQDIAG_WATCH=1"}, "--watch=false", "--pad", "3", "in.yaml")
	watch, err := o.Bool("SEQDIAG_WATCH", "watch", "w", false, "")
	require.NoError(t, err)
	pad, err := o.Float64("SEQDIAG_PAD", "pad", "", 100, "")
	require.NoError(t, err)

	require.NoError(t, o.Flags.Parse(o.Args))
	assert.False(t, *watch)
	assert.Equal(t, 3., *pad)
	assert.Equal(t, []string{"in.yaml"}, o.Flags.Args())
}

func TestOptsInvalidEnv(t *testing.T) {
	t.Parallel()

	o := newTestOpts([]string{"SEQDIAG_WATCH=maybe", "SEQDIAG_PAD=wide", "SEQDIAG_N=x"})
	_, err := o.Bool("SEQDIAG_WATCH", "watch", "", false, "")
	assert.EqualError(t, err, `invalid environment variable SEQDIAG_WATCH. Expected bool. Found "maybe".`)
	_, err = o.Float64("SEQDIAG_PAD", "pad", "", 0, "")
	assert.Error(t, err)
	_, err = o.Int64("SEQDIAG_N", "n", "", 0, "")
	assert.Error(t, err)
}

func TestOptsWithoutEnv(t *testing.T) {
	t.Parallel()

	o := newTestOpts([]string{"VERSION=1"}, "-v")
	v, err := o.Bool("", "version", "v", false, "")
	require.NoError(t, err)
	require.NoError(t, o.Flags.Parse(o.Args))
	assert.True(t, *v)
	assert.NotContains(t, o.Help(), "environment variables")
}

func TestExitErrors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "exiting with code 3: boom 1", ExitErrorf(3, "boom %d", 1).Error())
	assert.Equal(t, "bad usage: no input", UsageErrorf("no input").Error())
}

package seqgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oss.terrastruct.com/seqdiag/seqgraph"
)

func TestNewActivation(t *testing.T) {
	t.Parallel()

	a := seqgraph.NewEntity(seqgraph.Component, "a", "A")
	b := seqgraph.NewEntity(seqgraph.Actor, "b", "B")

	testCases := []struct {
		name  string
		msg   seqgraph.Message
		reply *seqgraph.ReplyMessage
		ok    bool
	}{
		{
			name: "no_reply",
			msg:  &seqgraph.SyncMessage{From: a, To: b, Text: "call"},
			ok:   true,
		},
		{
			name:  "matching_reply",
			msg:   &seqgraph.SyncMessage{From: a, To: b, Text: "call"},
			reply: &seqgraph.ReplyMessage{From: b, To: a, Text: "ret"},
			ok:    true,
		},
		{
			name:  "reply_same_direction",
			msg:   &seqgraph.SyncMessage{From: a, To: b},
			reply: &seqgraph.ReplyMessage{From: a, To: b},
		},
		{
			name:  "reply_to_found",
			msg:   &seqgraph.FoundMessage{To: b},
			reply: &seqgraph.ReplyMessage{From: b, To: a},
		},
		{
			name:  "reply_to_lost",
			msg:   &seqgraph.LostMessage{From: a},
			reply: &seqgraph.ReplyMessage{From: a, To: a},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			act, err := seqgraph.NewActivation(tc.msg, tc.reply, nil)
			if !tc.ok {
				require.Error(t, err)
				assert.True(t, errors.Is(err, seqgraph.ErrInvalidReply))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.msg, act.Message)
			assert.Equal(t, tc.reply, act.Reply)
		})
	}
}

func TestNewMessage(t *testing.T) {
	t.Parallel()

	a := seqgraph.NewEntity(seqgraph.Component, "a", "A")
	b := seqgraph.NewEntity(seqgraph.Component, "b", "B")

	m, err := seqgraph.NewMessage(seqgraph.Found, nil, b, "in")
	require.NoError(t, err)
	assert.Nil(t, m.Source())
	assert.Equal(t, b, m.Target())
	assert.Equal(t, "in", m.Label())

	m, err = seqgraph.NewMessage(seqgraph.Lost, a, nil, "out")
	require.NoError(t, err)
	assert.Equal(t, seqgraph.Lost, m.Style())
	assert.Nil(t, m.Target())

	_, err = seqgraph.NewMessage(seqgraph.Found, a, b, "")
	assert.Error(t, err)
	_, err = seqgraph.NewMessage(seqgraph.Sync, a, nil, "")
	assert.Error(t, err)

	m, err = seqgraph.NewMessage(seqgraph.Create, a, a, "")
	require.NoError(t, err)
	assert.True(t, seqgraph.IsSelf(m))
	_, ok := m.(*seqgraph.CreateMessage)
	assert.True(t, ok)
}

func TestParseMessageStyle(t *testing.T) {
	t.Parallel()

	for _, s := range []seqgraph.MessageStyle{seqgraph.Sync, seqgraph.Async, seqgraph.Reply, seqgraph.Lost, seqgraph.Found, seqgraph.Create, seqgraph.Destroy} {
		parsed, err := seqgraph.ParseMessageStyle(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
	_, err := seqgraph.ParseMessageStyle("bogus")
	assert.Error(t, err)

	k, err := seqgraph.ParseEntityKind("")
	require.NoError(t, err)
	assert.Equal(t, seqgraph.Component, k)
	k, err = seqgraph.ParseEntityKind("Actor")
	require.NoError(t, err)
	assert.Equal(t, seqgraph.Actor, k)
}

package seqgraph

import (
	"fmt"
	"strings"
)

type MessageStyle int

const (
	Sync MessageStyle = iota
	Async
	Reply
	Lost
	Found
	Create
	Destroy
)

var messageStyleNames = []string{
	Sync:    "sync",
	Async:   "async",
	Reply:   "reply",
	Lost:    "lost",
	Found:   "found",
	Create:  "create",
	Destroy: "destroy",
}

func (s MessageStyle) String() string {
	if s < 0 || int(s) >= len(messageStyleNames) {
		return fmt.Sprintf("MessageStyle(%d)", int(s))
	}
	return messageStyleNames[s]
}

func ParseMessageStyle(s string) (MessageStyle, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range messageStyleNames {
		if name == s {
			return MessageStyle(i), nil
		}
	}
	return 0, fmt.Errorf("unknown message style %q", s)
}

// Message is implemented by one struct per MessageStyle. Each struct only carries the
// endpoints meaningful for its style: Lost messages have no target, Found messages no source.
type Message interface {
	Style() MessageStyle
	Label() string
	// Source returns nil for Found messages.
	Source() *Entity
	// Target returns nil for Lost messages.
	Target() *Entity

	isMessage()
}

type SyncMessage struct {
	From, To *Entity
	Text     string
}

type AsyncMessage struct {
	From, To *Entity
	Text     string
}

type ReplyMessage struct {
	From, To *Entity
	Text     string
}

type CreateMessage struct {
	From, To *Entity
	Text     string
}

type DestroyMessage struct {
	From, To *Entity
	Text     string
}

// LostMessage goes from an entity out to nowhere.
type LostMessage struct {
	From *Entity
	Text string
}

// FoundMessage comes out of nowhere into an entity.
type FoundMessage struct {
	To   *Entity
	Text string
}

func (m *SyncMessage) Style() MessageStyle    { return Sync }
func (m *AsyncMessage) Style() MessageStyle   { return Async }
func (m *ReplyMessage) Style() MessageStyle   { return Reply }
func (m *CreateMessage) Style() MessageStyle  { return Create }
func (m *DestroyMessage) Style() MessageStyle { return Destroy }
func (m *LostMessage) Style() MessageStyle    { return Lost }
func (m *FoundMessage) Style() MessageStyle   { return Found }

func (m *SyncMessage) Label() string    { return m.Text }
func (m *AsyncMessage) Label() string   { return m.Text }
func (m *ReplyMessage) Label() string   { return m.Text }
func (m *CreateMessage) Label() string  { return m.Text }
func (m *DestroyMessage) Label() string { return m.Text }
func (m *LostMessage) Label() string    { return m.Text }
func (m *FoundMessage) Label() string   { return m.Text }

func (m *SyncMessage) Source() *Entity    { return m.From }
func (m *AsyncMessage) Source() *Entity   { return m.From }
func (m *ReplyMessage) Source() *Entity   { return m.From }
func (m *CreateMessage) Source() *Entity  { return m.From }
func (m *DestroyMessage) Source() *Entity { return m.From }
func (m *LostMessage) Source() *Entity    { return m.From }
func (m *FoundMessage) Source() *Entity   { return nil }

func (m *SyncMessage) Target() *Entity    { return m.To }
func (m *AsyncMessage) Target() *Entity   { return m.To }
func (m *ReplyMessage) Target() *Entity   { return m.To }
func (m *CreateMessage) Target() *Entity  { return m.To }
func (m *DestroyMessage) Target() *Entity { return m.To }
func (m *LostMessage) Target() *Entity    { return nil }
func (m *FoundMessage) Target() *Entity   { return m.To }

func (*SyncMessage) isMessage()    {}
func (*AsyncMessage) isMessage()   {}
func (*ReplyMessage) isMessage()   {}
func (*CreateMessage) isMessage()  {}
func (*DestroyMessage) isMessage() {}
func (*LostMessage) isMessage()    {}
func (*FoundMessage) isMessage()   {}

// NewMessage builds the variant for style. from must be nil for Found and to must be nil for
// Lost; every other style needs both.
func NewMessage(style MessageStyle, from, to *Entity, label string) (Message, error) {
	switch style {
	case Lost:
		if from == nil || to != nil {
			return nil, fmt.Errorf("%v message needs a source and no target", style)
		}
		return &LostMessage{From: from, Text: label}, nil
	case Found:
		if to == nil || from != nil {
			return nil, fmt.Errorf("%v message needs a target and no source", style)
		}
		return &FoundMessage{To: to, Text: label}, nil
	}
	if from == nil || to == nil {
		return nil, fmt.Errorf("%v message needs both a source and a target", style)
	}
	switch style {
	case Sync:
		return &SyncMessage{From: from, To: to, Text: label}, nil
	case Async:
		return &AsyncMessage{From: from, To: to, Text: label}, nil
	case Reply:
		return &ReplyMessage{From: from, To: to, Text: label}, nil
	case Create:
		return &CreateMessage{From: from, To: to, Text: label}, nil
	case Destroy:
		return &DestroyMessage{From: from, To: to, Text: label}, nil
	}
	return nil, fmt.Errorf("unknown message style %v", style)
}

// IsSelf reports whether m goes from an entity to itself.
func IsSelf(m Message) bool {
	return m.Source() != nil && SameEntity(m.Source(), m.Target())
}

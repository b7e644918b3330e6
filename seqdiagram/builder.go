package seqdiagram

import (
	"oss.terrastruct.com/seqdiag/seqgraph"
	"oss.terrastruct.com/seqdiag/seqwalk"
)

// Parts is a read-only snapshot of everything a diagram is made of.
// Messages are ordered by Index.
type Parts struct {
	Entities       []*EntityPart
	Messages       []*MessagePart
	ActivationBars []*ActivationBarPart
}

// Builder accumulates diagram parts. Message indices are assigned in append order.
type Builder struct {
	cfg   *Config
	parts Parts
	built bool
}

func NewBuilder(cfg *Config) *Builder {
	return &Builder{cfg: cfg}
}

func (b *Builder) AddEntity(e *seqgraph.Entity) *EntityPart {
	b.checkOpen()
	p := newEntityPart(b.cfg, e)
	b.parts.Entities = append(b.parts.Entities, p)
	return p
}

func (b *Builder) appendMessage(m seqgraph.Message, fromLevel, toLevel int, hidden bool) *MessagePart {
	b.checkOpen()
	p := newMessagePart(b.cfg, len(b.parts.Messages), m, fromLevel, toLevel, hidden)
	b.parts.Messages = append(b.parts.Messages, p)
	return p
}

// AppendMessage adds the triggering message of act.
func (b *Builder) AppendMessage(act *seqgraph.Activation, fromLevel, toLevel int) *MessagePart {
	return b.appendMessage(act.Message, fromLevel, toLevel, false)
}

// AppendReply adds the reply of act, with the levels swapped since it travels backwards.
// Without a real reply, a hidden placeholder is added when required is set and the message has
// a target. It returns nil when nothing was added.
func (b *Builder) AppendReply(act *seqgraph.Activation, fromLevel, toLevel int, required bool) *MessagePart {
	if act.Reply != nil {
		return b.appendMessage(act.Reply, toLevel, fromLevel, false)
	}
	if to := act.Message.Target(); to != nil && required {
		return b.appendMessage(&seqgraph.LostMessage{From: to}, toLevel, fromLevel, true)
	}
	return nil
}

func (b *Builder) AppendActivationBar(e *seqgraph.Entity, start, level int) *ActivationBarPart {
	b.checkOpen()
	p := newActivationBarPart(b.cfg, e.ID, start, level)
	b.parts.ActivationBars = append(b.parts.ActivationBars, p)
	return p
}

// Build returns the parts added so far. The builder cannot be used afterwards.
func (b *Builder) Build() Parts {
	b.checkOpen()
	b.built = true
	parts := b.parts
	b.parts = Parts{}
	return parts
}

func (b *Builder) checkOpen() {
	if b.built {
		panic("seqdiagram: builder used after Build")
	}
}

func shouldActivate(act *seqgraph.Activation) bool {
	switch act.Message.Style() {
	case seqgraph.Sync, seqgraph.Async, seqgraph.Found:
		return true
	default:
		return false
	}
}

// WalkActivation appends the messages, replies and activation bars of root and all of its
// descendants to b.
func (b *Builder) WalkActivation(root *seqgraph.Activation) {
	seqwalk.Walk(root, seqwalk.Strategy[*ActivationBarPart]{
		ShouldActivate: shouldActivate,
		Pre: func(act *seqgraph.Activation, fromLevel, toLevel int, active bool) *ActivationBarPart {
			msg := b.AppendMessage(act, fromLevel, toLevel)
			if to := act.Message.Target(); active && to != nil {
				return b.AppendActivationBar(to, msg.Index, toLevel)
			}
			return nil
		},
		Post: func(act *seqgraph.Activation, fromLevel, toLevel int, bar *ActivationBarPart) {
			reply := b.AppendReply(act, fromLevel, toLevel, bar != nil)
			if bar != nil && reply != nil {
				bar.SetEnd(reply.Index)
			}
		},
	})
}

// Package seqgraph holds the input model of a sequence diagram: the entities taking part in it
// and the tree of activations (messages with their replies and nested messages).
//
// Values in this package are immutable once constructed.
package seqgraph

import (
	"errors"
	"fmt"
	"strings"
)

type EntityKind int

const (
	Component EntityKind = iota
	Actor
)

func (k EntityKind) String() string {
	switch k {
	case Actor:
		return "actor"
	default:
		return "component"
	}
}

func ParseEntityKind(s string) (EntityKind, error) {
	switch strings.ToLower(s) {
	case "", "component":
		return Component, nil
	case "actor":
		return Actor, nil
	}
	return Component, fmt.Errorf("unknown entity kind %q", s)
}

// Entity is a participant of the sequence. IDs are unique within a Sequence.
type Entity struct {
	ID   string     `json:"id"`
	Name string     `json:"name"`
	Kind EntityKind `json:"kind"`
}

func NewEntity(kind EntityKind, id, name string) *Entity {
	return &Entity{
		ID:   id,
		Name: name,
		Kind: kind,
	}
}

// SameEntity reports whether a and b are both nil or both refer to the same id.
func SameEntity(a, b *Entity) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID == b.ID
}

// Activation is one node of the message tree.
type Activation struct {
	Message  Message
	Reply    *ReplyMessage
	Children []*Activation
}

var ErrInvalidReply = errors.New("invalid reply")

// NewActivation validates that reply, if any, goes back from the message target to the
// message source.
func NewActivation(msg Message, reply *ReplyMessage, children []*Activation) (*Activation, error) {
	if msg == nil {
		return nil, errors.New("activation requires a message")
	}
	if reply != nil {
		if !SameEntity(reply.From, msg.Target()) || !SameEntity(reply.To, msg.Source()) {
			return nil, fmt.Errorf("%w: source or target of reply does not match %v message", ErrInvalidReply, msg.Style())
		}
	}
	return &Activation{
		Message:  msg,
		Reply:    reply,
		Children: children,
	}, nil
}

// Sequence is the whole input: the entities and a forest of root activations.
type Sequence struct {
	Entities    []*Entity
	Activations []*Activation
}

func NewSequence(entities []*Entity, activations []*Activation) *Sequence {
	return &Sequence{
		Entities:    entities,
		Activations: activations,
	}
}

// Entity returns the entity with the given id.
func (s *Sequence) Entity(id string) (*Entity, bool) {
	for _, e := range s.Entities {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

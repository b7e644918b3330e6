// Package seqcompiler loads sequence documents.
//
// A document is YAML (or JSON) with a list of entities and a forest of activations:
//
//	entities:
//	  - {id: user, name: User, kind: actor}
//	  - {id: api, name: API}
//	activations:
//	  - message: {style: sync, from: user, to: api, label: request}
//	    reply: {label: response}
//	    children:
//	      - message: {style: sync, from: api, to: api, label: validate}
//
// The endpoints of a reply are implied by its message and may be left out.
package seqcompiler

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/seqdiag/seqgraph"
)

// Error is one problem found in a document.
type Error struct {
	Path    string `json:"path"`
	Line    int    `json:"line"`
	Message string `json:"message"`
}

func (e Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// CompileError lists every problem found in a document that parsed.
type CompileError struct {
	Errors []Error `json:"errs"`
}

func (ce *CompileError) Error() string {
	var sb strings.Builder
	for i, err := range ce.Errors {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

type compiler struct {
	path     string
	entities map[string]*seqgraph.Entity
	// created maps entity ids to the line of the message creating them.
	created map[string]int
	err     *CompileError
}

func (c *compiler) errorf(line int, msg string, v ...interface{}) {
	c.err.Errors = append(c.err.Errors, Error{
		Path:    c.path,
		Line:    line,
		Message: fmt.Sprintf(msg, v...),
	})
}

// Compile reads the document at path from r. An empty document is an empty sequence.
func Compile(path string, r io.Reader) (_ *seqgraph.Sequence, err error) {
	defer xdefer.Errorf(&err, "failed to compile %s", path)

	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err = dec.Decode(&doc)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	c := &compiler{
		path:     path,
		entities: make(map[string]*seqgraph.Entity),
		created:  make(map[string]int),
		err:      &CompileError{},
	}
	seq := c.compile(&doc)
	if len(c.err.Errors) > 0 {
		return nil, c.err
	}
	return seq, nil
}

func (c *compiler) compile(doc *document) *seqgraph.Sequence {
	var entities []*seqgraph.Entity
	for _, en := range doc.Entities {
		e := c.compileEntity(en)
		if e != nil {
			entities = append(entities, e)
		}
	}

	var activations []*seqgraph.Activation
	for i := range doc.Activations {
		act := c.compileActivation(&doc.Activations[i])
		if act != nil {
			activations = append(activations, act)
		}
	}
	return seqgraph.NewSequence(entities, activations)
}

func (c *compiler) compileEntity(en entityNode) *seqgraph.Entity {
	id := strings.TrimSpace(en.ID)
	if id == "" {
		c.errorf(en.line, "entity without id")
		return nil
	}
	if _, ok := c.entities[id]; ok {
		c.errorf(en.line, "duplicate entity %q", id)
		return nil
	}
	kind, err := seqgraph.ParseEntityKind(en.Kind)
	if err != nil {
		c.errorf(en.line, "entity %q: %v", id, err)
		return nil
	}
	name := en.Name
	if name == "" {
		name = id
	}
	e := seqgraph.NewEntity(kind, id, name)
	c.entities[id] = e
	return e
}

// entity resolves a reference. field names the referencing field in errors.
func (c *compiler) entity(line int, field, id string) *seqgraph.Entity {
	e, ok := c.entities[id]
	if !ok {
		c.errorf(line, "%s references undeclared entity %q", field, id)
		return nil
	}
	return e
}

func (c *compiler) compileActivation(an *activationNode) *seqgraph.Activation {
	if an.Message == nil {
		c.errorf(an.line, "activation without message")
		return nil
	}
	msg := c.compileMessage(an.Message)

	var children []*seqgraph.Activation
	for i := range an.Children {
		child := c.compileActivation(&an.Children[i])
		if child != nil {
			children = append(children, child)
		}
	}
	if msg == nil {
		return nil
	}

	reply := c.compileReply(msg, an.Reply)
	if an.Reply != nil && reply == nil {
		return nil
	}
	act, err := seqgraph.NewActivation(msg, reply, children)
	if err != nil {
		c.errorf(an.line, "%v", err)
		return nil
	}
	return act
}

// compileMessage defaults the style to sync.
func (c *compiler) compileMessage(mn *messageNode) seqgraph.Message {
	style := seqgraph.Sync
	var err error
	if mn.Style != "" {
		style, err = seqgraph.ParseMessageStyle(mn.Style)
	}
	if err != nil {
		c.errorf(mn.line, "%v", err)
		return nil
	}
	if style == seqgraph.Reply {
		c.errorf(mn.line, "reply messages are written as the reply of an activation")
		return nil
	}

	switch {
	case style == seqgraph.Lost && mn.To != "":
		c.errorf(mn.line, "lost message cannot have a target")
		return nil
	case style == seqgraph.Found && mn.From != "":
		c.errorf(mn.line, "found message cannot have a source")
		return nil
	case style != seqgraph.Found && mn.From == "":
		c.errorf(mn.line, "%s message without source", style)
		return nil
	case style != seqgraph.Lost && mn.To == "":
		c.errorf(mn.line, "%s message without target", style)
		return nil
	}

	var from, to *seqgraph.Entity
	ok := true
	if mn.From != "" {
		from = c.entity(mn.line, "from", mn.From)
		ok = ok && from != nil
	}
	if mn.To != "" {
		to = c.entity(mn.line, "to", mn.To)
		ok = ok && to != nil
	}
	if !ok {
		return nil
	}

	if style == seqgraph.Create {
		if line, ok := c.created[to.ID]; ok {
			c.errorf(mn.line, "entity %q is already created on line %d", to.ID, line)
			return nil
		}
		c.created[to.ID] = mn.line
	}

	m, err := seqgraph.NewMessage(style, from, to, mn.Label)
	if err != nil {
		c.errorf(mn.line, "%v", err)
		return nil
	}
	return m
}

func (c *compiler) compileReply(msg seqgraph.Message, rn *replyNode) *seqgraph.ReplyMessage {
	if rn == nil {
		return nil
	}
	if msg.Source() == nil || msg.Target() == nil {
		c.errorf(rn.line, "%s message cannot have a reply", msg.Style())
		return nil
	}

	from, to := msg.Target(), msg.Source()
	if rn.From != "" && rn.From != from.ID {
		c.errorf(rn.line, "reply must come from %q, the target of its message, not %q", from.ID, rn.From)
		return nil
	}
	if rn.To != "" && rn.To != to.ID {
		c.errorf(rn.line, "reply must go to %q, the source of its message, not %q", to.ID, rn.To)
		return nil
	}
	return &seqgraph.ReplyMessage{
		From: from,
		To:   to,
		Text: rn.Label,
	}
}

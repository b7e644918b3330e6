package seqcompiler

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"oss.terrastruct.com/seqdiag/lib/go2"
)

type document struct {
	Entities    []entityNode     `yaml:"entities"`
	Activations []activationNode `yaml:"activations"`
}

type entityNode struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`

	line int
}

type messageNode struct {
	Style string `yaml:"style"`
	From  string `yaml:"from"`
	To    string `yaml:"to"`
	Label string `yaml:"label"`

	line int
}

// replyNode may leave From and To out. They are implied by the triggering message.
type replyNode struct {
	From  string `yaml:"from"`
	To    string `yaml:"to"`
	Label string `yaml:"label"`

	line int
}

type activationNode struct {
	Message  *messageNode     `yaml:"message"`
	Reply    *replyNode       `yaml:"reply"`
	Children []activationNode `yaml:"children"`

	line int
}

// checkKeys rejects keys of the mapping n that are not in allowed. Node.Decode does not
// inherit KnownFields from the outer decoder.
func checkKeys(n *yaml.Node, allowed ...string) error {
	if n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := n.Content[i]
		if !go2.Contains(allowed, k.Value) {
			sorted := append([]string(nil), allowed...)
			sort.Strings(sorted)
			return fmt.Errorf("line %d: unknown field %q, expected one of %s", k.Line, k.Value, strings.Join(sorted, ", "))
		}
	}
	return nil
}

func (e *entityNode) UnmarshalYAML(n *yaml.Node) error {
	if err := checkKeys(n, "id", "name", "kind"); err != nil {
		return err
	}
	type plain entityNode
	if err := n.Decode((*plain)(e)); err != nil {
		return err
	}
	e.line = n.Line
	return nil
}

func (m *messageNode) UnmarshalYAML(n *yaml.Node) error {
	if err := checkKeys(n, "style", "from", "to", "label"); err != nil {
		return err
	}
	type plain messageNode
	if err := n.Decode((*plain)(m)); err != nil {
		return err
	}
	m.line = n.Line
	return nil
}

func (r *replyNode) UnmarshalYAML(n *yaml.Node) error {
	if err := checkKeys(n, "from", "to", "label"); err != nil {
		return err
	}
	type plain replyNode
	if err := n.Decode((*plain)(r)); err != nil {
		return err
	}
	r.line = n.Line
	return nil
}

func (a *activationNode) UnmarshalYAML(n *yaml.Node) error {
	if err := checkKeys(n, "message", "reply", "children"); err != nil {
		return err
	}
	type plain activationNode
	if err := n.Decode((*plain)(a)); err != nil {
		return err
	}
	a.line = n.Line
	return nil
}

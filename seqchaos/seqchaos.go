// Package seqchaos generates random, well formed sequence documents for stress testing the
// compiler, the layouts and the renderer.
package seqchaos

import (
	"fmt"
	mathrand "math/rand"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"oss.terrastruct.com/xrand"
)

const (
	maxEntities = 6
	maxDepth    = 4
	maxLabelLen = 12
)

type docEntity struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name,omitempty"`
	Kind string `yaml:"kind,omitempty"`
}

type docMessage struct {
	Style string `yaml:"style"`
	From  string `yaml:"from,omitempty"`
	To    string `yaml:"to,omitempty"`
	Label string `yaml:"label,omitempty"`
}

type docReply struct {
	Label string `yaml:"label,omitempty"`
}

type docActivation struct {
	Message  docMessage       `yaml:"message"`
	Reply    *docReply        `yaml:"reply,omitempty"`
	Children []*docActivation `yaml:"children,omitempty"`
}

type document struct {
	Entities    []docEntity      `yaml:"entities"`
	Activations []*docActivation `yaml:"activations,omitempty"`
}

type genState struct {
	rand *mathrand.Rand
	doc  *document

	// budget is the number of messages left to generate.
	budget  int
	created map[string]struct{}
}

// GenDocument returns a random document with at most maxi messages. maxi must be positive.
func GenDocument(rand *mathrand.Rand, maxi int) ([]byte, error) {
	if maxi < 1 {
		return nil, fmt.Errorf("maxi must be at least 1, got %d", maxi)
	}
	gs := &genState{
		rand:    rand,
		doc:     &document{},
		budget:  rand.Intn(maxi) + 1,
		created: make(map[string]struct{}),
	}
	gs.genEntities()
	for gs.budget > 0 {
		gs.doc.Activations = append(gs.doc.Activations, gs.genActivation(0))
	}
	b, err := yaml.Marshal(gs.doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal generated document: %w", err)
	}
	return b, nil
}

func (gs *genState) genEntities() {
	n := gs.rand.Intn(maxEntities) + 1
	for i := 0; i < n; i++ {
		e := docEntity{
			ID:   fmt.Sprintf("e%d", i),
			Name: gs.randLabel(),
		}
		if gs.roll(70, 30) == 1 {
			e.Kind = "actor"
		}
		gs.doc.Entities = append(gs.doc.Entities, e)
	}
}

func (gs *genState) genActivation(depth int) *docActivation {
	gs.budget--
	act := &docActivation{}
	m := &act.Message
	m.Label = gs.randLabel()

	switch gs.roll(35, 15, 10, 10, 10, 10, 10) {
	case 0:
		m.Style = "sync"
		m.From, m.To = gs.randEntity(), gs.randEntity()
	case 1:
		m.Style = "async"
		m.From, m.To = gs.randEntity(), gs.randEntity()
	case 2:
		m.Style = "found"
		m.To = gs.randEntity()
	case 3:
		m.Style = "lost"
		m.From = gs.randEntity()
	case 4:
		m.Style = "create"
		m.From = gs.randEntity()
		m.To = gs.uncreatedEntity()
		if m.To == "" {
			m.Style = "sync"
			m.To = gs.randEntity()
		} else {
			gs.created[m.To] = struct{}{}
		}
	case 5:
		m.Style = "destroy"
		m.From, m.To = gs.randEntity(), gs.randEntity()
	case 6:
		m.Style = "sync"
		m.From = gs.randEntity()
		m.To = m.From
	}

	if m.From != "" && m.To != "" && gs.randBool() {
		act.Reply = &docReply{Label: gs.randLabel()}
	}

	if depth < maxDepth {
		n := gs.rand.Intn(3)
		for i := 0; i < n && gs.budget > 0; i++ {
			act.Children = append(act.Children, gs.genActivation(depth+1))
		}
	}
	return act
}

func (gs *genState) randEntity() string {
	return gs.doc.Entities[gs.rand.Intn(len(gs.doc.Entities))].ID
}

func (gs *genState) uncreatedEntity() string {
	var ids []string
	for _, e := range gs.doc.Entities {
		if _, ok := gs.created[e.ID]; !ok {
			ids = append(ids, e.ID)
		}
	}
	if len(ids) == 0 {
		return ""
	}
	return ids[gs.rand.Intn(len(ids))]
}

// randLabel returns a short printable label, possibly empty.
func (gs *genState) randLabel() string {
	s := xrand.String(gs.rand.Intn(maxLabelLen), nil)
	return strings.Map(func(r rune) rune {
		if !unicode.IsPrint(r) {
			return -1
		}
		return r
	}, s)
}

func (gs *genState) randBool() bool {
	return gs.rand.Intn(2) == 0
}

// roll picks an index with probability proportional to its weight.
func (gs *genState) roll(weights ...int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	n := gs.rand.Intn(total)
	for i, w := range weights {
		if n < w {
			return i
		}
		n -= w
	}
	return len(weights) - 1
}

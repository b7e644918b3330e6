// Package seqdiagram turns a sequence into positioned diagram parts and draws them.
//
// A Diagram is built from a seqgraph.Sequence with New, laid out once with Layout, and can then
// be sized and drawn any number of times.
package seqdiagram

import (
	"fmt"

	"oss.terrastruct.com/seqdiag/lib/geo"
	"oss.terrastruct.com/seqdiag/seqgraph"
	"oss.terrastruct.com/seqdiag/seqtarget"
)

type Diagram struct {
	cfg   *Config
	parts Parts

	size    geo.Size
	laidOut bool
}

// New builds the parts of seq. A nil cfg uses DefaultConfig.
func New(seq *seqgraph.Sequence, cfg *Config) *Diagram {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	b := NewBuilder(cfg)
	for _, e := range seq.Entities {
		b.AddEntity(e)
	}
	for _, act := range seq.Activations {
		b.WalkActivation(act)
	}
	return &Diagram{
		cfg:   cfg,
		parts: b.Build(),
	}
}

func (d *Diagram) Config() *Config {
	return d.cfg
}

// Parts returns the diagram parts. Their geometry accessors fail with ErrNotLaidOut until
// Layout succeeds.
func (d *Diagram) Parts() Parts {
	return d.parts
}

// Layout positions every part, using attr to measure text.
func (d *Diagram) Layout(attr seqtarget.RenderAttributes) error {
	d.laidOut = false
	d.parts.resetLayout()

	ids := make([]string, 0, len(d.parts.Entities))
	seen := make(map[string]struct{}, len(d.parts.Entities))
	for _, e := range d.parts.Entities {
		if _, ok := seen[e.Entity.ID]; ok {
			return fmt.Errorf("duplicate entity %q", e.Entity.ID)
		}
		seen[e.Entity.ID] = struct{}{}
		ids = append(ids, e.Entity.ID)
	}

	lm := newLayoutManager(d.cfg, ids, len(d.parts.Messages))
	if err := lm.layout(attr, d.parts); err != nil {
		d.parts.resetLayout()
		return fmt.Errorf("failed to lay out diagram: %w", err)
	}
	d.size = lm.size()
	d.laidOut = true
	return nil
}

func (d *Diagram) IsLaidOut() bool {
	return d.laidOut
}

// ComputedSize returns the extent of the laid out diagram, starting at the origin.
func (d *Diagram) ComputedSize() (geo.Size, error) {
	if !d.laidOut {
		return geo.Size{}, ErrNotLaidOut
	}
	return d.size, nil
}

// Draw draws entities, then activation bars, then messages.
func (d *Diagram) Draw(r seqtarget.Renderer) error {
	if !d.laidOut {
		return ErrNotLaidOut
	}
	for _, e := range d.parts.Entities {
		if err := e.Draw(r); err != nil {
			return fmt.Errorf("failed to draw entity %q: %w", e.Entity.ID, err)
		}
	}
	for _, b := range d.parts.ActivationBars {
		if err := b.Draw(r, d.size.Height); err != nil {
			return fmt.Errorf("failed to draw activation bar of %q: %w", b.EntityID, err)
		}
	}
	for _, m := range d.parts.Messages {
		if err := m.Draw(r); err != nil {
			return fmt.Errorf("failed to draw message %d: %w", m.Index, err)
		}
	}
	return nil
}

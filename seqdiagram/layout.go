package seqdiagram

import (
	"errors"
	"fmt"

	"oss.terrastruct.com/seqdiag/lib/geo"
	"oss.terrastruct.com/seqdiag/seqgraph"
	"oss.terrastruct.com/seqdiag/seqlayouts/seqconstraint"
	"oss.terrastruct.com/seqdiag/seqlayouts/seqvertical"
	"oss.terrastruct.com/seqdiag/seqtarget"
)

// layoutManager feeds the parts into a horizontal and a vertical layout and writes the results
// back onto the parts.
type layoutManager struct {
	horizontal *seqconstraint.TypedLayout[string]
	vertical   *seqvertical.Layout

	h seqconstraint.TypedComputed[string]
	v seqvertical.Computed
}

func newLayoutManager(cfg *Config, entityIDs []string, messageCount int) *layoutManager {
	return &layoutManager{
		horizontal: seqconstraint.NewTyped(entityIDs, seqconstraint.Options{ItemMargin: cfg.EntitySpacing}),
		vertical:   seqvertical.New(entityIDs, messageCount, seqvertical.Options{MessageSpacing: cfg.MessageSpacing}),
	}
}

func wrapUnknown(err error) error {
	if errors.Is(err, seqconstraint.ErrUnknownKey) || errors.Is(err, seqvertical.ErrUnknownEntity) {
		return fmt.Errorf("%w: %v", ErrUnknownEntity, err)
	}
	return err
}

func (lm *layoutManager) layout(attr seqtarget.RenderAttributes, parts Parts) error {
	if err := lm.layoutEntities(attr, parts.Entities); err != nil {
		return wrapUnknown(err)
	}
	if err := lm.layoutMessages(attr, parts.Messages); err != nil {
		return wrapUnknown(err)
	}

	lm.h = lm.horizontal.Compute()
	lm.v = lm.vertical.Compute()

	if err := lm.applyToEntities(parts.Entities, parts.Messages); err != nil {
		return wrapUnknown(err)
	}
	if err := lm.applyToMessages(parts.Messages); err != nil {
		return wrapUnknown(err)
	}
	return wrapUnknown(lm.applyToActivationBars(parts.ActivationBars))
}

func (lm *layoutManager) size() geo.Size {
	return geo.NewSize(lm.h.Total, lm.v.TotalHeight)
}

func (lm *layoutManager) layoutEntities(attr seqtarget.RenderAttributes, entities []*EntityPart) error {
	for _, e := range entities {
		head := e.MeasureHead(attr)
		if err := lm.horizontal.ApplyDimension(e.Entity.ID, head.Width); err != nil {
			return err
		}
		if err := lm.vertical.ApplyHeadHeight(e.Entity.ID, head.Height); err != nil {
			return err
		}
	}
	return nil
}

func (lm *layoutManager) layoutMessages(attr seqtarget.RenderAttributes, messages []*MessagePart) error {
	for _, m := range messages {
		if id, ok := m.Creates(); ok {
			if err := lm.vertical.ApplyCreator(id, m.Index); err != nil {
				return err
			}
		}
		lm.vertical.ApplyMessageHeight(m.Index, m.Height())

		minWidth := m.MinWidth(attr)
		from, to := m.Message.Source(), m.Message.Target()
		var err error
		switch {
		case from != nil && to != nil:
			err = lm.horizontal.ApplyBetween(from.ID, to.ID, minWidth)
		case to != nil:
			err = lm.horizontal.ApplyBefore(to.ID, minWidth)
		case from != nil:
			err = lm.horizontal.ApplyBefore(from.ID, minWidth)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// destroyedAt returns the y of the first message destroying id.
func (lm *layoutManager) destroyedAt(id string, messages []*MessagePart) (float64, bool) {
	for _, m := range messages {
		if m.Message.Style() == seqgraph.Destroy && m.Message.Target() != nil && m.Message.Target().ID == id {
			return lm.v.MessagePositions[m.Index].Top, true
		}
	}
	return 0, false
}

func (lm *layoutManager) applyToEntities(entities []*EntityPart, messages []*MessagePart) error {
	for _, e := range entities {
		posH, err := lm.h.Item(e.Entity.ID)
		if err != nil {
			return err
		}
		offset, ok := lm.v.EntityOffsets[e.Entity.ID]
		if !ok {
			return fmt.Errorf("%w: %q", seqvertical.ErrUnknownEntity, e.Entity.ID)
		}
		end, destroyed := lm.destroyedAt(e.Entity.ID, messages)
		if !destroyed {
			end = lm.v.TotalHeight
		}
		e.place(geo.NewPoint(posH.Center, offset), end, destroyed)
	}
	return nil
}

func (lm *layoutManager) applyToMessages(messages []*MessagePart) error {
	for _, m := range messages {
		var fromX, toX, toHeadWidth float64
		if from := m.Message.Source(); from != nil {
			pos, err := lm.h.Item(from.ID)
			if err != nil {
				return err
			}
			fromX = pos.Center
		}
		if to := m.Message.Target(); to != nil {
			pos, err := lm.h.Item(to.ID)
			if err != nil {
				return err
			}
			toX = pos.Center
			toHeadWidth = pos.Dimension
		}
		m.place(lm.v.MessagePositions[m.Index].Top, fromX, toX, toHeadWidth)
	}
	return nil
}

func (lm *layoutManager) applyToActivationBars(bars []*ActivationBarPart) error {
	for _, b := range bars {
		pos, err := lm.h.Item(b.EntityID)
		if err != nil {
			return err
		}
		var bottom *float64
		if end, ok := b.End(); ok {
			bottom = &lm.v.MessagePositions[end].Top
		}
		b.place(pos.Center, lm.v.MessagePositions[b.Start].Bottom, bottom)
	}
	return nil
}

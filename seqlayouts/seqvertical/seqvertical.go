// Package seqvertical computes the vertical positions of messages and the vertical offsets of
// entities in a sequence diagram.
//
// Messages are stacked top to bottom in index order. An entity created by a message is moved
// down so that its head straddles the creating arrow.
package seqvertical

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownEntity  = errors.New("unknown entity")
	ErrAlreadyCreated = errors.New("entity already has a creator")
)

type Options struct {
	// MessageSpacing is the vertical gap between consecutive messages, and between the
	// tallest initial head and the first message.
	MessageSpacing float64
}

type entityInfo struct {
	headHeight float64
	creator    int
	hasCreator bool
}

type messageInfo struct {
	height   float64
	creating string
}

type Layout struct {
	entityIDs []string
	entities  map[string]*entityInfo
	messages  []messageInfo
	spacing   float64
}

// New panics on duplicate entity ids.
func New(entityIDs []string, messageCount int, opts Options) *Layout {
	entities := make(map[string]*entityInfo, len(entityIDs))
	for _, id := range entityIDs {
		if _, ok := entities[id]; ok {
			panic(fmt.Sprintf("seqvertical: duplicate entity %q", id))
		}
		entities[id] = &entityInfo{}
	}
	return &Layout{
		entityIDs: append([]string(nil), entityIDs...),
		entities:  entities,
		messages:  make([]messageInfo, messageCount),
		spacing:   opts.MessageSpacing,
	}
}

func (l *Layout) entity(id string) (*entityInfo, error) {
	e, ok := l.entities[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntity, id)
	}
	return e, nil
}

// ApplyHeadHeight sets the distance between the top of the entity and the start of its lifeline.
func (l *Layout) ApplyHeadHeight(id string, height float64) error {
	e, err := l.entity(id)
	if err != nil {
		return err
	}
	e.headHeight = height
	return nil
}

// ApplyCreator records that message creates entity id. An entity can only be created once.
func (l *Layout) ApplyCreator(id string, message int) error {
	e, err := l.entity(id)
	if err != nil {
		return err
	}
	if e.hasCreator {
		return fmt.Errorf("%w: %q is created by messages %d and %d", ErrAlreadyCreated, id, e.creator, message)
	}
	e.creator = message
	e.hasCreator = true
	l.messages[message].creating = id
	return nil
}

// ApplyMessageHeight sets the vertical space taken up by message.
func (l *Layout) ApplyMessageHeight(message int, height float64) {
	l.messages[message].height = height
}

type MessagePosition struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

type Computed struct {
	TotalHeight      float64            `json:"totalHeight"`
	MessagePositions []MessagePosition  `json:"messagePositions"`
	EntityOffsets    map[string]float64 `json:"entityOffsets"`
}

func (l *Layout) headHeight(id string) float64 {
	if e, ok := l.entities[id]; ok {
		return e.headHeight
	}
	return 0
}

func (l *Layout) firstMessageY() float64 {
	y := 0.
	for _, e := range l.entities {
		if !e.hasCreator && e.headHeight > y {
			y = e.headHeight
		}
	}
	return y + l.spacing
}

func (l *Layout) messagePositions(y float64) []MessagePosition {
	positions := make([]MessagePosition, 0, len(l.messages))
	for _, m := range l.messages {
		head := l.headHeight(m.creating)
		top := y + head/2
		positions = append(positions, MessagePosition{
			Top:    top,
			Bottom: top + m.height,
		})
		y += head + m.height + l.spacing
	}
	return positions
}

func (l *Layout) entityOffsets(positions []MessagePosition) map[string]float64 {
	offsets := make(map[string]float64, len(l.entities))
	for id, e := range l.entities {
		if e.hasCreator {
			offsets[id] = positions[e.creator].Top - e.headHeight/2
		} else {
			offsets[id] = 0
		}
	}
	return offsets
}

// Compute may be called any number of times.
func (l *Layout) Compute() Computed {
	if len(l.entities) == 0 && len(l.messages) == 0 {
		return Computed{
			MessagePositions: []MessagePosition{},
			EntityOffsets:    map[string]float64{},
		}
	}

	firstY := l.firstMessageY()
	positions := l.messagePositions(firstY)
	offsets := l.entityOffsets(positions)

	total := firstY
	for _, id := range l.entityIDs {
		if bottom := offsets[id] + l.headHeight(id); bottom > total {
			total = bottom
		}
	}
	if len(positions) > 0 {
		if last := positions[len(positions)-1]; last.Bottom > total {
			total = last.Bottom
		}
	}

	return Computed{
		TotalHeight:      total,
		MessagePositions: positions,
		EntityOffsets:    offsets,
	}
}

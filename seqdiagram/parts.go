package seqdiagram

import (
	"oss.terrastruct.com/seqdiag/lib/geo"
	"oss.terrastruct.com/seqdiag/lib/go2"
	"oss.terrastruct.com/seqdiag/seqgraph"
	"oss.terrastruct.com/seqdiag/seqtarget"
)

// EntityPart is an entity head plus its lifeline.
type EntityPart struct {
	Entity *seqgraph.Entity

	cfg  *Config
	head headDrawable

	laidOut     bool
	topCenter   *geo.Point
	lifelineEnd float64
	destroyed   bool
}

func newEntityPart(cfg *Config, e *seqgraph.Entity) *EntityPart {
	return &EntityPart{
		Entity:    e,
		cfg:       cfg,
		head:      newHead(cfg, e),
		topCenter: geo.NewPoint(0, 0),
	}
}

func (p *EntityPart) MeasureHead(attr seqtarget.RenderAttributes) geo.Size {
	return p.head.measure(attr)
}

// TopCenter is the top of the head, horizontally on the lifeline.
func (p *EntityPart) TopCenter() (*geo.Point, error) {
	if !p.laidOut {
		return nil, ErrNotLaidOut
	}
	return p.topCenter, nil
}

// LifelineEnd returns the absolute y where the lifeline stops and whether it stops because the
// entity was destroyed there.
func (p *EntityPart) LifelineEnd() (y float64, destroyed bool, err error) {
	if !p.laidOut {
		return 0, false, ErrNotLaidOut
	}
	return p.lifelineEnd, p.destroyed, nil
}

func (p *EntityPart) place(topCenter *geo.Point, lifelineEnd float64, destroyed bool) {
	p.topCenter = topCenter
	p.lifelineEnd = lifelineEnd
	p.destroyed = destroyed
	p.laidOut = true
}

func (p *EntityPart) Draw(r seqtarget.Renderer) error {
	if !p.laidOut {
		return ErrNotLaidOut
	}
	head := p.head.measure(r)
	p.head.draw(r, p.topCenter)

	start := p.topCenter.Translate(0, head.Height)
	end := p.topCenter.WithY(p.lifelineEnd)
	r.RenderPolyline([]*geo.Point{start, end}, seqtarget.NoMarker, seqtarget.NoMarker, seqtarget.StrokeOptions{
		LineWidth: p.cfg.LineWidthLifelines,
		Dashed:    true,
	})
	if p.destroyed {
		r.RenderPath(destructionPath, end, seqtarget.StrokeOptions{LineWidth: destructionLineWidth})
	}
	return nil
}

// MessagePart is one arrow of the diagram. Index is its position in the global message order.
type MessagePart struct {
	Index     int
	Message   seqgraph.Message
	FromLevel int
	ToLevel   int
	// Hidden parts only reserve vertical space and are never drawn.
	Hidden bool

	cfg   *Config
	arrow *arrowDrawable

	laidOut     bool
	top         float64
	fromX       float64
	toX         float64
	toHeadWidth float64
}

func newMessagePart(cfg *Config, index int, m seqgraph.Message, fromLevel, toLevel int, hidden bool) *MessagePart {
	return &MessagePart{
		Index:     index,
		Message:   m,
		FromLevel: fromLevel,
		ToLevel:   toLevel,
		Hidden:    hidden,
		cfg:       cfg,
		arrow:     newArrow(cfg, m),
	}
}

// Creates returns the id of the entity created by this message.
func (p *MessagePart) Creates() (string, bool) {
	if p.Message.Style() != seqgraph.Create || p.Message.Target() == nil {
		return "", false
	}
	return p.Message.Target().ID, true
}

// Height is the vertical space taken by the arrow itself, non-zero only for self-calls.
func (p *MessagePart) Height() float64 {
	if !p.Hidden && seqgraph.IsSelf(p.Message) {
		return p.cfg.SelfHeight
	}
	return 0
}

// MinWidth is the horizontal space the message needs between its lifelines.
func (p *MessagePart) MinWidth(attr seqtarget.RenderAttributes) float64 {
	if p.Hidden {
		return 0
	}
	natural := 0.
	if s := p.Message.Style(); s == seqgraph.Lost || s == seqgraph.Found {
		natural = p.cfg.FoundWidth
	}
	w := p.arrow.measureLabel(attr).Width +
		float64(p.FromLevel)*p.cfg.indent() +
		float64(p.ToLevel)*p.cfg.indent() +
		2*p.cfg.MessagePadding
	return go2.Max(natural, w)
}

func (p *MessagePart) Top() (float64, error) {
	if !p.laidOut {
		return 0, ErrNotLaidOut
	}
	return p.top, nil
}

// place records the layout of the message. toHeadWidth is the head width of the target,
// which create arrows stop at.
func (p *MessagePart) place(top, fromX, toX, toHeadWidth float64) {
	p.top = top
	p.fromX = fromX
	p.toX = toX
	p.toHeadWidth = toHeadWidth
	p.laidOut = true
}

// Points computes the arrow polyline from the positions set during layout.
func (p *MessagePart) Points() ([]*geo.Point, error) {
	if !p.laidOut {
		return nil, ErrNotLaidOut
	}
	var from, to *BarLocation
	if p.Message.Source() != nil {
		from = &BarLocation{X: p.fromX, Level: p.FromLevel}
	}
	if p.Message.Target() != nil {
		to = &BarLocation{X: p.toX, Level: p.ToLevel}
	}
	headWidth := p.toHeadWidth
	if p.Message.Style() == seqgraph.Destroy {
		headWidth = 0
	}
	return ArrowPoints(p.cfg, p.top, from, to, headWidth)
}

func (p *MessagePart) Draw(r seqtarget.Renderer) error {
	if p.Hidden {
		return nil
	}
	points, err := p.Points()
	if err != nil {
		return err
	}
	p.arrow.draw(r, points)
	return nil
}

// ActivationBarPart is a bar on a lifeline, opened by message Start and closed by message End.
type ActivationBarPart struct {
	EntityID string
	Start    int
	Level    int

	cfg *Config

	end    int
	closed bool

	laidOut   bool
	lifelineX float64
	top       float64
	bottom    float64
	hasBottom bool
}

func newActivationBarPart(cfg *Config, entityID string, start, level int) *ActivationBarPart {
	return &ActivationBarPart{
		EntityID: entityID,
		Start:    start,
		Level:    level,
		cfg:      cfg,
	}
}

// End returns the index of the closing message, if there is one.
func (p *ActivationBarPart) End() (int, bool) {
	return p.end, p.closed
}

func (p *ActivationBarPart) SetEnd(index int) {
	p.end = index
	p.closed = true
}

// place records the layout of the bar. A nil bottom leaves the bar open.
func (p *ActivationBarPart) place(lifelineX, top float64, bottom *float64) {
	p.lifelineX = lifelineX
	p.top = top
	p.hasBottom = bottom != nil
	if bottom != nil {
		p.bottom = *bottom
	}
	p.laidOut = true
}

// Bounds returns the box of the bar. A bar without a bottom extends to diagramHeight.
func (p *ActivationBarPart) Bounds(diagramHeight float64) (*geo.Box, error) {
	if !p.laidOut {
		return nil, ErrNotLaidOut
	}
	bottom := diagramHeight
	if p.hasBottom {
		bottom = p.bottom
	}
	left := p.lifelineX + float64(p.Level-2)*p.cfg.indent()
	return geo.NewBox(geo.NewPoint(left, p.top), p.cfg.ActivationThickness, bottom-p.top), nil
}

func (p *ActivationBarPart) Draw(r seqtarget.Renderer, diagramHeight float64) error {
	b, err := p.Bounds(diagramHeight)
	if err != nil {
		return err
	}
	r.RenderBox(b.TopLeft, b.Size(), seqtarget.StrokeOptions{LineWidth: boxLineWidth})
	return nil
}

func (parts Parts) resetLayout() {
	for _, e := range parts.Entities {
		e.laidOut = false
	}
	for _, m := range parts.Messages {
		m.laidOut = false
	}
	for _, b := range parts.ActivationBars {
		b.laidOut = false
	}
}

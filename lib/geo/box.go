package geo

type Box struct {
	TopLeft *Point
	Width   float64
	Height  float64
}

func NewBox(tl *Point, width, height float64) *Box {
	if tl == nil {
		tl = NewPoint(0, 0)
	}
	return &Box{
		TopLeft: tl,
		Width:   width,
		Height:  height,
	}
}

func (b *Box) CenterX() float64 {
	return b.TopLeft.X + b.Width/2
}

func (b *Box) CenterY() float64 {
	return b.TopLeft.Y + b.Height/2
}

func (b *Box) Size() Size {
	return NewSize(b.Width, b.Height)
}

func (b *Box) MinX() float64 { return b.TopLeft.X }
func (b *Box) MaxX() float64 { return b.TopLeft.X + b.Width }
func (b *Box) MinY() float64 { return b.TopLeft.Y }
func (b *Box) MaxY() float64 { return b.TopLeft.Y + b.Height }

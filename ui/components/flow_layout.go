package components

import (
	"math"

	"fyne.io/fyne/v2"
)

// DefaultFlowVGap is the vertical gap between wrapped rows.
const DefaultFlowVGap float32 = 8

// Baseliner is implemented by objects that know where their text baseline is,
// measured from their top edge at minimum size.
type Baseliner interface {
	Baseline() float32
}

// FlowLayout places objects left to right at their minimum size and wraps to
// a new row when the next object does not fit. Objects in a row share a
// baseline; objects that are not Baseliners use their vertical centre, which
// is where single-line Fyne text widgets draw their text.
type FlowLayout struct {
	HGap float32
	VGap float32

	width float32 // width of the last Layout call
}

var _ fyne.Layout = (*FlowLayout)(nil)

// NewFlowLayout returns a FlowLayout with the given horizontal gap and the
// default vertical gap.
func NewFlowLayout(hgap float32) *FlowLayout {
	return &FlowLayout{HGap: hgap, VGap: DefaultFlowVGap}
}

func (l *FlowLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	l.width = size.Width
	y := float32(0)
	for _, row := range l.rows(objects, size.Width) {
		ascent, height := rowMetrics(row)
		x := float32(0)
		for _, o := range row {
			min := o.MinSize()
			o.Resize(min)
			o.Move(fyne.NewPos(x, y+ascent-baseline(o, min)))
			x += min.Width + l.HGap
		}
		y += height + l.VGap
	}
}

// MinSize is the widest object by the height needed to wrap at the width
// of the last layout. Before the first layout everything sits on one row.
func (l *FlowLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	width := float32(0)
	for _, o := range objects {
		if o.Visible() {
			width = fyne.Max(width, o.MinSize().Width)
		}
	}

	wrapAt := l.width
	if wrapAt <= 0 {
		wrapAt = math.MaxFloat32
	}
	height := float32(0)
	rows := l.rows(objects, wrapAt)
	for i, row := range rows {
		_, h := rowMetrics(row)
		height += h
		if i > 0 {
			height += l.VGap
		}
	}
	return fyne.NewSize(width, height)
}

func (l *FlowLayout) rows(objects []fyne.CanvasObject, width float32) [][]fyne.CanvasObject {
	var rows [][]fyne.CanvasObject
	var row []fyne.CanvasObject
	x := float32(0)
	for _, o := range objects {
		if !o.Visible() {
			continue
		}
		w := o.MinSize().Width
		if len(row) > 0 && x+w > width {
			rows = append(rows, row)
			row = nil
			x = 0
		}
		row = append(row, o)
		x += w + l.HGap
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return rows
}

// rowMetrics returns the distance from the row top to the shared baseline
// and the total row height.
func rowMetrics(row []fyne.CanvasObject) (ascent, height float32) {
	descent := float32(0)
	for _, o := range row {
		min := o.MinSize()
		b := baseline(o, min)
		ascent = fyne.Max(ascent, b)
		descent = fyne.Max(descent, min.Height-b)
	}
	return ascent, ascent + descent
}

func baseline(o fyne.CanvasObject, min fyne.Size) float32 {
	if b, ok := o.(Baseliner); ok {
		return b.Baseline()
	}
	return min.Height / 2
}

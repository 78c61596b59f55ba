package components

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

func box(w, h float32) *canvas.Rectangle {
	r := canvas.NewRectangle(nil)
	r.SetMinSize(fyne.NewSize(w, h))
	return r
}

type baselineBox struct {
	*canvas.Rectangle
	baseline float32
}

func (b *baselineBox) Baseline() float32 { return b.baseline }

func TestFlowLayoutWraps(t *testing.T) {
	a, b, c := box(30, 10), box(30, 10), box(30, 10)
	l := &FlowLayout{HGap: 5, VGap: 8}
	l.Layout([]fyne.CanvasObject{a, b, c}, fyne.NewSize(70, 100))

	tests := []struct {
		name string
		obj  fyne.CanvasObject
		want fyne.Position
	}{
		{"first", a, fyne.NewPos(0, 0)},
		{"second", b, fyne.NewPos(35, 0)},
		{"wrapped", c, fyne.NewPos(0, 18)},
	}
	for _, tt := range tests {
		if got := tt.obj.Position(); got != tt.want {
			t.Errorf("%s: position %v, want %v", tt.name, got, tt.want)
		}
		if got := tt.obj.Size(); got != fyne.NewSize(30, 10) {
			t.Errorf("%s: size %v, want min size", tt.name, got)
		}
	}

	if got := l.MinSize([]fyne.CanvasObject{a, b, c}); got != fyne.NewSize(30, 28) {
		t.Errorf("MinSize after wrap = %v, want 30x28", got)
	}
}

func TestFlowLayoutSingleRowBeforeLayout(t *testing.T) {
	l := NewFlowLayout(4)
	objects := []fyne.CanvasObject{box(10, 10), box(50, 20)}
	if got := l.MinSize(objects); got != fyne.NewSize(50, 20) {
		t.Errorf("MinSize = %v, want 50x20", got)
	}
	if l.VGap != DefaultFlowVGap {
		t.Errorf("VGap = %v, want %v", l.VGap, DefaultFlowVGap)
	}
}

func TestFlowLayoutBaselineAlignment(t *testing.T) {
	small := box(10, 10)
	tall := box(10, 20)
	custom := &baselineBox{Rectangle: box(10, 20), baseline: 16}

	l := &FlowLayout{HGap: 2, VGap: 8}
	objects := []fyne.CanvasObject{small, tall, custom}
	l.Layout(objects, fyne.NewSize(200, 100))

	// shared baseline is 16 from the row top
	if got := small.Position().Y; got != 11 {
		t.Errorf("small Y = %v, want 11", got)
	}
	if got := tall.Position().Y; got != 6 {
		t.Errorf("tall Y = %v, want 6", got)
	}
	if got := custom.Position().Y; got != 0 {
		t.Errorf("custom Y = %v, want 0", got)
	}
	if got := custom.Position().X; got != 24 {
		t.Errorf("custom X = %v, want 24", got)
	}

	// ascent 16 plus the largest part below the baseline (tall: 20-10)
	if got := l.MinSize(objects).Height; got != 26 {
		t.Errorf("row height = %v, want 26", got)
	}
}

func TestFlowLayoutSkipsHidden(t *testing.T) {
	a, hidden, b := box(20, 10), box(100, 50), box(20, 10)
	hidden.Hide()
	l := &FlowLayout{HGap: 5, VGap: 8}
	objects := []fyne.CanvasObject{a, hidden, b}
	l.Layout(objects, fyne.NewSize(60, 100))

	if got := b.Position(); got != fyne.NewPos(25, 0) {
		t.Errorf("b position %v, want (25, 0)", got)
	}
	if got := l.MinSize(objects); got != fyne.NewSize(20, 10) {
		t.Errorf("MinSize = %v, want 20x10", got)
	}
}

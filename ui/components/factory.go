// Package components holds the pre-configured widgets the host windows are
// built from: the bounded integer field, the flow panel and the read-only
// text field.
package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"souffleur/internal/intfield"
)

// NewIntegerField creates an entry for integers in [min, max]. A strict field
// refuses edits that do not form a valid value; a lenient one shows them and
// only commits valid values. Both commit on every valid edit.
// It fails with intfield.ErrInvalidBounds when min > max.
func NewIntegerField(min, max int, strict bool) (*IntegerEntry, error) {
	mode := intfield.Lenient
	if strict {
		mode = intfield.Strict
	}
	return NewIntegerEntry(min, max, mode)
}

// NewFlowPanel creates a container that flows objects left to right with
// hgap between them, wrapping rows and aligning each row on its baseline.
func NewFlowPanel(hgap float32, objects ...fyne.CanvasObject) *fyne.Container {
	return container.New(NewFlowLayout(hgap), objects...)
}

// NewReadOnlyField creates an empty text field the user cannot edit.
func NewReadOnlyField() *ReadOnlyEntry {
	return NewReadOnlyEntry()
}

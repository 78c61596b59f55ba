package components

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"souffleur/internal/debuglog"
	"souffleur/internal/intfield"
)

const logPrefix = "components"

var errNotInteger = errors.New("not a whole number")

// IntegerEntry is a single-line entry bound to an intfield.Field.
// Every user edit is run through the field; in strict mode rejected edits
// are rolled back, including the cursor column.
//
// The embedded Entry's OnChanged is owned by IntegerEntry; listen to
// OnCommitted instead.
type IntegerEntry struct {
	widget.Entry

	// OnCommitted is called each time an edit changes the committed value.
	OnCommitted func(int)

	field *intfield.Field

	// state before the current key event, used to roll back a rejected edit
	prevText   string
	prevCursor int
	syncing    bool
}

// NewIntegerEntry creates an entry for integers in [min, max].
func NewIntegerEntry(min, max int, mode intfield.Mode) (*IntegerEntry, error) {
	field, err := intfield.New(min, max, mode)
	if err != nil {
		return nil, err
	}
	e := &IntegerEntry{field: field}
	e.ExtendBaseWidget(e)
	e.PlaceHolder = fmt.Sprintf("%d … %d", min, max)
	e.Entry.OnChanged = e.onChanged
	if mode == intfield.Lenient {
		e.Validator = e.validate
	}
	return e, nil
}

// Value returns the committed value.
func (e *IntegerEntry) Value() (int, bool) { return e.field.Value() }

// SetValue commits v and shows it. Out-of-range values are refused with
// intfield.ErrOutOfRange.
func (e *IntegerEntry) SetValue(v int) error {
	before, had := e.field.Value()
	if err := e.field.SetValue(v); err != nil {
		return err
	}
	e.showFieldText()
	if (!had || before != v) && e.OnCommitted != nil {
		e.OnCommitted(v)
	}
	return nil
}

func (e *IntegerEntry) TypedRune(r rune) {
	e.snapshot()
	e.Entry.TypedRune(r)
}

func (e *IntegerEntry) TypedKey(key *fyne.KeyEvent) {
	e.snapshot()
	e.Entry.TypedKey(key)
}

func (e *IntegerEntry) TypedShortcut(shortcut fyne.Shortcut) {
	e.snapshot()
	e.Entry.TypedShortcut(shortcut)
}

// FocusLost drops text a lenient field was holding and shows the committed
// value again.
func (e *IntegerEntry) FocusLost() {
	if e.field.Mode() == intfield.Lenient {
		if _, class := e.field.Classify(e.field.Text()); class != intfield.Valid {
			e.field.Reset()
			e.showFieldText()
		}
	}
	e.Entry.FocusLost()
}

func (e *IntegerEntry) snapshot() {
	e.prevText = e.field.Text()
	e.prevCursor = e.CursorColumn
}

func (e *IntegerEntry) onChanged(text string) {
	if e.syncing {
		return
	}
	res := e.field.Edit(text)
	if !res.Accepted {
		debuglog.Log(logPrefix, debuglog.LevelTrace, debuglog.UseGlobal,
			"IntegerEntry: rejected %q (%s), keeping %q", text, res.Class, e.prevText)
		e.revert()
		return
	}
	if res.Committed && e.OnCommitted != nil {
		e.OnCommitted(res.Value)
	}
}

func (e *IntegerEntry) revert() {
	e.syncing = true
	e.SetText(e.field.Text())
	e.syncing = false

	cursor := e.prevCursor
	if n := len([]rune(e.Text)); cursor > n {
		cursor = n
	}
	e.CursorColumn = cursor
	e.Refresh()
}

// showFieldText pushes the field's text into the entry without treating it
// as a user edit.
func (e *IntegerEntry) showFieldText() {
	e.syncing = true
	e.SetText(e.field.Text())
	e.syncing = false
	e.CursorColumn = len([]rune(e.Text))
	e.Refresh()
}

func (e *IntegerEntry) validate(text string) error {
	v, class := e.field.Classify(text)
	switch class {
	case intfield.Valid:
		return nil
	case intfield.OutOfRange:
		return fmt.Errorf("%d is outside %d … %d", v, e.field.Min(), e.field.Max())
	default:
		return errNotInteger
	}
}

// Package intfield holds the editing policy behind the bounded integer entry:
// which texts a field accepts, when a typed value becomes the committed value
// and what the field shows in between. It has no toolkit dependency; the Fyne
// widget in ui/components drives it one edit at a time.
package intfield

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInvalidBounds is returned by New when min > max.
	ErrInvalidBounds = errors.New("invalid integer field bounds")
	// ErrOutOfRange is returned by SetValue for values outside [min, max].
	ErrOutOfRange = errors.New("value out of range")
)

// Mode selects how a field treats text that is not a valid in-range integer.
type Mode uint8

const (
	// Lenient keeps any typed text on display and commits only valid values.
	Lenient Mode = iota
	// Strict refuses text that is not valid, except for the empty string, a
	// lone minus sign on fields that allow negatives, and out-of-range text
	// that more digits can still turn into a valid value.
	Strict
)

func (m Mode) String() string {
	switch m {
	case Lenient:
		return "lenient"
	case Strict:
		return "strict"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Class is the classification of a proposed text.
type Class uint8

const (
	Malformed Class = iota
	OutOfRange
	Valid
)

func (c Class) String() string {
	switch c {
	case Valid:
		return "valid"
	case OutOfRange:
		return "out-of-range"
	default:
		return "malformed"
	}
}

// Result describes what a single Edit did.
type Result struct {
	Class     Class
	Value     int  // parsed value, meaningful unless Class is Malformed
	Accepted  bool // text became the displayed text
	Committed bool // committed value changed
}

// Field is a bounded integer input. The zero value is not usable; call New.
// A Field is not safe for concurrent use.
type Field struct {
	min, max  int
	mode      Mode
	text      string
	value     int
	committed bool
}

// New creates an empty field accepting integers in [min, max].
func New(min, max int, mode Mode) (*Field, error) {
	if min > max {
		return nil, fmt.Errorf("%w: min %d > max %d", ErrInvalidBounds, min, max)
	}
	return &Field{min: min, max: max, mode: mode}, nil
}

func (f *Field) Min() int   { return f.min }
func (f *Field) Max() int   { return f.max }
func (f *Field) Mode() Mode { return f.mode }

// Text returns the displayed text.
func (f *Field) Text() string { return f.text }

// Value returns the committed value; ok is false until the first commit.
func (f *Field) Value() (v int, ok bool) { return f.value, f.committed }

// Classify parses text with plain decimal syntax (an optional leading '-'
// followed by ASCII digits, no grouping) and checks it against the bounds.
func (f *Field) Classify(text string) (int, Class) {
	v, ok := parsePlain(text)
	if !ok {
		return 0, Malformed
	}
	if v < f.min || v > f.max {
		return v, OutOfRange
	}
	return v, Valid
}

// Edit applies a user mutation that proposes text as the new content.
// Valid text is committed immediately, whatever the mode.
func (f *Field) Edit(text string) Result {
	v, class := f.Classify(text)
	res := Result{Class: class, Value: v}

	res.Accepted = f.accepts(text, v, class)
	if !res.Accepted {
		return res
	}

	f.text = text
	if class == Valid {
		res.Committed = f.commit(v)
	}
	return res
}

// SetValue commits v and shows its decimal form.
func (f *Field) SetValue(v int) error {
	if v < f.min || v > f.max {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfRange, v, f.min, f.max)
	}
	f.text = strconv.Itoa(v)
	f.commit(v)
	return nil
}

// Reset replaces the displayed text with the committed value, or with the
// empty string when nothing was committed yet.
func (f *Field) Reset() {
	if f.committed {
		f.text = strconv.Itoa(f.value)
		return
	}
	f.text = ""
}

// Allows reports whether Edit would accept text without changing the field.
func (f *Field) Allows(text string) bool {
	v, class := f.Classify(text)
	return f.accepts(text, v, class)
}

func (f *Field) accepts(text string, v int, class Class) bool {
	switch {
	case f.mode == Lenient, class == Valid:
		return true
	case class == OutOfRange:
		return f.canReach(text, v)
	default:
		return f.isTransient(text)
	}
}

func (f *Field) commit(v int) bool {
	if f.committed && f.value == v {
		return false
	}
	f.value = v
	f.committed = true
	return true
}

// isTransient reports texts a strict field must still show so the user can
// clear it or start typing a negative number.
func (f *Field) isTransient(text string) bool {
	return text == "" || (text == "-" && f.min < 0)
}

// canReach reports whether appending digits to text can produce a value in
// [min, max], so a strict field keeps prefixes like "808" of 8080 while
// dead ends like "55" in [0, 10] stay rejected.
func (f *Field) canReach(text string, v int) bool {
	var lo, hi uint64 // magnitudes reachable with text's sign
	if strings.HasPrefix(text, "-") {
		if f.min >= 0 {
			return false
		}
		lo, hi = magnitude(min(f.max, 0)), magnitude(f.min)
	} else {
		if f.max < 0 {
			return false
		}
		lo, hi = magnitude(max(f.min, 0)), magnitude(f.max)
	}

	// extensions by k digits cover [m*10^k, m*10^k + 10^k - 1]
	start, span := magnitude(v), uint64(1)
	for {
		if start <= hi && start+span-1 >= lo {
			return true
		}
		if start > hi || start > math.MaxUint64/10 || span > math.MaxUint64/10 {
			return false
		}
		start *= 10
		span *= 10
	}
}

func magnitude(v int) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}

func parsePlain(s string) (int, bool) {
	digits := s
	if len(digits) > 0 && digits[0] == '-' {
		digits = digits[1:]
	}
	if digits == "" {
		return 0, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}
	v, err := strconv.ParseInt(s, 10, strconv.IntSize)
	if err != nil {
		return 0, false
	}
	return int(v), true
}

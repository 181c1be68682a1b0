// Package cart holds the shopping cart: deduplicated lines and their total.
//
// Every mutation recomputes the total from the lines and then notifies
// subscribers synchronously, so Total never drifts from line state.
package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jask/makemecoffee/internal/catalog"
	"github.com/jask/makemecoffee/internal/notify"
)

// Line aggregates the quantity of one catalog item.
type Line struct {
	ID       string
	Item     catalog.Item
	Quantity int
}

// Subtotal is the unit price times the quantity.
func (l Line) Subtotal() decimal.Decimal {
	return l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Snapshot is the read-only view handed to subscribers.
type Snapshot struct {
	Lines []Line
	Total decimal.Decimal
}

// Store owns the cart. It is not safe for concurrent use.
type Store struct {
	lines     []Line
	total     decimal.Decimal
	observers notify.Observers[Snapshot]
	newID     func() string
}

// NewStore returns an empty cart whose line ids are random UUIDs.
func NewStore() *Store {
	return &Store{newID: uuid.NewString}
}

// Subscribe registers fn to run after every mutation.
func (s *Store) Subscribe(fn func(Snapshot)) (cancel func()) {
	return s.observers.Subscribe(fn)
}

// Add increments the line for item.ID or appends a new line with quantity 1.
func (s *Store) Add(item catalog.Item) Line {
	idx := s.indexByItem(item.ID)
	if idx >= 0 {
		s.lines[idx].Quantity++
	} else {
		s.lines = append(s.lines, Line{ID: s.nextID(), Item: item, Quantity: 1})
		idx = len(s.lines) - 1
	}
	line := s.lines[idx]
	s.changed()
	return line
}

// Remove deletes the line with lineID. Unknown ids are ignored.
func (s *Store) Remove(lineID string) {
	if idx := s.indexByLine(lineID); idx >= 0 {
		s.lines = append(s.lines[:idx], s.lines[idx+1:]...)
	}
	s.changed()
}

// SetQuantity sets the quantity of a line; quantity <= 0 removes it.
func (s *Store) SetQuantity(lineID string, quantity int) {
	if quantity <= 0 {
		s.Remove(lineID)
		return
	}
	if idx := s.indexByLine(lineID); idx >= 0 {
		s.lines[idx].Quantity = quantity
	}
	s.changed()
}

// Increment adds one to a line's quantity.
func (s *Store) Increment(lineID string) {
	if l, ok := s.Line(lineID); ok {
		s.SetQuantity(lineID, l.Quantity+1)
		return
	}
	s.changed()
}

// Decrement removes one from a line's quantity, dropping the line at zero.
func (s *Store) Decrement(lineID string) {
	if l, ok := s.Line(lineID); ok {
		s.SetQuantity(lineID, l.Quantity-1)
		return
	}
	s.changed()
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.lines = nil
	s.changed()
}

// Total is the sum of every line subtotal.
func (s *Store) Total() decimal.Decimal { return s.total }

// Lines returns a copy of the lines in insertion order.
func (s *Store) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Line looks a line up by its id.
func (s *Store) Line(lineID string) (Line, bool) {
	if idx := s.indexByLine(lineID); idx >= 0 {
		return s.lines[idx], true
	}
	return Line{}, false
}

// LineForItem looks a line up by catalog item id.
func (s *Store) LineForItem(itemID string) (Line, bool) {
	if idx := s.indexByItem(itemID); idx >= 0 {
		return s.lines[idx], true
	}
	return Line{}, false
}

// Len is the number of lines.
func (s *Store) Len() int { return len(s.lines) }

// Count is the number of units across all lines.
func (s *Store) Count() int {
	n := 0
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

// Empty reports whether the cart has no lines.
func (s *Store) Empty() bool { return len(s.lines) == 0 }

// Snapshot copies the current state.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{Lines: s.Lines(), Total: s.total}
}

func (s *Store) changed() {
	total := decimal.Zero
	for _, l := range s.lines {
		total = total.Add(l.Subtotal())
	}
	s.total = total
	s.observers.Notify(s.Snapshot())
}

func (s *Store) nextID() string {
	if s.newID == nil {
		return uuid.NewString()
	}
	return s.newID()
}

func (s *Store) indexByItem(itemID string) int {
	for i, l := range s.lines {
		if l.Item.ID == itemID {
			return i
		}
	}
	return -1
}

func (s *Store) indexByLine(lineID string) int {
	for i, l := range s.lines {
		if l.ID == lineID {
			return i
		}
	}
	return -1
}

package gesture

import (
	"time"

	"honnef.co/go/gestures/debug"
	"honnef.co/go/gestures/f32"
	"honnef.co/go/gestures/io/pointer"
)

// MaxContacts is the number of contacts a Tracker holds. Only the first two take part in gestures; the third
// slot absorbs the spurious duplicate some hosts deliver while two fingers are down.
const MaxContacts = 3

// Contact is a snapshot of one press, in surface-local coordinates.
type Contact struct {
	ID     pointer.ID
	Source pointer.Source
	// Position is the last position delivered for this contact.
	Position f32.Point
	// Origin is the position at which the contact went down.
	Origin f32.Point
	// Start is when the contact went down, Time when Position was last updated.
	Start time.Duration
	Time  time.Duration
}

// Displacement returns the vector from the contact's origin to its current position.
func (c Contact) Displacement() f32.Point {
	return c.Position.Sub(c.Origin)
}

// Tracker is the set of active contacts of one surface. It is the only source of truth for where a contact
// is; delayed work must look contacts up again instead of holding on to event positions.
type Tracker struct {
	// Contains is the surface's hit test. Contacts that go down outside of it aren't tracked. A nil Contains
	// accepts every position.
	Contains func(p f32.Point) bool

	contacts [MaxContacts]Contact
	n        int
}

// Add starts tracking c. It fails if c is out of bounds, if a contact with the same ID is already tracked, or
// if the tracker is full.
func (t *Tracker) Add(c Contact) bool {
	if t.Contains != nil && !t.Contains(c.Position) {
		return false
	}
	if _, ok := t.index(c.ID); ok {
		return false
	}
	if t.n == len(t.contacts) {
		return false
	}
	t.contacts[t.n] = c
	t.n++
	return true
}

// Update records a new position for the contact with the given ID and returns the updated contact.
func (t *Tracker) Update(id pointer.ID, pos f32.Point, now time.Duration) (Contact, bool) {
	i, ok := t.index(id)
	if !ok {
		return Contact{}, false
	}
	c := &t.contacts[i]
	c.Position = pos
	c.Time = now
	return *c, true
}

// Remove stops tracking the contact with the given ID, preserving the order of the remaining contacts.
func (t *Tracker) Remove(id pointer.ID) (Contact, bool) {
	i, ok := t.index(id)
	if !ok {
		return Contact{}, false
	}
	c := t.contacts[i]
	copy(t.contacts[i:t.n], t.contacts[i+1:t.n])
	t.n--
	t.contacts[t.n] = Contact{}
	return c, true
}

func (t *Tracker) Lookup(id pointer.ID) (Contact, bool) {
	i, ok := t.index(id)
	if !ok {
		return Contact{}, false
	}
	return t.contacts[i], true
}

func (t *Tracker) index(id pointer.ID) (int, bool) {
	for i := range t.n {
		if t.contacts[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

// Len returns the number of tracked contacts.
func (t *Tracker) Len() int {
	return t.n
}

// First returns the oldest tracked contact. It must not be called on an empty tracker.
func (t *Tracker) First() Contact {
	debug.Assert(t.n > 0)
	return t.contacts[0]
}

// Second returns the second-oldest tracked contact. It must not be called with fewer than two contacts.
func (t *Tracker) Second() Contact {
	debug.Assert(t.n > 1)
	return t.contacts[1]
}

// Reset forgets all contacts.
func (t *Tracker) Reset() {
	clear(t.contacts[:])
	t.n = 0
}

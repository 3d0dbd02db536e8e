// Package reveal models a card with a summary face and a disclosure face.
package reveal

import "sync"

// Face is the visible side of a card.
type Face string

const (
	Primary    Face = "primary"
	Disclosure Face = "disclosure"
)

// Card is toggled by pointer and tap events. Exactly one face is visible.
type Card struct {
	mu     sync.Mutex
	ID     string
	active bool
}

// NewCard creates an inactive card.
func NewCard(id string) *Card { return &Card{ID: id} }

// Activate shows the disclosure face (pointer-enter).
func (c *Card) Activate() { c.set(true) }

// Deactivate shows the primary face (pointer-leave).
func (c *Card) Deactivate() { c.set(false) }

// Toggle flips the card (click or tap).
func (c *Card) Toggle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = !c.active
}

// Active reports whether the disclosure face is shown.
func (c *Card) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Face returns the visible face.
func (c *Card) Face() Face {
	if c.Active() {
		return Disclosure
	}
	return Primary
}

func (c *Card) set(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = v
}

// Event is a pointer interaction with a card.
type Event string

const (
	PointerEnter Event = "enter"
	PointerLeave Event = "leave"
	Click        Event = "click"
)

// Apply routes an event to the matching transition. Unknown events are ignored
// and reported as false.
func (c *Card) Apply(e Event) bool {
	switch e {
	case PointerEnter:
		c.Activate()
	case PointerLeave:
		c.Deactivate()
	case Click:
		c.Toggle()
	default:
		return false
	}
	return true
}

// Deck is the set of independent cards on one page.
type Deck struct {
	cards map[string]*Card
	order []string
}

// NewDeck creates one inactive card per id.
func NewDeck(ids ...string) *Deck {
	d := &Deck{cards: make(map[string]*Card, len(ids))}
	for _, id := range ids {
		if _, ok := d.cards[id]; ok {
			continue
		}
		d.cards[id] = NewCard(id)
		d.order = append(d.order, id)
	}
	return d
}

// Card returns the card with the given id.
func (d *Deck) Card(id string) (*Card, bool) {
	c, ok := d.cards[id]
	return c, ok
}

// IDs returns the card ids in creation order.
func (d *Deck) IDs() []string { return append([]string(nil), d.order...) }

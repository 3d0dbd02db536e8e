package view

// EventType names a client event.
type EventType string

const (
	EventMount           EventType = "mount"
	EventUnmount         EventType = "unmount"
	EventNavigate        EventType = "navigate"
	EventScroll          EventType = "scroll"
	EventLoadingComplete EventType = "loading.complete"
	EventTabSelect       EventType = "tab.select"
	EventCardEnter       EventType = "card.enter"
	EventCardLeave       EventType = "card.leave"
	EventCardClick       EventType = "card.click"
	EventMenuToggle      EventType = "menu.toggle"
	EventNavSelect       EventType = "nav.select"
	EventThemeToggle     EventType = "theme.toggle"
)

// Event is a message from the live client.
type Event struct {
	Type EventType `json:"type"`
	Path string    `json:"path,omitempty"`
	Tab  string    `json:"tab,omitempty"`
	Card string    `json:"card,omitempty"`
	Item string    `json:"item,omitempty"`
	X    int       `json:"x,omitempty"`
	Y    int       `json:"y,omitempty"`
}

// Package live carries client events to view sessions over a websocket and
// sends the resulting commands back.
package live

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/gyansetu/website/internal/metrics"
	"github.com/gyansetu/website/internal/site"
	"github.com/gyansetu/website/internal/theme"
	"github.com/gyansetu/website/internal/view"
)

// Path is where the live client connects.
const Path = "/ws/live"

const maxMessageSize = 16 << 10

// Message types sent to the client.
const (
	TypeCommands = "commands"
	TypeError    = "error"
)

// Message is the outgoing websocket message format.
type Message struct {
	Type     string         `json:"type"`
	Commands []view.Command `json:"commands,omitempty"`
	Message  string         `json:"message,omitempty"`
}

// Handler upgrades live connections and runs one view session per connection.
type Handler struct {
	deps     *view.Deps
	themes   *theme.Registry
	cookie   string
	metrics  *metrics.Metrics
	tracer   trace.Tracer
	upgrader websocket.Upgrader
}

// Option configures a Handler.
type Option func(*Handler)

// WithMetrics records sessions and events.
func WithMetrics(m *metrics.Metrics) Option {
	return func(h *Handler) { h.metrics = m }
}

// WithCheckOrigin overrides the upgrader's origin check.
func WithCheckOrigin(fn func(r *http.Request) bool) Option {
	return func(h *Handler) { h.upgrader.CheckOrigin = fn }
}

// NewHandler creates a Handler. cookie names the visitor cookie shared with
// the page handlers.
func NewHandler(deps *view.Deps, themes *theme.Registry, cookie string, opts ...Option) *Handler {
	h := &Handler{
		deps:   deps,
		themes: themes,
		cookie: cookie,
		tracer: otel.Tracer("github.com/gyansetu/website/internal/live"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register mounts the websocket endpoint on r.
func (h *Handler) Register(r chi.Router) {
	r.Get(Path, h.ServeHTTP)
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	header := http.Header{}
	id, ok := site.ReadVisitorID(r, h.cookie)
	if !ok {
		id = uuid.NewString()
		header.Add("Set-Cookie", site.VisitorCookie(h.cookie, id).String())
	}

	conn, err := h.upgrader.Upgrade(w, r, header)
	if err != nil {
		log.Printf("live: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageSize)

	store, release := h.themes.Store(r.Context(), id)
	defer release()

	c := &client{conn: conn}
	sess := view.NewSession(h.deps, store, func(cmds ...view.Command) {
		if len(cmds) > 0 {
			c.send(Message{Type: TypeCommands, Commands: cmds})
		}
	})
	defer sess.Close()

	h.metrics.SessionOpened()
	defer h.metrics.SessionClosed()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("live: websocket read: %v", err)
			}
			return
		}

		var ev view.Event
		if err := json.Unmarshal(msg, &ev); err != nil || ev.Type == "" {
			h.metrics.LiveEvent("invalid", "error")
			c.send(Message{Type: TypeError, Message: "invalid message format"})
			continue
		}

		cmds, err := h.dispatch(r.Context(), sess, ev)
		if ev.Type == view.EventThemeToggle && err == nil {
			h.metrics.ThemeToggled(string(store.Get()), "live")
		}
		if len(cmds) > 0 {
			c.send(Message{Type: TypeCommands, Commands: cmds})
		}
		if err != nil {
			c.send(Message{Type: TypeError, Message: err.Error()})
		}
	}
}

// dispatch runs one event through the session inside a span.
func (h *Handler) dispatch(ctx context.Context, sess *view.Session, ev view.Event) ([]view.Command, error) {
	_, span := h.tracer.Start(ctx, "live."+string(ev.Type),
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("live.session_id", sess.ID),
			attribute.String("live.event_type", string(ev.Type)),
		),
	)
	defer span.End()
	if ev.Path != "" {
		span.SetAttributes(attribute.String("live.path", ev.Path))
	}

	cmds, err := sess.Handle(ev)
	span.SetAttributes(attribute.Int("live.command_count", len(cmds)))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		h.metrics.LiveEvent(string(ev.Type), "error")
		return cmds, err
	}
	span.SetStatus(codes.Ok, "")
	h.metrics.LiveEvent(string(ev.Type), "ok")
	return cmds, nil
}

// client serializes writes; timers and other tabs emit concurrently with
// the read loop.
type client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *client) send(m Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.WriteJSON(m); err != nil {
		log.Printf("live: websocket write: %v", err)
	}
}

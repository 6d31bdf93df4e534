package live

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/reactview-dev/reactview/pkg/observe"
)

// Default tracer name for live render spans.
const defaultTracerName = "reactview/live"

// Frame is one rendered update pushed to the client.
type Frame struct {
	// Seq increases by one per frame on a connection.
	Seq uint64 `json:"seq"`

	// Version is the delivery cell's token at render time.
	Version string `json:"version"`

	// HTML is the rendered component output.
	HTML string `json:"html"`
}

// Handler upgrades HTTP requests to websocket sessions, one observed
// component instance per connection.
type Handler struct {
	factory     func() observe.Component
	upgrader    websocket.Upgrader
	log         *slog.Logger
	tracer      trace.Tracer
	observeOpts []observe.Option
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithLogger sets the session logger. Defaults to slog.Default().
func WithLogger(log *slog.Logger) HandlerOption {
	return func(h *Handler) {
		h.log = log
	}
}

// WithCheckOrigin sets the websocket origin check.
func WithCheckOrigin(fn func(*http.Request) bool) HandlerOption {
	return func(h *Handler) {
		h.upgrader.CheckOrigin = fn
	}
}

// WithTracerName overrides the OpenTelemetry tracer name used for render
// spans.
func WithTracerName(name string) HandlerOption {
	return func(h *Handler) {
		h.tracer = otel.Tracer(name)
	}
}

// WithObserveOptions forwards options to observe.Observe for every
// connection's instance.
func WithObserveOptions(opts ...observe.Option) HandlerOption {
	return func(h *Handler) {
		h.observeOpts = opts
	}
}

// NewHandler creates a handler that builds one component per connection
// from factory.
func NewHandler(factory func() observe.Component, opts ...HandlerOption) *Handler {
	h := &Handler{
		factory: factory,
		log:     slog.Default(),
		tracer:  otel.Tracer(defaultTracerName),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ServeHTTP upgrades the connection and runs the session loop until the
// client goes away.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	o, err := observe.Observe(h.factory(), h.observeOpts...)
	if err != nil {
		h.log.Error("component rejected", "error", err)
		return
	}
	defer o.Unmount()

	h.runSession(r.Context(), conn, o)
}

// runSession drives one instance: initial render and mount, then one frame
// per delivered update.
func (h *Handler) runSession(ctx context.Context, conn *websocket.Conn, o *observe.Observed) {
	// Coalescing wakeup: convergent notifications collapse into one pending
	// render, mirroring the cell's own idempotence.
	updates := make(chan struct{}, 1)
	wake := func() {
		select {
		case updates <- struct{}{}:
		default:
		}
	}
	o.OnNotify(wake)
	defer o.Cell().Subscribe(wake)()

	var seq uint64
	send := func() bool {
		out, err := h.render(ctx, o)
		if err != nil {
			h.log.Error("render failed", "component", o.Name(), "error", err)
			return false
		}

		seq++
		frame := Frame{Seq: seq, Version: o.Cell().Value().String(), HTML: renderHTML(out)}
		if err := conn.WriteJSON(frame); err != nil {
			h.log.Debug("write failed, closing session", "component", o.Name(), "error", err)
			return false
		}
		return true
	}

	if !send() {
		return
	}
	o.Mount()
	h.log.Info("session mounted", "component", o.Name())

	// Read pump only detects the close; clients send nothing meaningful.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-updates:
			if !send() {
				return
			}
		case <-closed:
			h.log.Info("session closed", "component", o.Name())
			return
		case <-ctx.Done():
			return
		}
	}
}

// render executes one tracked render pass inside an otel span.
func (h *Handler) render(ctx context.Context, o *observe.Observed) (any, error) {
	_, span := h.tracer.Start(ctx, "live.render",
		trace.WithAttributes(attribute.String("component", o.Name())))
	defer span.End()

	out, err := o.Render()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetStatus(codes.Ok, "")
	return out, nil
}

// renderHTML converts a component's render output to markup. Strings pass
// through untouched; anything else is printed and escaped.
func renderHTML(out any) string {
	switch v := out.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return html.EscapeString(fmt.Sprint(v))
	}
}

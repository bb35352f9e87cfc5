// Package bridge connects the core to the browser page hosting the opaque
// payment fields: overlay geometry streams out over a websocket once per
// frame, field events stream back in and land on the application bus.
package bridge

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"checkout3d/internal/app"
	"checkout3d/internal/overlay"
)

// MaxDevicePixelRatio caps the DPR reported by clients before it is applied
// to any render-target sizing, bounding GPU memory on high-density displays.
const MaxDevicePixelRatio = 2.0

// Server is the presentation bridge. It implements overlay.Surface so the
// coordinator can push geometry straight to every connected page.
type Server struct {
	log zerolog.Logger
	bus *app.Bus

	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// New builds a bridge publishing into bus. It subscribes to payment outcomes
// so result messages reach the page alongside the geometry stream.
func New(bus *app.Bus, log zerolog.Logger) *Server {
	s := &Server{
		log: log.With().Str("component", "bridge").Logger(),
		bus: bus,
		upgrader: websocket.Upgrader{
			// The demo page is served from the same process.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		conns: make(map[*websocket.Conn]struct{}),
	}
	bus.Subscribe(s.forwardOutcome)
	return s
}

// Routes registers the demo page and the websocket endpoint.
func (s *Server) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/", s.serveHome)
	mux.HandleFunc("/ws", s.handleWS)
}

func (s *Server) serveHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(demoPage))
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	s.mu.Lock()
	s.conns[conn] = struct{}{}
	n := len(s.conns)
	s.mu.Unlock()
	s.log.Info().Str("remote", conn.RemoteAddr().String()).Int("clients", n).Msg("client connected")

	go s.readLoop(conn)
}

// readLoop decodes field events from one page and publishes them. The loop
// goroutine applies them between frames; nothing here touches core state.
func (s *Server) readLoop(conn *websocket.Conn) {
	defer func() {
		s.mu.Lock()
		delete(s.conns, conn)
		s.mu.Unlock()
		conn.Close()
		s.log.Info().Str("remote", conn.RemoteAddr().String()).Msg("client disconnected")
	}()

	for {
		var ev clientEvent
		if err := conn.ReadJSON(&ev); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Warn().Err(err).Msg("websocket read failed")
			}
			return
		}
		s.publish(ev)
	}
}

func (s *Server) publish(ev clientEvent) {
	var e app.Event
	switch ev.Type {
	case "focus":
		e = app.Event{Kind: app.EventFocus, Field: ev.Field}
	case "blur":
		e = app.Event{Kind: app.EventBlur, Field: ev.Field}
	case "validity":
		e = app.Event{Kind: app.EventValidity, Field: ev.Field, Valid: ev.IsValid, PotentiallyValid: ev.IsPotentiallyValid}
	case "submit":
		e = app.Event{Kind: app.EventSubmit}
	case "resize":
		if ev.Width <= 0 || ev.Height <= 0 {
			return
		}
		// Width/height arrive in device-independent pixels; the DPR is only
		// clamped and logged here, sizing never exceeds the cap.
		dpr := ev.DevicePixelRatio
		if dpr > MaxDevicePixelRatio {
			dpr = MaxDevicePixelRatio
		}
		s.log.Debug().Float64("w", ev.Width).Float64("h", ev.Height).Float64("dpr", dpr).Msg("viewport resize")
		e = app.Event{Kind: app.EventResize, Width: ev.Width, Height: ev.Height}
	case "theme":
		e = app.Event{Kind: app.EventTheme, Theme: ev.Theme}
	default:
		s.log.Debug().Str("type", ev.Type).Msg("unknown client event")
		return
	}

	if !s.bus.Publish(e) {
		s.log.Warn().Str("type", ev.Type).Msg("bus full, event dropped")
	}
}

// Apply implements overlay.Surface: one geometry frame to every client.
// Write failures drop the client; the frame stream must never block the loop.
func (s *Server) Apply(l overlay.Layout) {
	frame := layoutFrame(l)

	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.conns {
		if err := conn.WriteJSON(frame); err != nil {
			conn.Close()
			delete(s.conns, conn)
		}
	}
}

// forwardOutcome relays payment outcomes to the page.
func (s *Server) forwardOutcome(e app.Event) {
	var msg serverMessage
	switch e.Kind {
	case app.EventSuccess:
		msg = serverMessage{Type: "result", OK: true, TxID: e.TxID}
	case app.EventError:
		msg = serverMessage{Type: "result", OK: false, Message: e.Message}
	default:
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.conns {
		if err := conn.WriteJSON(msg); err != nil {
			conn.Close()
			delete(s.conns, conn)
		}
	}
}

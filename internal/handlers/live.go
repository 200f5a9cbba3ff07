// SPDX-License-Identifier: MIT
package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/temotunadze/lawfolio/internal/events"
	"github.com/temotunadze/lawfolio/internal/session"
	"go.uber.org/zap"
)

const (
	liveWriteWait  = 10 * time.Second
	livePongWait   = 60 * time.Second
	livePingPeriod = livePongWait * 9 / 10
	liveMaxMessage = 1024
)

// CheckOrigin is left nil so the upgrader only accepts same-origin pages
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

// liveRequest is an inbound browser event
type liveRequest struct {
	Type  string `json:"type"` // "scroll", "resize", "menu", "navigate" or "state"
	Y     int    `json:"y,omitempty"`
	Width int    `json:"width,omitempty"`
	Path  string `json:"path,omitempty"`
}

// liveResponse is an outbound message. State is set for "state", Path for
// "navigate", Error for "error".
type liveResponse struct {
	Type  string            `json:"type"`
	State *session.Snapshot `json:"state,omitempty"`
	Path  string            `json:"path,omitempty"`
	Error string            `json:"error,omitempty"`
}

// WebSocketHandler streams the visitor's view state. Browser events come in
// as JSON messages; a snapshot goes out after every state change, including
// the timer-driven contact form transitions.
func (h *Handlers) WebSocketHandler(c *gin.Context) {
	s, ok := visitorSession(c)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Debug("websocket upgrade failed", zap.String("session", s.ID), zap.Error(err))
		return
	}

	lc := &liveConn{
		conn:    conn,
		session: s,
		log:     h.log.With(zap.String("session", s.ID)),
		changed: make(chan struct{}, 1),
		out:     make(chan liveResponse, 8),
		done:    make(chan struct{}),
	}
	lc.run()
}

type liveConn struct {
	conn    *websocket.Conn
	session *session.Session
	log     *zap.Logger
	changed chan struct{}
	out     chan liveResponse
	done    chan struct{}
}

func (lc *liveConn) run() {
	bus := lc.session.Bus()
	unsubs := []func(){
		bus.Subscribe(events.StateChanged, func(events.Event) {
			// Coalesce: one pending signal is enough, the writer sends the latest snapshot
			select {
			case lc.changed <- struct{}{}:
			default:
			}
		}),
		bus.Subscribe(events.NavigateRequested, func(e events.Event) {
			lc.enqueue(liveResponse{Type: "navigate", Path: e.Path})
		}),
	}
	defer func() {
		for _, unsub := range unsubs {
			unsub()
		}
	}()

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		lc.writeLoop()
	}()

	lc.readLoop()
	close(lc.done)
	<-writerDone
	lc.conn.Close()
}

func (lc *liveConn) readLoop() {
	lc.conn.SetReadLimit(liveMaxMessage)
	lc.conn.SetReadDeadline(time.Now().Add(livePongWait))
	lc.conn.SetPongHandler(func(string) error {
		return lc.conn.SetReadDeadline(time.Now().Add(livePongWait))
	})

	for {
		var req liveRequest
		if err := lc.conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				lc.log.Debug("websocket read", zap.Error(err))
			}
			return
		}
		if lc.session.Closed() {
			return
		}

		switch req.Type {
		case "scroll":
			lc.session.Dispatch(events.Event{Kind: events.Scrolled, Y: req.Y})
		case "resize":
			lc.session.Dispatch(events.Event{Kind: events.Resized, Width: req.Width})
		case "menu":
			lc.session.Dispatch(events.Event{Kind: events.MenuToggled})
		case "navigate":
			if req.Path == "" {
				lc.sendError("path is required")
				continue
			}
			lc.session.Navigate(safeReturnPath(req.Path))
		case "state":
			lc.session.Changed()
		default:
			lc.sendError("unknown message type: " + req.Type)
		}
	}
}

func (lc *liveConn) sendError(message string) {
	lc.enqueue(liveResponse{Type: "error", Error: message})
}

// enqueue hands msg to the writer without blocking the publisher
func (lc *liveConn) enqueue(msg liveResponse) {
	select {
	case lc.out <- msg:
	default:
		lc.log.Warn("dropping websocket message, writer is behind", zap.String("type", msg.Type))
	}
}

func (lc *liveConn) writeLoop() {
	ticker := time.NewTicker(livePingPeriod)
	defer ticker.Stop()

	// The page renders from the same state, but the socket may open after a
	// timer transition already fired
	if err := lc.write(lc.stateMessage()); err != nil {
		return
	}

	for {
		select {
		case <-lc.done:
			lc.conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
			lc.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case <-lc.changed:
			if err := lc.write(lc.stateMessage()); err != nil {
				return
			}
		case msg := <-lc.out:
			if err := lc.write(msg); err != nil {
				return
			}
		case <-ticker.C:
			if lc.session.Closed() {
				lc.conn.Close()
				return
			}
			lc.conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
			if err := lc.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				lc.conn.Close()
				return
			}
		}
	}
}

func (lc *liveConn) stateMessage() liveResponse {
	snap := lc.session.Snapshot()
	return liveResponse{Type: "state", State: &snap}
}

func (lc *liveConn) write(msg liveResponse) error {
	lc.conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
	if err := lc.conn.WriteJSON(msg); err != nil {
		lc.log.Debug("websocket write", zap.Error(err))
		// Unblock the reader so run can finish
		lc.conn.Close()
		return err
	}
	return nil
}

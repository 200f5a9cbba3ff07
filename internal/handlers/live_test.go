package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/temotunadze/lawfolio/internal/contact"
)

func dialLive(t *testing.T, site *testSite, v *visitor) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(site.router)
	t.Cleanup(srv.Close)

	header := http.Header{}
	for _, c := range v.cookies {
		header.Add("Cookie", c.Name+"="+c.Value)
	}

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ui/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if resp.StatusCode != http.StatusSwitchingProtocols {
		t.Fatalf("expected 101, got %d", resp.StatusCode)
	}
	return conn
}

// readUntil reads messages until match accepts one or the deadline passes
func readUntil(t *testing.T, conn *websocket.Conn, match func(liveResponse) bool) liveResponse {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	for {
		var msg liveResponse
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("read: %v", err)
		}
		if match(msg) {
			return msg
		}
	}
}

func isState(msg liveResponse) bool {
	return msg.Type == "state" && msg.State != nil
}

func TestLiveSendsInitialState(t *testing.T) {
	site := setupTestSite(t)
	v := site.newVisitor(t)
	v.get("/about")

	conn := dialLive(t, site, v)
	msg := readUntil(t, conn, isState)
	assert.Equal(t, "/about", msg.State.Nav.ActiveRoute)
}

func TestLiveScrollAndMenu(t *testing.T) {
	site := setupTestSite(t)
	v := site.newVisitor(t)
	conn := dialLive(t, site, v)
	readUntil(t, conn, isState)

	require.NoError(t, conn.WriteJSON(liveRequest{Type: "scroll", Y: 400}))
	msg := readUntil(t, conn, func(m liveResponse) bool {
		return isState(m) && m.State.ShowScrollTop
	})
	assert.True(t, msg.State.Nav.Scrolled)

	require.NoError(t, conn.WriteJSON(liveRequest{Type: "menu"}))
	readUntil(t, conn, func(m liveResponse) bool {
		return isState(m) && m.State.Nav.MenuOpen
	})

	// The HTTP side sees the same session
	assert.True(t, v.state().Nav.MenuOpen)
}

func TestLiveNavigateAsksBrowserToChangeLocation(t *testing.T) {
	site := setupTestSite(t)
	v := site.newVisitor(t)
	conn := dialLive(t, site, v)
	readUntil(t, conn, isState)

	require.NoError(t, conn.WriteJSON(liveRequest{Type: "navigate", Path: "/contact"}))
	msg := readUntil(t, conn, func(m liveResponse) bool { return m.Type == "navigate" })
	assert.Equal(t, "/contact", msg.Path)
	assert.Equal(t, "/contact", v.state().Nav.ActiveRoute)
}

func TestLiveRejectsUnknownMessage(t *testing.T) {
	site := setupTestSite(t)
	v := site.newVisitor(t)
	conn := dialLive(t, site, v)
	readUntil(t, conn, isState)

	require.NoError(t, conn.WriteJSON(liveRequest{Type: "teleport"}))
	msg := readUntil(t, conn, func(m liveResponse) bool { return m.Type == "error" })
	assert.Contains(t, msg.Error, "teleport")
}

func TestLivePushesContactTransitions(t *testing.T) {
	site := setupTestSite(t)
	v := site.newVisitor(t)
	conn := dialLive(t, site, v)
	readUntil(t, conn, isState)

	w := v.postForm("/contact", validContactForm())
	require.Equal(t, http.StatusSeeOther, w.Code)
	readUntil(t, conn, func(m liveResponse) bool {
		return isState(m) && m.State.Contact.Phase == contact.PhaseSubmitting
	})

	site.clock.Advance(1500 * time.Millisecond)
	readUntil(t, conn, func(m liveResponse) bool {
		return isState(m) && m.State.Contact.Phase == contact.PhaseSubmitted
	})

	site.clock.Advance(3 * time.Second)
	msg := readUntil(t, conn, func(m liveResponse) bool {
		return isState(m) && m.State.Contact.Phase == contact.PhaseIdle
	})
	assert.Equal(t, contact.Fields{}, msg.State.Contact.Fields)
}

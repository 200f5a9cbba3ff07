package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/temotunadze/lawfolio/internal/contact"
	"github.com/temotunadze/lawfolio/internal/content"
	"github.com/temotunadze/lawfolio/internal/db"
	"github.com/temotunadze/lawfolio/internal/middleware"
	"github.com/temotunadze/lawfolio/internal/schedule"
	"github.com/temotunadze/lawfolio/internal/session"
	"github.com/temotunadze/lawfolio/internal/ui"
)

type testSite struct {
	router http.Handler
	store  *session.Store
	clock  *schedule.Manual
}

func setupTestSite(t *testing.T, blocked ...string) *testSite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conn, err := db.Open("sqlite", ":memory:")
	require.NoError(t, err)
	_, err = content.Seed(conn)
	require.NoError(t, err)
	portfolio, err := content.Load(conn, nil)
	require.NoError(t, err)

	clock := schedule.NewManual()
	store := session.NewStore(session.StoreConfig{
		Session: session.Options{
			Links: portfolio.NavbarLinks(),
			Nav:   ui.NavOptions{ScrollThreshold: 20, Breakpoint: 768},
			Contact: contact.Options{
				SubmitDelay: 1500 * time.Millisecond,
				ResetDelay:  3 * time.Second,
				Scheduler:   clock,
			},
			ScrollTopThreshold: 300,
		},
	})
	t.Cleanup(store.Close)

	tokens, err := session.NewTokens("test-secret", time.Hour)
	require.NoError(t, err)

	limiter := middleware.NewRateLimiter(100, time.Minute)
	t.Cleanup(limiter.Stop)

	r := NewRouter(Config{
		Portfolio:   portfolio,
		Sessions:    store,
		Tokens:      tokens,
		RateLimiter: limiter,
		Palette:     "gold",
		DarkMode:    true,
		AssetsDir:   t.TempDir(),
		BlockedIPs:  blocked,
	})

	return &testSite{router: r, store: store, clock: clock}
}

// visitor is a browser with a cookie jar
type visitor struct {
	t       *testing.T
	site    *testSite
	cookies map[string]*http.Cookie
}

func (s *testSite) newVisitor(t *testing.T) *visitor {
	v := &visitor{t: t, site: s, cookies: map[string]*http.Cookie{}}
	// First page view issues the session and CSRF cookies
	w := v.get("/")
	require.Equal(t, http.StatusOK, w.Code)
	return v
}

func (v *visitor) do(req *http.Request) *httptest.ResponseRecorder {
	v.t.Helper()
	for _, c := range v.cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	v.site.router.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		v.cookies[c.Name] = c
	}
	return w
}

func (v *visitor) get(path string) *httptest.ResponseRecorder {
	return v.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (v *visitor) csrf() string {
	if c, ok := v.cookies["csrf_token"]; ok {
		return c.Value
	}
	return ""
}

func (v *visitor) postJSON(path string, body interface{}) *httptest.ResponseRecorder {
	v.t.Helper()
	var buf io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(v.t, err)
		buf = bytes.NewReader(data)
	}
	req := httptest.NewRequest(http.MethodPost, path, buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-CSRF-Token", v.csrf())
	return v.do(req)
}

func (v *visitor) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	form.Set("csrf_token", v.csrf())
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return v.do(req)
}

func (v *visitor) state() session.Snapshot {
	v.t.Helper()
	w := v.get("/ui/state")
	require.Equal(v.t, http.StatusOK, w.Code)
	return decodeSnapshot(v.t, w.Body.Bytes())
}

func decodeSnapshot(t *testing.T, body []byte) session.Snapshot {
	t.Helper()
	var snap session.Snapshot
	require.NoError(t, json.Unmarshal(body, &snap))
	return snap
}

func activeLinks(snap session.Snapshot) []string {
	var out []string
	for _, l := range snap.Nav.Links {
		if l.Active {
			out = append(out, l.Href)
		}
	}
	return out
}

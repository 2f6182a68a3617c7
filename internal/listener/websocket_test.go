package listener

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pixil98/go-testutil"

	"github.com/pixil98/go-oceania/internal/protocol"
	"github.com/pixil98/go-oceania/internal/session"
	"github.com/pixil98/go-oceania/internal/telemetry"
)

type recordingGame struct {
	mu    sync.Mutex
	joins []uuid.UUID
}

func (g *recordingGame) Submit(id uuid.UUID, intent protocol.Intent) error { return nil }

func (g *recordingGame) Join(id uuid.UUID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.joins = append(g.joins, id)
	return nil
}

func (g *recordingGame) Leave(id uuid.UUID) error { return nil }

func (g *recordingGame) joined() []uuid.UUID {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]uuid.UUID(nil), g.joins...)
}

type nopSubscriber struct{}

func (nopSubscriber) Subscribe(subject string, handler func(data []byte)) (func(), error) {
	return func() {}, nil
}

func testListener(t *testing.T) (*WebsocketListener, *recordingGame, *session.Manager, *httptest.Server) {
	t.Helper()

	game := &recordingGame{}
	metrics := telemetry.NewMetrics()
	sessions := session.NewManager(metrics)
	l := NewWebsocketListener(0, game, nopSubscriber{}, sessions, metrics)

	srv := httptest.NewServer(http.HandlerFunc(l.handleWs))
	t.Cleanup(srv.Close)
	return l, game, sessions, srv
}

func wsURL(srv *httptest.Server, query string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + query
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}

func TestWebsocketListener_AssignsFreshIdentity(t *testing.T) {
	_, game, sessions, srv := testListener(t)

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, ""), nil)
	if err != nil {
		t.Fatalf("dialing: %v", err)
	}
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })

	waitFor(t, func() bool { return len(game.joined()) == 1 }, "join never queued")
	waitFor(t, func() bool { return sessions.Count() == 1 }, "session never registered")

	if game.joined()[0] == uuid.Nil {
		t.Error("expected a non-nil generated identity")
	}
}

func TestWebsocketListener_ResumesPresentedIdentity(t *testing.T) {
	_, game, _, srv := testListener(t)
	id := uuid.New()

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, "?id="+id.String()), nil)
	if err != nil {
		t.Fatalf("dialing: %v", err)
	}
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })

	waitFor(t, func() bool { return len(game.joined()) == 1 }, "join never queued")
	testutil.AssertEqual(t, "identity", game.joined()[0], id)
}

func TestWebsocketListener_RejectsMalformedIdentity(t *testing.T) {
	_, game, _, srv := testListener(t)

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, "?id=not-a-uuid"), nil)
	if err == nil {
		t.Fatal("expected the dial to be rejected")
	}
	if resp != nil {
		defer resp.Body.Close()
		testutil.AssertEqual(t, "status", resp.StatusCode, http.StatusBadRequest)
	}
	testutil.AssertEqual(t, "joins", len(game.joined()), 0)
}

func TestWebsocketListener_SessionRemovedOnDisconnect(t *testing.T) {
	_, _, sessions, srv := testListener(t)

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, ""), nil)
	if err != nil {
		t.Fatalf("dialing: %v", err)
	}
	if resp != nil {
		resp.Body.Close()
	}

	waitFor(t, func() bool { return sessions.Count() == 1 }, "session never registered")

	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	conn.Close()

	waitFor(t, func() bool { return sessions.Count() == 0 }, "session never removed")
}

package listener

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pixil98/go-log"

	"github.com/pixil98/go-oceania/internal/session"
	"github.com/pixil98/go-oceania/internal/telemetry"
)

// WebsocketListener serves the game endpoint plus metrics and health over
// one HTTP port. Each upgraded connection becomes a session; a client may
// present its previous identity as ?id= to resume after a disconnect.
type WebsocketListener struct {
	port     uint16
	game     session.Game
	sub      session.Subscriber
	sessions *session.Manager
	metrics  *telemetry.Metrics

	upgrader websocket.Upgrader
}

func NewWebsocketListener(port uint16, game session.Game, sub session.Subscriber, sessions *session.Manager, metrics *telemetry.Metrics) *WebsocketListener {
	return &WebsocketListener{
		port:     port,
		game:     game,
		sub:      sub,
		sessions: sessions,
		metrics:  metrics,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func (l *WebsocketListener) Start(ctx context.Context) error {
	// Connections share one context so shutdown cancels them together.
	connCtx, cancelConns := context.WithCancel(context.Background())
	defer cancelConns()
	connCtx = log.SetLogger(connCtx, log.GetLogger(ctx))

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", l.handleWs)
	mux.Handle("/metrics", l.metrics.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	svr := &http.Server{
		Addr:    fmt.Sprintf(":%d", l.port),
		Handler: mux,
		BaseContext: func(net.Listener) context.Context {
			return connCtx
		},
	}

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			svr.Shutdown(shutdownCtx)
			cancelConns()
		case <-done:
		}
	}()

	log.GetLogger(ctx).Infof("listening for websocket clients on port %d", l.port)
	err := svr.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		if errors.Is(err, syscall.EADDRINUSE) {
			return fmt.Errorf("port %d is already in use (another server running?)", l.port)
		}
		return fmt.Errorf("serving websocket on port %d: %w", l.port, err)
	}

	return nil
}

func (l *WebsocketListener) handleWs(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger(r.Context())

	id := uuid.New()
	if raw := r.URL.Query().Get("id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		id = parsed
	}

	conn, err := l.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.WithError(err).Warn("upgrading connection")
		return
	}

	s := session.New(id, conn, l.game, l.sub)
	l.sessions.Add(s)
	defer l.sessions.Remove(s)

	if err := s.Serve(r.Context()); err != nil {
		logger.WithError(err).Errorf("session for %s", id)
	}
}

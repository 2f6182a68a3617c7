package session

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pixil98/go-log"

	"github.com/pixil98/go-oceania/internal/messaging"
	"github.com/pixil98/go-oceania/internal/protocol"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096

	// outboundSize bounds the per-session send queue. A client that falls
	// this many snapshots behind is disconnected rather than allowed to
	// stall the fan-out.
	outboundSize = 64
)

// Game is the engine surface a session needs: a queue for intents and the
// join/leave lifecycle notifications.
type Game interface {
	Submit(id uuid.UUID, intent protocol.Intent) error
	Join(id uuid.UUID) error
	Leave(id uuid.UUID) error
}

// Subscriber provides per-player event subscriptions. It is satisfied by
// the embedded NATS server.
type Subscriber interface {
	Subscribe(subject string, handler func(data []byte)) (func(), error)
}

// Session owns one websocket connection. Inbound messages become intents on
// the engine queue; outbound events arrive from the broadcast fan-out and
// the player's own subject, and drain through a single writer goroutine.
type Session struct {
	id         uuid.UUID
	conn       *websocket.Conn
	game       Game
	subscriber Subscriber

	outbound  chan []byte
	closed    chan struct{}
	closeOnce sync.Once

	// replaced is set when another session takes over this identity. A
	// replaced session tears down without queueing a leave, which would
	// otherwise evict the live session's character.
	replaced atomic.Bool
}

func New(id uuid.UUID, conn *websocket.Conn, game Game, sub Subscriber) *Session {
	return &Session{
		id:         id,
		conn:       conn,
		game:       game,
		subscriber: sub,
		outbound:   make(chan []byte, outboundSize),
		closed:     make(chan struct{}),
	}
}

// ID returns the session's player identity.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Send queues an encoded event for the client. It never blocks; a session
// whose queue is full is closed as a slow consumer.
func (s *Session) Send(payload []byte) {
	select {
	case <-s.closed:
	case s.outbound <- payload:
	default:
		s.close()
	}
}

func (s *Session) close() {
	s.closeOnce.Do(func() {
		close(s.closed)
	})
}

// Serve runs the session until the client disconnects, the context is
// cancelled, or the session is closed as a slow consumer. It subscribes to
// the identity's player subject, announces the join, and queues the leave
// on the way out.
func (s *Session) Serve(ctx context.Context) error {
	logger := log.GetLogger(ctx).WithField("player", s.id)

	unsubscribe, err := s.subscriber.Subscribe(messaging.PlayerSubject(s.id), s.Send)
	if err != nil {
		return err
	}
	defer unsubscribe()

	if err := s.game.Join(s.id); err != nil {
		return err
	}
	defer func() {
		if s.replaced.Load() {
			return
		}
		if err := s.game.Leave(s.id); err != nil {
			logger.WithError(err).Error("queueing leave")
		}
	}()

	go s.writePump(ctx)
	s.readPump(ctx)
	s.close()
	return nil
}

func (s *Session) readPump(ctx context.Context) {
	logger := log.GetLogger(ctx).WithField("player", s.id)

	s.conn.SetReadLimit(maxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, payload, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.WithError(err).Warn("reading message")
			}
			return
		}

		intent, err := protocol.DecodeIntent(payload)
		if err != nil {
			if errors.Is(err, protocol.ErrUnknownIntent) {
				logger.WithError(err).Debug("dropping unknown intent")
			} else {
				logger.WithError(err).Warn("dropping malformed message")
			}
			continue
		}

		if err := s.game.Submit(s.id, intent); err != nil {
			s.sendError("The server is overloaded. Try again in a moment.")
		}
	}
}

func (s *Session) writePump(ctx context.Context) {
	logger := log.GetLogger(ctx).WithField("player", s.id)

	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.closed:
			s.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
			return
		case payload := <-s.outbound:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				logger.WithError(err).Debug("writing message")
				s.close()
				return
			}
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.close()
				return
			}
		}
	}
}

func (s *Session) sendError(text string) {
	data, err := protocol.EncodeEvent(&protocol.ErrorEvent{Text: text})
	if err != nil {
		return
	}
	s.Send(data)
}

package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/pixil98/go-log"

	"github.com/pixil98/go-oceania/internal/game"
	"github.com/pixil98/go-oceania/internal/messaging"
	"github.com/pixil98/go-oceania/internal/protocol"
	"github.com/pixil98/go-oceania/internal/resolver"
	"github.com/pixil98/go-oceania/internal/telemetry"
)

const (
	DefaultTickInterval = 50 * time.Millisecond
	DefaultTicksPerDay  = 2400
	DefaultQueueSize    = 1024
)

// Broadcaster fans encoded events out to connected sessions. Implementations
// must not block the caller; the engine hands over immutable byte slices and
// moves on. SendTo and Broadcast to the same session must preserve call
// order, which is what makes the welcome the first message a client sees.
type Broadcaster interface {
	Broadcast(payload []byte)
	BroadcastExcept(id uuid.UUID, payload []byte)
	SendTo(id uuid.UUID, payload []byte) bool
}

type messageKind int

const (
	msgIntent messageKind = iota
	msgJoin
	msgLeave
)

type message struct {
	kind   messageKind
	id     uuid.UUID
	intent protocol.Intent
}

// Engine owns the authoritative game state and is its only writer. Sessions
// submit intents onto a bounded queue; the fixed-interval tick drains the
// queue, resolves each intent in arrival order, advances the flight
// simulation, and broadcasts one snapshot.
type Engine struct {
	state     *game.State
	resolver  *resolver.Resolver
	publisher messaging.Publisher
	sessions  Broadcaster
	metrics   *telemetry.Metrics
	rng       *rand.Rand

	queue        chan message
	queueSize    int
	tickInterval time.Duration
	ticksPerDay  int
	tickCount    int

	// persistCharacters keeps a character in the world after its session
	// leaves, so a client reconnecting with the same identity resumes it.
	// End states always remove the character regardless.
	persistCharacters bool
}

func New(state *game.State, res *resolver.Resolver, pub messaging.Publisher, sessions Broadcaster, metrics *telemetry.Metrics, rng *rand.Rand, opts ...EngineOpt) *Engine {
	e := &Engine{
		state:        state,
		resolver:     res,
		publisher:    pub,
		sessions:     sessions,
		metrics:      metrics,
		rng:          rng,
		queueSize:    DefaultQueueSize,
		tickInterval: DefaultTickInterval,
		ticksPerDay:  DefaultTicksPerDay,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.queue = make(chan message, e.queueSize)
	return e
}

// Submit queues one intent for the identity. It never blocks; when the
// queue is full the intent is dropped and an error returned so the session
// can tell the client.
func (e *Engine) Submit(id uuid.UUID, intent protocol.Intent) error {
	select {
	case e.queue <- message{kind: msgIntent, id: id, intent: intent}:
		return nil
	default:
		return fmt.Errorf("intent queue full, dropping %q", intent.IntentKind())
	}
}

// Join announces a new session. The engine answers with a welcome event
// carrying the current snapshot, delivered straight to the session ahead of
// the same tick's broadcast.
func (e *Engine) Join(id uuid.UUID) error {
	select {
	case e.queue <- message{kind: msgJoin, id: id}:
		return nil
	default:
		return errors.New("intent queue full, dropping join")
	}
}

// Leave retires a session's identity. Whether the character is removed
// depends on the configured persistence policy.
func (e *Engine) Leave(id uuid.UUID) error {
	select {
	case e.queue <- message{kind: msgLeave, id: id}:
		return nil
	default:
		return errors.New("intent queue full, dropping leave")
	}
}

// Start runs the tick loop until the context is cancelled.
func (e *Engine) Start(ctx context.Context) error {
	ticker := time.NewTicker(e.tickInterval)
	defer ticker.Stop()

	log.GetLogger(ctx).Infof("engine ticking every %s", e.tickInterval)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			start := time.Now()
			e.Tick(ctx)
			elapsed := time.Since(start)

			e.metrics.TickDuration.Observe(elapsed.Seconds())
			if elapsed > e.tickInterval {
				e.metrics.SlowTicks.Inc()
				log.GetLogger(ctx).Warnf("slow tick: %s of work in a %s interval", elapsed, e.tickInterval)
			}
		}
	}
}

// Tick performs one full simulation step. Exported so tests can drive the
// engine without real time.
func (e *Engine) Tick(ctx context.Context) {
	logger := log.GetLogger(ctx)

	var leaves, removals []uuid.UUID

	// Only messages already queued at tick start are drained, so a chatty
	// client cannot stall the tick.
	pending := len(e.queue)
	for i := 0; i < pending; i++ {
		msg := <-e.queue
		switch msg.kind {
		case msgJoin:
			e.handleJoin(ctx, msg.id)
		case msgLeave:
			leaves = append(leaves, msg.id)
		case msgIntent:
			if removed := e.handleIntent(ctx, msg.id, msg.intent); removed {
				removals = append(removals, msg.id)
			}
		}
	}

	e.state.StepCrafts(e.tickInterval.Seconds())
	removals = append(removals, e.advanceCalendar(ctx)...)

	for _, id := range leaves {
		if e.persistCharacters {
			if e.state.Character(id) != nil {
				e.emitBroadcast(ctx, &protocol.PlayerLeft{PlayerID: id.String()}, id)
			}
			continue
		}
		removals = append(removals, id)
	}
	for _, id := range removals {
		if e.state.Remove(id) {
			e.emitBroadcast(ctx, &protocol.PlayerLeft{PlayerID: id.String()}, id)
		}
	}

	snap, err := protocol.EncodeEvent(&protocol.GameStateUpdate{Snapshot: e.state.Snapshot()})
	if err != nil {
		logger.WithError(err).Error("encoding snapshot")
		return
	}
	e.sessions.Broadcast(snap)
}

func (e *Engine) handleJoin(ctx context.Context, id uuid.UUID) {
	welcome, err := protocol.EncodeEvent(&protocol.Welcome{
		PlayerID:        id.String(),
		InitialSnapshot: e.state.Snapshot(),
	})
	if err != nil {
		log.GetLogger(ctx).WithError(err).Error("encoding welcome")
		return
	}

	// Direct delivery, not the player subject: the session's outbound queue
	// orders the welcome ahead of this tick's snapshot broadcast, which the
	// async publish path cannot guarantee.
	if !e.sessions.SendTo(id, welcome) {
		log.GetLogger(ctx).Debugf("joining player %s has no session", id)
	}
}

// handleIntent resolves one intent, routing narrative and errors back to the
// originating identity. It reports whether the character reached an end
// state and must be removed.
func (e *Engine) handleIntent(ctx context.Context, id uuid.UUID, intent protocol.Intent) bool {
	logger := log.GetLogger(ctx)
	e.metrics.Intents.WithLabelValues(intent.IntentKind()).Inc()

	result, err := e.resolver.Resolve(e.state, id, intent)
	if err != nil {
		var uerr *resolver.UserError
		if errors.As(err, &uerr) {
			e.emitToPlayer(ctx, id, &protocol.ErrorEvent{Text: uerr.Message})
		} else {
			logger.WithError(err).Errorf("resolving %q for %s", intent.IntentKind(), id)
		}
		return false
	}

	for _, ev := range result.ToSender {
		e.emitToPlayer(ctx, id, ev)
	}
	for _, ev := range result.ToOthers {
		e.emitBroadcast(ctx, ev, id)
	}

	return result.RemoveCharacter
}

// advanceCalendar moves Oceania's ambient clock. Day rollovers bring the
// Ministry of Plenty's announcements, occasionally a change of enemy, and
// occasionally a patrol sweep. It returns the identities of characters an
// ambient event pushed to an end state.
func (e *Engine) advanceCalendar(ctx context.Context) []uuid.UUID {
	e.tickCount++
	if e.tickCount%e.ticksPerDay != 0 {
		return nil
	}

	e.state.Day++

	var arrested []uuid.UUID
	switch e.rng.Intn(10) {
	case 0:
		e.state.ChocolateRation -= 5
		if e.state.ChocolateRation < 5 {
			e.state.ChocolateRation = 5
		}
		e.emitBroadcastAll(ctx, &protocol.NarrativeUpdate{
			Text: fmt.Sprintf("The telescreens announce that the chocolate ration has been raised to %d grammes a week.", e.state.ChocolateRation),
		})
	case 1:
		if e.state.CurrentEnemy == "Eurasia" {
			e.state.CurrentEnemy = "Eastasia"
		} else {
			e.state.CurrentEnemy = "Eurasia"
		}
		e.emitBroadcastAll(ctx, &protocol.NarrativeUpdate{
			Text: fmt.Sprintf("Oceania is at war with %s. Oceania has always been at war with %s.", e.state.CurrentEnemy, e.state.CurrentEnemy),
		})
	case 2:
		// Patrol sweep: anyone caught in an unwatched district looks like
		// they had a reason to be there.
		e.state.ForEachCharacter(func(id uuid.UUID, c *game.Character) {
			loc := e.state.World().Location(c.Location)
			if loc == nil || loc.Safety > 1 {
				return
			}
			c.Suspicion = c.Suspicion.Add(3)
			if c.Arrested() {
				arrested = append(arrested, id)
				e.emitToPlayer(ctx, id, &protocol.NarrativeUpdate{
					Text: "The patrol stops. The officers already know your name. There is a van waiting.",
				})
				return
			}
			e.emitToPlayer(ctx, id, &protocol.NarrativeUpdate{
				Text: "A patrol sweeps through. The officers note your presence before moving on.",
			})
		})
		e.emitBroadcastAll(ctx, &protocol.NarrativeUpdate{
			Text: "Patrols are out in force across Airstrip One today.",
		})
	default:
		e.emitBroadcastAll(ctx, &protocol.NarrativeUpdate{
			Text: fmt.Sprintf("Day %d dawns over Airstrip One. The telescreens report another glorious victory on the Malabar front.", e.state.Day),
		})
	}

	return arrested
}

func (e *Engine) emitToPlayer(ctx context.Context, id uuid.UUID, ev protocol.Event) {
	data, err := protocol.EncodeEvent(ev)
	if err != nil {
		log.GetLogger(ctx).WithError(err).Errorf("encoding %s event", ev.EventKind())
		return
	}
	if err := e.publisher.PublishToPlayer(id, data); err != nil {
		log.GetLogger(ctx).WithError(err).Errorf("publishing %s event to %s", ev.EventKind(), id)
	}
}

func (e *Engine) emitBroadcast(ctx context.Context, ev protocol.Event, except uuid.UUID) {
	data, err := protocol.EncodeEvent(ev)
	if err != nil {
		log.GetLogger(ctx).WithError(err).Errorf("encoding %s event", ev.EventKind())
		return
	}
	e.sessions.BroadcastExcept(except, data)
}

func (e *Engine) emitBroadcastAll(ctx context.Context, ev protocol.Event) {
	data, err := protocol.EncodeEvent(ev)
	if err != nil {
		log.GetLogger(ctx).WithError(err).Errorf("encoding %s event", ev.EventKind())
		return
	}
	e.sessions.Broadcast(data)
}

package command

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pixil98/go-oceania/internal/engine"
	"github.com/pixil98/go-oceania/internal/game"
	"github.com/pixil98/go-oceania/internal/listener"
	"github.com/pixil98/go-oceania/internal/messaging"
	"github.com/pixil98/go-oceania/internal/resolver"
	"github.com/pixil98/go-oceania/internal/session"
	"github.com/pixil98/go-oceania/internal/storage"
	"github.com/pixil98/go-oceania/internal/telemetry"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Load world content
	w, err := cfg.Storage.BuildWorld()
	if err != nil {
		return nil, fmt.Errorf("building world: %w", err)
	}

	start := storage.Identifier(cfg.Game.StartLocation)
	if w.Location(start) == nil {
		return nil, fmt.Errorf("start_location %q not found in world content", start)
	}

	// Create the embedded nats server
	natsServer, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	metrics := telemetry.NewMetrics()
	sessions := session.NewManager(metrics)
	state := game.NewState(w)
	res := resolver.New(w, rand.New(rand.NewSource(seed)), start)

	opts, err := cfg.Game.engineOpts()
	if err != nil {
		return nil, fmt.Errorf("building engine options: %w", err)
	}
	eng := engine.New(state, res, messaging.NewNatsPublisher(natsServer), sessions, metrics, rand.New(rand.NewSource(seed+1)), opts...)

	ws := listener.NewWebsocketListener(cfg.Listener.Port, eng, natsServer, sessions, metrics)

	return service.WorkerList{
		"nats":     natsServer,
		"engine":   eng,
		"listener": ws,
	}, nil
}

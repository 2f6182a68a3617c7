package messaging

import (
	"fmt"

	"github.com/google/uuid"
)

// Publisher delivers encoded server events to player subjects. The engine
// publishes; each session subscribes to its own identity's subject for the
// lifetime of its connection.
type Publisher interface {
	PublishToPlayer(id uuid.UUID, data []byte) error
}

// PlayerSubject names the per-identity event subject.
func PlayerSubject(id uuid.UUID) string {
	return fmt.Sprintf("player.%s", id)
}

// NatsPublisher routes per-player events through the embedded NATS server.
type NatsPublisher struct {
	server *NatsServer
}

func NewNatsPublisher(server *NatsServer) *NatsPublisher {
	return &NatsPublisher{server: server}
}

func (p *NatsPublisher) PublishToPlayer(id uuid.UUID, data []byte) error {
	return p.server.Publish(PlayerSubject(id), data)
}

package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

func ConnectToNats(url string, name string) (*nats.Conn, error) {
	return nats.Connect(
		url,
		nats.Name(name),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
}

// Subject is the NATS subject events of a kind are published on.
func Subject(prefix string, event Event) string {
	return prefix + "." + string(event.Kind)
}

type NatsNotifier struct {
	conn   *nats.Conn
	prefix string
}

func NewNatsNotifier(conn *nats.Conn, prefix string) *NatsNotifier {
	return &NatsNotifier{conn: conn, prefix: prefix}
}

func (n *NatsNotifier) Name() string { return "nats" }

func (n *NatsNotifier) Notify(_ context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := nats.NewMsg(Subject(n.prefix, event))
	msg.Data = data
	msg.Header.Set(nats.MsgIdHdr, event.DeliveryId)
	if err := n.conn.PublishMsg(msg); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", msg.Subject, err)
	}
	return nil
}

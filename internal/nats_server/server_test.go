package nats_server

import (
	"context"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/require"

	"github.com/TheSnakeWitcher/vesting-manager/apiconfig"
	"github.com/TheSnakeWitcher/vesting-manager/notify"
	"github.com/TheSnakeWitcher/vesting-manager/x/vesting/types"
)

func startTestServer(t *testing.T) NatsServer {
	t.Helper()
	srv := NewServer(apiconfig.NatsServerConfig{
		Enabled:  true,
		Host:     "127.0.0.1",
		Port:     -1,
		TestMode: true,
	}, "vesting")
	require.NoError(t, srv.Start())
	t.Cleanup(srv.Shutdown)
	return srv
}

func TestStreamName(t *testing.T) {
	require.Equal(t, "VESTING_EVENTS", StreamName("vesting"))
	require.Equal(t, "ACME_VESTING_EVENTS", StreamName("acme.vesting"))
}

func TestServer_StreamCapturesNotifications(t *testing.T) {
	srv := startTestServer(t)

	conn, err := notify.ConnectToNats(srv.ClientURL(), "test")
	require.NoError(t, err)
	defer conn.Close()

	notifier := notify.NewNatsNotifier(conn, "vesting")
	event := notify.Event{Kind: types.Created, PeriodId: 1, TxHash: "AB", DeliveryId: "d-1"}
	require.NoError(t, notifier.Notify(context.Background(), event))
	// same delivery id is dropped by the stream's duplicate window
	require.NoError(t, notifier.Notify(context.Background(), event))
	require.NoError(t, notifier.Notify(context.Background(), notify.Event{Kind: types.Ended, PeriodId: 1, DeliveryId: "d-2"}))
	require.NoError(t, conn.Flush())

	js, err := conn.JetStream()
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		info, err := js.StreamInfo(StreamName("vesting"))
		return err == nil && info.State.Msgs == 2
	}, 5*time.Second, 50*time.Millisecond)

	sub, err := js.SubscribeSync("vesting.created", nats.DeliverAll())
	require.NoError(t, err)
	msg, err := sub.NextMsg(2 * time.Second)
	require.NoError(t, err)
	require.Contains(t, string(msg.Data), `"tx":"AB"`)
}

func TestServer_CreateEventStreamIsIdempotent(t *testing.T) {
	srv := startTestServer(t).(*server)
	require.NoError(t, srv.createEventStream())
}

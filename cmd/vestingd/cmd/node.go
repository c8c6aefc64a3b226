package cmd

import (
	"context"
	"fmt"
	"os"

	"cosmossdk.io/log"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/TheSnakeWitcher/vesting-manager/apiconfig"
	"github.com/TheSnakeWitcher/vesting-manager/app"
	"github.com/TheSnakeWitcher/vesting-manager/internal/nats_server"
	adminserver "github.com/TheSnakeWitcher/vesting-manager/internal/server/admin"
	pserver "github.com/TheSnakeWitcher/vesting-manager/internal/server/public"
	"github.com/TheSnakeWitcher/vesting-manager/logging"
	"github.com/TheSnakeWitcher/vesting-manager/notify"
)

const natsClientName = "vestingd"

// node is a running vestingd process: state host, notification pipeline and both APIs.
type node struct {
	app          *app.App
	dispatcher   *notify.Dispatcher
	natsServer   nats_server.NatsServer
	natsConn     *nats.Conn
	publicServer *pserver.Server
	adminServer  *adminserver.Server
}

func startNode(ctx context.Context, config apiconfig.Config) (_ *node, err error) {
	n := &node{}
	defer func() {
		if err != nil {
			n.stop(context.Background())
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	metrics, err := notify.NewMetricsNotifier(registry)
	if err != nil {
		return nil, err
	}
	sinks := []notify.Notifier{notify.LogNotifier{}, metrics}

	natsUrl := config.Notifications.NatsUrl
	if config.NatsServer.Enabled {
		n.natsServer = nats_server.NewServer(config.NatsServer, config.Notifications.NatsSubjectPrefix)
		if err := n.natsServer.Start(); err != nil {
			return nil, err
		}
		if natsUrl == "" {
			natsUrl = n.natsServer.ClientURL()
		}
	}
	if natsUrl != "" {
		n.natsConn, err = notify.ConnectToNats(natsUrl, natsClientName)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to nats at %s: %w", natsUrl, err)
		}
		sinks = append(sinks, notify.NewNatsNotifier(n.natsConn, config.Notifications.NatsSubjectPrefix))
	}
	if config.Notifications.WebhookUrl != "" {
		sinks = append(sinks, notify.NewWebhookNotifier(config.Notifications.WebhookUrl, config.Notifications.WebhookTimeout))
	}

	n.dispatcher = notify.NewDispatcher(sinks...)
	n.dispatcher.Start(ctx)

	n.app, err = app.New(app.Options{
		ChainId:    config.Chain.ChainId,
		Admin:      config.Chain.Admin,
		DataDir:    config.Chain.DataDir,
		Logger:     log.NewLogger(os.Stdout, log.OutputJSONOption()),
		Dispatcher: n.dispatcher,
	})
	if err != nil {
		return nil, err
	}

	if !n.app.Initialized() {
		genesis, err := app.LoadGenesisFile(config.Chain.GenesisFile)
		if err != nil {
			return nil, err
		}
		if err := n.app.InitChain(*genesis); err != nil {
			return nil, err
		}
		logging.Info("Initialized chain from genesis", logging.App, "chain_id", config.Chain.ChainId, "genesis", config.Chain.GenesisFile)
	}

	n.publicServer = pserver.NewServer(n.app, registry)
	n.publicServer.Start(config.Api.PublicAddr())
	n.adminServer = adminserver.NewServer(n.app)
	n.adminServer.Start(config.Api.AdminAddr())

	status := n.app.Status()
	logging.Info("Node started", logging.App,
		"chain_id", status.ChainId,
		"height", status.Height,
		"admin", status.Admin,
		"public_addr", config.Api.PublicAddr(),
		"admin_addr", config.Api.AdminAddr(),
		"sinks", len(sinks),
	)
	return n, nil
}

// stop shuts the APIs first so no transaction lands after the dispatcher is drained.
func (n *node) stop(ctx context.Context) {
	if n.publicServer != nil {
		if err := n.publicServer.Shutdown(ctx); err != nil {
			logging.Warn("Failed to stop public server", logging.Server, "error", err)
		}
	}
	if n.adminServer != nil {
		if err := n.adminServer.Shutdown(ctx); err != nil {
			logging.Warn("Failed to stop admin server", logging.Admin, "error", err)
		}
	}
	if n.dispatcher != nil {
		n.dispatcher.Close()
	}
	if n.natsConn != nil {
		if err := n.natsConn.Drain(); err != nil {
			n.natsConn.Close()
		}
	}
	if n.natsServer != nil {
		n.natsServer.Shutdown()
	}
	if n.app != nil {
		if err := n.app.Close(); err != nil {
			logging.Error("Failed to close state", logging.App, "error", err)
		}
	}
}

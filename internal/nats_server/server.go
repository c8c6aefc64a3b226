package nats_server

import (
	"strings"
	"time"

	natssrv "github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"

	"github.com/TheSnakeWitcher/vesting-manager/apiconfig"
	"github.com/TheSnakeWitcher/vesting-manager/logging"
)

const readyAttempts = 3

type NatsServer interface {
	Start() error
	ClientURL() string
	Shutdown()
}

type server struct {
	conf          apiconfig.NatsServerConfig
	subjectPrefix string
	ns            *natssrv.Server
}

// NewServer returns an embedded JetStream server that keeps a stream over subjectPrefix.>
func NewServer(config apiconfig.NatsServerConfig, subjectPrefix string) NatsServer {
	return &server{
		conf:          config,
		subjectPrefix: subjectPrefix,
	}
}

// StreamName is the JetStream stream holding lifecycle events published under prefix.
func StreamName(prefix string) string {
	return strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(prefix)) + "_EVENTS"
}

func (s *server) Start() error {
	logging.Info("starting nats server", logging.Nats,
		"port", s.conf.Port,
		"host", s.conf.Host,
		"test_mode", s.conf.TestMode,
		"storage_dir", s.conf.StorageDir,
	)

	opts := &natssrv.Options{
		Host:      s.conf.Host,
		Port:      s.conf.Port,
		JetStream: true,
		NoSigs:    true,
	}

	if s.conf.TestMode {
		logging.Info("ignore storage dir, nats running in test mode", logging.Nats)
	} else {
		opts.StoreDir = s.conf.StorageDir
	}

	ns, err := natssrv.NewServer(opts)
	if err != nil {
		return errors.Wrap(err, "failed to create NATS server")
	}

	s.ns = ns
	go ns.Start()

	for i := 0; i < readyAttempts; i++ {
		if ns.ReadyForConnections(2 * time.Second) {
			break
		}
		if i == readyAttempts-1 {
			ns.Shutdown()
			return errors.Errorf("NATS server not ready after %d attempts", readyAttempts)
		}
	}

	return s.createEventStream()
}

func (s *server) ClientURL() string {
	if s.ns == nil {
		return ""
	}
	return s.ns.ClientURL()
}

func (s *server) Shutdown() {
	if s.ns == nil {
		return
	}
	s.ns.Shutdown()
	s.ns.WaitForShutdown()
}

func (s *server) createEventStream() error {
	nc, err := nats.Connect(s.ns.ClientURL())
	if err != nil {
		return errors.Wrap(err, "failed to connect to embedded NATS")
	}
	defer nc.Close()

	js, err := nc.JetStream()
	if err != nil {
		return errors.Wrap(err, "failed to get JetStream context")
	}

	storage := nats.FileStorage
	if s.conf.TestMode {
		storage = nats.MemoryStorage
	}
	name := StreamName(s.subjectPrefix)
	_, err = js.AddStream(&nats.StreamConfig{
		Name:       name,
		Subjects:   []string{s.subjectPrefix + ".>"},
		Storage:    storage,
		Duplicates: 2 * time.Minute,
	})
	if err != nil && !errors.Is(err, nats.ErrStreamNameAlreadyInUse) {
		return errors.Wrap(err, "failed to add stream "+name)
	}
	return nil
}

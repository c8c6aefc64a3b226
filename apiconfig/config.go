package apiconfig

import (
	"net"
	"strconv"
	"time"
)

type Config struct {
	Api           ApiConfig           `koanf:"api"`
	Chain         ChainConfig         `koanf:"chain"`
	Notifications NotificationsConfig `koanf:"notifications"`
	NatsServer    NatsServerConfig    `koanf:"nats"`
	Logging       LoggingConfig       `koanf:"logging"`
}

type ApiConfig struct {
	// ListenHost is the interface both servers bind to. The public API takes the creator
	// and caller from the request body, so it is loopback unless a trusted proxy fronts it.
	ListenHost string `koanf:"listen_host"`
	PublicPort int    `koanf:"public_port"`
	AdminPort  int    `koanf:"admin_port"`
}

func (c ApiConfig) PublicAddr() string {
	return net.JoinHostPort(c.ListenHost, strconv.Itoa(c.PublicPort))
}

func (c ApiConfig) AdminAddr() string {
	return net.JoinHostPort(c.ListenHost, strconv.Itoa(c.AdminPort))
}

type ChainConfig struct {
	ChainId string `koanf:"chain_id"`
	// Admin is the bech32 address allowed to change the fee configuration.
	Admin string `koanf:"admin"`
	// DataDir holds the goleveldb state; empty keeps state in memory.
	DataDir     string `koanf:"data_dir"`
	GenesisFile string `koanf:"genesis_file"`
}

type NotificationsConfig struct {
	WebhookUrl        string        `koanf:"webhook_url"`
	WebhookTimeout    time.Duration `koanf:"webhook_timeout"`
	NatsUrl           string        `koanf:"nats_url"`
	NatsSubjectPrefix string        `koanf:"nats_subject_prefix"`
}

type NatsServerConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Host       string `koanf:"host"`
	Port       int    `koanf:"port"`
	TestMode   bool   `koanf:"test_mode"`
	StorageDir string `koanf:"storage_dir"`
}

type LoggingConfig struct {
	Level string `koanf:"level"`
}

func DefaultConfig() Config {
	return Config{
		Api: ApiConfig{
			ListenHost: "127.0.0.1",
			PublicPort: 8080,
			AdminPort:  9200,
		},
		Chain: ChainConfig{
			ChainId: "vesting-local",
		},
		Notifications: NotificationsConfig{
			WebhookTimeout:    10 * time.Second,
			NatsSubjectPrefix: "vesting",
		},
		NatsServer: NatsServerConfig{
			Host: "127.0.0.1",
			Port: 4222,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

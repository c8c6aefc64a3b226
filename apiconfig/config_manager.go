package apiconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	ConfigPathEnv = "VESTING_CONFIG_PATH"
	envPrefix     = "VESTING_"
)

type ConfigManager struct {
	currentConfig  Config
	KoanProvider   koanf.Provider
	WriterProvider WriteCloserProvider
	mutex          sync.Mutex
}

type WriteCloserProvider interface {
	GetWriter() (WriteCloser, error)
}

type WriteCloser interface {
	Write([]byte) (int, error)
	Close() error
}

func LoadDefaultConfigManager() (*ConfigManager, error) {
	return LoadConfigManager(GetConfigPath())
}

// LoadConfigManager reads the yaml file at path. A missing file leaves the defaults in place.
func LoadConfigManager(path string) (*ConfigManager, error) {
	manager := ConfigManager{
		WriterProvider: NewFileWriteCloserProvider(path),
	}
	if _, err := os.Stat(path); err == nil {
		manager.KoanProvider = file.Provider(path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
	} else {
		slog.Info("config file not found, using defaults", "path", path)
	}

	if err := manager.Load(); err != nil {
		return nil, err
	}
	return &manager, nil
}

func (cm *ConfigManager) Write() error {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()
	return cm.write()
}

func (cm *ConfigManager) Load() error {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()
	config, err := readConfig(cm.KoanProvider)
	if err != nil {
		return err
	}
	cm.currentConfig = config
	return nil
}

func (cm *ConfigManager) GetConfig() *Config {
	return &cm.currentConfig
}

func (cm *ConfigManager) SetChain(chain ChainConfig) error {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()
	cm.currentConfig.Chain = chain
	slog.Info("Setting chain config", "chain_id", chain.ChainId, "admin", chain.Admin, "data_dir", chain.DataDir)
	return cm.write()
}

func (cm *ConfigManager) SetWebhookUrl(url string) error {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()
	cm.currentConfig.Notifications.WebhookUrl = url
	slog.Info("Setting webhook url", "url", url)
	return cm.write()
}

func (cm *ConfigManager) write() error {
	if cm.WriterProvider == nil {
		return errors.New("config manager has no writer")
	}
	writer, err := cm.WriterProvider.GetWriter()
	if err != nil {
		return err
	}
	defer writer.Close()
	return writeConfig(cm.currentConfig, writer)
}

func GetConfigPath() string {
	configPath := os.Getenv(ConfigPathEnv)
	if configPath == "" {
		configPath = "config.yaml" // Default value if the environment variable is not set
	}
	return configPath
}

type FileWriteCloserProvider struct {
	path string
}

func NewFileWriteCloserProvider(path string) *FileWriteCloserProvider {
	return &FileWriteCloserProvider{path: path}
}

func (f *FileWriteCloserProvider) GetWriter() (WriteCloser, error) {
	file, err := os.OpenFile(f.path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("error opening file at %s: %w", f.path, err)
	}
	return file, nil
}

func readConfig(provider koanf.Provider) (Config, error) {
	k := koanf.New(".")
	parser := yaml.Parser()

	if err := k.Load(structs.Provider(DefaultConfig(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("error loading defaults: %w", err)
	}
	if provider != nil {
		if err := k.Load(provider, parser); err != nil {
			return Config{}, fmt.Errorf("error loading config: %w", err)
		}
	}
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		if s == ConfigPathEnv {
			return ""
		}
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, envPrefix)), "__", ".", -1)
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("error loading env: %w", err)
	}

	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return Config{}, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return config, nil
}

func writeConfig(config Config, writer WriteCloser) error {
	k := koanf.New(".")
	parser := yaml.Parser()
	err := k.Load(structs.Provider(config, "koanf"), nil)
	if err != nil {
		slog.Error("error loading config", "error", err)
		return err
	}
	output, err := k.Marshal(parser)
	if err != nil {
		slog.Error("error marshalling config", "error", err)
		return err
	}
	_, err = writer.Write(output)
	if err != nil {
		slog.Error("error writing config", "error", err)
		return err
	}
	return nil
}

package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configDirName  = ".superadmin"
	configFileName = "config.yaml"
	envPrefix      = "SUPERADMIN"

	keyAPIURL  = "api_url"
	keyToken   = "token"
	keyEmail   = "email"
	keyTimeout = "timeout_in_seconds"

	defaultAPIURL  = "http://localhost:3000/api/v1"
	defaultTimeout = 15
)

type Config struct {
	APIURL           string `mapstructure:"api_url"`
	Token            string `mapstructure:"token"`
	Email            string `mapstructure:"email"`
	TimeoutInSeconds int    `mapstructure:"timeout_in_seconds"`
}

// ConfigStore reads and writes the CLI config file. Any key can be
// overridden with a SUPERADMIN_ environment variable.
type ConfigStore struct {
	path  string
	viper *viper.Viper
}

func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

func NewConfigStore(path string) (*ConfigStore, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetConfigPermissions(0o600)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyAPIURL, defaultAPIURL)
	v.SetDefault(keyToken, "")
	v.SetDefault(keyEmail, "")
	v.SetDefault(keyTimeout, defaultTimeout)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return &ConfigStore{path: path, viper: v}, nil
}

func (s *ConfigStore) Path() string {
	return s.path
}

func (s *ConfigStore) Load() (Config, error) {
	var cfg Config
	if err := s.viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	cfg.APIURL = strings.TrimRight(strings.TrimSpace(cfg.APIURL), "/")
	return cfg, nil
}

func (s *ConfigStore) SaveSession(email, token string) error {
	s.viper.Set(keyEmail, email)
	s.viper.Set(keyToken, token)
	return s.write()
}

func (s *ConfigStore) ClearSession() error {
	s.viper.Set(keyToken, "")
	return s.write()
}

func (s *ConfigStore) write() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return s.viper.WriteConfigAs(s.path)
}

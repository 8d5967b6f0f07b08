package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
)

// Browser kinds understood by the launch factory.
const (
	KindChrome  = "chrome"
	KindFirefox = "firefox"
)

// Defaults applied by Load when the file leaves a field unset.
const (
	DefaultTimeoutSeconds = 30
	DefaultPollIntervalMS = 100
)

// Config holds the toolkit configuration.
type Config struct {
	Debug   bool          `yaml:"debug"`
	Browser BrowserConfig `yaml:"browser"`
	Wait    WaitConfig    `yaml:"wait"`
}

type BrowserConfig struct {
	Kind        string   `yaml:"kind"`
	DriverPath  string   `yaml:"driver-path,omitempty"`
	BinaryPath  string   `yaml:"binary-path,omitempty"`
	Port        int      `yaml:"port,omitempty"`
	RemoteURL   string   `yaml:"remote-url,omitempty"`
	Headless    bool     `yaml:"headless"`
	UserDataDir string   `yaml:"user-data-dir,omitempty"`
	UserAgent   string   `yaml:"user-agent,omitempty"`
	Args        []string `yaml:"args,omitempty"`
}

type WaitConfig struct {
	TimeoutSeconds int `yaml:"timeout-seconds"`
	PollIntervalMS int `yaml:"poll-interval-ms"`
}

// Load reads a YAML configuration file, applies defaults and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}

	config.applyDefaults()
	if err = config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Default returns a configuration with every default applied.
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

func (c *Config) applyDefaults() {
	if c.Browser.Kind == "" {
		c.Browser.Kind = KindChrome
	}
	if c.Wait.TimeoutSeconds <= 0 {
		c.Wait.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if c.Wait.PollIntervalMS <= 0 {
		c.Wait.PollIntervalMS = DefaultPollIntervalMS
	}
}

// Validate rejects configurations the launch factory cannot honor. A remote
// URL lifts the kind restriction, the hub decides what it can provide.
func (c *Config) Validate() error {
	if c.Browser.RemoteURL != "" {
		return nil
	}
	if c.Browser.Kind != KindChrome && c.Browser.Kind != KindFirefox {
		return fmt.Errorf("unknown browser kind %q", c.Browser.Kind)
	}
	return nil
}

// WaitTimeout returns the configured wait timeout as a duration.
func (c *Config) WaitTimeout() time.Duration {
	return time.Duration(c.Wait.TimeoutSeconds) * time.Second
}

// PollInterval returns the configured poll interval as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Wait.PollIntervalMS) * time.Millisecond
}

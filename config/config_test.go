package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
debug: true
browser:
  kind: firefox
  driver-path: /opt/geckodriver
  binary-path: /usr/bin/firefox
  headless: true
  user-agent: wdkit/1.0
  args:
    - -private
wait:
  timeout-seconds: 10
  poll-interval-ms: 50
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, KindFirefox, cfg.Browser.Kind)
	assert.Equal(t, "/opt/geckodriver", cfg.Browser.DriverPath)
	assert.Equal(t, "/usr/bin/firefox", cfg.Browser.BinaryPath)
	assert.True(t, cfg.Browser.Headless)
	assert.Equal(t, "wdkit/1.0", cfg.Browser.UserAgent)
	assert.Equal(t, []string{"-private"}, cfg.Browser.Args)
	assert.Equal(t, 10, cfg.Wait.TimeoutSeconds)
	assert.Equal(t, 50, cfg.Wait.PollIntervalMS)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "browser:\n  headless: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, KindChrome, cfg.Browser.Kind)
	assert.Equal(t, DefaultTimeoutSeconds, cfg.Wait.TimeoutSeconds)
	assert.Equal(t, DefaultPollIntervalMS, cfg.Wait.PollIntervalMS)
}

func TestLoadRejectsUnknownKinds(t *testing.T) {
	path := writeConfig(t, "browser:\n  kind: safari\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "safari")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "browser: [not a mapping\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidateAllowsAnyKindWithARemoteURL(t *testing.T) {
	cfg := Default()
	cfg.Browser.Kind = "safari"
	cfg.Browser.RemoteURL = "http://hub:4444/wd/hub"

	assert.NoError(t, cfg.Validate())
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, KindChrome, cfg.Browser.Kind)
	assert.False(t, cfg.Debug)
	assert.NoError(t, cfg.Validate())
}

func TestDurationHelpers(t *testing.T) {
	cfg := Default()
	cfg.Wait.TimeoutSeconds = 10
	cfg.Wait.PollIntervalMS = 50

	assert.Equal(t, 10*time.Second, cfg.WaitTimeout())
	assert.Equal(t, 50*time.Millisecond, cfg.PollInterval())
}

// Package firefox runs a local geckodriver service and opens WebDriver
// sessions against it.
package firefox

import (
	"fmt"
	"os"
	"os/exec"

	log "github.com/sirupsen/logrus"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/firefox"

	"github.com/sablerock/wdkit/config"
)

// DefaultPort is geckodriver's default listen port.
const DefaultPort = 4444

var driverLocations = []string{
	"/usr/local/bin/geckodriver",
	"/usr/bin/geckodriver",
	"/opt/homebrew/bin/geckodriver",
}

// Runtime owns a geckodriver service and the browser session running
// behind it.
type Runtime struct {
	service *selenium.Service
	wd      selenium.WebDriver
	port    int
}

// New starts geckodriver and opens a Firefox session against it.
func New(cfg *config.Config) (*Runtime, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	driverPath, err := findDriver(cfg)
	if err != nil {
		return nil, err
	}
	log.Infof("Using geckodriver at: %s", driverPath)

	port := cfg.Browser.Port
	if port == 0 {
		port = DefaultPort
	}

	opts := []selenium.ServiceOption{}
	if cfg.Debug {
		opts = append(opts, selenium.Output(log.StandardLogger().WriterLevel(log.DebugLevel)))
	}
	service, err := selenium.NewGeckoDriverService(driverPath, port, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to start geckodriver: %w", err)
	}

	wd, err := selenium.NewRemote(buildCapabilities(cfg), fmt.Sprintf("http://localhost:%d", port))
	if err != nil {
		_ = service.Stop()
		return nil, fmt.Errorf("failed to create webdriver session: %w", err)
	}

	log.Infof("Firefox session started on port %d", port)
	return &Runtime{service: service, wd: wd, port: port}, nil
}

// Driver returns the WebDriver session.
func (r *Runtime) Driver() selenium.WebDriver {
	return r.wd
}

// Close quits the browser session, then stops the geckodriver service.
func (r *Runtime) Close() error {
	var firstErr error

	if r.wd != nil {
		log.Debug("Quitting Firefox session...")
		if err := r.wd.Quit(); err != nil {
			firstErr = err
		}
		r.wd = nil
	}
	if r.service != nil {
		log.Debug("Stopping geckodriver service...")
		if err := r.service.Stop(); err != nil && firstErr == nil {
			firstErr = err
		}
		r.service = nil
	}

	log.Info("Firefox runtime closed.")
	return firstErr
}

func findDriver(cfg *config.Config) (string, error) {
	if cfg.Browser.DriverPath != "" {
		return cfg.Browser.DriverPath, nil
	}
	if path := os.Getenv("GECKODRIVER_PATH"); path != "" {
		return path, nil
	}
	if path, err := exec.LookPath("geckodriver"); err == nil {
		return path, nil
	}
	for _, path := range driverLocations {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("geckodriver not found: set browser.driver-path in the config or the GECKODRIVER_PATH environment variable")
}

func buildCapabilities(cfg *config.Config) selenium.Capabilities {
	args := make([]string, 0, len(cfg.Browser.Args)+3)
	if cfg.Browser.Headless {
		args = append(args, "-headless", "--width=1920", "--height=1080")
	}
	for _, arg := range cfg.Browser.Args {
		if arg != "" {
			args = append(args, arg)
		}
	}

	ffCaps := firefox.Capabilities{
		Binary: cfg.Browser.BinaryPath,
		Args:   args,
	}
	if cfg.Browser.UserAgent != "" {
		ffCaps.Prefs = map[string]interface{}{
			"general.useragent.override": cfg.Browser.UserAgent,
		}
	}

	caps := selenium.Capabilities{"browserName": "firefox"}
	caps.AddFirefox(ffCaps)
	return caps
}

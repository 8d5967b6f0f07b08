// Package chrome runs a local chromedriver service and opens WebDriver
// sessions against it.
package chrome

import (
	"fmt"
	"os"
	"os/exec"

	log "github.com/sirupsen/logrus"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
	drvlog "github.com/tebeka/selenium/log"

	"github.com/sablerock/wdkit/config"
)

// DefaultPort is chromedriver's default listen port.
const DefaultPort = 9515

// Well-known chromedriver install locations, probed after the config, the
// environment and $PATH.
var driverLocations = []string{
	"/usr/local/bin/chromedriver",
	"/usr/bin/chromedriver",
	"/opt/homebrew/bin/chromedriver",
}

// Runtime owns a chromedriver service and the browser session running
// behind it.
type Runtime struct {
	service *selenium.Service
	wd      selenium.WebDriver
	port    int
}

// New starts chromedriver and opens a Chrome session against it.
func New(cfg *config.Config) (*Runtime, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	driverPath, err := findDriver(cfg)
	if err != nil {
		return nil, err
	}
	log.Infof("Using chromedriver at: %s", driverPath)

	port := cfg.Browser.Port
	if port == 0 {
		port = DefaultPort
	}

	opts := []selenium.ServiceOption{}
	if cfg.Debug {
		opts = append(opts, selenium.Output(log.StandardLogger().WriterLevel(log.DebugLevel)))
	}
	service, err := selenium.NewChromeDriverService(driverPath, port, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to start chromedriver: %w", err)
	}

	wd, err := selenium.NewRemote(buildCapabilities(cfg), fmt.Sprintf("http://localhost:%d/wd/hub", port))
	if err != nil {
		_ = service.Stop()
		return nil, fmt.Errorf("failed to create webdriver session: %w", err)
	}

	log.Infof("Chrome session started on port %d", port)
	return &Runtime{service: service, wd: wd, port: port}, nil
}

// Driver returns the WebDriver session.
func (r *Runtime) Driver() selenium.WebDriver {
	return r.wd
}

// Close quits the browser session, then stops the chromedriver service.
func (r *Runtime) Close() error {
	var firstErr error

	if r.wd != nil {
		log.Debug("Quitting Chrome session...")
		if err := r.wd.Quit(); err != nil {
			firstErr = err
		}
		r.wd = nil
	}
	if r.service != nil {
		log.Debug("Stopping chromedriver service...")
		if err := r.service.Stop(); err != nil && firstErr == nil {
			firstErr = err
		}
		r.service = nil
	}

	log.Info("Chrome runtime closed.")
	return firstErr
}

func findDriver(cfg *config.Config) (string, error) {
	if cfg.Browser.DriverPath != "" {
		return cfg.Browser.DriverPath, nil
	}
	if path := os.Getenv("CHROMEDRIVER_PATH"); path != "" {
		return path, nil
	}
	if path, err := exec.LookPath("chromedriver"); err == nil {
		return path, nil
	}
	for _, path := range driverLocations {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("chromedriver not found: set browser.driver-path in the config or the CHROMEDRIVER_PATH environment variable")
}

func buildCapabilities(cfg *config.Config) selenium.Capabilities {
	args := []string{
		"--no-first-run",
		"--no-default-browser-check",
		"--disable-dev-shm-usage",
	}
	if cfg.Browser.Headless {
		args = append(args, "--headless=new", "--disable-gpu", "--window-size=1920,1080")
	}
	if cfg.Browser.UserDataDir != "" {
		args = append(args, "--user-data-dir="+cfg.Browser.UserDataDir)
	}
	if cfg.Browser.UserAgent != "" {
		args = append(args, "--user-agent="+cfg.Browser.UserAgent)
	}
	for _, arg := range cfg.Browser.Args {
		if arg != "" {
			args = append(args, arg)
		}
	}

	caps := selenium.Capabilities{"browserName": "chrome"}
	caps.AddChrome(chrome.Capabilities{
		Path: cfg.Browser.BinaryPath,
		Args: args,
	})
	caps.SetLogLevel(drvlog.Browser, drvlog.All)
	return caps
}

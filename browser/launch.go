package browser

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/tebeka/selenium"

	"github.com/sablerock/wdkit/browser/chrome"
	"github.com/sablerock/wdkit/browser/firefox"
	"github.com/sablerock/wdkit/config"
)

// Runtime owns a running browser and the driver session talking to it.
// Close tears both down.
type Runtime interface {
	Driver() selenium.WebDriver
	Close() error
}

// Launch starts the browser described by cfg and wraps it in a Session that
// owns it: closing the Session shuts the browser down. A configured remote
// URL attaches to a running WebDriver hub instead of starting anything
// locally.
func Launch(cfg *config.Config) (*Session, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	var (
		runtime Runtime
		err     error
	)
	switch {
	case cfg.Browser.RemoteURL != "":
		runtime, err = attach(cfg)
	case cfg.Browser.Kind == config.KindChrome:
		runtime, err = chrome.New(cfg)
	case cfg.Browser.Kind == config.KindFirefox:
		runtime, err = firefox.New(cfg)
	default:
		return nil, fmt.Errorf("unknown browser kind %q", cfg.Browser.Kind)
	}
	if err != nil {
		return nil, err
	}

	session := New(runtime.Driver(), Options{
		Timeout:      cfg.WaitTimeout(),
		PollInterval: cfg.PollInterval(),
	})
	session.runtime = runtime
	session.log.Infof("Browser session ready (kind=%s)", cfg.Browser.Kind)
	return session, nil
}

// remoteRuntime is a session on a WebDriver hub this process does not
// manage; Close only quits the session.
type remoteRuntime struct {
	wd selenium.WebDriver
}

func attach(cfg *config.Config) (*remoteRuntime, error) {
	log.Infof("Attaching to remote webdriver at: %s", cfg.Browser.RemoteURL)

	caps := selenium.Capabilities{"browserName": cfg.Browser.Kind}
	wd, err := selenium.NewRemote(caps, cfg.Browser.RemoteURL)
	if err != nil {
		return nil, fmt.Errorf("failed to attach to remote webdriver at %s: %w", cfg.Browser.RemoteURL, err)
	}
	return &remoteRuntime{wd: wd}, nil
}

func (r *remoteRuntime) Driver() selenium.WebDriver {
	return r.wd
}

func (r *remoteRuntime) Close() error {
	return r.wd.Quit()
}

// Package browser drives a web browser through a WebDriver session, giving
// every operation a page-readiness gate and a bounded wait.
package browser

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/tebeka/selenium"
	drvlog "github.com/tebeka/selenium/log"
)

const (
	DefaultTimeout      = 30 * time.Second
	DefaultPollInterval = 100 * time.Millisecond
)

// Options configures a Session. The zero value selects the defaults.
type Options struct {
	Timeout      time.Duration
	PollInterval time.Duration
}

// Session owns a WebDriver handle and exposes lookup and interaction
// operations over it. Each operation first waits for the page to report a
// complete ready state, then delegates to the driver, waiting on the
// operation's own condition where it has one. A Session is not safe for
// concurrent use.
type Session struct {
	wd       selenium.WebDriver
	runtime  Runtime
	wait     *Wait
	timeout  time.Duration
	interval time.Duration
	log      *log.Entry
}

// New wraps an already running driver in a Session. The caller keeps
// responsibility for the browser process; Close only quits the session.
func New(wd selenium.WebDriver, opts Options) *Session {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	interval := opts.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	return &Session{
		wd:       wd,
		wait:     NewWait(wd, timeout, interval),
		timeout:  timeout,
		interval: interval,
		log:      log.WithField("session", uuid.New().String()),
	}
}

// Driver exposes the underlying WebDriver for calls the Session does not
// wrap.
func (s *Session) Driver() selenium.WebDriver {
	return s.wd
}

// Close quits the driver session and, when the Session launched the browser
// itself, shuts the runtime down with it.
func (s *Session) Close() error {
	s.log.Debug("Closing browser session...")
	if s.runtime != nil {
		err := s.runtime.Close()
		s.runtime = nil
		return err
	}
	if err := s.wd.Quit(); err != nil {
		return fmt.Errorf("error quitting webdriver session: %w", err)
	}
	s.log.Info("Browser session closed.")
	return nil
}

// ensureReady blocks until the page reports a complete ready state. A
// timeout is tolerated and the operation proceeds; driver failures during
// the poll propagate.
func (s *Session) ensureReady() error {
	err := s.wait.Until(DocumentReady())
	if err == nil {
		return nil
	}
	if IsTimeout(err) {
		s.log.Debugf("Page did not report a complete ready state within %s, continuing", s.timeout)
		return nil
	}
	return err
}

// pageURL returns the current URL for error context, best effort.
func (s *Session) pageURL() string {
	url, err := s.wd.CurrentURL()
	if err != nil {
		return "unknown"
	}
	return url
}

// Navigate loads url in the browser.
func (s *Session) Navigate(url string) error {
	if err := s.ensureReady(); err != nil {
		return err
	}
	s.log.Debugf("Navigating to: %s", url)
	if err := s.wd.Get(url); err != nil {
		return fmt.Errorf("error navigating to %s: %w", url, err)
	}
	s.log.Debugf("Successfully navigated to: %s", url)
	return nil
}

// FindClickable waits until the element matching loc is displayed and
// enabled, then returns it.
func (s *Session) FindClickable(loc Locator) (selenium.WebElement, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	if err := s.wait.Until(Clickable(loc)); err != nil {
		return nil, err
	}
	return s.findNow(loc)
}

// FindVisible waits until the element matching loc is displayed, then
// returns it.
func (s *Session) FindVisible(loc Locator) (selenium.WebElement, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	if err := s.wait.Until(Visible(loc)); err != nil {
		return nil, err
	}
	return s.findNow(loc)
}

// FindAll waits until at least one element matches loc, then returns every
// match in document order.
func (s *Session) FindAll(loc Locator) ([]selenium.WebElement, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	if err := s.wait.Until(Present(loc)); err != nil {
		return nil, err
	}
	elems, err := s.wd.FindElements(loc.By, loc.Value)
	if err != nil {
		return nil, fmt.Errorf("error finding elements '%s' on page %s: %w", loc, s.pageURL(), err)
	}
	return elems, nil
}

func (s *Session) findNow(loc Locator) (selenium.WebElement, error) {
	elem, err := s.wd.FindElement(loc.By, loc.Value)
	if err != nil {
		return nil, fmt.Errorf("error finding element '%s' on page %s: %w", loc, s.pageURL(), err)
	}
	return elem, nil
}

// Screenshot captures the current page as PNG bytes.
func (s *Session) Screenshot() ([]byte, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	data, err := s.wd.Screenshot()
	if err != nil {
		return nil, fmt.Errorf("error taking screenshot of page %s: %w", s.pageURL(), err)
	}
	return data, nil
}

// ConsoleLog drains the browser console log. The driver must have been
// started with browser logging enabled; the chrome runtime does that.
func (s *Session) ConsoleLog() ([]drvlog.Message, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	messages, err := s.wd.Log(drvlog.Browser)
	if err != nil {
		return nil, fmt.Errorf("error reading browser console log: %w", err)
	}
	return messages, nil
}

package browser

import (
	"time"

	"github.com/tebeka/selenium"
)

// Wait polls conditions against a driver until they hold or a deadline
// passes. The zero value is not usable, construct it with NewWait.
type Wait struct {
	wd       selenium.WebDriver
	timeout  time.Duration
	interval time.Duration
}

// NewWait creates a bounded wait helper. Non-positive timeout or interval
// fall back to the package defaults.
func NewWait(wd selenium.WebDriver, timeout, interval time.Duration) *Wait {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Wait{wd: wd, timeout: timeout, interval: interval}
}

// Until evaluates c immediately and then once per poll interval, returning
// nil as soon as it holds. A condition error aborts the wait and is returned
// unchanged. When the deadline passes first, Until returns a *TimeoutError
// naming the condition.
func (w *Wait) Until(c Condition) error {
	deadline := time.Now().Add(w.timeout)
	for {
		ok, err := c.Test(w.wd)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		if time.Now().After(deadline) {
			return &TimeoutError{What: c.Desc, Timeout: w.timeout}
		}
		time.Sleep(w.interval)
	}
}

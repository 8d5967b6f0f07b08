package browser

import (
	"errors"
	"fmt"
	"time"
)

// TimeoutError reports a wait condition that did not hold before the
// deadline. Driver failures are never converted into a TimeoutError, they
// surface as-is.
type TimeoutError struct {
	What    string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %s waiting until %s", e.Timeout, e.What)
}

// IsTimeout reports whether err is, or wraps, a wait timeout.
func IsTimeout(err error) bool {
	var timeoutErr *TimeoutError
	return errors.As(err, &timeoutErr)
}

package browser

import (
	"fmt"
)

// SwitchFrame moves the driver's context into the frame matching loc,
// waiting until it is available. With no locator it returns to the
// top-level document, regardless of how deeply nested the current frame is.
func (s *Session) SwitchFrame(loc ...Locator) error {
	if err := s.ensureReady(); err != nil {
		return err
	}

	if len(loc) == 0 {
		s.log.Debug("Switching to the top-level document")
		if err := s.wd.SwitchFrame(nil); err != nil {
			return fmt.Errorf("error switching to the top-level document on page %s: %w", s.pageURL(), err)
		}
		return nil
	}

	target := loc[0]
	s.log.Debugf("Waiting for frame with selector: %s", target)
	if err := s.wait.Until(FrameReady(target)); err != nil {
		return err
	}

	s.log.Debugf("Successfully switched to frame '%s'.", target)
	return nil
}

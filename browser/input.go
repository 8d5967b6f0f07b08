package browser

import (
	"fmt"

	"github.com/tebeka/selenium"

	"github.com/sablerock/wdkit/internal/textutil"
)

// TypeText clears the element matching loc, types text into it and
// optionally appends an Enter keystroke.
func (s *Session) TypeText(loc Locator, text string, pressEnter bool) error {
	if err := s.ensureReady(); err != nil {
		return err
	}
	s.log.Debugf("Attempting to type into element with selector: %s", loc)

	elem, err := s.FindVisible(loc)
	if err != nil {
		return err
	}
	if err = elem.Clear(); err != nil {
		return fmt.Errorf("error clearing element '%s' on page %s: %w", loc, s.pageURL(), err)
	}
	if err = elem.SendKeys(text); err != nil {
		return fmt.Errorf("error typing into element '%s' on page %s: %w", loc, s.pageURL(), err)
	}
	if pressEnter {
		if err = elem.SendKeys(selenium.EnterKey); err != nil {
			return fmt.Errorf("error pressing enter in element '%s' on page %s: %w", loc, s.pageURL(), err)
		}
	}

	s.log.Debugf("Successfully typed %q into element '%s'.", textutil.Truncate(text, 32), loc)
	return nil
}

// SelectOption picks the option whose value attribute equals value inside
// the select element matching loc. A missing option surfaces the driver's
// lookup error.
func (s *Session) SelectOption(loc Locator, value string) error {
	if err := s.ensureReady(); err != nil {
		return err
	}
	s.log.Debugf("Attempting to select option %q in element with selector: %s", value, loc)

	elem, err := s.FindVisible(loc)
	if err != nil {
		return err
	}
	optionSelector := "option[value=" + textutil.QuoteCSSAttr(value) + "]"
	option, err := elem.FindElement(selenium.ByCSSSelector, optionSelector)
	if err != nil {
		return fmt.Errorf("error finding option with value %q in element '%s' on page %s: %w", value, loc, s.pageURL(), err)
	}
	if err = option.Click(); err != nil {
		return fmt.Errorf("error selecting option %q in element '%s' on page %s: %w", value, loc, s.pageURL(), err)
	}

	s.log.Debugf("Successfully selected option %q in element '%s'.", value, loc)
	return nil
}

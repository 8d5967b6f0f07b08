package browser

import (
	"fmt"
	"time"

	"github.com/tebeka/selenium"
	"github.com/tidwall/gjson"
)

// pointerInput is the W3C input source id shared by all pointer gestures so
// the pointer position carries over between them.
const pointerInput = "mouse"

const pointerMoveDuration = 100 * time.Millisecond

// centerScript scrolls an element into view and reports the viewport
// coordinates of its center, the move target for pointer gestures.
const centerScript = `arguments[0].scrollIntoView({block: 'center', inline: 'nearest'});
var rect = arguments[0].getBoundingClientRect();
return {x: Math.round(rect.left + rect.width / 2), y: Math.round(rect.top + rect.height / 2)};`

// Hover moves the pointer onto the element matching loc.
func (s *Session) Hover(loc Locator) error {
	if err := s.ensureReady(); err != nil {
		return err
	}
	s.log.Debugf("Attempting to hover over element with selector: %s", loc)

	elem, err := s.FindVisible(loc)
	if err != nil {
		return err
	}
	center, err := s.elementCenter(elem)
	if err != nil {
		return fmt.Errorf("error hovering over element '%s' on page %s: %w", loc, s.pageURL(), err)
	}
	s.wd.StorePointerActions(pointerInput, selenium.MousePointer,
		selenium.PointerMoveAction(pointerMoveDuration, center, selenium.FromViewport))
	if err = s.wd.PerformActions(); err != nil {
		return fmt.Errorf("error hovering over element '%s' on page %s: %w", loc, s.pageURL(), err)
	}

	s.log.Debugf("Successfully hovered over element '%s'.", loc)
	return nil
}

// Click moves the pointer onto the element matching loc and presses the
// left button.
func (s *Session) Click(loc Locator) error {
	if err := s.ensureReady(); err != nil {
		return err
	}
	s.log.Debugf("Attempting to find and click element with selector: %s", loc)

	elem, err := s.FindVisible(loc)
	if err != nil {
		return err
	}
	if err = s.clickElement(elem, selenium.LeftButton); err != nil {
		return fmt.Errorf("error clicking element '%s' on page %s: %w", loc, s.pageURL(), err)
	}

	s.log.Debugf("Successfully clicked element '%s'.", loc)
	return nil
}

// RightClick presses the right button on the element matching loc, or at
// the current pointer position when no locator is given.
func (s *Session) RightClick(loc ...Locator) error {
	if err := s.ensureReady(); err != nil {
		return err
	}

	if len(loc) == 0 {
		s.log.Debug("Attempting to right click at the current pointer position")
		s.wd.StorePointerActions(pointerInput, selenium.MousePointer,
			selenium.PointerDownAction(selenium.RightButton),
			selenium.PointerUpAction(selenium.RightButton))
		if err := s.wd.PerformActions(); err != nil {
			return fmt.Errorf("error right clicking on page %s: %w", s.pageURL(), err)
		}
		return nil
	}

	target := loc[0]
	s.log.Debugf("Attempting to right click element with selector: %s", target)
	elem, err := s.FindClickable(target)
	if err != nil {
		return err
	}
	if err = s.clickElement(elem, selenium.RightButton); err != nil {
		return fmt.Errorf("error right clicking element '%s' on page %s: %w", target, s.pageURL(), err)
	}

	s.log.Debugf("Successfully right clicked element '%s'.", target)
	return nil
}

// clickElement runs a move-press-release chain on elem with the given
// button.
func (s *Session) clickElement(elem selenium.WebElement, button selenium.MouseButton) error {
	center, err := s.elementCenter(elem)
	if err != nil {
		return err
	}
	s.wd.StorePointerActions(pointerInput, selenium.MousePointer,
		selenium.PointerMoveAction(pointerMoveDuration, center, selenium.FromViewport),
		selenium.PointerDownAction(button),
		selenium.PointerUpAction(button))
	return s.wd.PerformActions()
}

// elementCenter scrolls elem into view and returns the viewport coordinates
// of its center.
func (s *Session) elementCenter(elem selenium.WebElement) (selenium.Point, error) {
	raw, err := s.wd.ExecuteScriptRaw(centerScript, []interface{}{elem})
	if err != nil {
		return selenium.Point{}, err
	}
	value := gjson.GetBytes(raw, "value")
	return selenium.Point{
		X: int(value.Get("x").Int()),
		Y: int(value.Get("y").Int()),
	}, nil
}

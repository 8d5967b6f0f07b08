package browser

import (
	"strings"

	"github.com/tebeka/selenium"
	"github.com/tidwall/gjson"
)

const readyStateScript = "return document.readyState;"

// Condition is a named page-state predicate. Test is polled by Wait.Until;
// Desc names the awaited state in timeout errors.
type Condition struct {
	Desc string
	Test selenium.Condition
}

// DocumentReady holds when the page reports a complete ready state. Script
// execution failures abort the wait.
func DocumentReady() Condition {
	return Condition{
		Desc: "the document ready state is complete",
		Test: func(wd selenium.WebDriver) (bool, error) {
			raw, err := wd.ExecuteScriptRaw(readyStateScript, nil)
			if err != nil {
				return false, err
			}
			state := gjson.GetBytes(raw, "value").String()
			return strings.EqualFold(state, "complete"), nil
		},
	}
}

// Clickable holds when the first element matching loc is displayed and
// enabled. Lookup failures count as "not yet" so polling continues.
func Clickable(loc Locator) Condition {
	return Condition{
		Desc: "element " + loc.String() + " is clickable",
		Test: func(wd selenium.WebDriver) (bool, error) {
			elem, err := wd.FindElement(loc.By, loc.Value)
			if err != nil {
				return false, nil
			}
			displayed, err := elem.IsDisplayed()
			if err != nil || !displayed {
				return false, nil
			}
			enabled, err := elem.IsEnabled()
			if err != nil || !enabled {
				return false, nil
			}
			return true, nil
		},
	}
}

// Visible holds when the first element matching loc is displayed.
func Visible(loc Locator) Condition {
	return Condition{
		Desc: "element " + loc.String() + " is visible",
		Test: func(wd selenium.WebDriver) (bool, error) {
			elem, err := wd.FindElement(loc.By, loc.Value)
			if err != nil {
				return false, nil
			}
			displayed, err := elem.IsDisplayed()
			if err != nil {
				return false, nil
			}
			return displayed, nil
		},
	}
}

// Present holds when at least one element matches loc.
func Present(loc Locator) Condition {
	return Condition{
		Desc: "elements " + loc.String() + " are present",
		Test: func(wd selenium.WebDriver) (bool, error) {
			elems, err := wd.FindElements(loc.By, loc.Value)
			if err != nil {
				return false, nil
			}
			return len(elems) > 0, nil
		},
	}
}

// FrameReady holds once the frame matching loc exists and the driver has
// switched into it. The switch happens as a side effect of the successful
// test, mirroring the frame-availability wait this condition stands in for.
func FrameReady(loc Locator) Condition {
	return Condition{
		Desc: "frame " + loc.String() + " is available",
		Test: func(wd selenium.WebDriver) (bool, error) {
			elem, err := wd.FindElement(loc.By, loc.Value)
			if err != nil {
				return false, nil
			}
			if err = wd.SwitchFrame(elem); err != nil {
				return false, nil
			}
			return true, nil
		},
	}
}

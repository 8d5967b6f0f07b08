package browser

import (
	"fmt"
	"strings"
	"time"

	"github.com/tebeka/selenium"
	drvlog "github.com/tebeka/selenium/log"
)

// fakeDriver implements the slice of selenium.WebDriver the tests exercise
// by embedding the interface and overriding only those methods; calling
// anything else panics, which is fine in tests.
type fakeDriver struct {
	selenium.WebDriver

	readyState string    // what the ready-state poll reports, "" means complete
	readyAfter time.Time // before this instant the page reports loading
	readyErr   error

	elements map[Locator][]*fakeElement

	events        []string
	currentURL    string
	gotoErr       error
	frameTargets  []interface{}
	frameErr      error
	actionsStored int
	performCalls  int
	performErr    error
	cookies       []selenium.Cookie
	cookiesErr    error
	addedCookies  []selenium.Cookie
	addCookieErr  error
	shot          []byte
	shotErr       error
	messages      []drvlog.Message
	logErr        error
	quitCalled    bool
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		elements:   make(map[Locator][]*fakeElement),
		currentURL: "http://unit.test/page",
	}
}

func (d *fakeDriver) place(loc Locator, elems ...*fakeElement) {
	d.elements[loc] = elems
}

func (d *fakeDriver) countEvents(prefix string) int {
	n := 0
	for _, event := range d.events {
		if strings.HasPrefix(event, prefix) {
			n++
		}
	}
	return n
}

func (d *fakeDriver) ExecuteScriptRaw(script string, args []interface{}) ([]byte, error) {
	switch {
	case strings.Contains(script, "readyState"):
		d.events = append(d.events, "ready-check")
		if d.readyErr != nil {
			return nil, d.readyErr
		}
		state := d.readyState
		if state == "" {
			state = "complete"
		}
		if !d.readyAfter.IsZero() {
			if time.Now().Before(d.readyAfter) {
				state = "loading"
			} else {
				state = "complete"
			}
		}
		return []byte(fmt.Sprintf(`{"value":%q}`, state)), nil
	case strings.Contains(script, "getBoundingClientRect"):
		d.events = append(d.events, "center")
		return []byte(`{"value":{"x":320,"y":240}}`), nil
	default:
		d.events = append(d.events, "script")
		return []byte(`{"value":null}`), nil
	}
}

func (d *fakeDriver) Get(url string) error {
	d.events = append(d.events, "get:"+url)
	if d.gotoErr != nil {
		return d.gotoErr
	}
	d.currentURL = url
	return nil
}

func (d *fakeDriver) CurrentURL() (string, error) {
	return d.currentURL, nil
}

func (d *fakeDriver) FindElement(by, value string) (selenium.WebElement, error) {
	loc := Locator{By: by, Value: value}
	d.events = append(d.events, "find:"+loc.String())
	elems := d.elements[loc]
	if len(elems) == 0 {
		return nil, fmt.Errorf("no such element: %s", loc)
	}
	return elems[0], nil
}

func (d *fakeDriver) FindElements(by, value string) ([]selenium.WebElement, error) {
	loc := Locator{By: by, Value: value}
	d.events = append(d.events, "find-all:"+loc.String())
	elems := d.elements[loc]
	out := make([]selenium.WebElement, 0, len(elems))
	for _, elem := range elems {
		out = append(out, elem)
	}
	return out, nil
}

func (d *fakeDriver) SwitchFrame(frame interface{}) error {
	d.events = append(d.events, "switch-frame")
	if d.frameErr != nil {
		return d.frameErr
	}
	d.frameTargets = append(d.frameTargets, frame)
	return nil
}

func (d *fakeDriver) StorePointerActions(inputID string, pointer selenium.PointerType, actions ...selenium.PointerAction) {
	d.actionsStored = len(actions)
	d.events = append(d.events, fmt.Sprintf("store-actions:%d", len(actions)))
}

func (d *fakeDriver) PerformActions() error {
	d.performCalls++
	d.events = append(d.events, "perform")
	return d.performErr
}

func (d *fakeDriver) GetCookies() ([]selenium.Cookie, error) {
	return d.cookies, d.cookiesErr
}

func (d *fakeDriver) AddCookie(cookie *selenium.Cookie) error {
	if d.addCookieErr != nil {
		return d.addCookieErr
	}
	d.addedCookies = append(d.addedCookies, *cookie)
	return nil
}

func (d *fakeDriver) Screenshot() ([]byte, error) {
	return d.shot, d.shotErr
}

func (d *fakeDriver) Log(typ drvlog.Type) ([]drvlog.Message, error) {
	return d.messages, d.logErr
}

func (d *fakeDriver) Quit() error {
	d.quitCalled = true
	return nil
}

// fakeElement implements the element methods the session touches.
type fakeElement struct {
	selenium.WebElement

	text      string
	textErr   error
	attrs     map[string]string
	attrErr   error
	displayed bool
	enabled   bool
	clicks    int
	clickErr  error
	clears    int
	clearErr  error
	keys      []string
	sendErr   error
	children  map[Locator]*fakeElement
	childErr  error
	childAsks []Locator
}

func visibleElement() *fakeElement {
	return &fakeElement{displayed: true, enabled: true}
}

func (e *fakeElement) Text() (string, error) {
	return e.text, e.textErr
}

func (e *fakeElement) GetAttribute(name string) (string, error) {
	if e.attrErr != nil {
		return "", e.attrErr
	}
	return e.attrs[name], nil
}

func (e *fakeElement) IsDisplayed() (bool, error) {
	return e.displayed, nil
}

func (e *fakeElement) IsEnabled() (bool, error) {
	return e.enabled, nil
}

func (e *fakeElement) Click() error {
	e.clicks++
	return e.clickErr
}

func (e *fakeElement) Clear() error {
	e.clears++
	return e.clearErr
}

func (e *fakeElement) SendKeys(keys string) error {
	if e.sendErr != nil {
		return e.sendErr
	}
	e.keys = append(e.keys, keys)
	return nil
}

func (e *fakeElement) FindElement(by, value string) (selenium.WebElement, error) {
	loc := Locator{By: by, Value: value}
	e.childAsks = append(e.childAsks, loc)
	if e.childErr != nil {
		return nil, e.childErr
	}
	child, ok := e.children[loc]
	if !ok {
		return nil, fmt.Errorf("no such element: %s", loc)
	}
	return child, nil
}

// fakeRuntime stands in for a launched browser runtime.
type fakeRuntime struct {
	wd     selenium.WebDriver
	closed bool
}

func (r *fakeRuntime) Driver() selenium.WebDriver {
	return r.wd
}

func (r *fakeRuntime) Close() error {
	r.closed = true
	return nil
}

// newTestSession wraps d with short timings so waits fail fast.
func newTestSession(d *fakeDriver) *Session {
	return New(d, Options{Timeout: 250 * time.Millisecond, PollInterval: 10 * time.Millisecond})
}

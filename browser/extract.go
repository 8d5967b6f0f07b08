package browser

import (
	"fmt"
)

// Predicate decides whether an extracted value is kept. A nil Predicate
// keeps everything.
type Predicate func(value string) bool

// Formatter rewrites an extracted value before it is returned. A nil
// Formatter returns values unchanged.
type Formatter func(value string) string

// Attribute returns the named attribute of the first visible element
// matching loc.
func (s *Session) Attribute(loc Locator, name string) (string, error) {
	if err := s.ensureReady(); err != nil {
		return "", err
	}
	elem, err := s.FindVisible(loc)
	if err != nil {
		return "", err
	}
	value, err := elem.GetAttribute(name)
	if err != nil {
		return "", fmt.Errorf("error reading attribute %q of element '%s' on page %s: %w", name, loc, s.pageURL(), err)
	}
	return value, nil
}

// Text returns the visible text of the first visible element matching loc.
func (s *Session) Text(loc Locator) (string, error) {
	if err := s.ensureReady(); err != nil {
		return "", err
	}
	elem, err := s.FindVisible(loc)
	if err != nil {
		return "", err
	}
	text, err := elem.Text()
	if err != nil {
		return "", fmt.Errorf("error reading text of element '%s' on page %s: %w", loc, s.pageURL(), err)
	}
	return text, nil
}

// Attributes collects the named attribute from every element matching loc,
// in document order, keeping values keep accepts and passing them through
// format.
func (s *Session) Attributes(loc Locator, name string, keep Predicate, format Formatter) ([]string, error) {
	elems, err := s.FindAll(loc)
	if err != nil {
		return nil, err
	}
	if keep == nil {
		keep = func(string) bool { return true }
	}
	if format == nil {
		format = func(value string) string { return value }
	}

	values := make([]string, 0, len(elems))
	for _, elem := range elems {
		value, errAttr := elem.GetAttribute(name)
		if errAttr != nil {
			return nil, fmt.Errorf("error reading attribute %q of elements '%s' on page %s: %w", name, loc, s.pageURL(), errAttr)
		}
		if !keep(value) {
			continue
		}
		values = append(values, format(value))
	}
	return values, nil
}

// Texts collects the visible text of every element matching loc, in
// document order, keeping values keep accepts and passing them through
// format.
func (s *Session) Texts(loc Locator, keep Predicate, format Formatter) ([]string, error) {
	elems, err := s.FindAll(loc)
	if err != nil {
		return nil, err
	}
	if keep == nil {
		keep = func(string) bool { return true }
	}
	if format == nil {
		format = func(value string) string { return value }
	}

	texts := make([]string, 0, len(elems))
	for _, elem := range elems {
		text, errText := elem.Text()
		if errText != nil {
			return nil, fmt.Errorf("error reading text of elements '%s' on page %s: %w", loc, s.pageURL(), errText)
		}
		if !keep(text) {
			continue
		}
		texts = append(texts, format(text))
	}
	return texts, nil
}

// Count returns how many elements match loc. It shares FindAll's wait, so
// a selector that never matches yields a TimeoutError rather than zero.
func (s *Session) Count(loc Locator) (int, error) {
	elems, err := s.FindAll(loc)
	if err != nil {
		return 0, err
	}
	return len(elems), nil
}

// CountAttributes returns how many elements matching loc carry a value of
// the named attribute that keep accepts.
func (s *Session) CountAttributes(loc Locator, name string, keep Predicate) (int, error) {
	values, err := s.Attributes(loc, name, keep, nil)
	if err != nil {
		return 0, err
	}
	return len(values), nil
}

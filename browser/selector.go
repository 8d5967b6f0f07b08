package browser

import (
	"github.com/tebeka/selenium"
)

// Locator pairs a selector strategy with its selector string.
type Locator struct {
	By    string
	Value string
}

func (l Locator) String() string {
	return l.By + "=" + l.Value
}

// CSS locates elements by CSS selector.
func CSS(selector string) Locator {
	return Locator{By: selenium.ByCSSSelector, Value: selector}
}

// ID locates elements by their id attribute.
func ID(id string) Locator {
	return Locator{By: selenium.ByID, Value: id}
}

// XPath locates elements by XPath expression.
func XPath(expression string) Locator {
	return Locator{By: selenium.ByXPATH, Value: expression}
}

// Name locates elements by their name attribute.
func Name(name string) Locator {
	return Locator{By: selenium.ByName, Value: name}
}

// TagName locates elements by tag name.
func TagName(tag string) Locator {
	return Locator{By: selenium.ByTagName, Value: tag}
}

// ClassName locates elements by a single class name.
func ClassName(class string) Locator {
	return Locator{By: selenium.ByClassName, Value: class}
}

// LinkText locates anchor elements by their exact visible text.
func LinkText(text string) Locator {
	return Locator{By: selenium.ByLinkText, Value: text}
}

// PartialLinkText locates anchor elements whose visible text contains text.
func PartialLinkText(text string) Locator {
	return Locator{By: selenium.ByPartialLinkText, Value: text}
}

package browser

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tebeka/selenium"
)

// cookieState is the on-disk layout of a saved cookie snapshot.
type cookieState struct {
	URL     string            `json:"url"`
	SavedAt time.Time         `json:"saved_at"`
	Cookies []selenium.Cookie `json:"cookies"`
}

// SaveCookies writes the session's cookies to path as JSON, creating parent
// directories as needed.
func (s *Session) SaveCookies(path string) error {
	cookies, err := s.wd.GetCookies()
	if err != nil {
		return fmt.Errorf("error reading cookies on page %s: %w", s.pageURL(), err)
	}

	state := cookieState{
		URL:     s.pageURL(),
		SavedAt: time.Now(),
		Cookies: cookies,
	}
	jsonData, errMarshalIndent := json.MarshalIndent(state, "", "  ")
	if errMarshalIndent != nil {
		return errMarshalIndent
	}

	if errMkdir := os.MkdirAll(filepath.Dir(path), 0755); errMkdir != nil {
		return errMkdir
	}
	if err = os.WriteFile(path, jsonData, 0644); err != nil {
		s.log.Debugf("Error writing cookies to file %s: %v", path, err)
		return err
	}

	s.log.Debugf("Successfully wrote %d cookies to file %s", len(state.Cookies), path)
	return nil
}

// LoadCookies reads a cookie snapshot from path and adds each cookie to the
// running browser. Cookies attach to the current document's domain, so
// navigate there first.
func (s *Session) LoadCookies(path string) error {
	data, errReadFile := os.ReadFile(path)
	if errReadFile != nil {
		s.log.Debugf("Error reading cookies from file %s: %v", path, errReadFile)
		return errReadFile
	}

	var state cookieState
	if err := json.Unmarshal(data, &state); err != nil {
		s.log.Debugf("Error unmarshalling cookies from JSON: %v", err)
		return err
	}

	for i := range state.Cookies {
		if err := s.wd.AddCookie(&state.Cookies[i]); err != nil {
			return fmt.Errorf("error adding cookie %q: %w", state.Cookies[i].Name, err)
		}
	}

	s.log.Debugf("Successfully loaded %d cookies from file %s", len(state.Cookies), path)
	return nil
}

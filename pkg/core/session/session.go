package session

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/checkout-zone/checkout-cli/pkg/core/model"
)

// Storage keys. These match the web client's localStorage keys so the names
// stay recognizable across the two front-ends.
const (
	keyCredentials = "authCredentials"
	keyCurrentUser = "currentUser"
	keyViewMode    = "equipmentViewMode"
	keyTheme       = "checkout-zone-theme"
)

// Equipment catalog view modes.
const (
	ViewModeGrid = "grid"
	ViewModeList = "list"
)

// Themes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Session holds the current user identity and credential token, persisted in
// a Store. The user pointer is cached in memory once rehydrated; the server
// remains the source of truth for everything else.
type Session struct {
	store       *Store
	currentUser *model.User
}

func New(store *Store) *Session {
	return &Session{store: store}
}

// Rehydrate restores the session from persistent storage. A malformed stored
// user payload clears both the user and the credentials, returning the
// session to the anonymous state.
func (s *Session) Rehydrate() {
	stored := s.store.Get(keyCurrentUser)
	if stored == "" {
		return
	}
	var user model.User
	if err := json.Unmarshal([]byte(stored), &user); err != nil {
		_ = s.store.Remove(keyCurrentUser)
		_ = s.store.Remove(keyCredentials)
		return
	}
	s.currentUser = &user
}

// Establish stores the authenticated user and a Basic-Auth token derived
// from the credentials that just succeeded.
func (s *Session) Establish(user model.User, username, password string) error {
	token := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	if err := s.store.Set(keyCredentials, token); err != nil {
		return fmt.Errorf("failed to store credentials: %w", err)
	}
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}
	if err := s.store.Set(keyCurrentUser, string(data)); err != nil {
		return fmt.Errorf("failed to store user: %w", err)
	}
	s.currentUser = &user
	return nil
}

// Clear drops the stored token and user, returning to the anonymous state.
// View mode and theme survive logout.
func (s *Session) Clear() error {
	s.currentUser = nil
	if err := s.store.Remove(keyCredentials); err != nil {
		return err
	}
	return s.store.Remove(keyCurrentUser)
}

// CurrentUser returns the logged-in user, or nil when anonymous.
func (s *Session) CurrentUser() *model.User {
	return s.currentUser
}

// Active reports whether a user is logged in.
func (s *Session) Active() bool {
	return s.currentUser != nil
}

// Token returns the stored Basic-Auth token, or "" when anonymous.
// Handed to the API client as its credential source.
func (s *Session) Token() string {
	return s.store.Get(keyCredentials)
}

// ViewMode returns the persisted equipment view mode, defaulting to grid.
func (s *Session) ViewMode() string {
	if mode := s.store.Get(keyViewMode); mode == ViewModeList {
		return ViewModeList
	}
	return ViewModeGrid
}

func (s *Session) SetViewMode(mode string) error {
	if mode != ViewModeGrid && mode != ViewModeList {
		return fmt.Errorf("invalid view mode %q (want %s or %s)", mode, ViewModeGrid, ViewModeList)
	}
	return s.store.Set(keyViewMode, mode)
}

// Theme returns the persisted theme, defaulting to light.
func (s *Session) Theme() string {
	if theme := s.store.Get(keyTheme); theme == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

func (s *Session) SetTheme(theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("invalid theme %q (want %s or %s)", theme, ThemeLight, ThemeDark)
	}
	return s.store.Set(keyTheme, theme)
}

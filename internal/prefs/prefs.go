// Package prefs persists the single dashboard preference: the theme,
// stored as the literal string "light" or "dark" under one key.
package prefs

import "github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/model"

// ThemeKey is the preference key, kept from the original dashboard.
const ThemeKey = "dashboard-theme"

// Store reads and writes the persisted theme preference.
type Store interface {
	// Theme returns the persisted theme; ok is false when none was saved.
	Theme() (t model.Theme, ok bool, err error)
	SaveTheme(t model.Theme) error
}

// Memory is an in-process Store used in tests and as a fallback when the
// preference database cannot be opened. Writes counts SaveTheme calls.
type Memory struct {
	theme  model.Theme
	set    bool
	Writes int
}

func (m *Memory) Theme() (model.Theme, bool, error) {
	return m.theme, m.set, nil
}

func (m *Memory) SaveTheme(t model.Theme) error {
	m.theme = t
	m.set = true
	m.Writes++
	return nil
}

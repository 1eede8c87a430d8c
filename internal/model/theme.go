package model

// Theme is the dashboard color scheme. The persisted form is the literal
// string "light" or "dark".
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// NormalizeTheme maps an arbitrary mode string onto a valid theme. Unknown
// values become light so the store only ever holds a persistable value.
func NormalizeTheme(mode string) Theme {
	if Theme(mode) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// Page identifiers for the navigable dashboard surfaces.
const (
	PageDashboard = "dashboard"
	PageUsers     = "users"
	PageBilling   = "billing"
	PageSettings  = "settings"
)

package domain

// Theme is the UI color scheme selection.
type Theme string

const (
	// ThemeLight is the default scheme.
	ThemeLight Theme = "light"
	// ThemeDark is the low-light scheme.
	ThemeDark Theme = "dark"
)

// Preferences holds UI-level selections persisted across reloads.
type Preferences struct {
	Theme    Theme  `json:"theme"`
	Language string `json:"language"`
}

// DefaultPreferences returns the out-of-the-box UI preferences.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:    ThemeLight,
		Language: "en",
	}
}

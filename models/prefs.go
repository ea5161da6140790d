package models

// Theme values accepted by the preferences store.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Preferences holds per-client display settings.
type Preferences struct {
	Theme string `json:"theme"`
}

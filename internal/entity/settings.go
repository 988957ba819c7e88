package entity

// Settings are per-user UI preferences, previously kept in browser-local
// storage and now held behind an explicit store so server rendering and
// tests can substitute an in-memory implementation.
type Settings struct {
	DarkMode bool   `json:"dark_mode"`
	Language string `json:"language"`
}

func DefaultSettings() Settings {
	return Settings{DarkMode: false, Language: "cs"}
}

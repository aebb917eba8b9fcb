package domain

// Theme selects the TUI color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// IsValid returns true if the theme is a known value.
func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Settings is the user-facing application settings record. It is
// persisted as a whole and replaced wholesale on save.
type Settings struct {
	Theme                Theme `json:"theme"`
	DefaultReminderLead  int   `json:"defaultReminderTime"`
	NotificationsEnabled bool  `json:"notificationsEnabled"`
}

// DefaultSettings returns the first-run settings.
func DefaultSettings() Settings {
	return Settings{
		Theme:                ThemeLight,
		DefaultReminderLead:  30,
		NotificationsEnabled: true,
	}
}

// ReminderLeadOptions returns the selectable lead times in minutes.
func ReminderLeadOptions() []int {
	return []int{5, 15, 30, 60, 1440}
}

// IsValidReminderLead reports whether the lead time is one of the
// fixed options.
func IsValidReminderLead(minutes int) bool {
	for _, opt := range ReminderLeadOptions() {
		if minutes == opt {
			return true
		}
	}
	return false
}

// Normalize replaces out-of-range fields with their defaults. Used
// when rehydrating a record persisted by an older build.
func (s Settings) Normalize() Settings {
	def := DefaultSettings()
	if !s.Theme.IsValid() {
		s.Theme = def.Theme
	}
	if !IsValidReminderLead(s.DefaultReminderLead) {
		s.DefaultReminderLead = def.DefaultReminderLead
	}
	return s
}

// Validate checks a settings record staged by the settings form.
func (s Settings) Validate() error {
	if !s.Theme.IsValid() {
		return ErrInvalidTheme
	}
	if !IsValidReminderLead(s.DefaultReminderLead) {
		return ErrInvalidReminderLead
	}
	return nil
}

package types

// Settings holds the user preference fields. Loading always merges the
// stored record over DefaultSettings field-by-field, so fields added in a
// later release come back with their defaults on existing installations
// instead of zero values chosen by accident.
type Settings struct {
	RemindersEnabled bool `json:"remindersEnabled"`
	ReminderHour     int  `json:"reminderHour"`
	ReminderMinute   int  `json:"reminderMinute"`
}

// SettingsPatch is a partial settings update. Nil fields are left unchanged.
type SettingsPatch struct {
	RemindersEnabled *bool `json:"remindersEnabled,omitempty"`
	ReminderHour     *int  `json:"reminderHour,omitempty"`
	ReminderMinute   *int  `json:"reminderMinute,omitempty"`
}

// DefaultSettings returns the hard-coded preference defaults.
func DefaultSettings() Settings {
	return Settings{
		RemindersEnabled: false,
		ReminderHour:     9,
		ReminderMinute:   0,
	}
}

// Apply merges the patch into s, replacing only the fields the patch sets.
func (s Settings) Apply(patch SettingsPatch) Settings {
	if patch.RemindersEnabled != nil {
		s.RemindersEnabled = *patch.RemindersEnabled
	}
	if patch.ReminderHour != nil {
		s.ReminderHour = *patch.ReminderHour
	}
	if patch.ReminderMinute != nil {
		s.ReminderMinute = *patch.ReminderMinute
	}
	return s
}

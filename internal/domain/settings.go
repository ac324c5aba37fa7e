package domain

// DefaultPreparationMinutes is the preparation buffer applied before any
// settings record has been saved.
const DefaultPreparationMinutes = 15

// Settings gate and parameterize the departure scheduler. They are loaded
// once at startup and persisted on every change.
type Settings struct {
	NotificationsEnabled bool `json:"notificationsEnabled"`
	PreparationTime      int  `json:"preparationTime"` // minutes
}

// DefaultSettings apply when no settings record exists yet: notifications
// stay off until the user opts in.
func DefaultSettings() Settings {
	return Settings{
		NotificationsEnabled: false,
		PreparationTime:      DefaultPreparationMinutes,
	}
}

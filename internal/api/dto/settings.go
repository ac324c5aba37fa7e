package dto

type UpdateSettingsRequest struct {
	NotificationsEnabled bool `json:"notificationsEnabled"`
	PreparationTime      int  `json:"preparationTime"`
}

type SettingsResponse struct {
	NotificationsEnabled bool `json:"notificationsEnabled"`
	PreparationTime      int  `json:"preparationTime"`
	// PermissionGranted reflects the notification channel's grant state; it
	// is reported alongside settings so the client can show why departure
	// alerts stay off.
	PermissionGranted bool `json:"permissionGranted"`
}

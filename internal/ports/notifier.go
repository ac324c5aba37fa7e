package ports

import "context"

// Contract for delivering departure alerts to the installer.
//
// A denied permission is a degraded state, not an error: the scheduler simply
// stays idle until the channel is granted.
type Notifier interface {
	// Report whether the notification channel may be used right now.
	IsGranted() bool
	// Ask the channel for permission and return the resulting grant state.
	RequestPermission(ctx context.Context) (bool, error)
	// Deliver one notification.
	Notify(title, body string) error
}

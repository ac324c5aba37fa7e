package notify

import (
	"context"
	"log"
)

// LogNotifier writes alerts to the process log. It is the default channel
// when no Telegram chat is configured; writing to the log needs no
// permission, so the notifier is always granted.
type LogNotifier struct{}

func (LogNotifier) IsGranted() bool { return true }

func (LogNotifier) RequestPermission(ctx context.Context) (bool, error) { return true, nil }

func (LogNotifier) Notify(title, body string) error {
	log.Printf("notification title=%q body=%q", title, body)
	return nil
}

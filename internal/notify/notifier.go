// internal/notify/notifier.go
package notify

import "context"

// Notifier delivers a short text message to one user through the
// transport. Delivery is best-effort: implementations return an error
// the caller may log, but a failure for one recipient must never
// affect delivery to others.
type Notifier interface {
	Notify(ctx context.Context, userID int64, text string) error
}

// Message is the envelope pushed over the notification channel.
type Message struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

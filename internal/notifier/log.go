// Package notifier holds implementations of the notification collaborator
// interface. The core only ever fires events at it and swallows failures.
package notifier

import (
	"context"

	"swap-marketplace/internal/model"

	"github.com/rs/zerolog"
)

// LogNotifier writes notification events to the log. It stands in for the
// real delivery channel (email/push), which is outside the core.
type LogNotifier struct {
	logger zerolog.Logger
}

func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(_ context.Context, event model.Notification) error {
	n.logger.Info().
		Int64("user_id", event.UserID).
		Str("event", event.Event.String()).
		Str("request_id", event.RequestID).
		Str("item_id", event.ItemID).
		Str("item_title", event.ItemTitle).
		Int64("other_user_id", event.OtherUserID).
		Str("request_status", event.RequestStatus.String()).
		Msg("notification")
	return nil
}

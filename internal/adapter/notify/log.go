package notify

import (
	"context"
	"log/slog"

	"github.com/polkiloo/servicebooking/internal/domain/model"
)

// LogNotifier writes status changes to the application log.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier constructs LogNotifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// NotifyStatusChange logs the rendered subject and recipient.
func (n *LogNotifier) NotifyStatusChange(ctx context.Context, change model.StatusChange) error {
	msg, err := ComposeStatusEmail(change)
	if err != nil {
		return err
	}
	n.logger.InfoContext(ctx, "status notification",
		slog.String("to", change.Email),
		slog.String("subject", msg.Subject),
		slog.String("status", string(change.Status)),
	)
	return nil
}

// Close is a no-op.
func (n *LogNotifier) Close() error { return nil }

package slackclient

import (
	"context"

	"github.com/bryanrg22/CalTech-Hacks/internal/logger"
)

type nopSender struct{}

// NewNopSender returns a sender used when Slack is disabled; alerts are
// dropped after a debug log line.
func NewNopSender() *nopSender { return &nopSender{} }

func (nopSender) SendMessage(ctx context.Context, channel, text string) error {
	logger.Debug(ctx, "slack disabled, dropping message",
		logger.String("channel", channel),
	)
	return nil
}

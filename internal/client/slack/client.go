// Package slackclient wraps the Slack web API behind the notifier's
// MessageSender interface.
package slackclient

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"
)

type client struct {
	api *slack.Client
}

func NewClient(api *slack.Client) *client {
	return &client{api: api}
}

func (c *client) SendMessage(ctx context.Context, channel, text string) error {
	_, _, err := c.api.PostMessageContext(ctx, channel,
		slack.MsgOptionText(text, false),
	)
	if err != nil {
		return fmt.Errorf("slack post message: %w", err)
	}

	return nil
}

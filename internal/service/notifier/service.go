// Package service posts inventory alerts to the procurement channel.
package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/bryanrg22/CalTech-Hacks/internal/model"
)

type MessageSender interface {
	SendMessage(ctx context.Context, channel, text string) error
}

type service struct {
	client  MessageSender
	channel string
}

func NewNotifierService(client MessageSender, channel string) *service {
	return &service{client: client, channel: channel}
}

// NotifyLowStock posts one message listing every part below its minimum
// stock threshold. A nil or empty slice sends nothing.
func (s *service) NotifyLowStock(ctx context.Context, parts []model.Part) error {
	if len(parts) == 0 {
		return nil
	}

	return s.client.SendMessage(ctx, s.channel, BuildLowStockMessage(parts))
}

// BuildLowStockMessage renders the alert text. Parts are listed by id so
// repeated alerts for the same state produce identical messages.
func BuildLowStockMessage(parts []model.Part) string {
	sorted := make([]model.Part, len(parts))
	copy(sorted, parts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	var b strings.Builder
	fmt.Fprintf(&b, ":warning: %d part(s) below minimum stock:\n", len(sorted))
	for _, p := range sorted {
		name := p.Name
		if name == "" {
			name = p.ID
		}
		fmt.Fprintf(&b, "• %s (%s): %d on hand, minimum %d\n",
			name, p.ID, p.Quantity, p.MinStock)
	}

	return strings.TrimRight(b.String(), "\n")
}

// Package commander is the client API for requesting price refreshes.
package commander

import (
	"context"
	"encoding/json"
	"fmt"
)

//go:generate mockery --name Sender --filename sender.go

// RefreshCommand asks the worker to refresh prices of one product.
type RefreshCommand struct {
	ASIN string `json:"asin"`
}

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// RefreshCommander sends refresh commands.
type RefreshCommander struct {
	sender Sender
}

// NewRefreshCommander returns new RefreshCommander using provided sender for sending messages.
func NewRefreshCommander(sender Sender) RefreshCommander {
	return RefreshCommander{
		sender: sender,
	}
}

// SendRefreshCommand sends refresh command for provided asin.
func (c RefreshCommander) SendRefreshCommand(ctx context.Context, asin string) error {
	cmd := RefreshCommand{
		ASIN: asin,
	}

	cmdMsg, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("can't marshal refresh command: %w", err)
	}

	return c.sender.Send(ctx, cmdMsg)
}

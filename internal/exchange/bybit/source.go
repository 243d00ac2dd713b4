package bybit

import (
	"context"

	"github.com/ducanhng/crypto-advisor/pkg/types"
)

// Source adapts the client to the history resolver's source contract.
type Source struct {
	client *Client
}

// NewSource wraps a client as a history source.
func NewSource(client *Client) *Source {
	return &Source{client: client}
}

// Name identifies this source in resolved results.
func (s *Source) Name() string {
	return "bybit"
}

// History fetches days+1 daily closes for the symbol.
func (s *Source) History(ctx context.Context, symbol string, days int) ([]types.PricePoint, error) {
	return s.client.GetDailyKlines(ctx, symbol, days)
}

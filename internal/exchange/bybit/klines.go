package bybit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bybit_api "github.com/bybit-exchange/bybit.go.api"
)

// Kline is one raw candle from the market kline endpoint, with every OHLCV
// field preserved. GetDailyKlines collapses candles into PricePoints for the
// analysis pipeline; exports and downloads keep the full row.
type Kline struct {
	StartTime int64
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    float64
	Turnover  float64
}

// pageDelay spaces paginated kline requests to stay under the public
// endpoint rate limit (120 req/min).
const pageDelay = 500 * time.Millisecond

// GetKlineWindow pages backward through the kline endpoint until the window
// [start, end] is covered, and returns the candles in chronological order.
// Bybit serves at most 1000 candles per request, newest first, so the pager
// walks the "end" cursor back one batch at a time.
func (c *Client) GetKlineWindow(ctx context.Context, symbol, interval string, start, end time.Time) ([]Kline, error) {
	startMs := start.UnixMilli()
	endMs := end.UnixMilli()
	cursor := endMs

	var collected []Kline // newest first while paging

	for cursor > startMs {
		params := map[string]interface{}{
			"category": c.category,
			"symbol":   symbol,
			"interval": interval,
			"end":      cursor,
			"limit":    maxKlineLimit,
		}

		var result interface{}
		err := c.withRetry(ctx, "get kline window "+symbol, func() error {
			var callErr error
			result, callErr = c.httpClient.NewUtaBybitServiceWithParams(params).GetMarketKline(ctx)
			return callErr
		})
		if err != nil {
			return nil, err
		}

		batch, err := parseRawKlines(result)
		if err != nil {
			return nil, fmt.Errorf("parse kline window for %s: %w", symbol, err)
		}
		if len(batch) == 0 {
			break
		}

		oldest := int64(0)
		for _, k := range batch {
			if k.StartTime >= startMs && k.StartTime <= endMs {
				collected = append(collected, k)
			}
			if oldest == 0 || k.StartTime < oldest {
				oldest = k.StartTime
			}
		}

		if oldest <= startMs {
			break
		}
		cursor = oldest - 1

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(pageDelay):
		}
	}

	// Reverse into chronological order.
	for i, j := 0, len(collected)-1; i < j; i, j = i+1, j-1 {
		collected[i], collected[j] = collected[j], collected[i]
	}
	return collected, nil
}

// parseRawKlines keeps the candles in the order the API returns them
// (newest first).
func parseRawKlines(response interface{}) ([]Kline, error) {
	serverResp, ok := response.(*bybit_api.ServerResponse)
	if !ok {
		return nil, fmt.Errorf("invalid response type")
	}
	if serverResp.RetCode != 0 {
		return nil, ParseAPIError(serverResp.RetCode, serverResp.RetMsg)
	}

	resultBytes, err := json.Marshal(serverResp.Result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	var klineResult struct {
		Symbol   string     `json:"symbol"`
		Category string     `json:"category"`
		List     [][]string `json:"list"`
	}
	if err := json.Unmarshal(resultBytes, &klineResult); err != nil {
		return nil, fmt.Errorf("failed to unmarshal kline result: %w", err)
	}

	klines := make([]Kline, 0, len(klineResult.List))
	for _, item := range klineResult.List {
		if len(item) < 7 {
			continue
		}
		klines = append(klines, Kline{
			StartTime: parseInt64(item[0]),
			Open:      parseFloat64(item[1]),
			High:      parseFloat64(item[2]),
			Low:       parseFloat64(item[3]),
			Close:     parseFloat64(item[4]),
			Volume:    parseFloat64(item[5]),
			Turnover:  parseFloat64(item[6]),
		})
	}
	return klines, nil
}

package bybit

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	bybit_api "github.com/bybit-exchange/bybit.go.api"

	"github.com/ducanhng/crypto-advisor/pkg/types"
)

const maxKlineLimit = 1000

// GetDailyKlines fetches up to days+1 daily candles for a symbol and returns
// them as a chronological price series. Bybit returns newest-first; the
// result is reversed so indicator code always sees oldest-first input.
func (c *Client) GetDailyKlines(ctx context.Context, symbol string, days int) ([]types.PricePoint, error) {
	limit := days + 1
	if limit < 1 {
		limit = 1
	}
	if limit > maxKlineLimit {
		limit = maxKlineLimit
	}

	params := map[string]interface{}{
		"category": c.category,
		"symbol":   symbol,
		"interval": "D",
		"limit":    limit,
	}

	var result interface{}
	err := c.withRetry(ctx, "get klines "+symbol, func() error {
		var callErr error
		result, callErr = c.httpClient.NewUtaBybitServiceWithParams(params).GetMarketKline(ctx)
		return callErr
	})
	if err != nil {
		return nil, err
	}

	series, err := parseKlineResponse(result)
	if err != nil {
		return nil, fmt.Errorf("parse kline response for %s: %w", symbol, err)
	}
	return series, nil
}

// GetSnapshot fetches the 24h ticker for a symbol: last price, 24h percent
// change and 24h volume.
func (c *Client) GetSnapshot(ctx context.Context, symbol string) (types.Snapshot, error) {
	params := map[string]interface{}{
		"category": c.category,
		"symbol":   symbol,
	}

	var result interface{}
	err := c.withRetry(ctx, "get ticker "+symbol, func() error {
		var callErr error
		result, callErr = c.httpClient.NewUtaBybitServiceWithParams(params).GetMarketTickers(ctx)
		return callErr
	})
	if err != nil {
		return types.Snapshot{}, err
	}

	snapshot, err := parseTickerResponse(result)
	if err != nil {
		return types.Snapshot{}, fmt.Errorf("parse ticker response for %s: %w", symbol, err)
	}
	return snapshot, nil
}

// parseKlineResponse parses the API response into a chronological series.
func parseKlineResponse(response interface{}) ([]types.PricePoint, error) {
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

	// Bybit kline format: [startTime, open, high, low, close, volume, turnover]
	series := make([]types.PricePoint, 0, len(klineResult.List))
	for i := len(klineResult.List) - 1; i >= 0; i-- {
		item := klineResult.List[i]
		if len(item) < 6 {
			continue // Skip incomplete data
		}
		series = append(series, types.PricePoint{
			Timestamp: parseInt64(item[0]),
			Price:     parseFloat64(item[4]),
			High:      parseFloat64(item[2]),
			Low:       parseFloat64(item[3]),
			Volume:    parseFloat64(item[5]),
		})
	}
	return series, nil
}

// parseTickerResponse extracts the snapshot fields from a ticker response.
func parseTickerResponse(response interface{}) (types.Snapshot, error) {
	serverResp, ok := response.(*bybit_api.ServerResponse)
	if !ok {
		return types.Snapshot{}, fmt.Errorf("invalid response type")
	}
	if serverResp.RetCode != 0 {
		return types.Snapshot{}, ParseAPIError(serverResp.RetCode, serverResp.RetMsg)
	}

	resultBytes, err := json.Marshal(serverResp.Result)
	if err != nil {
		return types.Snapshot{}, fmt.Errorf("failed to marshal result: %w", err)
	}

	var tickerResult struct {
		Category string `json:"category"`
		List     []struct {
			Symbol       string `json:"symbol"`
			LastPrice    string `json:"lastPrice"`
			Price24hPcnt string `json:"price24hPcnt"`
			Turnover24h  string `json:"turnover24h"`
			Volume24h    string `json:"volume24h"`
		} `json:"list"`
	}
	if err := json.Unmarshal(resultBytes, &tickerResult); err != nil {
		return types.Snapshot{}, fmt.Errorf("failed to unmarshal ticker result: %w", err)
	}
	if len(tickerResult.List) == 0 {
		return types.Snapshot{}, fmt.Errorf("no ticker data found")
	}

	ticker := tickerResult.List[0]
	return types.Snapshot{
		Price: parseFloat64(ticker.LastPrice),
		// price24hPcnt comes back as a fraction ("0.0153" = +1.53%).
		Change24h: parseFloat64(ticker.Price24hPcnt) * 100,
		Volume24h: parseFloat64(ticker.Turnover24h),
	}, nil
}

func parseFloat64(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt64(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

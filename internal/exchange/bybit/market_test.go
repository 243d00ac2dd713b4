package bybit

import (
	"testing"

	bybit_api "github.com/bybit-exchange/bybit.go.api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKlineResponse_ReversesToChronological(t *testing.T) {
	resp := &bybit_api.ServerResponse{
		RetCode: 0,
		Result: map[string]interface{}{
			"symbol":   "BTCUSDT",
			"category": "spot",
			"list": [][]string{
				// Newest first, as Bybit returns them.
				{"1700265600000", "101", "103", "100", "102", "900", "91800"},
				{"1700179200000", "100", "102", "99", "101", "1000", "101000"},
			},
		},
	}

	series, err := parseKlineResponse(resp)

	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, int64(1700179200000), series[0].Timestamp)
	assert.Equal(t, 101.0, series[0].Price)
	assert.Equal(t, 102.0, series[0].High)
	assert.Equal(t, 99.0, series[0].Low)
	assert.Equal(t, 1000.0, series[0].Volume)
	assert.Equal(t, int64(1700265600000), series[1].Timestamp)
	assert.Equal(t, 102.0, series[1].Price)
}

func TestParseKlineResponse_SkipsIncompleteRows(t *testing.T) {
	resp := &bybit_api.ServerResponse{
		RetCode: 0,
		Result: map[string]interface{}{
			"list": [][]string{
				{"1700179200000", "100"},
				{"1700265600000", "101", "103", "100", "102", "900", "91800"},
			},
		},
	}

	series, err := parseKlineResponse(resp)

	require.NoError(t, err)
	assert.Len(t, series, 1)
}

func TestParseKlineResponse_APIError(t *testing.T) {
	resp := &bybit_api.ServerResponse{RetCode: 10006, RetMsg: "rate limit"}

	_, err := parseKlineResponse(resp)

	require.Error(t, err)
	assert.True(t, IsRetryableError(err))
}

func TestParseTickerResponse_ScalesPercent(t *testing.T) {
	resp := &bybit_api.ServerResponse{
		RetCode: 0,
		Result: map[string]interface{}{
			"category": "spot",
			"list": []map[string]interface{}{
				{
					"symbol":       "BTCUSDT",
					"lastPrice":    "50123.5",
					"price24hPcnt": "-0.0312",
					"turnover24h":  "123456789",
					"volume24h":    "2468",
				},
			},
		},
	}

	snapshot, err := parseTickerResponse(resp)

	require.NoError(t, err)
	assert.Equal(t, 50123.5, snapshot.Price)
	assert.InDelta(t, -3.12, snapshot.Change24h, 1e-9)
	assert.Equal(t, 123456789.0, snapshot.Volume24h)
}

func TestParseTickerResponse_EmptyList(t *testing.T) {
	resp := &bybit_api.ServerResponse{
		RetCode: 0,
		Result:  map[string]interface{}{"list": []map[string]interface{}{}},
	}

	_, err := parseTickerResponse(resp)

	assert.Error(t, err)
}

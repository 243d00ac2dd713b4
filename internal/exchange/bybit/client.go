package bybit

import (
	bybit_api "github.com/bybit-exchange/bybit.go.api"
)

// Client wraps the Bybit API client for public market-data reads. API keys
// are optional: kline and ticker endpoints work unauthenticated, but keys are
// passed through when configured so rate limits are per-account.
type Client struct {
	httpClient *bybit_api.Client
	category   string
	testnet    bool
}

// Config holds the configuration for the Bybit client.
type Config struct {
	APIKey    string
	APISecret string
	Category  string // "spot", "linear", "inverse"; defaults to "spot"
	Testnet   bool
}

// NewClient creates a new Bybit market-data client.
func NewClient(config Config) *Client {
	baseURL := bybit_api.MAINNET
	if config.Testnet {
		baseURL = bybit_api.TESTNET
	}
	if config.Category == "" {
		config.Category = "spot"
	}

	httpClient := bybit_api.NewBybitHttpClient(
		config.APIKey,
		config.APISecret,
		bybit_api.WithBaseURL(baseURL),
	)

	return &Client{
		httpClient: httpClient,
		category:   config.Category,
		testnet:    config.Testnet,
	}
}

// IsTestnet returns whether the client is configured for testnet.
func (c *Client) IsTestnet() bool {
	return c.testnet
}

// Environment returns a string describing the current environment.
func (c *Client) Environment() string {
	if c.testnet {
		return "testnet"
	}
	return "mainnet"
}

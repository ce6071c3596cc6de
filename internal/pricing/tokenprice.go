package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const RuggedPlaceholder = "No value you got rugged bruh"

type TokenPriceConfig struct {
	BaseURL string
	Timeout time.Duration
	Client  *http.Client
}

// TokenPriceClient searches DEX trading pairs by free text.
type TokenPriceClient struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

type searchResponse struct {
	SchemaVersion string     `json:"schemaVersion"`
	Pairs         []pairJSON `json:"pairs"`
}

type pairJSON struct {
	ChainID     string  `json:"chainId"`
	DexID       string  `json:"dexId"`
	URL         string  `json:"url"`
	PairAddress string  `json:"pairAddress"`
	BaseToken   token   `json:"baseToken"`
	QuoteToken  token   `json:"quoteToken"`
	PriceNative string  `json:"priceNative"`
	PriceUSD    *string `json:"priceUsd"`
	Volume      struct {
		H24 float64 `json:"h24"`
		H6  float64 `json:"h6"`
		H1  float64 `json:"h1"`
		M5  float64 `json:"m5"`
	} `json:"volume"`
	PriceChange struct {
		H24 float64 `json:"h24"`
	} `json:"priceChange"`
	Liquidity *struct {
		USD   float64 `json:"usd"`
		Base  float64 `json:"base"`
		Quote float64 `json:"quote"`
	} `json:"liquidity"`
}

type token struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
}

// Pair is the first search result.
type Pair struct {
	Name           string
	Symbol         string
	URL            string
	PairAddress    string
	ChainID        string
	DexID          string
	PriceUSD       *string
	PriceChangeH24 float64
	LiquidityUSD   float64
	VolumeH24      float64
}

func (p Pair) PriceUSDOrPlaceholder() string {
	if p.PriceUSD == nil || strings.TrimSpace(*p.PriceUSD) == "" {
		return RuggedPlaceholder
	}
	return *p.PriceUSD
}

func (p Pair) Rising() bool {
	return p.PriceChangeH24 > 0
}

func NewTokenPriceClient(cfg TokenPriceConfig, logger *slog.Logger) *TokenPriceClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &TokenPriceClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  newHTTPClient(cfg.Client, cfg.Timeout),
		logger:  logger,
	}
}

func (c *TokenPriceClient) Search(ctx context.Context, query string) (Pair, error) {
	endpoint := c.baseURL + "/latest/dex/search?" + url.Values{"q": {query}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Pair{}, &APIError{Kind: KindUnreachable, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Pair{}, &APIError{Kind: KindUnreachable, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return Pair{}, &APIError{Kind: KindStatus, StatusCode: resp.StatusCode}
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Pair{}, &APIError{Kind: KindDecode, StatusCode: resp.StatusCode, Err: err}
	}
	if len(result.Pairs) == 0 {
		return Pair{}, ErrNoPairs
	}

	first := result.Pairs[0]
	pair := Pair{
		Name:           first.BaseToken.Name,
		Symbol:         first.BaseToken.Symbol,
		URL:            first.URL,
		PairAddress:    first.PairAddress,
		ChainID:        first.ChainID,
		DexID:          first.DexID,
		PriceUSD:       first.PriceUSD,
		PriceChangeH24: first.PriceChange.H24,
		VolumeH24:      first.Volume.H24,
	}
	if first.Liquidity != nil {
		pair.LiquidityUSD = first.Liquidity.USD
	}

	c.logger.Debug(
		"token pair resolved",
		slog.String("query", query),
		slog.String("pair", pair.PairAddress),
		slog.Int("results", len(result.Pairs)),
	)
	return pair, nil
}

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

type FloorPriceConfig struct {
	BaseURL  string
	APIKey   string
	Operator string
	Timeout  time.Duration
	Client   *http.Client
}

// FloorPriceClient looks up NFT collection floor prices by name.
type FloorPriceClient struct {
	baseURL  string
	apiKey   string
	operator string
	client   *http.Client
	logger   *slog.Logger
}

type collectionsResponse struct {
	Collections []collection `json:"collections"`
}

type collection struct {
	Name     string   `json:"name"`
	FloorAsk floorAsk `json:"floorAsk"`
}

type floorAsk struct {
	SourceDomain string      `json:"sourceDomain"`
	Price        *floorPrice `json:"price"`
}

type floorPrice struct {
	Amount struct {
		Decimal float64 `json:"decimal"`
		USD     float64 `json:"usd"`
		Native  float64 `json:"native"`
	} `json:"amount"`
}

func NewFloorPriceClient(cfg FloorPriceConfig, logger *slog.Logger) *FloorPriceClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &FloorPriceClient{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:   cfg.APIKey,
		operator: cfg.Operator,
		client:   newHTTPClient(cfg.Client, cfg.Timeout),
		logger:   logger,
	}
}

// Run always returns chat-ready text. Failures collapse into FailureMessage.
func (c *FloorPriceClient) Run(ctx context.Context, name string, verbose bool) string {
	result, err := c.fetch(ctx, name)
	if err != nil {
		c.logger.Warn("floor price lookup failed", slog.String("collection", name), slog.Any("err", err))
		return c.FailureMessage()
	}

	if len(result.Collections) == 0 {
		return fmt.Sprintf("There is no collection found for the name %s ", name)
	}

	if !verbose {
		return formatFloorLine(result.Collections[0])
	}

	var b strings.Builder
	for _, project := range result.Collections {
		b.WriteString(formatFloorLine(project))
		b.WriteString("\n")
	}
	return b.String()
}

func (c *FloorPriceClient) FailureMessage() string {
	return "Something went wrong contact " + c.operator
}

func (c *FloorPriceClient) fetch(ctx context.Context, name string) (collectionsResponse, error) {
	var result collectionsResponse

	endpoint := c.baseURL + "/collections/v6?" + url.Values{"name": {name}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return result, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("accept", "*/*")

	resp, err := c.client.Do(req)
	if err != nil {
		return result, fmt.Errorf("request collections: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return result, fmt.Errorf("error contacting api: status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return result, fmt.Errorf("decode collections: %w", err)
	}
	return result, nil
}

func formatFloorLine(project collection) string {
	price := 0.0
	if project.FloorAsk.Price != nil {
		price = project.FloorAsk.Price.Amount.Decimal
	}
	return fmt.Sprintf(
		"The floor price for [%s] is [%s]ETH and is on [%s]",
		project.Name, formatDecimal(price), project.FloorAsk.SourceDomain,
	)
}

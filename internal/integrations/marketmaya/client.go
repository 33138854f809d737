package marketmaya

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/SureshAmal/mmcopilot-mcp/internal/domain"
)

const (
	createScalpingPath  = "/MainStrategy/CreateScalpingStrategy"
	listStrategiesPath  = "/MainStrategy/GetMyStrategies"
	pointBalancePath    = "/Account/GetPointBalance"
	backtestOptionsPath = "/Backtest/GetBacktestOptions"
)

// Response is the raw transport result of one attempt: status code plus the
// full body, before any shape classification.
type Response struct {
	StatusCode int
	Body       []byte
}

// Client issues single-attempt JSON requests to the MarketMaya platform.
// The retry fields on a strategy record are configuration for the platform,
// not client-side retries; this client never retries.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, bearerToken string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      bearerToken,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) CreateScalpingStrategy(ctx context.Context, record domain.CanonicalStrategyRecord) (Response, error) {
	return c.post(ctx, createScalpingPath, record)
}

func (c *Client) ListStrategies(ctx context.Context, query domain.StrategyQueryRecord) (Response, error) {
	return c.post(ctx, listStrategiesPath, query)
}

func (c *Client) PointBalance(ctx context.Context) (Response, error) {
	return c.post(ctx, pointBalancePath, map[string]interface{}{})
}

func (c *Client) BacktestOptions(ctx context.Context, strategyID string) (Response, error) {
	return c.post(ctx, backtestOptionsPath, map[string]string{"id": strategyID})
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) (Response, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Response{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return Response{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, err
	}
	return Response{StatusCode: resp.StatusCode, Body: body}, nil
}

// Package data fetches and prepares the price series the engine consumes.
// The engine itself never performs network or file I/O; everything here runs
// before a simulation starts.
package data

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/solquant/vajra/models"
)

const alphaVantageURL = "https://www.alphavantage.co/query"

// Client fetches daily crypto candles from the Alpha Vantage
// DIGITAL_CURRENCY_DAILY endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    alphaVantageURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientFromEnv builds a client from the ALPHA_VANTAGE_API_KEY env var.
func NewClientFromEnv() (*Client, error) {
	apiKey := os.Getenv("ALPHA_VANTAGE_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ALPHA_VANTAGE_API_KEY must be set in environment")
	}
	return NewClient(apiKey), nil
}

// FetchDaily returns all available daily bars for a symbol, ascending by
// timestamp.
func (c *Client) FetchDaily(ctx context.Context, symbol string) ([]*models.Bar, error) {
	query := url.Values{}
	query.Set("function", "DIGITAL_CURRENCY_DAILY")
	query.Set("symbol", symbol)
	query.Set("market", "USD")
	query.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("alpha vantage request failed: %w", err)
	}
	defer resp.Body.Close()

	var payload struct {
		ErrorMessage string                       `json:"Error Message"`
		Note         string                       `json:"Note"`
		Information  string                       `json:"Information"`
		TimeSeries   map[string]map[string]string `json:"Time Series (Digital Currency Daily)"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to parse alpha vantage response: %w", err)
	}
	if payload.ErrorMessage != "" {
		return nil, fmt.Errorf("alpha vantage error: %v", payload.ErrorMessage)
	}
	if payload.Note != "" {
		// Rate limit warnings still carry data sometimes, keep going.
		log.Warn().Str("note", payload.Note).Msg("alpha vantage note")
	}
	if payload.TimeSeries == nil {
		if payload.Information != "" {
			return nil, fmt.Errorf("alpha vantage: %v", payload.Information)
		}
		return nil, fmt.Errorf("alpha vantage: time series not found in response")
	}

	bars := make([]*models.Bar, 0, len(payload.TimeSeries))
	for day, fields := range payload.TimeSeries {
		bar, err := parseDailyBar(day, fields)
		if err != nil {
			return nil, err
		}
		bars = append(bars, bar)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("alpha vantage: no market data returned for %v", symbol)
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Timestamp < bars[j].Timestamp })
	return bars, nil
}

// FetchDailyRange returns daily bars between start and end inclusive,
// ascending by timestamp.
func (c *Client) FetchDailyRange(ctx context.Context, symbol string, start, end time.Time) ([]*models.Bar, error) {
	bars, err := c.FetchDaily(ctx, symbol)
	if err != nil {
		return nil, err
	}
	filtered := FilterRange(bars, start, end)
	if len(filtered) == 0 {
		return nil, fmt.Errorf("alpha vantage: no market data for %v in the requested range", symbol)
	}
	return filtered, nil
}

// FilterRange returns the bars whose timestamps fall between start and end
// inclusive, preserving order.
func FilterRange(bars []*models.Bar, start, end time.Time) []*models.Bar {
	filtered := make([]*models.Bar, 0, len(bars))
	for _, bar := range bars {
		t := bar.Time()
		if t.Before(start) || t.After(end) {
			continue
		}
		filtered = append(filtered, bar)
	}
	return filtered
}

func parseDailyBar(day string, fields map[string]string) (*models.Bar, error) {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp %q: %w", day, err)
	}
	bar := &models.Bar{Timestamp: t.UTC().Unix() * 1000}

	// Older responses carry "4a. close (USD)" style keys, newer ones plain
	// "4. close".
	assign := []struct {
		dst  *float64
		keys []string
	}{
		{&bar.Open, []string{"1a. open (USD)", "1. open"}},
		{&bar.High, []string{"2a. high (USD)", "2. high"}},
		{&bar.Low, []string{"3a. low (USD)", "3. low"}},
		{&bar.Close, []string{"4a. close (USD)", "4. close"}},
		{&bar.Volume, []string{"5. volume"}},
	}
	for _, field := range assign {
		raw, ok := lookup(fields, field.keys)
		if !ok {
			return nil, fmt.Errorf("field %v not found in response for %v", field.keys[len(field.keys)-1], day)
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q for %v: %w", raw, day, err)
		}
		*field.dst = value
	}
	return bar, nil
}

func lookup(fields map[string]string, keys []string) (string, bool) {
	for _, key := range keys {
		if v, ok := fields[key]; ok {
			return v, true
		}
	}
	return "", false
}

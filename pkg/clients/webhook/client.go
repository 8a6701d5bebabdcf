// Package webhook pushes weekly report payloads to an operator-configured
// HTTP endpoint.
package webhook

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client exposes the report delivery operation used by the scheduler.
type Client interface {
	SendReport(ctx context.Context, msg ReportMessage) error
}

// ReportMessage is the JSON body posted to the webhook.
type ReportMessage struct {
	BusinessID     string  `json:"business_id"`
	BusinessName   string  `json:"business_name"`
	Week           string  `json:"week"`
	Revenue        float64 `json:"revenue"`
	VariableCost   float64 `json:"variable_cost"`
	GrossProfit    float64 `json:"gross_profit"`
	FixedCosts     float64 `json:"fixed_costs"`
	NetProfit      float64 `json:"net_profit"`
	SkippedRecords int     `json:"skipped_records"`
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
	url        string
}

// NewClient builds a webhook client for the given endpoint URL.
func NewClient(url string) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &APIClient{
		httpClient: restyClient,
		url:        url,
	}
}

// SendReport posts the report message and fails on any non-2xx response.
func (c *APIClient) SendReport(ctx context.Context, msg ReportMessage) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(msg).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("post weekly report: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("webhook rejected weekly report: status %d", resp.StatusCode())
	}
	return nil
}

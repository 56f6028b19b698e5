// Package usaspending is a thin client for the USAspending.gov search
// API. It covers a single endpoint, spending_by_award, which takes a
// filter set and returns one page of award records at a time.
//
// Documentation: https://api.usaspending.gov/docs/intro-tutorial
package usaspending

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"usaspending-client/lib/restyutil"
	"usaspending-client/lib/telemetry"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/codes"
)

const DefaultBaseUrl = "https://api.usaspending.gov"

const spendingByAwardPath = "/api/v2/search/spending_by_award/"

type Client struct {
	http *resty.Client
}

// NewClient builds a client for the given API root. An empty baseUrl
// means the public USAspending instance.
func NewClient(baseUrl string) *Client {
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}

	client := resty.New()
	client.SetBaseURL(baseUrl)
	client.SetHeader("content-type", "application/json")
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "usaspending/http")
	restyutil.InstrumentClient(client, tracer, restyInstrumentOutput)

	return &Client{http: client}
}

// PageMetadata describes where a result page sits in the full result
// set, as reported by the API.
type PageMetadata struct {
	Page        int  `json:"page"`
	Total       int  `json:"total"`
	Limit       int  `json:"limit"`
	HasNext     bool `json:"hasNext"`
	HasPrevious bool `json:"hasPrevious"`
}

// ResultPage is one page of award records. Records are kept as raw
// field-name to value mappings, the API's column names pass through
// untouched.
type ResultPage struct {
	Results      []map[string]any `json:"results"`
	PageMetadata PageMetadata     `json:"page_metadata"`
}

// SpendingByAward issues a single POST against the spending_by_award
// endpoint. There is no retry and no pagination here, callers wanting
// more than one page call this repeatedly with incremented Page values
// and concatenate Results themselves.
func (c *Client) SpendingByAward(ctx context.Context, req SearchRequest) (*ResultPage, error) {
	ctx, span := tracer.Start(ctx, "SpendingByAward")
	defer span.End()

	payload := req.payload()
	slog.InfoContext(
		ctx, "fetching spending by award",
		"page", payload.Page,
		"limit", payload.Limit,
	)

	var page ResultPage
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&page).
		Post(spendingByAwardPath)
	if err != nil {
		span.SetStatus(codes.Error, "request failed")
		return nil, fmt.Errorf("spending_by_award: %w", err)
	}
	if res.IsError() {
		span.SetStatus(codes.Error, "non-2xx status")
		detail := errorDetail(res.Body())
		slog.ErrorContext(
			ctx, "spending by award request rejected",
			"status", res.StatusCode(),
			"detail", detail,
		)
		if detail != "" {
			return nil, fmt.Errorf("spending_by_award: status %d: %s", res.StatusCode(), detail)
		}
		return nil, fmt.Errorf("spending_by_award: status %d", res.StatusCode())
	}

	slog.InfoContext(ctx, "fetched spending records", "count", len(page.Results))
	return &page, nil
}

// best-effort extraction of the "detail" message the API puts in error
// bodies, anything unexpected just yields an empty string.
func errorDetail(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	err := json.Unmarshal(body, &payload)
	if err != nil {
		return ""
	}
	return payload.Detail
}

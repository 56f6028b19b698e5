package usaspending

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"usaspending-client/lib/telemetry"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestPayloadDefaults(t *testing.T) {
	p := SearchRequest{}.payload()

	require.Equal(t, DefaultFilters(), p.Filters)
	require.Equal(t, DefaultFields(), p.Fields)
	require.Equal(t, 100, p.Limit)
	require.Equal(t, 1, p.Page)
	require.Equal(t, "Award Amount", p.Sort)
	require.Equal(t, "desc", p.Order)
}

func TestPayloadPassthrough(t *testing.T) {
	filters := Filters{}.
		AwardTypeCodes("10").
		AwardAmounts(AwardAmount{LowerBound: 5_000_000})
	fields := []string{"Award ID", "Recipient Name"}

	p := SearchRequest{
		Filters: filters,
		Fields:  fields,
		Limit:   25,
		Page:    3,
	}.payload()

	require.Equal(t, filters, p.Filters)
	require.Equal(t, fields, p.Fields)
	require.Equal(t, 25, p.Limit)
	require.Equal(t, 3, p.Page)
	// the sort policy is not configurable
	require.Equal(t, "Award Amount", p.Sort)
	require.Equal(t, "desc", p.Order)
}

func TestSpendingByAwardRequestBody(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:usaspending")
	defer cleanup()

	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v2/search/spending_by_award/", r.URL.Path)
		err := json.NewDecoder(r.Body).Decode(&gotBody)
		require.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"results": [], "page_metadata": {"page": 3}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.SpendingByAward(context.Background(), SearchRequest{
		Filters: Filters{}.AwardTypeCodes("10"),
		Fields:  []string{"Award ID"},
		Limit:   25,
		Page:    3,
	})
	require.NoError(t, err)

	wantBody := map[string]any{
		"filters": map[string]any{
			"award_type_codes": []any{"10"},
		},
		"fields": []any{"Award ID"},
		"limit":  float64(25),
		"page":   float64(3),
		"sort":   "Award Amount",
		"order":  "desc",
	}
	if diff := cmp.Diff(wantBody, gotBody); diff != "" {
		t.Fatalf("request body mismatch (-want +got):\n%s", diff)
	}
}

func TestSpendingByAwardSuccess(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:usaspending")
	defer cleanup()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"results": [
				{"Award ID": "A-1", "Award Amount": 1200.5},
				{"Award ID": "A-2", "Award Amount": 800}
			],
			"page_metadata": {"page": 1, "total": 2, "hasNext": false}
		}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	page, err := client.SpendingByAward(context.Background(), SearchRequest{})
	require.NoError(t, err)

	require.Len(t, page.Results, 2)
	require.Equal(t, "A-1", page.Results[0]["Award ID"])
	require.Equal(t, 1200.5, page.Results[0]["Award Amount"])
	require.Equal(t, 1, page.PageMetadata.Page)
	require.Equal(t, 2, page.PageMetadata.Total)
	require.False(t, page.PageMetadata.HasNext)
}

func TestSpendingByAwardServerError(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:usaspending")
	defer cleanup()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"detail": "something went wrong upstream"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	page, err := client.SpendingByAward(context.Background(), SearchRequest{})
	require.Error(t, err)
	require.Nil(t, page)
	require.Contains(t, err.Error(), "status 500")
	require.Contains(t, err.Error(), "something went wrong upstream")
}

func TestSpendingByAwardErrorDetailUnreadable(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:usaspending")
	defer cleanup()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, `<html>bad gateway</html>`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	page, err := client.SpendingByAward(context.Background(), SearchRequest{})
	require.Error(t, err)
	require.Nil(t, page)
	require.Contains(t, err.Error(), "status 502")
}

func TestSpendingByAwardMalformedBody(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:usaspending")
	defer cleanup()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"results": [`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	page, err := client.SpendingByAward(context.Background(), SearchRequest{})
	require.Error(t, err)
	require.Nil(t, page)
}

func TestManualPagination(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:usaspending")
	defer cleanup()

	// page 1 has 3 records, page 2 has 2, page 3 has 1
	pageSizes := map[int]int{1: 3, 2: 2, 3: 1}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Page int `json:"page"`
		}
		err := json.NewDecoder(r.Body).Decode(&body)
		require.NoError(t, err)

		results := make([]map[string]any, pageSizes[body.Page])
		for i := range results {
			results[i] = map[string]any{
				"Award ID": fmt.Sprintf("P%d-%d", body.Page, i),
			}
		}
		page := ResultPage{
			Results: results,
			PageMetadata: PageMetadata{
				Page:    body.Page,
				Total:   6,
				HasNext: body.Page < 3,
			},
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(page)
		require.NoError(t, err)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	var combined []map[string]any
	for pageNum := 1; pageNum <= 3; pageNum++ {
		page, err := client.SpendingByAward(context.Background(), SearchRequest{Page: pageNum})
		require.NoError(t, err)
		require.Len(t, page.Results, pageSizes[pageNum])
		combined = append(combined, page.Results...)
	}

	require.Len(t, combined, 6)
	require.Equal(t, "P1-0", combined[0]["Award ID"])
	require.Equal(t, "P3-0", combined[5]["Award ID"])
}

package usaspending

// Filters narrow which awards the API returns. Keys are the API's
// filter-category names, values pass through verbatim; the API is the
// only place validity is checked.
type Filters map[string]any

type TimePeriod struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type Agency struct {
	Type string `json:"type"`
	Tier string `json:"tier"`
	Name string `json:"name"`
}

type AwardAmount struct {
	LowerBound float64 `json:"lower_bound,omitempty"`
	UpperBound float64 `json:"upper_bound,omitempty"`
}

func (f Filters) TimePeriod(periods ...TimePeriod) Filters {
	f["time_period"] = periods
	return f
}

// Award type codes per the API: "10" is a contract, "02" through "05"
// are grant variants.
func (f Filters) AwardTypeCodes(codes ...string) Filters {
	f["award_type_codes"] = codes
	return f
}

func (f Filters) AwardAmounts(bounds ...AwardAmount) Filters {
	f["award_amounts"] = bounds
	return f
}

func (f Filters) Agencies(agencies ...Agency) Filters {
	f["agencies"] = agencies
	return f
}

func (f Filters) RecipientSearchText(terms ...string) Filters {
	f["recipient_search_text"] = terms
	return f
}

// DefaultFilters covers awards from calendar year 2024.
func DefaultFilters() Filters {
	return Filters{}.TimePeriod(TimePeriod{
		StartDate: "2024-01-01",
		EndDate:   "2024-12-31",
	})
}

// DefaultFields is the column set requested when the caller doesn't
// pick their own.
func DefaultFields() []string {
	return []string{
		"Award ID",
		"Recipient Name",
		"Start Date",
		"End Date",
		"Award Amount",
		"Total Outlays",
		"Awarding Agency",
		"Awarding Sub Agency",
		"Award Type",
		"Funding Agency",
		"Funding Sub Agency",
	}
}

const (
	DefaultLimit = 100

	// sort policy is fixed: biggest awards first
	sortField = "Award Amount"
	sortOrder = "desc"
)

// SearchRequest describes one page worth of a spending_by_award
// search. Zero values fall back to defaults: a one-year time-period
// filter, the DefaultFields column set, limit 100, page 1.
type SearchRequest struct {
	Filters Filters
	Fields  []string
	Limit   int
	Page    int
}

type searchPayload struct {
	Filters Filters  `json:"filters"`
	Fields  []string `json:"fields"`
	Limit   int      `json:"limit"`
	Page    int      `json:"page"`
	Sort    string   `json:"sort"`
	Order   string   `json:"order"`
}

func (r SearchRequest) payload() searchPayload {
	out := searchPayload{
		Filters: r.Filters,
		Fields:  r.Fields,
		Limit:   r.Limit,
		Page:    r.Page,
		Sort:    sortField,
		Order:   sortOrder,
	}
	if out.Filters == nil {
		out.Filters = DefaultFilters()
	}
	if out.Fields == nil {
		out.Fields = DefaultFields()
	}
	if out.Limit == 0 {
		out.Limit = DefaultLimit
	}
	if out.Page == 0 {
		out.Page = 1
	}
	return out
}

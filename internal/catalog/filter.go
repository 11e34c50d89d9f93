// Package catalog implements the visible-listing derivation: given the full
// listing collection and a filter criteria tuple, it computes the ordered set
// of approved listings to display. The criteria tuple round-trips through URL
// query parameters, which are the shareable source of truth for this state.
package catalog

import (
	"net/url"
	"sort"
	"strings"

	"github.com/Dosseh91/listinghub/internal/models"
	"github.com/shopspring/decimal"
)

// SortKey selects the ordering of the visible listing set.
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortOldest    SortKey = "oldest"
	SortPriceLow  SortKey = "price_low"
	SortPriceHigh SortKey = "price_high"
)

// ParseSortKey normalizes a raw sort value. Unknown or empty values fall back
// to newest-first.
func ParseSortKey(raw string) SortKey {
	switch SortKey(raw) {
	case SortOldest, SortPriceLow, SortPriceHigh:
		return SortKey(raw)
	default:
		return SortNewest
	}
}

// Query parameter names, the external interface of the engine.
const (
	ParamCategory = "category"
	ParamPriceMin = "price_min"
	ParamPriceMax = "price_max"
	ParamSearch   = "search"
	ParamSort     = "sort"
)

// Criteria is the filter tuple deriving the visible listing subset. Nil price
// bounds mean "no constraint"; an empty category or search text likewise.
type Criteria struct {
	Category string
	PriceMin *decimal.Decimal
	PriceMax *decimal.Decimal
	Search   string
	Sort     SortKey
}

// ParseQuery decodes a criteria tuple from URL query parameters. The function
// is total: malformed numeric price bounds are treated as unset and an
// unknown sort value falls back to newest.
func ParseQuery(q url.Values) Criteria {
	return Criteria{
		Category: q.Get(ParamCategory),
		PriceMin: parsePrice(q.Get(ParamPriceMin)),
		PriceMax: parsePrice(q.Get(ParamPriceMax)),
		Search:   q.Get(ParamSearch),
		Sort:     ParseSortKey(q.Get(ParamSort)),
	}
}

func parsePrice(raw string) *decimal.Decimal {
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &d
}

// Query encodes the criteria back to URL parameters, omitting unset fields.
// The sort key is always carried so that clearing the other filters leaves a
// URL containing only the sort. Query is the inverse of ParseQuery on
// normalized criteria.
func (c Criteria) Query() url.Values {
	q := url.Values{}
	if c.Category != "" {
		q.Set(ParamCategory, c.Category)
	}
	if c.PriceMin != nil {
		q.Set(ParamPriceMin, c.PriceMin.String())
	}
	if c.PriceMax != nil {
		q.Set(ParamPriceMax, c.PriceMax.String())
	}
	if c.Search != "" {
		q.Set(ParamSearch, c.Search)
	}
	q.Set(ParamSort, string(ParseSortKey(string(c.Sort))))
	return q
}

// IsZero reports whether no filter constraint is set (the sort key alone does
// not count as a constraint).
func (c Criteria) IsZero() bool {
	return c.Category == "" && c.PriceMin == nil && c.PriceMax == nil && c.Search == ""
}

// Apply derives the ordered visible subset from the full collection. Only
// approved listings are ever included. Filters are single-pass and
// deterministic; equal sort keys keep the original collection order.
func Apply(listings []models.Listing, c Criteria) []models.Listing {
	search := strings.ToLower(c.Search)

	out := []models.Listing{}
	for _, l := range listings {
		if l.Status != models.StatusApproved {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(l.Title), search) &&
			!strings.Contains(strings.ToLower(l.Description), search) {
			continue
		}
		if c.Category != "" && l.CategoryID != c.Category {
			continue
		}
		if c.PriceMin != nil && l.Price.LessThan(*c.PriceMin) {
			continue
		}
		if c.PriceMax != nil && l.Price.GreaterThan(*c.PriceMax) {
			continue
		}
		out = append(out, l)
	}

	sortListings(out, c.Sort)
	return out
}

func sortListings(listings []models.Listing, key SortKey) {
	switch ParseSortKey(string(key)) {
	case SortPriceLow:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].Price.LessThan(listings[j].Price)
		})
	case SortPriceHigh:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].Price.GreaterThan(listings[j].Price)
		})
	case SortOldest:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].CreatedAt.Before(listings[j].CreatedAt)
		})
	default:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].CreatedAt.After(listings[j].CreatedAt)
		})
	}
}

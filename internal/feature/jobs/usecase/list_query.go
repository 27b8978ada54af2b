package usecase

import "strconv"

const (
	// DefaultPage is used when the page parameter is absent or not a
	// positive integer.
	DefaultPage = 1
	// DefaultLimit is used when the limit parameter is absent or not a
	// positive integer.
	DefaultLimit = 10

	// filterAll is the sentinel meaning "do not filter on this field".
	filterAll = "all"
)

// SortKey identifies one of the fixed sort orders for job listings.
type SortKey int

const (
	// SortNewest orders by creation time, newest first. It is the default.
	SortNewest SortKey = iota
	// SortOldest orders by creation time, oldest first.
	SortOldest
	// SortPositionAsc orders by position ascending (a-z).
	SortPositionAsc
	// SortPositionDesc orders by position descending (z-a).
	SortPositionDesc
)

// ListParams carries the raw, untrusted query parameters of a job listing
// request. All fields are optional; Page and Limit arrive as strings and
// are coerced by BuildListQuery.
type ListParams struct {
	Status       string
	WorkType     string
	WorkLocation string
	Search       string
	Sort         string
	Page         string
	Limit        string
}

// ListQuery is the store-agnostic filter/sort/pagination specification a
// repository executes. Empty filter fields mean "no clause".
type ListQuery struct {
	// CreatedBy scopes every listing to the requesting user's jobs.
	CreatedBy uint

	Status       string
	WorkType     string
	WorkLocation string

	// Search matches as a case-insensitive substring of position.
	Search string

	Sort  SortKey
	Page  int
	Limit int
}

// Offset returns the number of rows to skip for the requested page.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// BuildListQuery normalizes raw request parameters into a ListQuery scoped
// to the given user. It never fails: unknown or malformed values degrade to
// defaults, and the "all" sentinel drops a filter entirely.
func BuildListQuery(createdBy uint, p ListParams) ListQuery {
	return ListQuery{
		CreatedBy:    createdBy,
		Status:       normalizeFilter(p.Status),
		WorkType:     normalizeFilter(p.WorkType),
		WorkLocation: normalizeFilter(p.WorkLocation),
		Search:       p.Search,
		Sort:         parseSortKey(p.Sort),
		Page:         parsePositiveInt(p.Page, DefaultPage),
		Limit:        parsePositiveInt(p.Limit, DefaultLimit),
	}
}

// NumOfPage returns the total page count for a match count and page size,
// rounding up. Zero matches yield zero pages.
func NumOfPage(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

func normalizeFilter(v string) string {
	if v == filterAll {
		return ""
	}
	return v
}

// parseSortKey maps the request sort parameter onto a SortKey.
// Both "z-a" and "A-Z" mean position descending, matching the historical
// client contract; anything unrecognized falls back to newest-first.
func parseSortKey(sort string) SortKey {
	switch sort {
	case "oldest":
		return SortOldest
	case "a-z":
		return SortPositionAsc
	case "z-a", "A-Z":
		return SortPositionDesc
	default:
		return SortNewest
	}
}

// parsePositiveInt coerces a raw parameter to a positive integer, clamping
// absent, non-numeric and non-positive values to the fallback.
func parsePositiveInt(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

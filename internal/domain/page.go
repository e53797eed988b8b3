package domain

// PageRequest is a limit/offset window over an ordered result.
type PageRequest struct {
	Limit  int
	Offset int
}

// Page is one window of a result plus the size of the whole result.
// Count is zero when Data is empty, even past the end of a non-empty result.
type Page[T any] struct {
	Data  []T   `json:"data"`
	Count int64 `json:"count"`
}

// NewPage returns an empty page whose Data serializes as [] rather than null.
func NewPage[T any](capacity int) Page[T] {
	return Page[T]{Data: make([]T, 0, capacity)}
}

// MinTrigramThreshold is pg_trgm's default similarity_threshold. Searches
// prefilter with the % operator, so lower thresholds would silently lose
// matches scoring between the threshold and this floor.
const MinTrigramThreshold = 0.3

// NameQuery is a normalized fuzzy name search.
type NameQuery struct {
	Name      string
	Threshold float64
}

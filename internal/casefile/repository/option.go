package repository

// ListCasesOptions holds filter parameters for listing cases.
type ListCasesOptions struct {
	Status string // Backend-side status filter; empty lists every case
}

// CacheKey identifies the options in a cache.
func (o ListCasesOptions) CacheKey() string {
	return "status=" + o.Status
}

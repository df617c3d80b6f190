package models

const (
	DefaultPageSize = 25
	MaxPageSize     = 100
)

// PaginationAndSorting implements keyset pagination: OffsetId is the id of the
// last record of the previous page.
type PaginationAndSorting struct {
	Limit    int
	OffsetId string
}

func WithPaginationDefaults(pagination PaginationAndSorting) PaginationAndSorting {
	if pagination.Limit <= 0 {
		pagination.Limit = DefaultPageSize
	}
	if pagination.Limit > MaxPageSize {
		pagination.Limit = MaxPageSize
	}
	return pagination
}

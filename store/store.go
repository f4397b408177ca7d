// Package store implements the owner-scoped record store and the summary
// aggregation on top of it. Every operation takes the owning user id
// explicitly; nothing in this package reads ambient request state.
package store

import (
	"errors"
	"math"

	"gorm.io/gorm"
)

// Default pagination for inflow/outflow listing.
const (
	DefaultPage  = 1
	DefaultLimit = 50

	// DefaultHistoryLimit is the default page size for the merged
	// transaction history.
	DefaultHistoryLimit = 20
)

// Store provides durable, per-user storage of inflow and outflow records.
type Store struct {
	db *gorm.DB
}

// New creates a Store backed by db.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Pagination describes one page of a result set. Total counts all matching
// records before pagination.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
}

func paginationFor(total int64, page, limit int) Pagination {
	return Pagination{
		Total: total,
		Page:  page,
		Pages: int(math.Ceil(float64(total) / float64(limit))),
	}
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

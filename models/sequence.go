package models

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"
)

// Default order-number sequences. The second name is the legacy sequence
// kept from the previous system; it is only consulted when the primary
// does not exist in the target database.
var DefaultSequenceNames = []string{"order_number_seq", "sales_order_seq"}

// ErrSequenceUnavailable is returned when no sequence in the chain exists.
var ErrSequenceUnavailable = errors.New("no order number sequence available")

// NumberSource hands out unique, monotonically increasing order numbers.
// Implementations must be safe for concurrent callers; uniqueness across
// simultaneous checkouts is the source's responsibility.
type NumberSource interface {
	Next(tx *gorm.DB) (int64, error)
}

// SequenceChain draws numbers from the first existing database sequence
// in an ordered list of names. Existence is probed with to_regclass so a
// missing primary never poisons the surrounding transaction.
type SequenceChain struct {
	Names []string
}

func NewSequenceChain(names ...string) *SequenceChain {
	if len(names) == 0 {
		names = DefaultSequenceNames
	}
	return &SequenceChain{Names: names}
}

func (s *SequenceChain) Next(tx *gorm.DB) (int64, error) {
	for _, name := range s.Names {
		var reg sql.NullString
		if err := tx.Raw("SELECT to_regclass(?)", name).Scan(&reg).Error; err != nil {
			return 0, fmt.Errorf("probe sequence %s: %w", name, err)
		}
		if !reg.Valid {
			continue
		}
		var n int64
		if err := tx.Raw("SELECT nextval(?)", name).Scan(&n).Error; err != nil {
			return 0, fmt.Errorf("nextval %s: %w", name, err)
		}
		return n, nil
	}
	return 0, ErrSequenceUnavailable
}

// CounterSource is an in-process NumberSource for sqlite development
// setups and tests. Numbers survive rollbacks, matching the burn-on-abort
// semantics of real sequences.
type CounterSource struct {
	mu sync.Mutex
	n  int64
}

func (c *CounterSource) Next(_ *gorm.DB) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
	return c.n, nil
}

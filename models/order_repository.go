package models

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Fixed note identifying where committed orders came from.
const orderNote = "Created by quick-order intake"

var (
	// ErrNoBaskets is returned when checkout is invoked with nothing to commit.
	ErrNoBaskets = errors.New("no baskets to check out")
	// ErrEmptyBasket is returned when a submitted basket has no items left.
	ErrEmptyBasket = errors.New("basket has no items")
)

type OrderRepository struct {
	db  *gorm.DB
	seq NumberSource

	// RevalidatePrices re-fetches each line's current price table entry
	// inside the checkout transaction and aborts the whole batch when a
	// unit price changed since analysis. Off by default: the basket is a
	// human-reviewed snapshot and is trusted as submitted.
	RevalidatePrices bool
}

func NewOrderRepository(db *gorm.DB, seq NumberSource) *OrderRepository {
	return &OrderRepository{
		db:  db,
		seq: seq,
	}
}

// CreateOrders persists one order per basket as a single unit of work.
// Either every basket is committed or none is; the first failure rolls
// back the entire batch, including baskets already processed. On success
// it returns the generated order numbers in basket order.
//
// Sequence values consumed before a rollback stay consumed. Numbers are
// monotonic, not gap-free.
func (r *OrderRepository) CreateOrders(baskets []Basket, sellerID uint, label string) ([]string, error) {
	if len(baskets) == 0 {
		return nil, ErrNoBaskets
	}
	for _, b := range baskets {
		if len(b.Items) == 0 {
			return nil, fmt.Errorf("%w: supplier %d", ErrEmptyBasket, b.SupplierID)
		}
	}

	numbers := make([]string, 0, len(baskets))
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, b := range baskets {
			n, err := r.seq.Next(tx)
			if err != nil {
				return err
			}
			number := FormatOrderNumber(label, n)

			gross := decimal.Zero
			for _, it := range b.Items {
				gross = gross.Add(it.GrossPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
			}
			order := Order{
				Number:     number,
				ClientID:   b.ClientID,
				SupplierID: b.SupplierID,
				SellerID:   sellerID,
				GrossTotal: gross,
				NetTotal:   b.Total,
				Note:       orderNote,
			}
			if err := tx.Create(&order).Error; err != nil {
				return fmt.Errorf("order %s: %w", number, err)
			}

			lines := make([]OrderLine, 0, len(b.Items))
			for i, it := range b.Items {
				if r.RevalidatePrices {
					if err := revalidate(tx, it); err != nil {
						return err
					}
				}
				qty := decimal.NewFromInt(int64(it.Quantity))
				line := OrderLine{
					OrderID:        order.ID,
					LineNo:         i + 1,
					ProductID:      it.ProductID,
					Code:           it.Code,
					Description:    it.Description,
					Quantity:       it.Quantity,
					GrossUnitPrice: it.GrossPrice,
					GrossTotal:     it.GrossPrice.Mul(qty),
					NetUnitPrice:   it.UnitPrice,
					NetTotal:       it.Total,
					IsPromo:        it.IsPromo,
				}
				line.SetDiscounts(it.Discounts)
				lines = append(lines, line)
			}
			if err := tx.Create(&lines).Error; err != nil {
				return fmt.Errorf("order %s lines: %w", number, err)
			}
			numbers = append(numbers, number)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return numbers, nil
}

// revalidate compares a basket line against the current price table entry.
func revalidate(tx *gorm.DB, it BasketItem) error {
	var entry PriceTableEntry
	if err := tx.Where("product_id = ? AND table_id = ?", it.ProductID, it.TableID).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("product %s no longer priced in table %s", it.Code, it.TableID)
		}
		return err
	}
	current, _ := entry.UnitPrice()
	if !current.Equal(it.UnitPrice) {
		return fmt.Errorf("price changed for %s: quoted %s, current %s",
			it.Code, it.UnitPrice.StringFixed(2), current.StringFixed(2))
	}
	return nil
}

// FormatOrderNumber builds the human-readable order identifier from the
// seller label and an allocated sequence value: the label with all
// whitespace stripped, followed by the zero-padded six-digit number.
func FormatOrderNumber(label string, n int64) string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, label)
	return fmt.Sprintf("%s%06d", stripped, n)
}

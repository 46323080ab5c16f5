package models

import "github.com/shopspring/decimal"

// PriceTableEntry is the price of one product within one price table.
// A product without an entry in a table cannot be bought under that table.
type PriceTableEntry struct {
	ID            uint            `gorm:"primaryKey"`
	ProductID     uint            `gorm:"not null;uniqueIndex:idx_product_table"`
	TableID       string          `gorm:"not null;uniqueIndex:idx_product_table"`
	GrossPrice    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PromoPrice    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	SpecialPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	DiscountGroup string
}

func (e *PriceTableEntry) TableName() string {
	return "price_table_entries"
}

// UnitPrice selects the promotional price when it is greater than zero,
// otherwise the gross price. The bool reports which branch was taken.
func (e *PriceTableEntry) UnitPrice() (decimal.Decimal, bool) {
	if e.PromoPrice.GreaterThan(decimal.Zero) {
		return e.PromoPrice, true
	}
	return e.GrossPrice, false
}

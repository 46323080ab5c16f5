package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the persisted header created from one basket at checkout.
// Rows are immutable once written from this subsystem's perspective.
type Order struct {
	ID         uint            `gorm:"primaryKey"`
	Number     string          `gorm:"uniqueIndex;not null"`
	ClientID   uint            `gorm:"not null;index"`
	SupplierID uint            `gorm:"not null;index"`
	SellerID   uint            `gorm:"not null"`
	GrossTotal decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	NetTotal   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Note       string
	CreatedAt  time.Time
	Lines      []OrderLine `gorm:"foreignKey:OrderID"`
}

func (o *Order) TableName() string {
	return "orders"
}

// OrderLine snapshots one basket item at commit time. The discount slots
// and the promo flag are copied, so later catalog or price-table changes
// never retroactively alter a committed order.
type OrderLine struct {
	ID             uint   `gorm:"primaryKey"`
	OrderID        uint   `gorm:"not null;index"`
	LineNo         int    `gorm:"not null"`
	ProductID      uint   `gorm:"not null"`
	Code           string `gorm:"not null"`
	Description    string
	Quantity       int             `gorm:"not null"`
	GrossUnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	GrossTotal     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	NetUnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	NetTotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Discount1      float64
	Discount2      float64
	Discount3      float64
	Discount4      float64
	Discount5      float64
	Discount6      float64
	Discount7      float64
	Discount8      float64
	Discount9      float64
	IsPromo        bool
}

func (l *OrderLine) TableName() string {
	return "order_lines"
}

// SetDiscounts copies the nine-slot snapshot into the line columns.
func (l *OrderLine) SetDiscounts(d [9]float64) {
	l.Discount1, l.Discount2, l.Discount3 = d[0], d[1], d[2]
	l.Discount4, l.Discount5, l.Discount6 = d[3], d[4], d[5]
	l.Discount7, l.Discount8, l.Discount9 = d[6], d[7], d[8]
}

package models

// Supplier represents an industry the company buys from.
// It includes a display name and the fiscal tax id printed on orders.
type Supplier struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"not null"`
	TaxID string `gorm:"column:tax_id"`
}

func (s *Supplier) TableName() string {
	return "suppliers"
}

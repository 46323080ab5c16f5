package models

// ClientCondition records that a client buys from a supplier under a
// specific price table, with nine negotiated discount slots. Each slot
// defaults to zero independently of the others.
type ClientCondition struct {
	ID         uint   `gorm:"primaryKey"`
	ClientID   uint   `gorm:"not null;uniqueIndex:idx_client_supplier"`
	SupplierID uint   `gorm:"not null;uniqueIndex:idx_client_supplier"`
	TableID    string `gorm:"not null"`
	Active     bool   `gorm:"not null;default:true"`
	Discount1  float64
	Discount2  float64
	Discount3  float64
	Discount4  float64
	Discount5  float64
	Discount6  float64
	Discount7  float64
	Discount8  float64
	Discount9  float64
}

func (c *ClientCondition) TableName() string {
	return "client_conditions"
}

// Discounts returns the nine slots as a value copy, never a live reference.
func (c *ClientCondition) Discounts() [9]float64 {
	return [9]float64{
		c.Discount1, c.Discount2, c.Discount3,
		c.Discount4, c.Discount5, c.Discount6,
		c.Discount7, c.Discount8, c.Discount9,
	}
}

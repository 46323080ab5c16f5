package models

import "strings"

// Product represents a catalog product owned by a single supplier.
// Besides the canonical code it carries three alias representations;
// an incoming raw code may match any of the four.
type Product struct {
	ID             uint   `gorm:"primaryKey"`
	Code           string `gorm:"index;not null"`
	NormalizedCode string `gorm:"index"`
	ConversionCode string `gorm:"index"`
	LegacyCode     string `gorm:"index"`
	Description    string
	SupplierID     uint     `gorm:"not null;index"`
	Supplier       Supplier `gorm:"foreignKey:SupplierID"`
}

func (p *Product) TableName() string {
	return "products"
}

// NormalizeCode uppercases a code and strips every non-alphanumeric rune.
// The same transformation is applied to stored aliases and to incoming
// raw codes, so "ab-123 " and "AB123" compare equal.
func NormalizeCode(code string) string {
	var b strings.Builder
	b.Grow(len(code))
	for _, r := range strings.ToUpper(code) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

package models

import (
	"errors"

	"gorm.io/gorm"
)

// ErrPriceEntryNotFound is returned when a product has no entry in the
// requested price table. The resolution loop treats it as "try the next
// candidate", never as a failure.
var ErrPriceEntryNotFound = errors.New("price table entry not found")

type PriceRepository struct {
	db *gorm.DB
}

func NewPriceRepository(db *gorm.DB) *PriceRepository {
	return &PriceRepository{
		db: db,
	}
}

func (r *PriceRepository) GetEntry(productID uint, tableID string) (*PriceTableEntry, error) {
	var entry PriceTableEntry
	if err := r.db.
		Where("product_id = ? AND table_id = ?", productID, tableID).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPriceEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

package models

import "gorm.io/gorm"

type SupplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{
		db: db,
	}
}

func (r *SupplierRepository) GetAllSuppliers() ([]Supplier, error) {
	var suppliers []Supplier
	if err := r.db.Order("id ASC").Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (r *SupplierRepository) CreateSupplier(supplier *Supplier) error {
	return r.db.Create(supplier).Error
}

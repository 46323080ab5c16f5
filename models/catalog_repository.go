package models

import (
	"errors"

	"gorm.io/gorm"
)

// CandidateLimit caps how many catalog candidates a single raw code may
// produce. Anything beyond that is noise from overly generic codes.
const CandidateLimit = 5

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

type ProductFilters struct {
	SupplierID *uint
	CodePrefix string
}

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{
		db: db,
	}
}

// FindCandidates returns every product whose canonical, normalized,
// conversion or legacy code matches the raw code, each with its supplier
// preloaded. Ordering is pinned to (supplier_id, id) so that the
// first-match-wins resolution downstream is deterministic across data
// layouts. An empty slice is a valid result, not an error.
func (r *CatalogRepository) FindCandidates(code string) ([]Product, error) {
	var products []Product
	if err := r.db.
		Preload("Supplier").
		Where("code = ? OR normalized_code = ? OR conversion_code = ? OR legacy_code = ?",
			code, NormalizeCode(code), code, code).
		Order("supplier_id ASC, id ASC").
		Limit(CandidateLimit).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *CatalogRepository) GetFilteredProducts(offset, limit int, filters ProductFilters) ([]Product, int64, error) {
	var products []Product
	var total int64

	query := r.db.Model(&Product{}).Preload("Supplier")

	// Filter
	if filters.SupplierID != nil {
		query = query.Where("supplier_id = ?", *filters.SupplierID)
	}
	if filters.CodePrefix != "" {
		query = query.Where("code LIKE ?", filters.CodePrefix+"%")
	}

	// Count total after filtering
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Apply pagination
	if err := query.Order("code ASC").Offset(offset).Limit(limit).Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *CatalogRepository) GetByCode(code string) (*Product, error) {
	var product Product
	if err := r.db.
		Preload("Supplier").
		Where("code = ?", code).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err // Other DB error
	}
	return &product, nil
}

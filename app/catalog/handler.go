package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/orderdesk/go-order-intake/models"
)

type Response struct {
	Total    int       `json:"total"`
	Products []Product `json:"products"`
}

type Supplier struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	TaxID string `json:"taxId"`
}

type Product struct {
	Code        string   `json:"code"`
	Description string   `json:"description"`
	Supplier    Supplier `json:"supplier"`
}

type ProductProvider interface {
	GetFilteredProducts(offset, limit int, filters models.ProductFilters) ([]models.Product, int64, error)
	GetByCode(code string) (*models.Product, error)
}

type CatalogHandler struct {
	repo ProductProvider
}

func NewCatalogHandler(r ProductProvider) *CatalogHandler {
	return &CatalogHandler{
		repo: r,
	}
}

func (h *CatalogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	// Parse pagination query params
	offset := 0
	limit := 10

	if oStr := r.URL.Query().Get("offset"); oStr != "" {
		if o, err := strconv.Atoi(oStr); err == nil && o >= 0 {
			offset = o
		}
	}

	if lStr := r.URL.Query().Get("limit"); lStr != "" {
		if l, err := strconv.Atoi(lStr); err == nil {
			if l < 1 {
				limit = 1
			} else if l > 100 {
				limit = 100
			} else {
				limit = l
			}
		}
	}

	// Parse filters
	var supplierFilter *uint
	if sStr := r.URL.Query().Get("supplier"); sStr != "" {
		if val, err := strconv.ParseUint(sStr, 10, 32); err == nil {
			id := uint(val)
			supplierFilter = &id
		}
	}

	filters := models.ProductFilters{
		SupplierID: supplierFilter,
		CodePrefix: r.URL.Query().Get("code"),
	}

	res, total, err := h.repo.GetFilteredProducts(offset, limit, filters)
	if err != nil {
		http.Error(w, "failed to get products", http.StatusInternalServerError)
		return
	}

	products := make([]Product, len(res))
	for i, p := range res {
		products[i] = Product{
			Code:        p.Code,
			Description: p.Description,
			Supplier: Supplier{
				ID:    p.Supplier.ID,
				Name:  p.Supplier.Name,
				TaxID: p.Supplier.TaxID,
			},
		}
	}

	w.Header().Set("Content-Type", "application/json")
	response := Response{
		Total:    int(total),
		Products: products,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *CatalogHandler) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	product, err := h.repo.GetByCode(code)
	if err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	response := struct {
		Code           string   `json:"code"`
		NormalizedCode string   `json:"normalizedCode"`
		ConversionCode string   `json:"conversionCode"`
		LegacyCode     string   `json:"legacyCode"`
		Description    string   `json:"description"`
		Supplier       Supplier `json:"supplier"`
	}{
		Code:           product.Code,
		NormalizedCode: product.NormalizedCode,
		ConversionCode: product.ConversionCode,
		LegacyCode:     product.LegacyCode,
		Description:    product.Description,
		Supplier: Supplier{
			ID:    product.Supplier.ID,
			Name:  product.Supplier.Name,
			TaxID: product.Supplier.TaxID,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

package suppliers

import (
	"encoding/json"
	"net/http"

	"github.com/orderdesk/go-order-intake/models"
)

type SupplierResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	TaxID string `json:"taxId"`
}

type SupplierProvider interface {
	GetAllSuppliers() ([]models.Supplier, error)
	CreateSupplier(supplier *models.Supplier) error
}

type SupplierHandler struct {
	repo SupplierProvider
}

func NewSupplierHandler(r SupplierProvider) *SupplierHandler {
	return &SupplierHandler{repo: r}
}

func (h *SupplierHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.repo.GetAllSuppliers()
	if err != nil {
		http.Error(w, "failed to fetch suppliers", http.StatusInternalServerError)
		return
	}

	response := make([]SupplierResponse, len(suppliers))
	for i, s := range suppliers {
		response[i] = SupplierResponse{
			ID:    s.ID,
			Name:  s.Name,
			TaxID: s.TaxID,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *SupplierHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name  string `json:"name"`
		TaxID string `json:"taxId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if input.Name == "" {
		http.Error(w, "Missing name", http.StatusBadRequest)
		return
	}

	supplier := &models.Supplier{
		Name:  input.Name,
		TaxID: input.TaxID,
	}

	if err := h.repo.CreateSupplier(supplier); err != nil {
		http.Error(w, "Failed to create supplier", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Supplier created successfully",
	})
}

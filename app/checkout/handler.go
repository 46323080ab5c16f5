package checkout

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/orderdesk/go-order-intake/models"
)

type Request struct {
	Baskets     []models.Basket `json:"baskets"`
	SellerID    uint            `json:"sellerId"`
	SellerLabel string          `json:"sellerLabel"`
}

type Response struct {
	CreatedOrderIDs []string `json:"createdOrderIds"`
}

// OrderCreator persists one order per basket atomically and returns the
// generated identifiers, or an error and no identifiers at all.
type OrderCreator interface {
	CreateOrders(baskets []models.Basket, sellerID uint, label string) ([]string, error)
}

type CheckoutHandler struct {
	orders OrderCreator
}

func NewCheckoutHandler(orders OrderCreator) *CheckoutHandler {
	return &CheckoutHandler{orders: orders}
}

// HandleCheckout turns user-approved baskets into persisted orders in one
// all-or-nothing step. Failures surface the underlying error text so the
// rep can see what went wrong (missing sequence, constraint violation).
func (h *CheckoutHandler) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if len(req.Baskets) == 0 {
		http.Error(w, "Missing baskets", http.StatusBadRequest)
		return
	}
	for _, b := range req.Baskets {
		if len(b.Items) == 0 {
			http.Error(w, "Basket without items", http.StatusBadRequest)
			return
		}
	}
	if req.SellerID == 0 {
		http.Error(w, "Missing sellerId", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.SellerLabel) == "" {
		http.Error(w, "Missing sellerLabel", http.StatusBadRequest)
		return
	}

	ids, err := h.orders.CreateOrders(req.Baskets, req.SellerID, req.SellerLabel)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(Response{CreatedOrderIDs: ids}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

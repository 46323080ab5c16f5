package analyze

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/orderdesk/go-order-intake/models"
	"github.com/shopspring/decimal"
)

// Codes shorter than this after trimming are treated as paste noise and
// silently dropped: they show up neither in baskets nor in notFound.
const minCodeLength = 3

// Quantity accepts a JSON number or a numeric string. Anything
// non-numeric decodes to the default of 1; values below 1 are lifted to 1.
type Quantity int

func (q *Quantity) UnmarshalJSON(data []byte) error {
	*q = 1
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	s := string(data)
	if data[0] == '"' {
		var unquoted string
		if err := json.Unmarshal(data, &unquoted); err != nil {
			return nil
		}
		s = strings.TrimSpace(unquoted)
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || n < 1 {
		return nil
	}
	*q = Quantity(int(n))
	return nil
}

type LineItem struct {
	Code     string   `json:"code"`
	Quantity Quantity `json:"quantity"`
}

type Request struct {
	ClientID uint       `json:"clientId"`
	Items    []LineItem `json:"items"`
}

type Response struct {
	Grouped  []models.Basket         `json:"grouped"`
	NotFound []models.UnresolvedItem `json:"notFound"`
	QuotedAt time.Time               `json:"quotedAt"`
}

type CatalogProvider interface {
	FindCandidates(code string) ([]models.Product, error)
}

type ConditionProvider interface {
	GetByClient(clientID uint) (map[uint]models.ClientCondition, error)
}

type PriceProvider interface {
	GetEntry(productID uint, tableID string) (*models.PriceTableEntry, error)
}

type AnalyzeHandler struct {
	catalog    CatalogProvider
	conditions ConditionProvider
	prices     PriceProvider
}

func NewAnalyzeHandler(catalog CatalogProvider, conditions ConditionProvider, prices PriceProvider) *AnalyzeHandler {
	return &AnalyzeHandler{
		catalog:    catalog,
		conditions: conditions,
		prices:     prices,
	}
}

// HandleAnalyze resolves and prices a pasted code/quantity list for one
// client. The call is read-only and idempotent; partial matches are
// reported in notFound, never as an error.
func (h *AnalyzeHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.ClientID == 0 {
		http.Error(w, "Missing clientId", http.StatusBadRequest)
		return
	}
	if len(req.Items) == 0 {
		http.Error(w, "Missing items", http.StatusBadRequest)
		return
	}

	// One conditions query per analyze call, not one per item.
	conditions, err := h.conditions.GetByClient(req.ClientID)
	if err != nil {
		http.Error(w, "failed to load client conditions", http.StatusInternalServerError)
		return
	}

	grouped := make([]models.Basket, 0)
	basketIdx := make(map[uint]int)
	notFound := make([]models.UnresolvedItem, 0)

	for _, raw := range req.Items {
		code := strings.TrimSpace(raw.Code)
		if len(code) < minCodeLength {
			continue
		}
		qty := int(raw.Quantity)
		if qty < 1 {
			qty = 1
		}

		candidates, err := h.catalog.FindCandidates(code)
		if err != nil {
			http.Error(w, "failed to query catalog", http.StatusInternalServerError)
			return
		}
		if len(candidates) == 0 {
			notFound = append(notFound, models.UnresolvedItem{
				Code: code, Quantity: qty, Reason: models.ReasonNotInCatalog,
			})
			continue
		}

		item, supplier, ok, err := h.resolve(candidates, conditions, code, qty)
		if err != nil {
			http.Error(w, "failed to query price tables", http.StatusInternalServerError)
			return
		}
		if !ok {
			notFound = append(notFound, models.UnresolvedItem{
				Code: code, Quantity: qty, Reason: models.ReasonNoActiveTable,
			})
			continue
		}

		idx, exists := basketIdx[supplier.ID]
		if !exists {
			grouped = append(grouped, models.Basket{
				SupplierID:    supplier.ID,
				SupplierName:  supplier.Name,
				SupplierTaxID: supplier.TaxID,
				ClientID:      req.ClientID,
			})
			idx = len(grouped) - 1
			basketIdx[supplier.ID] = idx
		}
		grouped[idx].Items = append(grouped[idx].Items, item)
		grouped[idx].Total = grouped[idx].Total.Add(item.Total)
	}

	w.Header().Set("Content-Type", "application/json")
	response := Response{
		Grouped:  grouped,
		NotFound: notFound,
		QuotedAt: time.Now().UTC(),
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// resolve walks the candidates in catalog order and accepts the first one
// whose supplier has a client condition and a price entry under that
// condition's table. No scoring: first match wins, iteration stops there.
func (h *AnalyzeHandler) resolve(candidates []models.Product, conditions map[uint]models.ClientCondition, code string, qty int) (models.BasketItem, models.Supplier, bool, error) {
	for _, p := range candidates {
		cond, ok := conditions[p.SupplierID]
		if !ok {
			continue
		}
		entry, err := h.prices.GetEntry(p.ID, cond.TableID)
		if err != nil {
			if errors.Is(err, models.ErrPriceEntryNotFound) {
				continue
			}
			return models.BasketItem{}, models.Supplier{}, false, err
		}
		unit, promo := entry.UnitPrice()
		item := models.BasketItem{
			ProductID:   p.ID,
			Code:        code,
			Description: p.Description,
			Quantity:    qty,
			GrossPrice:  entry.GrossPrice,
			UnitPrice:   unit,
			Total:       unit.Mul(decimal.NewFromInt(int64(qty))),
			SupplierID:  p.SupplierID,
			IsPromo:     promo,
			TableID:     cond.TableID,
			Discounts:   cond.Discounts(),
		}
		return item, p.Supplier, true, nil
	}
	return models.BasketItem{}, models.Supplier{}, false, nil
}

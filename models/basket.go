package models

import "github.com/shopspring/decimal"

// Reasons attached to unresolved items. These strings are part of the API
// contract with the review screen, keep them stable.
const (
	ReasonNotInCatalog  = "not in catalog"
	ReasonNoActiveTable = "catalog match exists but client has no active table for any matching supplier"
)

// BasketItem is a resolved, priced line held in a basket between the
// analyze and checkout calls. All prices are snapshots taken at analysis
// time; checkout never follows them back to the catalog.
type BasketItem struct {
	ProductID   uint            `json:"productId"`
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	GrossPrice  decimal.Decimal `json:"grossPrice"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
	SupplierID  uint            `json:"supplierId"`
	IsPromo     bool            `json:"isPromo"`
	TableID     string          `json:"tableId"`
	Discounts   [9]float64      `json:"discounts"`
}

// Basket groups the resolved items of one supplier for one client.
// Supplier metadata is attached once here rather than on every item.
type Basket struct {
	SupplierID    uint            `json:"supplierId"`
	SupplierName  string          `json:"supplierName"`
	SupplierTaxID string          `json:"supplierTaxId"`
	ClientID      uint            `json:"clientId"`
	Items         []BasketItem    `json:"items"`
	Total         decimal.Decimal `json:"total"`
}

// UnresolvedItem is an input line that could not be matched to a priced
// product. It is reported, never raised as an error.
type UnresolvedItem struct {
	Code     string `json:"code"`
	Quantity int    `json:"quantity"`
	Reason   string `json:"reason"`
}

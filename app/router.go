package app

import (
	"net/http"

	"github.com/orderdesk/go-order-intake/app/analyze"
	"github.com/orderdesk/go-order-intake/app/catalog"
	"github.com/orderdesk/go-order-intake/app/checkout"
	"github.com/orderdesk/go-order-intake/app/suppliers"
	"github.com/orderdesk/go-order-intake/config"
	"github.com/orderdesk/go-order-intake/models"
	"gorm.io/gorm"
)

// NewRouter wires the repositories and handlers onto a ServeMux.
func NewRouter(dbConn *gorm.DB, cfg config.Config) http.Handler {
	catalogRepo := models.NewCatalogRepository(dbConn)
	conditionRepo := models.NewConditionRepository(dbConn)
	priceRepo := models.NewPriceRepository(dbConn)
	supplierRepo := models.NewSupplierRepository(dbConn)

	var seq models.NumberSource
	if cfg.Driver == "sqlite" {
		seq = &models.CounterSource{}
	} else {
		seq = models.NewSequenceChain(cfg.OrderSequences...)
	}
	orderRepo := models.NewOrderRepository(dbConn, seq)
	orderRepo.RevalidatePrices = cfg.PricePolicy == config.PricePolicyRevalidate

	analyzeHandler := analyze.NewAnalyzeHandler(catalogRepo, conditionRepo, priceRepo)
	checkoutHandler := checkout.NewCheckoutHandler(orderRepo)
	catalogHandler := catalog.NewCatalogHandler(catalogRepo)
	supplierHandler := suppliers.NewSupplierHandler(supplierRepo)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /analyze", analyzeHandler.HandleAnalyze)
	mux.HandleFunc("POST /checkout", checkoutHandler.HandleCheckout)
	mux.HandleFunc("GET /catalog", catalogHandler.HandleGet)
	mux.HandleFunc("GET /catalog/{code}", catalogHandler.HandleGetProduct)
	mux.HandleFunc("GET /suppliers", supplierHandler.HandleGetAll)
	mux.HandleFunc("POST /suppliers", supplierHandler.HandleCreate)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

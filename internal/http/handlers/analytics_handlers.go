package handlers

import (
	"net/http"
)

// InventorySummaryHandler godoc
// @Summary Inventory totals
// @Tags analytics
// @Produce json
// @Success 200 {object} inventory.InventorySummary
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /analytics/inventory [get]
func InventorySummaryHandler(w http.ResponseWriter, r *http.Request) {
	summary, err := inventorySvc.InventorySummary()
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respond(w, http.StatusOK, summary)
}

// SalesSummaryHandler godoc
// @Summary Sales totals
// @Description average_sale_value is null when no sale has been recorded
// @Tags analytics
// @Produce json
// @Success 200 {object} inventory.SalesSummary
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /analytics/sales [get]
func SalesSummaryHandler(w http.ResponseWriter, r *http.Request) {
	summary, err := inventorySvc.SalesSummary()
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respond(w, http.StatusOK, summary)
}

// DashboardHandler godoc
// @Summary Dashboard aggregates
// @Tags analytics
// @Produce json
// @Param threshold query int false "Low stock threshold"
// @Success 200 {object} inventory.Dashboard
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /analytics/dashboard [get]
func DashboardHandler(w http.ResponseWriter, r *http.Request) {
	threshold := lowStockThreshold
	t, err := queryInt(r, "threshold")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if t != nil {
		threshold = *t
	}

	dashboard, err := inventorySvc.Dashboard(threshold)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respond(w, http.StatusOK, dashboard)
}

// HealthHandler reports liveness.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pricetrack/internal/services"
)

// SupermarketHandler handles supermarket and branch requests.
type SupermarketHandler struct {
	catalogService services.CatalogServicer
	historyService services.PriceHistoryServicer
}

// NewSupermarketHandler creates a new SupermarketHandler.
func NewSupermarketHandler(catalogService services.CatalogServicer, historyService services.PriceHistoryServicer) *SupermarketHandler {
	return &SupermarketHandler{catalogService: catalogService, historyService: historyService}
}

// ListSupermarkets lists active supermarkets
// @Summary     List supermarkets
// @Tags        supermarkets
// @Produce     json
// @Success     200 {object} Response{data=[]models.Supermarket} "Supermarkets"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /supermarkets [get]
func (h *SupermarketHandler) ListSupermarkets(c *gin.Context) {
	markets, err := h.catalogService.ListSupermarkets(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondOK(c, http.StatusOK, markets)
}

// ListBranches lists the active branches of a supermarket
// @Summary     List branches
// @Tags        supermarkets
// @Produce     json
// @Param       supermarketId path int true "Supermarket ID"
// @Success     200 {object} Response{data=[]models.Branch} "Branches"
// @Failure     400 {object} ErrorResponse "Invalid supermarket ID"
// @Failure     404 {object} ErrorResponse "Supermarket not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /supermarkets/{supermarketId}/branches [get]
func (h *SupermarketHandler) ListBranches(c *gin.Context) {
	supermarketID, err := parsePathID(c, "supermarketId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	branches, err := h.catalogService.ListBranches(c.Request.Context(), supermarketID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondOK(c, http.StatusOK, branches)
}

// GetProductPrices returns the latest price of every product sold by a supermarket
// @Summary     Latest prices of a supermarket
// @Tags        supermarkets
// @Produce     json
// @Param       supermarketId path int true "Supermarket ID"
// @Success     200 {object} Response{data=[]services.SupermarketPrice} "Latest prices"
// @Failure     400 {object} ErrorResponse "Invalid supermarket ID"
// @Failure     404 {object} ErrorResponse "Supermarket not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /supermarkets/{supermarketId}/product-prices [get]
func (h *SupermarketHandler) GetProductPrices(c *gin.Context) {
	supermarketID, err := parsePathID(c, "supermarketId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	prices, err := h.historyService.GetSupermarketPrices(c.Request.Context(), supermarketID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondOK(c, http.StatusOK, prices)
}

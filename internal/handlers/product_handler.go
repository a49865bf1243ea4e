package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "pricetrack/internal/errors"
	"pricetrack/internal/services"
	"pricetrack/internal/validator"
)

// ProductHandler handles product catalog and price history requests.
type ProductHandler struct {
	catalogService services.CatalogServicer
	historyService services.PriceHistoryServicer
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(catalogService services.CatalogServicer, historyService services.PriceHistoryServicer) *ProductHandler {
	return &ProductHandler{catalogService: catalogService, historyService: historyService}
}

// ListProducts lists active products
// @Summary     List products
// @Tags        products
// @Produce     json
// @Success     200 {object} Response{data=[]models.Product} "Products"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.catalogService.ListProducts(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondOK(c, http.StatusOK, products)
}

// GetProductByBarcode looks up a product by barcode
// @Summary     Get product by barcode
// @Tags        products
// @Produce     json
// @Param       code path string true "Barcode"
// @Success     200 {object} Response{data=models.Product} "Product"
// @Failure     400 {object} ErrorResponse "Invalid barcode"
// @Failure     404 {object} ErrorResponse "Product not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /products/code/{code} [get]
func (h *ProductHandler) GetProductByBarcode(c *gin.Context) {
	code := c.Param("code")
	if !validator.IsBarcode(code) {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid barcode"))
		return
	}

	product, err := h.catalogService.GetProductByBarcode(c.Request.Context(), code)
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondOK(c, http.StatusOK, product)
}

// GetPriceHistory returns the price history of a product
// @Summary     Product price history
// @Description Valid price observations of a product, newest first, each with its trend
// @Tags        products
// @Produce     json
// @Param       productId path int true "Product ID"
// @Success     200 {object} Response{data=[]services.PriceHistoryEntry} "Price history"
// @Failure     400 {object} ErrorResponse "Invalid product ID"
// @Failure     404 {object} ErrorResponse "Product not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /products/{productId}/price-history [get]
func (h *ProductHandler) GetPriceHistory(c *gin.Context) {
	productID, err := parsePathID(c, "productId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	history, err := h.historyService.GetProductHistory(c.Request.Context(), productID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondOK(c, http.StatusOK, history)
}

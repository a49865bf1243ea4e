package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "pricetrack/internal/errors"
	"pricetrack/internal/services"
	"pricetrack/internal/validator"
)

// PurchaseHandler handles purchase-related requests.
type PurchaseHandler struct {
	purchaseService services.PurchaseServicer
	historyService  services.PriceHistoryServicer
	auditService    services.AuditServicer
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(purchaseService services.PurchaseServicer, historyService services.PriceHistoryServicer, auditService services.AuditServicer) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
		historyService:  historyService,
		auditService:    auditService,
	}
}

// LineItemRequest is one product entry of a purchase.
type LineItemRequest struct {
	ProductID uint            `json:"productId" binding:"required"`
	UnitPrice decimal.Decimal `json:"unitPrice" binding:"required" swaggertype:"number"`
	Quantity  int             `json:"quantity" binding:"required"`
}

// RecordPurchaseRequest represents the request payload for recording a purchase.
type RecordPurchaseRequest struct {
	UserID        uint              `json:"userId" binding:"required"`
	PurchaseDate  string            `json:"purchaseDate" binding:"required,calendar_date" example:"2024-01-01"`
	BranchID      uint              `json:"branchId" binding:"required"`
	LineItems     []LineItemRequest `json:"lineItems" binding:"required,min=1,dive"`
	TotalOverride *decimal.Decimal  `json:"totalOverride,omitempty" swaggertype:"number"`
}

// RecordPurchaseResponse carries the identifier of a recorded purchase.
type RecordPurchaseResponse struct {
	PurchaseID uint `json:"purchaseId"`
}

// RecordPurchase records a purchase with its line items
// @Summary     Record a purchase
// @Description Record a purchase, its line items and one price observation per item atomically
// @Tags        purchases
// @Accept      json
// @Produce     json
// @Param       request body RecordPurchaseRequest true "Purchase details"
// @Success     201 {object} Response{data=RecordPurchaseResponse} "Purchase recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Conflict"
// @Failure     500 {object} ErrorResponse "Purchase could not be recorded"
// @Router      /purchases [post]
func (h *PurchaseHandler) RecordPurchase(c *gin.Context) {
	var req RecordPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	purchaseDate, err := validator.ParseDate(req.PurchaseDate)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "purchaseDate must be a calendar date"))
		return
	}

	items := make([]services.LineItemInput, len(req.LineItems))
	for i, item := range req.LineItems {
		items[i] = services.LineItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	purchase, err := h.purchaseService.RecordPurchase(c.Request.Context(), services.RecordPurchaseInput{
		UserID:        req.UserID,
		PurchaseDate:  purchaseDate,
		BranchID:      req.BranchID,
		LineItems:     items,
		TotalOverride: req.TotalOverride,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), req.UserID, services.AuditActionCreatePurchase, "purchase", purchase.ID, c.ClientIP(),
		map[string]any{"branch_id": req.BranchID, "items": len(items), "total": purchase.Total.String()})

	respondOK(c, http.StatusCreated, RecordPurchaseResponse{PurchaseID: purchase.ID})
}

// GetUserPurchases lists the purchases of a user
// @Summary     List a user's purchases
// @Description List the purchases of a user, newest first, with branch, supermarket and item count
// @Tags        purchases
// @Produce     json
// @Param       userId path int true "User ID"
// @Success     200 {object} Response{data=[]services.PurchaseSummary} "Purchases"
// @Failure     400 {object} ErrorResponse "Invalid user ID"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /purchases/user/{userId} [get]
func (h *PurchaseHandler) GetUserPurchases(c *gin.Context) {
	userID, err := parsePathID(c, "userId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	purchases, err := h.purchaseService.GetUserPurchases(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusOK, purchases)
}

// GetPurchaseItems lists the line items of a purchase
// @Summary     List purchase items
// @Description List the line items of a purchase in insertion order with product details
// @Tags        purchases
// @Produce     json
// @Param       purchaseId path int true "Purchase ID"
// @Success     200 {object} Response{data=[]services.PurchaseItemView} "Line items"
// @Failure     400 {object} ErrorResponse "Invalid purchase ID"
// @Failure     404 {object} ErrorResponse "Purchase not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /purchases/{purchaseId}/items [get]
func (h *PurchaseHandler) GetPurchaseItems(c *gin.Context) {
	purchaseID, err := parsePathID(c, "purchaseId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	items, err := h.historyService.GetPurchaseItems(c.Request.Context(), purchaseID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, http.StatusOK, items)
}

package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"pricetrack/internal/pagination"
	"pricetrack/internal/services"
)

// PriceHandler handles community price feed requests.
type PriceHandler struct {
	feedService services.PriceFeedServicer
}

// NewPriceHandler creates a new PriceHandler.
func NewPriceHandler(feedService services.PriceFeedServicer) *PriceHandler {
	return &PriceHandler{feedService: feedService}
}

func feedQuery(c *gin.Context) services.FeedQuery {
	return services.FeedQuery{
		Limit:  pagination.FeedWindow.Clamp(c.Query("limit")),
		Search: strings.TrimSpace(c.Query("q")),
	}
}

// GetFeed returns the community price feed
// @Summary     Price feed
// @Description Newest valid price observations, optionally filtered by product, barcode, user or supermarket
// @Tags        prices
// @Produce     json
// @Param       limit query number false "Maximum records (clamped to 20..300, default 120)"
// @Param       q     query string false "Search text"
// @Success     200 {object} Response{data=[]services.FeedRecord,meta=ListMeta} "Feed"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /prices [get]
func (h *PriceHandler) GetFeed(c *gin.Context) {
	feed, err := h.feedService.GetFeed(c.Request.Context(), feedQuery(c))
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondOKWithMeta(c, feed.Records, ListMeta{Limit: feed.Limit, Count: feed.Count})
}

// GetFeedSummary summarizes the community price feed
// @Summary     Price feed summary
// @Description Count, distinct users and products, and mean price of a feed window
// @Tags        prices
// @Produce     json
// @Param       limit       query number false "Maximum records (clamped to 20..300, default 120)"
// @Param       q           query string false "Search text"
// @Param       supermarket query string false "Restrict figures to one supermarket"
// @Success     200 {object} Response{data=services.FeedSummary,meta=ListMeta} "Summary"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /prices/summary [get]
func (h *PriceHandler) GetFeedSummary(c *gin.Context) {
	summary, feed, err := h.feedService.GetFeedSummary(c.Request.Context(), feedQuery(c), strings.TrimSpace(c.Query("supermarket")))
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondOKWithMeta(c, summary, ListMeta{Limit: feed.Limit, Count: feed.Count})
}

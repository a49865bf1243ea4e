package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "pricetrack/internal/errors"
	"pricetrack/internal/models"
	"pricetrack/internal/services"
)

func setupSupermarketRouter(handler *SupermarketHandler) *gin.Engine {
	r := gin.New()
	r.GET("/supermarkets", handler.ListSupermarkets)
	r.GET("/supermarkets/:supermarketId/branches", handler.ListBranches)
	r.GET("/supermarkets/:supermarketId/product-prices", handler.GetProductPrices)
	return r
}

func TestSupermarketHandler_ListSupermarkets(t *testing.T) {
	catalogSvc := &mockCatalogService{
		listSupermarketsFn: func(_ context.Context) ([]models.Supermarket, error) {
			return []models.Supermarket{{Name: "Jumbo"}, {Name: "Lider"}}, nil
		},
	}
	r := setupSupermarketRouter(NewSupermarketHandler(catalogSvc, &mockPriceHistoryService{}))

	rec := doRequest(r, "GET", "/supermarkets", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if list := dataList(t, parseJSON(t, rec)); len(list) != 2 {
		t.Errorf("expected 2 supermarkets, got %d", len(list))
	}
}

func TestSupermarketHandler_ListBranches(t *testing.T) {
	t.Run("returns 200 with branches", func(t *testing.T) {
		var gotID uint
		catalogSvc := &mockCatalogService{
			listBranchesFn: func(_ context.Context, supermarketID uint) ([]models.Branch, error) {
				gotID = supermarketID
				return []models.Branch{{SupermarketID: supermarketID, Name: "Centro"}}, nil
			},
		}
		r := setupSupermarketRouter(NewSupermarketHandler(catalogSvc, &mockPriceHistoryService{}))

		rec := doRequest(r, "GET", "/supermarkets/4/branches", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotID != 4 {
			t.Errorf("expected supermarket 4, got %d", gotID)
		}
	})

	t.Run("returns 404 on unknown supermarket", func(t *testing.T) {
		catalogSvc := &mockCatalogService{
			listBranchesFn: func(_ context.Context, _ uint) ([]models.Branch, error) {
				return nil, apperrors.ErrSupermarketNotFound
			},
		}
		r := setupSupermarketRouter(NewSupermarketHandler(catalogSvc, &mockPriceHistoryService{}))

		rec := doRequest(r, "GET", "/supermarkets/4/branches", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "SUPERMARKET_NOT_FOUND")
	})
}

func TestSupermarketHandler_GetProductPrices(t *testing.T) {
	t.Run("returns 200 with prices", func(t *testing.T) {
		historySvc := &mockPriceHistoryService{
			getSupermarketPricesFn: func(_ context.Context, _ uint) ([]services.SupermarketPrice, error) {
				return []services.SupermarketPrice{{ProductID: 1, ProductName: "Cafe"}}, nil
			},
		}
		r := setupSupermarketRouter(NewSupermarketHandler(&mockCatalogService{}, historySvc))

		rec := doRequest(r, "GET", "/supermarkets/4/product-prices", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		list := dataList(t, parseJSON(t, rec))
		if len(list) != 1 || list[0].(map[string]interface{})["productName"] != "Cafe" {
			t.Errorf("unexpected prices: %v", list)
		}
	})

	t.Run("returns 400 on zero id", func(t *testing.T) {
		r := setupSupermarketRouter(NewSupermarketHandler(&mockCatalogService{}, &mockPriceHistoryService{}))

		rec := doRequest(r, "GET", "/supermarkets/0/product-prices", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

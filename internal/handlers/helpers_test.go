package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"pricetrack/internal/models"
	"pricetrack/internal/services"
	"pricetrack/internal/validator"
)

// --- mock services ---

type mockPurchaseService struct {
	recordPurchaseFn   func(ctx context.Context, input services.RecordPurchaseInput) (*models.Purchase, error)
	getUserPurchasesFn func(ctx context.Context, userID uint) ([]services.PurchaseSummary, error)
}

func (m *mockPurchaseService) RecordPurchase(ctx context.Context, input services.RecordPurchaseInput) (*models.Purchase, error) {
	if m.recordPurchaseFn != nil {
		return m.recordPurchaseFn(ctx, input)
	}
	return &models.Purchase{Base: models.Base{ID: 1}}, nil
}

func (m *mockPurchaseService) GetUserPurchases(ctx context.Context, userID uint) ([]services.PurchaseSummary, error) {
	if m.getUserPurchasesFn != nil {
		return m.getUserPurchasesFn(ctx, userID)
	}
	return []services.PurchaseSummary{}, nil
}

var _ services.PurchaseServicer = (*mockPurchaseService)(nil)

type mockPriceHistoryService struct {
	getProductHistoryFn    func(ctx context.Context, productID uint) ([]services.PriceHistoryEntry, error)
	getPurchaseItemsFn     func(ctx context.Context, purchaseID uint) ([]services.PurchaseItemView, error)
	getSupermarketPricesFn func(ctx context.Context, supermarketID uint) ([]services.SupermarketPrice, error)
}

func (m *mockPriceHistoryService) GetProductHistory(ctx context.Context, productID uint) ([]services.PriceHistoryEntry, error) {
	if m.getProductHistoryFn != nil {
		return m.getProductHistoryFn(ctx, productID)
	}
	return []services.PriceHistoryEntry{}, nil
}

func (m *mockPriceHistoryService) GetPurchaseItems(ctx context.Context, purchaseID uint) ([]services.PurchaseItemView, error) {
	if m.getPurchaseItemsFn != nil {
		return m.getPurchaseItemsFn(ctx, purchaseID)
	}
	return []services.PurchaseItemView{}, nil
}

func (m *mockPriceHistoryService) GetSupermarketPrices(ctx context.Context, supermarketID uint) ([]services.SupermarketPrice, error) {
	if m.getSupermarketPricesFn != nil {
		return m.getSupermarketPricesFn(ctx, supermarketID)
	}
	return []services.SupermarketPrice{}, nil
}

var _ services.PriceHistoryServicer = (*mockPriceHistoryService)(nil)

type mockPriceFeedService struct {
	getFeedFn        func(ctx context.Context, query services.FeedQuery) (*services.Feed, error)
	getFeedSummaryFn func(ctx context.Context, query services.FeedQuery, supermarket string) (*services.FeedSummary, *services.Feed, error)
}

func (m *mockPriceFeedService) GetFeed(ctx context.Context, query services.FeedQuery) (*services.Feed, error) {
	if m.getFeedFn != nil {
		return m.getFeedFn(ctx, query)
	}
	return &services.Feed{Records: []services.FeedRecord{}, Limit: query.Limit}, nil
}

func (m *mockPriceFeedService) GetFeedSummary(ctx context.Context, query services.FeedQuery, supermarket string) (*services.FeedSummary, *services.Feed, error) {
	if m.getFeedSummaryFn != nil {
		return m.getFeedSummaryFn(ctx, query, supermarket)
	}
	return &services.FeedSummary{Supermarkets: []string{}}, &services.Feed{Limit: query.Limit}, nil
}

var _ services.PriceFeedServicer = (*mockPriceFeedService)(nil)

type mockCatalogService struct {
	listProductsFn        func(ctx context.Context) ([]models.Product, error)
	getProductByBarcodeFn func(ctx context.Context, barcode string) (*models.Product, error)
	listSupermarketsFn    func(ctx context.Context) ([]models.Supermarket, error)
	listBranchesFn        func(ctx context.Context, supermarketID uint) ([]models.Branch, error)
}

func (m *mockCatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	if m.listProductsFn != nil {
		return m.listProductsFn(ctx)
	}
	return []models.Product{}, nil
}

func (m *mockCatalogService) GetProductByBarcode(ctx context.Context, barcode string) (*models.Product, error) {
	if m.getProductByBarcodeFn != nil {
		return m.getProductByBarcodeFn(ctx, barcode)
	}
	return &models.Product{Barcode: barcode}, nil
}

func (m *mockCatalogService) ListSupermarkets(ctx context.Context) ([]models.Supermarket, error) {
	if m.listSupermarketsFn != nil {
		return m.listSupermarketsFn(ctx)
	}
	return []models.Supermarket{}, nil
}

func (m *mockCatalogService) ListBranches(ctx context.Context, supermarketID uint) ([]models.Branch, error) {
	if m.listBranchesFn != nil {
		return m.listBranchesFn(ctx, supermarketID)
	}
	return []models.Branch{}, nil
}

var _ services.CatalogServicer = (*mockCatalogService)(nil)

type auditCall struct {
	userID     uint
	action     string
	resourceID uint
}

type mockAuditService struct {
	calls []auditCall
}

func (m *mockAuditService) Log(_ context.Context, userID uint, action, _ string, resourceID uint, _ string, _ map[string]any) {
	m.calls = append(m.calls, auditCall{userID: userID, action: action, resourceID: resourceID})
}

var _ services.AuditServicer = (*mockAuditService)(nil)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	if ok, _ := result["ok"].(bool); ok {
		t.Fatalf("expected ok=false, got: %v", result)
	}
	if result["code"] != code {
		t.Errorf("expected error code %q, got %q", code, result["code"])
	}
	if msg, _ := result["message"].(string); msg == "" {
		t.Error("expected a human-readable message")
	}
}

func dataList(t *testing.T, result map[string]interface{}) []interface{} {
	t.Helper()
	if ok, _ := result["ok"].(bool); !ok {
		t.Fatalf("expected ok=true, got: %v", result)
	}
	list, ok := result["data"].([]interface{})
	if !ok {
		t.Fatalf("expected data list, got: %v", result["data"])
	}
	return list
}

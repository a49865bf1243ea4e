package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"pricetrack/internal/logger"
	"pricetrack/internal/models"
	"pricetrack/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
}

type envelope struct {
	OK      bool            `json:"ok"`
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    json.RawMessage `json:"meta"`
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to parse envelope: %v\nbody: %s", err, rec.Body.String())
	}
	return rec, env
}

func decodeData(t *testing.T, env envelope, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, v); err != nil {
		t.Fatalf("failed to decode data: %v\ndata: %s", err, env.Data)
	}
}

func TestPurchaseFlow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	r := New(db, Options{})

	user := testutil.CreateTestUserWithName(t, db, "Ana")
	market := testutil.CreateTestSupermarket(t, db, "Lider")
	branch := testutil.CreateTestBranch(t, db, market.ID)
	milk := testutil.CreateTestProduct(t, db, "Leche")
	bread := testutil.CreateTestProduct(t, db, "Pan")

	record := func(date string, milkPrice, breadPrice int) uint {
		t.Helper()
		body := fmt.Sprintf(`{"userId":%d,"purchaseDate":%q,"branchId":%d,"lineItems":[
			{"productId":%d,"unitPrice":%d,"quantity":2},{"productId":%d,"unitPrice":%d,"quantity":3}]}`,
			user.ID, date, branch.ID, milk.ID, milkPrice, bread.ID, breadPrice)
		rec, env := do(t, r, http.MethodPost, "/api/v1/purchases", body)
		if rec.Code != http.StatusCreated || !env.OK {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		var data struct {
			PurchaseID uint `json:"purchaseId"`
		}
		decodeData(t, env, &data)
		if data.PurchaseID == 0 {
			t.Fatal("expected purchase id")
		}
		return data.PurchaseID
	}

	first := record("2024-01-01", 1000, 500)
	record("2024-01-02", 1000, 450)
	record("2024-01-03", 1200, 450)

	t.Run("purchase items", func(t *testing.T) {
		rec, env := do(t, r, http.MethodGet, fmt.Sprintf("/api/v1/purchases/%d/items", first), "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var items []struct {
			ProductID uint    `json:"productId"`
			Subtotal  float64 `json:"subtotal"`
		}
		decodeData(t, env, &items)
		if len(items) != 2 || items[0].ProductID != milk.ID || items[0].Subtotal != 2000 || items[1].Subtotal != 1500 {
			t.Errorf("unexpected items: %+v", items)
		}
	})

	t.Run("user purchases", func(t *testing.T) {
		rec, env := do(t, r, http.MethodGet, fmt.Sprintf("/api/v1/purchases/user/%d", user.ID), "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var purchases []struct {
			PurchaseID      uint    `json:"purchaseId"`
			Total           float64 `json:"total"`
			TotalItems      int     `json:"totalItems"`
			SupermarketName string  `json:"supermarketName"`
		}
		decodeData(t, env, &purchases)
		if len(purchases) != 3 {
			t.Fatalf("expected 3 purchases, got %d", len(purchases))
		}
		oldest := purchases[2]
		if oldest.PurchaseID != first || oldest.Total != 3500 || oldest.TotalItems != 2 || oldest.SupermarketName != "Lider" {
			t.Errorf("unexpected oldest purchase: %+v", oldest)
		}
	})

	t.Run("price history trends", func(t *testing.T) {
		rec, env := do(t, r, http.MethodGet, fmt.Sprintf("/api/v1/products/%d/price-history", milk.ID), "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var history []struct {
			Price    float64 `json:"price"`
			UserName string  `json:"userName"`
			Trend    struct {
				Direction string `json:"direction"`
				Label     string `json:"label"`
				DeltaText string `json:"deltaText"`
			} `json:"trend"`
		}
		decodeData(t, env, &history)
		if len(history) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(history))
		}
		want := []struct {
			price     float64
			direction string
			label     string
			deltaText string
		}{
			{1200, "up", "increased", "+200.00"},
			{1000, "neutral", "unchanged", "0.00"},
			{1000, "neutral", "no reference", ""},
		}
		for i, w := range want {
			h := history[i]
			if h.Price != w.price || h.Trend.Direction != w.direction || h.Trend.Label != w.label || h.Trend.DeltaText != w.deltaText {
				t.Errorf("position %d: expected %+v, got %+v", i, w, h)
			}
		}
		if history[0].UserName != "Ana" {
			t.Errorf("expected user name Ana, got %q", history[0].UserName)
		}
	})

	t.Run("feed with search and meta", func(t *testing.T) {
		rec, env := do(t, r, http.MethodGet, "/api/v1/prices?q=PAN&limit=5", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var records []struct {
			ProductID uint    `json:"productId"`
			Price     float64 `json:"price"`
		}
		decodeData(t, env, &records)
		if len(records) != 3 {
			t.Fatalf("expected 3 bread records, got %d", len(records))
		}
		for _, rec := range records {
			if rec.ProductID != bread.ID {
				t.Errorf("unexpected product %d", rec.ProductID)
			}
		}
		var meta struct {
			Limit int `json:"limit"`
			Count int `json:"count"`
		}
		if err := json.Unmarshal(env.Meta, &meta); err != nil {
			t.Fatalf("failed to decode meta: %v", err)
		}
		if meta.Limit != 20 || meta.Count != 3 {
			t.Errorf("unexpected meta: %+v", meta)
		}
	})

	t.Run("feed summary", func(t *testing.T) {
		rec, env := do(t, r, http.MethodGet, "/api/v1/prices/summary?supermarket=Lider", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var summary struct {
			Count            int      `json:"count"`
			DistinctProducts int      `json:"distinctProducts"`
			DistinctUsers    int      `json:"distinctUsers"`
			AveragePrice     float64  `json:"averagePrice"`
			Supermarkets     []string `json:"supermarkets"`
		}
		decodeData(t, env, &summary)
		if summary.Count != 6 || summary.DistinctProducts != 2 || summary.DistinctUsers != 1 {
			t.Errorf("unexpected summary: %+v", summary)
		}
		if summary.AveragePrice != 766.67 {
			t.Errorf("expected average 766.67, got %v", summary.AveragePrice)
		}
		if len(summary.Supermarkets) != 1 || summary.Supermarkets[0] != "Lider" {
			t.Errorf("unexpected supermarkets: %v", summary.Supermarkets)
		}
	})

	t.Run("supermarket latest prices", func(t *testing.T) {
		rec, env := do(t, r, http.MethodGet, fmt.Sprintf("/api/v1/supermarkets/%d/product-prices", market.ID), "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var prices []struct {
			ProductName string  `json:"productName"`
			Price       float64 `json:"price"`
		}
		decodeData(t, env, &prices)
		if len(prices) != 2 || prices[0].ProductName != "Leche" || prices[0].Price != 1200 || prices[1].Price != 450 {
			t.Errorf("unexpected prices: %+v", prices)
		}
	})
}

func TestRecordPurchaseAcceptsValidRequest(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	user := testutil.CreateTestUser(t, db)
	branch := testutil.CreateTestBranch(t, db, testutil.CreateTestSupermarket(t, db, "Lider").ID)
	product := testutil.CreateTestProduct(t, db, "Leche")
	r := New(db, Options{})

	body := fmt.Sprintf(`{"userId":%d,"purchaseDate":"2024-01-01","branchId":%d,"lineItems":[{"productId":%d,"unitPrice":1000,"quantity":2}]}`,
		user.ID, branch.ID, product.ID)
	rec, env := do(t, r, http.MethodPost, "/api/v1/purchases", body)

	if rec.Code != http.StatusCreated || !env.OK {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if n := testutil.CountRows(t, db, &models.PriceObservation{}); n != 1 {
		t.Errorf("expected 1 price observation, got %d", n)
	}
}

func TestRecordPurchaseRejectsInvalidInput(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	r := New(db, Options{})

	rec, env := do(t, r, http.MethodPost, "/api/v1/purchases",
		`{"userId":1,"purchaseDate":"2024-01-01","branchId":2,"lineItems":[{"productId":10,"unitPrice":1000,"quantity":-2}]}`)

	if rec.Code != http.StatusBadRequest || env.OK || env.Code != "INVALID_INPUT" || env.Message == "" {
		t.Fatalf("expected 400 INVALID_INPUT, got %d: %s", rec.Code, rec.Body.String())
	}
	if n := testutil.CountRows(t, db, &models.Purchase{}); n != 0 {
		t.Errorf("expected no purchase, got %d", n)
	}
}

func TestRecordPurchaseRollsBackOnStoreFailure(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	r := New(db, Options{})
	testutil.FailNthInsert(t, db, "price_observations", 2)

	rec, env := do(t, r, http.MethodPost, "/api/v1/purchases",
		`{"userId":1,"purchaseDate":"2024-01-01","branchId":2,"lineItems":[
			{"productId":10,"unitPrice":1000,"quantity":2},{"productId":11,"unitPrice":500,"quantity":3}]}`)

	if rec.Code != http.StatusInternalServerError || env.Code != "PERSISTENCE_ERROR" {
		t.Fatalf("expected 500 PERSISTENCE_ERROR, got %d: %s", rec.Code, rec.Body.String())
	}
	for _, model := range []interface{}{&models.Purchase{}, &models.PurchaseLineItem{}, &models.PriceObservation{}, &models.AuditLog{}} {
		if n := testutil.CountRows(t, db, model); n != 0 {
			t.Errorf("expected no %T rows, got %d", model, n)
		}
	}
}

func TestNotFoundPaths(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	r := New(db, Options{})

	tests := []struct {
		path string
		code string
	}{
		{"/api/v1/products/999/price-history", "PRODUCT_NOT_FOUND"},
		{"/api/v1/purchases/999/items", "PURCHASE_NOT_FOUND"},
		{"/api/v1/products/code/7800000000000", "PRODUCT_NOT_FOUND"},
		{"/api/v1/supermarkets/999/branches", "SUPERMARKET_NOT_FOUND"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec, env := do(t, r, http.MethodGet, tt.path, "")
			if rec.Code != http.StatusNotFound || env.Code != tt.code {
				t.Errorf("expected 404 %s, got %d: %s", tt.code, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHealthAndRequestID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	r := New(db, Options{})

	rec, env := do(t, r, http.MethodGet, "/api/health", "")
	if rec.Code != http.StatusOK || !env.OK {
		t.Fatalf("expected healthy response, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
}

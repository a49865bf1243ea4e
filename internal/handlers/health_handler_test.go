package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealth(t *testing.T) {
	r := gin.New()
	r.GET("/api/health", Health)

	rec := doRequest(r, "GET", "/api/health", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	if result["ok"] != true || result["status"] != "ok" {
		t.Errorf("unexpected body: %v", result)
	}
}

package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"pricetrack/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Day returns midnight UTC of the given calendar day.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// CreateTestUser creates an active user with a unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	n := nextID()
	return CreateTestUserWithName(t, db, fmt.Sprintf("User %d", n))
}

// CreateTestUserWithName creates an active user with the given display name.
func CreateTestUserWithName(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()

	user := &models.User{
		Name:     name,
		Email:    fmt.Sprintf("user%d@test.com", nextID()),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestSupermarket creates an active supermarket chain.
func CreateTestSupermarket(t *testing.T, db *gorm.DB, name string) *models.Supermarket {
	t.Helper()

	market := &models.Supermarket{Name: name, Country: "CL", IsActive: true}
	if err := db.Create(market).Error; err != nil {
		t.Fatalf("failed to create test supermarket: %v", err)
	}
	return market
}

// CreateTestBranch creates an active branch of the given supermarket.
func CreateTestBranch(t *testing.T, db *gorm.DB, supermarketID uint) *models.Branch {
	t.Helper()

	branch := &models.Branch{
		SupermarketID: supermarketID,
		Name:          fmt.Sprintf("Branch %d", nextID()),
		IsActive:      true,
	}
	if err := db.Create(branch).Error; err != nil {
		t.Fatalf("failed to create test branch: %v", err)
	}
	return branch
}

// CreateTestProduct creates an active product with a unique barcode.
func CreateTestProduct(t *testing.T, db *gorm.DB, name string) *models.Product {
	t.Helper()

	product := &models.Product{
		Barcode:  fmt.Sprintf("780%010d", nextID()),
		Name:     name,
		IsActive: true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to create test product: %v", err)
	}
	return product
}

// CreateTestBrandedProduct creates a product linked to a new brand and category.
func CreateTestBrandedProduct(t *testing.T, db *gorm.DB, name, brand, category string) *models.Product {
	t.Helper()

	b := &models.Brand{Name: brand}
	if err := db.Create(b).Error; err != nil {
		t.Fatalf("failed to create test brand: %v", err)
	}
	c := &models.Category{Name: category}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}

	product := &models.Product{
		Barcode:    fmt.Sprintf("780%010d", nextID()),
		Name:       name,
		BrandID:    &b.ID,
		CategoryID: &c.ID,
		Image:      []byte{0x89, 0x50, 0x4e, 0x47},
		IsActive:   true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to create test product: %v", err)
	}
	return product
}

// CreateTestObservation creates a valid price observation.
func CreateTestObservation(t *testing.T, db *gorm.DB, productID, branchID, userID uint, price string, day time.Time) *models.PriceObservation {
	t.Helper()
	return createObservation(t, db, productID, branchID, userID, price, day)
}

// CreateTestInvalidObservation creates an observation excluded from aggregate reads.
func CreateTestInvalidObservation(t *testing.T, db *gorm.DB, productID, branchID, userID uint, price string, day time.Time) *models.PriceObservation {
	t.Helper()
	obs := createObservation(t, db, productID, branchID, userID, price, day)
	// GORM skips zero values on create, so flip the flag afterwards.
	if err := db.Model(obs).Update("is_valid", false).Error; err != nil {
		t.Fatalf("failed to invalidate test observation: %v", err)
	}
	obs.IsValid = false
	return obs
}

func createObservation(t *testing.T, db *gorm.DB, productID, branchID, userID uint, price string, day time.Time) *models.PriceObservation {
	t.Helper()

	obs := &models.PriceObservation{
		ProductID:  productID,
		BranchID:   branchID,
		UserID:     userID,
		Price:      decimal.RequireFromString(price),
		ObservedOn: day,
		IsValid:    true,
	}
	if err := db.Create(obs).Error; err != nil {
		t.Fatalf("failed to create test observation: %v", err)
	}
	return obs
}
